/*
File    : lamina-go/scope/scope.go
Project : Lamina interpreter in Go
*/
package scope

import (
	"sort"

	"github.com/iOS-GM/lamina-go/value"
)

// Scope defines a lexical scope boundary for variable lifetime and accessibility.
//
// Scope implements a hierarchical scope chain that enables lexical scoping and
// closures. Each scope maintains its own variable bindings and can access
// variables from parent scopes. This structure supports:
// - Variable shadowing: inner scopes can redefine variables from outer scopes
// - Closures: functions capture their defining scope and can access outer variables
// - Block scoping: each block (function body, loop body, bare block) gets its own scope
//
// The scope chain is traversed upward (from child to parent) during variable
// lookup. Scopes never form cycles: parent pointers are set once at creation
// and never mutated, so Go's garbage collector handles frames whose
// activations have ended while a closure still holds its captured chain.
type Scope struct {
	// Variables maps variable names to their current values in this scope
	Variables map[string]value.Object

	// Parent points to the enclosing scope, forming a scope chain.
	// nil indicates this is the global (root) scope.
	Parent *Scope
}

// NewScope creates and initializes a new Scope with the specified parent.
// parent == nil creates a global (root) scope; otherwise the new scope can
// access every binding of the parent chain.
func NewScope(parent *Scope) *Scope {
	return &Scope{
		Variables: make(map[string]value.Object),
		Parent:    parent,
	}
}

// LookUp searches for a variable by name in this scope and all parent scopes.
//
// The walk starts at the current scope and continues outward until the name
// is found or the root is reached, so inner bindings shadow outer ones.
//
// Returns the bound value and true if the name resolves anywhere in the
// chain, or nil and false otherwise.
func (s *Scope) LookUp(varName string) (value.Object, bool) {
	obj, ok := s.Variables[varName]
	if !ok && s.Parent != nil {
		return s.Parent.LookUp(varName)
	}
	return obj, ok
}

// Bind creates a new variable binding in the current scope only.
//
// Declarations always create in the current scope, which permits shadowing
// of names bound further out. Returns the name and whether it already
// existed in this scope (redeclaration).
func (s *Scope) Bind(varName string, obj value.Object) (string, bool) {
	_, has := s.Variables[varName]
	s.Variables[varName] = obj
	return varName, has
}

// Assign updates an existing variable in the innermost scope that contains it.
//
// Unlike Bind, Assign never creates a binding: it walks the chain outward,
// mutates the first scope holding the name, and reports failure if the name
// is absent everywhere. This is what lets closures mutate captured variables.
//
// Returns the scope where the variable was updated (nil if not found) and
// whether the assignment happened.
func (s *Scope) Assign(varName string, obj value.Object) (*Scope, bool) {
	if _, ok := s.Variables[varName]; ok {
		s.Variables[varName] = obj
		return s, true
	}
	if s.Parent != nil {
		return s.Parent.Assign(varName, obj)
	}
	return nil, false
}

// Names returns the variable names bound directly in this scope, sorted for
// stable display. Used by the REPL's :vars meta-command.
func (s *Scope) Names() []string {
	names := make([]string, 0, len(s.Variables))
	for name := range s.Variables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Depth returns the number of scopes in the chain including this one.
// Useful for asserting that every block restores the stack on exit.
func (s *Scope) Depth() int {
	depth := 1
	for p := s.Parent; p != nil; p = p.Parent {
		depth++
	}
	return depth
}
