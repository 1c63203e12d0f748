/*
File    : lamina-go/parser/node.go
Project : Lamina interpreter in Go
*/
package parser

import (
	"strconv"
	"strings"

	"github.com/iOS-GM/lamina-go/lexer"
)

// The AST is a closed set of tagged variants: one family for expressions,
// one for statements. Each node exclusively owns its children (a tree, never
// a DAG), and the root of every parse is a RootNode.

// Node is the base interface for all nodes of the AST.
// Literal() returns the canonical string rendering of the node, which is
// what diagnostics display and what the pretty-printer emits.
type Node interface {
	Literal() string
}

// StatementNode is the base interface for all statement nodes.
type StatementNode interface {
	Node
	Statement()
}

// ExpressionNode is the base interface for all expression nodes.
// Every expression retains a canonical rendering of the source it was parsed
// from (via Literal) and the position of its leading token (via Pos), both
// used for diagnostics.
type ExpressionNode interface {
	Node
	Expression()
	Pos() (line, column int)
}

// RootNode represents the root of the AST: the implicit block of top-level
// statements. Every successful parse yields exactly this shape.
type RootNode struct {
	Statements []StatementNode // every top-level statement in source order
}

// Literal renders the whole program canonically.
func (root *RootNode) Literal() string {
	parts := make([]string, len(root.Statements))
	for i, stmt := range root.Statements {
		parts[i] = stmt.Literal()
	}
	return strings.Join(parts, " ")
}

// ------------------------------------------------------------------
// Expression nodes
// ------------------------------------------------------------------

// LiteralExpressionNode represents a literal value: a number, a string,
// `true`, `false`, or `null`. The token keeps the raw text; whether a number
// is an int or a float is decided lazily by the evaluator from the presence
// of a dot.
type LiteralExpressionNode struct {
	Token lexer.Token // NUMBER_LIT, STRING_LIT, TRUE_KEY, FALSE_KEY or NULL_KEY
}

func (node *LiteralExpressionNode) Literal() string {
	if node.Token.Type == lexer.STRING_LIT {
		return strconv.Quote(node.Token.Literal)
	}
	return node.Token.Literal
}
func (node *LiteralExpressionNode) Expression()            {}
func (node *LiteralExpressionNode) Pos() (line, column int) { return node.Token.Line, node.Token.Column }

// IdentifierExpressionNode represents a name in a naming position: a function
// name, a parameter, a call callee. Evaluated as an environment lookup.
type IdentifierExpressionNode struct {
	Token lexer.Token // The identifier token
	Name  string      // The identifier text
}

func (node *IdentifierExpressionNode) Literal() string { return node.Name }
func (node *IdentifierExpressionNode) Expression()     {}
func (node *IdentifierExpressionNode) Pos() (line, column int) {
	return node.Token.Line, node.Token.Column
}

// VarExpressionNode represents a variable reference in expression position.
// It resolves through the scope chain at evaluation time.
type VarExpressionNode struct {
	Token lexer.Token // The identifier token
	Name  string      // The referenced variable name
}

func (node *VarExpressionNode) Literal() string        { return node.Name }
func (node *VarExpressionNode) Expression()            {}
func (node *VarExpressionNode) Pos() (line, column int) { return node.Token.Line, node.Token.Column }

// BinaryExpressionNode represents a binary operation (left op right).
type BinaryExpressionNode struct {
	Operation lexer.Token    // The operator token
	Left      ExpressionNode // Left operand
	Right     ExpressionNode // Right operand
}

func (node *BinaryExpressionNode) Literal() string {
	return "(" + node.Left.Literal() + " " + node.Operation.Literal + " " + node.Right.Literal() + ")"
}
func (node *BinaryExpressionNode) Expression() {}
func (node *BinaryExpressionNode) Pos() (line, column int) {
	return node.Operation.Line, node.Operation.Column
}

// UnaryExpressionNode represents a prefix operation (op operand): unary
// minus or logical NOT.
type UnaryExpressionNode struct {
	Operation lexer.Token    // The operator token
	Operand   ExpressionNode // The operand
}

func (node *UnaryExpressionNode) Literal() string {
	return "(" + node.Operation.Literal + node.Operand.Literal() + ")"
}
func (node *UnaryExpressionNode) Expression() {}
func (node *UnaryExpressionNode) Pos() (line, column int) {
	return node.Operation.Line, node.Operation.Column
}

// CallExpressionNode represents a call of a named function: name(args...).
type CallExpressionNode struct {
	Callee    *IdentifierExpressionNode // The function name
	Arguments []ExpressionNode          // Argument expressions, in source order
}

func (node *CallExpressionNode) Literal() string {
	return node.Callee.Name + "(" + joinExpressions(node.Arguments) + ")"
}
func (node *CallExpressionNode) Expression() {}
func (node *CallExpressionNode) Pos() (line, column int) {
	return node.Callee.Token.Line, node.Callee.Token.Column
}

// NamespaceCallExpressionNode represents a call into a loaded native module:
// ns.fn(args...). Dispatch happens through the module loader.
type NamespaceCallExpressionNode struct {
	Token     lexer.Token      // The namespace identifier token
	Namespace string           // The namespace name (left of the dot)
	Function  string           // The function name (right of the dot)
	Arguments []ExpressionNode // Argument expressions, in source order
}

func (node *NamespaceCallExpressionNode) Literal() string {
	return node.Namespace + "." + node.Function + "(" + joinExpressions(node.Arguments) + ")"
}
func (node *NamespaceCallExpressionNode) Expression() {}
func (node *NamespaceCallExpressionNode) Pos() (line, column int) {
	return node.Token.Line, node.Token.Column
}

// ArrayExpressionNode represents an array literal: [e1, e2, ...] (empty
// permitted).
type ArrayExpressionNode struct {
	Token    lexer.Token      // The '[' token
	Elements []ExpressionNode // Element expressions, in source order
}

func (node *ArrayExpressionNode) Literal() string {
	return "[" + joinExpressions(node.Elements) + "]"
}
func (node *ArrayExpressionNode) Expression()            {}
func (node *ArrayExpressionNode) Pos() (line, column int) { return node.Token.Line, node.Token.Column }

// IndexExpressionNode represents array indexing: target[index].
type IndexExpressionNode struct {
	Token  lexer.Token    // The '[' token
	Target ExpressionNode // The indexed expression
	Index  ExpressionNode // The index expression
}

func (node *IndexExpressionNode) Literal() string {
	return node.Target.Literal() + "[" + node.Index.Literal() + "]"
}
func (node *IndexExpressionNode) Expression()            {}
func (node *IndexExpressionNode) Pos() (line, column int) { return node.Token.Line, node.Token.Column }

// InputExpressionNode represents the `input` keyword in expression position:
// it reads one line from standard input and yields it as a string.
type InputExpressionNode struct {
	Token lexer.Token // The `input` keyword token
}

func (node *InputExpressionNode) Literal() string        { return "input" }
func (node *InputExpressionNode) Expression()            {}
func (node *InputExpressionNode) Pos() (line, column int) { return node.Token.Line, node.Token.Column }

// joinExpressions renders a comma-separated expression list.
func joinExpressions(exprs []ExpressionNode) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.Literal()
	}
	return strings.Join(parts, ", ")
}

// ------------------------------------------------------------------
// Statement nodes
// ------------------------------------------------------------------

// VarDeclStatementNode represents `var name = expr;`.
type VarDeclStatementNode struct {
	Token lexer.Token    // The `var` keyword token
	Name  string         // Declared variable name
	Init  ExpressionNode // Initializer expression
}

func (node *VarDeclStatementNode) Literal() string {
	return "var " + node.Name + " = " + node.Init.Literal() + ";"
}
func (node *VarDeclStatementNode) Statement() {}

// BigIntDeclStatementNode represents `bigint name [= expr];`. The declared
// variable gets arbitrary-precision storage when the initializer is integral.
type BigIntDeclStatementNode struct {
	Token lexer.Token    // The `bigint` keyword token
	Name  string         // Declared variable name
	Init  ExpressionNode // Optional initializer (nil means big zero)
}

func (node *BigIntDeclStatementNode) Literal() string {
	if node.Init == nil {
		return "bigint " + node.Name + ";"
	}
	return "bigint " + node.Name + " = " + node.Init.Literal() + ";"
}
func (node *BigIntDeclStatementNode) Statement() {}

// DefineStatementNode represents `define name = expr;`. Interpreter-recognized
// configuration keys (e.g. recursion_limit) update interpreter state; unknown
// names are stored as ordinary bindings.
type DefineStatementNode struct {
	Token lexer.Token    // The `define` keyword token
	Name  string         // Configuration key or variable name
	Value ExpressionNode // Value expression
}

func (node *DefineStatementNode) Literal() string {
	return "define " + node.Name + " = " + node.Value.Literal() + ";"
}
func (node *DefineStatementNode) Statement() {}

// AssignStatementNode represents `name = expr;` at statement position.
type AssignStatementNode struct {
	Token lexer.Token    // The identifier token
	Name  string         // Assigned variable name
	Value ExpressionNode // Right-hand side expression
}

func (node *AssignStatementNode) Literal() string {
	return node.Name + " = " + node.Value.Literal() + ";"
}
func (node *AssignStatementNode) Statement() {}

// BlockStatementNode represents `{ stmt* }`. Each block executes in its own
// scope, pushed on entry and popped on every exit path.
type BlockStatementNode struct {
	Token      lexer.Token     // The '{' token
	Statements []StatementNode // Statements in source order
}

func (node *BlockStatementNode) Literal() string {
	parts := make([]string, len(node.Statements))
	for i, stmt := range node.Statements {
		parts[i] = stmt.Literal()
	}
	return "{ " + strings.Join(parts, " ") + " }"
}
func (node *BlockStatementNode) Statement() {}

// IfStatementNode represents `if (cond) block [else block]`.
type IfStatementNode struct {
	Token     lexer.Token         // The `if` keyword token
	Condition ExpressionNode      // Condition expression
	Then      *BlockStatementNode // Then branch
	Else      *BlockStatementNode // Optional else branch (nil when absent)
}

func (node *IfStatementNode) Literal() string {
	out := "if (" + node.Condition.Literal() + ") " + node.Then.Literal()
	if node.Else != nil {
		out += " else " + node.Else.Literal()
	}
	return out
}
func (node *IfStatementNode) Statement() {}

// WhileStatementNode represents `while (cond) block`.
type WhileStatementNode struct {
	Token     lexer.Token         // The `while` keyword token
	Condition ExpressionNode      // Loop condition
	Body      *BlockStatementNode // Loop body
}

func (node *WhileStatementNode) Literal() string {
	return "while (" + node.Condition.Literal() + ") " + node.Body.Literal()
}
func (node *WhileStatementNode) Statement() {}

// FuncDefStatementNode represents `func name(params) block`. Evaluation
// constructs a function value capturing the current scope.
type FuncDefStatementNode struct {
	Token  lexer.Token                 // The `func` keyword token
	Name   string                      // Function name
	Params []*IdentifierExpressionNode // Parameter names, in source order
	Body   *BlockStatementNode         // Function body
}

func (node *FuncDefStatementNode) Literal() string {
	params := make([]string, len(node.Params))
	for i, p := range node.Params {
		params[i] = p.Name
	}
	return "func " + node.Name + "(" + strings.Join(params, ", ") + ") " + node.Body.Literal()
}
func (node *FuncDefStatementNode) Statement() {}

// ReturnStatementNode represents `return [expr];`.
type ReturnStatementNode struct {
	Token lexer.Token    // The `return` keyword token
	Expr  ExpressionNode // Optional return expression (nil returns null)
}

func (node *ReturnStatementNode) Literal() string {
	if node.Expr == nil {
		return "return;"
	}
	return "return " + node.Expr.Literal() + ";"
}
func (node *ReturnStatementNode) Statement() {}

// IncludeStatementNode represents `include "path";` — load a native module
// by file path.
type IncludeStatementNode struct {
	Token  lexer.Token // The `include` keyword token
	Module string      // Module path (the string literal's text)
}

func (node *IncludeStatementNode) Literal() string {
	return "include " + strconv.Quote(node.Module) + ";"
}
func (node *IncludeStatementNode) Statement() {}

// UseStatementNode represents `use name;` — make a module namespace
// available by registry name.
type UseStatementNode struct {
	Token  lexer.Token // The `use` identifier token
	Module string      // Module name
}

func (node *UseStatementNode) Literal() string { return "use " + node.Module + ";" }
func (node *UseStatementNode) Statement()      {}

// BreakStatementNode represents `break;`.
type BreakStatementNode struct {
	Token lexer.Token // The `break` keyword token
}

func (node *BreakStatementNode) Literal() string { return "break;" }
func (node *BreakStatementNode) Statement()      {}

// ContinueStatementNode represents `continue;`.
type ContinueStatementNode struct {
	Token lexer.Token // The `continue` keyword token
}

func (node *ContinueStatementNode) Literal() string { return "continue;" }
func (node *ContinueStatementNode) Statement()      {}

// ExpressionStatementNode wraps an expression evaluated for its side effects,
// terminated by a semicolon. The resulting value is discarded.
type ExpressionStatementNode struct {
	Expr ExpressionNode // The wrapped expression
}

func (node *ExpressionStatementNode) Literal() string { return node.Expr.Literal() + ";" }
func (node *ExpressionStatementNode) Statement()      {}
