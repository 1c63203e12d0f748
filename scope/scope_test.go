/*
File    : lamina-go/scope/scope_test.go
Project : Lamina interpreter in Go
*/
package scope

import (
	"testing"

	"github.com/iOS-GM/lamina-go/value"
	"github.com/stretchr/testify/assert"
)

// TestLookUpWalksOutward verifies inner scopes see outer bindings and that
// shadowing returns the innermost one.
func TestLookUpWalksOutward(t *testing.T) {
	global := NewScope(nil)
	global.Bind("x", &value.Integer{Value: 10})

	inner := NewScope(global)
	obj, ok := inner.LookUp("x")
	assert.True(t, ok)
	assert.Equal(t, "10", obj.ToString())

	// shadowing: declaration in the inner scope hides the outer binding
	inner.Bind("x", &value.Integer{Value: 20})
	obj, _ = inner.LookUp("x")
	assert.Equal(t, "20", obj.ToString())

	// the outer binding is untouched
	obj, _ = global.LookUp("x")
	assert.Equal(t, "10", obj.ToString())
}

// TestAssignMutatesInnermostHolder verifies assignment updates the scope
// that declared the name, not the scope doing the assigning.
func TestAssignMutatesInnermostHolder(t *testing.T) {
	global := NewScope(nil)
	global.Bind("counter", &value.Integer{Value: 0})

	inner := NewScope(global)
	where, ok := inner.Assign("counter", &value.Integer{Value: 1})
	assert.True(t, ok)
	assert.Same(t, global, where)

	obj, _ := global.LookUp("counter")
	assert.Equal(t, "1", obj.ToString())
}

// TestAssignMissingName verifies assignment to an undeclared name fails
// without creating a binding.
func TestAssignMissingName(t *testing.T) {
	s := NewScope(nil)
	where, ok := s.Assign("ghost", &value.Null{})
	assert.False(t, ok)
	assert.Nil(t, where)

	_, found := s.LookUp("ghost")
	assert.False(t, found)
}

// TestBindReportsRedeclaration verifies Bind reports when a name already
// existed in the current scope.
func TestBindReportsRedeclaration(t *testing.T) {
	s := NewScope(nil)
	_, had := s.Bind("x", &value.Integer{Value: 1})
	assert.False(t, had)
	_, had = s.Bind("x", &value.Integer{Value: 2})
	assert.True(t, had)
}

// TestNamesAndDepth verifies the helpers used by the REPL and by the
// evaluator's stack-depth invariant checks.
func TestNamesAndDepth(t *testing.T) {
	global := NewScope(nil)
	global.Bind("b", &value.Integer{Value: 2})
	global.Bind("a", &value.Integer{Value: 1})
	assert.Equal(t, []string{"a", "b"}, global.Names())
	assert.Equal(t, 1, global.Depth())

	inner := NewScope(NewScope(global))
	assert.Equal(t, 3, inner.Depth())
}
