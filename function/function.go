/*
File    : lamina-go/function/function.go
Project : Lamina interpreter in Go
*/
package function

import (
	"fmt"
	"strings"

	"github.com/iOS-GM/lamina-go/parser"
	"github.com/iOS-GM/lamina-go/scope"
	"github.com/iOS-GM/lamina-go/value"
)

// Function represents a user-defined function value.
// It captures the function's name, parameters, body, and the scope in which
// it was defined. The captured scope is what makes closures work: a function
// can read and assign variables of its defining scope even after that
// scope's activation has finished, and the capture keeps the whole chain
// alive for as long as the function value itself is reachable.
type Function struct {
	Name   string                             // Name of the function
	Params []*parser.IdentifierExpressionNode // Parameter names, in source order
	Body   *parser.BlockStatementNode         // Function body (statements to execute)
	Scp    *scope.Scope                       // Captured defining scope
}

// GetType returns the type identifier for this Function object.
func (f *Function) GetType() value.Type {
	return value.FunctionType
}

// ToString returns a short display form, e.g. "func(add)".
func (f *Function) ToString() string {
	return fmt.Sprintf("func(%s)", f.Name)
}

// ToObject returns a detailed form including parameter names,
// e.g. "<func[add(a, b)]>".
func (f *Function) ToObject() string {
	params := make([]string, len(f.Params))
	for i, param := range f.Params {
		params[i] = param.Name
	}
	return fmt.Sprintf("<func[%s(%s)]>", f.Name, strings.Join(params, ", "))
}
