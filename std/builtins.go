/*
File    : lamina-go/std/builtins.go
Project : Lamina interpreter in Go
*/

// Package std defines the builtin functions the interpreter itself provides
// to Lamina code: console I/O, a few introspection helpers, and basic math.
// Standard modules proper (string utilities, file I/O, networking, ...) are
// not implemented here; they live behind the native module ABI and are
// reached through namespace calls.
package std

import (
	"bufio"
	"fmt"
	"io"

	"github.com/iOS-GM/lamina-go/value"
)

// Runtime is the slice of the evaluator that builtins are allowed to see.
// It provides access to the interpreter's input stream without creating an
// import cycle between std and eval.
type Runtime interface {
	GetInputReader() *bufio.Reader
}

// CallbackFunc is the function signature for builtin implementations.
// Output goes to the supplied writer so the evaluator (and the tests) can
// redirect it.
type CallbackFunc func(rt Runtime, writer io.Writer, args ...value.Object) value.Object

// Builtin represents a builtin function with a name and its implementation.
type Builtin struct {
	Name     string       // The name of the builtin function (e.g., "print")
	Callback CallbackFunc // The function that implements the builtin behavior
}

// Builtins is the global registry of builtin functions. Each std file
// contributes its group during package initialization.
var Builtins = make([]*Builtin, 0)

var coreMethods = []*Builtin{
	{Name: "len", Callback: lenBuiltin},       // Length of a string or array
	{Name: "typeof", Callback: typeofBuiltin}, // Type name of a value
	{Name: "to_string", Callback: toString},   // Stringify any value
}

func init() {
	Builtins = append(Builtins, coreMethods...)
}

// ArityMessage formats the detail text of an arity failure.
func ArityMessage(name string, expected, got int) string {
	return fmt.Sprintf("%s expects %d argument(s), got %d", name, expected, got)
}

// lenBuiltin returns the length of a string or array.
func lenBuiltin(rt Runtime, writer io.Writer, args ...value.Object) value.Object {
	if len(args) != 1 {
		return &value.Error{Kind: value.ArityError, Message: ArityMessage("len", 1, len(args))}
	}
	switch arg := args[0].(type) {
	case *value.String:
		return &value.Integer{Value: int64(len(arg.Value))}
	case *value.Array:
		return &value.Integer{Value: int64(len(arg.Elements))}
	default:
		return &value.Error{
			Kind:    value.TypeError,
			Message: fmt.Sprintf("len not supported for %s", arg.GetType()),
		}
	}
}

// typeofBuiltin returns the type name of its argument as a string.
func typeofBuiltin(rt Runtime, writer io.Writer, args ...value.Object) value.Object {
	if len(args) != 1 {
		return &value.Error{Kind: value.ArityError, Message: ArityMessage("typeof", 1, len(args))}
	}
	return &value.String{Value: string(args[0].GetType())}
}

// toString stringifies any value using its display form.
func toString(rt Runtime, writer io.Writer, args ...value.Object) value.Object {
	if len(args) != 1 {
		return &value.Error{Kind: value.ArityError, Message: ArityMessage("to_string", 1, len(args))}
	}
	return &value.String{Value: args[0].ToString()}
}
