/*
File    : lamina-go/std/io.go
Project : Lamina interpreter in Go
*/

// Package std - io.go
// Console input/output builtins.
package std

import (
	"fmt"
	"io"
	"strings"

	"github.com/iOS-GM/lamina-go/value"
)

var ioMethods = []*Builtin{
	{Name: "print", Callback: printBuiltin},     // Print values followed by a newline
	{Name: "printraw", Callback: printRaw},      // Print values without a trailing newline
	{Name: "readline", Callback: readlineInput}, // Read one line from standard input
}

func init() {
	Builtins = append(Builtins, ioMethods...)
}

// printBuiltin writes its arguments separated by spaces, then a newline.
// With no arguments it prints just the newline.
func printBuiltin(rt Runtime, writer io.Writer, args ...value.Object) value.Object {
	fmt.Fprintln(writer, renderArgs(args))
	return &value.Null{}
}

// printRaw writes its arguments separated by spaces with no newline.
func printRaw(rt Runtime, writer io.Writer, args ...value.Object) value.Object {
	fmt.Fprint(writer, renderArgs(args))
	return &value.Null{}
}

// readlineInput reads one line from the interpreter's input stream and
// returns it as a string with the trailing newline removed. This backs the
// `readline()` builtin; at end of input it returns null.
func readlineInput(rt Runtime, writer io.Writer, args ...value.Object) value.Object {
	if len(args) != 0 {
		return &value.Error{Kind: value.ArityError, Message: ArityMessage("readline", 0, len(args))}
	}
	line, err := rt.GetInputReader().ReadString('\n')
	if err != nil && line == "" {
		return &value.Null{}
	}
	return &value.String{Value: strings.TrimRight(line, "\r\n")}
}

// renderArgs joins argument display forms with single spaces.
func renderArgs(args []value.Object) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = arg.ToString()
	}
	return strings.Join(parts, " ")
}
