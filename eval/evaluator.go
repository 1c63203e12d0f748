/*
File    : lamina-go/eval/evaluator.go
Project : Lamina interpreter in Go
*/

// Package eval implements the tree-walking evaluator for Lamina.
//
// The evaluator executes statements in source order against a stack of
// lexical scopes. Non-local control flow (return, break, continue, runtime
// errors) travels as sentinel objects threaded through evaluation results:
// each construct consumes only the sentinels addressed to it, and runtime
// errors are consumed only by the top-level driver, which prints the stack
// trace recorded at function entries.
package eval

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/iOS-GM/lamina-go/module"
	"github.com/iOS-GM/lamina-go/parser"
	"github.com/iOS-GM/lamina-go/scope"
	"github.com/iOS-GM/lamina-go/std"
	"github.com/iOS-GM/lamina-go/value"
)

// DEFAULT_RECURSION_LIMIT caps function-call depth until a program raises it
// with `define recursion_limit = N;`.
const DEFAULT_RECURSION_LIMIT = 1000

// Diagnostic colors for the top-level driver.
var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
)

// Evaluator holds the state for evaluating Lamina AST nodes: the scope
// stack, the builtin registry, the native-module registry, and the
// recursion bookkeeping used for limits and stack traces.
type Evaluator struct {
	Par      *parser.Parser          // Parser instance, for error reporting context
	Scp      *scope.Scope            // Current scope (innermost frame of the stack)
	Builtins map[string]*std.Builtin // Builtin functions (print, len, ...)
	Modules  *module.Registry        // Loaded native modules
	Writer   io.Writer               // Output for builtins and diagnostics
	Reader   *bufio.Reader           // Input for the `input` expression

	RecursionLimit int // Maximum active function-call depth

	callDepth int           // Currently active function calls
	callStack []value.Frame // Active frames, outermost first
}

// NewEvaluator creates and initializes a new Evaluator with a fresh global
// scope, the full builtin registry, an empty module registry, and default
// I/O on stdout/stdin.
func NewEvaluator() *Evaluator {
	ev := &Evaluator{
		Scp:            scope.NewScope(nil),
		Builtins:       make(map[string]*std.Builtin),
		Modules:        module.NewRegistry(0),
		Writer:         os.Stdout,
		Reader:         bufio.NewReader(os.Stdin),
		RecursionLimit: DEFAULT_RECURSION_LIMIT,
	}
	for _, builtin := range std.Builtins {
		ev.Builtins[builtin.Name] = builtin
	}
	return ev
}

// SetWriter redirects builtin and diagnostic output, used by the tests and
// the REPL.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// SetReader redirects the input stream backing the `input` expression.
func (e *Evaluator) SetReader(r io.Reader) {
	e.Reader = bufio.NewReader(r)
}

// GetInputReader returns the buffered input reader.
// This implements the std.Runtime interface.
func (e *Evaluator) GetInputReader() *bufio.Reader {
	return e.Reader
}

// SetParser assigns the parser whose tree is being evaluated, for error
// reporting context.
func (e *Evaluator) SetParser(p *parser.Parser) {
	e.Par = p
}

// RunProgram executes every top-level statement of a program in order.
//
// Per the propagation policy, a runtime error terminates only the offending
// statement: the error and its stack trace are printed and execution
// continues with the next statement. Uncaught control-flow signals at the
// top level are downgraded to warnings.
func (e *Evaluator) RunProgram(root *parser.RootNode) {
	for _, stmt := range root.Statements {
		e.runTopLevelStatement(stmt)
	}
}

// runTopLevelStatement executes one statement at the outermost level and
// consumes whatever signal escapes it.
func (e *Evaluator) runTopLevelStatement(stmt parser.StatementNode) {
	result := e.Eval(stmt)
	if result == nil {
		return
	}
	switch signal := result.(type) {
	case *value.Error:
		e.PrintRuntimeError(signal)
	case *value.ReturnValue:
		e.printWarning("Return statement used outside function")
	case *value.Break:
		e.printWarning("Break statement used outside loop")
	case *value.Continue:
		e.printWarning("Continue statement used outside loop")
	}
}

// PrintRuntimeError prints a runtime error with its source line and the
// call-stack trace recorded when the error was raised.
func (e *Evaluator) PrintRuntimeError(err *value.Error) {
	if err.Line > 0 {
		redColor.Fprintf(e.Writer, "%s (line %d)\n", err.ToString(), err.Line)
	} else {
		redColor.Fprintln(e.Writer, err.ToString())
	}
	if trace := err.TraceString(); trace != "" {
		redColor.Fprint(e.Writer, trace)
	}
}

// printWarning prints a non-fatal top-level diagnostic.
func (e *Evaluator) printWarning(msg string) {
	yellowColor.Fprintf(e.Writer, "Warning: %s\n", msg)
}

// pushFrame records a function entry for stack traces and depth limiting.
func (e *Evaluator) pushFrame(name string, line int) {
	e.callDepth++
	e.callStack = append(e.callStack, value.Frame{Function: name, Line: line})
}

// popFrame unwinds one function entry.
func (e *Evaluator) popFrame() {
	e.callDepth--
	e.callStack = e.callStack[:len(e.callStack)-1]
}

// snapshotTrace copies the active call stack, innermost frame first.
func (e *Evaluator) snapshotTrace() []value.Frame {
	if len(e.callStack) == 0 {
		return nil
	}
	trace := make([]value.Frame, len(e.callStack))
	for i, frame := range e.callStack {
		trace[len(e.callStack)-1-i] = frame
	}
	return trace
}

// errorAt builds a runtime error signal carrying a source position and a
// snapshot of the call stack.
func (e *Evaluator) errorAt(line, column int, kind value.ErrorKind, format string, args ...interface{}) *value.Error {
	return &value.Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Line:    line,
		Column:  column,
		Trace:   e.snapshotTrace(),
	}
}

// exprError builds a runtime error positioned at an expression's leading
// token.
func (e *Evaluator) exprError(node parser.ExpressionNode, kind value.ErrorKind, format string, args ...interface{}) *value.Error {
	line, column := node.Pos()
	return e.errorAt(line, column, kind, format, args...)
}
