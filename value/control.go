/*
File    : lamina-go/value/control.go
Project : Lamina interpreter in Go
*/
package value

import (
	"fmt"
	"strings"
)

// The evaluator models its four non-local exits (return, break, continue,
// runtime error) as sentinel objects threaded through evaluation results.
// Only the innermost matching construct consumes each sentinel; a runtime
// error is consumed only by the top-level driver.

// ErrorKind classifies runtime errors per the language's error taxonomy.
type ErrorKind string

const (
	UndefinedName   ErrorKind = "UndefinedName"
	TypeError       ErrorKind = "TypeError"
	DivisionByZero  ErrorKind = "DivisionByZero"
	ArityError      ErrorKind = "ArityError"
	RecursionLimit  ErrorKind = "RecursionLimit"
	IndexOutOfRange ErrorKind = "IndexOutOfRange"
	ModuleError     ErrorKind = "ModuleError"
)

// Frame is one entry of a runtime call stack snapshot, recorded at every
// function entry so errors can print a trace.
type Frame struct {
	Function string // Name of the function being executed
	Line     int    // Source line of the call site
}

// Error represents a runtime error signal. It carries the error kind, a
// message, the source position of the offending expression, and a snapshot
// of the call stack (innermost frame first).
type Error struct {
	Kind    ErrorKind // Classification per the error taxonomy
	Message string    // Human-readable detail
	Line    int       // Source line (1-indexed, 0 if unknown)
	Column  int       // Source column (1-indexed, 0 if unknown)
	Trace   []Frame   // Call stack snapshot, innermost first
}

// GetType returns the type of the Error object
func (e *Error) GetType() Type {
	return ErrorType
}

// ToString returns the display form, e.g. "RuntimeError: UndefinedName: y"
func (e *Error) ToString() string {
	return fmt.Sprintf("RuntimeError: %s: %s", e.Kind, e.Message)
}

// ToObject returns the error with its source position attached
func (e *Error) ToObject() string {
	if e.Line > 0 {
		return fmt.Sprintf("<error(%s: %s at line %d)>", e.Kind, e.Message, e.Line)
	}
	return fmt.Sprintf("<error(%s: %s)>", e.Kind, e.Message)
}

// TraceString renders the recorded call stack, innermost frame first.
// Returns the empty string when no frames were recorded.
func (e *Error) TraceString() string {
	if len(e.Trace) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("Stack trace (most recent call first):\n")
	for _, frame := range e.Trace {
		sb.WriteString(fmt.Sprintf("  at %s (line %d)\n", frame.Function, frame.Line))
	}
	return sb.String()
}

// ReturnValue wraps the operand of a return statement while it unwinds to
// the nearest function frame.
type ReturnValue struct {
	Value Object // The value carried back to the caller
}

// GetType returns the type of the ReturnValue signal
func (r *ReturnValue) GetType() Type {
	return ReturnType
}

// ToString returns the wrapped value's display form
func (r *ReturnValue) ToString() string {
	return r.Value.ToString()
}

// ToObject returns a detailed representation of the signal
func (r *ReturnValue) ToObject() string {
	return fmt.Sprintf("<return(%s)>", r.Value.ToString())
}

// Break signals a break statement unwinding to the nearest loop.
type Break struct{}

// GetType returns the type of the Break signal
func (b *Break) GetType() Type {
	return BreakType
}

// ToString returns "break"
func (b *Break) ToString() string {
	return "break"
}

// ToObject returns "<break>"
func (b *Break) ToObject() string {
	return "<break>"
}

// Continue signals a continue statement unwinding to the nearest loop.
type Continue struct{}

// GetType returns the type of the Continue signal
func (c *Continue) GetType() Type {
	return ContinueType
}

// ToString returns "continue"
func (c *Continue) ToString() string {
	return "continue"
}

// ToObject returns "<continue>"
func (c *Continue) ToObject() string {
	return "<continue>"
}

// IsError reports whether obj is a runtime error signal.
func IsError(obj Object) bool {
	if obj == nil {
		return false
	}
	return obj.GetType() == ErrorType
}
