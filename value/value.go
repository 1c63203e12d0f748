/*
File    : lamina-go/value/value.go
Project : Lamina interpreter in Go
*/

// Package value defines the runtime value model of the Lamina language.
// It provides implementations for primitive types (null, bool, int, float,
// string), composite types (arrays, arbitrary-precision integers), and the
// sentinel types the evaluator threads through evaluation (errors, return
// values, break and continue signals). All types implement the Object
// interface, which allows for type checking, string representation, and
// object inspection.
package value

import (
	"fmt"
	"strings"
)

// Type represents the type of a Lamina object as a string constant.
// These constants are used to identify the type of objects in the language,
// enabling type checking and polymorphic behavior across object types.
type Type string

const (
	// NullType represents the null value
	NullType Type = "null"
	// BooleanType represents boolean (true/false) values
	BooleanType Type = "bool"
	// IntegerType represents 64-bit integer values
	IntegerType Type = "int"
	// FloatType represents 64-bit floating-point values
	FloatType Type = "float"
	// StringType represents string values
	StringType Type = "string"
	// ArrayType represents arrays of Lamina objects
	ArrayType Type = "array"
	// BigIntType represents arbitrary-precision integer values
	BigIntType Type = "bigint"
	// FunctionType represents user-defined function objects
	FunctionType Type = "func"

	// ErrorType represents runtime error signals
	ErrorType Type = "error"
	// ReturnType represents a return statement signal
	ReturnType Type = "return"
	// BreakType represents a break statement signal
	BreakType Type = "break"
	// ContinueType represents a continue statement signal
	ContinueType Type = "continue"
)

// Object is the core interface that all Lamina runtime values implement.
// It provides methods for type identification, string representation for
// display, and object inspection for debugging purposes.
type Object interface {
	// GetType returns the Type of the object, used for type checking
	GetType() Type
	// ToString returns a human-readable string representation of the value
	ToString() string
	// ToObject returns a detailed string representation including type
	// information, useful for debugging and the REPL's :vars listing
	ToObject() string
}

// Null represents the null value.
type Null struct{}

// GetType returns the type of the Null object
func (n *Null) GetType() Type {
	return NullType
}

// ToString returns "null"
func (n *Null) ToString() string {
	return "null"
}

// ToObject returns "<null>"
func (n *Null) ToObject() string {
	return "<null>"
}

// Boolean represents a true/false value.
type Boolean struct {
	Value bool // The underlying boolean value
}

// GetType returns the type of the Boolean object
func (b *Boolean) GetType() Type {
	return BooleanType
}

// ToString returns "true" or "false"
func (b *Boolean) ToString() string {
	return fmt.Sprintf("%t", b.Value)
}

// ToObject returns a detailed representation including type info (e.g., "<bool(true)>")
func (b *Boolean) ToObject() string {
	return fmt.Sprintf("<bool(%t)>", b.Value)
}

// Integer represents a 64-bit signed integer value.
type Integer struct {
	Value int64 // The underlying integer value
}

// GetType returns the type of the Integer object
func (i *Integer) GetType() Type {
	return IntegerType
}

// ToString returns the string representation of the integer value (e.g., "42")
func (i *Integer) ToString() string {
	return fmt.Sprintf("%d", i.Value)
}

// ToObject returns a detailed representation including type info (e.g., "<int(42)>")
func (i *Integer) ToObject() string {
	return fmt.Sprintf("<int(%d)>", i.Value)
}

// Float represents a 64-bit floating-point value.
type Float struct {
	Value float64 // The underlying floating-point value
}

// GetType returns the type of the Float object
func (f *Float) GetType() Type {
	return FloatType
}

// ToString formats the float with the shortest representation that
// round-trips (e.g., "3.14", "2")
func (f *Float) ToString() string {
	return fmt.Sprintf("%g", f.Value)
}

// ToObject returns a detailed representation including type info (e.g., "<float(3.14)>")
func (f *Float) ToObject() string {
	return fmt.Sprintf("<float(%g)>", f.Value)
}

// String represents a string value.
type String struct {
	Value string // The underlying string value
}

// GetType returns the type of the String object
func (s *String) GetType() Type {
	return StringType
}

// ToString returns the raw string value
func (s *String) ToString() string {
	return s.Value
}

// ToObject returns a detailed representation including type info (e.g., `<string("hi")>`)
func (s *String) ToObject() string {
	return fmt.Sprintf("<string(%q)>", s.Value)
}

// Array represents an ordered sequence of Lamina objects. Arrays use shared
// ownership: binding an array to a second name aliases the same elements.
type Array struct {
	Elements []Object // The contained values
}

// GetType returns the type of the Array object
func (a *Array) GetType() Type {
	return ArrayType
}

// ToString returns the display form of the array (e.g., "[1, 2, 3]")
func (a *Array) ToString() string {
	parts := make([]string, len(a.Elements))
	for i, el := range a.Elements {
		parts[i] = el.ToString()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ToObject returns a detailed representation including type info
func (a *Array) ToObject() string {
	return fmt.Sprintf("<array(%s)>", a.ToString())
}

// Truthy maps any value to a boolean: null, false, numeric zero, and the
// empty string are false; everything else is true.
func Truthy(obj Object) bool {
	switch o := obj.(type) {
	case *Null:
		return false
	case *Boolean:
		return o.Value
	case *Integer:
		return o.Value != 0
	case *Float:
		return o.Value != 0
	case *String:
		return o.Value != ""
	case *BigInt:
		return o.Value.Sign() != 0
	default:
		return true
	}
}
