/*
File    : lamina-go/std/math.go
Project : Lamina interpreter in Go
*/

// Package std - math.go
// Basic numeric builtins. These operate on int and float values; richer
// math lives in native modules behind the ABI.
package std

import (
	"fmt"
	"io"
	"math"

	"github.com/iOS-GM/lamina-go/value"
)

var mathMethods = []*Builtin{
	{Name: "abs", Callback: absBuiltin},     // Absolute value
	{Name: "min", Callback: minBuiltin},     // Smaller of two numbers
	{Name: "max", Callback: maxBuiltin},     // Larger of two numbers
	{Name: "floor", Callback: floorBuiltin}, // Largest integer <= x
	{Name: "ceil", Callback: ceilBuiltin},   // Smallest integer >= x
	{Name: "sqrt", Callback: sqrtBuiltin},   // Square root
	{Name: "pow", Callback: powBuiltin},     // x raised to y
}

func init() {
	Builtins = append(Builtins, mathMethods...)
}

// numericOperand extracts a float64 from an int or float argument.
func numericOperand(name string, arg value.Object) (float64, *value.Error) {
	switch v := arg.(type) {
	case *value.Integer:
		return float64(v.Value), nil
	case *value.Float:
		return v.Value, nil
	default:
		return 0, &value.Error{
			Kind:    value.TypeError,
			Message: fmt.Sprintf("%s expects a number, got %s", name, arg.GetType()),
		}
	}
}

// numericResult converts a float64 back to an Integer when the inputs were
// all ints and the value is integral, otherwise to a Float.
func numericResult(f float64, allInt bool) value.Object {
	if allInt && f == math.Trunc(f) && !math.IsInf(f, 0) {
		return &value.Integer{Value: int64(f)}
	}
	return &value.Float{Value: f}
}

// allIntegers reports whether every argument is an int.
func allIntegers(args []value.Object) bool {
	for _, arg := range args {
		if arg.GetType() != value.IntegerType {
			return false
		}
	}
	return true
}

func absBuiltin(rt Runtime, writer io.Writer, args ...value.Object) value.Object {
	if len(args) != 1 {
		return &value.Error{Kind: value.ArityError, Message: ArityMessage("abs", 1, len(args))}
	}
	f, err := numericOperand("abs", args[0])
	if err != nil {
		return err
	}
	return numericResult(math.Abs(f), allIntegers(args))
}

func minBuiltin(rt Runtime, writer io.Writer, args ...value.Object) value.Object {
	if len(args) != 2 {
		return &value.Error{Kind: value.ArityError, Message: ArityMessage("min", 2, len(args))}
	}
	a, err := numericOperand("min", args[0])
	if err != nil {
		return err
	}
	b, err := numericOperand("min", args[1])
	if err != nil {
		return err
	}
	return numericResult(math.Min(a, b), allIntegers(args))
}

func maxBuiltin(rt Runtime, writer io.Writer, args ...value.Object) value.Object {
	if len(args) != 2 {
		return &value.Error{Kind: value.ArityError, Message: ArityMessage("max", 2, len(args))}
	}
	a, err := numericOperand("max", args[0])
	if err != nil {
		return err
	}
	b, err := numericOperand("max", args[1])
	if err != nil {
		return err
	}
	return numericResult(math.Max(a, b), allIntegers(args))
}

func floorBuiltin(rt Runtime, writer io.Writer, args ...value.Object) value.Object {
	if len(args) != 1 {
		return &value.Error{Kind: value.ArityError, Message: ArityMessage("floor", 1, len(args))}
	}
	f, err := numericOperand("floor", args[0])
	if err != nil {
		return err
	}
	return &value.Integer{Value: int64(math.Floor(f))}
}

func ceilBuiltin(rt Runtime, writer io.Writer, args ...value.Object) value.Object {
	if len(args) != 1 {
		return &value.Error{Kind: value.ArityError, Message: ArityMessage("ceil", 1, len(args))}
	}
	f, err := numericOperand("ceil", args[0])
	if err != nil {
		return err
	}
	return &value.Integer{Value: int64(math.Ceil(f))}
}

func sqrtBuiltin(rt Runtime, writer io.Writer, args ...value.Object) value.Object {
	if len(args) != 1 {
		return &value.Error{Kind: value.ArityError, Message: ArityMessage("sqrt", 1, len(args))}
	}
	f, err := numericOperand("sqrt", args[0])
	if err != nil {
		return err
	}
	if f < 0 {
		return &value.Error{Kind: value.TypeError, Message: "sqrt of a negative number"}
	}
	return &value.Float{Value: math.Sqrt(f)}
}

func powBuiltin(rt Runtime, writer io.Writer, args ...value.Object) value.Object {
	if len(args) != 2 {
		return &value.Error{Kind: value.ArityError, Message: ArityMessage("pow", 2, len(args))}
	}
	base, err := numericOperand("pow", args[0])
	if err != nil {
		return err
	}
	exp, err := numericOperand("pow", args[1])
	if err != nil {
		return err
	}
	return numericResult(math.Pow(base, exp), allIntegers(args))
}
