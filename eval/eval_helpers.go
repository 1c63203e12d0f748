/*
File    : lamina-go/eval/eval_helpers.go
Project : Lamina interpreter in Go
*/
package eval

import (
	"math"
	"math/big"

	"github.com/iOS-GM/lamina-go/lexer"
	"github.com/iOS-GM/lamina-go/module"
	"github.com/iOS-GM/lamina-go/parser"
	"github.com/iOS-GM/lamina-go/value"
)

// statementModuleError converts a loader error raised by a statement into a
// runtime error signal at the statement's position.
func (e *Evaluator) statementModuleError(line, column int, err error) *value.Error {
	if modErr, ok := err.(*module.Error); ok {
		return e.errorAt(line, column, value.ModuleError, "%s: %s", modErr.Code, modErr.Detail)
	}
	return e.errorAt(line, column, value.ModuleError, "%s", err.Error())
}

// applyBinaryOp applies a binary operator under the coercion lattice:
//   - comparisons yield bool
//   - `+` concatenates when either side is a string (the other side is
//     stringified)
//   - a bigint operand pairs with bigint or int; pairing with float is a
//     type error until the upstream semantics are settled
//   - int op int stays int unless the result overflows, which widens to
//     float; any float operand widens the other side
func (e *Evaluator) applyBinaryOp(n *parser.BinaryExpressionNode, left, right value.Object) value.Object {
	op := n.Operation.Type

	switch op {
	case lexer.EQ_OP, lexer.NE_OP, lexer.LT_OP, lexer.LE_OP, lexer.GT_OP, lexer.GE_OP:
		return e.applyComparison(n, op, left, right)
	}

	if op == lexer.PLUS_OP &&
		(left.GetType() == value.StringType || right.GetType() == value.StringType) {
		return &value.String{Value: left.ToString() + right.ToString()}
	}

	leftBig, leftIsBig := left.(*value.BigInt)
	rightBig, rightIsBig := right.(*value.BigInt)
	if leftIsBig || rightIsBig {
		return e.applyBigIntOp(n, op, left, right, leftBig, rightBig)
	}

	leftInt, leftIsInt := left.(*value.Integer)
	rightInt, rightIsInt := right.(*value.Integer)
	if leftIsInt && rightIsInt {
		return e.applyIntegerOp(n, op, leftInt.Value, rightInt.Value)
	}

	leftFloat, leftOk := numericValue(left)
	rightFloat, rightOk := numericValue(right)
	if !leftOk || !rightOk {
		return e.exprError(n, value.TypeError,
			"operator %q not supported for %s and %s", n.Operation.Literal, left.GetType(), right.GetType())
	}
	return e.applyFloatOp(n, op, leftFloat, rightFloat)
}

// numericValue extracts a float64 from an int or float operand.
func numericValue(obj value.Object) (float64, bool) {
	switch v := obj.(type) {
	case *value.Integer:
		return float64(v.Value), true
	case *value.Float:
		return v.Value, true
	default:
		return 0, false
	}
}

// applyIntegerOp performs int op int arithmetic. Addition, subtraction and
// multiplication widen to float on 64-bit overflow; division and modulo by
// zero raise; exponentiation stays integral for non-negative exponents that
// fit.
func (e *Evaluator) applyIntegerOp(n *parser.BinaryExpressionNode, op lexer.TokenType, a, b int64) value.Object {
	switch op {
	case lexer.PLUS_OP:
		if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
			return &value.Float{Value: float64(a) + float64(b)}
		}
		return &value.Integer{Value: a + b}
	case lexer.MINUS_OP:
		if (b < 0 && a > math.MaxInt64+b) || (b > 0 && a < math.MinInt64+b) {
			return &value.Float{Value: float64(a) - float64(b)}
		}
		return &value.Integer{Value: a - b}
	case lexer.MUL_OP:
		if a != 0 && b != 0 {
			c := a * b
			if c/a != b || (a == -1 && b == math.MinInt64) {
				return &value.Float{Value: float64(a) * float64(b)}
			}
			return &value.Integer{Value: c}
		}
		return &value.Integer{Value: 0}
	case lexer.DIV_OP:
		if b == 0 {
			return e.exprError(n, value.DivisionByZero, "division by zero")
		}
		return &value.Integer{Value: a / b}
	case lexer.MOD_OP:
		if b == 0 {
			return e.exprError(n, value.DivisionByZero, "modulo by zero")
		}
		return &value.Integer{Value: a % b}
	case lexer.POW_OP:
		return e.applyIntegerPow(a, b)
	default:
		return e.exprError(n, value.TypeError, "operator %q not supported for int", n.Operation.Literal)
	}
}

// applyIntegerPow computes a^b, staying integral while the result fits.
// Negative exponents and 64-bit overflow produce a float result.
func (e *Evaluator) applyIntegerPow(a, b int64) value.Object {
	if b < 0 {
		return &value.Float{Value: math.Pow(float64(a), float64(b))}
	}
	result := int64(1)
	base := a
	exp := b
	for exp > 0 {
		if exp&1 == 1 {
			if overflows(result, base) {
				return &value.Float{Value: math.Pow(float64(a), float64(b))}
			}
			result *= base
		}
		exp >>= 1
		if exp > 0 {
			if overflows(base, base) {
				return &value.Float{Value: math.Pow(float64(a), float64(b))}
			}
			base *= base
		}
	}
	return &value.Integer{Value: result}
}

// overflows reports whether a*b overflows int64.
func overflows(a, b int64) bool {
	if a == 0 || b == 0 {
		return false
	}
	c := a * b
	return c/a != b
}

// applyFloatOp performs arithmetic once either operand widened to float.
// Modulo mirrors the host's fmod semantics.
func (e *Evaluator) applyFloatOp(n *parser.BinaryExpressionNode, op lexer.TokenType, a, b float64) value.Object {
	switch op {
	case lexer.PLUS_OP:
		return &value.Float{Value: a + b}
	case lexer.MINUS_OP:
		return &value.Float{Value: a - b}
	case lexer.MUL_OP:
		return &value.Float{Value: a * b}
	case lexer.DIV_OP:
		if b == 0 {
			return e.exprError(n, value.DivisionByZero, "division by zero")
		}
		return &value.Float{Value: a / b}
	case lexer.MOD_OP:
		return &value.Float{Value: math.Mod(a, b)}
	case lexer.POW_OP:
		return &value.Float{Value: math.Pow(a, b)}
	default:
		return e.exprError(n, value.TypeError, "operator %q not supported for float", n.Operation.Literal)
	}
}

// applyBigIntOp performs arithmetic when a bigint operand is present. The
// other operand must be a bigint or an int (which promotes); mixing with a
// float is a type error.
func (e *Evaluator) applyBigIntOp(n *parser.BinaryExpressionNode, op lexer.TokenType, left, right value.Object, leftBig, rightBig *value.BigInt) value.Object {
	a, ok := promoteToBig(left, leftBig)
	if !ok {
		return e.exprError(n, value.TypeError,
			"operator %q not supported for %s and %s", n.Operation.Literal, left.GetType(), right.GetType())
	}
	b, ok := promoteToBig(right, rightBig)
	if !ok {
		return e.exprError(n, value.TypeError,
			"operator %q not supported for %s and %s", n.Operation.Literal, left.GetType(), right.GetType())
	}

	out := new(big.Int)
	switch op {
	case lexer.PLUS_OP:
		out.Add(a, b)
	case lexer.MINUS_OP:
		out.Sub(a, b)
	case lexer.MUL_OP:
		out.Mul(a, b)
	case lexer.DIV_OP:
		if b.Sign() == 0 {
			return e.exprError(n, value.DivisionByZero, "division by zero")
		}
		out.Quo(a, b)
	case lexer.MOD_OP:
		if b.Sign() == 0 {
			return e.exprError(n, value.DivisionByZero, "modulo by zero")
		}
		out.Rem(a, b)
	case lexer.POW_OP:
		if b.Sign() < 0 || !b.IsInt64() {
			return e.exprError(n, value.TypeError, "bigint exponent must be a non-negative int")
		}
		out.Exp(a, b, nil)
	default:
		return e.exprError(n, value.TypeError, "operator %q not supported for bigint", n.Operation.Literal)
	}
	return &value.BigInt{Value: out}
}

// promoteToBig lifts a bigint or int operand into a big.Int.
func promoteToBig(obj value.Object, asBig *value.BigInt) (*big.Int, bool) {
	if asBig != nil {
		return asBig.Value, true
	}
	if i, ok := obj.(*value.Integer); ok {
		return big.NewInt(i.Value), true
	}
	return nil, false
}

// negBig returns a freshly allocated negation.
func negBig(v *big.Int) *big.Int {
	return new(big.Int).Neg(v)
}

// applyComparison evaluates the comparison operators. Equality between
// incomparable types is false (inequality true); ordering incomparable
// types is a type error.
func (e *Evaluator) applyComparison(n *parser.BinaryExpressionNode, op lexer.TokenType, left, right value.Object) value.Object {
	if op == lexer.EQ_OP || op == lexer.NE_OP {
		equal := valuesEqual(left, right)
		if op == lexer.NE_OP {
			equal = !equal
		}
		return &value.Boolean{Value: equal}
	}

	cmp, ok := orderValues(left, right)
	if !ok {
		return e.exprError(n, value.TypeError,
			"operator %q not supported for %s and %s", n.Operation.Literal, left.GetType(), right.GetType())
	}
	switch op {
	case lexer.LT_OP:
		return &value.Boolean{Value: cmp < 0}
	case lexer.LE_OP:
		return &value.Boolean{Value: cmp <= 0}
	case lexer.GT_OP:
		return &value.Boolean{Value: cmp > 0}
	default: // GE_OP
		return &value.Boolean{Value: cmp >= 0}
	}
}

// valuesEqual implements `==` across the value universe.
func valuesEqual(left, right value.Object) bool {
	// numbers compare by value with int->float widening
	if cmp, ok := orderValues(left, right); ok {
		return cmp == 0
	}
	switch l := left.(type) {
	case *value.Null:
		_, isNull := right.(*value.Null)
		return isNull
	case *value.Boolean:
		r, isBool := right.(*value.Boolean)
		return isBool && l.Value == r.Value
	default:
		return false
	}
}

// orderValues returns -1/0/+1 for operand pairs with a defined ordering:
// int/float mixes, bigint with bigint or int, and string with string.
func orderValues(left, right value.Object) (int, bool) {
	leftBig, leftIsBig := left.(*value.BigInt)
	rightBig, rightIsBig := right.(*value.BigInt)
	if leftIsBig || rightIsBig {
		a, ok := promoteToBig(left, leftBig)
		if !ok {
			return 0, false
		}
		b, ok := promoteToBig(right, rightBig)
		if !ok {
			return 0, false
		}
		return a.Cmp(b), true
	}

	if ls, ok := left.(*value.String); ok {
		rs, isString := right.(*value.String)
		if !isString {
			return 0, false
		}
		switch {
		case ls.Value < rs.Value:
			return -1, true
		case ls.Value > rs.Value:
			return 1, true
		default:
			return 0, true
		}
	}

	a, leftOk := numericValue(left)
	b, rightOk := numericValue(right)
	if !leftOk || !rightOk {
		return 0, false
	}
	switch {
	case a < b:
		return -1, true
	case a > b:
		return 1, true
	default:
		return 0, true
	}
}
