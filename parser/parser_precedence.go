/*
File    : lamina-go/parser/parser_precedence.go
Project : Lamina interpreter in Go
*/
package parser

import "github.com/iOS-GM/lamina-go/lexer"

// Operator precedence constants.
// Higher number = higher precedence (binds tighter).
//
// Precedence hierarchy (lowest to highest):
//  1. Equality operators: == !=
//  2. Relational operators: < <= > >=
//  3. Additive operators: + -
//  4. Multiplicative operators: * / %
//  5. Exponentiation: ^ (right-associative)
//  6. Unary/prefix operators: - !
//  7. Postfix indexing and primaries
//
// Example: in "a + b * c", multiplication binds tighter than addition, so
// the expression parses as "a + (b * c)".
const (
	MINIMUM_PRIORITY = 0 // Base priority for starting expression parsing

	// Equality: == !=
	EQUALITY_PRIORITY = 10

	// Relational: < <= > >=
	RELATIONAL_PRIORITY = 20

	// Additive: + -
	PLUS_PRIORITY = 30

	// Multiplicative: * / %
	MUL_PRIORITY = 40

	// Exponentiation: ^ (right-associative: 2^3^2 parses as 2^(3^2))
	POW_PRIORITY = 50

	// Unary/prefix: - !
	PREFIX_PRIORITY = 60

	// Postfix indexing: arr[i]
	INDEX_PRIORITY = 70
)

// getPrecedence returns the precedence level for a given token.
// This function is central to the Pratt parsing algorithm, determining how
// tightly operators bind to their operands. Returns MINIMUM_PRIORITY for
// tokens that are not binary/postfix operators.
func getPrecedence(token *lexer.Token) int {
	switch token.Type {
	case lexer.EQ_OP, lexer.NE_OP:
		return EQUALITY_PRIORITY
	case lexer.LT_OP, lexer.LE_OP, lexer.GT_OP, lexer.GE_OP:
		return RELATIONAL_PRIORITY
	case lexer.PLUS_OP, lexer.MINUS_OP:
		return PLUS_PRIORITY
	case lexer.MUL_OP, lexer.DIV_OP, lexer.MOD_OP:
		return MUL_PRIORITY
	case lexer.POW_OP:
		return POW_PRIORITY
	case lexer.LEFT_BRACKET:
		return INDEX_PRIORITY
	default:
		return MINIMUM_PRIORITY
	}
}

// binaryParseFunction is a function type for parsing binary/postfix
// expressions. The already-parsed left operand is passed in; the function
// consumes the operator and right side and returns the combined node.
type binaryParseFunction func(ExpressionNode) ExpressionNode

// unaryParseFunction is a function type for parsing prefix expressions and
// primaries (literals, identifiers, grouped expressions, array literals).
type unaryParseFunction func() ExpressionNode
