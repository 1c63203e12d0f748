/*
File    : lamina-go/parser/parser_expressions.go
Project : Lamina interpreter in Go
*/
package parser

import (
	"github.com/iOS-GM/lamina-go/lexer"
)

// parseExpression is the core of the Pratt algorithm. It parses a complete
// expression whose operators all bind tighter than the given precedence.
//
// Convention used throughout the expression parsers: a parse function is
// entered with CurrToken on the first token of its production and leaves
// CurrToken on the last token of its production.
func (par *Parser) parseExpression(precedence int) ExpressionNode {
	unary, ok := par.UnaryFuncs[par.CurrToken.Type]
	if !ok {
		par.addTokenError(par.CurrToken, "unexpected token %q in expression", par.CurrToken.Literal)
		return nil
	}
	left := unary()
	if left == nil {
		return nil
	}

	for !par.nextTokenIs(lexer.SEMICOLON_DELIM) && precedence < getPrecedence(&par.NextToken) {
		binary, ok := par.BinaryFuncs[par.NextToken.Type]
		if !ok {
			return left
		}
		par.advance()
		left = binary(left)
		if left == nil {
			return nil
		}
	}
	return left
}

// parseLiteralExpression parses a literal primary: a number, string, `true`,
// `false`, or `null`. The raw token text is retained; typing happens at
// evaluation time.
func (par *Parser) parseLiteralExpression() ExpressionNode {
	return &LiteralExpressionNode{Token: par.CurrToken}
}

// parseInputExpression parses the `input` keyword as a primary expression.
func (par *Parser) parseInputExpression() ExpressionNode {
	return &InputExpressionNode{Token: par.CurrToken}
}

// parseIdentifierExpression parses an identifier primary, which can be one
// of three shapes depending on what follows:
//   - name(args...)      a call of a named function
//   - ns.fn(args...)     a namespace call into a native module
//   - name               a plain variable reference
func (par *Parser) parseIdentifierExpression() ExpressionNode {
	ident := par.CurrToken

	switch {
	case par.nextTokenIs(lexer.LEFT_PAREN):
		par.advance()
		args := par.parseExpressionList(lexer.RIGHT_PAREN)
		if args == nil {
			return nil
		}
		return &CallExpressionNode{
			Callee:    &IdentifierExpressionNode{Token: ident, Name: ident.Literal},
			Arguments: args,
		}

	case par.nextTokenIs(lexer.DOT_OP):
		par.advance()
		if !par.expectNext(lexer.IDENT_ID) {
			return nil
		}
		function := par.CurrToken.Literal
		if !par.expectNext(lexer.LEFT_PAREN) {
			return nil
		}
		args := par.parseExpressionList(lexer.RIGHT_PAREN)
		if args == nil {
			return nil
		}
		return &NamespaceCallExpressionNode{
			Token:     ident,
			Namespace: ident.Literal,
			Function:  function,
			Arguments: args,
		}

	default:
		return &VarExpressionNode{Token: ident, Name: ident.Literal}
	}
}

// parseUnaryExpression parses a prefix operation: unary minus or logical NOT.
func (par *Parser) parseUnaryExpression() ExpressionNode {
	operation := par.CurrToken
	par.advance()
	operand := par.parseExpression(PREFIX_PRIORITY)
	if operand == nil {
		return nil
	}
	return &UnaryExpressionNode{Operation: operation, Operand: operand}
}

// parseParenthesizedExpression parses a grouped expression: (expr).
// Grouping is transparent: the inner expression node is returned directly.
func (par *Parser) parseParenthesizedExpression() ExpressionNode {
	par.advance()
	expr := par.parseExpression(MINIMUM_PRIORITY)
	if expr == nil {
		return nil
	}
	if !par.expectNext(lexer.RIGHT_PAREN) {
		return nil
	}
	return expr
}

// parseArrayExpression parses an array literal: [e1, e2, ...] (empty
// permitted).
func (par *Parser) parseArrayExpression() ExpressionNode {
	bracket := par.CurrToken
	elements := par.parseExpressionList(lexer.RIGHT_BRACKET)
	if elements == nil {
		return nil
	}
	return &ArrayExpressionNode{Token: bracket, Elements: elements}
}

// parseBinaryExpression parses the right-hand side of a binary operation.
// All binary operators are left-associative except `^`, which parses its
// right side at one level below its own precedence to associate rightward.
func (par *Parser) parseBinaryExpression(left ExpressionNode) ExpressionNode {
	operation := par.CurrToken
	precedence := getPrecedence(&operation)
	if operation.Type == lexer.POW_OP {
		precedence--
	}
	par.advance()
	right := par.parseExpression(precedence)
	if right == nil {
		return nil
	}
	return &BinaryExpressionNode{Operation: operation, Left: left, Right: right}
}

// parseIndexExpression parses a postfix index: target[index].
func (par *Parser) parseIndexExpression(target ExpressionNode) ExpressionNode {
	bracket := par.CurrToken
	par.advance()
	index := par.parseExpression(MINIMUM_PRIORITY)
	if index == nil {
		return nil
	}
	if !par.expectNext(lexer.RIGHT_BRACKET) {
		return nil
	}
	return &IndexExpressionNode{Token: bracket, Target: target, Index: index}
}

// parseExpressionList parses a comma-separated expression list.
// Entered with CurrToken on the opening delimiter; leaves CurrToken on the
// given terminator. An empty list is permitted. Returns nil on parse error.
func (par *Parser) parseExpressionList(terminator lexer.TokenType) []ExpressionNode {
	exprs := make([]ExpressionNode, 0)

	if par.nextTokenIs(terminator) {
		par.advance()
		return exprs
	}

	par.advance()
	expr := par.parseExpression(MINIMUM_PRIORITY)
	if expr == nil {
		return nil
	}
	exprs = append(exprs, expr)

	for par.nextTokenIs(lexer.COMMA_DELIM) {
		par.advance()
		par.advance()
		expr = par.parseExpression(MINIMUM_PRIORITY)
		if expr == nil {
			return nil
		}
		exprs = append(exprs, expr)
	}

	if !par.expectNext(terminator) {
		return nil
	}
	return exprs
}
