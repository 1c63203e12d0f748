/*
File    : lamina-go/parser/parser.go
Project : Lamina interpreter in Go
*/

/*
Package parser implements a recursive-descent parser with Pratt-style
operator precedence for the Lamina language.

The parser converts the lexer's token stream into an Abstract Syntax Tree.
It handles:
- Expressions (binary, unary, literals, identifiers, calls, namespace calls,
  array literals, indexing)
- Statements (declarations, assignment, control flow, function definitions,
  module includes)
- Operator precedence and associativity per the language definition

Errors are collected instead of aborting on the first problem: a malformed
statement is reported with the offending token's line and column, the parser
synchronizes at the next statement boundary, and parsing continues. A parse
with errors yields no usable tree (callers must check HasErrors).
*/
package parser

import (
	"fmt"

	"github.com/iOS-GM/lamina-go/lexer"
)

// Parser represents the parser state and configuration.
type Parser struct {
	Lex       lexer.Lexer // Lexer instance producing the token stream
	CurrToken lexer.Token // Current token being processed
	NextToken lexer.Token // One-token lookahead

	// Function maps for Pratt parsing.
	// These maps associate token types with their parsing functions.
	UnaryFuncs  map[lexer.TokenType]unaryParseFunction  // Prefix operators and primaries
	BinaryFuncs map[lexer.TokenType]binaryParseFunction // Binary/postfix operators

	// Collected parsing errors. Parsing continues after an error so that a
	// single run can report every problem in the input.
	Errors []string
}

// NewParser creates and initializes a new Parser for the given source code.
// The parser is ready to use immediately; call Parse to build the AST.
func NewParser(src string) *Parser {
	par := &Parser{
		Lex: lexer.NewLexer(src),
	}
	par.init()
	return par
}

// init initializes the parser's internal state: the Pratt function maps,
// the error list, and the two-token lookahead window.
func (par *Parser) init() {
	par.UnaryFuncs = make(map[lexer.TokenType]unaryParseFunction)
	par.BinaryFuncs = make(map[lexer.TokenType]binaryParseFunction)
	par.Errors = make([]string, 0)

	// Primaries and prefix operators
	par.registerUnary(par.parseLiteralExpression,
		lexer.NUMBER_LIT, lexer.STRING_LIT, lexer.TRUE_KEY, lexer.FALSE_KEY, lexer.NULL_KEY)
	par.registerUnary(par.parseIdentifierExpression, lexer.IDENT_ID)
	par.registerUnary(par.parseUnaryExpression, lexer.MINUS_OP, lexer.NOT_OP)
	par.registerUnary(par.parseParenthesizedExpression, lexer.LEFT_PAREN)
	par.registerUnary(par.parseArrayExpression, lexer.LEFT_BRACKET)
	par.registerUnary(par.parseInputExpression, lexer.INPUT_KEY)

	// Binary operators
	par.registerBinary(par.parseBinaryExpression,
		lexer.EQ_OP, lexer.NE_OP,
		lexer.LT_OP, lexer.LE_OP, lexer.GT_OP, lexer.GE_OP,
		lexer.PLUS_OP, lexer.MINUS_OP,
		lexer.MUL_OP, lexer.DIV_OP, lexer.MOD_OP,
		lexer.POW_OP)

	// Postfix indexing
	par.registerBinary(par.parseIndexExpression, lexer.LEFT_BRACKET)

	// Prime the two-token lookahead
	par.advance()
	par.advance()
}

// registerUnary associates a prefix/primary parse function with token types.
func (par *Parser) registerUnary(f unaryParseFunction, tokenTypes ...lexer.TokenType) {
	for _, t := range tokenTypes {
		par.UnaryFuncs[t] = f
	}
}

// registerBinary associates a binary/postfix parse function with token types.
func (par *Parser) registerBinary(f binaryParseFunction, tokenTypes ...lexer.TokenType) {
	for _, t := range tokenTypes {
		par.BinaryFuncs[t] = f
	}
}

// advance slides the lookahead window one token forward.
func (par *Parser) advance() {
	par.CurrToken = par.NextToken
	par.NextToken = par.Lex.NextToken()
}

// currTokenIs reports whether the current token has the given type.
func (par *Parser) currTokenIs(t lexer.TokenType) bool {
	return par.CurrToken.Type == t
}

// nextTokenIs reports whether the lookahead token has the given type.
func (par *Parser) nextTokenIs(t lexer.TokenType) bool {
	return par.NextToken.Type == t
}

// expectNext advances onto the lookahead token if it has the expected type.
// Otherwise it records an error at the lookahead position and stays put.
func (par *Parser) expectNext(expected lexer.TokenType) bool {
	if par.nextTokenIs(expected) {
		par.advance()
		return true
	}
	par.addTokenError(par.NextToken, "expected %q, found %q", string(expected), par.NextToken.Literal)
	return false
}

// addTokenError records a parse error with the token's source position.
func (par *Parser) addTokenError(tok lexer.Token, format string, args ...interface{}) {
	msg := fmt.Sprintf("[%d:%d] PARSE ERROR: %s", tok.Line, tok.Column, fmt.Sprintf(format, args...))
	par.Errors = append(par.Errors, msg)
}

// synchronize skips tokens until a statement boundary (after a semicolon, or
// at a closing brace or EOF) so that one malformed statement does not cascade
// into spurious errors for the rest of the input.
func (par *Parser) synchronize() {
	for !par.currTokenIs(lexer.EOF_TYPE) {
		if par.currTokenIs(lexer.SEMICOLON_DELIM) {
			return
		}
		if par.nextTokenIs(lexer.RIGHT_BRACE) {
			return
		}
		par.advance()
	}
}

// HasErrors reports whether any parse errors were collected.
func (par *Parser) HasErrors() bool {
	return len(par.Errors) > 0
}

// GetErrors returns the collected parse errors.
func (par *Parser) GetErrors() []string {
	errs := par.Errors
	if lexErrs := par.Lex.Errors; len(lexErrs) > 0 {
		errs = append(append([]string{}, lexErrs...), errs...)
	}
	return errs
}

// Parse parses the whole input and returns the root of the AST.
// The returned tree is only meaningful when HasErrors reports false; on
// failure callers get the collected diagnostics via GetErrors.
func (par *Parser) Parse() *RootNode {
	root := &RootNode{Statements: make([]StatementNode, 0)}
	for !par.currTokenIs(lexer.EOF_TYPE) {
		stmt := par.parseStatement()
		if stmt != nil {
			root.Statements = append(root.Statements, stmt)
		} else {
			par.synchronize()
		}
		par.advance()
	}
	return root
}
