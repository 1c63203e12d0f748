/*
File    : lamina-go/parser/parser_statements.go
Project : Lamina interpreter in Go
*/
package parser

import (
	"github.com/iOS-GM/lamina-go/lexer"
)

// parseStatement dispatches on the leading token of a statement.
//
// Statement parsers follow the same convention as the expression parsers:
// entered with CurrToken on the first token of the statement, they leave
// CurrToken on the statement's final token (a semicolon or closing brace).
// Returning nil signals a parse error; the caller synchronizes at the next
// statement boundary.
func (par *Parser) parseStatement() StatementNode {
	switch par.CurrToken.Type {
	case lexer.VAR_KEY:
		return par.parseVarDeclStatement()
	case lexer.BIGINT_KEY:
		return par.parseBigIntDeclStatement()
	case lexer.DEFINE_KEY:
		return par.parseDefineStatement()
	case lexer.FUNC_KEY:
		return par.parseFuncDefStatement()
	case lexer.IF_KEY:
		return par.parseIfStatement()
	case lexer.WHILE_KEY:
		return par.parseWhileStatement()
	case lexer.RETURN_KEY:
		return par.parseReturnStatement()
	case lexer.INCLUDE_KEY:
		return par.parseIncludeStatement()
	case lexer.BREAK_KEY:
		stmt := &BreakStatementNode{Token: par.CurrToken}
		if !par.expectNext(lexer.SEMICOLON_DELIM) {
			return nil
		}
		return stmt
	case lexer.CONTINUE_KEY:
		stmt := &ContinueStatementNode{Token: par.CurrToken}
		if !par.expectNext(lexer.SEMICOLON_DELIM) {
			return nil
		}
		return stmt
	case lexer.LEFT_BRACE:
		return par.parseBlockStatement()
	case lexer.IDENT_ID:
		// `use` was never reserved: recognize the bare identifier here
		if par.CurrToken.Literal == "use" && par.nextTokenIs(lexer.IDENT_ID) {
			return par.parseUseStatement()
		}
		// assignment is recognized only at statement position
		if par.nextTokenIs(lexer.ASSIGN_OP) {
			return par.parseAssignStatement()
		}
		return par.parseExpressionStatement()
	default:
		return par.parseExpressionStatement()
	}
}

// parseVarDeclStatement parses `var IDENT = expr ;`.
func (par *Parser) parseVarDeclStatement() StatementNode {
	keyword := par.CurrToken
	if !par.expectNext(lexer.IDENT_ID) {
		return nil
	}
	name := par.CurrToken.Literal
	if !par.expectNext(lexer.ASSIGN_OP) {
		return nil
	}
	par.advance()
	init := par.parseExpression(MINIMUM_PRIORITY)
	if init == nil {
		return nil
	}
	if !par.expectNext(lexer.SEMICOLON_DELIM) {
		return nil
	}
	return &VarDeclStatementNode{Token: keyword, Name: name, Init: init}
}

// parseBigIntDeclStatement parses `bigint IDENT [= expr] ;`.
func (par *Parser) parseBigIntDeclStatement() StatementNode {
	keyword := par.CurrToken
	if !par.expectNext(lexer.IDENT_ID) {
		return nil
	}
	name := par.CurrToken.Literal

	if par.nextTokenIs(lexer.SEMICOLON_DELIM) {
		par.advance()
		return &BigIntDeclStatementNode{Token: keyword, Name: name}
	}

	if !par.expectNext(lexer.ASSIGN_OP) {
		return nil
	}
	par.advance()
	init := par.parseExpression(MINIMUM_PRIORITY)
	if init == nil {
		return nil
	}
	if !par.expectNext(lexer.SEMICOLON_DELIM) {
		return nil
	}
	return &BigIntDeclStatementNode{Token: keyword, Name: name, Init: init}
}

// parseDefineStatement parses `define IDENT = expr ;`.
func (par *Parser) parseDefineStatement() StatementNode {
	keyword := par.CurrToken
	if !par.expectNext(lexer.IDENT_ID) {
		return nil
	}
	name := par.CurrToken.Literal
	if !par.expectNext(lexer.ASSIGN_OP) {
		return nil
	}
	par.advance()
	val := par.parseExpression(MINIMUM_PRIORITY)
	if val == nil {
		return nil
	}
	if !par.expectNext(lexer.SEMICOLON_DELIM) {
		return nil
	}
	return &DefineStatementNode{Token: keyword, Name: name, Value: val}
}

// parseAssignStatement parses `IDENT = expr ;` at statement position.
// Elsewhere a bare `=` is a parse error (there is no assignment expression).
func (par *Parser) parseAssignStatement() StatementNode {
	ident := par.CurrToken
	par.advance() // onto '='
	par.advance() // onto the first token of the right-hand side
	val := par.parseExpression(MINIMUM_PRIORITY)
	if val == nil {
		return nil
	}
	if !par.expectNext(lexer.SEMICOLON_DELIM) {
		return nil
	}
	return &AssignStatementNode{Token: ident, Name: ident.Literal, Value: val}
}

// parseBlockStatement parses `{ stmt* }`.
func (par *Parser) parseBlockStatement() *BlockStatementNode {
	brace := par.CurrToken
	block := &BlockStatementNode{Token: brace, Statements: make([]StatementNode, 0)}

	par.advance()
	for !par.currTokenIs(lexer.RIGHT_BRACE) {
		if par.currTokenIs(lexer.EOF_TYPE) {
			par.addTokenError(brace, "unterminated block")
			return nil
		}
		stmt := par.parseStatement()
		if stmt == nil {
			par.synchronize()
		} else {
			block.Statements = append(block.Statements, stmt)
		}
		par.advance()
	}
	return block
}

// parseIfStatement parses `if ( expr ) block [else block]`.
func (par *Parser) parseIfStatement() StatementNode {
	keyword := par.CurrToken
	if !par.expectNext(lexer.LEFT_PAREN) {
		return nil
	}
	par.advance()
	cond := par.parseExpression(MINIMUM_PRIORITY)
	if cond == nil {
		return nil
	}
	if !par.expectNext(lexer.RIGHT_PAREN) {
		return nil
	}
	if !par.expectNext(lexer.LEFT_BRACE) {
		return nil
	}
	then := par.parseBlockStatement()
	if then == nil {
		return nil
	}

	stmt := &IfStatementNode{Token: keyword, Condition: cond, Then: then}
	if par.nextTokenIs(lexer.ELSE_KEY) {
		par.advance()
		if !par.expectNext(lexer.LEFT_BRACE) {
			return nil
		}
		stmt.Else = par.parseBlockStatement()
		if stmt.Else == nil {
			return nil
		}
	}
	return stmt
}

// parseWhileStatement parses `while ( expr ) block`.
func (par *Parser) parseWhileStatement() StatementNode {
	keyword := par.CurrToken
	if !par.expectNext(lexer.LEFT_PAREN) {
		return nil
	}
	par.advance()
	cond := par.parseExpression(MINIMUM_PRIORITY)
	if cond == nil {
		return nil
	}
	if !par.expectNext(lexer.RIGHT_PAREN) {
		return nil
	}
	if !par.expectNext(lexer.LEFT_BRACE) {
		return nil
	}
	body := par.parseBlockStatement()
	if body == nil {
		return nil
	}
	return &WhileStatementNode{Token: keyword, Condition: cond, Body: body}
}

// parseFuncDefStatement parses `func IDENT ( params ) block`.
func (par *Parser) parseFuncDefStatement() StatementNode {
	keyword := par.CurrToken
	if !par.expectNext(lexer.IDENT_ID) {
		return nil
	}
	name := par.CurrToken.Literal
	if !par.expectNext(lexer.LEFT_PAREN) {
		return nil
	}
	params := par.parseFunctionParameters()
	if params == nil {
		return nil
	}
	if !par.expectNext(lexer.LEFT_BRACE) {
		return nil
	}
	body := par.parseBlockStatement()
	if body == nil {
		return nil
	}
	return &FuncDefStatementNode{Token: keyword, Name: name, Params: params, Body: body}
}

// parseFunctionParameters parses the parameter list of a function
// definition. Entered with CurrToken on '('; leaves CurrToken on ')'.
func (par *Parser) parseFunctionParameters() []*IdentifierExpressionNode {
	params := make([]*IdentifierExpressionNode, 0)

	if par.nextTokenIs(lexer.RIGHT_PAREN) {
		par.advance()
		return params
	}

	if !par.expectNext(lexer.IDENT_ID) {
		return nil
	}
	params = append(params, &IdentifierExpressionNode{Token: par.CurrToken, Name: par.CurrToken.Literal})

	for par.nextTokenIs(lexer.COMMA_DELIM) {
		par.advance()
		if !par.expectNext(lexer.IDENT_ID) {
			return nil
		}
		params = append(params, &IdentifierExpressionNode{Token: par.CurrToken, Name: par.CurrToken.Literal})
	}

	if !par.expectNext(lexer.RIGHT_PAREN) {
		return nil
	}
	return params
}

// parseReturnStatement parses `return [expr] ;`.
func (par *Parser) parseReturnStatement() StatementNode {
	keyword := par.CurrToken

	if par.nextTokenIs(lexer.SEMICOLON_DELIM) {
		par.advance()
		return &ReturnStatementNode{Token: keyword}
	}

	par.advance()
	expr := par.parseExpression(MINIMUM_PRIORITY)
	if expr == nil {
		return nil
	}
	if !par.expectNext(lexer.SEMICOLON_DELIM) {
		return nil
	}
	return &ReturnStatementNode{Token: keyword, Expr: expr}
}

// parseIncludeStatement parses `include STRING ;`.
func (par *Parser) parseIncludeStatement() StatementNode {
	keyword := par.CurrToken
	if !par.expectNext(lexer.STRING_LIT) {
		return nil
	}
	module := par.CurrToken.Literal
	if !par.expectNext(lexer.SEMICOLON_DELIM) {
		return nil
	}
	return &IncludeStatementNode{Token: keyword, Module: module}
}

// parseUseStatement parses `use IDENT ;`.
func (par *Parser) parseUseStatement() StatementNode {
	keyword := par.CurrToken
	par.advance()
	module := par.CurrToken.Literal
	if !par.expectNext(lexer.SEMICOLON_DELIM) {
		return nil
	}
	return &UseStatementNode{Token: keyword, Module: module}
}

// parseExpressionStatement parses `expr ;` evaluated for side effects.
func (par *Parser) parseExpressionStatement() StatementNode {
	expr := par.parseExpression(MINIMUM_PRIORITY)
	if expr == nil {
		return nil
	}
	if !par.expectNext(lexer.SEMICOLON_DELIM) {
		return nil
	}
	return &ExpressionStatementNode{Expr: expr}
}
