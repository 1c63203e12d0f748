/*
File    : lamina-go/parser/parser_test.go
Project : Lamina interpreter in Go
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// parseOne is a test helper: parses src expecting no errors and exactly one
// top-level statement, which it returns.
func parseOne(t *testing.T, src string) StatementNode {
	t.Helper()
	par := NewParser(src)
	root := par.Parse()
	assert.False(t, par.HasErrors(), "unexpected parse errors: %v", par.GetErrors())
	assert.Len(t, root.Statements, 1)
	return root.Statements[0]
}

// TestParseVarDecl verifies `var x = expr;`.
func TestParseVarDecl(t *testing.T) {
	stmt := parseOne(t, `var x = 2 + 3 * 4;`)
	decl, ok := stmt.(*VarDeclStatementNode)
	assert.True(t, ok)
	assert.Equal(t, "x", decl.Name)
	assert.Equal(t, "(2 + (3 * 4))", decl.Init.Literal())
}

// TestParsePrecedence verifies the precedence table through canonical
// (fully parenthesized) renderings of parsed expressions.
func TestParsePrecedence(t *testing.T) {
	cases := []struct {
		src      string
		expected string
	}{
		{`1 + 2 * 3;`, "(1 + (2 * 3))"},
		{`1 * 2 + 3;`, "((1 * 2) + 3)"},
		{`1 + 2 < 3 + 4;`, "((1 + 2) < (3 + 4))"},
		{`1 < 2 == true;`, "((1 < 2) == true)"},
		{`2 ^ 3 ^ 2;`, "(2 ^ (3 ^ 2))"}, // right-associative
		{`1 - 2 - 3;`, "((1 - 2) - 3)"}, // left-associative
		{`-a * b;`, "((-a) * b)"},
		{`!a == b;`, "((!a) == b)"},
		{`2 * (3 + 4);`, "(2 * (3 + 4))"},
		{`a % 2 == 0;`, "((a % 2) == 0)"},
		{`-2 ^ 2;`, "((-2) ^ 2)"},
	}
	for _, c := range cases {
		stmt := parseOne(t, c.src)
		exprStmt, ok := stmt.(*ExpressionStatementNode)
		assert.True(t, ok, c.src)
		assert.Equal(t, c.expected, exprStmt.Expr.Literal(), c.src)
	}
}

// TestParseFuncDef verifies function definitions with parameter lists.
func TestParseFuncDef(t *testing.T) {
	stmt := parseOne(t, `func add(a, b) { return a + b; }`)
	def, ok := stmt.(*FuncDefStatementNode)
	assert.True(t, ok)
	assert.Equal(t, "add", def.Name)
	assert.Len(t, def.Params, 2)
	assert.Equal(t, "a", def.Params[0].Name)
	assert.Equal(t, "b", def.Params[1].Name)
	assert.Len(t, def.Body.Statements, 1)

	ret, ok := def.Body.Statements[0].(*ReturnStatementNode)
	assert.True(t, ok)
	assert.Equal(t, "(a + b)", ret.Expr.Literal())

	// empty parameter list
	stmt = parseOne(t, `func zero() { return; }`)
	def = stmt.(*FuncDefStatementNode)
	assert.Empty(t, def.Params)
	assert.Nil(t, def.Body.Statements[0].(*ReturnStatementNode).Expr)
}

// TestParseIfElse verifies conditionals with and without else branches.
func TestParseIfElse(t *testing.T) {
	stmt := parseOne(t, `if (x < 2) { y = 1; } else { y = 2; }`)
	cond, ok := stmt.(*IfStatementNode)
	assert.True(t, ok)
	assert.Equal(t, "(x < 2)", cond.Condition.Literal())
	assert.NotNil(t, cond.Else)

	stmt = parseOne(t, `if (x) { y = 1; }`)
	cond = stmt.(*IfStatementNode)
	assert.Nil(t, cond.Else)
}

// TestParseWhile verifies loop parsing and loop-control statements.
func TestParseWhile(t *testing.T) {
	stmt := parseOne(t, `while (i < 3) { i = i + 1; break; continue; }`)
	loop, ok := stmt.(*WhileStatementNode)
	assert.True(t, ok)
	assert.Equal(t, "(i < 3)", loop.Condition.Literal())
	assert.Len(t, loop.Body.Statements, 3)

	_, ok = loop.Body.Statements[1].(*BreakStatementNode)
	assert.True(t, ok)
	_, ok = loop.Body.Statements[2].(*ContinueStatementNode)
	assert.True(t, ok)
}

// TestParseCalls verifies calls, namespace calls and nested argument lists.
func TestParseCalls(t *testing.T) {
	stmt := parseOne(t, `print(f(1, 2), 3);`)
	call := stmt.(*ExpressionStatementNode).Expr.(*CallExpressionNode)
	assert.Equal(t, "print", call.Callee.Name)
	assert.Len(t, call.Arguments, 2)
	assert.Equal(t, "f(1, 2)", call.Arguments[0].Literal())

	stmt = parseOne(t, `math.sqrt(16);`)
	nsCall := stmt.(*ExpressionStatementNode).Expr.(*NamespaceCallExpressionNode)
	assert.Equal(t, "math", nsCall.Namespace)
	assert.Equal(t, "sqrt", nsCall.Function)
	assert.Len(t, nsCall.Arguments, 1)
}

// TestParseArraysAndIndexing verifies array literals (including empty) and
// postfix indexing.
func TestParseArraysAndIndexing(t *testing.T) {
	stmt := parseOne(t, `var a = [1, 2 + 3, "x"];`)
	arr := stmt.(*VarDeclStatementNode).Init.(*ArrayExpressionNode)
	assert.Len(t, arr.Elements, 3)
	assert.Equal(t, `[1, (2 + 3), "x"]`, arr.Literal())

	stmt = parseOne(t, `var e = [];`)
	arr = stmt.(*VarDeclStatementNode).Init.(*ArrayExpressionNode)
	assert.Empty(t, arr.Elements)

	stmt = parseOne(t, `print(a[1]);`)
	call := stmt.(*ExpressionStatementNode).Expr.(*CallExpressionNode)
	idx, ok := call.Arguments[0].(*IndexExpressionNode)
	assert.True(t, ok)
	assert.Equal(t, "a[1]", idx.Literal())
}

// TestParseModuleStatements verifies include/use parsing.
func TestParseModuleStatements(t *testing.T) {
	stmt := parseOne(t, `include "minimal.so";`)
	inc := stmt.(*IncludeStatementNode)
	assert.Equal(t, "minimal.so", inc.Module)

	stmt = parseOne(t, `use mymod;`)
	use := stmt.(*UseStatementNode)
	assert.Equal(t, "mymod", use.Module)

	// `use` stays a plain identifier outside statement-leading position
	stmt = parseOne(t, `var use = 1;`)
	_, ok := stmt.(*VarDeclStatementNode)
	assert.True(t, ok)
}

// TestParseDefineAndBigInt verifies configuration and bigint declarations.
func TestParseDefineAndBigInt(t *testing.T) {
	stmt := parseOne(t, `define recursion_limit = 5;`)
	def := stmt.(*DefineStatementNode)
	assert.Equal(t, "recursion_limit", def.Name)
	assert.Equal(t, "5", def.Value.Literal())

	stmt = parseOne(t, `bigint n = 10;`)
	decl := stmt.(*BigIntDeclStatementNode)
	assert.Equal(t, "n", decl.Name)
	assert.NotNil(t, decl.Init)

	stmt = parseOne(t, `bigint m;`)
	decl = stmt.(*BigIntDeclStatementNode)
	assert.Nil(t, decl.Init)
}

// TestParseInputExpression verifies `input` parses as a primary.
func TestParseInputExpression(t *testing.T) {
	stmt := parseOne(t, `var line = input;`)
	_, ok := stmt.(*VarDeclStatementNode).Init.(*InputExpressionNode)
	assert.True(t, ok)
}

// TestParseErrors verifies errors carry positions and that the parser
// recovers at statement boundaries.
func TestParseErrors(t *testing.T) {
	// missing terminator
	par := NewParser(`var x = 1`)
	par.Parse()
	assert.True(t, par.HasErrors())
	assert.Contains(t, par.GetErrors()[0], "PARSE ERROR")

	// `=` outside statement position
	par = NewParser(`print(x = 1);`)
	par.Parse()
	assert.True(t, par.HasErrors())

	// recovery: second statement still parses after the first fails
	par = NewParser("var = 1;\nvar y = 2;")
	root := par.Parse()
	assert.True(t, par.HasErrors())
	found := false
	for _, stmt := range root.Statements {
		if decl, ok := stmt.(*VarDeclStatementNode); ok && decl.Name == "y" {
			found = true
		}
	}
	assert.True(t, found)
}

// TestRootIsAlwaysBlock verifies every successful parse yields the root
// shape with statements in source order.
func TestRootIsAlwaysBlock(t *testing.T) {
	par := NewParser(`var a = 1; var b = 2; print(a);`)
	root := par.Parse()
	assert.False(t, par.HasErrors())
	assert.Len(t, root.Statements, 3)
}

// TestRoundTrip verifies re-parsing the canonical pretty-print yields an
// equivalent tree.
func TestRoundTrip(t *testing.T) {
	sources := []string{
		`var x = 2 + 3 * 4; print(x);`,
		`func f(n) { if (n < 2) { return n; } return f(n - 1) + f(n - 2); }`,
		`var i = 0; while (i < 3) { print(i); i = i + 1; }`,
		`var a = [1, 2, 3]; print(a[1]);`,
		`include "minimal.so"; use mymod; mymod.foo(1, "two", 3.0);`,
		`bigint n = 42; define recursion_limit = 100;`,
	}
	for _, src := range sources {
		first := NewParser(src)
		tree := first.Parse()
		assert.False(t, first.HasErrors(), src)

		printed := Format(tree)
		second := NewParser(printed)
		reparsed := second.Parse()
		assert.False(t, second.HasErrors(), printed)
		assert.Equal(t, tree.Literal(), reparsed.Literal(), src)
	}
}
