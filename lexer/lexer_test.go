/*
File    : lamina-go/lexer/lexer_test.go
Project : Lamina interpreter in Go
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTokenizeDeclaration verifies scanning a simple declaration statement,
// including the trailing EOF sentinel.
func TestTokenizeDeclaration(t *testing.T) {
	tokens, errs := Tokenize(`var x = 2 + 3 * 4;`)
	assert.Empty(t, errs)

	expected := []struct {
		tokenType TokenType
		literal   string
	}{
		{VAR_KEY, "var"},
		{IDENT_ID, "x"},
		{ASSIGN_OP, "="},
		{NUMBER_LIT, "2"},
		{PLUS_OP, "+"},
		{NUMBER_LIT, "3"},
		{MUL_OP, "*"},
		{NUMBER_LIT, "4"},
		{SEMICOLON_DELIM, ";"},
		{EOF_TYPE, "EOF"},
	}
	assert.Equal(t, len(expected), len(tokens))
	for i, exp := range expected {
		assert.Equal(t, exp.tokenType, tokens[i].Type, "token %d", i)
		assert.Equal(t, exp.literal, tokens[i].Literal, "token %d", i)
	}
}

// TestTokenizeOperators verifies that multi-character operators win over
// their single-character prefixes.
func TestTokenizeOperators(t *testing.T) {
	tokens, errs := Tokenize(`== != <= >= < > = ! ^ %`)
	assert.Empty(t, errs)

	expected := []TokenType{
		EQ_OP, NE_OP, LE_OP, GE_OP, LT_OP, GT_OP, ASSIGN_OP, NOT_OP, POW_OP, MOD_OP, EOF_TYPE,
	}
	assert.Equal(t, len(expected), len(tokens))
	for i, exp := range expected {
		assert.Equal(t, exp, tokens[i].Type, "token %d", i)
	}
}

// TestTokenizeKeywords verifies every reserved word maps to its keyword kind
// and that near-keywords stay identifiers.
func TestTokenizeKeywords(t *testing.T) {
	src := `var func if else while for return include break continue define bigint true false null input`
	tokens, errs := Tokenize(src)
	assert.Empty(t, errs)

	expected := []TokenType{
		VAR_KEY, FUNC_KEY, IF_KEY, ELSE_KEY, WHILE_KEY, FOR_KEY, RETURN_KEY,
		INCLUDE_KEY, BREAK_KEY, CONTINUE_KEY, DEFINE_KEY, BIGINT_KEY,
		TRUE_KEY, FALSE_KEY, NULL_KEY, INPUT_KEY, EOF_TYPE,
	}
	assert.Equal(t, len(expected), len(tokens))
	for i, exp := range expected {
		assert.Equal(t, exp, tokens[i].Type, "token %d", i)
	}

	// `use` is not reserved; `variable` must not match the `var` prefix
	tokens, _ = Tokenize(`use variable`)
	assert.Equal(t, IDENT_ID, tokens[0].Type)
	assert.Equal(t, "use", tokens[0].Literal)
	assert.Equal(t, IDENT_ID, tokens[1].Type)
	assert.Equal(t, "variable", tokens[1].Literal)
}

// TestTokenizeNumbers verifies numbers keep their raw text and that the dot
// stays part of the literal.
func TestTokenizeNumbers(t *testing.T) {
	tokens, errs := Tokenize(`42 3.14 0 10.0`)
	assert.Empty(t, errs)

	literals := []string{"42", "3.14", "0", "10.0"}
	for i, lit := range literals {
		assert.Equal(t, NUMBER_LIT, tokens[i].Type)
		assert.Equal(t, lit, tokens[i].Literal)
	}
}

// TestTokenizeStrings verifies escape handling in string literals.
func TestTokenizeStrings(t *testing.T) {
	tokens, errs := Tokenize(`"hello" "a\nb" "tab\there" "quote\"inside" "back\\slash" "keep\q"`)
	assert.Empty(t, errs)

	literals := []string{"hello", "a\nb", "tab\there", "quote\"inside", "back\\slash", "keep\\q"}
	for i, lit := range literals {
		assert.Equal(t, STRING_LIT, tokens[i].Type, "token %d", i)
		assert.Equal(t, lit, tokens[i].Literal, "token %d", i)
	}
}

// TestUnterminatedString verifies the lexer reports the error, recovers at
// the next whitespace and keeps scanning.
func TestUnterminatedString(t *testing.T) {
	tokens, errs := Tokenize("var s = \"oops\nvar t = 1;")
	assert.NotEmpty(t, errs)
	assert.Contains(t, errs[0], "unterminated string")

	// scanning continues after recovery
	var sawVarAgain bool
	for _, tok := range tokens {
		if tok.Type == VAR_KEY && tok.Line == 2 {
			sawVarAgain = true
		}
	}
	assert.True(t, sawVarAgain)
}

// TestUnknownCharacter verifies unclassifiable bytes become UNKNOWN tokens
// without stopping the scan.
func TestUnknownCharacter(t *testing.T) {
	tokens, errs := Tokenize(`var x = 1 @ 2;`)
	assert.NotEmpty(t, errs)

	var unknown int
	for _, tok := range tokens {
		if tok.Type == UNKNOWN_TYPE {
			unknown++
		}
	}
	assert.Equal(t, 1, unknown)
	assert.Equal(t, EOF_TYPE, tokens[len(tokens)-1].Type)
}

// TestLineAndColumnTracking verifies positions are 1-based and newlines
// reset the column counter.
func TestLineAndColumnTracking(t *testing.T) {
	src := "var x = 1;\n// a comment\nx = 2;"
	tokens, errs := Tokenize(src)
	assert.Empty(t, errs)

	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 1, tokens[0].Column)

	// `x` on the third line, after the comment was skipped
	var found bool
	for _, tok := range tokens {
		if tok.Type == IDENT_ID && tok.Line == 3 {
			assert.Equal(t, 1, tok.Column)
			found = true
			break
		}
	}
	assert.True(t, found)
}

// TestNamespaceCallTokens verifies dotted namespace calls scan into separate
// identifier/dot/identifier tokens.
func TestNamespaceCallTokens(t *testing.T) {
	tokens, errs := Tokenize(`math.sqrt(4)`)
	assert.Empty(t, errs)

	expected := []TokenType{IDENT_ID, DOT_OP, IDENT_ID, LEFT_PAREN, NUMBER_LIT, RIGHT_PAREN, EOF_TYPE}
	for i, exp := range expected {
		assert.Equal(t, exp, tokens[i].Type, "token %d", i)
	}
}
