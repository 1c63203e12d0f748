/*
File    : lamina-go/parser/printer_test.go
Project : Lamina interpreter in Go
*/
package parser

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
)

// TestFormatSnapshots pins the pretty-printer's output for representative
// programs. The snapshots double as readable documentation of the canonical
// form.
func TestFormatSnapshots(t *testing.T) {
	sources := map[string]string{
		"declarations": `var x = 1; bigint n = 10; define recursion_limit = 100;`,
		"fibonacci":    `func f(n) { if (n < 2) { return n; } return f(n - 1) + f(n - 2); } print(f(10));`,
		"while_loop":   `var i = 0; while (i < 3) { print(i); i = i + 1; }`,
		"modules":      `include "minimal.so"; use mymod; mymod.foo(1, 2);`,
		"arrays":       `var a = [1, [2, 3], "x"]; print(a[1]);`,
	}
	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			par := NewParser(src)
			root := par.Parse()
			assert.False(t, par.HasErrors(), "parse errors: %v", par.GetErrors())
			snaps.MatchSnapshot(t, Format(root))
		})
	}
}

// TestFormatIndentsNestedBlocks verifies nested bodies indent by one level
// per block.
func TestFormatIndentsNestedBlocks(t *testing.T) {
	par := NewParser(`while (a) { if (b) { c = 1; } }`)
	root := par.Parse()
	assert.False(t, par.HasErrors())

	out := Format(root)
	assert.Contains(t, out, "while (a)\n")
	assert.Contains(t, out, "    if (b)\n")
	assert.Contains(t, out, "        c = 1;\n")
}
