/*
File    : lamina-go/std/builtins_test.go
Project : Lamina interpreter in Go
*/
package std

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/iOS-GM/lamina-go/value"
	"github.com/stretchr/testify/assert"
)

// fakeRuntime satisfies the Runtime interface for builtin tests.
type fakeRuntime struct {
	reader *bufio.Reader
}

func (f *fakeRuntime) GetInputReader() *bufio.Reader {
	return f.reader
}

// lookup finds a builtin by name in the registry.
func lookup(t *testing.T, name string) *Builtin {
	t.Helper()
	for _, b := range Builtins {
		if b.Name == name {
			return b
		}
	}
	t.Fatalf("builtin %q not registered", name)
	return nil
}

// TestPrint verifies space-joined output with a trailing newline.
func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	rt := &fakeRuntime{}

	result := lookup(t, "print").Callback(rt, &buf,
		&value.Integer{Value: 14}, &value.String{Value: "ok"})
	assert.Equal(t, value.NullType, result.GetType())
	assert.Equal(t, "14 ok\n", buf.String())

	buf.Reset()
	lookup(t, "printraw").Callback(rt, &buf, &value.Integer{Value: 7})
	assert.Equal(t, "7", buf.String())
}

// TestReadline verifies line input with newline trimming and EOF handling.
func TestReadline(t *testing.T) {
	var buf bytes.Buffer
	rt := &fakeRuntime{reader: bufio.NewReader(strings.NewReader("hello\nrest"))}

	result := lookup(t, "readline").Callback(rt, &buf)
	assert.Equal(t, "hello", result.ToString())

	// last line without trailing newline still comes through
	result = lookup(t, "readline").Callback(rt, &buf)
	assert.Equal(t, "rest", result.ToString())

	// EOF yields null
	result = lookup(t, "readline").Callback(rt, &buf)
	assert.Equal(t, value.NullType, result.GetType())
}

// TestLenAndTypeof verifies the introspection builtins and their error cases.
func TestLenAndTypeof(t *testing.T) {
	var buf bytes.Buffer
	rt := &fakeRuntime{}

	result := lookup(t, "len").Callback(rt, &buf, &value.String{Value: "four"})
	assert.Equal(t, "4", result.ToString())

	arr := &value.Array{Elements: []value.Object{&value.Null{}, &value.Null{}}}
	result = lookup(t, "len").Callback(rt, &buf, arr)
	assert.Equal(t, "2", result.ToString())

	result = lookup(t, "len").Callback(rt, &buf, &value.Integer{Value: 1})
	assert.True(t, value.IsError(result))

	result = lookup(t, "typeof").Callback(rt, &buf, &value.Float{Value: 1.5})
	assert.Equal(t, "float", result.ToString())

	result = lookup(t, "typeof").Callback(rt, &buf)
	err := result.(*value.Error)
	assert.Equal(t, value.ArityError, err.Kind)
}

// TestMathBuiltins verifies int preservation and float fallthrough.
func TestMathBuiltins(t *testing.T) {
	var buf bytes.Buffer
	rt := &fakeRuntime{}

	result := lookup(t, "abs").Callback(rt, &buf, &value.Integer{Value: -5})
	assert.Equal(t, "5", result.ToString())
	assert.Equal(t, value.IntegerType, result.GetType())

	result = lookup(t, "max").Callback(rt, &buf, &value.Integer{Value: 2}, &value.Float{Value: 2.5})
	assert.Equal(t, value.FloatType, result.GetType())
	assert.Equal(t, "2.5", result.ToString())

	result = lookup(t, "floor").Callback(rt, &buf, &value.Float{Value: 2.9})
	assert.Equal(t, "2", result.ToString())

	result = lookup(t, "pow").Callback(rt, &buf, &value.Integer{Value: 2}, &value.Integer{Value: 10})
	assert.Equal(t, "1024", result.ToString())
	assert.Equal(t, value.IntegerType, result.GetType())

	result = lookup(t, "sqrt").Callback(rt, &buf, &value.Integer{Value: -1})
	assert.True(t, value.IsError(result))

	result = lookup(t, "sqrt").Callback(rt, &buf, &value.String{Value: "x"})
	err := result.(*value.Error)
	assert.Equal(t, value.TypeError, err.Kind)
}
