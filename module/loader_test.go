/*
File    : lamina-go/module/loader_test.go
Project : Lamina interpreter in Go
*/
package module

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iOS-GM/lamina-go/value"
	"github.com/stretchr/testify/assert"
)

// fakeModule builds an in-process Module whose export table is backed by Go
// closures, letting the dispatch and marshalling paths run without a real
// shared library.
func fakeModule(namespace string) *Module {
	echo := func(args []LaminaValue) LaminaValue {
		if len(args) == 0 {
			return LaminaValue{Type: TagNull}
		}
		return args[0]
	}
	add := func(args []LaminaValue) LaminaValue {
		var sum int64
		for _, arg := range args {
			if arg.Type == TagInt {
				sum += int64(arg.Data)
			}
		}
		return LaminaValue{Type: TagInt, Data: uint64(sum)}
	}
	return &Module{
		Path:      namespace + ".so",
		Namespace: namespace,
		Version:   "1.0",
		Functions: []ExportedFunction{
			{Name: "echo", ArityHint: 1, invoke: echo},
			{Name: "add", ArityHint: -1, invoke: add},
			{Name: "broken", ArityHint: 0, invoke: nil},
		},
	}
}

// TestValidateFileRejectsSmallFiles verifies the pre-dlopen size check
// fails with SignatureInvalid before any module code could run.
func TestValidateFileRejectsSmallFiles(t *testing.T) {
	dir := t.TempDir()
	small := filepath.Join(dir, "tiny.so")
	assert.NoError(t, os.WriteFile(small, make([]byte, 100), 0o644))

	err := validateFile(small)
	modErr, ok := err.(*Error)
	assert.True(t, ok)
	assert.Equal(t, SignatureInvalid, modErr.Code)

	err = validateFile(filepath.Join(dir, "missing.so"))
	modErr = err.(*Error)
	assert.Equal(t, SignatureInvalid, modErr.Code)

	big := filepath.Join(dir, "big.so")
	assert.NoError(t, os.WriteFile(big, make([]byte, MinModuleFileSize), 0o644))
	assert.NoError(t, validateFile(big))
}

// TestLoadRejectsSmallFileWithoutInit verifies Load fails on an undersized
// file with SignatureInvalid (and therefore never reaches dlopen/init).
func TestLoadRejectsSmallFileWithoutInit(t *testing.T) {
	dir := t.TempDir()
	small := filepath.Join(dir, "tiny.so")
	assert.NoError(t, os.WriteFile(small, []byte("not a library"), 0o644))

	_, err := Load(small, 0)
	assert.Error(t, err)
	modErr := err.(*Error)
	assert.Equal(t, SignatureInvalid, modErr.Code)
}

// TestDispatchNamespaceMismatch verifies calls against the wrong namespace.
func TestDispatchNamespaceMismatch(t *testing.T) {
	mod := fakeModule("mymod")
	_, err := mod.Call("othermod", "echo", nil)
	modErr := err.(*Error)
	assert.Equal(t, NamespaceMismatch, modErr.Code)
}

// TestDispatchUnknownFunction verifies lookup failure in the export table.
func TestDispatchUnknownFunction(t *testing.T) {
	mod := fakeModule("mymod")
	_, err := mod.Call("mymod", "missing", nil)
	modErr := err.(*Error)
	assert.Equal(t, UnknownFunction, modErr.Code)
}

// TestDispatchNullFunction verifies a null function pointer is reported.
func TestDispatchNullFunction(t *testing.T) {
	mod := fakeModule("mymod")
	_, err := mod.Call("mymod", "broken", nil)
	modErr := err.(*Error)
	assert.Equal(t, NullFunction, modErr.Code)
}

// TestDispatchMarshalling verifies host values round-trip across the ABI.
func TestDispatchMarshalling(t *testing.T) {
	mod := fakeModule("mymod")

	cases := []struct {
		arg      value.Object
		expected string
		typ      value.Type
	}{
		{&value.Integer{Value: 42}, "42", value.IntegerType},
		{&value.Float{Value: 2.5}, "2.5", value.FloatType},
		{&value.Boolean{Value: true}, "true", value.BooleanType},
		{&value.String{Value: "hello"}, "hello", value.StringType},
		{&value.Null{}, "null", value.NullType},
		// non-scalar host values cross as null in ABI v2
		{&value.Array{Elements: []value.Object{&value.Integer{Value: 1}}}, "null", value.NullType},
		// bigints cross as their decimal text
		{value.NewBigInt(12345), "12345", value.StringType},
	}
	for _, c := range cases {
		result, err := mod.Call("mymod", "echo", []value.Object{c.arg})
		assert.NoError(t, err)
		assert.Equal(t, c.typ, result.GetType())
		assert.Equal(t, c.expected, result.ToString())
	}

	// multiple arguments, left-to-right
	result, err := mod.Call("mymod", "add", []value.Object{
		&value.Integer{Value: 1}, &value.Integer{Value: 2}, &value.Integer{Value: 3},
	})
	assert.NoError(t, err)
	assert.Equal(t, "6", result.ToString())
}

// TestRegistry verifies lookup by namespace, include dedup, and teardown.
func TestRegistry(t *testing.T) {
	reg := NewRegistry(0)
	mod := fakeModule("mymod")
	reg.add(mod)

	found, ok := reg.Lookup("mymod")
	assert.True(t, ok)
	assert.Same(t, mod, found)

	_, ok = reg.Lookup("ghost")
	assert.False(t, ok)

	// loading a registered path again returns the same module
	again, err := reg.Include(mod.Path)
	assert.NoError(t, err)
	assert.Same(t, mod, again)

	// use resolves an already-loaded namespace without touching disk
	viaUse, err := reg.Use("mymod")
	assert.NoError(t, err)
	assert.Same(t, mod, viaUse)

	reg.Close()
	_, ok = reg.Lookup("mymod")
	assert.False(t, ok)
	assert.Nil(t, mod.Functions)
}

// TestGoStringAndMarshalString verifies the C-string helpers agree.
func TestGoStringAndMarshalString(t *testing.T) {
	v, buf := marshalString("lamina")
	assert.NotNil(t, buf)
	assert.Equal(t, TagString, v.Type)
	assert.Equal(t, "lamina", goString(uintptr(v.Data)))

	assert.Equal(t, "", goString(0))

	empty, _ := marshalString("")
	assert.Equal(t, "", goString(uintptr(empty.Data)))
}
