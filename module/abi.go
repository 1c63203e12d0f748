/*
File    : lamina-go/module/abi.go
Project : Lamina interpreter in Go
*/

// Package module implements the dynamic native-module loader.
//
// Native modules are platform shared libraries exporting a stable C ABI:
//
//	const char*          lamina_module_signature(void);  // must return "LAMINA_MODULE_V2"
//	LaminaModuleExports* lamina_module_init(void);       // export table
//	void                 _entry(InterpreterHandle*);     // optional, called once after init
//
// Only the exact symbol name `_entry` is probed for the post-init hook; other
// exported symbols whose names contain `_entry` are not called.
//
// All raw-pointer handling is confined to this package: the interpreter core
// only ever sees safe host values. Marshalling covers the scalar value set
// (null, bool, int, double, string); host arrays and functions cross the
// boundary as null in ABI v2.
package module

import (
	"math"
	"unsafe"

	"github.com/iOS-GM/lamina-go/value"
)

// Signature is the exact byte string a module's signature symbol must return.
const Signature = "LAMINA_MODULE_V2"

// MinModuleFileSize is the sanity floor for a loadable module file. Anything
// smaller cannot be a real shared library and is rejected before dlopen.
const MinModuleFileSize = 1024

// ValueTag discriminates the external LaminaValue union.
type ValueTag int32

const (
	TagNull ValueTag = iota
	TagBool
	TagInt
	TagDouble
	TagString
)

// LaminaValue mirrors the C-side value layout:
//
//	struct LaminaValue {
//	    int32_t type;
//	    union { int bool_val; int64_t int_val; double double_val; const char* string_val; } data;
//	};
//
// The union is modeled as a single 8-byte slot; the tag says how to read it.
// Alignment pads the tag to offset 0..4 and places the union at offset 8,
// matching the C layout on every supported 64-bit platform.
type LaminaValue struct {
	Type ValueTag
	Data uint64
}

// laminaModuleInfo mirrors the C LaminaModuleInfo struct. All three fields
// are NUL-terminated C strings owned by the module.
type laminaModuleInfo struct {
	namespaceName uintptr
	version       uintptr
	description   uintptr
}

// laminaFunctionEntry mirrors the C LaminaFunctionEntry struct.
type laminaFunctionEntry struct {
	name      uintptr // const char*
	fn        uintptr // LaminaValue (*)(const LaminaValue*, int)
	arityHint int32
}

// laminaModuleExports mirrors the C LaminaModuleExports struct.
type laminaModuleExports struct {
	info          laminaModuleInfo
	functionCount int32
	functions     uintptr // const LaminaFunctionEntry*
}

// goString copies a NUL-terminated C string into Go memory. Returns "" for
// a nil pointer. The copy is taken immediately so the module keeps ownership
// of its buffer and the interpreter never holds foreign memory.
func goString(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	var length int
	for {
		b := *(*byte)(unsafe.Pointer(ptr + uintptr(length)))
		if b == 0 {
			break
		}
		length++
	}
	if length == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(ptr)), length))
}

// marshalValue converts a host value to its external form. The returned
// keepAlive slice (non-nil only for strings) owns the C-string bytes and
// must stay reachable until the foreign call returns.
func marshalValue(obj value.Object) (LaminaValue, []byte) {
	switch v := obj.(type) {
	case *value.Boolean:
		data := uint64(0)
		if v.Value {
			data = 1
		}
		return LaminaValue{Type: TagBool, Data: data}, nil
	case *value.Integer:
		return LaminaValue{Type: TagInt, Data: uint64(v.Value)}, nil
	case *value.Float:
		return LaminaValue{Type: TagDouble, Data: math.Float64bits(v.Value)}, nil
	case *value.String:
		return marshalString(v.Value)
	case *value.BigInt:
		// bigints cross the boundary as their decimal text
		return marshalString(v.Value.String())
	default:
		// null, arrays, functions: not marshalled in ABI v2
		return LaminaValue{Type: TagNull}, nil
	}
}

// marshalString builds a NUL-terminated buffer and points a string-tagged
// value at it.
func marshalString(s string) (LaminaValue, []byte) {
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	return LaminaValue{
		Type: TagString,
		Data: uint64(uintptr(unsafe.Pointer(&buf[0]))),
	}, buf
}

// unmarshalValue converts an external value back to a host value. Unknown
// tags decode as null, mirroring the original loader's defensive default.
func unmarshalValue(v LaminaValue) value.Object {
	switch v.Type {
	case TagBool:
		return &value.Boolean{Value: v.Data != 0}
	case TagInt:
		return &value.Integer{Value: int64(v.Data)}
	case TagDouble:
		return &value.Float{Value: math.Float64frombits(v.Data)}
	case TagString:
		return &value.String{Value: goString(uintptr(v.Data))}
	default:
		return &value.Null{}
	}
}
