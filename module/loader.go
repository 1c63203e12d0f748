/*
File    : lamina-go/module/loader.go
Project : Lamina interpreter in Go
*/
package module

import (
	"fmt"
	"os"
	"runtime"

	"github.com/iOS-GM/lamina-go/value"
)

// ExportedFunction is one callable slot of a loaded module's export table,
// already lifted to Go. A nil invoke means the C table carried a null
// function pointer; calling it raises NullFunction.
type ExportedFunction struct {
	Name      string // Exported function name
	ArityHint int    // Advisory arity from the export table (-1 = variadic)

	invoke func(args []LaminaValue) LaminaValue
}

// Module is a loaded native module: its identity, its export table lifted to
// Go, and the library handle the loader owns. A Module must never outlive
// the interpreter holding references to its functions; the registry enforces
// the teardown order.
type Module struct {
	Path        string             // File the module was loaded from
	Namespace   string             // Declared namespace name
	Version     string             // Declared version string
	Description string             // Declared description
	Functions   []ExportedFunction // Export table, in declaration order

	handle uintptr // Library handle; 0 for in-process test modules
}

// Load opens a shared library, validates the ABI handshake, lifts the export
// table, and runs the module's entry hooks.
//
// Validation order: file exists -> size >= 1024 bytes -> dlopen ->
// signature symbol resolves and returns exactly LAMINA_MODULE_V2 -> init
// symbol resolves and returns a non-nil export table. Every failure releases
// the handle; none of the module's functions run before the signature check
// passes.
//
// The interp handle is passed opaquely to each entry hook, letting modules
// register callbacks against the running interpreter.
func Load(path string, interp uintptr) (*Module, error) {
	if err := validateFile(path); err != nil {
		return nil, err
	}

	handle, err := dlOpen(path)
	if err != nil {
		return nil, &Error{Code: SignatureInvalid, Module: path, Detail: err.Error()}
	}

	mod, err := initModule(handle, path)
	if err != nil {
		dlClose(handle)
		return nil, err
	}

	// Entry hooks run exactly once, after a successful init.
	for _, entry := range findEntryFunctions(handle) {
		entry(interp)
	}
	return mod, nil
}

// validateFile performs the pre-dlopen sanity checks.
func validateFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return &Error{Code: SignatureInvalid, Module: path, Detail: "module file does not exist"}
	}
	if info.Size() < MinModuleFileSize {
		return &Error{
			Code:   SignatureInvalid,
			Module: path,
			Detail: fmt.Sprintf("module file too small (%d bytes)", info.Size()),
		}
	}
	return nil
}

// Call dispatches a namespace call ns.fn(args) against this module.
//
// The namespace must match the module's declared namespace name; the
// function is located by linear scan of the export table. Arguments are
// marshalled to their external form, the foreign function is invoked, and
// its result is unmarshalled back to a host value.
func (m *Module) Call(namespace, function string, args []value.Object) (value.Object, error) {
	if namespace != m.Namespace {
		return nil, &Error{
			Code:   NamespaceMismatch,
			Module: m.Namespace,
			Detail: fmt.Sprintf("expected namespace %q, got %q", m.Namespace, namespace),
		}
	}

	var target *ExportedFunction
	for i := range m.Functions {
		if m.Functions[i].Name == function {
			target = &m.Functions[i]
			break
		}
	}
	if target == nil {
		return nil, &Error{
			Code:   UnknownFunction,
			Module: m.Namespace,
			Detail: fmt.Sprintf("function %q not found in module", function),
		}
	}
	if target.invoke == nil {
		return nil, &Error{
			Code:   NullFunction,
			Module: m.Namespace,
			Detail: fmt.Sprintf("function %q has a null pointer", function),
		}
	}

	abiArgs := make([]LaminaValue, len(args))
	keepAlive := make([][]byte, 0, len(args))
	for i, arg := range args {
		abiValue, buf := marshalValue(arg)
		abiArgs[i] = abiValue
		if buf != nil {
			keepAlive = append(keepAlive, buf)
		}
	}

	result := target.invoke(abiArgs)
	out := unmarshalValue(result)
	runtime.KeepAlive(keepAlive)
	return out, nil
}

// Close releases the library handle. After Close no function of the module
// may be invoked; the registry guarantees the interpreter has already
// dropped its references when this runs.
func (m *Module) Close() {
	if m.handle != 0 {
		dlClose(m.handle)
		m.handle = 0
	}
	m.Functions = nil
}
