/*
File    : lamina-go/module/loader_dlopen.go
Project : Lamina interpreter in Go
*/

//go:build (linux || darwin || freebsd) && (amd64 || arm64)

package module

import (
	"unsafe"

	"github.com/ebitengine/purego"
)

// dlOpen loads a shared library. RTLD_LOCAL keeps module symbols out of the
// process-global namespace so two modules can export same-named helpers.
func dlOpen(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_LOCAL)
}

// dlClose releases a library handle.
func dlClose(handle uintptr) {
	purego.Dlclose(handle)
}

// initModule performs the ABI handshake against an opened library and lifts
// the export table into a Module.
func initModule(handle uintptr, path string) (*Module, error) {
	sigAddr, err := purego.Dlsym(handle, "lamina_module_signature")
	if err != nil || sigAddr == 0 {
		return nil, &Error{Code: SignatureInvalid, Module: path, Detail: "module missing signature function"}
	}
	var signatureFn func() uintptr
	purego.RegisterFunc(&signatureFn, sigAddr)
	if sig := goString(signatureFn()); sig != Signature {
		return nil, &Error{Code: SignatureInvalid, Module: path, Detail: "invalid module signature " + sig}
	}

	initAddr, err := purego.Dlsym(handle, "lamina_module_init")
	if err != nil || initAddr == 0 {
		return nil, &Error{Code: SignatureInvalid, Module: path, Detail: "module missing init function"}
	}
	var initFn func() uintptr
	purego.RegisterFunc(&initFn, initAddr)
	exportsPtr := initFn()
	if exportsPtr == 0 {
		return nil, &Error{Code: SignatureInvalid, Module: path, Detail: "module initialization failed"}
	}

	exports := (*laminaModuleExports)(unsafe.Pointer(exportsPtr))
	mod := &Module{
		Path:        path,
		Namespace:   goString(exports.info.namespaceName),
		Version:     goString(exports.info.version),
		Description: goString(exports.info.description),
		handle:      handle,
	}

	count := int(exports.functionCount)
	if count > 0 && exports.functions != 0 {
		entries := unsafe.Slice((*laminaFunctionEntry)(unsafe.Pointer(exports.functions)), count)
		for _, entry := range entries {
			mod.Functions = append(mod.Functions, liftFunction(entry))
		}
	}
	return mod, nil
}

// liftFunction wraps one C export table entry as a Go-callable slot.
// A null function pointer yields a slot with a nil invoke, which dispatch
// reports as NullFunction.
func liftFunction(entry laminaFunctionEntry) ExportedFunction {
	lifted := ExportedFunction{
		Name:      goString(entry.name),
		ArityHint: int(entry.arityHint),
	}
	if entry.fn == 0 {
		return lifted
	}

	var foreign func(args unsafe.Pointer, count int32) LaminaValue
	purego.RegisterFunc(&foreign, entry.fn)
	lifted.invoke = func(args []LaminaValue) LaminaValue {
		var argPtr unsafe.Pointer
		if len(args) > 0 {
			argPtr = unsafe.Pointer(&args[0])
		}
		return foreign(argPtr, int32(len(args)))
	}
	return lifted
}

// findEntryFunctions locates the module's post-init hooks. Symbol table
// enumeration is format-specific, so the loader probes the conventional
// `_entry` export, matching what the original does on platforms without
// ELF dynamic-symbol walking.
func findEntryFunctions(handle uintptr) []func(uintptr) {
	addr, err := purego.Dlsym(handle, "_entry")
	if err != nil || addr == 0 {
		return nil
	}
	var entry func(uintptr)
	purego.RegisterFunc(&entry, addr)
	return []func(uintptr){entry}
}
