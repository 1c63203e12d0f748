/*
File    : lamina-go/module/registry.go
Project : Lamina interpreter in Go
*/
package module

import "runtime"

// Registry is the process-wide set of loaded native modules. It is populated
// by include/use statements as the program runs and torn down when the
// interpreter exits. The interpreter is single-threaded, so the registry
// needs no synchronization.
type Registry struct {
	modules []*Module          // Insertion order, for deterministic teardown
	byPath  map[string]*Module // Dedup: loading the same path twice is a no-op
	interp  uintptr            // Opaque interpreter handle passed to entry hooks
}

// NewRegistry creates an empty registry. The interp handle is forwarded
// opaquely to every module entry hook.
func NewRegistry(interp uintptr) *Registry {
	return &Registry{
		byPath: make(map[string]*Module),
		interp: interp,
	}
}

// Include loads a module by file path. Loading a path that is already
// loaded returns the existing module without touching the library again.
func (r *Registry) Include(path string) (*Module, error) {
	if mod, ok := r.byPath[path]; ok {
		return mod, nil
	}
	mod, err := Load(path, r.interp)
	if err != nil {
		return nil, err
	}
	r.add(mod)
	return mod, nil
}

// Use resolves a bare module name: first against already-loaded namespaces,
// then as a library file named after the module in the working directory.
func (r *Registry) Use(name string) (*Module, error) {
	for _, mod := range r.modules {
		if mod.Namespace == name {
			return mod, nil
		}
	}
	return r.Include(name + librarySuffix())
}

// add registers a loaded module.
func (r *Registry) add(mod *Module) {
	r.modules = append(r.modules, mod)
	r.byPath[mod.Path] = mod
}

// Lookup finds a loaded module by its declared namespace name.
func (r *Registry) Lookup(namespace string) (*Module, bool) {
	for _, mod := range r.modules {
		if mod.Namespace == namespace {
			return mod, true
		}
	}
	return nil, false
}

// Close releases every module handle in reverse load order. Callers must
// drop all function values referencing the modules first; the interpreter
// does this by closing the registry only at process exit.
func (r *Registry) Close() {
	for i := len(r.modules) - 1; i >= 0; i-- {
		r.modules[i].Close()
	}
	r.modules = nil
	r.byPath = make(map[string]*Module)
}

// librarySuffix returns the platform's shared library extension.
func librarySuffix() string {
	switch runtime.GOOS {
	case "darwin":
		return ".dylib"
	case "windows":
		return ".dll"
	default:
		return ".so"
	}
}
