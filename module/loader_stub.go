/*
File    : lamina-go/module/loader_stub.go
Project : Lamina interpreter in Go
*/

//go:build !((linux || darwin || freebsd) && (amd64 || arm64))

package module

import "errors"

// Platforms without dlopen support get a loader that refuses to load.
// The interpreter core and the dispatch/marshalling paths still build and
// run; only Load of an on-disk library is unavailable.

func dlOpen(path string) (uintptr, error) {
	return 0, errors.New("dynamic module loading is not supported on this platform")
}

func dlClose(handle uintptr) {}

func initModule(handle uintptr, path string) (*Module, error) {
	return nil, &Error{Code: SignatureInvalid, Module: path, Detail: "dynamic module loading is not supported on this platform"}
}

func findEntryFunctions(handle uintptr) []func(uintptr) {
	return nil
}
