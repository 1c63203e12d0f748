/*
File    : lamina-go/module/errors.go
Project : Lamina interpreter in Go
*/
package module

import "fmt"

// ErrorCode classifies module loading and dispatch failures.
type ErrorCode string

const (
	// SignatureInvalid covers a missing/undersized file, a missing signature
	// symbol, and a signature string other than LAMINA_MODULE_V2.
	SignatureInvalid ErrorCode = "SignatureInvalid"
	// NamespaceMismatch means a namespace call named a namespace other than
	// the one the module declared.
	NamespaceMismatch ErrorCode = "NamespaceMismatch"
	// UnknownFunction means the export table has no function of that name.
	UnknownFunction ErrorCode = "UnknownFunction"
	// NullFunction means the export table entry has a null function pointer.
	NullFunction ErrorCode = "NullFunction"
)

// Error is the error type for every module failure. The evaluator surfaces
// it to Lamina code as a ModuleError runtime error.
type Error struct {
	Code   ErrorCode // Failure classification
	Module string    // Module path or namespace involved
	Detail string    // Human-readable detail
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Detail, e.Module)
}
