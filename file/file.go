/*
File    : lamina-go/file/file.go
Project : Lamina interpreter in Go
*/

// Package file provides source-file loading for the interpreter's file mode.
package file

import (
	"fmt"
	"os"
)

// ReadSource reads a Lamina source file and returns its contents as a
// string. The error wraps the underlying cause so the CLI can distinguish
// "cannot open" from later failures.
func ReadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("unable to open file %s: %w", path, err)
	}
	return string(data), nil
}
