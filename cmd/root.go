/*
File    : lamina-go/cmd/root.go
Project : Lamina interpreter in Go
*/

// Package cmd wires the command-line interface: a single positional
// argument selects a source file to execute, its absence starts the
// interactive REPL.
package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/iOS-GM/lamina-go/eval"
	"github.com/iOS-GM/lamina-go/file"
	"github.com/iOS-GM/lamina-go/parser"
	"github.com/iOS-GM/lamina-go/repl"
	"github.com/spf13/cobra"
)

// Version information (set by build flags).
var Version = "0.1.0-dev"

// Exit codes per the interface contract.
const (
	ExitOK         = 0 // normal completion
	ExitFileError  = 1 // cannot open source file
	ExitParseError = 2 // parse failure
)

// exitError carries a process exit code through cobra's error path.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string { return e.msg }

var rootCmd = &cobra.Command{
	Use:   "lamina [file]",
	Short: "Lamina scripting language interpreter",
	Long: `lamina-go is a Go implementation of the Lamina scripting language.

Run a script by passing its path, or start an interactive REPL by passing
nothing. Native modules implementing the LAMINA_MODULE_V2 ABI are loaded
with the include and use statements.`,
	Version:       Version,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(_ *cobra.Command, args []string) error {
		if len(args) == 0 {
			return repl.NewRepl(Version).Start()
		}
		return runFile(args[0])
	},
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		if exit, ok := err.(*exitError); ok {
			if exit.msg != "" {
				fmt.Fprintln(os.Stderr, exit.msg)
			}
			return exit.code
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		return ExitFileError
	}
	return ExitOK
}

// runFile executes a source file: read, parse, then run statement by
// statement under the propagation policy (runtime errors terminate only the
// offending top-level statement).
func runFile(path string) error {
	src, err := file.ReadSource(path)
	if err != nil {
		return &exitError{code: ExitFileError, msg: err.Error()}
	}

	par := parser.NewParser(src)
	root := par.Parse()
	if par.HasErrors() {
		errColor := color.New(color.FgRed)
		for _, msg := range par.GetErrors() {
			errColor.Fprintln(os.Stderr, msg)
		}
		return &exitError{code: ExitParseError}
	}

	ev := eval.NewEvaluator()
	ev.SetParser(par)
	defer ev.Modules.Close()
	ev.RunProgram(root)
	return nil
}
