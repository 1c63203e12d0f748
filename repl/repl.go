/*
File    : lamina-go/repl/repl.go
Project : Lamina interpreter in Go

Package repl implements the Read-Eval-Print Loop for the Lamina interpreter.
The REPL provides an interactive environment where users can:
- Enter Lamina code line by line
- See immediate results and diagnostics
- Navigate command history using arrow keys
- Run meta-commands (:exit, :help, :vars, :clear) that are consumed before
  the lexer ever sees the line

The REPL uses the readline library for line editing and history, and keeps
every successfully parsed statement tree alive for the whole session so that
function values defined at one prompt stay callable at later prompts.
*/
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/iOS-GM/lamina-go/eval"
	"github.com/iOS-GM/lamina-go/parser"
)

// Color definitions for REPL output.
var (
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
	yellowColor = color.New(color.FgYellow)
)

// Repl represents one interactive session.
type Repl struct {
	Version string // Version string shown in the banner
	Prompt  string // Command prompt (e.g., "> ")

	evaluator *eval.Evaluator
	history   []*parser.RootNode // Parsed trees kept alive for the session
}

// NewRepl creates a REPL around a fresh evaluator.
func NewRepl(version string) *Repl {
	return &Repl{
		Version:   version,
		Prompt:    "> ",
		evaluator: eval.NewEvaluator(),
	}
}

// printBanner displays the welcome banner and usage instructions.
func (r *Repl) printBanner(writer io.Writer) {
	greenColor.Fprintf(writer, "Lamina %s\n", r.Version)
	cyanColor.Fprintln(writer, "Lamina REPL. Press Ctrl+C or :exit to exit.")
	cyanColor.Fprintln(writer, "Type :help for help.")
}

// printHelp lists the meta-commands.
func (r *Repl) printHelp(writer io.Writer) {
	fmt.Fprintln(writer, "Lamina Interpreter Commands:")
	fmt.Fprintln(writer, "  :exit  - Exit interpreter")
	fmt.Fprintln(writer, "  :help  - Show this help message")
	fmt.Fprintln(writer, "  :vars  - Show all variables")
	fmt.Fprintln(writer, "  :clear - Clear screen")
}

// printVars lists every binding of the top-level scope.
func (r *Repl) printVars(writer io.Writer) {
	names := r.evaluator.Scp.Names()
	if len(names) == 0 {
		yellowColor.Fprintln(writer, "(no variables)")
		return
	}
	for _, name := range names {
		obj, _ := r.evaluator.Scp.LookUp(name)
		fmt.Fprintf(writer, "  %s = %s\n", name, obj.ToObject())
	}
}

// Start runs the interactive loop until :exit, Ctrl+D, or Ctrl+C.
func (r *Repl) Start() error {
	rl, err := readline.New(r.Prompt)
	if err != nil {
		return fmt.Errorf("failed to initialize line editor: %w", err)
	}
	defer rl.Close()
	defer r.evaluator.Modules.Close()

	writer := rl.Stdout()
	r.evaluator.SetWriter(writer)
	r.printBanner(writer)

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			// Ctrl+C on an empty line exits, otherwise discards the line
			if len(line) == 0 {
				return nil
			}
			continue
		}
		if err == io.EOF {
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		// meta-commands are consumed before lexing
		switch line {
		case ":exit":
			return nil
		case ":help":
			r.printHelp(writer)
			continue
		case ":vars":
			r.printVars(writer)
			continue
		case ":clear":
			fmt.Fprint(writer, "\033[2J\033[1;1H")
			continue
		}

		r.evalLine(writer, line)
	}
}

// evalLine parses and executes one input unit. A parse error abandons the
// unit; runtime errors and stray control flow are handled statement by
// statement by the driver, so the prompt always returns.
func (r *Repl) evalLine(writer io.Writer, line string) {
	par := parser.NewParser(line)
	root := par.Parse()
	if par.HasErrors() {
		for _, msg := range par.GetErrors() {
			redColor.Fprintln(writer, msg)
		}
		return
	}

	// retain the tree: function values defined here reference its nodes
	r.history = append(r.history, root)

	r.evaluator.SetParser(par)
	r.evaluator.RunProgram(root)
}
