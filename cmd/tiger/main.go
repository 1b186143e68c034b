/*
File    : tiger-rpython/cmd/tiger/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Command tiger is the CLI entry point: `tiger <source-file>` lexes,
// parses, resolves, and evaluates a Tiger program (spec.md §6). It
// generalizes go-mix's main/main.go (banner/help/version dispatch via
// spf13/cobra instead of hand-rolled os.Args[1] string matching) but
// keeps go-mix's colored-diagnostics convention (fatih/color) and its
// exact file-execution exit-code contract, which cobra's own generic
// "missing argument" handling does not reproduce — so cobra accepts any
// argument count and RunE itself checks for the missing source file.
package main

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/abrown/tiger-rpython/interp"
	"github.com/abrown/tiger-rpython/natives"
	"github.com/abrown/tiger-rpython/parser"
	"github.com/abrown/tiger-rpython/repl"
)

const (
	exitNormal          = 0
	exitMissingArgument = 40
	exitParseFailure    = 42
	exitOtherError      = 1
)

var redColor = color.New(color.FgRed)

var version = "v1.0.0"

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tiger <source-file>",
		Short:   "Run a Tiger program",
		Version: version,
		Args:    cobra.ArbitraryArgs, // exact missing-argument check happens in RunE, not here
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				redColor.Fprintln(stderr, "[USAGE ERROR] missing source file. Usage: tiger <source-file>")
				return exitCodeError(exitMissingArgument)
			}
			return exitCodeError(runFile(args[0], stdout, stderr))
		},
	}
	cmd.AddCommand(newReplCmd())
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	return cmd
}

// newReplCmd is the optional bonus interactive mode; spec.md's CLI
// contract (§6) only ever names `tiger <source-file>`, so this lives
// behind an explicit subcommand rather than the no-argument default.
func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive Tiger session",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := repl.NewRepl(tigerBanner, version, "akashmaji(@iisc.ac.in)", tigerLine, "MIT", "tiger >>> ")
			r.Start(os.Stdin, os.Stdout)
			return nil
		},
	}
}

const tigerLine = "----------------------------------------------------------------"
const tigerBanner = `
  ████████╗ ██╗ ██████╗  ███████╗ ██████╗
  ╚══██╔══╝ ██║ ██╔════╝  ██╔════╝ ██╔══██╗
     ██║    ██║ ██║  ███╗ █████╗   ██████╔╝
     ██║    ██║ ██║   ██║ ██╔══╝   ██╔══██╗
     ██║    ██║ ╚██████╔╝ ███████╗ ██║  ██║
     ╚═╝    ╚═╝  ╚═════╝  ╚══════╝ ╚═╝  ╚═╝
`

// exitCode is a sentinel error carrying the process exit code a RunE
// failure should produce, letting run() stay exec-free and testable in
// process while main() still calls os.Exit exactly once.
type exitCode struct{ code int }

func (e exitCode) Error() string { return "" }

func exitCodeError(code int) error {
	if code == exitNormal {
		return nil
	}
	return exitCode{code: code}
}

// run executes the CLI against args (excluding the program name) and
// returns the process exit code spec.md §6 mandates, without ever
// calling os.Exit itself — main is the only caller that does.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		var ec exitCode
		if ok := errorsAsExitCode(err, &ec); ok {
			return ec.code
		}
		redColor.Fprintln(stderr, err)
		return exitOtherError
	}
	return exitNormal
}

func errorsAsExitCode(err error, ec *exitCode) bool {
	if e, ok := err.(exitCode); ok {
		*ec = e
		return true
	}
	return false
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// runFile reads, parses, resolves, and evaluates a single source file,
// returning the exit code spec.md §6 mandates for each error kind.
func runFile(fileName string, stdout, stderr io.Writer) int {
	source, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(stderr, "[FILE ERROR] could not read file '%s': %v\n", fileName, err)
		return exitOtherError
	}

	decls := natives.Decls()
	p, err := parser.New(string(source), fileName)
	if err != nil {
		return reportLexOrParseError(stderr, err)
	}
	root, err := p.Parse(decls)
	if err != nil {
		return reportLexOrParseError(stderr, err)
	}

	ev := interp.New(stdout, stderr)
	natives.Bind(ev, decls, stdout, stderr)

	// print's own side effects already went to stdout; the program's
	// overall result value is not echoed, matching original_source/src/
	// main.py discarding the top-level expression's value.
	if _, err := ev.Run(root); err != nil {
		redColor.Fprintf(stderr, "[EVALUATION ERROR] %v\n", err)
		return exitOtherError
	}
	return exitNormal
}

// reportLexOrParseError distinguishes a *parser.ParseError (exit 42) from
// every other lex/resolve failure (exit 1), per spec.md §7's taxonomy.
func reportLexOrParseError(stderr io.Writer, err error) int {
	if _, ok := err.(*parser.ParseError); ok {
		redColor.Fprintf(stderr, "[PARSE ERROR] %v\n", err)
		return exitParseFailure
	}
	redColor.Fprintf(stderr, "[ERROR] %v\n", err)
	return exitOtherError
}
