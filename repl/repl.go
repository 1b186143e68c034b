/*
File    : tiger-rpython/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements an optional interactive Read-Eval-Print Loop for
Tiger (spec.md has no notion of a REPL; this is a bonus surface, not a
substitute for the `tiger <source-file>` CLI contract in spec.md §6).
Each line of input is a complete, standalone Tiger program: natives are
rebound and a fresh Evaluator is created per line, since Tiger's `let`
scoping gives no natural notion of a persistent top-level binding set
across separate inputs the way go-mix's REPL keeps one live
eval.Evaluator across lines.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/abrown/tiger-rpython/interp"
	"github.com/abrown/tiger-rpython/natives"
	"github.com/abrown/tiger-rpython/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is an interactive session's fixed display configuration.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl constructs a Repl with the given banner and prompt.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to the Tiger REPL!")
	cyanColor.Fprintf(writer, "%s\n", "Type a complete Tiger expression and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop against reader/writer. reader is accepted for
// symmetry with a plain io.Reader-based Start, but readline reads stdin
// directly, matching go-mix's repl.Start shape.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}
		rl.SaveHistory(line)

		r.executeWithRecovery(writer, line)
	}
}

// executeWithRecovery parses and evaluates one line as a standalone
// program, displaying errors in red and continuing rather than exiting —
// the one REPL-specific deviation from the CLI's fatal-on-first-error
// contract (spec.md §7).
func (r *Repl) executeWithRecovery(writer io.Writer, line string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	p, err := parser.New(line, "<repl>")
	if err != nil {
		redColor.Fprintf(writer, "%v\n", err)
		return
	}
	decls := natives.Decls()
	root, err := p.Parse(decls)
	if err != nil {
		redColor.Fprintf(writer, "%v\n", err)
		return
	}

	ev := interp.New(writer, writer)
	natives.Bind(ev, decls, writer, writer)

	result, err := ev.Run(root)
	if err != nil {
		redColor.Fprintf(writer, "%v\n", err)
		return
	}
	yellowColor.Fprintf(writer, "%s\n", result.String())
}
