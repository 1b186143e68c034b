/*
File    : tiger-rpython/natives/natives.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package natives implements Tiger's fixed native-function ABI: print,
// timeGo, timeStop (spec.md §4.7), grounded directly on
// original_source/src/native_functions.py's three functions of the same
// name. Per spec.md §9's "Pre-resolution natives" note, these are wired
// in as ordinary declarations of a synthetic root Let rather than a
// separate builtin-lookup mechanism (see parser.Parser.Parse's
// `existing` parameter): Decls supplies the two base types and the
// *ast.NativeDecl trio, Bind
// wires their runtime implementations onto an *interp.Evaluator.
package natives

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/abrown/tiger-rpython/ast"
	"github.com/abrown/tiger-rpython/value"
)

// Decls returns the root-scope declarations every Tiger program is
// compiled with: the two base types (`string`, `int`) Tiger's own grammar
// never declares, followed by the three native functions, in the fixed
// order string/int/print/timeGo/timeStop. This mirrors
// native_functions.py's create_native_functions, including its
// self-referential TypeId('string')/TypeId('int') stand-ins — there is
// no more primitive a representation to alias them to, so each base type
// just names itself. The same pointers must later be passed to Bind so
// the evaluator can tell which runtime value belongs to which native
// declaration.
func Decls() []ast.Decl {
	return []ast.Decl{
		&ast.TypeDecl{Name: "string", Type: &ast.TypeId{Name: "string"}},
		&ast.TypeDecl{Name: "int", Type: &ast.TypeId{Name: "int"}},
		&ast.NativeDecl{Name: "print", Arity: 1},
		&ast.NativeDecl{Name: "timeGo", Arity: 0},
		&ast.NativeDecl{Name: "timeStop", Arity: 0},
	}
}

type binder interface {
	BindNative(d *ast.NativeDecl, v value.Value)
}

// timer holds the tick count saved by the most recent timeGo call, mirroring
// native_functions.py's module-level Timestamp singleton.
type timer struct {
	startTicks int64
}

func ticks() int64 {
	return time.Now().UnixNano()
}

// Bind wires runtime implementations for exactly the declarations
// returned by Decls, in the same order, onto ev. out receives print's
// output; errw receives timeStop's DEBUG tick trace.
func Bind(ev binder, decls []ast.Decl, out, errw io.Writer) {
	t := &timer{}

	printDecl := decls[2].(*ast.NativeDecl)
	timeGoDecl := decls[3].(*ast.NativeDecl)
	timeStopDecl := decls[4].(*ast.NativeDecl)

	ev.BindNative(printDecl, &value.Native{Name: "print", Arity: 1, Fn: func(args []value.Value) (value.Value, error) {
		return tigerPrint(out, args[0])
	}})
	ev.BindNative(timeGoDecl, &value.Native{Name: "timeGo", Arity: 0, Fn: func(args []value.Value) (value.Value, error) {
		return tigerStartTimer(t)
	}})
	ev.BindNative(timeStopDecl, &value.Native{Name: "timeStop", Arity: 0, Fn: func(args []value.Value) (value.Value, error) {
		return tigerStopTimer(t, errw)
	}})
}

// tigerPrint writes v's display form with no trailing newline, flushing
// the writer afterward if it has a Sync method (such as *os.File),
// mirroring go-mix's std.print (std/common.go). Only Integer and String
// are printable, matching native_functions.py's tiger_print, which
// raises on any other value kind.
func tigerPrint(out io.Writer, v value.Value) (value.Value, error) {
	switch v.Kind() {
	case value.IntegerKind, value.StringKind:
		fmt.Fprint(out, v.String())
	default:
		return nil, fmt.Errorf("print: unsupported value kind %s", v.Kind())
	}
	if flusher, ok := out.(interface{ Sync() error }); ok {
		flusher.Sync()
	}
	return value.Nil{}, nil
}

// tigerStartTimer records the current tick count, matching
// native_functions.py's tiger_start_timer (RDTSC there, wall-clock here
// since Go has no portable cycle counter).
func tigerStartTimer(t *timer) (value.Value, error) {
	t.startTicks = ticks()
	return value.Integer{Value: t.startTicks}, nil
}

// tigerStopTimer returns the elapsed ticks since the last timeGo call and,
// when the DEBUG environment variable is set to a nonzero value, writes a
// `ticks=<N>` trace line to errw, matching native_functions.py's
// tiger_stop_timer.
func tigerStopTimer(t *timer, errw io.Writer) (value.Value, error) {
	elapsed := ticks() - t.startTicks
	if debug := os.Getenv("DEBUG"); debug != "" && debug != "0" {
		fmt.Fprintf(errw, "ticks=%d\n", elapsed)
	}
	return value.Integer{Value: elapsed}, nil
}
