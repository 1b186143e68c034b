/*
File    : tiger-rpython/value/value.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package value defines the runtime values the evaluator produces and
// consumes. This generalizes go-mix's objects.GoMixObject hierarchy
// (objects/objects.go) to Tiger's much smaller value universe: Tiger has
// no floats, booleans, or user-facing errors as values (integers double as
// booleans per spec.md §4.5), so Value covers Nil, Integer, String, Array,
// Record, Closure, and Native only.
package value

import (
	"fmt"

	"github.com/abrown/tiger-rpython/ast"
	"github.com/abrown/tiger-rpython/environment"
)

// Kind identifies a Value's runtime type, used by print's error message
// and by the array-initializer kind check in interp (which accepts nil
// for any record or array element type).
type Kind string

const (
	NilKind     Kind = "nil"
	IntegerKind Kind = "int"
	StringKind  Kind = "string"
	ArrayKind   Kind = "array"
	RecordKind  Kind = "record"
	ClosureKind Kind = "function"
	NativeKind  Kind = "native"
)

// Value is the core interface every runtime value implements: type
// identification and a display form, matching the GetType/ToString half of
// go-mix's GoMixObject (ToObject's debug form has no Tiger use and is
// dropped).
type Value interface {
	Kind() Kind
	String() string
}

// Nil is Tiger's `nil` literal, compatible with any record type.
type Nil struct{}

func (Nil) Kind() Kind      { return NilKind }
func (Nil) String() string  { return "nil" }

// Integer is Tiger's sole numeric and boolean type: comparisons and
// `while`/`if` conditions treat 0 as false and any other value as true.
type Integer struct {
	Value int64
}

func (i Integer) Kind() Kind     { return IntegerKind }
func (i Integer) String() string { return fmt.Sprintf("%d", i.Value) }

// String is a Tiger string value.
type String struct {
	Value string
}

func (s String) Kind() Kind     { return StringKind }
func (s String) String() string { return s.Value }

// ArrayType describes an array type's element type name. evalArrayCreation
// (interp/interp_exprs.go) looks this descriptor up by the array type's
// resolved Use and checks the `of` initializer's Value kind against
// ElemTypeName before building the array; kept separate from the runtime
// Array value itself, mirroring the declared/runtime split spec.md §4.3
// draws between TypeDeclaration and the values it describes.
type ArrayType struct {
	Name         string
	ElemTypeName string
}

// Array is a mutable, fixed-length, zero-indexed sequence of Values
// created by `typeId [ n ] of init`.
type Array struct {
	TypeName string
	Elems    []Value
}

func (a *Array) Kind() Kind { return ArrayKind }
func (a *Array) String() string {
	return fmt.Sprintf("<array(%s) len=%d>", a.TypeName, len(a.Elems))
}

// RecordType describes a record type's declared field order, preserved
// from the *ast.RecordTypeExpr so field-initializer evaluation order
// (spec.md §9 "Record field ordering") is governed by this declared order
// rather than the literal's own field order.
type RecordType struct {
	Name        string
	FieldOrder  []string
	FieldTypes  []string
	FieldIndex  map[string]int
}

// Record is a mutable record instance: a reference to its declared type
// plus one value slot per declared field, addressed by RecordType.FieldIndex.
type Record struct {
	Type   *RecordType
	Fields []Value
}

func (r *Record) Kind() Kind { return RecordKind }
func (r *Record) String() string {
	return fmt.Sprintf("<record(%s)>", r.Type.Name)
}

// FieldIndexOf returns the slot index of name within the record, or -1 if
// the record's type has no such field.
func (r *Record) FieldIndexOf(name string) int {
	if idx, ok := r.Type.FieldIndex[name]; ok {
		return idx
	}
	return -1
}

// Closure is a Tiger function value: the declaration it was created from,
// plus the frame active when the declaration was reached (its lexical
// environment). This generalizes go-mix's function.Function
// (function/function.go), which pairs a parameter list and body with a
// *scope.Scope; a Closure instead captures an *environment.Frame, since
// Tiger's frames are index-addressed rather than name-keyed.
type Closure struct {
	Decl *ast.FuncDecl
	Env  *environment.Frame
}

func (c *Closure) Kind() Kind     { return ClosureKind }
func (c *Closure) String() string { return fmt.Sprintf("<function(%s)>", c.Decl.Name) }

// NativeFunc is a host-implemented function body, called with already
// evaluated arguments (spec.md §4.7, fixed arity 0/1/2).
type NativeFunc func(args []Value) (Value, error)

// Native is the runtime counterpart to an *ast.NativeDecl: the same fixed
// identity (Name, Arity) plus the Go function it dispatches to.
type Native struct {
	Name  string
	Arity int
	Fn    NativeFunc
}

func (n *Native) Kind() Kind     { return NativeKind }
func (n *Native) String() string { return fmt.Sprintf("<native(%s)>", n.Name) }

// Truthy implements spec.md §4.5's boolean-as-integer convention: every
// value used as a condition must be an Integer, and 0 is false.
func Truthy(v Value) (bool, bool) {
	i, ok := v.(Integer)
	if !ok {
		return false, false
	}
	return i.Value != 0, true
}
