/*
File    : tiger-rpython/ast/ast.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package ast defines the Tiger abstract syntax tree. Per spec.md §9's
// redesign note, this is NOT go-mix's parser.Node/NodeVisitor hierarchy
// (parser/node.go): there is no virtual evaluate(env) method and no
// NodeVisitor interface to implement per node kind. Instead every
// expression kind is a concrete Go struct satisfying the narrow Expr
// marker interface, and interp dispatches on a single type switch. This
// avoids virtual-dispatch overhead; a node kind with no case of its own
// reaches the switch's default branch, which returns an error.
package ast

import "github.com/abrown/tiger-rpython/environment"

// Expr is the marker interface implemented by every expression node.
type Expr interface {
	exprNode()
}

// Decl is the marker interface implemented by every declaration node.
type Decl interface {
	exprNode() // declarations are also walked by the resolver as Expr-like nodes
	DeclName() string
	binding() *Binding
}

// TypeExpr is the marker interface implemented by every type reference.
type TypeExpr interface {
	typeNode()
}

// Binding is the resolution annotation spec.md §3 describes: every
// Declaration receives a parent_scope_id and an index, assigned exactly
// once by the resolver. Parent is the Let or FuncDecl that introduces the
// declaration; Index is the declaration's slot within that scope's frame.
type Binding struct {
	Parent ScopeOwner
	Index  int
}

// ScopeOwner is implemented by the three node kinds that introduce a
// frame: *Let, *FuncDecl, and *For (whose loop variable occupies a
// one-slot frame of its own). ActiveFrame is set by the evaluator on
// entry to the scope and restored to its prior value (typically nil) on
// exit; use sites resolved against this owner read ActiveFrame to find
// their slot, matching spec.md §4.6's "store it on the Let node"
// instruction.
type ScopeOwner interface {
	activeFrame() *environment.Frame
	setActiveFrame(*environment.Frame)
}

// Use is the resolution annotation written onto every identifier-bearing
// use site (an LValue head, a FunctionCall, or a TypeId) once resolution
// completes: a direct reference to the Decl it names.
type Use struct {
	Decl Decl
}

// Bind assigns a declaration's (parent, index) Binding. binding() is
// unexported so that only types defined in this package can ever satisfy
// Decl (a sealed-interface discipline); Bind is the one exported door
// through which the resolver, itself in another package, is allowed to
// write that sealed field.
func Bind(d Decl, parent ScopeOwner, index int) {
	*d.binding() = Binding{Parent: parent, Index: index}
}

// BindingOf reads back a declaration's resolved Binding, for callers (the
// evaluator) that need to know which frame and slot a declaration lives
// in without themselves being able to call the sealed binding() method.
func BindingOf(d Decl) Binding {
	return *d.binding()
}

// GetFrame and SetFrame expose ScopeOwner's sealed activeFrame/
// setActiveFrame pair to the evaluator, which must push a frame onto a
// Let/FuncDecl/For on entry and pop it on exit (spec.md §4.6).
func GetFrame(s ScopeOwner) *environment.Frame {
	return s.activeFrame()
}

func SetFrame(s ScopeOwner, f *environment.Frame) {
	s.setActiveFrame(f)
}
