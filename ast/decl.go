/*
File    : tiger-rpython/ast/decl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import "github.com/abrown/tiger-rpython/environment"

// TypeDecl is `type name = typeExpr`. Its Binding.Index addresses a slot in
// the owning Let's frame's Types vector, not Values (spec.md §4.4: type
// declarations occupy the parallel type-slot vector).
type TypeDecl struct {
	Name string
	Type TypeExpr
	bind Binding
}

func (*TypeDecl) exprNode()           {}
func (d *TypeDecl) DeclName() string  { return d.Name }
func (d *TypeDecl) binding() *Binding { return &d.bind }

// VariableDecl is `var name [: typeName] := init`. TypeName is empty when
// the declaration omits the optional type annotation; no type is inferred
// from Init.
type VariableDecl struct {
	Name     string
	TypeName string
	TypeUse  Use
	Init     Expr
	bind     Binding
}

func (*VariableDecl) exprNode()           {}
func (d *VariableDecl) DeclName() string  { return d.Name }
func (d *VariableDecl) binding() *Binding { return &d.bind }

// Param is one formal parameter of a FuncDecl. It is itself a Decl so an
// LValue head inside the function body can resolve directly to it, exactly
// like a VariableDecl (spec.md §4.3's lookup table lists
// "VariableDeclaration, FunctionParameter" as the joint target set for an
// LValue head name).
type Param struct {
	Name     string
	TypeName string
	TypeUse  Use
	bind     Binding
}

func (*Param) exprNode()           {}
func (p *Param) DeclName() string  { return p.Name }
func (p *Param) binding() *Binding { return &p.bind }

// FuncDecl is `function name(params) [: returnType] = body`. FuncDecl is
// itself a ScopeOwner: its Params occupy the frame FuncDecl pushes on
// call, one slot per Param, in declaration order; a Let inside the body
// pushes its own child frame. This
// mirrors go-mix's function.Function (function/function.go), which pairs a
// parameter list and body with the defining scope, but replaces the
// name-keyed scope.Scope capture with a frame captured by a value.Closure.
type FuncDecl struct {
	Name       string
	Params     []*Param
	ReturnType string
	ReturnUse  Use
	Body       Expr
	bind       Binding
	frame      *environment.Frame
}

func (*FuncDecl) exprNode()           {}
func (d *FuncDecl) DeclName() string  { return d.Name }
func (d *FuncDecl) binding() *Binding { return &d.bind }

func (d *FuncDecl) activeFrame() *environment.Frame      { return d.frame }
func (d *FuncDecl) setActiveFrame(fr *environment.Frame) { d.frame = fr }

// NativeDecl is the resolver-visible stand-in for a host-implemented
// function (print, timeGo, timeStop). Per spec.md §9 "Pre-resolution
// natives", the parser injects one NativeDecl per native into the
// synthetic root Let's Decls before resolving the program proper, so
// FunctionCall sites naming a native resolve through the ordinary
// FunctionDeclaration/NativeFunctionDeclaration lookup path rather than a
// separate builtin-name check.
type NativeDecl struct {
	Name  string
	Arity int
	bind  Binding
}

func (*NativeDecl) exprNode()           {}
func (d *NativeDecl) DeclName() string  { return d.Name }
func (d *NativeDecl) binding() *Binding { return &d.bind }
