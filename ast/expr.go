/*
File    : tiger-rpython/ast/expr.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import (
	"github.com/abrown/tiger-rpython/environment"
	"github.com/abrown/tiger-rpython/token"
)

// NilExpr is the `nil` literal.
type NilExpr struct{}

func (*NilExpr) exprNode() {}

// IntExpr is an integer literal, already converted from its lexeme.
type IntExpr struct {
	Value int64
}

func (*IntExpr) exprNode() {}

// StringExpr is a string literal with escapes already resolved by the lexer.
type StringExpr struct {
	Value string
}

func (*StringExpr) exprNode() {}

// Selector is one step (`.field` or `[expr]`) in an LValue chain.
type Selector interface {
	selectorNode()
}

// FieldSelector is a `.field` step. It is resolved against the record
// value's own field-order map at access time, never against lexical
// scopes (spec.md §4.3).
type FieldSelector struct {
	Field string
	Pos   token.Position
}

func (*FieldSelector) selectorNode() {}

// IndexSelector is a `[expr]` step, evaluated against the array's length
// at access time.
type IndexSelector struct {
	Index Expr
}

func (*IndexSelector) selectorNode() {}

// LValue is a locator: a head name plus zero or more field/index steps.
// It is itself an Expr (reading the locator's current value) and is also
// the left side of Assign. The head name is resolved once by the
// resolver; HeadUse.Decl is non-nil afterward and points at a
// *VariableDecl, *Param, or *LoopVarDecl.
type LValue struct {
	Name    string
	NamePos token.Position
	HeadUse Use
	Chain   []Selector
}

func (*LValue) exprNode() {}

// ArrayCreation is `typeId [ length ] of init`.
type ArrayCreation struct {
	TypeName string
	TypeUse  Use
	Length   Expr
	Init     Expr
}

func (*ArrayCreation) exprNode() {}

// RecordFieldInit is one `name = expr` pair in a record literal.
type RecordFieldInit struct {
	Name  string
	Value Expr
}

// RecordCreation is `typeId { f1 = e1, f2 = e2, ... }`. Fields preserves
// the literal's own field order (spec.md §4.2); the *type's* declared
// order, which governs evaluation order (§4.6), is looked up via TypeUse
// at evaluation time.
type RecordCreation struct {
	TypeName string
	TypeUse  Use
	Fields   []RecordFieldInit
}

func (*RecordCreation) exprNode() {}

// Assign is `lvalue := expr`.
type Assign struct {
	Target *LValue
	Value  Expr
}

func (*Assign) exprNode() {}

// Sequence is a parenthesised `(e1; e2; ...)`.
type Sequence struct {
	Exprs []Expr
}

func (*Sequence) exprNode() {}

// If is `if cond then then_ [else else_]`. Else is nil when absent.
type If struct {
	Cond Expr
	Then Expr
	Else Expr
}

func (*If) exprNode() {}

// While is `while cond do body`.
type While struct {
	Cond Expr
	Body Expr
}

func (*While) exprNode() {}

// LoopVarDecl is the implicit variable introduced by a For loop's `id :=`
// header. It is a Decl like any other so the resolver's lookup table
// (spec.md §4.3: "LValue head name -> VariableDeclaration, FunctionParameter")
// can target it uniformly; its Parent is the owning *For node.
type LoopVarDecl struct {
	Name string
	bind Binding
}

func (d *LoopVarDecl) exprNode()          {}
func (d *LoopVarDecl) DeclName() string   { return d.Name }
func (d *LoopVarDecl) binding() *Binding  { return &d.bind }

// For is `for var := start to end do body`. spec.md §4.6 describes an
// equivalent desugaring into a Let+While; this implementation evaluates
// For directly (permitted by spec.md §9) but keeps the same frame
// discipline: For owns a one-slot frame for Var, created on entry and
// popped on exit, exactly like a single-declaration Let.
type For struct {
	Var   *LoopVarDecl
	Start Expr
	End   Expr
	Body  Expr
	frame *environment.Frame
}

func (*For) exprNode() {}

func (f *For) activeFrame() *environment.Frame      { return f.frame }
func (f *For) setActiveFrame(fr *environment.Frame) { f.frame = fr }

// Break is the `break` keyword.
type Break struct{}

func (*Break) exprNode() {}

// Let is `let decls in body end`. It owns the frame that every
// declaration in Decls resolves against.
type Let struct {
	Decls []Decl
	Body  []Expr
	frame *environment.Frame
}

func (*Let) exprNode() {}

func (l *Let) activeFrame() *environment.Frame      { return l.frame }
func (l *Let) setActiveFrame(fr *environment.Frame) { l.frame = fr }

// FunctionCall is `name(args...)`.
type FunctionCall struct {
	Name    string
	NamePos token.Position
	NameUse Use
	Args    []Expr
}

func (*FunctionCall) exprNode() {}

// BinaryOp enumerates Tiger's twelve binary operators.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpEq
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
	OpAnd
	OpOr
)

// BinaryExpr is `left op right`.
type BinaryExpr struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
}

func (*BinaryExpr) exprNode() {}
