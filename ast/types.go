/*
File    : tiger-rpython/ast/types.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

// TypeId is the named-type reference on the right-hand side of a type
// alias, e.g. the `int` in `type t = int`. Resolved against a *TypeDecl by
// the resolver per spec.md §4.3. Other type references (variable and
// parameter annotations, array/record creation) are kept as a name plus a
// Use on their own node.
type TypeId struct {
	Name string
	Use  Use
}

func (*TypeId) typeNode() {}

// ArrayTypeExpr is the right-hand side of `type t = array of elem`.
type ArrayTypeExpr struct {
	ElemTypeName string
	ElemUse      Use
}

func (*ArrayTypeExpr) typeNode() {}

// FieldDecl is one `name : typeName` pair inside a record type. Fields
// preserves declaration order; that order is the one record-literal field
// initializers must evaluate in (spec.md §4.6, §9 "Record field ordering").
type FieldDecl struct {
	Name     string
	TypeName string
	TypeUse  Use
}

// RecordTypeExpr is the right-hand side of `type t = { f1 : t1, ... }`.
type RecordTypeExpr struct {
	Fields []FieldDecl
}

func (*RecordTypeExpr) typeNode() {}
