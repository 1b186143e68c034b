/*
File    : tiger-rpython/ast/equals.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

// Equal reports whether two expression trees are structurally identical:
// same shape, same literal values, same names — ignoring resolution
// annotations (Use, Binding) entirely, since two trees freshly parsed from
// identical source carry the same unresolved shape regardless of whether
// either has since been resolved (spec.md §8, "round-trip structural
// equality"). This generalizes go-mix's Node.Literal()-based string
// comparison (parser/node.go) into a real recursive Go type switch, since
// go-mix never needed to compare two parses of the same program for
// equality.
func Equal(a, b Expr) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch x := a.(type) {
	case *NilExpr:
		_, ok := b.(*NilExpr)
		return ok
	case *IntExpr:
		y, ok := b.(*IntExpr)
		return ok && x.Value == y.Value
	case *StringExpr:
		y, ok := b.(*StringExpr)
		return ok && x.Value == y.Value
	case *LValue:
		y, ok := b.(*LValue)
		return ok && x.Name == y.Name && selectorsEqual(x.Chain, y.Chain)
	case *ArrayCreation:
		y, ok := b.(*ArrayCreation)
		return ok && x.TypeName == y.TypeName && Equal(x.Length, y.Length) && Equal(x.Init, y.Init)
	case *RecordCreation:
		y, ok := b.(*RecordCreation)
		if !ok || x.TypeName != y.TypeName || len(x.Fields) != len(y.Fields) {
			return false
		}
		for i := range x.Fields {
			if x.Fields[i].Name != y.Fields[i].Name || !Equal(x.Fields[i].Value, y.Fields[i].Value) {
				return false
			}
		}
		return true
	case *Assign:
		y, ok := b.(*Assign)
		return ok && Equal(x.Target, y.Target) && Equal(x.Value, y.Value)
	case *Sequence:
		y, ok := b.(*Sequence)
		return ok && exprSliceEqual(x.Exprs, y.Exprs)
	case *If:
		y, ok := b.(*If)
		return ok && Equal(x.Cond, y.Cond) && Equal(x.Then, y.Then) && Equal(x.Else, y.Else)
	case *While:
		y, ok := b.(*While)
		return ok && Equal(x.Cond, y.Cond) && Equal(x.Body, y.Body)
	case *For:
		y, ok := b.(*For)
		return ok && x.Var.Name == y.Var.Name && Equal(x.Start, y.Start) &&
			Equal(x.End, y.End) && Equal(x.Body, y.Body)
	case *Break:
		_, ok := b.(*Break)
		return ok
	case *Let:
		y, ok := b.(*Let)
		if !ok || len(x.Decls) != len(y.Decls) || len(x.Body) != len(y.Body) {
			return false
		}
		for i := range x.Decls {
			if !declEqual(x.Decls[i], y.Decls[i]) {
				return false
			}
		}
		return exprSliceEqual(x.Body, y.Body)
	case *FunctionCall:
		y, ok := b.(*FunctionCall)
		return ok && x.Name == y.Name && exprSliceEqual(x.Args, y.Args)
	case *BinaryExpr:
		y, ok := b.(*BinaryExpr)
		return ok && x.Op == y.Op && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	default:
		return false
	}
}

func exprSliceEqual(a, b []Expr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func selectorsEqual(a, b []Selector) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		switch sx := a[i].(type) {
		case *FieldSelector:
			sy, ok := b[i].(*FieldSelector)
			if !ok || sx.Field != sy.Field {
				return false
			}
		case *IndexSelector:
			sy, ok := b[i].(*IndexSelector)
			if !ok || !Equal(sx.Index, sy.Index) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func declEqual(a, b Decl) bool {
	switch x := a.(type) {
	case *TypeDecl:
		y, ok := b.(*TypeDecl)
		return ok && x.Name == y.Name && typeExprEqual(x.Type, y.Type)
	case *VariableDecl:
		y, ok := b.(*VariableDecl)
		return ok && x.Name == y.Name && x.TypeName == y.TypeName && Equal(x.Init, y.Init)
	case *FuncDecl:
		y, ok := b.(*FuncDecl)
		if !ok || x.Name != y.Name || x.ReturnType != y.ReturnType || len(x.Params) != len(y.Params) {
			return false
		}
		for i := range x.Params {
			if x.Params[i].Name != y.Params[i].Name || x.Params[i].TypeName != y.Params[i].TypeName {
				return false
			}
		}
		return Equal(x.Body, y.Body)
	default:
		return false
	}
}

func typeExprEqual(a, b TypeExpr) bool {
	switch x := a.(type) {
	case *TypeId:
		y, ok := b.(*TypeId)
		return ok && x.Name == y.Name
	case *ArrayTypeExpr:
		y, ok := b.(*ArrayTypeExpr)
		return ok && x.ElemTypeName == y.ElemTypeName
	case *RecordTypeExpr:
		y, ok := b.(*RecordTypeExpr)
		if !ok || len(x.Fields) != len(y.Fields) {
			return false
		}
		for i := range x.Fields {
			if x.Fields[i].Name != y.Fields[i].Name || x.Fields[i].TypeName != y.Fields[i].TypeName {
				return false
			}
		}
		return true
	default:
		return false
	}
}
