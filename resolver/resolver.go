/*
File    : tiger-rpython/resolver/resolver.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package resolver implements the single static-resolution pass described
// by spec.md §4.3: a depth-first walk that maintains a stack of active
// scopes (one per Let, FuncDecl or For currently open), assigns every
// declaration its (parent, index) Binding, and rewrites every use site's
// Use.Decl to point directly at the declaration it names.
//
// This generalizes original_source/src/scopes.py's LValueTransformer,
// which walks a hand-rolled DepthFirstAstIterator and maintains
// self.scopes as a plain list of name lists. Go's recursive descent gives
// the same push-scope/visit-children/pop-scope shape without a separate
// iterator type, and the ast package's type-switch-friendly node set
// (rather than go-mix's NodeVisitor, see parser/node.go) lets resolve
// dispatch directly on concrete *ast.X types.
package resolver

import (
	"github.com/abrown/tiger-rpython/ast"
	"github.com/abrown/tiger-rpython/token"
)

// scope is one entry in the resolver's open-scope stack: the node that
// owns the frame, and the declarations introduced there in frame-index
// order.
type scope struct {
	owner ast.ScopeOwner
	decls []ast.Decl
}

type resolver struct {
	scopes []*scope
}

// Resolve performs the resolution pass over root in place and returns the
// first ScopeError encountered, or nil on success.
func Resolve(root ast.Expr) error {
	r := &resolver{}
	return r.resolveExpr(root)
}

func (r *resolver) push(owner ast.ScopeOwner, decls []ast.Decl) error {
	if err := bindAll(owner, decls); err != nil {
		return err
	}
	r.scopes = append(r.scopes, &scope{owner: owner, decls: decls})
	return nil
}

func (r *resolver) pop() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// bindAll assigns (parent, index) to every declaration in decls, where
// parent is owner and index is the declaration's position in decls —
// matching spec.md §4.3: "each declaration is assigned index equal to its
// position in the declarations list". A Let's frame allocates parallel
// Values and Types vectors of this same size, so a TypeDecl's index
// addresses the Types slot and every other Decl's index addresses the
// Values slot at the identical position.
func bindAll(owner ast.ScopeOwner, decls []ast.Decl) error {
	seen := make(map[string]bool, len(decls))
	for i, d := range decls {
		name := d.DeclName()
		if name != "" {
			if seen[name] {
				return &ScopeError{Msg: "duplicate declaration of " + name + " in the same scope"}
			}
			seen[name] = true
		}
		ast.Bind(d, owner, i)
	}
	return nil
}

// declKind classifies a Decl for the acceptance checks in spec.md §4.3's
// resolution-target table.
type declKind int

const (
	kindType declKind = iota
	kindValue
	kindFunc
)

func classify(d ast.Decl) declKind {
	switch d.(type) {
	case *ast.TypeDecl:
		return kindType
	case *ast.FuncDecl, *ast.NativeDecl:
		return kindFunc
	default: // *ast.VariableDecl, *ast.Param, *ast.LoopVarDecl
		return kindValue
	}
}

// find searches the open-scope stack inside-out for name, requiring the
// first match to classify as want. A match of the wrong kind is a
// mismatch error rather than a continued outward search: Tiger scoping
// means the nearest declaration of that name shadows any outer one,
// regardless of what site is asking for it.
func (r *resolver) find(name string, want declKind, pos token.Position) (ast.Decl, error) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		for _, d := range r.scopes[i].decls {
			if d.DeclName() != name {
				continue
			}
			if classify(d) != want {
				return nil, &ScopeError{Pos: pos, Msg: "'" + name + "' is not usable here (found a different kind of declaration)"}
			}
			return d, nil
		}
	}
	return nil, &ScopeError{Pos: pos, Msg: "undeclared name '" + name + "'"}
}

func (r *resolver) resolveExpr(e ast.Expr) error {
	if e == nil {
		return nil
	}
	switch n := e.(type) {
	case *ast.NilExpr, *ast.IntExpr, *ast.StringExpr, *ast.Break:
		return nil

	case *ast.LValue:
		d, err := r.find(n.Name, kindValue, n.NamePos)
		if err != nil {
			return err
		}
		n.HeadUse = ast.Use{Decl: d}
		for _, sel := range n.Chain {
			if idx, ok := sel.(*ast.IndexSelector); ok {
				if err := r.resolveExpr(idx.Index); err != nil {
					return err
				}
			}
		}
		return nil

	case *ast.ArrayCreation:
		d, err := r.find(n.TypeName, kindType, token.Position{})
		if err != nil {
			return err
		}
		n.TypeUse = ast.Use{Decl: d}
		if err := r.resolveExpr(n.Length); err != nil {
			return err
		}
		return r.resolveExpr(n.Init)

	case *ast.RecordCreation:
		d, err := r.find(n.TypeName, kindType, token.Position{})
		if err != nil {
			return err
		}
		n.TypeUse = ast.Use{Decl: d}
		for i := range n.Fields {
			if err := r.resolveExpr(n.Fields[i].Value); err != nil {
				return err
			}
		}
		return nil

	case *ast.Assign:
		if err := r.resolveExpr(n.Value); err != nil {
			return err
		}
		return r.resolveExpr(n.Target)

	case *ast.Sequence:
		for _, sub := range n.Exprs {
			if err := r.resolveExpr(sub); err != nil {
				return err
			}
		}
		return nil

	case *ast.If:
		if err := r.resolveExpr(n.Cond); err != nil {
			return err
		}
		if err := r.resolveExpr(n.Then); err != nil {
			return err
		}
		return r.resolveExpr(n.Else)

	case *ast.While:
		if err := r.resolveExpr(n.Cond); err != nil {
			return err
		}
		return r.resolveExpr(n.Body)

	case *ast.For:
		if err := r.resolveExpr(n.Start); err != nil {
			return err
		}
		if err := r.resolveExpr(n.End); err != nil {
			return err
		}
		if err := r.push(n, []ast.Decl{n.Var}); err != nil {
			return err
		}
		err := r.resolveExpr(n.Body)
		r.pop()
		return err

	case *ast.Let:
		if err := r.push(n, n.Decls); err != nil {
			return err
		}
		for _, d := range n.Decls {
			if err := r.resolveDecl(d); err != nil {
				r.pop()
				return err
			}
		}
		for _, sub := range n.Body {
			if err := r.resolveExpr(sub); err != nil {
				r.pop()
				return err
			}
		}
		r.pop()
		return nil

	case *ast.FunctionCall:
		d, err := r.find(n.Name, kindFunc, n.NamePos)
		if err != nil {
			return err
		}
		n.NameUse = ast.Use{Decl: d}
		if err := checkArity(d, len(n.Args), n.NamePos); err != nil {
			return err
		}
		for _, arg := range n.Args {
			if err := r.resolveExpr(arg); err != nil {
				return err
			}
		}
		return nil

	case *ast.BinaryExpr:
		if err := r.resolveExpr(n.Left); err != nil {
			return err
		}
		return r.resolveExpr(n.Right)

	default:
		return &ScopeError{Msg: "resolver: unhandled expression node"}
	}
}

func (r *resolver) resolveDecl(d ast.Decl) error {
	switch n := d.(type) {
	case *ast.TypeDecl:
		return r.resolveType(n.Type)
	case *ast.VariableDecl:
		if n.TypeName != "" {
			td, err := r.find(n.TypeName, kindType, token.Position{})
			if err != nil {
				return err
			}
			n.TypeUse = ast.Use{Decl: td}
		}
		return r.resolveExpr(n.Init)
	case *ast.FuncDecl:
		if n.ReturnType != "" {
			td, err := r.find(n.ReturnType, kindType, token.Position{})
			if err != nil {
				return err
			}
			n.ReturnUse = ast.Use{Decl: td}
		}
		params := make([]ast.Decl, len(n.Params))
		for i, p := range n.Params {
			if p.TypeName != "" {
				td, err := r.find(p.TypeName, kindType, token.Position{})
				if err != nil {
					return err
				}
				p.TypeUse = ast.Use{Decl: td}
			}
			params[i] = p
		}
		if err := r.push(n, params); err != nil {
			return err
		}
		err := r.resolveExpr(n.Body)
		r.pop()
		return err
	case *ast.NativeDecl:
		return nil
	default:
		return &ScopeError{Msg: "resolver: unhandled declaration node"}
	}
}

func (r *resolver) resolveType(t ast.TypeExpr) error {
	switch n := t.(type) {
	case *ast.TypeId:
		d, err := r.find(n.Name, kindType, token.Position{})
		if err != nil {
			return err
		}
		n.Use = ast.Use{Decl: d}
		return nil
	case *ast.ArrayTypeExpr:
		d, err := r.find(n.ElemTypeName, kindType, token.Position{})
		if err != nil {
			return err
		}
		n.ElemUse = ast.Use{Decl: d}
		return nil
	case *ast.RecordTypeExpr:
		for i := range n.Fields {
			d, err := r.find(n.Fields[i].TypeName, kindType, token.Position{})
			if err != nil {
				return err
			}
			n.Fields[i].TypeUse = ast.Use{Decl: d}
		}
		return nil
	default:
		return &ScopeError{Msg: "resolver: unhandled type node"}
	}
}

// checkArity enforces spec.md §4.6's "arity mismatches raise an error" at
// resolution time, since both FuncDecl and NativeDecl fix their parameter
// count statically.
func checkArity(d ast.Decl, argCount int, pos token.Position) error {
	switch fn := d.(type) {
	case *ast.FuncDecl:
		if len(fn.Params) != argCount {
			return &ScopeError{Pos: pos, Msg: "wrong number of arguments to '" + fn.Name + "'"}
		}
	case *ast.NativeDecl:
		if fn.Arity != argCount {
			return &ScopeError{Pos: pos, Msg: "wrong number of arguments to '" + fn.Name + "'"}
		}
	}
	return nil
}
