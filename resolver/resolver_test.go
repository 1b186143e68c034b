package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abrown/tiger-rpython/ast"
	"github.com/abrown/tiger-rpython/resolver"
)

func TestResolveSimpleLetBindsLValue(t *testing.T) {
	v := &ast.VariableDecl{Name: "x", Init: &ast.IntExpr{Value: 1}}
	use := &ast.LValue{Name: "x"}
	let := &ast.Let{Decls: []ast.Decl{v}, Body: []ast.Expr{use}}

	require.NoError(t, resolver.Resolve(let))
	assert.Same(t, v, use.HeadUse.Decl)
	assert.Equal(t, 0, ast.BindingOf(v).Index)
}

func TestResolveUndeclaredNameErrors(t *testing.T) {
	let := &ast.Let{Body: []ast.Expr{&ast.LValue{Name: "nope"}}}
	err := resolver.Resolve(let)
	require.Error(t, err)
	var scopeErr *resolver.ScopeError
	require.ErrorAs(t, err, &scopeErr)
}

func TestResolveInnerShadowsOuter(t *testing.T) {
	outer := &ast.VariableDecl{Name: "x", Init: &ast.IntExpr{Value: 1}}
	innerUse := &ast.LValue{Name: "x"}
	outerUse := &ast.LValue{Name: "x"}
	inner := &ast.VariableDecl{Name: "x", Init: &ast.IntExpr{Value: 2}}
	innerLet := &ast.Let{Decls: []ast.Decl{inner}, Body: []ast.Expr{innerUse}}
	root := &ast.Let{Decls: []ast.Decl{outer}, Body: []ast.Expr{innerLet, outerUse}}

	require.NoError(t, resolver.Resolve(root))
	assert.Same(t, inner, innerUse.HeadUse.Decl)
	assert.Same(t, outer, outerUse.HeadUse.Decl)
}

func TestResolveFunctionCallArityMismatch(t *testing.T) {
	fn := &ast.FuncDecl{Name: "f", Params: []*ast.Param{{Name: "a"}}, Body: &ast.IntExpr{Value: 0}}
	call := &ast.FunctionCall{Name: "f", Args: nil}
	let := &ast.Let{Decls: []ast.Decl{fn}, Body: []ast.Expr{call}}

	err := resolver.Resolve(let)
	require.Error(t, err)
}

func TestResolveDuplicateDeclarationErrors(t *testing.T) {
	a := &ast.VariableDecl{Name: "x", Init: &ast.IntExpr{Value: 1}}
	b := &ast.VariableDecl{Name: "x", Init: &ast.IntExpr{Value: 2}}
	let := &ast.Let{Decls: []ast.Decl{a, b}}

	err := resolver.Resolve(let)
	require.Error(t, err)
}

func TestResolveForwardReferenceWithinSameLet(t *testing.T) {
	// f calls g, both declared in the same let: the eager registration
	// spec.md §4.3 describes (all Let declarations bound before any
	// declaration's body is resolved) makes this resolve, rather than
	// requiring g to precede f textually.
	callG := &ast.FunctionCall{Name: "g"}
	f := &ast.FuncDecl{Name: "f", Body: callG}
	g := &ast.FuncDecl{Name: "g", Body: &ast.IntExpr{Value: 1}}
	let := &ast.Let{Decls: []ast.Decl{f, g}, Body: []ast.Expr{&ast.IntExpr{Value: 0}}}

	require.NoError(t, resolver.Resolve(let))
	assert.Same(t, g, callG.NameUse.Decl)
}
