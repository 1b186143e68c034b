package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abrown/tiger-rpython/ast"
)

func TestEqualReflexiveAndStructural(t *testing.T) {
	a := &ast.BinaryExpr{
		Op:    ast.OpAdd,
		Left:  &ast.IntExpr{Value: 2},
		Right: &ast.IntExpr{Value: 3},
	}
	b := &ast.BinaryExpr{
		Op:    ast.OpAdd,
		Left:  &ast.IntExpr{Value: 2},
		Right: &ast.IntExpr{Value: 3},
	}
	assert.True(t, ast.Equal(a, a))
	assert.True(t, ast.Equal(a, b))
	assert.True(t, ast.Equal(b, a))
}

func TestEqualDetectsDifference(t *testing.T) {
	a := &ast.IntExpr{Value: 1}
	b := &ast.IntExpr{Value: 2}
	assert.False(t, ast.Equal(a, b))
}

func TestEqualIgnoresResolutionAnnotations(t *testing.T) {
	resolved := &ast.LValue{Name: "x", HeadUse: ast.Use{Decl: &ast.VariableDecl{Name: "x"}}}
	unresolved := &ast.LValue{Name: "x"}
	assert.True(t, ast.Equal(resolved, unresolved))
}

func TestEqualComparesLetDeclsAndBody(t *testing.T) {
	mk := func() *ast.Let {
		return &ast.Let{
			Decls: []ast.Decl{
				&ast.VariableDecl{Name: "a", Init: &ast.IntExpr{Value: 1}},
			},
			Body: []ast.Expr{&ast.LValue{Name: "a"}},
		}
	}
	assert.True(t, ast.Equal(mk(), mk()))
}

func TestEqualNilIsOnlyEqualToNil(t *testing.T) {
	assert.True(t, ast.Equal(nil, nil))
	assert.False(t, ast.Equal(nil, &ast.NilExpr{}))
}

func TestEqualIfTreatsAbsentElseAsNil(t *testing.T) {
	a := &ast.If{Cond: &ast.IntExpr{Value: 1}, Then: &ast.IntExpr{Value: 2}}
	b := &ast.If{Cond: &ast.IntExpr{Value: 1}, Then: &ast.IntExpr{Value: 2}, Else: nil}
	assert.True(t, ast.Equal(a, b))
}
