/*
File    : tiger-rpython/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abrown/tiger-rpython/ast"
	"github.com/abrown/tiger-rpython/natives"
	"github.com/abrown/tiger-rpython/parser"
	"github.com/abrown/tiger-rpython/resolver"
)

// parse parses src with the natives.Decls root declarations (which supply
// the int and string base types) and returns the program expression from
// inside the synthetic root Let that Parse wraps it in.
func parse(t *testing.T, src string) ast.Expr {
	t.Helper()
	p, err := parser.New(src, "<test>")
	require.NoError(t, err)
	root, err := p.Parse(natives.Decls())
	require.NoError(t, err)
	wrapper, ok := root.(*ast.Let)
	require.True(t, ok)
	return wrapper.Body[0]
}

func TestParsesIntLiteral(t *testing.T) {
	root := parse(t, `42`)
	assert.True(t, ast.Equal(&ast.IntExpr{Value: 42}, root))
}

func TestParsesStringLiteral(t *testing.T) {
	root := parse(t, `"hello"`)
	assert.True(t, ast.Equal(&ast.StringExpr{Value: "hello"}, root))
}

func TestBinaryPrecedenceMulBindsTighterThanAdd(t *testing.T) {
	root := parse(t, `2+2*3`)
	bin, ok := root.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.OpAdd, bin.Op)
	assert.True(t, ast.Equal(&ast.IntExpr{Value: 2}, bin.Left))
	rhs, ok := bin.Right.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.OpMul, rhs.Op)
}

func TestComparisonOperatorsAreLeftAssociative(t *testing.T) {
	// Precedence climbing treats same-precedence operators uniformly, so
	// "a<b<c" parses as "(a<b)<c" rather than being rejected.
	root := parse(t, `let var a:=1 var b:=2 var c:=3 in a<b<c end`)
	n, ok := root.(*ast.Let)
	require.True(t, ok)
	bin, ok := n.Body[0].(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.OpLt, bin.Op)
	_, leftIsBinary := bin.Left.(*ast.BinaryExpr)
	assert.True(t, leftIsBinary)
}

func TestParsesIfThenElse(t *testing.T) {
	root := parse(t, `if 1 then 2 else 3`)
	n, ok := root.(*ast.If)
	require.True(t, ok)
	assert.True(t, ast.Equal(&ast.IntExpr{Value: 1}, n.Cond))
	assert.True(t, ast.Equal(&ast.IntExpr{Value: 2}, n.Then))
	assert.True(t, ast.Equal(&ast.IntExpr{Value: 3}, n.Else))
}

func TestParsesIfThenWithNoElse(t *testing.T) {
	root := parse(t, `if 1 then 2`)
	n, ok := root.(*ast.If)
	require.True(t, ok)
	assert.Nil(t, n.Else)
}

func TestParsesWhileLoop(t *testing.T) {
	root := parse(t, `while 1 do 2`)
	n, ok := root.(*ast.While)
	require.True(t, ok)
	assert.True(t, ast.Equal(&ast.IntExpr{Value: 1}, n.Cond))
	assert.True(t, ast.Equal(&ast.IntExpr{Value: 2}, n.Body))
}

func TestParsesForLoop(t *testing.T) {
	root := parse(t, `for i:=1 to 10 do i`)
	n, ok := root.(*ast.For)
	require.True(t, ok)
	assert.Equal(t, "i", n.Var.Name)
	assert.True(t, ast.Equal(&ast.IntExpr{Value: 1}, n.Start))
	assert.True(t, ast.Equal(&ast.IntExpr{Value: 10}, n.End))
}

func TestParsesSequence(t *testing.T) {
	root := parse(t, `(1; 2; 3)`)
	n, ok := root.(*ast.Sequence)
	require.True(t, ok)
	require.Len(t, n.Exprs, 3)
}

func TestParsesLetWithMultipleDecls(t *testing.T) {
	root := parse(t, `let var a:=1 type t=int function f():int=a in a end`)
	n, ok := root.(*ast.Let)
	require.True(t, ok)
	require.Len(t, n.Decls, 3)
	_, isVar := n.Decls[0].(*ast.VariableDecl)
	_, isType := n.Decls[1].(*ast.TypeDecl)
	_, isFunc := n.Decls[2].(*ast.FuncDecl)
	assert.True(t, isVar)
	assert.True(t, isType)
	assert.True(t, isFunc)
}

func TestParsesArrayCreation(t *testing.T) {
	root := parse(t, `let type intarray = array of int in intarray[5] of 0 end`)
	n, ok := root.(*ast.Let)
	require.True(t, ok)
	body, ok := n.Body[0].(*ast.ArrayCreation)
	require.True(t, ok)
	assert.Equal(t, "intarray", body.TypeName)
}

func TestParsesRecordCreationPreservesLiteralFieldOrder(t *testing.T) {
	root := parse(t, `let type point = {x:int,y:int} in point{y=2,x=1} end`)
	n, ok := root.(*ast.Let)
	require.True(t, ok)
	body, ok := n.Body[0].(*ast.RecordCreation)
	require.True(t, ok)
	require.Len(t, body.Fields, 2)
	assert.Equal(t, "y", body.Fields[0].Name)
	assert.Equal(t, "x", body.Fields[1].Name)
}

func TestParsesFunctionCallArguments(t *testing.T) {
	root := parse(t, `let function f(a:int,b:int):int=a+b in f(1,2) end`)
	n, ok := root.(*ast.Let)
	require.True(t, ok)
	call, ok := n.Body[0].(*ast.FunctionCall)
	require.True(t, ok)
	assert.Equal(t, "f", call.Name)
	require.Len(t, call.Args, 2)
}

func TestParsesLValueFieldAndIndexChain(t *testing.T) {
	root := parse(t, `let type ia = array of int type t = {arr: ia} var r:t := nil in r.arr[0] end`)
	n, ok := root.(*ast.Let)
	require.True(t, ok)
	lv, ok := n.Body[0].(*ast.LValue)
	require.True(t, ok)
	assert.Equal(t, "r", lv.Name)
	require.Len(t, lv.Chain, 2)
	_, isField := lv.Chain[0].(*ast.FieldSelector)
	_, isIndex := lv.Chain[1].(*ast.IndexSelector)
	assert.True(t, isField)
	assert.True(t, isIndex)
}

func TestUndeclaredNameIsAScopeError(t *testing.T) {
	p, err := parser.New(`undeclaredThing`, "<test>")
	require.NoError(t, err)
	_, err = p.Parse(nil)
	require.Error(t, err)
	var scopeErr *resolver.ScopeError
	assert.ErrorAs(t, err, &scopeErr)
}

func TestMissingThenIsAParseError(t *testing.T) {
	p, err := parser.New(`if 1 2`, "<test>")
	require.NoError(t, err)
	_, err = p.Parse(nil)
	require.Error(t, err)
	var parseErr *parser.ParseError
	assert.ErrorAs(t, err, &parseErr)
}
