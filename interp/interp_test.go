/*
File    : tiger-rpython/interp/interp_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abrown/tiger-rpython/interp"
	"github.com/abrown/tiger-rpython/natives"
	"github.com/abrown/tiger-rpython/parser"
	"github.com/abrown/tiger-rpython/value"
)

// runWithNatives lexes, parses, resolves, and evaluates src with the
// standard print/timeGo/timeStop bindings installed, matching spec.md
// §8's worked end-to-end scenarios.
func runWithNatives(t *testing.T, src string) (value.Value, string) {
	t.Helper()
	decls := natives.Decls()
	p, err := parser.New(src, "<test>")
	require.NoError(t, err)
	root, err := p.Parse(decls)
	require.NoError(t, err)

	var out, errOut bytes.Buffer
	ev := interp.New(&out, &errOut)
	natives.Bind(ev, decls, &out, &errOut)

	v, err := ev.Run(root)
	require.NoError(t, err)
	return v, out.String()
}

// runBare evaluates src with no native bindings, for arithmetic-only
// expressions that never call print/timeGo/timeStop.
func runBare(t *testing.T, src string) value.Value {
	t.Helper()
	p, err := parser.New(src, "<test>")
	require.NoError(t, err)
	root, err := p.Parse(nil)
	require.NoError(t, err)

	var out, errOut bytes.Buffer
	ev := interp.New(&out, &errOut)
	v, err := ev.Run(root)
	require.NoError(t, err)
	return v
}

func TestArithmeticPrecedence(t *testing.T) {
	v := runBare(t, `2+2*3`)
	assert.Equal(t, value.Integer{Value: 8}, v)
}

func TestForLoopAccumulatesSum(t *testing.T) {
	v := runBare(t, `let var a:=0 in (for i:=1 to 9 do a:=a+i; a) end`)
	assert.Equal(t, value.Integer{Value: 45}, v)
}

func TestWhileLoopCountsToHundred(t *testing.T) {
	v := runBare(t, `let var a:=0 in (while a<100 do a:=a+1; a) end`)
	assert.Equal(t, value.Integer{Value: 100}, v)
}

func TestFunctionCallAddsArguments(t *testing.T) {
	v, _ := runWithNatives(t, `let function add(a:int,b:int):int=a+b in add(1,1) end`)
	assert.Equal(t, value.Integer{Value: 2}, v)
}

func TestRecursiveFunctionCountsUpToHundred(t *testing.T) {
	v, _ := runWithNatives(t, `let function f(n:int):int=if n<100 then f(n+1) else n in f(1) end`)
	assert.Equal(t, value.Integer{Value: 100}, v)
}

func TestForLoopPrintsEachIndex(t *testing.T) {
	_, out := runWithNatives(t, `for i:=1 to 3 do print(i)`)
	assert.Equal(t, "123", out)
}

// TestClosureCapturesDefiningEnvironment is spec.md §8's closure-capture
// scenario: f must print the outer y (42), since it closes over the Let
// that declared it, not the caller's own shadowing y (43).
func TestClosureCapturesDefiningEnvironment(t *testing.T) {
	_, out := runWithNatives(t,
		`let var y:=42 in let function f(x:int)=print(y) in let var y:=43 in f(y) end end end`)
	assert.Equal(t, "42", out)
}

func TestBreakExitsNearestLoop(t *testing.T) {
	v := runBare(t, `let var a:=0 in (for i:=1 to 10 do (a:=a+1; if i=5 then break); a) end`)
	assert.Equal(t, value.Integer{Value: 5}, v)
}

func TestArrayCreationAndIndexAssignment(t *testing.T) {
	v, _ := runWithNatives(t, `let type intarray = array of int var a := intarray[5] of 0 in (a[2] := 9; a[2]) end`)
	assert.Equal(t, value.Integer{Value: 9}, v)
}

func TestArrayCreationRejectsMismatchedInitializerType(t *testing.T) {
	p, err := parser.New(`let type intarray = array of int in intarray[5] of "oops" end`, "<test>")
	require.NoError(t, err)
	decls := natives.Decls()
	root, err := p.Parse(decls)
	require.NoError(t, err)

	var out, errOut bytes.Buffer
	ev := interp.New(&out, &errOut)
	natives.Bind(ev, decls, &out, &errOut)
	_, err = ev.Run(root)
	require.Error(t, err)
	var evalErr *interp.EvaluationError
	assert.ErrorAs(t, err, &evalErr)
}

func TestRecordCreationAndFieldAccess(t *testing.T) {
	v, _ := runWithNatives(t, `let type point = {x:int, y:int} var p := point{x=1,y=2} in p.x+p.y end`)
	assert.Equal(t, value.Integer{Value: 3}, v)
}

func TestNilEqualsOnlyNil(t *testing.T) {
	v, _ := runWithNatives(t, `let type point = {x:int, y:int} var p:point := nil in if p = nil then 1 else 0 end`)
	assert.Equal(t, value.Integer{Value: 1}, v)
}

func TestStringEquality(t *testing.T) {
	v := runBare(t, `if "ab" = "ab" then 1 else 0`)
	assert.Equal(t, value.Integer{Value: 1}, v)
}

func TestDivisionByZeroIsAnEvaluationError(t *testing.T) {
	p, err := parser.New(`1/0`, "<test>")
	require.NoError(t, err)
	root, err := p.Parse(nil)
	require.NoError(t, err)

	ev := interp.New(&bytes.Buffer{}, &bytes.Buffer{})
	_, err = ev.Run(root)
	require.Error(t, err)
	var evalErr *interp.EvaluationError
	assert.ErrorAs(t, err, &evalErr)
}

func TestBreakOutsideAnyLoopIsAnEvaluationError(t *testing.T) {
	p, err := parser.New(`break`, "<test>")
	require.NoError(t, err)
	root, err := p.Parse(nil)
	require.NoError(t, err)

	ev := interp.New(&bytes.Buffer{}, &bytes.Buffer{})
	_, err = ev.Run(root)
	require.Error(t, err)
}
