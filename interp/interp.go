/*
File    : tiger-rpython/interp/interp.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package interp is the tree-walking evaluator (spec.md §4.6). Per spec.md
// §9's "AST polymorphism" redesign note, evaluation is one function
// dispatching on a type switch over concrete ast.Expr implementations —
// not go-mix's Evaluator.Eval(node) + NodeVisitor double dispatch
// (eval/evaluator.go, parser/node.go). Break propagation is a result
// variant carried up every call (spec.md §9 "Break propagation"), not an
// exception type, so every case below threads *outcome rather than
// panicking the way go-mix's eval package does for its own control-flow
// signals.
package interp

import (
	"io"

	"github.com/abrown/tiger-rpython/ast"
	"github.com/abrown/tiger-rpython/environment"
	"github.com/abrown/tiger-rpython/value"
)

// outcome is the Normal(Value) | Break result variant spec.md §9
// describes: Brk is true when a `break` unwound to this point without yet
// being consumed by an enclosing while/for.
type outcome struct {
	Val value.Value
	Brk bool
}

func normal(v value.Value) outcome { return outcome{Val: v} }

var brokeOut = outcome{Brk: true}

// Evaluator runs a resolved AST against a pair of output streams, Out
// (stdout in the CLI) and Err (stderr in the CLI). The evaluator itself
// writes to neither: `print` and the DEBUG tick trace write to the
// writers given to natives.Bind, which every caller sets to these same
// two streams. This
// generalizes go-mix's Evaluator.SetWriter single-stream hook
// (eval/evaluator.go) to the two-stream split spec.md §6 requires.
type Evaluator struct {
	Out io.Writer
	Err io.Writer

	natives map[*ast.NativeDecl]value.Value
}

// New constructs an Evaluator writing to out/err.
func New(out, errw io.Writer) *Evaluator {
	return &Evaluator{Out: out, Err: errw, natives: map[*ast.NativeDecl]value.Value{}}
}

// BindNative associates a native declaration (as returned by natives.Decls,
// and passed as the `existing` argument to parser.Parser.Parse) with the
// runtime value the evaluator installs into its slot in the synthetic
// root Let's frame the first time that Let is evaluated.
func (ev *Evaluator) BindNative(d *ast.NativeDecl, v value.Value) {
	ev.natives[d] = v
}

// Run evaluates a fully resolved root expression and returns its value.
// A `break` that escapes every loop becomes an EvaluationError, per
// spec.md §4.6.
func (ev *Evaluator) Run(root ast.Expr) (value.Value, error) {
	out, err := ev.eval(root, environment.Empty())
	if err != nil {
		return nil, err
	}
	if out.Brk {
		return nil, &EvaluationError{Msg: "break outside of any loop"}
	}
	return out.Val, nil
}

func (ev *Evaluator) eval(e ast.Expr, env *environment.Frame) (outcome, error) {
	switch n := e.(type) {
	case nil:
		return normal(value.Nil{}), nil

	case *ast.NilExpr:
		return normal(value.Nil{}), nil

	case *ast.IntExpr:
		return normal(value.Integer{Value: n.Value}), nil

	case *ast.StringExpr:
		return normal(value.String{Value: n.Value}), nil

	case *ast.Break:
		return brokeOut, nil

	case *ast.LValue:
		return ev.evalLValue(n, env)

	case *ast.Assign:
		return ev.evalAssign(n, env)

	case *ast.Sequence:
		return ev.evalSequence(n.Exprs, env)

	case *ast.If:
		return ev.evalIf(n, env)

	case *ast.While:
		return ev.evalWhile(n, env)

	case *ast.For:
		return ev.evalFor(n, env)

	case *ast.Let:
		return ev.evalLet(n, env)

	case *ast.FunctionCall:
		return ev.evalCall(n, env)

	case *ast.ArrayCreation:
		return ev.evalArrayCreation(n, env)

	case *ast.RecordCreation:
		return ev.evalRecordCreation(n, env)

	case *ast.BinaryExpr:
		return ev.evalBinary(n, env)

	default:
		return outcome{}, &EvaluationError{Msg: "interp: unhandled expression node"}
	}
}

func (ev *Evaluator) evalSequence(exprs []ast.Expr, env *environment.Frame) (outcome, error) {
	if len(exprs) == 0 {
		return normal(value.Nil{}), nil
	}
	var last outcome
	for _, sub := range exprs {
		out, err := ev.eval(sub, env)
		if err != nil {
			return outcome{}, err
		}
		if out.Brk {
			return out, nil
		}
		last = out
	}
	return last, nil
}

func (ev *Evaluator) evalIf(n *ast.If, env *environment.Frame) (outcome, error) {
	cond, err := ev.eval(n.Cond, env)
	if err != nil {
		return outcome{}, err
	}
	if cond.Brk {
		return cond, nil
	}
	truthy, ok := value.Truthy(cond.Val)
	if !ok {
		return outcome{}, &EvaluationError{Msg: "if condition must be an integer"}
	}
	if truthy {
		return ev.eval(n.Then, env)
	}
	if n.Else == nil {
		return normal(value.Nil{}), nil
	}
	return ev.eval(n.Else, env)
}

func (ev *Evaluator) evalWhile(n *ast.While, env *environment.Frame) (outcome, error) {
	for {
		cond, err := ev.eval(n.Cond, env)
		if err != nil {
			return outcome{}, err
		}
		if cond.Brk {
			return cond, nil
		}
		truthy, ok := value.Truthy(cond.Val)
		if !ok {
			return outcome{}, &EvaluationError{Msg: "while condition must be an integer"}
		}
		if !truthy {
			return normal(value.Nil{}), nil
		}
		body, err := ev.eval(n.Body, env)
		if err != nil {
			return outcome{}, err
		}
		if body.Brk {
			return normal(value.Nil{}), nil
		}
	}
}

func (ev *Evaluator) evalFor(n *ast.For, env *environment.Frame) (outcome, error) {
	start, err := ev.eval(n.Start, env)
	if err != nil {
		return outcome{}, err
	}
	if start.Brk {
		return start, nil
	}
	end, err := ev.eval(n.End, env)
	if err != nil {
		return outcome{}, err
	}
	if end.Brk {
		return end, nil
	}
	startInt, ok := start.Val.(value.Integer)
	if !ok {
		return outcome{}, &EvaluationError{Msg: "for start bound must be an integer"}
	}
	endInt, ok := end.Val.(value.Integer)
	if !ok {
		return outcome{}, &EvaluationError{Msg: "for end bound must be an integer"}
	}

	prev := ast.GetFrame(n)
	frame := env.Push(1)
	ast.SetFrame(n, frame)
	defer ast.SetFrame(n, prev)

	for i := startInt.Value; i <= endInt.Value; i++ {
		frame.Set(0, value.Integer{Value: i})
		body, err := ev.eval(n.Body, frame)
		if err != nil {
			return outcome{}, err
		}
		if body.Brk {
			break
		}
	}
	return normal(value.Nil{}), nil
}

func (ev *Evaluator) evalLet(n *ast.Let, env *environment.Frame) (outcome, error) {
	prev := ast.GetFrame(n)
	frame := env.Push(len(n.Decls))
	ast.SetFrame(n, frame)
	defer ast.SetFrame(n, prev)

	for i, d := range n.Decls {
		if err := ev.evalDecl(d, i, frame); err != nil {
			return outcome{}, err
		}
	}
	return ev.evalSequence(n.Body, frame)
}

func (ev *Evaluator) evalDecl(d ast.Decl, index int, frame *environment.Frame) error {
	switch n := d.(type) {
	case *ast.TypeDecl:
		frame.SetType(index, ev.realizeType(n))
		return nil

	case *ast.VariableDecl:
		out, err := ev.eval(n.Init, frame)
		if err != nil {
			return err
		}
		if out.Brk {
			return &EvaluationError{Msg: "break used outside of any loop"}
		}
		frame.Set(index, out.Val)
		return nil

	case *ast.FuncDecl:
		frame.Set(index, &value.Closure{Decl: n, Env: frame})
		return nil

	case *ast.NativeDecl:
		v, ok := ev.natives[n]
		if !ok {
			return &EvaluationError{Msg: n.Name + " has no native implementation bound"}
		}
		frame.Set(index, v)
		return nil

	default:
		return &EvaluationError{Msg: "interp: unhandled declaration node"}
	}
}

// realizeType builds the runtime type descriptor for a TypeDecl. Record
// and array types carry just field order/names (spec.md §4.4: "Record-
// field lookup uses the RecordType's field->position map computed once
// at record-type construction"); a plain alias (`type a = b`) copies the
// already-constructed descriptor from the type it names, found through
// its own resolved Use.
func (ev *Evaluator) realizeType(n *ast.TypeDecl) interface{} {
	switch t := n.Type.(type) {
	case *ast.RecordTypeExpr:
		order := make([]string, len(t.Fields))
		types := make([]string, len(t.Fields))
		index := make(map[string]int, len(t.Fields))
		for i, f := range t.Fields {
			order[i] = f.Name
			types[i] = f.TypeName
			index[f.Name] = i
		}
		return &value.RecordType{Name: n.Name, FieldOrder: order, FieldTypes: types, FieldIndex: index}

	case *ast.ArrayTypeExpr:
		// Follow an alias chain (`type myint = int`) to the declaration it
		// ends at, so ElemTypeName names a base, record or array type.
		elem := t.ElemTypeName
		d, _ := t.ElemUse.Decl.(*ast.TypeDecl)
		seen := map[*ast.TypeDecl]bool{}
		for d != nil && !seen[d] {
			seen[d] = true
			elem = d.Name
			id, ok := d.Type.(*ast.TypeId)
			if !ok {
				break
			}
			d, _ = id.Use.Decl.(*ast.TypeDecl)
		}
		return &value.ArrayType{Name: n.Name, ElemTypeName: elem}

	case *ast.TypeId:
		target := t.Use.Decl
		tb := ast.BindingOf(target)
		return ast.GetFrame(tb.Parent).GetType(tb.Index)

	default:
		return nil
	}
}
