/*
File    : tiger-rpython/interp/interp_exprs.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp

import (
	"github.com/abrown/tiger-rpython/ast"
	"github.com/abrown/tiger-rpython/environment"
	"github.com/abrown/tiger-rpython/value"
)

// cell is a single addressable storage location: a plain variable slot, a
// record field, or an array element. LValue reads and Assign writes both
// go through one of these so the chain-walking logic (spec.md §4.3's
// locator chain) lives in exactly one place.
type cell struct {
	get func() (value.Value, error)
	set func(value.Value) error
}

func (ev *Evaluator) evalLValue(n *ast.LValue, env *environment.Frame) (outcome, error) {
	c, err := ev.resolveCell(n, env)
	if err != nil {
		return outcome{}, err
	}
	v, err := c.get()
	if err != nil {
		return outcome{}, err
	}
	return normal(v), nil
}

func (ev *Evaluator) evalAssign(n *ast.Assign, env *environment.Frame) (outcome, error) {
	rhs, err := ev.eval(n.Value, env)
	if err != nil {
		return outcome{}, err
	}
	if rhs.Brk {
		return rhs, nil
	}
	c, err := ev.resolveCell(n.Target, env)
	if err != nil {
		return outcome{}, err
	}
	if err := c.set(rhs.Val); err != nil {
		return outcome{}, err
	}
	return normal(value.Nil{}), nil
}

// resolveCell walks an LValue's head binding and selector chain down to
// the single cell it addresses, evaluating any index expressions along
// the way against env (the caller's environment, not the container's —
// index expressions are ordinary expressions in the current scope).
func (ev *Evaluator) resolveCell(n *ast.LValue, env *environment.Frame) (cell, error) {
	b := ast.BindingOf(n.HeadUse.Decl)
	frame := ast.GetFrame(b.Parent)
	idx := b.Index
	cur := cell{
		get: func() (value.Value, error) {
			v, _ := frame.Get(idx).(value.Value)
			if v == nil {
				return value.Nil{}, nil
			}
			return v, nil
		},
		set: func(v value.Value) error {
			frame.Set(idx, v)
			return nil
		},
	}
	for _, sel := range n.Chain {
		next, err := ev.stepSelector(cur, sel, env)
		if err != nil {
			return cell{}, err
		}
		cur = next
	}
	return cur, nil
}

func (ev *Evaluator) stepSelector(cur cell, sel ast.Selector, env *environment.Frame) (cell, error) {
	container, err := cur.get()
	if err != nil {
		return cell{}, err
	}
	switch s := sel.(type) {
	case *ast.FieldSelector:
		rec, ok := container.(*value.Record)
		if !ok {
			return cell{}, &EvaluationError{Msg: "field access on a non-record value"}
		}
		fi := rec.FieldIndexOf(s.Field)
		if fi < 0 {
			return cell{}, &EvaluationError{Msg: "record has no field named " + s.Field}
		}
		return cell{
			get: func() (value.Value, error) { return rec.Fields[fi], nil },
			set: func(v value.Value) error { rec.Fields[fi] = v; return nil },
		}, nil

	case *ast.IndexSelector:
		arr, ok := container.(*value.Array)
		if !ok {
			return cell{}, &EvaluationError{Msg: "index access on a non-array value"}
		}
		out, err := ev.eval(s.Index, env)
		if err != nil {
			return cell{}, err
		}
		if out.Brk {
			return cell{}, &EvaluationError{Msg: "break used outside of any loop"}
		}
		idxInt, ok := out.Val.(value.Integer)
		if !ok {
			return cell{}, &EvaluationError{Msg: "array index must be an integer"}
		}
		i := int(idxInt.Value)
		if i < 0 || i >= len(arr.Elems) {
			return cell{}, &EvaluationError{Msg: "array index out of bounds"}
		}
		return cell{
			get: func() (value.Value, error) { return arr.Elems[i], nil },
			set: func(v value.Value) error { arr.Elems[i] = v; return nil },
		}, nil

	default:
		return cell{}, &EvaluationError{Msg: "interp: unhandled selector"}
	}
}

func (ev *Evaluator) evalArrayCreation(n *ast.ArrayCreation, env *environment.Frame) (outcome, error) {
	tb := ast.BindingOf(n.TypeUse.Decl)
	at, ok := ast.GetFrame(tb.Parent).GetType(tb.Index).(*value.ArrayType)
	if !ok {
		return outcome{}, &EvaluationError{Msg: n.TypeName + " does not name an array type"}
	}

	length, err := ev.eval(n.Length, env)
	if err != nil {
		return outcome{}, err
	}
	if length.Brk {
		return length, nil
	}
	lengthInt, ok := length.Val.(value.Integer)
	if !ok {
		return outcome{}, &EvaluationError{Msg: "array length must be an integer"}
	}
	init, err := ev.eval(n.Init, env)
	if err != nil {
		return outcome{}, err
	}
	if init.Brk {
		return init, nil
	}
	if !elementKindMatches(at.ElemTypeName, init.Val) {
		return outcome{}, &EvaluationError{Msg: "initializer does not match " + n.TypeName + "'s element type " + at.ElemTypeName}
	}

	// Every element aliases the same initializer value, per spec.md §9's
	// "preserve as-is" note on array-initializer aliasing.
	elems := make([]value.Value, lengthInt.Value)
	for i := range elems {
		elems[i] = init.Val
	}
	return normal(&value.Array{TypeName: n.TypeName, Elems: elems}), nil
}

// elementKindMatches typechecks an array's `of` initializer against its
// declared element type at creation time (value.ArrayType.ElemTypeName),
// per spec.md §4.6. The two base types check by exact Value kind; any
// other named type is a record or array type, for which nil and any
// record/array value are accepted (Tiger has no static type checker here,
// so this is a runtime approximation, not a full structural check).
func elementKindMatches(elemTypeName string, v value.Value) bool {
	switch elemTypeName {
	case "int":
		return v.Kind() == value.IntegerKind
	case "string":
		return v.Kind() == value.StringKind
	default:
		switch v.Kind() {
		case value.RecordKind, value.ArrayKind, value.NilKind:
			return true
		default:
			return false
		}
	}
}

func (ev *Evaluator) evalRecordCreation(n *ast.RecordCreation, env *environment.Frame) (outcome, error) {
	tb := ast.BindingOf(n.TypeUse.Decl)
	rt, ok := ast.GetFrame(tb.Parent).GetType(tb.Index).(*value.RecordType)
	if !ok {
		return outcome{}, &EvaluationError{Msg: n.TypeName + " does not name a record type"}
	}

	byName := make(map[string]ast.Expr, len(n.Fields))
	for _, f := range n.Fields {
		byName[f.Name] = f.Value
	}

	fields := make([]value.Value, len(rt.FieldOrder))
	for i, name := range rt.FieldOrder {
		expr, ok := byName[name]
		if !ok {
			return outcome{}, &EvaluationError{Msg: "record literal is missing field " + name}
		}
		out, err := ev.eval(expr, env)
		if err != nil {
			return outcome{}, err
		}
		if out.Brk {
			return out, nil
		}
		fields[i] = out.Val
	}
	return normal(&value.Record{Type: rt, Fields: fields}), nil
}

func (ev *Evaluator) evalCall(n *ast.FunctionCall, env *environment.Frame) (outcome, error) {
	args := make([]value.Value, len(n.Args))
	for i, a := range n.Args {
		out, err := ev.eval(a, env)
		if err != nil {
			return outcome{}, err
		}
		if out.Brk {
			return out, nil
		}
		args[i] = out.Val
	}

	switch d := n.NameUse.Decl.(type) {
	case *ast.FuncDecl:
		return ev.callClosure(d, args)
	case *ast.NativeDecl:
		return ev.callNative(d, args, env)
	default:
		return outcome{}, &EvaluationError{Msg: n.Name + " is not callable"}
	}
}

func (ev *Evaluator) callClosure(d *ast.FuncDecl, args []value.Value) (outcome, error) {
	b := ast.BindingOf(d)
	closureVal, _ := ast.GetFrame(b.Parent).Get(b.Index).(*value.Closure)
	if closureVal == nil {
		return outcome{}, &EvaluationError{Msg: d.Name + " was called before its declaration ran"}
	}
	if len(args) != len(d.Params) {
		return outcome{}, &EvaluationError{Msg: d.Name + ": wrong number of arguments"}
	}

	prev := ast.GetFrame(d)
	frame := closureVal.Env.Push(len(d.Params))
	ast.SetFrame(d, frame)
	defer ast.SetFrame(d, prev)

	for i, v := range args {
		frame.Set(i, v)
	}
	return ev.eval(d.Body, frame)
}

func (ev *Evaluator) callNative(d *ast.NativeDecl, args []value.Value, env *environment.Frame) (outcome, error) {
	b := ast.BindingOf(d)
	nativeVal, _ := ast.GetFrame(b.Parent).Get(b.Index).(*value.Native)
	if nativeVal == nil {
		return outcome{}, &EvaluationError{Msg: d.Name + " has no native implementation bound"}
	}
	if len(args) != nativeVal.Arity {
		return outcome{}, &EvaluationError{Msg: d.Name + ": wrong number of arguments"}
	}
	v, err := nativeVal.Fn(args)
	if err != nil {
		return outcome{}, &EvaluationError{Msg: err.Error()}
	}
	return normal(v), nil
}
