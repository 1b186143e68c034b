/*
File    : tiger-rpython/interp/interp_binary.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp

import (
	"github.com/abrown/tiger-rpython/ast"
	"github.com/abrown/tiger-rpython/environment"
	"github.com/abrown/tiger-rpython/value"
)

// evalBinary evaluates both sides strictly, then dispatches on the
// operator (spec.md §4.5). Arithmetic and ordering require both operands
// to be Integer; equality (`=`, `<>`) is defined structurally over any
// matching pair of value kinds; `&` and `|` require Integer operands,
// per the redesign note in spec.md §9 rejecting the original's
// short-circuit behavior in favor of strict evaluation of both sides.
func (ev *Evaluator) evalBinary(n *ast.BinaryExpr, env *environment.Frame) (outcome, error) {
	left, err := ev.eval(n.Left, env)
	if err != nil {
		return outcome{}, err
	}
	if left.Brk {
		return left, nil
	}
	right, err := ev.eval(n.Right, env)
	if err != nil {
		return outcome{}, err
	}
	if right.Brk {
		return right, nil
	}

	switch n.Op {
	case ast.OpEq:
		eq, err := structuralEqual(left.Val, right.Val)
		if err != nil {
			return outcome{}, err
		}
		return normal(boolInt(eq)), nil
	case ast.OpNe:
		eq, err := structuralEqual(left.Val, right.Val)
		if err != nil {
			return outcome{}, err
		}
		return normal(boolInt(!eq)), nil
	}

	li, lok := left.Val.(value.Integer)
	ri, rok := right.Val.(value.Integer)
	if !lok || !rok {
		return outcome{}, &EvaluationError{Msg: "operands of arithmetic/relational operators must be integers"}
	}

	switch n.Op {
	case ast.OpAdd:
		return normal(value.Integer{Value: li.Value + ri.Value}), nil
	case ast.OpSub:
		return normal(value.Integer{Value: li.Value - ri.Value}), nil
	case ast.OpMul:
		return normal(value.Integer{Value: li.Value * ri.Value}), nil
	case ast.OpDiv:
		if ri.Value == 0 {
			return outcome{}, &EvaluationError{Msg: "division by zero"}
		}
		return normal(value.Integer{Value: li.Value / ri.Value}), nil
	case ast.OpLt:
		return normal(boolInt(li.Value < ri.Value)), nil
	case ast.OpLe:
		return normal(boolInt(li.Value <= ri.Value)), nil
	case ast.OpGt:
		return normal(boolInt(li.Value > ri.Value)), nil
	case ast.OpGe:
		return normal(boolInt(li.Value >= ri.Value)), nil
	case ast.OpAnd:
		return normal(boolInt(li.Value != 0 && ri.Value != 0)), nil
	case ast.OpOr:
		return normal(boolInt(li.Value != 0 || ri.Value != 0)), nil
	default:
		return outcome{}, &EvaluationError{Msg: "interp: unhandled binary operator"}
	}
}

func boolInt(b bool) value.Integer {
	if b {
		return value.Integer{Value: 1}
	}
	return value.Integer{Value: 0}
}

// structuralEqual implements spec.md §4.5's equality table: Nil equals
// only Nil (and, per spec.md §9's preserved deviation, a record value is
// never equal to nil — nil is only self-equal), integers compare by
// value, strings by content, arrays/records by recursive element/field
// comparison. Closures and natives are never comparable.
func structuralEqual(a, b value.Value) (bool, error) {
	switch av := a.(type) {
	case value.Nil:
		_, ok := b.(value.Nil)
		return ok, nil
	case value.Integer:
		bv, ok := b.(value.Integer)
		return ok && av.Value == bv.Value, nil
	case value.String:
		bv, ok := b.(value.String)
		return ok && av.Value == bv.Value, nil
	case *value.Array:
		bv, ok := b.(*value.Array)
		if !ok || len(av.Elems) != len(bv.Elems) {
			return false, nil
		}
		for i := range av.Elems {
			eq, err := structuralEqual(av.Elems[i], bv.Elems[i])
			if err != nil || !eq {
				return false, err
			}
		}
		return true, nil
	case *value.Record:
		bv, ok := b.(*value.Record)
		if !ok {
			return false, nil
		}
		if av.Type == bv.Type && len(av.Fields) == len(bv.Fields) {
			for i := range av.Fields {
				eq, err := structuralEqual(av.Fields[i], bv.Fields[i])
				if err != nil || !eq {
					return false, err
				}
			}
			return true, nil
		}
		return false, nil
	default:
		return false, &EvaluationError{Msg: "values of this kind cannot be compared for equality"}
	}
}
