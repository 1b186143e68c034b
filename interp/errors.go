/*
File    : tiger-rpython/interp/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp

// EvaluationError is raised for arithmetic domain errors, type mismatches,
// arity errors, division by zero, out-of-bounds access, a `break` outside
// any loop, and wrapped native-function failures (spec.md §4.6, §4.7).
type EvaluationError struct {
	Msg string
}

func (e *EvaluationError) Error() string {
	return e.Msg
}
