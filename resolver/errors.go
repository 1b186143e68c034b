/*
File    : tiger-rpython/resolver/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package resolver

import "github.com/abrown/tiger-rpython/token"

// ScopeError is raised when a use site cannot be resolved, resolves to a
// declaration kind the site does not accept, or a Let/function introduces
// a duplicate name.
type ScopeError struct {
	Pos token.Position
	Msg string
}

func (e *ScopeError) Error() string {
	return e.Pos.String() + ": " + e.Msg
}
