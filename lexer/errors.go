/*
File    : tiger-rpython/lexer/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import "github.com/abrown/tiger-rpython/token"

// LexError is raised by the scanner: an unterminated string or comment, an
// invalid character, or a malformed escape sequence. Per spec.md §7, every
// lex error carries the offending location alongside a human-readable
// message.
type LexError struct {
	Pos token.Position
	Msg string
}

func (e *LexError) Error() string {
	return e.Pos.String() + ": " + e.Msg
}
