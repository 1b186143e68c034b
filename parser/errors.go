/*
File    : tiger-rpython/parser/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"

	"github.com/abrown/tiger-rpython/token"
)

// ParseError is a structured parse failure: a human-readable "expected X"
// description plus the offending token and its location (spec.md §4.2).
// This replaces go-mix's Parser.Errors []string accumulation (parser.go)
// with a single Go error value, since the resolver and evaluator stages
// downstream need a typed error to branch on (spec.md §7's taxonomy),
// not a pile of strings meant only for direct display.
type ParseError struct {
	Expected string
	Found    token.Token
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: Parse failure: %s expected %s", e.Found.Pos.String(), e.Found.String(), e.Expected)
}
