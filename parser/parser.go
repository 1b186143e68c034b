/*
File    : tiger-rpython/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser implements the Tiger recursive-descent parser (spec.md
// §4.2). It generalizes go-mix's hand-written parser (parser/parser.go)'s
// advance/expect style, with a single token of lookahead, but targets
// the ast package's concrete node set instead of go-mix's
// parser.Node/NodeVisitor hierarchy (parser/node.go), and raises a
// structured *ParseError instead of collecting a []string of messages.
package parser

import (
	"strconv"

	"github.com/abrown/tiger-rpython/ast"
	"github.com/abrown/tiger-rpython/lexer"
	"github.com/abrown/tiger-rpython/resolver"
	"github.com/abrown/tiger-rpython/token"
)

// Parser holds the lexer and the single token of lookahead the grammar
// needs at any point. The grammar's one ambiguous case — an array
// creation's `id [ expr ]` header versus an indexed LValue — is resolved
// by parsing the bracketed expression and then checking whether `of`
// follows (parseBracketedHead, parser_idhead.go), so the parser never
// needs to call the lexer's own multi-token Peek.
type Parser struct {
	lex *lexer.Lexer
	cur token.Token
}

// New creates a Parser over src and primes its first token.
func New(src, file string) (*Parser, error) {
	p := &Parser{lex: lexer.New(src, file)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Parser) advance() error {
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

func (p *Parser) at(k token.Kind) bool {
	return p.cur.Kind == k
}

// expect consumes the current token if it matches k, else raises a
// ParseError naming what was expected.
func (p *Parser) expect(k token.Kind) (token.Token, error) {
	if !p.at(k) {
		return token.Token{}, &ParseError{Expected: k.String(), Found: p.cur}
	}
	tok := p.cur
	if err := p.advance(); err != nil {
		return token.Token{}, err
	}
	return tok, nil
}

// Parse parses a complete program and resolves it. When existing is
// non-empty (spec.md §4.2: "pre-existing declarations...for injecting
// native bindings"), the parsed program expression is wrapped in a
// synthetic root *ast.Let whose Decls is existing, so FunctionCall sites
// naming a native resolve through the ordinary declaration-lookup path
// (spec.md §9 "Pre-resolution natives"); the Resolver then runs over that
// wrapping Let.
func (p *Parser) Parse(existing []ast.Decl) (ast.Expr, error) {
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.EOF); err != nil {
		return nil, err
	}

	root := body
	if len(existing) > 0 {
		root = &ast.Let{Decls: existing, Body: []ast.Expr{body}}
	}
	if err := resolver.Resolve(root); err != nil {
		return nil, err
	}
	return root, nil
}

func parseInt(lexeme string) (int64, error) {
	return strconv.ParseInt(lexeme, 10, 64)
}
