/*
File    : tiger-rpython/parser/parser_idhead.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/abrown/tiger-rpython/ast"
	"github.com/abrown/tiger-rpython/token"
)

// parseIdentifierHeaded dispatches the four forms that start with a bare
// identifier (spec.md §4.2): record creation `T{f=e,...}`, function call
// `f(...)`, array creation `T[n] of v`, and an LValue (optionally
// followed by a `:=` handled by the caller, parseExpr). Array creation
// and an indexed LValue both start `id [ expr`; the two are
// disambiguated only after the closing `]`, by checking whether `of`
// follows.
func (p *Parser) parseIdentifierHeaded() (ast.Expr, error) {
	nameTok, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}

	switch p.cur.Kind {
	case token.LBRACE:
		return p.parseRecordCreation(nameTok)
	case token.LPAREN:
		return p.parseFunctionCall(nameTok)
	case token.LBRACKET:
		return p.parseBracketedHead(nameTok)
	default:
		return p.parseLValueTail(nameTok, nil)
	}
}

func (p *Parser) parseFunctionCall(nameTok token.Token) (ast.Expr, error) {
	if err := p.advance(); err != nil { // consume '('
		return nil, err
	}
	var args []ast.Expr
	if !p.at(token.RPAREN) {
		for {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.at(token.COMMA) {
				break
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.FunctionCall{Name: nameTok.Lexeme, NamePos: nameTok.Pos, Args: args}, nil
}

func (p *Parser) parseRecordCreation(nameTok token.Token) (ast.Expr, error) {
	if err := p.advance(); err != nil { // consume '{'
		return nil, err
	}
	var fields []ast.RecordFieldInit
	if !p.at(token.RBRACE) {
		for {
			fieldTok, err := p.expect(token.IDENTIFIER)
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.EQ); err != nil {
				return nil, err
			}
			val, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			fields = append(fields, ast.RecordFieldInit{Name: fieldTok.Lexeme, Value: val})
			if !p.at(token.COMMA) {
				break
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	if _, err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	return &ast.RecordCreation{TypeName: nameTok.Lexeme, Fields: fields}, nil
}

// parseBracketedHead parses the shared `id [ expr ]` prefix of both array
// creation and an index-chained LValue, then looks for `of` to decide
// which one it actually is.
func (p *Parser) parseBracketedHead(nameTok token.Token) (ast.Expr, error) {
	if err := p.advance(); err != nil { // consume '['
		return nil, err
	}
	inner, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBRACKET); err != nil {
		return nil, err
	}
	if p.at(token.OF) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		init, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.ArrayCreation{TypeName: nameTok.Lexeme, Length: inner, Init: init}, nil
	}
	first := []ast.Selector{&ast.IndexSelector{Index: inner}}
	return p.parseLValueTail(nameTok, first)
}

// parseLValueTail continues an LValue after its head identifier and any
// selector steps already parsed (seed), consuming further `.field` and
// `[index]` chain steps.
func (p *Parser) parseLValueTail(nameTok token.Token, seed []ast.Selector) (ast.Expr, error) {
	chain := seed
	for {
		switch p.cur.Kind {
		case token.DOT:
			if err := p.advance(); err != nil {
				return nil, err
			}
			fieldTok, err := p.expect(token.IDENTIFIER)
			if err != nil {
				return nil, err
			}
			chain = append(chain, &ast.FieldSelector{Field: fieldTok.Lexeme, Pos: fieldTok.Pos})
		case token.LBRACKET:
			if err := p.advance(); err != nil {
				return nil, err
			}
			idx, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RBRACKET); err != nil {
				return nil, err
			}
			chain = append(chain, &ast.IndexSelector{Index: idx})
		default:
			return &ast.LValue{Name: nameTok.Lexeme, NamePos: nameTok.Pos, Chain: chain}, nil
		}
	}
}
