/*
File    : tiger-rpython/parser/parser_let.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/abrown/tiger-rpython/ast"
	"github.com/abrown/tiger-rpython/token"
)

// parseLet parses `let decl* in expr-seq end`.
func (p *Parser) parseLet() (ast.Expr, error) {
	if err := p.advance(); err != nil { // consume 'let'
		return nil, err
	}
	var decls []ast.Decl
	for p.at(token.TYPE) || p.at(token.VAR) || p.at(token.FUNCTION) {
		d, err := p.parseDecl()
		if err != nil {
			return nil, err
		}
		decls = append(decls, d)
	}
	if _, err := p.expect(token.IN); err != nil {
		return nil, err
	}
	var body []ast.Expr
	if !p.at(token.END) {
		for {
			e, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			body = append(body, e)
			if !p.at(token.SEMICOLON) {
				break
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	if _, err := p.expect(token.END); err != nil {
		return nil, err
	}
	return &ast.Let{Decls: decls, Body: body}, nil
}

func (p *Parser) parseDecl() (ast.Decl, error) {
	switch p.cur.Kind {
	case token.TYPE:
		return p.parseTypeDecl()
	case token.VAR:
		return p.parseVariableDecl()
	case token.FUNCTION:
		return p.parseFuncDecl()
	default:
		return nil, &ParseError{Expected: "a declaration", Found: p.cur}
	}
}

func (p *Parser) parseTypeDecl() (ast.Decl, error) {
	if err := p.advance(); err != nil { // consume 'type'
		return nil, err
	}
	nameTok, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.EQ); err != nil {
		return nil, err
	}
	ty, err := p.parseTypeExpr()
	if err != nil {
		return nil, err
	}
	return &ast.TypeDecl{Name: nameTok.Lexeme, Type: ty}, nil
}

func (p *Parser) parseTypeExpr() (ast.TypeExpr, error) {
	switch p.cur.Kind {
	case token.ARRAY:
		if err := p.advance(); err != nil {
			return nil, err
		}
		if _, err := p.expect(token.OF); err != nil {
			return nil, err
		}
		elemTok, err := p.expect(token.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		return &ast.ArrayTypeExpr{ElemTypeName: elemTok.Lexeme}, nil

	case token.LBRACE:
		if err := p.advance(); err != nil {
			return nil, err
		}
		var fields []ast.FieldDecl
		if !p.at(token.RBRACE) {
			for {
				fieldTok, err := p.expect(token.IDENTIFIER)
				if err != nil {
					return nil, err
				}
				if _, err := p.expect(token.COLON); err != nil {
					return nil, err
				}
				typeTok, err := p.expect(token.IDENTIFIER)
				if err != nil {
					return nil, err
				}
				fields = append(fields, ast.FieldDecl{Name: fieldTok.Lexeme, TypeName: typeTok.Lexeme})
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
		return &ast.RecordTypeExpr{Fields: fields}, nil

	case token.IDENTIFIER:
		nameTok, err := p.expect(token.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		return &ast.TypeId{Name: nameTok.Lexeme}, nil

	default:
		return nil, &ParseError{Expected: "a type", Found: p.cur}
	}
}

func (p *Parser) parseVariableDecl() (ast.Decl, error) {
	if err := p.advance(); err != nil { // consume 'var'
		return nil, err
	}
	nameTok, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	var typeName string
	if p.at(token.COLON) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		typeTok, err := p.expect(token.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		typeName = typeTok.Lexeme
	}
	if _, err := p.expect(token.ASSIGN); err != nil {
		return nil, err
	}
	init, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.VariableDecl{Name: nameTok.Lexeme, TypeName: typeName, Init: init}, nil
}

func (p *Parser) parseFuncDecl() (ast.Decl, error) {
	if err := p.advance(); err != nil { // consume 'function'
		return nil, err
	}
	nameTok, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	var params []*ast.Param
	if !p.at(token.RPAREN) {
		for {
			paramTok, err := p.expect(token.IDENTIFIER)
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.COLON); err != nil {
				return nil, err
			}
			typeTok, err := p.expect(token.IDENTIFIER)
			if err != nil {
				return nil, err
			}
			params = append(params, &ast.Param{Name: paramTok.Lexeme, TypeName: typeTok.Lexeme})
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
	var returnType string
	if p.at(token.COLON) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		typeTok, err := p.expect(token.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		returnType = typeTok.Lexeme
	}
	if _, err := p.expect(token.EQ); err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.FuncDecl{Name: nameTok.Lexeme, Params: params, ReturnType: returnType, Body: body}, nil
}
