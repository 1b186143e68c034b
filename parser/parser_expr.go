/*
File    : tiger-rpython/parser/parser_expr.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/abrown/tiger-rpython/ast"
	"github.com/abrown/tiger-rpython/token"
)

// binOp maps a symbol token to its ast.BinaryOp and precedence level, per
// spec.md §4.2's fixed table: `*,/`=5, `+,-`=4, comparisons=3, `&`=2,
// `|`=1, all left-associative.
func binOp(k token.Kind) (ast.BinaryOp, int, bool) {
	switch k {
	case token.STAR:
		return ast.OpMul, 5, true
	case token.SLASH:
		return ast.OpDiv, 5, true
	case token.PLUS:
		return ast.OpAdd, 4, true
	case token.MINUS:
		return ast.OpSub, 4, true
	case token.GE:
		return ast.OpGe, 3, true
	case token.LE:
		return ast.OpLe, 3, true
	case token.EQ:
		return ast.OpEq, 3, true
	case token.NE:
		return ast.OpNe, 3, true
	case token.GT:
		return ast.OpGt, 3, true
	case token.LT:
		return ast.OpLt, 3, true
	case token.AMP:
		return ast.OpAnd, 2, true
	case token.PIPE:
		return ast.OpOr, 1, true
	default:
		return 0, 0, false
	}
}

// parseExpr parses an expression at the lowest precedence: an assignment
// (parsed after an LValue primary, when `:=` follows) or a binary
// expression climbed up from precedence 1.
func (p *Parser) parseExpr() (ast.Expr, error) {
	left, err := p.parseBinary(0)
	if err != nil {
		return nil, err
	}
	if p.at(token.ASSIGN) {
		lv, ok := left.(*ast.LValue)
		if !ok {
			return nil, &ParseError{Expected: "lvalue before ':='", Found: p.cur}
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.Assign{Target: lv, Value: rhs}, nil
	}
	return left, nil
}

// parseBinary implements precedence climbing: it parses a primary, then
// repeatedly consumes operators whose precedence is >= minPrec, each time
// parsing the right-hand side at one precedence level higher than the
// operator's own (left-associativity; comparisons get no special case, so
// a chain such as `a<b<c` parses as `(a<b)<c`).
func (p *Parser) parseBinary(minPrec int) (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		op, prec, ok := binOp(p.cur.Kind)
		if !ok || prec < minPrec {
			return left, nil
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseBinary(prec + 1)
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Op: op, Left: left, Right: right}
	}
}

// parseUnary handles the one prefix form spec.md §4.1 calls out: a
// negative literal is recognized at the expression level by a leading
// `-`, not by the lexer. Per Tiger's grammar this also covers `- expr` in
// general (e.g. `- f(x)`), desugared to `0 - expr`.
func (p *Parser) parseUnary() (ast.Expr, error) {
	if p.at(token.MINUS) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if lit, ok := operand.(*ast.IntExpr); ok {
			return &ast.IntExpr{Value: -lit.Value}, nil
		}
		return &ast.BinaryExpr{Op: ast.OpSub, Left: &ast.IntExpr{Value: 0}, Right: operand}, nil
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	switch p.cur.Kind {
	case token.NIL:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.NilExpr{}, nil

	case token.NUMBER:
		tok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		n, err := parseInt(tok.Lexeme)
		if err != nil {
			return nil, &ParseError{Expected: "a valid integer literal", Found: tok}
		}
		return &ast.IntExpr{Value: n}, nil

	case token.STRING:
		tok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.StringExpr{Value: tok.Lexeme}, nil

	case token.BREAK:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.Break{}, nil

	case token.LPAREN:
		return p.parseSequence()

	case token.IF:
		return p.parseIf()

	case token.WHILE:
		return p.parseWhile()

	case token.FOR:
		return p.parseFor()

	case token.LET:
		return p.parseLet()

	case token.IDENTIFIER:
		return p.parseIdentifierHeaded()

	default:
		return nil, &ParseError{Expected: "an expression", Found: p.cur}
	}
}

// parseSequence parses `( e1 ; e2 ; ... )`, permitting the empty form
// `()` (spec.md §4.2).
func (p *Parser) parseSequence() (ast.Expr, error) {
	if err := p.advance(); err != nil { // consume '('
		return nil, err
	}
	var exprs []ast.Expr
	if !p.at(token.RPAREN) {
		for {
			e, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			exprs = append(exprs, e)
			if !p.at(token.SEMICOLON) {
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
	if len(exprs) == 1 {
		return exprs[0], nil
	}
	return &ast.Sequence{Exprs: exprs}, nil
}

func (p *Parser) parseIf() (ast.Expr, error) {
	if err := p.advance(); err != nil { // consume 'if'
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.THEN); err != nil {
		return nil, err
	}
	then, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	var elseExpr ast.Expr
	if p.at(token.ELSE) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		elseExpr, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	return &ast.If{Cond: cond, Then: then, Else: elseExpr}, nil
}

func (p *Parser) parseWhile() (ast.Expr, error) {
	if err := p.advance(); err != nil { // consume 'while'
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.DO); err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.While{Cond: cond, Body: body}, nil
}

func (p *Parser) parseFor() (ast.Expr, error) {
	if err := p.advance(); err != nil { // consume 'for'
		return nil, err
	}
	nameTok, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ASSIGN); err != nil {
		return nil, err
	}
	start, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.TO); err != nil {
		return nil, err
	}
	end, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.DO); err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.For{Var: &ast.LoopVarDecl{Name: nameTok.Lexeme}, Start: start, End: end, Body: body}, nil
}
