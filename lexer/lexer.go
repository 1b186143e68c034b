/*
File    : tiger-rpython/lexer/lexer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package lexer turns Tiger source text into a stream of token.Token
// values. It exposes peek(k)/next exactly as spec.md §4.1 describes: next
// consumes, peek looks ahead without consuming, and an internal buffer
// backs peek so arbitrary lookahead is cheap.
package lexer

import (
	"fmt"
	"strings"

	"devt.de/krotik/common/datautil"

	"github.com/abrown/tiger-rpython/token"
)

// lookaheadCapacity bounds how many tokens Peek may look ahead of the
// current one. The parser itself never calls Peek: it tells an array
// creation from an indexed LValue by checking for `of` after the `]`.
const lookaheadCapacity = 16

// Lexer scans a single Tiger source file (or in-memory string, when File is
// empty) into tokens. It mirrors the byte-at-a-time scanning style of
// go-mix's lexer.Lexer (Src/Current/Position/Line/Column fields and an
// Advance/Peek pair) but recognizes Tiger's token set and escape rules
// instead of Go-Mix's.
type Lexer struct {
	src     string
	file    string
	pos     int // byte offset of the next unconsumed rune
	line    int
	col     int
	pending *datautil.RingBuffer // lookahead buffer of already-scanned tokens
}

// New creates a Lexer over src. file is used only for diagnostics.
func New(src, file string) *Lexer {
	return &Lexer{
		src:     src,
		file:    file,
		pos:     0,
		line:    1,
		col:     1,
		pending: datautil.NewRingBuffer(lookaheadCapacity),
	}
}

// Peek returns the k-th future token (k=0 is the next token to be consumed
// by Next) without consuming anything. It returns a LexError if scanning
// ahead that far encounters a malformed token.
func (l *Lexer) Peek(k int) (token.Token, error) {
	for l.pending.Size() <= k {
		tok, err := l.scan()
		if err != nil {
			return token.Token{}, err
		}
		l.pending.Add(tok)
	}
	v := l.pending.Get(k)
	return v.(token.Token), nil
}

// Next consumes and returns the next token.
func (l *Lexer) Next() (token.Token, error) {
	if l.pending.Size() == 0 {
		return l.scan()
	}
	return l.pending.Poll().(token.Token), nil
}

func (l *Lexer) here() token.Position {
	return token.Position{File: l.file, Line: l.line, Column: l.col}
}

func (l *Lexer) errf(pos token.Position, format string, args ...interface{}) error {
	return &LexError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// scan is the actual scanner: it consumes whitespace/comments then returns
// exactly one token from the underlying source, or a LexError.
func (l *Lexer) scan() (token.Token, error) {
	if err := l.skipIgnorable(); err != nil {
		return token.Token{}, err
	}

	pos := l.here()
	if l.pos >= len(l.src) {
		return token.Token{Kind: token.EOF, Pos: pos}, nil
	}

	c := l.src[l.pos]
	switch {
	case c == '"':
		return l.scanString(pos)
	case isDigit(c):
		return l.scanNumber(pos)
	case isAlpha(c):
		return l.scanIdentifier(pos)
	default:
		return l.scanSymbol(pos)
	}
}

func (l *Lexer) skipIgnorable() error {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c == '\n':
			l.advance()
			l.line++
			l.col = 1
		case c == ' ' || c == '\t' || c == '\r':
			l.advance()
		case c == '/' && l.peekByte(1) == '*':
			if err := l.skipComment(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
	return nil
}

// skipComment consumes a /* ... */ comment, including full nesting, per
// spec.md §4.1. It reports an unterminated-comment LexError at EOF.
func (l *Lexer) skipComment() error {
	start := l.here()
	depth := 0
	for {
		if l.pos >= len(l.src) {
			return l.errf(start, "unterminated comment")
		}
		if l.src[l.pos] == '/' && l.peekByte(1) == '*' {
			l.advance()
			l.advance()
			depth++
			continue
		}
		if l.src[l.pos] == '*' && l.peekByte(1) == '/' {
			l.advance()
			l.advance()
			depth--
			if depth == 0 {
				return nil
			}
			continue
		}
		if l.src[l.pos] == '\n' {
			l.advance()
			l.line++
			l.col = 1
			continue
		}
		l.advance()
	}
}

func (l *Lexer) advance() {
	l.pos++
	l.col++
}

func (l *Lexer) peekByte(offset int) byte {
	if l.pos+offset >= len(l.src) {
		return 0
	}
	return l.src[l.pos+offset]
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
func isAlphaNumeric(c byte) bool { return isAlpha(c) || isDigit(c) }

func (l *Lexer) scanNumber(pos token.Position) (token.Token, error) {
	start := l.pos
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.advance()
	}
	return token.Token{Kind: token.NUMBER, Lexeme: l.src[start:l.pos], Pos: pos}, nil
}

func (l *Lexer) scanIdentifier(pos token.Position) (token.Token, error) {
	start := l.pos
	for l.pos < len(l.src) && isAlphaNumeric(l.src[l.pos]) {
		l.advance()
	}
	text := l.src[start:l.pos]
	if kind, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: kind, Lexeme: text, Pos: pos}, nil
	}
	return token.Token{Kind: token.IDENTIFIER, Lexeme: text, Pos: pos}, nil
}

func (l *Lexer) scanString(pos token.Position) (token.Token, error) {
	l.advance() // opening quote
	var sb strings.Builder
	for {
		if l.pos >= len(l.src) {
			return token.Token{}, l.errf(pos, "unterminated string literal")
		}
		c := l.src[l.pos]
		if c == '"' {
			l.advance()
			return token.Token{Kind: token.STRING, Lexeme: sb.String(), Pos: pos}, nil
		}
		if c == '\n' {
			return token.Token{}, l.errf(pos, "newline in string literal")
		}
		if c != '\\' {
			sb.WriteByte(c)
			l.advance()
			continue
		}
		// escape sequence
		l.advance()
		if l.pos >= len(l.src) {
			return token.Token{}, l.errf(pos, "unterminated escape in string literal")
		}
		e := l.src[l.pos]
		switch e {
		case '"':
			sb.WriteByte('"')
			l.advance()
		case '\\':
			sb.WriteByte('\\')
			l.advance()
		case 'n':
			sb.WriteByte('\n')
			l.advance()
		case 'r':
			sb.WriteByte('\r')
			l.advance()
		case 't':
			sb.WriteByte('\t')
			l.advance()
		case 'b':
			sb.WriteByte('\b')
			l.advance()
		case 'x':
			l.advance()
			b, err := l.readFixedDigits(pos, 2, 16)
			if err != nil {
				return token.Token{}, err
			}
			sb.WriteByte(b)
		default:
			if isDigit(e) {
				b, err := l.readFixedDigits(pos, 3, 10)
				if err != nil {
					return token.Token{}, err
				}
				sb.WriteByte(b)
			} else {
				return token.Token{}, l.errf(pos, "unknown escape sequence '\\%c'", e)
			}
		}
	}
}

// readFixedDigits consumes exactly n digits of the given base starting at
// the current position and returns the resulting byte value.
func (l *Lexer) readFixedDigits(pos token.Position, n int, base int) (byte, error) {
	start := l.pos
	for i := 0; i < n; i++ {
		if l.pos >= len(l.src) {
			return 0, l.errf(pos, "incomplete escape sequence")
		}
		l.advance()
	}
	digits := l.src[start:l.pos]
	val := 0
	for _, c := range digits {
		d := digitValue(byte(c))
		if d < 0 || d >= base {
			return 0, l.errf(pos, "invalid digit %q in escape sequence", c)
		}
		val = val*base + d
	}
	if val > 255 {
		return 0, l.errf(pos, "escape value out of byte range: %d", val)
	}
	return byte(val), nil
}

func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return -1
	}
}

func (l *Lexer) scanSymbol(pos token.Position) (token.Token, error) {
	c := l.src[l.pos]
	two := func(k token.Kind, text string) (token.Token, error) {
		l.advance()
		l.advance()
		return token.Token{Kind: k, Lexeme: text, Pos: pos}, nil
	}
	one := func(k token.Kind, text string) (token.Token, error) {
		l.advance()
		return token.Token{Kind: k, Lexeme: text, Pos: pos}, nil
	}

	switch c {
	case ',':
		return one(token.COMMA, ",")
	case ':':
		if l.peekByte(1) == '=' {
			return two(token.ASSIGN, ":=")
		}
		return one(token.COLON, ":")
	case ';':
		return one(token.SEMICOLON, ";")
	case '(':
		return one(token.LPAREN, "(")
	case ')':
		return one(token.RPAREN, ")")
	case '[':
		return one(token.LBRACKET, "[")
	case ']':
		return one(token.RBRACKET, "]")
	case '{':
		return one(token.LBRACE, "{")
	case '}':
		return one(token.RBRACE, "}")
	case '.':
		return one(token.DOT, ".")
	case '+':
		return one(token.PLUS, "+")
	case '-':
		return one(token.MINUS, "-")
	case '*':
		return one(token.STAR, "*")
	case '/':
		return one(token.SLASH, "/")
	case '=':
		return one(token.EQ, "=")
	case '&':
		return one(token.AMP, "&")
	case '|':
		return one(token.PIPE, "|")
	case '<':
		switch l.peekByte(1) {
		case '=':
			return two(token.LE, "<=")
		case '>':
			return two(token.NE, "<>")
		default:
			return one(token.LT, "<")
		}
	case '>':
		if l.peekByte(1) == '=' {
			return two(token.GE, ">=")
		}
		return one(token.GT, ">")
	default:
		return token.Token{}, l.errf(pos, "invalid character %q", c)
	}
}
