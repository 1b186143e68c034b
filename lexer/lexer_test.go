package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abrown/tiger-rpython/lexer"
	"github.com/abrown/tiger-rpython/token"
)

func scanAll(t *testing.T, src string) []token.Token {
	t.Helper()
	l := lexer.New(src, "")
	var toks []token.Token
	for {
		tok, err := l.Next()
		require.NoError(t, err)
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return toks
}

func TestLexerKeywordsAndSymbols(t *testing.T) {
	toks := scanAll(t, "let var a := 1 + 2 in a end")
	kinds := make([]token.Kind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	assert.Equal(t, []token.Kind{
		token.LET, token.VAR, token.IDENTIFIER, token.ASSIGN, token.NUMBER,
		token.PLUS, token.NUMBER, token.IN, token.IDENTIFIER, token.END, token.EOF,
	}, kinds)
}

func TestLexerMultiCharSymbols(t *testing.T) {
	toks := scanAll(t, "<= >= <> := <")
	kinds := make([]token.Kind, 0, len(toks))
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []token.Kind{token.LE, token.GE, token.NE, token.ASSIGN, token.LT, token.EOF}, kinds)
}

func TestLexerStringEscapes(t *testing.T) {
	toks := scanAll(t, `"a\nb\tc\x41\065"`)
	require.Len(t, toks, 2)
	assert.Equal(t, token.STRING, toks[0].Kind)
	assert.Equal(t, "a\nb\tc\x41\x41", toks[0].Lexeme)
}

func TestLexerNestedComments(t *testing.T) {
	toks := scanAll(t, "/* outer /* inner */ still outer */ 42")
	require.Len(t, toks, 2)
	assert.Equal(t, token.NUMBER, toks[0].Kind)
	assert.Equal(t, "42", toks[0].Lexeme)
}

func TestLexerUnterminatedCommentError(t *testing.T) {
	l := lexer.New("/* never closes", "")
	_, err := l.Next()
	require.Error(t, err)
	var lexErr *lexer.LexError
	require.ErrorAs(t, err, &lexErr)
}

func TestLexerPeekDoesNotConsume(t *testing.T) {
	l := lexer.New("1 2 3", "")
	first, err := l.Peek(0)
	require.NoError(t, err)
	assert.Equal(t, "1", first.Lexeme)

	second, err := l.Peek(1)
	require.NoError(t, err)
	assert.Equal(t, "2", second.Lexeme)

	// peek again must not have advanced consumption
	again, err := l.Next()
	require.NoError(t, err)
	assert.Equal(t, "1", again.Lexeme)
}

func TestLexerInvalidCharacter(t *testing.T) {
	l := lexer.New("1 @ 2", "")
	_, err := l.Next()
	require.NoError(t, err)
	_, err = l.Next()
	require.Error(t, err)
}

func TestLexerTracksLineNumbers(t *testing.T) {
	l := lexer.New("1\n2\n3", "prog.tig")
	var last token.Token
	for {
		tok, err := l.Next()
		require.NoError(t, err)
		if tok.Kind == token.EOF {
			break
		}
		last = tok
	}
	assert.Equal(t, 3, last.Pos.Line)
}
