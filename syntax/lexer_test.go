package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexer_Tokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "single character",
			input: "a",
			want:  []Token{{Kind: TokenChar, Text: "a", Pos: 0}},
		},
		{
			name:  "symbol characters lex as plain characters",
			input: "@-_%+",
			want: []Token{
				{Kind: TokenChar, Text: "@", Pos: 0},
				{Kind: TokenChar, Text: "-", Pos: 1},
				{Kind: TokenChar, Text: "_", Pos: 2},
				{Kind: TokenChar, Text: "%", Pos: 3},
				{Kind: TokenChar, Text: "+", Pos: 4},
			},
		},
		{
			name:  "dot is the any-character token",
			input: "a.b",
			want: []Token{
				{Kind: TokenChar, Text: "a", Pos: 0},
				{Kind: TokenDot, Text: ".", Pos: 1},
				{Kind: TokenChar, Text: "b", Pos: 2},
			},
		},
		{
			name:  "escaped character",
			input: `\d`,
			want:  []Token{{Kind: TokenEscapedChar, Text: "d", Pos: 0}},
		},
		{
			name:  "escaped metacharacter",
			input: `\*a`,
			want: []Token{
				{Kind: TokenEscapedChar, Text: "*", Pos: 0},
				{Kind: TokenChar, Text: "a", Pos: 2},
			},
		},
		{
			name:  "anchors",
			input: "^a$",
			want: []Token{
				{Kind: TokenStart, Text: "^", Pos: 0},
				{Kind: TokenChar, Text: "a", Pos: 1},
				{Kind: TokenEnd, Text: "$", Pos: 2},
			},
		},
		{
			name:  "character class keeps its body verbatim",
			input: "[a-z0]",
			want:  []Token{{Kind: TokenClass, Text: "a-z0", Pos: 0}},
		},
		{
			name:  "quantifier keeps its braces",
			input: "a{2,3}",
			want: []Token{
				{Kind: TokenChar, Text: "a", Pos: 0},
				{Kind: TokenQuant, Text: "{2,3}", Pos: 1},
			},
		},
		{
			name:  "alternation and grouping",
			input: "(a|b)*",
			want: []Token{
				{Kind: TokenLParen, Text: "(", Pos: 0},
				{Kind: TokenChar, Text: "a", Pos: 1},
				{Kind: TokenAlt, Text: "|", Pos: 2},
				{Kind: TokenChar, Text: "b", Pos: 3},
				{Kind: TokenRParen, Text: ")", Pos: 4},
				{Kind: TokenStar, Text: "*", Pos: 5},
			},
		},
		{
			name:  "positions after a multi-character token",
			input: "ab[cd]e",
			want: []Token{
				{Kind: TokenChar, Text: "a", Pos: 0},
				{Kind: TokenChar, Text: "b", Pos: 1},
				{Kind: TokenClass, Text: "cd", Pos: 2},
				{Kind: TokenChar, Text: "e", Pos: 6},
			},
		},
		{
			name:  "empty input yields no tokens",
			input: "",
			want:  []Token{},
		},
		{
			name:  "multi-byte letter is one token",
			input: "é1",
			want: []Token{
				{Kind: TokenChar, Text: "é", Pos: 0},
				{Kind: TokenChar, Text: "1", Pos: 2},
			},
		},
		{
			name:  "multi-byte letters keep byte positions",
			input: "aéß1",
			want: []Token{
				{Kind: TokenChar, Text: "a", Pos: 0},
				{Kind: TokenChar, Text: "é", Pos: 1},
				{Kind: TokenChar, Text: "ß", Pos: 3},
				{Kind: TokenChar, Text: "1", Pos: 5},
			},
		},
		{
			name:  "escape consumes one full rune",
			input: `\éa`,
			want: []Token{
				{Kind: TokenEscapedChar, Text: "é", Pos: 0},
				{Kind: TokenChar, Text: "a", Pos: 3},
			},
		},
		{
			name:  "empty class body",
			input: "[]a",
			want: []Token{
				{Kind: TokenClass, Text: "", Pos: 0},
				{Kind: TokenChar, Text: "a", Pos: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewLexer(tt.input).Tokenize()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLexer_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode LexErrorCode
		wantPos  int
	}{
		{
			name:     "trailing backslash",
			input:    `a\`,
			wantCode: UnterminatedEscape,
			wantPos:  1,
		},
		{
			name:     "unterminated class",
			input:    "a[",
			wantCode: UnterminatedClass,
			wantPos:  1,
		},
		{
			name:     "unterminated class with body",
			input:    "[abc",
			wantCode: UnterminatedClass,
			wantPos:  0,
		},
		{
			name:     "unterminated quantifier",
			input:    "a{2,",
			wantCode: UnterminatedQuantifier,
			wantPos:  1,
		},
		{
			name:     "unsupported character",
			input:    "a#b",
			wantCode: UnsupportedCharacter,
			wantPos:  1,
		},
		{
			name:     "whitespace is unsupported",
			input:    "a b",
			wantCode: UnsupportedCharacter,
			wantPos:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := NewLexer(tt.input).Tokenize()
			require.Error(t, err)
			assert.Nil(t, tokens)

			var lexErr *LexError
			require.ErrorAs(t, err, &lexErr)
			assert.Equal(t, tt.wantCode, lexErr.Code)
			assert.Equal(t, tt.wantPos, lexErr.Pos)
		})
	}
}

func TestLexer_UnsupportedCharacterCarriesRune(t *testing.T) {
	_, err := NewLexer("ab!").Tokenize()

	var lexErr *LexError
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, UnsupportedCharacter, lexErr.Code)
	assert.Equal(t, '!', lexErr.Char)
	assert.Contains(t, err.Error(), `'!'`)
}

func TestLexer_InvalidUTF8(t *testing.T) {
	// A bare continuation byte decodes to the replacement rune and is
	// rejected; it must never be split into byte-sized tokens.
	tokens, err := NewLexer("a\xaab").Tokenize()
	require.Error(t, err)
	assert.Nil(t, tokens)

	var lexErr *LexError
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, UnsupportedCharacter, lexErr.Code)
	assert.Equal(t, 1, lexErr.Pos)
	assert.Equal(t, '�', lexErr.Char)
}

func TestLexer_Reentrant(t *testing.T) {
	// A lexer value carries per-call state; two lexers over different inputs
	// must not interfere.
	first, err := NewLexer("ab").Tokenize()
	require.NoError(t, err)
	second, err := NewLexer("cd").Tokenize()
	require.NoError(t, err)

	assert.Equal(t, "a", first[0].Text)
	assert.Equal(t, "c", second[0].Text)
}
