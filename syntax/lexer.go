package syntax

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lexer scans a pattern string and produces the list of tokens.
type Lexer struct {
	input    string // the entire pattern to tokenize
	position int    // current reading position in input
	tokens   []Token
}

// NewLexer returns a new Lexer over the given pattern. Each Lexer carries its
// own cursor, so concurrent Tokenize calls on separate values are independent.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input:  input,
		tokens: make([]Token, 0),
	}
}

// Tokenize scans the whole input left to right and returns the materialized
// token sequence. The input is decoded rune by rune, so a multi-byte literal
// becomes a single token; positions are byte offsets. The cursor never backs
// up; on malformed input it stops at the first error.
func (l *Lexer) Tokenize() ([]Token, error) {
	for l.position < len(l.input) {
		startPos := l.position
		r, width := utf8.DecodeRuneInString(l.input[l.position:])
		switch {
		case isPatternChar(r):
			l.addToken(TokenChar, string(r), startPos)
			l.position += width

		case r == '\\':
			if l.position+width >= len(l.input) {
				return nil, &LexError{Code: UnterminatedEscape, Pos: startPos}
			}
			esc, escWidth := utf8.DecodeRuneInString(l.input[l.position+width:])
			l.addToken(TokenEscapedChar, string(esc), startPos)
			l.position += width + escWidth

		case r == '*':
			l.addToken(TokenStar, "*", startPos)
			l.position += width

		case r == '|':
			l.addToken(TokenAlt, "|", startPos)
			l.position += width

		case r == '.':
			l.addToken(TokenDot, ".", startPos)
			l.position += width

		case r == '^':
			l.addToken(TokenStart, "^", startPos)
			l.position += width

		case r == '$':
			l.addToken(TokenEnd, "$", startPos)
			l.position += width

		case r == '[':
			if err := l.lexClass(startPos); err != nil {
				return nil, err
			}

		case r == '{':
			if err := l.lexQuantifier(startPos); err != nil {
				return nil, err
			}

		case r == '(':
			l.addToken(TokenLParen, "(", startPos)
			l.position += width

		case r == ')':
			l.addToken(TokenRParen, ")", startPos)
			l.position += width

		default:
			return nil, &LexError{Code: UnsupportedCharacter, Pos: startPos, Char: r}
		}
	}
	return l.tokens, nil
}

// lexClass scans a '[...]' form. The token body is everything between the
// brackets, verbatim: no escape handling inside a class.
func (l *Lexer) lexClass(startPos int) error {
	end := strings.IndexByte(l.input[l.position+1:], ']')
	if end < 0 {
		return &LexError{Code: UnterminatedClass, Pos: startPos}
	}
	body := l.input[l.position+1 : l.position+1+end]
	l.addToken(TokenClass, body, startPos)
	l.position += end + 2
	return nil
}

// lexQuantifier scans a '{...}' form. Unlike a class, the token keeps its
// braces so the serializer can emit the quantifier verbatim.
func (l *Lexer) lexQuantifier(startPos int) error {
	end := strings.IndexByte(l.input[l.position+1:], '}')
	if end < 0 {
		return &LexError{Code: UnterminatedQuantifier, Pos: startPos}
	}
	body := l.input[l.position : l.position+end+2]
	l.addToken(TokenQuant, body, startPos)
	l.position += end + 2
	return nil
}

// addToken is a helper to append a new token to the lexer's token list.
func (l *Lexer) addToken(kind TokenKind, text string, pos int) {
	l.tokens = append(l.tokens, Token{
		Kind: kind,
		Text: text,
		Pos:  pos,
	})
}

// isPatternChar reports whether r lexes as a plain literal character.
// '.' is deliberately absent: it always lexes as Dot, the any-character form.
func isPatternChar(r rune) bool {
	switch r {
	case '@', '-', '_', '%', '+':
		return true
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
