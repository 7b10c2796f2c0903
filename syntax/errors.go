package syntax

import "fmt"

// LexErrorCode identifies the kinds of lexical errors.
type LexErrorCode int

const (
	UnterminatedEscape     LexErrorCode = iota // '\' at end of input
	UnterminatedClass                          // '[' without a closing ']'
	UnterminatedQuantifier                     // '{' without a closing '}'
	UnsupportedCharacter                       // character outside the lexical grammar
)

func (c LexErrorCode) String() string {
	switch c {
	case UnterminatedEscape:
		return "unterminated escape"
	case UnterminatedClass:
		return "unterminated character class"
	case UnterminatedQuantifier:
		return "unterminated quantifier"
	case UnsupportedCharacter:
		return "unsupported character"
	default:
		return "unknown lex error"
	}
}

// LexError reports a lexical error at a byte offset in the pattern.
type LexError struct {
	Code LexErrorCode
	Pos  int
	Char rune // offending character, set for UnsupportedCharacter
}

func (e *LexError) Error() string {
	if e.Code == UnsupportedCharacter {
		return fmt.Sprintf("pos %d: unsupported character %q", e.Pos, e.Char)
	}
	return fmt.Sprintf("pos %d: %s", e.Pos, e.Code)
}

// SyntaxErrorCode identifies the kinds of parse errors.
type SyntaxErrorCode int

const (
	UnexpectedToken      SyntaxErrorCode = iota // token cannot appear here
	UnexpectedEndOfInput                        // more tokens were required
	UnclosedGroup                               // '(' without a matching ')'
)

func (c SyntaxErrorCode) String() string {
	switch c {
	case UnexpectedToken:
		return "unexpected token"
	case UnexpectedEndOfInput:
		return "unexpected end of input"
	case UnclosedGroup:
		return "unclosed group"
	default:
		return "unknown syntax error"
	}
}

// SyntaxError reports a parse error, carrying the offending token.
// Tok is nil when the input ended where another token was required.
type SyntaxError struct {
	Code SyntaxErrorCode
	Tok  *Token
}

func (e *SyntaxError) Error() string {
	if e.Tok == nil {
		return e.Code.String()
	}
	return fmt.Sprintf("pos %d: %s %s(%q)", e.Tok.Pos, e.Code, e.Tok.Kind, e.Tok.Text)
}

// SerializeError reports a node the serializer does not recognize. It cannot
// occur for trees built by this package's parser.
type SerializeError struct {
	Node Node
}

func (e *SerializeError) Error() string {
	return fmt.Sprintf("unknown node kind %T", e.Node)
}
