package syntax

// TokenKind classifies the lexical tokens of the pattern language.
type TokenKind int

const (
	TokenChar        TokenKind = iota // single literal character
	TokenEscapedChar                  // character following a '\'
	TokenStar                         // '*'
	TokenAlt                          // '|'
	TokenDot                          // '.'
	TokenStart                        // '^'
	TokenEnd                          // '$'
	TokenClass                        // '[...]' body, delimiters stripped
	TokenQuant                        // '{...}' body, braces included
	TokenLParen                       // '('
	TokenRParen                       // ')'
)

func (k TokenKind) String() string {
	switch k {
	case TokenChar:
		return "Char"
	case TokenEscapedChar:
		return "EscapedChar"
	case TokenStar:
		return "Star"
	case TokenAlt:
		return "Alt"
	case TokenDot:
		return "Dot"
	case TokenStart:
		return "Start"
	case TokenEnd:
		return "End"
	case TokenClass:
		return "Class"
	case TokenQuant:
		return "Quant"
	case TokenLParen:
		return "LParen"
	case TokenRParen:
		return "RParen"
	default:
		return "Unknown"
	}
}

// Token represents a single lexical token with its kind, literal text, and
// the byte offset of its first character in the original pattern.
type Token struct {
	Kind TokenKind
	Text string
	Pos  int
}
