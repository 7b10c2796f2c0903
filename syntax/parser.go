package syntax

// Parser consumes tokens produced by the lexer and builds the syntax tree by
// recursive descent. It holds a single forward cursor and never re-reads
// earlier tokens.
type Parser struct {
	tokens  []Token
	current int
}

// NewParser creates a new Parser over the given token sequence.
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse builds the syntax tree for the whole token sequence. Any token left
// over after the top-level expression is a syntax error.
func (p *Parser) Parse() (Node, error) {
	node, err := p.parseRegex()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok != nil {
		return nil, &SyntaxError{Code: UnexpectedToken, Tok: tok}
	}
	return node, nil
}

// parseRegex parses one or more terms separated by '|', building a
// left-associative Alt chain.
func (p *Parser) parseRegex() (Node, error) {
	node, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		if tok == nil || tok.Kind != TokenAlt {
			return node, nil
		}
		p.current++
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		node = &AltNode{Left: node, Right: right}
	}
}

// parseTerm parses one or more factors and concatenates them left to right.
// Concatenation continues while the lookahead can start an atom.
func (p *Parser) parseTerm() (Node, error) {
	node, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		if tok == nil || !startsAtom(tok.Kind) {
			return node, nil
		}
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		node = &ConcatNode{Left: node, Right: right}
	}
}

// parseFactor parses an atom followed by zero or more postfix '*' or '{...}'
// tokens. Each postfix wraps the result so far, so "a**" becomes
// Star(Star(a)).
func (p *Parser) parseFactor() (Node, error) {
	node, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		if tok == nil {
			return node, nil
		}
		switch tok.Kind {
		case TokenStar:
			p.current++
			node = &StarNode{Operand: node}
		case TokenQuant:
			p.current++
			node = &QuantNode{Operand: node, Tok: *tok}
		default:
			return node, nil
		}
	}
}

// parseAtom parses a leaf token or a parenthesized subexpression.
func (p *Parser) parseAtom() (Node, error) {
	tok := p.peek()
	if tok == nil {
		return nil, &SyntaxError{Code: UnexpectedEndOfInput}
	}
	switch tok.Kind {
	case TokenChar, TokenEscapedChar, TokenClass, TokenDot, TokenStart, TokenEnd:
		p.current++
		return &LiteralNode{Tok: *tok}, nil
	case TokenLParen:
		p.current++
		inner, err := p.parseRegex()
		if err != nil {
			return nil, err
		}
		closing := p.peek()
		if closing == nil || closing.Kind != TokenRParen {
			return nil, &SyntaxError{Code: UnclosedGroup, Tok: closing}
		}
		p.current++
		return &GroupNode{Operand: inner, pos: tok.Pos}, nil
	default:
		return nil, &SyntaxError{Code: UnexpectedToken, Tok: tok}
	}
}

// peek returns the current token without consuming it, or nil at the end of
// the sequence.
func (p *Parser) peek() *Token {
	if p.current >= len(p.tokens) {
		return nil
	}
	return &p.tokens[p.current]
}

// startsAtom reports whether a token of the given kind can begin an atom.
func startsAtom(k TokenKind) bool {
	switch k {
	case TokenChar, TokenEscapedChar, TokenClass, TokenDot, TokenStart, TokenEnd, TokenLParen:
		return true
	}
	return false
}
