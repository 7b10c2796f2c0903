package syntax

import "fmt"

// NodeKind defines the node variants of the pattern syntax tree.
type NodeKind int

const (
	KindChar NodeKind = iota
	KindEscapedChar
	KindClass
	KindDot
	KindStart
	KindEnd
	KindConcat
	KindAlt
	KindStar
	KindQuant
	KindGroup
)

func (k NodeKind) String() string {
	switch k {
	case KindChar:
		return "Char"
	case KindEscapedChar:
		return "EscapedChar"
	case KindClass:
		return "Class"
	case KindDot:
		return "Dot"
	case KindStart:
		return "Start"
	case KindEnd:
		return "End"
	case KindConcat:
		return "Concat"
	case KindAlt:
		return "Alt"
	case KindStar:
		return "Star"
	case KindQuant:
		return "Quant"
	case KindGroup:
		return "Group"
	default:
		return "Unknown"
	}
}

// Node is implemented by every AST node. Nodes are built once by the parser
// and never mutated afterwards; each node has exactly one parent.
type Node interface {
	Kind() NodeKind
	String() string // debugging or printing purpose
	Position() int  // where the node starts in the pattern
}

var (
	_ Node = (*LiteralNode)(nil)
	_ Node = (*ConcatNode)(nil)
	_ Node = (*AltNode)(nil)
	_ Node = (*StarNode)(nil)
	_ Node = (*QuantNode)(nil)
	_ Node = (*GroupNode)(nil)
)

var leafKinds = map[TokenKind]NodeKind{
	TokenChar:        KindChar,
	TokenEscapedChar: KindEscapedChar,
	TokenClass:       KindClass,
	TokenDot:         KindDot,
	TokenStart:       KindStart,
	TokenEnd:         KindEnd,
}

// LiteralNode is a leaf wrapping its originating token: a literal character,
// an escaped character, a character class, '.', '^' or '$'.
type LiteralNode struct {
	Tok Token
}

func (n *LiteralNode) Kind() NodeKind { return leafKinds[n.Tok.Kind] }
func (n *LiteralNode) String() string {
	return fmt.Sprintf("%s(%q)", n.Kind(), n.Tok.Text)
}
func (n *LiteralNode) Position() int { return n.Tok.Pos }

// ConcatNode concatenates two subpatterns in order.
type ConcatNode struct {
	Left  Node
	Right Node
}

func (n *ConcatNode) Kind() NodeKind { return KindConcat }
func (n *ConcatNode) String() string {
	return fmt.Sprintf("Concat(%s, %s)", n.Left, n.Right)
}
func (n *ConcatNode) Position() int { return n.Left.Position() }

// AltNode is an alternation between two subpatterns.
type AltNode struct {
	Left  Node
	Right Node
}

func (n *AltNode) Kind() NodeKind { return KindAlt }
func (n *AltNode) String() string {
	return fmt.Sprintf("Alt(%s, %s)", n.Left, n.Right)
}
func (n *AltNode) Position() int { return n.Left.Position() }

// StarNode repeats its operand zero or more times.
type StarNode struct {
	Operand Node
}

func (n *StarNode) Kind() NodeKind { return KindStar }
func (n *StarNode) String() string { return fmt.Sprintf("Star(%s)", n.Operand) }
func (n *StarNode) Position() int  { return n.Operand.Position() }

// QuantNode applies a '{m,n}'-style quantifier to its operand. The bounds are
// carried uninterpreted in the original quantifier token.
type QuantNode struct {
	Operand Node
	Tok     Token
}

func (n *QuantNode) Kind() NodeKind { return KindQuant }
func (n *QuantNode) String() string {
	return fmt.Sprintf("Quant(%s, %q)", n.Operand, n.Tok.Text)
}
func (n *QuantNode) Position() int { return n.Operand.Position() }

// GroupNode marks an explicitly parenthesized subpattern.
type GroupNode struct {
	Operand Node
	pos     int // position of the opening parenthesis
}

func (n *GroupNode) Kind() NodeKind { return KindGroup }
func (n *GroupNode) String() string { return fmt.Sprintf("Group(%s)", n.Operand) }
func (n *GroupNode) Position() int  { return n.pos }
