package syntax

// Serialize walks the syntax tree and emits the canonical pattern string.
// Star and Alt operands are always parenthesized, so the output may carry
// parentheses that were absent from the source pattern; it remains a valid,
// semantically equivalent pattern. The error path exists only for nodes
// foreign to this package and is unreachable for parser-built trees.
func Serialize(node Node) (string, error) {
	switch n := node.(type) {
	case *LiteralNode:
		return serializeLeaf(n), nil
	case *ConcatNode:
		left, err := Serialize(n.Left)
		if err != nil {
			return "", err
		}
		right, err := Serialize(n.Right)
		if err != nil {
			return "", err
		}
		return left + right, nil
	case *AltNode:
		left, err := Serialize(n.Left)
		if err != nil {
			return "", err
		}
		right, err := Serialize(n.Right)
		if err != nil {
			return "", err
		}
		return "(" + left + "|" + right + ")", nil
	case *StarNode:
		operand, err := Serialize(n.Operand)
		if err != nil {
			return "", err
		}
		return "(" + operand + ")*", nil
	case *QuantNode:
		operand, err := Serialize(n.Operand)
		if err != nil {
			return "", err
		}
		return operand + n.Tok.Text, nil
	case *GroupNode:
		operand, err := Serialize(n.Operand)
		if err != nil {
			return "", err
		}
		return "(" + operand + ")", nil
	default:
		return "", &SerializeError{Node: node}
	}
}

func serializeLeaf(n *LiteralNode) string {
	switch n.Tok.Kind {
	case TokenEscapedChar:
		return `\` + n.Tok.Text
	case TokenClass:
		return "[" + n.Tok.Text + "]"
	default:
		// Char, Dot, Start and End tokens carry their lexical form.
		return n.Tok.Text
	}
}
