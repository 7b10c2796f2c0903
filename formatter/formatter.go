// Package formatter renders token streams, syntax trees and match results
// for the terminal.
package formatter

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/jenneetee/recanon/engine"
	"github.com/jenneetee/recanon/syntax"
)

var (
	kindStyle    = color.New(color.FgYellow, color.Bold)
	lexemeStyle  = color.New(color.FgCyan)
	posStyle     = color.New(color.FgHiBlue)
	matchStyle   = color.New(color.FgGreen, color.Bold)
	noMatchStyle = color.New(color.FgRed, color.Bold)
)

// TokenTable renders one token per line: byte offset, kind, lexeme.
func TokenTable(tokens []syntax.Token) string {
	var builder strings.Builder
	for _, tok := range tokens {
		fmt.Fprintf(&builder, "%s  %s %s\n",
			posStyle.Sprintf("%4d", tok.Pos),
			kindStyle.Sprintf("%-12s", tok.Kind),
			lexemeStyle.Sprintf("%q", tok.Text))
	}
	return builder.String()
}

// Tree renders the syntax tree with two-space indentation per depth.
func Tree(node syntax.Node) string {
	var builder strings.Builder
	writeTree(&builder, node, 0)
	return builder.String()
}

func writeTree(builder *strings.Builder, node syntax.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch n := node.(type) {
	case *syntax.LiteralNode:
		fmt.Fprintf(builder, "%s%s %s\n", indent,
			kindStyle.Sprint(n.Kind()), lexemeStyle.Sprintf("%q", n.Tok.Text))
	case *syntax.ConcatNode:
		fmt.Fprintf(builder, "%s%s\n", indent, kindStyle.Sprint(n.Kind()))
		writeTree(builder, n.Left, depth+1)
		writeTree(builder, n.Right, depth+1)
	case *syntax.AltNode:
		fmt.Fprintf(builder, "%s%s\n", indent, kindStyle.Sprint(n.Kind()))
		writeTree(builder, n.Left, depth+1)
		writeTree(builder, n.Right, depth+1)
	case *syntax.StarNode:
		fmt.Fprintf(builder, "%s%s\n", indent, kindStyle.Sprint(n.Kind()))
		writeTree(builder, n.Operand, depth+1)
	case *syntax.QuantNode:
		fmt.Fprintf(builder, "%s%s %s\n", indent,
			kindStyle.Sprint(n.Kind()), lexemeStyle.Sprintf("%q", n.Tok.Text))
		writeTree(builder, n.Operand, depth+1)
	case *syntax.GroupNode:
		fmt.Fprintf(builder, "%s%s\n", indent, kindStyle.Sprint(n.Kind()))
		writeTree(builder, n.Operand, depth+1)
	default:
		fmt.Fprintf(builder, "%s%s\n", indent, kindStyle.Sprintf("%T", node))
	}
}

// MatchReport renders the host engine's verdict for one subject.
func MatchReport(res *engine.Result) string {
	if res == nil {
		return noMatchStyle.Sprint("no match")
	}
	return fmt.Sprintf("%s %q %s",
		matchStyle.Sprint("match"),
		res.Text,
		posStyle.Sprintf("[%d:%d]", res.Start, res.End))
}
