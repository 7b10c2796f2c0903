// Package recanon is a front end for a regular-expression-like pattern
// language. It tokenizes a pattern, parses it into a syntax tree, and
// serializes the tree back into a canonical, fully parenthesized pattern
// suitable for handing to a host matching engine.
package recanon

import (
	"github.com/jenneetee/recanon/syntax"
)

// Tokenize scans pattern into its lexical tokens.
func Tokenize(pattern string) ([]syntax.Token, error) {
	return syntax.NewLexer(pattern).Tokenize()
}

// Parse tokenizes pattern and builds its syntax tree.
func Parse(pattern string) (syntax.Node, error) {
	tokens, err := Tokenize(pattern)
	if err != nil {
		return nil, err
	}
	return syntax.NewParser(tokens).Parse()
}

// Canonicalize runs the full pipeline: tokenize, parse, serialize. An error
// in any phase aborts the pipeline with no partial result.
func Canonicalize(pattern string) (string, error) {
	node, err := Parse(pattern)
	if err != nil {
		return "", err
	}
	return syntax.Serialize(node)
}
