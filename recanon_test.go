package recanon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jenneetee/recanon"
	"github.com/jenneetee/recanon/syntax"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    string
	}{
		{
			name:    "single character is idempotent",
			pattern: "a",
			want:    "a",
		},
		{
			name:    "concatenation",
			pattern: "ab",
			want:    "ab",
		},
		{
			name:    "alternation gains parentheses",
			pattern: "a|b",
			want:    "(a|b)",
		},
		{
			name:    "star gains parentheses",
			pattern: "a*",
			want:    "(a)*",
		},
		{
			name:    "class passes through",
			pattern: "[abc]",
			want:    "[abc]",
		},
		{
			name:    "quantifier bounds pass through verbatim",
			pattern: "a{2,3}",
			want:    "a{2,3}",
		},
		{
			name:    "email-shaped pattern",
			pattern: `[a-z0-9_]+@[a-z]+\.[a-z]{2,4}`,
			want:    `[a-z0-9_]+@[a-z]+\.[a-z]{2,4}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := recanon.Canonicalize(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanonicalize_RoundTrip(t *testing.T) {
	// Syntactic closure: every canonical form must itself be accepted by the
	// front end.
	patterns := []string{
		"a",
		"ab",
		"a|b|c",
		"a*",
		"a**",
		"(a|b)*c",
		"a{2}{3}",
		`\d[0-9]{1,2}`,
		"^(ab|cd)$",
		"a.b",
	}

	for _, pattern := range patterns {
		canonical, err := recanon.Canonicalize(pattern)
		require.NoError(t, err, "pattern %q", pattern)

		_, err = recanon.Canonicalize(canonical)
		assert.NoError(t, err, "canonical form %q of %q", canonical, pattern)
	}
}

func TestCanonicalize_Errors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		wantLex bool
	}{
		{name: "unterminated class", pattern: "a[", wantLex: true},
		{name: "trailing backslash", pattern: `a\`, wantLex: true},
		{name: "unsupported character", pattern: "a b", wantLex: true},
		{name: "unclosed group", pattern: "(a"},
		{name: "leading star", pattern: "*a"},
		{name: "empty pattern", pattern: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := recanon.Canonicalize(tt.pattern)
			require.Error(t, err)
			assert.Empty(t, out)

			if tt.wantLex {
				var lexErr *syntax.LexError
				assert.ErrorAs(t, err, &lexErr)
			} else {
				var synErr *syntax.SyntaxError
				assert.ErrorAs(t, err, &synErr)
			}
		})
	}
}

func TestParse(t *testing.T) {
	node, err := recanon.Parse("ab")
	require.NoError(t, err)
	assert.Equal(t, syntax.KindConcat, node.Kind())
	assert.Equal(t, `Concat(Char("a"), Char("b"))`, node.String())
}

func TestTokenize(t *testing.T) {
	tokens, err := recanon.Tokenize("[abc]")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, syntax.TokenClass, tokens[0].Kind)
	assert.Equal(t, "abc", tokens[0].Text)
}
