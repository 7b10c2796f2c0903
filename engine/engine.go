// Package engine hands canonical patterns to the host regexp engine. The
// front end guarantees only that its output is syntactically valid here; all
// matching semantics belong to the host engine.
package engine

import (
	"fmt"
	"regexp"
)

// Result describes a successful match: the matched substring and its
// half-open [Start, End) byte span in the subject.
type Result struct {
	Text  string
	Start int
	End   int
}

// Match compiles pattern with the host engine and applies it to subject,
// anchored at the start of the subject. A nil Result with a nil error means
// the pattern is valid but did not match.
func Match(pattern, subject string) (*Result, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compiling %q: %w", pattern, err)
	}

	// The leftmost match starts at offset 0 whenever any match does, so this
	// check is equivalent to anchoring.
	loc := re.FindStringIndex(subject)
	if loc == nil || loc[0] != 0 {
		return nil, nil
	}
	return &Result{
		Text:  subject[loc[0]:loc[1]],
		Start: loc[0],
		End:   loc[1],
	}, nil
}
