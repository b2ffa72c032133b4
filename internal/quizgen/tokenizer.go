// Package quizgen turns raw free-text produced by an AI text
// completion into a validated, fully-typed quiz. The pipeline is:
// tokenizer → block assembler → type classifier → option sanitizer →
// validator/enricher → composer. Every stage is a pure function of its
// inputs; the package holds no state and is safe for concurrent use.
package quizgen

import (
	"iter"
	"strings"
)

// Lines yields the trimmed, non-empty lines of raw in order. No
// validation happens here; this is pure segmentation.
func Lines(raw string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range strings.Lines(raw) {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if !yield(line) {
				return
			}
		}
	}
}
