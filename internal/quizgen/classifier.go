package quizgen

import (
	"slices"
	"strings"

	"github.com/abhay/quizforge/internal/quiz"
)

// Classify decides the concrete question type for a provisional block.
// allowed is the caller's non-empty allow-list in preference order.
// Classification never fails: it always terminates in an allowed type,
// possibly ignoring the block's stated intent.
//
// Decision order:
//  1. declared type, when it is a valid type name and allowed
//  2. true/false phrase heuristics on the question text
//  3. multiple choice, when the block carries enough raw options
//  4. the first allowed type
func Classify(b Block, allowed []quiz.Type, cfg Config) quiz.Type {
	if declared, err := quiz.ParseType(b.DeclaredType); err == nil && slices.Contains(allowed, declared) {
		return declared
	}

	text := strings.ToLower(b.Text)
	if slices.Contains(allowed, quiz.TypeTrueFalse) {
		for _, phrase := range cfg.TrueFalsePhrases {
			if strings.Contains(text, phrase) {
				return quiz.TypeTrueFalse
			}
		}
	}

	if len(b.RawOptions) >= cfg.MinOptions && slices.Contains(allowed, quiz.TypeMultipleChoice) {
		return quiz.TypeMultipleChoice
	}

	return allowed[0]
}
