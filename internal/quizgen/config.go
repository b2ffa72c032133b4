package quizgen

import (
	"github.com/abhay/quizforge/internal/quiz"
)

// Config controls the behavior of the Engine. The heuristic keyword
// lists and weight tables are configuration rather than literals so
// they stay testable and extensible.
type Config struct {
	// DefaultAllowedTypes is used when a caller passes an empty
	// allow-list.
	DefaultAllowedTypes []quiz.Type

	// TrueFalsePhrases are scanned (lower-cased) in question text to
	// detect true/false questions whose declared type is missing or
	// wrong.
	TrueFalsePhrases []string

	// MinOptions is the minimum number of cleaned options a
	// multiple-choice question must keep to survive sanitization.
	MinOptions int

	// Points maps each question type to its point value. Types not in
	// the map are worth 1 point.
	Points map[quiz.Type]int

	// MinutesPerQuestion is the per-type time table used to estimate
	// quiz duration.
	MinutesPerQuestion map[quiz.Type]float64

	// PlaceholderExplanation fills in when the source omitted an
	// explanation.
	PlaceholderExplanation string
}

// DefaultConfig returns the standard engine configuration.
func DefaultConfig() Config {
	return Config{
		DefaultAllowedTypes: []quiz.Type{quiz.TypeMultipleChoice, quiz.TypeTrueFalse},
		TrueFalsePhrases: []string{
			"true or false",
			"is it true",
			"correct or incorrect",
		},
		MinOptions: 2,
		Points: map[quiz.Type]int{
			quiz.TypeMultipleChoice: 1,
			quiz.TypeTrueFalse:      1,
			quiz.TypeShortAnswer:    2,
		},
		MinutesPerQuestion: map[quiz.Type]float64{
			quiz.TypeMultipleChoice: 1.5,
			quiz.TypeTrueFalse:      0.5,
			quiz.TypeShortAnswer:    3.0,
		},
		PlaceholderExplanation: "No explanation provided.",
	}
}
