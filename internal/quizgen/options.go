package quizgen

import (
	"errors"
	"regexp"
	"strings"
)

// optionLabelRe matches the leading "A) " style label on options and
// answers.
var optionLabelRe = regexp.MustCompile(`^[A-D]\)\s*`)

// ErrNoValidOptions signals that too few options survived cleaning.
// The owning block is invalid for multiple choice and must be dropped,
// never downgraded to another type.
var ErrNoValidOptions = errors.New("no valid options")

// SanitizeOptions strips label prefixes and whitespace from raw option
// lines, discarding entries that end up empty. It fails when fewer
// than min non-empty options remain.
func SanitizeOptions(raw []string, min int) ([]string, error) {
	cleaned := make([]string, 0, len(raw))
	for _, opt := range raw {
		opt = stripOptionLabel(opt)
		if opt != "" {
			cleaned = append(cleaned, opt)
		}
	}
	if len(cleaned) < min {
		return nil, ErrNoValidOptions
	}
	return cleaned, nil
}

// stripOptionLabel removes a leading "<Letter>) " label and trims the
// result. Shared between option cleaning and correct-answer
// normalization so the two stay comparable.
func stripOptionLabel(s string) string {
	return strings.TrimSpace(optionLabelRe.ReplaceAllString(strings.TrimSpace(s), ""))
}
