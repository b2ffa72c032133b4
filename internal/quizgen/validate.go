package quizgen

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/abhay/quizforge/internal/quiz"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// terminalPunctuation are the characters a normalized question prompt
// may end with; "?" is appended when none is present.
const terminalPunctuation = "?.!:"

// validate turns one provisional block into zero or one committed
// question. Malformed blocks are dropped with a warning, never
// surfaced as errors: a question is either fully populated or absent.
func validate(b Block, allowed []quiz.Type, cfg Config, log *slog.Logger) (quiz.Question, bool) {
	if strings.TrimSpace(b.Text) == "" || strings.TrimSpace(b.CorrectAnswer) == "" {
		log.Warn("skipping question block: missing required fields", "block", b.ID)
		return quiz.Question{}, false
	}

	qtype := Classify(b, allowed, cfg)

	var options []string
	if qtype == quiz.TypeMultipleChoice {
		cleaned, err := SanitizeOptions(b.RawOptions, cfg.MinOptions)
		if err != nil {
			log.Warn("skipping question block: invalid multiple choice options", "block", b.ID)
			return quiz.Question{}, false
		}
		options = cleaned
	}

	explanation := b.Explanation
	if explanation == "" {
		explanation = cfg.PlaceholderExplanation
	}

	return quiz.Question{
		ID:            b.ID,
		Text:          normalizeQuestionText(b.Text),
		Type:          qtype,
		Options:       options,
		CorrectAnswer: stripOptionLabel(b.CorrectAnswer),
		Explanation:   explanation,
		Points:        pointsFor(qtype, cfg),
	}, true
}

// normalizeQuestionText collapses whitespace runs and guarantees
// terminal punctuation.
func normalizeQuestionText(text string) string {
	cleaned := whitespaceRe.ReplaceAllString(strings.TrimSpace(text), " ")
	if cleaned != "" && !strings.ContainsRune(terminalPunctuation, rune(cleaned[len(cleaned)-1])) {
		cleaned += "?"
	}
	return cleaned
}

func pointsFor(t quiz.Type, cfg Config) int {
	if p, ok := cfg.Points[t]; ok {
		return p
	}
	return 1
}
