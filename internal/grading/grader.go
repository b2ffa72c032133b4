// Package grading scores a student's submission against a quiz using
// per-question-type equivalence rules. Grading is a pure function of
// its inputs: it never fails, holds no state, and is safe to run
// concurrently across many submissions.
package grading

import (
	"math"
	"strings"

	"github.com/abhay/quizforge/internal/quiz"
)

// Config holds the grading vocabulary. The synonym sets are
// configuration rather than literals so the accepted spellings stay
// testable and extensible.
type Config struct {
	// TrueSynonyms and FalseSynonyms map free-form text to a boolean
	// truthiness class for true/false grading. Entries are compared
	// lower-cased and trimmed.
	TrueSynonyms  []string
	FalseSynonyms []string
}

// DefaultConfig returns the standard synonym sets.
func DefaultConfig() Config {
	return Config{
		TrueSynonyms:  []string{"true", "t", "yes", "y", "correct", "1"},
		FalseSynonyms: []string{"false", "f", "no", "n", "incorrect", "0"},
	}
}

// Grader matches answers and aggregates scores.
type Grader struct {
	trueSet  map[string]struct{}
	falseSet map[string]struct{}
}

// New creates a Grader from the given config.
func New(cfg Config) *Grader {
	return &Grader{
		trueSet:  toSet(cfg.TrueSynonyms),
		falseSet: toSet(cfg.FalseSynonyms),
	}
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(strings.TrimSpace(w))] = struct{}{}
	}
	return set
}

// Grade scores a submission against a quiz. Missing or garbage
// answers grade as incorrect, never as faults. The score is the
// earned share of total points as a percentage rounded to 2 decimal
// places; a zero-point quiz scores 0.
func (g *Grader) Grade(qz quiz.Quiz, sub quiz.Submission) quiz.Result {
	result := quiz.Result{
		QuizID:         qz.ID,
		TotalQuestions: len(qz.Questions),
		TimeTakenSec:   sub.TimeTakenSec,
		Feedback:       make([]quiz.Feedback, 0, len(qz.Questions)),
	}

	for _, q := range qz.Questions {
		answer := strings.TrimSpace(sub.Answers[q.ID])
		correct := g.isCorrect(q, answer)

		result.PointsPossible += q.Points
		earned := 0
		if correct {
			result.CorrectCount++
			earned = q.Points
			result.PointsEarned += earned
		}

		result.Feedback = append(result.Feedback, quiz.Feedback{
			QuestionID:     q.ID,
			Question:       q.Text,
			StudentAnswer:  answer,
			CorrectAnswer:  q.CorrectAnswer,
			Correct:        correct,
			Explanation:    q.Explanation,
			PointsEarned:   earned,
			PointsPossible: q.Points,
		})
	}

	if result.PointsPossible > 0 {
		pct := float64(result.PointsEarned) / float64(result.PointsPossible) * 100
		result.Score = math.Round(pct*100) / 100
	}

	return result
}

// isCorrect applies the per-type matching rule.
func (g *Grader) isCorrect(q quiz.Question, answer string) bool {
	if answer == "" {
		return false
	}

	submitted := strings.ToLower(answer)
	canonical := strings.ToLower(strings.TrimSpace(q.CorrectAnswer))

	switch q.Type {
	case quiz.TypeTrueFalse:
		return g.matchTrueFalse(submitted, canonical)
	case quiz.TypeMultipleChoice:
		return matchMultipleChoice(submitted, canonical, q.Options)
	default:
		return matchShortAnswer(submitted, canonical)
	}
}

// matchTrueFalse resolves both sides to a truthiness class and
// compares them. Input that resolves to neither class is incorrect.
func (g *Grader) matchTrueFalse(submitted, canonical string) bool {
	subClass, subOK := g.truthClass(submitted)
	canClass, canOK := g.truthClass(canonical)
	return subOK && canOK && subClass == canClass
}

// truthClass reports the boolean class of s and whether s resolved to
// a known synonym at all.
func (g *Grader) truthClass(s string) (value, ok bool) {
	if _, hit := g.trueSet[s]; hit {
		return true, true
	}
	if _, hit := g.falseSet[s]; hit {
		return false, true
	}
	return false, false
}

// matchMultipleChoice first matches the submission against the option
// list: when the stored correct answer is itself a raw option string,
// the matched option disambiguates. Otherwise it falls back to direct
// equality with the canonical answer.
func matchMultipleChoice(submitted, canonical string, options []string) bool {
	for _, opt := range options {
		opt = strings.ToLower(strings.TrimSpace(opt))
		if opt == submitted {
			return opt == canonical
		}
	}
	return submitted == canonical
}

// matchShortAnswer accepts an exact match or a submission that is a
// substring of the canonical answer. Empty submissions are rejected
// before this point.
func matchShortAnswer(submitted, canonical string) bool {
	return submitted == canonical || strings.Contains(canonical, submitted)
}
