package quizgen

import (
	"math"

	"github.com/google/uuid"

	"github.com/abhay/quizforge/internal/quiz"
)

// Compose assembles committed questions into an immutable quiz with
// derived totals. Composition never fails: an empty question list
// yields a valid, degenerate quiz the caller must handle (typically by
// regenerating).
func Compose(questions []quiz.Question, topic, difficulty string, cfg Config) quiz.Quiz {
	total := 0
	for _, q := range questions {
		total += q.Points
	}

	return quiz.Quiz{
		ID:                   uuid.NewString(),
		Topic:                topic,
		Difficulty:           difficulty,
		Questions:            questions,
		EstimatedTimeMinutes: estimateMinutes(questions, cfg),
		TotalPoints:          total,
	}
}

// estimateMinutes sums the per-type time table, rounded up to whole
// minutes with a floor of 1.
func estimateMinutes(questions []quiz.Question, cfg Config) int {
	var total float64
	for _, q := range questions {
		if m, ok := cfg.MinutesPerQuestion[q.Type]; ok {
			total += m
		} else {
			total += cfg.MinutesPerQuestion[quiz.TypeMultipleChoice]
		}
	}

	minutes := int(math.Ceil(total))
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
