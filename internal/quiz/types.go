// Package quiz defines the core domain types shared by generation,
// grading, persistence, and the CLI. JSON field names follow the
// wire format used by the study API.
package quiz

import (
	"fmt"
	"strings"
)

// Type is the closed set of question types.
type Type string

const (
	TypeMultipleChoice Type = "multiple_choice"
	TypeTrueFalse      Type = "true_false"
	TypeShortAnswer    Type = "short_answer"
)

// AllTypes lists every valid question type.
func AllTypes() []Type {
	return []Type{TypeMultipleChoice, TypeTrueFalse, TypeShortAnswer}
}

// Valid reports whether t is one of the known question types.
func (t Type) Valid() bool {
	switch t {
	case TypeMultipleChoice, TypeTrueFalse, TypeShortAnswer:
		return true
	}
	return false
}

// ParseType converts a string such as "multiple_choice" into a Type.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown question type %q", s)
	}
	return t, nil
}

// Question is a single committed quiz question. A Question is either
// fully populated or was discarded during validation; there is no
// partially-valid state.
type Question struct {
	// ID is unique within the owning quiz, e.g. "q_1".
	ID string `json:"id"`

	// Text is the normalized prompt. Non-empty, ends with terminal
	// punctuation.
	Text string `json:"question"`

	Type Type `json:"type"`

	// Options is present with at least 2 entries only for
	// multiple_choice questions, with label prefixes already stripped.
	Options []string `json:"options,omitempty"`

	// CorrectAnswer is the normalized canonical answer. For
	// multiple_choice it corresponds to one of Options.
	CorrectAnswer string `json:"correct_answer"`

	Explanation string `json:"explanation"`

	// Points is at least 1. Short-answer questions are worth more
	// because they are harder to get right.
	Points int `json:"points"`
}

// Quiz is an immutable set of questions produced by one generation
// request. Regeneration produces a new Quiz with a new ID.
type Quiz struct {
	ID         string     `json:"quiz_id"`
	Topic      string     `json:"topic"`
	Difficulty string     `json:"difficulty"`
	Questions  []Question `json:"questions"`

	// EstimatedTimeMinutes and TotalPoints are derived from Questions
	// at composition time and never independently mutated.
	EstimatedTimeMinutes int `json:"estimated_time"`
	TotalPoints          int `json:"total_points"`
}

// QuestionCount returns the number of questions in the quiz.
func (q Quiz) QuestionCount() int { return len(q.Questions) }

// Empty reports whether the quiz is degenerate (zero questions
// survived validation). Callers should treat this as a retryable
// condition, not a success.
func (q Quiz) Empty() bool { return len(q.Questions) == 0 }

// Submission binds a quiz to a student's raw answers, keyed by
// question ID. Missing keys grade as incorrect.
type Submission struct {
	QuizID  string            `json:"quiz_id"`
	Answers map[string]string `json:"answers"`

	// TimeTakenSec is the elapsed time in seconds, if the caller
	// tracked it.
	TimeTakenSec int `json:"time_taken,omitempty"`
}

// Feedback is the per-question outcome inside a Result.
type Feedback struct {
	QuestionID     string `json:"question_id"`
	Question       string `json:"question"`
	StudentAnswer  string `json:"student_answer"`
	CorrectAnswer  string `json:"correct_answer"`
	Correct        bool   `json:"is_correct"`
	Explanation    string `json:"explanation"`
	PointsEarned   int    `json:"points_earned"`
	PointsPossible int    `json:"points_possible"`
}

// Result is an immutable grading snapshot: a pure function of a Quiz
// and a Submission.
type Result struct {
	QuizID         string     `json:"quiz_id"`
	Score          float64    `json:"score"`
	CorrectCount   int        `json:"correct_answers"`
	TotalQuestions int        `json:"total_questions"`
	PointsEarned   int        `json:"points_earned"`
	PointsPossible int        `json:"points_possible"`
	TimeTakenSec   int        `json:"time_taken,omitempty"`
	Feedback       []Feedback `json:"feedback"`
}
