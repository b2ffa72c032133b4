package quizgen

import (
	"testing"

	"github.com/abhay/quizforge/internal/quiz"
)

const sampleResponse = `Here are your quiz questions:

Question 1: What is 2+2?
Type: multiple_choice
A) 3
B) 4
C) 5
D) 6
Correct Answer: B) 4
Explanation: Two plus two equals four.

---

Question 2: True or false: The Earth is flat.
Type: true_false
Correct Answer: false
Explanation: The Earth is an oblate spheroid.
`

func TestEngine_Generate(t *testing.T) {
	e := New(DefaultConfig(), discardLogger())
	qz := e.Generate(sampleResponse, nil, "math", "easy")

	if qz.QuestionCount() != 2 {
		t.Fatalf("expected 2 questions, got %d", qz.QuestionCount())
	}

	q1 := qz.Questions[0]
	if q1.ID != "q_1" || q1.Type != quiz.TypeMultipleChoice {
		t.Errorf("q_1 wrong: %+v", q1)
	}
	if len(q1.Options) != 4 || q1.Options[1] != "4" {
		t.Errorf("q_1 options wrong: %v", q1.Options)
	}
	if q1.CorrectAnswer != "4" {
		t.Errorf("q_1 answer %q, want 4", q1.CorrectAnswer)
	}

	q2 := qz.Questions[1]
	if q2.ID != "q_2" || q2.Type != quiz.TypeTrueFalse {
		t.Errorf("q_2 wrong: %+v", q2)
	}
	if q2.CorrectAnswer != "false" {
		t.Errorf("q_2 answer %q, want false", q2.CorrectAnswer)
	}

	if qz.TotalPoints != 2 {
		t.Errorf("got total points %d, want 2", qz.TotalPoints)
	}
	// 1.5 + 0.5 = 2.0 minutes.
	if qz.EstimatedTimeMinutes != 2 {
		t.Errorf("got estimated time %d, want 2", qz.EstimatedTimeMinutes)
	}
}

func TestEngine_Generate_DropsBadMultipleChoice(t *testing.T) {
	raw := `Question 1: Pick one?
Type: multiple_choice
A) only option
Correct Answer: only option

Question 2: True or false: this one survives.
Correct Answer: true
`
	e := New(DefaultConfig(), discardLogger())
	qz := e.Generate(raw, nil, "t", "easy")

	if qz.QuestionCount() != 1 {
		t.Fatalf("expected 1 question, got %d", qz.QuestionCount())
	}
	if qz.Questions[0].Type != quiz.TypeTrueFalse {
		t.Errorf("wrong survivor: %+v", qz.Questions[0])
	}
}

func TestEngine_Generate_EmptyInput(t *testing.T) {
	e := New(DefaultConfig(), discardLogger())
	qz := e.Generate("", nil, "t", "easy")

	if !qz.Empty() {
		t.Fatalf("expected empty quiz, got %d questions", qz.QuestionCount())
	}
	if qz.TotalPoints != 0 {
		t.Errorf("got total points %d, want 0", qz.TotalPoints)
	}
	if qz.EstimatedTimeMinutes != 1 {
		t.Errorf("got estimated time %d, want 1", qz.EstimatedTimeMinutes)
	}
}

func TestEngine_Generate_GarbageInput(t *testing.T) {
	e := New(DefaultConfig(), discardLogger())
	qz := e.Generate("I'm sorry, I can't help with that request.", nil, "t", "easy")
	if !qz.Empty() {
		t.Errorf("expected empty quiz from refusal text, got %d questions", qz.QuestionCount())
	}
}

func TestEngine_Generate_RespectsAllowList(t *testing.T) {
	e := New(DefaultConfig(), discardLogger())
	allowed := []quiz.Type{quiz.TypeShortAnswer}
	qz := e.Generate(sampleResponse, allowed, "t", "easy")

	for _, q := range qz.Questions {
		if q.Type != quiz.TypeShortAnswer {
			t.Errorf("question %s has type %q outside the allow-list", q.ID, q.Type)
		}
	}
}

func TestEngine_Generate_Deterministic(t *testing.T) {
	e := New(DefaultConfig(), discardLogger())
	a := e.Generate(sampleResponse, nil, "t", "easy")
	b := e.Generate(sampleResponse, nil, "t", "easy")

	if a.QuestionCount() != b.QuestionCount() {
		t.Fatalf("question counts differ: %d vs %d", a.QuestionCount(), b.QuestionCount())
	}
	for i := range a.Questions {
		if a.Questions[i].Type != b.Questions[i].Type {
			t.Errorf("question %d classified differently across runs", i)
		}
	}
}

func TestDefaultConfig_Values(t *testing.T) {
	cfg := DefaultConfig()
	if len(cfg.DefaultAllowedTypes) != 2 {
		t.Errorf("expected 2 default types, got %v", cfg.DefaultAllowedTypes)
	}
	if cfg.MinOptions != 2 {
		t.Errorf("expected MinOptions 2, got %d", cfg.MinOptions)
	}
	if cfg.Points[quiz.TypeShortAnswer] != 2 {
		t.Errorf("expected short answer worth 2 points, got %d", cfg.Points[quiz.TypeShortAnswer])
	}
	if cfg.MinutesPerQuestion[quiz.TypeShortAnswer] != 3.0 {
		t.Errorf("expected 3.0 minutes for short answer, got %f", cfg.MinutesPerQuestion[quiz.TypeShortAnswer])
	}
}
