package quizgen

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhay/quizforge/internal/llm"
	"github.com/abhay/quizforge/internal/quiz"
)

func newTestGenerator(provider llm.Provider) *Generator {
	engine := New(DefaultConfig(), discardLogger())
	return NewGenerator(provider, engine, DefaultGeneratorConfig())
}

func TestGenerator_Generate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(sampleResponse),
	})
	gen := newTestGenerator(mock)

	qz, err := gen.Generate(context.Background(), GenerateRequest{
		Topic:         "math",
		Difficulty:    "easy",
		QuestionCount: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if qz.QuestionCount() != 2 {
		t.Errorf("expected 2 questions, got %d", qz.QuestionCount())
	}
	if qz.Topic != "math" || qz.Difficulty != "easy" {
		t.Errorf("request metadata not carried: %+v", qz)
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 provider call, got %d", mock.CallCount())
	}
}

func TestGenerator_PromptContents(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("")})
	gen := newTestGenerator(mock)

	_, err := gen.Generate(context.Background(), GenerateRequest{
		Topic:         "photosynthesis",
		Difficulty:    "hard",
		QuestionCount: 3,
		Types:         []quiz.Type{quiz.TypeShortAnswer},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := mock.Calls[0]
	if len(req.Messages) != 1 || req.Messages[0].Role != llm.RoleUser {
		t.Fatalf("expected a single user message, got %+v", req.Messages)
	}
	prompt := req.Messages[0].Content
	for _, want := range []string{"3", "hard", "photosynthesis", "short_answer", "Question X:", "Correct Answer:"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
	if req.MaxTokens != 2048 {
		t.Errorf("got MaxTokens %d, want 2048", req.MaxTokens)
	}
}

func TestGenerator_DefaultQuestionCount(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("")})
	gen := newTestGenerator(mock)

	_, err := gen.Generate(context.Background(), GenerateRequest{Topic: "t", Difficulty: "easy"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "Generate 5 ") {
		t.Errorf("expected default count of 5 in prompt:\n%s", prompt)
	}
}

func TestGenerator_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	gen := newTestGenerator(mock)

	_, err := gen.Generate(context.Background(), GenerateRequest{Topic: "t", Difficulty: "easy"})
	if err == nil {
		t.Fatal("expected provider error to surface")
	}
}

func TestGenerator_MalformedTextIsNotAnError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("no questions in here at all"),
	})
	gen := newTestGenerator(mock)

	qz, err := gen.Generate(context.Background(), GenerateRequest{Topic: "t", Difficulty: "easy"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !qz.Empty() {
		t.Errorf("expected empty quiz, got %d questions", qz.QuestionCount())
	}
}
