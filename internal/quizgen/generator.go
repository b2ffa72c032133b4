package quizgen

import (
	"context"
	"fmt"

	"github.com/abhay/quizforge/internal/llm"
	"github.com/abhay/quizforge/internal/quiz"
)

// GenerateRequest holds the caller's quiz parameters.
type GenerateRequest struct {
	Topic      string
	Difficulty string

	// QuestionCount is how many questions to ask the model for. The
	// engine may commit fewer if blocks fail validation.
	QuestionCount int

	// Types is the allow-list in preference order. Empty selects the
	// engine's default types.
	Types []quiz.Type
}

// GeneratorConfig controls the LLM call made by the Generator.
type GeneratorConfig struct {
	MaxTokens   int
	Temperature float64

	// DefaultQuestionCount applies when a request leaves QuestionCount
	// at zero.
	DefaultQuestionCount int
}

// DefaultGeneratorConfig returns the recommended generation settings.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		MaxTokens:            2048,
		Temperature:          0.7,
		DefaultQuestionCount: 5,
	}
}

// Generator produces quizzes end to end: prompt → provider → engine.
// The provider call is the only fallible step; everything after the
// text is resolved is the pure engine pipeline.
type Generator struct {
	provider llm.Provider
	engine   *Engine
	cfg      GeneratorConfig
}

// NewGenerator creates a Generator backed by the given provider and
// engine.
func NewGenerator(provider llm.Provider, engine *Engine, cfg GeneratorConfig) *Generator {
	return &Generator{provider: provider, engine: engine, cfg: cfg}
}

// Generate asks the provider for quiz text and parses it. A provider
// failure is returned as-is; malformed provider output is not an
// error, it degrades to a quiz with fewer (possibly zero) questions.
func (g *Generator) Generate(ctx context.Context, req GenerateRequest) (quiz.Quiz, error) {
	ctx = llm.WithPurpose(ctx, "quiz-gen")

	count := req.QuestionCount
	if count <= 0 {
		count = g.cfg.DefaultQuestionCount
	}

	types := req.Types
	if len(types) == 0 {
		types = g.engine.cfg.DefaultAllowedTypes
	}

	resp, err := g.provider.Generate(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPrompt(req.Topic, req.Difficulty, count, types)},
		},
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return quiz.Quiz{}, fmt.Errorf("LLM generation failed: %w", err)
	}

	return g.engine.Generate(string(resp.Content), types, req.Topic, req.Difficulty), nil
}
