package quizgen

import (
	"log/slog"

	"github.com/abhay/quizforge/internal/quiz"
)

// Engine runs the full text-to-quiz pipeline. It is stateless and safe
// for concurrent use.
type Engine struct {
	cfg Config
	log *slog.Logger
}

// New creates an Engine. A nil logger falls back to slog.Default.
func New(cfg Config, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{cfg: cfg, log: log}
}

// Generate parses raw provider text into a quiz restricted to the
// allowed types. It never fails on malformed input: unusable blocks
// are dropped and the worst case is a zero-question quiz. An empty
// allow-list selects the configured default types.
func (e *Engine) Generate(raw string, allowed []quiz.Type, topic, difficulty string) quiz.Quiz {
	if len(allowed) == 0 {
		allowed = e.cfg.DefaultAllowedTypes
	}

	blocks := Assemble(Lines(raw))

	questions := make([]quiz.Question, 0, len(blocks))
	for _, b := range blocks {
		if q, ok := validate(b, allowed, e.cfg, e.log); ok {
			questions = append(questions, q)
		}
	}

	return Compose(questions, topic, difficulty, e.cfg)
}
