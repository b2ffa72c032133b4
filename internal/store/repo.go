package store

import (
	"context"
	"errors"
	"time"

	"github.com/abhay/quizforge/internal/quiz"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// QuizInfo is the listing view of a stored quiz.
type QuizInfo struct {
	ID            string
	Topic         string
	Difficulty    string
	QuestionCount int
	TotalPoints   int
	CreatedAt     time.Time
}

// QuizRepo persists generated quizzes.
type QuizRepo interface {
	// Save stores a quiz. Saving an existing id overwrites it.
	Save(ctx context.Context, q quiz.Quiz) error

	// Get loads a quiz by id. Returns ErrNotFound if absent.
	Get(ctx context.Context, id string) (quiz.Quiz, error)

	// List returns quiz summaries, newest first, up to limit
	// (0 = unlimited).
	List(ctx context.Context, limit int) ([]QuizInfo, error)
}

// Attempt records one graded submission against a quiz.
type Attempt struct {
	ID        int64
	QuizID    string
	Answers   map[string]string
	Result    quiz.Result
	CreatedAt time.Time
}

// AttemptRepo persists grading attempts.
type AttemptRepo interface {
	// Save stores an attempt and fills in its assigned ID.
	Save(ctx context.Context, a *Attempt) error

	// ListByQuiz returns attempts for a quiz, newest first.
	ListByQuiz(ctx context.Context, quizID string) ([]Attempt, error)
}

// LLMRequestEventData captures one LLM API call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID        int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates token counts for one request purpose.
type LLMUsage struct {
	Purpose      string
	Requests     int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns recent events, newest first, up to limit
	// (0 = unlimited).
	QueryLLMEvents(ctx context.Context, limit int) ([]LLMEvent, error)

	// GetLLMEvent returns one event by id, or nil if absent.
	GetLLMEvent(ctx context.Context, id int64) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates request counts and token usage
	// per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)
}
