package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/abhay/quizforge/internal/quiz"
)

type quizRepo struct {
	db *sql.DB
}

func (r *quizRepo) Save(ctx context.Context, q quiz.Quiz) error {
	questions, err := json.Marshal(q.Questions)
	if err != nil {
		return fmt.Errorf("marshal questions: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO quizzes (id, topic, difficulty, question_count, total_points, estimated_time, questions_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			topic = excluded.topic,
			difficulty = excluded.difficulty,
			question_count = excluded.question_count,
			total_points = excluded.total_points,
			estimated_time = excluded.estimated_time,
			questions_json = excluded.questions_json`,
		q.ID, q.Topic, q.Difficulty, len(q.Questions), q.TotalPoints,
		q.EstimatedTimeMinutes, string(questions), time.Now().Unix())
	if err != nil {
		return fmt.Errorf("save quiz %s: %w", q.ID, err)
	}
	return nil
}

func (r *quizRepo) Get(ctx context.Context, id string) (quiz.Quiz, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, topic, difficulty, total_points, estimated_time, questions_json
		FROM quizzes WHERE id = ?`, id)

	var q quiz.Quiz
	var questions string
	err := row.Scan(&q.ID, &q.Topic, &q.Difficulty, &q.TotalPoints, &q.EstimatedTimeMinutes, &questions)
	if errors.Is(err, sql.ErrNoRows) {
		return quiz.Quiz{}, fmt.Errorf("quiz %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return quiz.Quiz{}, fmt.Errorf("load quiz %s: %w", id, err)
	}

	if err := json.Unmarshal([]byte(questions), &q.Questions); err != nil {
		return quiz.Quiz{}, fmt.Errorf("decode questions for quiz %s: %w", id, err)
	}
	return q, nil
}

func (r *quizRepo) List(ctx context.Context, limit int) ([]QuizInfo, error) {
	query := `
		SELECT id, topic, difficulty, question_count, total_points, created_at
		FROM quizzes ORDER BY created_at DESC, id`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list quizzes: %w", err)
	}
	defer rows.Close()

	var infos []QuizInfo
	for rows.Next() {
		var info QuizInfo
		var created int64
		if err := rows.Scan(&info.ID, &info.Topic, &info.Difficulty,
			&info.QuestionCount, &info.TotalPoints, &created); err != nil {
			return nil, fmt.Errorf("scan quiz row: %w", err)
		}
		info.CreatedAt = time.Unix(created, 0)
		infos = append(infos, info)
	}
	return infos, rows.Err()
}
