package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

type attemptRepo struct {
	db *sql.DB
}

func (r *attemptRepo) Save(ctx context.Context, a *Attempt) error {
	answers, err := json.Marshal(a.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}
	feedback, err := json.Marshal(a.Result.Feedback)
	if err != nil {
		return fmt.Errorf("marshal feedback: %w", err)
	}

	now := time.Now()
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO attempts (quiz_id, answers_json, score, correct_count, total_count, points_earned, points_total, time_taken_sec, feedback_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.QuizID, string(answers), a.Result.Score, a.Result.CorrectCount,
		a.Result.TotalQuestions, a.Result.PointsEarned, a.Result.PointsPossible,
		a.Result.TimeTakenSec, string(feedback), now.Unix())
	if err != nil {
		return fmt.Errorf("save attempt for quiz %s: %w", a.QuizID, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("attempt id: %w", err)
	}
	a.ID = id
	a.CreatedAt = now
	return nil
}

func (r *attemptRepo) ListByQuiz(ctx context.Context, quizID string) ([]Attempt, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, quiz_id, answers_json, score, correct_count, total_count, points_earned, points_total, time_taken_sec, feedback_json, created_at
		FROM attempts WHERE quiz_id = ? ORDER BY created_at DESC, id DESC`, quizID)
	if err != nil {
		return nil, fmt.Errorf("list attempts for quiz %s: %w", quizID, err)
	}
	defer rows.Close()

	var attempts []Attempt
	for rows.Next() {
		var a Attempt
		var answers, feedback string
		var created int64
		if err := rows.Scan(&a.ID, &a.QuizID, &answers, &a.Result.Score,
			&a.Result.CorrectCount, &a.Result.TotalQuestions,
			&a.Result.PointsEarned, &a.Result.PointsPossible,
			&a.Result.TimeTakenSec, &feedback, &created); err != nil {
			return nil, fmt.Errorf("scan attempt row: %w", err)
		}
		if err := json.Unmarshal([]byte(answers), &a.Answers); err != nil {
			return nil, fmt.Errorf("decode answers for attempt %d: %w", a.ID, err)
		}
		if err := json.Unmarshal([]byte(feedback), &a.Result.Feedback); err != nil {
			return nil, fmt.Errorf("decode feedback for attempt %d: %w", a.ID, err)
		}
		a.Result.QuizID = a.QuizID
		a.CreatedAt = time.Unix(created, 0)
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}
