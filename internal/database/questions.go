package database

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// QuestionRow is one stored question and its generated answer.
type QuestionRow struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
}

// SaveQuestion stores a question/answer pair. Returns the new row id.
func (d *DB) SaveQuestion(question, answer string) (string, error) {
	id := uuid.NewString()
	_, err := d.Exec(`
		INSERT INTO questions (id, created_at, question, answer)
		VALUES (?, ?, ?, ?)`,
		id,
		time.Now().UTC().Format(time.RFC3339),
		question,
		answer,
	)
	if err != nil {
		return "", fmt.Errorf("failed to save question: %w", err)
	}
	return id, nil
}

// ListQuestions returns stored questions, newest first.
func (d *DB) ListQuestions() ([]QuestionRow, error) {
	rows, err := d.Query(`
		SELECT id, created_at, question, answer
		FROM questions ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	defer rows.Close()

	var result []QuestionRow
	for rows.Next() {
		var q QuestionRow
		var createdAt string
		if err := rows.Scan(&q.ID, &createdAt, &q.Question, &q.Answer); err != nil {
			return nil, fmt.Errorf("failed to scan question row: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			q.CreatedAt = t
		}
		result = append(result, q)
	}
	return result, rows.Err()
}
