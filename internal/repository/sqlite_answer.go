package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mseverin/brandforge/internal/db"
	"github.com/mseverin/brandforge/internal/domain"
)

// SQLiteAnswerRepo implements AnswerRepo. The upsert keys on the
// UNIQUE(project_id, question_key) constraint: a second write for an
// existing key overwrites answer and step_number in place, never creating
// a duplicate row.
type SQLiteAnswerRepo struct {
	db db.DBTX
}

func NewSQLiteAnswerRepo(conn db.DBTX) *SQLiteAnswerRepo {
	return &SQLiteAnswerRepo{db: conn}
}

const upsertAnswerQuery = `INSERT INTO discovery_answers (id, project_id, step_number, question_key, answer, created_at)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT(project_id, question_key) DO UPDATE SET answer = excluded.answer, step_number = excluded.step_number`

func (r *SQLiteAnswerRepo) UpsertBatch(ctx context.Context, projectID string, updates []domain.AnswerUpdate) (int, error) {
	count := 0
	for _, u := range updates {
		_, err := r.db.ExecContext(ctx, upsertAnswerQuery,
			uuid.New().String(),
			projectID,
			u.StepNumber,
			u.Key,
			u.Value,
			nowUTC(),
		)
		if err != nil {
			return 0, fmt.Errorf("upserting answer %s: %w", u.Key, err)
		}
		count++
	}
	return count, nil
}

func (r *SQLiteAnswerRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Answer, error) {
	query := `SELECT id, project_id, step_number, question_key, answer, created_at
		FROM discovery_answers WHERE project_id = ? ORDER BY step_number, question_key`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing answers: %w", err)
	}
	defer rows.Close()

	var answers []*domain.Answer
	for rows.Next() {
		var a domain.Answer
		var createdAt string
		if err := rows.Scan(&a.ID, &a.ProjectID, &a.StepNumber, &a.Key, &a.Value, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning answer row: %w", err)
		}
		a.CreatedAt = parseTime(createdAt)
		answers = append(answers, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating answers: %w", err)
	}
	return answers, nil
}

func (r *SQLiteAnswerRepo) MapByProject(ctx context.Context, projectID string) (map[string]string, error) {
	query := `SELECT question_key, answer FROM discovery_answers WHERE project_id = ?`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("reading answer map: %w", err)
	}
	defer rows.Close()

	m := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scanning answer pair: %w", err)
		}
		m[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating answer map: %w", err)
	}
	return m, nil
}
