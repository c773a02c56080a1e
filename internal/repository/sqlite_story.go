package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/mseverin/brandforge/internal/db"
	"github.com/mseverin/brandforge/internal/domain"
)

// SQLiteStoryRepo persists the free-form session transcript. Rows are
// append-only; replay order is creation order.
type SQLiteStoryRepo struct {
	db db.DBTX
}

func NewSQLiteStoryRepo(conn db.DBTX) *SQLiteStoryRepo {
	return &SQLiteStoryRepo{db: conn}
}

func (r *SQLiteStoryRepo) Append(ctx context.Context, m *domain.StoryMessage) error {
	var parsed any
	if len(m.ParsedFields) > 0 {
		data, err := json.Marshal(m.ParsedFields)
		if err != nil {
			return fmt.Errorf("encoding parsed fields: %w", err)
		}
		parsed = string(data)
	}
	query := `INSERT INTO story_messages (id, project_id, role, message, parsed_fields, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.ProjectID, string(m.Role), m.Message, parsed, m.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting story message: %w", err)
	}
	return nil
}

func (r *SQLiteStoryRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.StoryMessage, error) {
	query := `SELECT id, project_id, role, message, parsed_fields, created_at
		FROM story_messages WHERE project_id = ? ORDER BY created_at ASC, rowid ASC`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing story messages: %w", err)
	}
	defer rows.Close()

	var messages []*domain.StoryMessage
	for rows.Next() {
		var m domain.StoryMessage
		var roleStr, createdAt string
		var parsed sql.NullString
		if err := rows.Scan(&m.ID, &m.ProjectID, &roleStr, &m.Message, &parsed, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning story message: %w", err)
		}
		m.Role = domain.Role(roleStr)
		if parsed.Valid && parsed.String != "" {
			// A corrupt annotation only loses the display badge, never the turn.
			_ = json.Unmarshal([]byte(parsed.String), &m.ParsedFields)
		}
		m.CreatedAt = parseTime(createdAt)
		messages = append(messages, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating story messages: %w", err)
	}
	return messages, nil
}
