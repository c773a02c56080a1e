package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/mseverin/brandforge/internal/db"
	"github.com/mseverin/brandforge/internal/domain"
)

type SQLiteBrandscriptRepo struct {
	db db.DBTX
}

func NewSQLiteBrandscriptRepo(conn db.DBTX) *SQLiteBrandscriptRepo {
	return &SQLiteBrandscriptRepo{db: conn}
}

func (r *SQLiteBrandscriptRepo) Create(ctx context.Context, b *domain.Brandscript) error {
	content, err := json.Marshal(b.Content)
	if err != nil {
		return fmt.Errorf("encoding brandscript content: %w", err)
	}
	query := `INSERT INTO brandscripts (id, project_id, content_json, created_at) VALUES (?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query, b.ID, b.ProjectID, string(content), b.CreatedAt.Format(timeLayout))
	if err != nil {
		return fmt.Errorf("inserting brandscript: %w", err)
	}
	return nil
}

func (r *SQLiteBrandscriptRepo) Latest(ctx context.Context, projectID string) (*domain.Brandscript, error) {
	query := `SELECT id, project_id, content_json, created_at FROM brandscripts
		WHERE project_id = ? ORDER BY created_at DESC, rowid DESC LIMIT 1`
	row := r.db.QueryRowContext(ctx, query, projectID)

	var b domain.Brandscript
	var contentJSON, createdAt string
	err := row.Scan(&b.ID, &b.ProjectID, &contentJSON, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning brandscript: %w", err)
	}
	if err := json.Unmarshal([]byte(contentJSON), &b.Content); err != nil {
		return nil, fmt.Errorf("decoding brandscript content: %w", err)
	}
	b.CreatedAt = parseTime(createdAt)
	return &b, nil
}

func (r *SQLiteBrandscriptRepo) UpdateContent(ctx context.Context, id string, content map[string]any) error {
	data, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("encoding brandscript content: %w", err)
	}
	query := `UPDATE brandscripts SET content_json = ? WHERE id = ?`
	_, err = r.db.ExecContext(ctx, query, string(data), id)
	if err != nil {
		return fmt.Errorf("updating brandscript: %w", err)
	}
	return nil
}
