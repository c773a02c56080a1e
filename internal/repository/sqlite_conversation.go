package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mseverin/brandforge/internal/db"
	"github.com/mseverin/brandforge/internal/domain"
)

type SQLiteConversationRepo struct {
	db db.DBTX
}

func NewSQLiteConversationRepo(conn db.DBTX) *SQLiteConversationRepo {
	return &SQLiteConversationRepo{db: conn}
}

func (r *SQLiteConversationRepo) Append(ctx context.Context, e *domain.ConversationEntry) error {
	var assetID any
	if e.AssetID != nil {
		assetID = *e.AssetID
	}
	query := `INSERT INTO conversations (id, project_id, asset_id, role, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.ProjectID, assetID, string(e.Role), e.Message, e.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting conversation entry: %w", err)
	}
	return nil
}

func (r *SQLiteConversationRepo) ListByAsset(ctx context.Context, assetID string) ([]*domain.ConversationEntry, error) {
	query := `SELECT id, project_id, asset_id, role, message, created_at
		FROM conversations WHERE asset_id = ? ORDER BY created_at ASC, rowid ASC`
	rows, err := r.db.QueryContext(ctx, query, assetID)
	if err != nil {
		return nil, fmt.Errorf("listing conversation entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.ConversationEntry
	for rows.Next() {
		var e domain.ConversationEntry
		var roleStr, createdAt string
		var aid sql.NullString
		if err := rows.Scan(&e.ID, &e.ProjectID, &aid, &roleStr, &e.Message, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning conversation entry: %w", err)
		}
		if aid.Valid {
			e.AssetID = &aid.String
		}
		e.Role = domain.Role(roleStr)
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating conversation entries: %w", err)
	}
	return entries, nil
}
