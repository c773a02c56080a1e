package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mseverin/brandforge/internal/db"
	"github.com/mseverin/brandforge/internal/domain"
)

type SQLiteAssetRepo struct {
	db db.DBTX
}

func NewSQLiteAssetRepo(conn db.DBTX) *SQLiteAssetRepo {
	return &SQLiteAssetRepo{db: conn}
}

func (r *SQLiteAssetRepo) Create(ctx context.Context, a *domain.Asset) error {
	query := `INSERT INTO assets (id, project_id, asset_type, title, content, version, parent_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	var parentID any
	if a.ParentID != nil {
		parentID = *a.ParentID
	}
	_, err := r.db.ExecContext(ctx, query,
		a.ID, a.ProjectID, string(a.Type), a.Title, a.Content, a.Version, parentID,
		a.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting asset: %w", err)
	}
	return nil
}

func (r *SQLiteAssetRepo) GetByID(ctx context.Context, id string) (*domain.Asset, error) {
	query := `SELECT id, project_id, asset_type, title, content, version, parent_id, created_at
		FROM assets WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	a, err := scanAsset(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("asset not found")
		}
		return nil, fmt.Errorf("scanning asset: %w", err)
	}
	return a, nil
}

func (r *SQLiteAssetRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Asset, error) {
	query := `SELECT id, project_id, asset_type, title, content, version, parent_id, created_at
		FROM assets WHERE project_id = ? ORDER BY created_at DESC, version DESC`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing assets: %w", err)
	}
	defer rows.Close()

	var assets []*domain.Asset
	for rows.Next() {
		a, err := scanAsset(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning asset row: %w", err)
		}
		assets = append(assets, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating assets: %w", err)
	}
	return assets, nil
}

func (r *SQLiteAssetRepo) CountByType(ctx context.Context, projectID string, t domain.AssetType) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM assets WHERE project_id = ? AND asset_type = ?`
	if err := r.db.QueryRowContext(ctx, query, projectID, string(t)).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting assets: %w", err)
	}
	return count, nil
}

func scanAsset(scan func(...any) error) (*domain.Asset, error) {
	var a domain.Asset
	var typeStr, createdAt string
	var parentID sql.NullString
	if err := scan(&a.ID, &a.ProjectID, &typeStr, &a.Title, &a.Content, &a.Version, &parentID, &createdAt); err != nil {
		return nil, err
	}
	a.Type = domain.AssetType(typeStr)
	if parentID.Valid {
		a.ParentID = &parentID.String
	}
	a.CreatedAt = parseTime(createdAt)
	return &a, nil
}
