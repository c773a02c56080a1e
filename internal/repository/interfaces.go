package repository

import (
	"context"

	"github.com/mseverin/brandforge/internal/domain"
)

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.ProjectSummary, error)
	Update(ctx context.Context, p *domain.Project) error
	// Touch bumps the project's updated_at marker. Called inside the same
	// transaction as any answer batch that modifies the project.
	Touch(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type AnswerRepo interface {
	// UpsertBatch applies the updates with conflict-overwrite semantics on
	// (project_id, question_key) and returns the number of rows written.
	// Callers wrap it in a UnitOfWork together with ProjectRepo.Touch.
	UpsertBatch(ctx context.Context, projectID string, updates []domain.AnswerUpdate) (int, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Answer, error)
	// MapByProject returns the current key→value view used by coverage.
	MapByProject(ctx context.Context, projectID string) (map[string]string, error)
}

type BrandscriptRepo interface {
	Create(ctx context.Context, b *domain.Brandscript) error
	Latest(ctx context.Context, projectID string) (*domain.Brandscript, error)
	UpdateContent(ctx context.Context, id string, content map[string]any) error
}

type AssetRepo interface {
	Create(ctx context.Context, a *domain.Asset) error
	GetByID(ctx context.Context, id string) (*domain.Asset, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Asset, error)
	CountByType(ctx context.Context, projectID string, t domain.AssetType) (int, error)
}

type ConversationRepo interface {
	Append(ctx context.Context, e *domain.ConversationEntry) error
	ListByAsset(ctx context.Context, assetID string) ([]*domain.ConversationEntry, error)
}

type StoryRepo interface {
	Append(ctx context.Context, m *domain.StoryMessage) error
	// ListByProject returns the transcript in chronological order.
	ListByProject(ctx context.Context, projectID string) ([]*domain.StoryMessage, error)
}
