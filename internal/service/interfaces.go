package service

import (
	"context"

	"github.com/mseverin/brandforge/internal/coverage"
	"github.com/mseverin/brandforge/internal/domain"
)

// ProjectService manages project lifecycle.
type ProjectService interface {
	Create(ctx context.Context, name, description string) (*domain.Project, error)
	Get(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.ProjectSummary, error)
	Update(ctx context.Context, id, name, description string) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
}

// DiscoveryService manages the answer store and its coverage view. The two
// write paths differ deliberately: wizard submissions store values verbatim,
// extracted fields are trimmed and filtered against the schema.
type DiscoveryService interface {
	// SubmitStepAnswers stores wizard answers for one step as given and
	// returns the number of rows written.
	SubmitStepAnswers(ctx context.Context, projectID string, stepNumber int, answers map[string]string) (int, error)

	// SaveExtractedFields reconciles model-extracted fields into the answer
	// store: unknown keys and blank values are dropped, kept values are
	// trimmed. Returns the number of rows written.
	SaveExtractedFields(ctx context.Context, projectID string, fields map[string]string) (int, error)

	Answers(ctx context.Context, projectID string) ([]*domain.Answer, error)
	Coverage(ctx context.Context, projectID string) (coverage.Snapshot, error)
}

// StoryTurn is the outcome of one story session exchange.
type StoryTurn struct {
	Reply        string
	ParsedFields map[string]string
	SavedFields  int
	Coverage     coverage.Snapshot
}

// StoryService runs the free-form discovery interview.
type StoryService interface {
	SubmitTurn(ctx context.Context, projectID, message string) (*StoryTurn, error)
	Transcript(ctx context.Context, projectID string) ([]*domain.StoryMessage, error)
}

// ImportResult reports what an import extracted and how much of it was saved.
type ImportResult struct {
	Extracted map[string]any
	Saved     int
	Coverage  coverage.Snapshot
}

// ImportService extracts discovery answers from pasted freeform content.
type ImportService interface {
	ImportFreeform(ctx context.Context, projectID, content string) (*ImportResult, error)
}

// BrandscriptService generates and maintains SB7 brandscripts.
type BrandscriptService interface {
	Generate(ctx context.Context, projectID string) (*domain.Brandscript, error)
	Latest(ctx context.Context, projectID string) (*domain.Brandscript, error)
	// Update replaces the latest brandscript's content, or creates one when
	// the project has none yet.
	Update(ctx context.Context, projectID string, content map[string]any) error
}

// AssetListItem pairs an asset with how many versions exist of its type.
type AssetListItem struct {
	Asset        *domain.Asset
	VersionCount int
}

// AssetService generates marketing assets from the brandscript and refines
// them conversationally.
type AssetService interface {
	Generate(ctx context.Context, projectID string, assetType domain.AssetType, platform string) (*domain.Asset, error)
	// Refine runs one refinement exchange and stores the reply as a new
	// version linked to the refined asset.
	Refine(ctx context.Context, projectID, assetID, message string) (*domain.Asset, error)
	Get(ctx context.Context, id string) (*domain.Asset, error)
	List(ctx context.Context, projectID string) ([]AssetListItem, error)
	Conversation(ctx context.Context, assetID string) ([]*domain.ConversationEntry, error)
}
