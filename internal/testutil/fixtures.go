package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/mseverin/brandforge/internal/domain"
)

// Project options
type ProjectOption func(*domain.Project)

func WithDescription(d string) ProjectOption {
	return func(p *domain.Project) {
		p.Description = d
	}
}

func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func NewTestStoryMessage(projectID string, role domain.Role, message string) *domain.StoryMessage {
	return &domain.StoryMessage{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Role:      role,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
}

func NewTestAsset(projectID string, t domain.AssetType, content string) *domain.Asset {
	return &domain.Asset{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Type:      t,
		Title:     domain.AssetLabels[t],
		Content:   content,
		Version:   1,
		CreatedAt: time.Now().UTC(),
	}
}

func NewTestBrandscript(projectID string, content map[string]any) *domain.Brandscript {
	return &domain.Brandscript{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
}
