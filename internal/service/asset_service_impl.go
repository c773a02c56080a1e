package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mseverin/brandforge/internal/domain"
	"github.com/mseverin/brandforge/internal/intelligence"
	"github.com/mseverin/brandforge/internal/llm"
	"github.com/mseverin/brandforge/internal/repository"
)

type assetService struct {
	assets        repository.AssetRepo
	brandscripts  repository.BrandscriptRepo
	answers       repository.AnswerRepo
	conversations repository.ConversationRepo
	client        llm.Client
}

func NewAssetService(
	assets repository.AssetRepo,
	brandscripts repository.BrandscriptRepo,
	answers repository.AnswerRepo,
	conversations repository.ConversationRepo,
	client llm.Client,
) AssetService {
	return &assetService{
		assets:        assets,
		brandscripts:  brandscripts,
		answers:       answers,
		conversations: conversations,
		client:        client,
	}
}

func (s *assetService) Generate(ctx context.Context, projectID string, assetType domain.AssetType, platform string) (*domain.Asset, error) {
	if !domain.IsValidAssetType(assetType) {
		return nil, fmt.Errorf("unknown asset type %q", assetType)
	}

	brandscript, err := s.latestBrandscriptContent(ctx, projectID)
	if err != nil {
		return nil, err
	}
	answerMap, err := s.answers.MapByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	versions, err := s.assets.CountByType(ctx, projectID, assetType)
	if err != nil {
		return nil, err
	}

	systemPrompt := intelligence.SystemPrompt(intelligence.PromptInput{
		Task:        llm.TaskAsset,
		AssetType:   assetType,
		Answers:     answerMap,
		Brandscript: brandscript,
		Platform:    platform,
	})

	userPrompt := intelligence.GenerationPrompt(assetType)
	if platform != "" {
		userPrompt += fmt.Sprintf(" Target platform: %s.", platform)
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskAsset,
		SystemPrompt: systemPrompt,
		UserPrompt:   userPrompt,
	})
	if err != nil {
		return nil, err
	}

	a := &domain.Asset{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Type:      assetType,
		Title:     assetTitle(assetType),
		Content:   resp.Text,
		Version:   versions + 1,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.assets.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *assetService) Refine(ctx context.Context, projectID, assetID, message string) (*domain.Asset, error) {
	asset, err := s.assets.GetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if asset.ProjectID != projectID {
		return nil, fmt.Errorf("asset not found")
	}

	brandscript, err := s.latestBrandscriptContent(ctx, projectID)
	if err != nil {
		return nil, err
	}

	entries, err := s.conversations.ListByAsset(ctx, assetID)
	if err != nil {
		return nil, err
	}
	history := make([]llm.Message, len(entries))
	for i, e := range entries {
		history[i] = llm.Message{Role: string(e.Role), Content: e.Message}
	}

	if err := s.conversations.Append(ctx, &domain.ConversationEntry{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		AssetID:   &assetID,
		Role:      domain.RoleUser,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		return nil, err
	}

	systemPrompt := intelligence.SystemPrompt(intelligence.PromptInput{
		Task:         llm.TaskRefine,
		AssetType:    asset.Type,
		Brandscript:  brandscript,
		CurrentAsset: asset.Content,
	})

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskRefine,
		SystemPrompt: systemPrompt,
		History:      history,
		UserPrompt:   message,
	})
	if err != nil {
		return nil, err
	}

	if err := s.conversations.Append(ctx, &domain.ConversationEntry{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		AssetID:   &assetID,
		Role:      domain.RoleAssistant,
		Message:   resp.Text,
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		return nil, err
	}

	versions, err := s.assets.CountByType(ctx, projectID, asset.Type)
	if err != nil {
		return nil, err
	}

	refined := &domain.Asset{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Type:      asset.Type,
		Title:     asset.Title,
		Content:   resp.Text,
		Version:   versions + 1,
		ParentID:  &asset.ID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.assets.Create(ctx, refined); err != nil {
		return nil, err
	}
	return refined, nil
}

func (s *assetService) Get(ctx context.Context, id string) (*domain.Asset, error) {
	return s.assets.GetByID(ctx, id)
}

func (s *assetService) List(ctx context.Context, projectID string) ([]AssetListItem, error) {
	assets, err := s.assets.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	counts := make(map[domain.AssetType]int)
	for _, a := range assets {
		counts[a.Type]++
	}

	items := make([]AssetListItem, len(assets))
	for i, a := range assets {
		items[i] = AssetListItem{Asset: a, VersionCount: counts[a.Type]}
	}
	return items, nil
}

func (s *assetService) Conversation(ctx context.Context, assetID string) ([]*domain.ConversationEntry, error) {
	return s.conversations.ListByAsset(ctx, assetID)
}

func (s *assetService) latestBrandscriptContent(ctx context.Context, projectID string) (map[string]any, error) {
	latest, err := s.brandscripts.Latest(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if latest == nil {
		return nil, nil
	}
	return latest.Content, nil
}

func assetTitle(t domain.AssetType) string {
	if label, ok := domain.AssetLabels[t]; ok {
		return label
	}
	return string(t)
}
