package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mseverin/brandforge/internal/domain"
	"github.com/mseverin/brandforge/internal/intelligence"
	"github.com/mseverin/brandforge/internal/llm"
	"github.com/mseverin/brandforge/internal/repository"
)

type brandscriptService struct {
	brandscripts repository.BrandscriptRepo
	answers      repository.AnswerRepo
	client       llm.Client
}

func NewBrandscriptService(brandscripts repository.BrandscriptRepo, answers repository.AnswerRepo, client llm.Client) BrandscriptService {
	return &brandscriptService{brandscripts: brandscripts, answers: answers, client: client}
}

func (s *brandscriptService) Generate(ctx context.Context, projectID string) (*domain.Brandscript, error) {
	answerMap, err := s.answers.MapByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	systemPrompt := intelligence.SystemPrompt(intelligence.PromptInput{
		Task:    llm.TaskBrandscript,
		Answers: answerMap,
	})

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskBrandscript,
		SystemPrompt: systemPrompt,
		UserPrompt:   "Generate a complete SB7 BrandScript based on the discovery answers provided. Return ONLY valid JSON, no markdown code fences.",
	})
	if err != nil {
		return nil, err
	}

	// An unparseable reply still gets persisted under "raw" so the work
	// isn't lost; the user can edit it into shape.
	content, err := llm.ExtractFlexibleMap(resp.Text)
	if err != nil {
		content = map[string]any{"raw": resp.Text}
	}

	b := &domain.Brandscript{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.brandscripts.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *brandscriptService) Latest(ctx context.Context, projectID string) (*domain.Brandscript, error) {
	return s.brandscripts.Latest(ctx, projectID)
}

func (s *brandscriptService) Update(ctx context.Context, projectID string, content map[string]any) error {
	latest, err := s.brandscripts.Latest(ctx, projectID)
	if err != nil {
		return err
	}
	if latest == nil {
		return s.brandscripts.Create(ctx, &domain.Brandscript{
			ID:        uuid.New().String(),
			ProjectID: projectID,
			Content:   content,
			CreatedAt: time.Now().UTC(),
		})
	}
	return s.brandscripts.UpdateContent(ctx, latest.ID, content)
}
