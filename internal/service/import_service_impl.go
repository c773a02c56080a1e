package service

import (
	"context"

	"github.com/mseverin/brandforge/internal/coverage"
	"github.com/mseverin/brandforge/internal/intelligence"
	"github.com/mseverin/brandforge/internal/llm"
	"github.com/mseverin/brandforge/internal/repository"
)

type importService struct {
	answers   repository.AnswerRepo
	discovery DiscoveryService
	client    llm.Client
}

func NewImportService(answers repository.AnswerRepo, discovery DiscoveryService, client llm.Client) ImportService {
	return &importService{answers: answers, discovery: discovery, client: client}
}

func (s *importService) ImportFreeform(ctx context.Context, projectID, content string) (*ImportResult, error) {
	systemPrompt := intelligence.SystemPrompt(intelligence.PromptInput{Task: llm.TaskImport})

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskImport,
		SystemPrompt: systemPrompt,
		UserPrompt:   "Extract discovery answers from the following content:\n\n" + content,
	})
	if err != nil {
		return nil, err
	}

	parsed, err := llm.ExtractFlexibleMap(resp.Text)
	if err != nil {
		// Surface the raw reply so the user's pasted content isn't a dead end.
		return nil, &intelligence.UnparseableExtractionError{Raw: resp.Text}
	}

	extracted := intelligence.NormalizeExtracted(parsed)

	fields := make(map[string]string, len(extracted))
	for key, value := range extracted {
		if str, ok := value.(string); ok {
			fields[key] = str
		}
	}

	saved, err := s.discovery.SaveExtractedFields(ctx, projectID, fields)
	if err != nil {
		return nil, err
	}

	updated, err := s.answers.MapByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return &ImportResult{
		Extracted: extracted,
		Saved:     saved,
		Coverage:  coverage.Compute(updated),
	}, nil
}
