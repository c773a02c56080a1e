package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mseverin/brandforge/internal/coverage"
	"github.com/mseverin/brandforge/internal/domain"
	"github.com/mseverin/brandforge/internal/intelligence"
	"github.com/mseverin/brandforge/internal/llm"
	"github.com/mseverin/brandforge/internal/repository"
)

// Transcript replay limits. Past this length the middle of the conversation
// is dropped: the opening turns anchor the business context, the recent
// turns carry the active thread.
const (
	maxReplayTurns    = 40
	replayHeadTurns   = 2
	replayRecentTurns = 30
)

type storyService struct {
	stories   repository.StoryRepo
	answers   repository.AnswerRepo
	discovery DiscoveryService
	client    llm.Client
}

func NewStoryService(stories repository.StoryRepo, answers repository.AnswerRepo, discovery DiscoveryService, client llm.Client) StoryService {
	return &storyService{stories: stories, answers: answers, discovery: discovery, client: client}
}

func (s *storyService) SubmitTurn(ctx context.Context, projectID, message string) (*StoryTurn, error) {
	// History is loaded before the new user message is saved, so it does
	// not include the message being answered.
	transcript, err := s.stories.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	history := replayWindow(transcript)

	answerMap, err := s.answers.MapByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	cov := coverage.Compute(answerMap)

	systemPrompt := intelligence.SystemPrompt(intelligence.PromptInput{
		Task:         llm.TaskStorySession,
		CoverageGaps: coverage.FormatGaps(cov),
		FilledFields: intelligence.FormatFilledFields(answerMap),
	})

	if err := s.stories.Append(ctx, &domain.StoryMessage{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Role:      domain.RoleUser,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		return nil, err
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskStorySession,
		SystemPrompt: systemPrompt,
		History:      history,
		UserPrompt:   message,
	})
	if err != nil {
		return nil, err
	}

	conversational, fields := intelligence.ParseStoryReply(resp.Text)

	saved := 0
	if len(fields) > 0 {
		saved, err = s.discovery.SaveExtractedFields(ctx, projectID, fields)
		if err != nil {
			return nil, err
		}
	}

	assistantMsg := &domain.StoryMessage{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Role:      domain.RoleAssistant,
		Message:   conversational,
		CreatedAt: time.Now().UTC(),
	}
	if len(fields) > 0 {
		assistantMsg.ParsedFields = fields
	}
	if err := s.stories.Append(ctx, assistantMsg); err != nil {
		return nil, err
	}

	updated, err := s.answers.MapByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return &StoryTurn{
		Reply:        conversational,
		ParsedFields: fields,
		SavedFields:  saved,
		Coverage:     coverage.Compute(updated),
	}, nil
}

func (s *storyService) Transcript(ctx context.Context, projectID string) ([]*domain.StoryMessage, error) {
	return s.stories.ListByProject(ctx, projectID)
}

func replayWindow(transcript []*domain.StoryMessage) []llm.Message {
	msgs := make([]llm.Message, len(transcript))
	for i, m := range transcript {
		msgs[i] = llm.Message{Role: string(m.Role), Content: m.Message}
	}
	if len(msgs) > maxReplayTurns {
		window := make([]llm.Message, 0, replayHeadTurns+replayRecentTurns)
		window = append(window, msgs[:replayHeadTurns]...)
		window = append(window, msgs[len(msgs)-replayRecentTurns:]...)
		return window
	}
	return msgs
}
