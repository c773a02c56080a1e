package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/mseverin/brandforge/internal/coverage"
	"github.com/mseverin/brandforge/internal/db"
	"github.com/mseverin/brandforge/internal/domain"
	"github.com/mseverin/brandforge/internal/repository"
	"github.com/mseverin/brandforge/internal/schema"
)

type discoveryService struct {
	answers repository.AnswerRepo
	uow     db.UnitOfWork
}

func NewDiscoveryService(answers repository.AnswerRepo, uow db.UnitOfWork) DiscoveryService {
	return &discoveryService{answers: answers, uow: uow}
}

func (s *discoveryService) SubmitStepAnswers(ctx context.Context, projectID string, stepNumber int, answers map[string]string) (int, error) {
	if schema.StepByNumber(stepNumber) == nil {
		return 0, fmt.Errorf("unknown discovery step %d", stepNumber)
	}

	// Wizard values are stored verbatim. The user typed them on purpose;
	// only coverage applies trimming, at read time.
	updates := make([]domain.AnswerUpdate, 0, len(answers))
	for key, value := range answers {
		updates = append(updates, domain.AnswerUpdate{
			Key:        key,
			Value:      value,
			StepNumber: stepNumber,
		})
	}

	return s.saveUpdates(ctx, projectID, updates)
}

func (s *discoveryService) SaveExtractedFields(ctx context.Context, projectID string, fields map[string]string) (int, error) {
	updates := make([]domain.AnswerUpdate, 0, len(fields))
	for key, value := range fields {
		step, ok := schema.StepForKey(key)
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		updates = append(updates, domain.AnswerUpdate{
			Key:        key,
			Value:      value,
			StepNumber: step,
		})
	}

	return s.saveUpdates(ctx, projectID, updates)
}

// saveUpdates writes the batch and touches the project inside one
// transaction, so a project is never marked updated without its answers.
func (s *discoveryService) saveUpdates(ctx context.Context, projectID string, updates []domain.AnswerUpdate) (int, error) {
	if len(updates) == 0 {
		return 0, nil
	}

	var saved int
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txAnswers := repository.NewSQLiteAnswerRepo(tx)
		txProjects := repository.NewSQLiteProjectRepo(tx)

		n, err := txAnswers.UpsertBatch(ctx, projectID, updates)
		if err != nil {
			return err
		}
		saved = n

		return txProjects.Touch(ctx, projectID)
	})
	if err != nil {
		return 0, err
	}
	return saved, nil
}

func (s *discoveryService) Answers(ctx context.Context, projectID string) ([]*domain.Answer, error) {
	return s.answers.ListByProject(ctx, projectID)
}

func (s *discoveryService) Coverage(ctx context.Context, projectID string) (coverage.Snapshot, error) {
	m, err := s.answers.MapByProject(ctx, projectID)
	if err != nil {
		return coverage.Snapshot{}, err
	}
	return coverage.Compute(m), nil
}
