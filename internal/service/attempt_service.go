package service

import (
	"context"

	"exam-service/internal/models"
	"exam-service/internal/repository"
	"exam-service/internal/session"
)

type AttemptService struct {
	Store repository.AttemptStore
}

func NewAttemptService(store repository.AttemptStore) *AttemptService {
	return &AttemptService{Store: store}
}

func (s *AttemptService) GetAttemptsByUser(ctx context.Context, userID string) ([]models.TestAttempt, error) {
	return s.Store.FindByUser(ctx, userID)
}

func (s *AttemptService) GetAttemptsByTest(ctx context.Context, testID string) ([]models.TestAttempt, error) {
	return s.Store.FindByTest(ctx, testID)
}

// GetUserStats aggregates the user's full history into longitudinal stats.
func (s *AttemptService) GetUserStats(ctx context.Context, userID string) (*models.UserStats, error) {
	attempts, err := s.Store.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return session.ComputeUserStats(userID, attempts), nil
}
