package services

import (
	"context"
	"log/slog"

	"github.com/TanvirMain49/Learn-Hub-Server/internal/models"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/repositories"
)

type reviewService struct {
	repo   repositories.ReviewRepository
	logger *slog.Logger
}

func NewReviewService(repo repositories.ReviewRepository, logger *slog.Logger) ReviewService {
	return &reviewService{
		repo:   repo,
		logger: logger,
	}
}

func (s *reviewService) Create(ctx context.Context, review *models.Review) (string, error) {
	return s.repo.Create(ctx, review)
}

func (s *reviewService) ListAll(ctx context.Context) ([]models.Review, error) {
	return s.repo.ListAll(ctx)
}
