package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/TanvirMain49/Learn-Hub-Server/internal/models"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/repositories"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/validator"
)

type noteService struct {
	repo      repositories.NoteRepository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewNoteService(repo repositories.NoteRepository, logger *slog.Logger, validator *validator.Validator) NoteService {
	return &noteService{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}
}

func (s *noteService) Create(ctx context.Context, req *validator.NoteRequest) (string, error) {
	if err := s.validator.Validate(req); err != nil {
		return "", fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	note := &models.Note{
		Email:       req.Email,
		Title:       req.Title,
		Description: req.Description,
	}
	return s.repo.Create(ctx, note)
}

func (s *noteService) ListByEmail(ctx context.Context, email string) ([]models.Note, error) {
	return s.repo.ListByEmail(ctx, email)
}

func (s *noteService) GetByID(ctx context.Context, id string) (*models.Note, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *noteService) Update(ctx context.Context, id string, req *validator.NoteRequest) (int64, error) {
	if err := s.validator.Validate(req); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	note := &models.Note{
		Email:       req.Email,
		Title:       req.Title,
		Description: req.Description,
	}
	return s.repo.Update(ctx, id, note)
}

func (s *noteService) Delete(ctx context.Context, id string) (int64, error) {
	return s.repo.Delete(ctx, id)
}
