package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/TanvirMain49/Learn-Hub-Server/internal/models"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/repositories"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/validator"
)

type materialService struct {
	repo      repositories.MaterialRepository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewMaterialService(repo repositories.MaterialRepository, logger *slog.Logger, validator *validator.Validator) MaterialService {
	return &materialService{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}
}

func (s *materialService) Create(ctx context.Context, email, sessionID string, req *validator.MaterialCreateRequest) (string, error) {
	if email == "" || sessionID == "" {
		return "", fmt.Errorf("%w: email and session id are required", ErrValidationFailed)
	}
	if err := s.validator.Validate(req); err != nil {
		return "", fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	material := &models.Material{
		Title:     req.Title,
		Email:     email,
		SessionID: sessionID,
		Doc:       req.Doc,
		Image:     req.Image,
	}

	id, err := s.repo.Create(ctx, material)
	if errors.Is(err, repositories.ErrDuplicate) {
		return "", fmt.Errorf("%w: material for this session", ErrAlreadyExists)
	}
	if err != nil {
		return "", err
	}

	s.logger.Info("material created", "material_id", id, "email", email, "session_id", sessionID)
	return id, nil
}

func (s *materialService) GetByID(ctx context.Context, id string) (*models.Material, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *materialService) GetBySessionID(ctx context.Context, sessionID string) (*models.Material, error) {
	return s.repo.GetBySessionID(ctx, sessionID)
}

func (s *materialService) ListByEmail(ctx context.Context, email string) ([]models.Material, error) {
	return s.repo.ListByEmail(ctx, email)
}

func (s *materialService) ListAll(ctx context.Context) ([]models.Material, error) {
	return s.repo.ListAll(ctx)
}

func (s *materialService) Update(ctx context.Context, id string, req *validator.MaterialUpdateRequest) (int64, error) {
	if err := s.validator.Validate(req); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}
	return s.repo.UpdateContent(ctx, id, req.Doc, req.Image)
}

func (s *materialService) Delete(ctx context.Context, id string) (int64, error) {
	return s.repo.Delete(ctx, id)
}
