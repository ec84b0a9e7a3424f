package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/TanvirMain49/Learn-Hub-Server/internal/models"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/repositories"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/validator"
)

type sessionService struct {
	repo      repositories.SessionRepository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewSessionService(repo repositories.SessionRepository, logger *slog.Logger, validator *validator.Validator) SessionService {
	return &sessionService{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}
}

func (s *sessionService) Create(ctx context.Context, req *validator.SessionCreateRequest) (string, error) {
	if err := s.validator.Validate(req); err != nil {
		return "", fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	session := &models.Session{
		Title:             req.Title,
		TutorName:         req.TutorName,
		TutorEmail:        req.TutorEmail,
		Description:       req.Description,
		RegistrationStart: req.RegistrationStart,
		RegistrationEnd:   req.RegistrationEnd,
		ClassStart:        req.ClassStart,
		ClassEnd:          req.ClassEnd,
		Duration:          req.Duration,
		Price:             req.Price,
		Status:            models.SessionStatus(req.Status),
	}

	id, err := s.repo.Create(ctx, session)
	if err != nil {
		return "", err
	}

	s.logger.Info("session created", "session_id", id, "tutor", req.TutorEmail)
	return id, nil
}

func (s *sessionService) ListPublic(ctx context.Context, query SessionListQuery) ([]models.Session, error) {
	if query.Page < 0 {
		return nil, fmt.Errorf("%w: page must not be negative", ErrValidationFailed)
	}
	if query.Limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be a positive integer", ErrValidationFailed)
	}

	status := models.SessionSuccess
	filters := repositories.SessionFilters{
		Status: &status,
		Limit:  int64(query.Limit),
		Skip:   int64(query.Page) * int64(query.Limit),
	}

	switch query.SortBy {
	case "price_asc":
		filters.SortBy, filters.SortOrder = "price", "asc"
	case "price_desc":
		filters.SortBy, filters.SortOrder = "price", "desc"
	case "":
	default:
		return nil, fmt.Errorf("%w: unknown sortBy %q", ErrValidationFailed, query.SortBy)
	}

	return s.repo.List(ctx, filters)
}

func (s *sessionService) ListAll(ctx context.Context) ([]models.Session, error) {
	return s.repo.List(ctx, repositories.SessionFilters{})
}

func (s *sessionService) GetByID(ctx context.Context, id string) (*models.Session, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *sessionService) ListByTutor(ctx context.Context, email string) ([]models.Session, error) {
	return s.repo.ListByTutor(ctx, email)
}

func (s *sessionService) CountSuccess(ctx context.Context) (int64, error) {
	return s.repo.CountByStatus(ctx, models.SessionSuccess)
}

func (s *sessionService) Update(ctx context.Context, id string, req *validator.SessionUpdateRequest) (int64, error) {
	if err := s.validator.Validate(req); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	update := repositories.SessionUpdate{
		Price:    req.Price,
		Feedback: req.Feedback,
	}
	if req.Status != nil {
		status := models.SessionStatus(*req.Status)
		update.Status = &status
	}

	return s.repo.Update(ctx, id, update)
}
