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

type userService struct {
	repo      repositories.UserRepository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewUserService(repo repositories.UserRepository, logger *slog.Logger, validator *validator.Validator) UserService {
	return &userService{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}
}

func (s *userService) Register(ctx context.Context, req *validator.UserCreateRequest) (*RegisterResult, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	role := models.UserRole(req.Role)
	if role == "" {
		role = models.RoleStudent
	}

	user := &models.User{
		Name:  req.Name,
		Email: req.Email,
		Photo: req.Photo,
		Role:  role,
	}

	// The unique email index makes this a single conditional insert; a
	// concurrent duplicate registration loses cleanly.
	id, err := s.repo.Create(ctx, user)
	if errors.Is(err, repositories.ErrDuplicate) {
		return &RegisterResult{Message: "user already exists", Exists: true}, nil
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "email", req.Email, "role", role)
	return &RegisterResult{InsertedID: id}, nil
}

func (s *userService) List(ctx context.Context, search string) ([]models.User, error) {
	return s.repo.List(ctx, search)
}

func (s *userService) GetRole(ctx context.Context, email string) (models.UserRole, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", nil
	}
	return user.Role, nil
}

func (s *userService) UpdateRole(ctx context.Context, id string, role models.UserRole) (int64, error) {
	if err := s.validator.Validate(&validator.UserRoleUpdateRequest{Role: string(role)}); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}
	return s.repo.UpdateRole(ctx, id, role)
}

func (s *userService) Delete(ctx context.Context, id string) (int64, error) {
	return s.repo.Delete(ctx, id)
}
