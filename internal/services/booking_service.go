package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/TanvirMain49/Learn-Hub-Server/internal/models"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/repositories"
)

type bookingService struct {
	repo   repositories.BookingRepository
	logger *slog.Logger
}

func NewBookingService(repo repositories.BookingRepository, logger *slog.Logger) BookingService {
	return &bookingService{
		repo:   repo,
		logger: logger,
	}
}

func (s *bookingService) Create(ctx context.Context, booking *models.BookedSession) (string, error) {
	if booking.Email == "" || booking.SessionID == "" {
		return "", fmt.Errorf("%w: email and session id are required", ErrValidationFailed)
	}

	// The unique (email, sessionId) index closes the race between two
	// identical concurrent bookings.
	id, err := s.repo.Create(ctx, booking)
	if errors.Is(err, repositories.ErrDuplicate) {
		return "", fmt.Errorf("%w: session already booked", ErrAlreadyExists)
	}
	if err != nil {
		return "", err
	}

	s.logger.Info("session booked", "booking_id", id, "email", booking.Email, "session_id", booking.SessionID)
	return id, nil
}

func (s *bookingService) ListByEmail(ctx context.Context, email string) ([]models.BookedSession, error) {
	return s.repo.ListByEmail(ctx, email)
}
