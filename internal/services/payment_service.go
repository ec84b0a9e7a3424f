package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/TanvirMain49/Learn-Hub-Server/internal/models"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/payments"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/repositories"
)

const intentCurrency = "usd"

type paymentService struct {
	repo    repositories.PaymentRepository
	intents payments.IntentCreator
	logger  *slog.Logger
}

func NewPaymentService(repo repositories.PaymentRepository, intents payments.IntentCreator, logger *slog.Logger) PaymentService {
	return &paymentService{
		repo:    repo,
		intents: intents,
		logger:  logger,
	}
}

func (s *paymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	amount := int64(math.Round(price * 100))
	if amount < payments.MinimumAmount {
		return "", fmt.Errorf("%w: amount must be at least %d cents", ErrValidationFailed, payments.MinimumAmount)
	}

	intent, err := s.intents.CreateIntent(ctx, amount, intentCurrency)
	if err != nil {
		return "", err
	}

	s.logger.Info("payment intent created", "intent_id", intent.ID, "amount", amount)
	return intent.ClientSecret, nil
}

func (s *paymentService) Record(ctx context.Context, payment *models.Payment) (string, error) {
	return s.repo.Create(ctx, payment)
}

func (s *paymentService) ListAll(ctx context.Context) ([]models.Payment, error) {
	return s.repo.ListAll(ctx)
}

func (s *paymentService) TotalRevenue(ctx context.Context) (float64, error) {
	return s.repo.TotalRevenue(ctx)
}

func (s *paymentService) RevenueByMonth(ctx context.Context) ([]repositories.MonthlyRevenue, error) {
	return s.repo.RevenueByMonth(ctx)
}
