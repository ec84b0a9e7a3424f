package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/TanvirMain49/Learn-Hub-Server/internal/models"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/payments"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/repositories"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ===== FAKE REPOSITORIES =====

type fakeUserRepo struct {
	users   []models.User
	nextID  int
	listErr error
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) (string, error) {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return "", repositories.ErrDuplicate
		}
	}
	f.nextID++
	f.users = append(f.users, *user)
	return fmt.Sprintf("user-%d", f.nextID), nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List(_ context.Context, _ string) ([]models.User, error) {
	return f.users, f.listErr
}

func (f *fakeUserRepo) UpdateRole(_ context.Context, _ string, _ models.UserRole) (int64, error) {
	return 1, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, _ string) (int64, error) {
	return 1, nil
}

type fakeSessionRepo struct {
	sessions    []models.Session
	listCalls   int
	lastFilters repositories.SessionFilters
}

func (f *fakeSessionRepo) Create(_ context.Context, session *models.Session) (string, error) {
	f.sessions = append(f.sessions, *session)
	return fmt.Sprintf("session-%d", len(f.sessions)), nil
}

// List mirrors the store semantics: status filter, price sort, skip/limit.
func (f *fakeSessionRepo) List(_ context.Context, filters repositories.SessionFilters) ([]models.Session, error) {
	f.listCalls++
	f.lastFilters = filters

	matched := []models.Session{}
	for _, session := range f.sessions {
		if filters.Status != nil && session.Status != *filters.Status {
			continue
		}
		matched = append(matched, session)
	}

	if filters.SortBy == "price" {
		sort.SliceStable(matched, func(i, j int) bool {
			if filters.SortOrder == "desc" {
				return matched[i].Price > matched[j].Price
			}
			return matched[i].Price < matched[j].Price
		})
	}

	if filters.Skip >= int64(len(matched)) {
		return []models.Session{}, nil
	}
	matched = matched[filters.Skip:]
	if filters.Limit > 0 && int64(len(matched)) > filters.Limit {
		matched = matched[:filters.Limit]
	}
	return matched, nil
}

func (f *fakeSessionRepo) GetByID(_ context.Context, _ string) (*models.Session, error) {
	return nil, nil
}

func (f *fakeSessionRepo) ListByTutor(_ context.Context, email string) ([]models.Session, error) {
	matched := []models.Session{}
	for _, session := range f.sessions {
		if session.TutorEmail == email {
			matched = append(matched, session)
		}
	}
	return matched, nil
}

func (f *fakeSessionRepo) CountByStatus(_ context.Context, status models.SessionStatus) (int64, error) {
	var count int64
	for _, session := range f.sessions {
		if session.Status == status {
			count++
		}
	}
	return count, nil
}

func (f *fakeSessionRepo) Update(_ context.Context, _ string, _ repositories.SessionUpdate) (int64, error) {
	return 1, nil
}

type fakeMaterialRepo struct {
	materials []models.Material
}

func (f *fakeMaterialRepo) Create(_ context.Context, material *models.Material) (string, error) {
	for _, existing := range f.materials {
		if existing.Email == material.Email && existing.SessionID == material.SessionID {
			return "", repositories.ErrDuplicate
		}
	}
	f.materials = append(f.materials, *material)
	return fmt.Sprintf("material-%d", len(f.materials)), nil
}

func (f *fakeMaterialRepo) GetByID(_ context.Context, _ string) (*models.Material, error) {
	return nil, nil
}

func (f *fakeMaterialRepo) GetBySessionID(_ context.Context, _ string) (*models.Material, error) {
	return nil, nil
}

func (f *fakeMaterialRepo) ListByEmail(_ context.Context, email string) ([]models.Material, error) {
	matched := []models.Material{}
	for _, material := range f.materials {
		if material.Email == email {
			matched = append(matched, material)
		}
	}
	return matched, nil
}

func (f *fakeMaterialRepo) ListAll(_ context.Context) ([]models.Material, error) {
	return f.materials, nil
}

func (f *fakeMaterialRepo) UpdateContent(_ context.Context, _, _, _ string) (int64, error) {
	return 1, nil
}

func (f *fakeMaterialRepo) Delete(_ context.Context, _ string) (int64, error) {
	return 1, nil
}

type fakeBookingRepo struct {
	bookings []models.BookedSession
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *models.BookedSession) (string, error) {
	for _, existing := range f.bookings {
		if existing.Email == booking.Email && existing.SessionID == booking.SessionID {
			return "", repositories.ErrDuplicate
		}
	}
	f.bookings = append(f.bookings, *booking)
	return fmt.Sprintf("booking-%d", len(f.bookings)), nil
}

func (f *fakeBookingRepo) ListByEmail(_ context.Context, email string) ([]models.BookedSession, error) {
	matched := []models.BookedSession{}
	for _, booking := range f.bookings {
		if booking.Email == email {
			matched = append(matched, booking)
		}
	}
	return matched, nil
}

type fakePaymentRepo struct {
	payments []models.Payment
}

func (f *fakePaymentRepo) Create(_ context.Context, payment *models.Payment) (string, error) {
	f.payments = append(f.payments, *payment)
	return fmt.Sprintf("payment-%d", len(f.payments)), nil
}

func (f *fakePaymentRepo) ListAll(_ context.Context) ([]models.Payment, error) {
	return f.payments, nil
}

func (f *fakePaymentRepo) TotalRevenue(_ context.Context) (float64, error) {
	var total float64
	for _, payment := range f.payments {
		total += payment.Price
	}
	return total, nil
}

func (f *fakePaymentRepo) RevenueByMonth(_ context.Context) ([]repositories.MonthlyRevenue, error) {
	totals := map[string]float64{}
	for _, payment := range f.payments {
		totals[payment.Date.Format("2006-01")] += payment.Price
	}
	months := make([]string, 0, len(totals))
	for month := range totals {
		months = append(months, month)
	}
	sort.Strings(months)

	revenue := make([]repositories.MonthlyRevenue, 0, len(months))
	for _, month := range months {
		revenue = append(revenue, repositories.MonthlyRevenue{Month: month, Total: totals[month]})
	}
	return revenue, nil
}

// ===== STUB PAYMENT PROVIDER =====

type stubIntentCreator struct {
	lastAmount   int64
	lastCurrency string
	err          error
}

func (s *stubIntentCreator) CreateIntent(_ context.Context, amount int64, currency string) (*payments.Intent, error) {
	s.lastAmount = amount
	s.lastCurrency = currency
	if s.err != nil {
		return nil, s.err
	}
	return &payments.Intent{
		ID:           "pi_test",
		ClientSecret: "pi_test_secret",
		Amount:       amount,
		Currency:     currency,
	}, nil
}
