package services

import (
	"context"
	"errors"

	"github.com/TanvirMain49/Learn-Hub-Server/internal/models"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/repositories"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/validator"
)

// Sentinel errors mapped to HTTP statuses by the handlers.
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrAlreadyExists    = errors.New("already exists")
)

// RegisterResult reports a user registration. Registration is idempotent by
// email: an existing record is reported, never duplicated.
type RegisterResult struct {
	InsertedID string `json:"insertedId,omitempty"`
	Message    string `json:"message,omitempty"`
	Exists     bool   `json:"-"`
}

// SessionListQuery carries the public session listing parameters.
type SessionListQuery struct {
	Page   int
	Limit  int
	SortBy string // "", "price_asc", "price_desc"
}

type UserService interface {
	Register(ctx context.Context, req *validator.UserCreateRequest) (*RegisterResult, error)
	List(ctx context.Context, search string) ([]models.User, error)
	GetRole(ctx context.Context, email string) (models.UserRole, error)
	UpdateRole(ctx context.Context, id string, role models.UserRole) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type SessionService interface {
	Create(ctx context.Context, req *validator.SessionCreateRequest) (string, error)
	// ListPublic returns one page of success sessions, optionally sorted by
	// price. Negative page or non-positive limit fails validation before
	// any store call.
	ListPublic(ctx context.Context, query SessionListQuery) ([]models.Session, error)
	ListAll(ctx context.Context) ([]models.Session, error)
	GetByID(ctx context.Context, id string) (*models.Session, error)
	ListByTutor(ctx context.Context, email string) ([]models.Session, error)
	CountSuccess(ctx context.Context) (int64, error)
	Update(ctx context.Context, id string, req *validator.SessionUpdateRequest) (int64, error)
}

type MaterialService interface {
	Create(ctx context.Context, email, sessionID string, req *validator.MaterialCreateRequest) (string, error)
	GetByID(ctx context.Context, id string) (*models.Material, error)
	GetBySessionID(ctx context.Context, sessionID string) (*models.Material, error)
	ListByEmail(ctx context.Context, email string) ([]models.Material, error)
	ListAll(ctx context.Context) ([]models.Material, error)
	Update(ctx context.Context, id string, req *validator.MaterialUpdateRequest) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type NoteService interface {
	Create(ctx context.Context, req *validator.NoteRequest) (string, error)
	ListByEmail(ctx context.Context, email string) ([]models.Note, error)
	GetByID(ctx context.Context, id string) (*models.Note, error)
	Update(ctx context.Context, id string, req *validator.NoteRequest) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type BookingService interface {
	Create(ctx context.Context, booking *models.BookedSession) (string, error)
	ListByEmail(ctx context.Context, email string) ([]models.BookedSession, error)
}

type ReviewService interface {
	Create(ctx context.Context, review *models.Review) (string, error)
	ListAll(ctx context.Context) ([]models.Review, error)
}

type PaymentService interface {
	// CreateIntent converts price to minor currency units and requests a
	// card payment intent; sub-minimum amounts fail validation.
	CreateIntent(ctx context.Context, price float64) (string, error)
	Record(ctx context.Context, payment *models.Payment) (string, error)
	ListAll(ctx context.Context) ([]models.Payment, error)
	TotalRevenue(ctx context.Context) (float64, error)
	RevenueByMonth(ctx context.Context) ([]repositories.MonthlyRevenue, error)
}

// ServiceManager aggregates the resource services.
type ServiceManager interface {
	User() UserService
	Session() SessionService
	Material() MaterialService
	Note() NoteService
	Booking() BookingService
	Review() ReviewService
	Payment() PaymentService
}
