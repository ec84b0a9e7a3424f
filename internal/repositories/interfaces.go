package repositories

import (
	"context"
	"errors"

	"github.com/TanvirMain49/Learn-Hub-Server/internal/models"
)

// ErrDuplicate is returned when a conditional insert hits a unique index.
var ErrDuplicate = errors.New("duplicate record")

// ===== SHARED FILTER STRUCTS =====

// SessionFilters drives the public session listing query.
type SessionFilters struct {
	Status    *models.SessionStatus
	Limit     int64
	Skip      int64
	SortBy    string // "price"
	SortOrder string // "asc", "desc"
}

// MonthlyRevenue is one row of the revenue-by-month aggregation. Month is a
// "YYYY-MM" key derived from each payment's date.
type MonthlyRevenue struct {
	Month string  `json:"month" bson:"_id"`
	Total float64 `json:"total" bson:"total"`
}

// ===== REPOSITORY INTERFACES =====

type UserRepository interface {
	// Create inserts the user; ErrDuplicate when the email is taken.
	Create(ctx context.Context, user *models.User) (string, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// List returns all users, or those whose name or email contains the
	// search term (case-insensitive) when it is non-empty.
	List(ctx context.Context, search string) ([]models.User, error)
	UpdateRole(ctx context.Context, id string, role models.UserRole) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) (string, error)
	List(ctx context.Context, filters SessionFilters) ([]models.Session, error)
	GetByID(ctx context.Context, id string) (*models.Session, error)
	ListByTutor(ctx context.Context, email string) ([]models.Session, error)
	CountByStatus(ctx context.Context, status models.SessionStatus) (int64, error)
	// Update applies the non-nil fields as a $set upsert on the identifier.
	Update(ctx context.Context, id string, update SessionUpdate) (int64, error)
}

// SessionUpdate carries the patchable session fields.
type SessionUpdate struct {
	Status   *models.SessionStatus
	Price    *float64
	Feedback *string
}

type MaterialRepository interface {
	// Create inserts the material; ErrDuplicate when a record for the same
	// (email, sessionId) pair already exists.
	Create(ctx context.Context, material *models.Material) (string, error)
	GetByID(ctx context.Context, id string) (*models.Material, error)
	GetBySessionID(ctx context.Context, sessionID string) (*models.Material, error)
	ListByEmail(ctx context.Context, email string) ([]models.Material, error)
	ListAll(ctx context.Context) ([]models.Material, error)
	// UpdateContent replaces the doc and image fields of the record.
	UpdateContent(ctx context.Context, id, doc, image string) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type NoteRepository interface {
	Create(ctx context.Context, note *models.Note) (string, error)
	ListByEmail(ctx context.Context, email string) ([]models.Note, error)
	GetByID(ctx context.Context, id string) (*models.Note, error)
	Update(ctx context.Context, id string, note *models.Note) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type BookingRepository interface {
	// Create inserts the booking; ErrDuplicate when the (email, sessionId)
	// pair is already booked.
	Create(ctx context.Context, booking *models.BookedSession) (string, error)
	ListByEmail(ctx context.Context, email string) ([]models.BookedSession, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) (string, error)
	ListAll(ctx context.Context) ([]models.Review, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) (string, error)
	ListAll(ctx context.Context) ([]models.Payment, error)
	// TotalRevenue sums price across all payment records.
	TotalRevenue(ctx context.Context) (float64, error)
	// RevenueByMonth groups payments by calendar month of their date,
	// sorted chronologically ascending.
	RevenueByMonth(ctx context.Context) ([]MonthlyRevenue, error)
}

// Repository aggregates the per-collection repositories.
type Repository interface {
	User() UserRepository
	Session() SessionRepository
	Material() MaterialRepository
	Note() NoteRepository
	Booking() BookingRepository
	Review() ReviewRepository
	Payment() PaymentRepository
}
