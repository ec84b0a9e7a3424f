package services

import (
	"log/slog"

	"github.com/TanvirMain49/Learn-Hub-Server/internal/payments"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/repositories"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/validator"
)

type serviceManager struct {
	user     UserService
	session  SessionService
	material MaterialService
	note     NoteService
	booking  BookingService
	review   ReviewService
	payment  PaymentService
}

// NewServiceManager wires the resource services over the repository and the
// payment provider client.
func NewServiceManager(
	repo repositories.Repository,
	logger *slog.Logger,
	validator *validator.Validator,
	intents payments.IntentCreator,
) ServiceManager {
	return &serviceManager{
		user:     NewUserService(repo.User(), logger, validator),
		session:  NewSessionService(repo.Session(), logger, validator),
		material: NewMaterialService(repo.Material(), logger, validator),
		note:     NewNoteService(repo.Note(), logger, validator),
		booking:  NewBookingService(repo.Booking(), logger),
		review:   NewReviewService(repo.Review(), logger),
		payment:  NewPaymentService(repo.Payment(), intents, logger),
	}
}

func (m *serviceManager) User() UserService         { return m.user }
func (m *serviceManager) Session() SessionService   { return m.session }
func (m *serviceManager) Material() MaterialService { return m.material }
func (m *serviceManager) Note() NoteService         { return m.note }
func (m *serviceManager) Booking() BookingService   { return m.booking }
func (m *serviceManager) Review() ReviewService     { return m.review }
func (m *serviceManager) Payment() PaymentService   { return m.payment }
