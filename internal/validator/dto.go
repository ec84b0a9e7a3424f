package validator

// TokenRequest is the payload for access-token issuance.
type TokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// UserCreateRequest registers a user. Role defaults to Student when empty.
type UserCreateRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"required,email"`
	Photo string `json:"photo" validate:"omitempty,url"`
	Role  string `json:"role" validate:"omitempty,oneof=Student Tutor Admin"`
}

// UserRoleUpdateRequest changes a user's role.
type UserRoleUpdateRequest struct {
	Role string `json:"role" validate:"required,oneof=Student Tutor Admin"`
}

// SessionCreateRequest creates a tutor session.
type SessionCreateRequest struct {
	Title             string  `json:"title" validate:"required,max=200"`
	TutorName         string  `json:"tutorName" validate:"required,max=100"`
	TutorEmail        string  `json:"tutorEmail" validate:"required,email"`
	Description       string  `json:"description" validate:"omitempty,max=5000"`
	RegistrationStart string  `json:"registrationStart"`
	RegistrationEnd   string  `json:"registrationEnd"`
	ClassStart        string  `json:"classStart"`
	ClassEnd          string  `json:"classEnd"`
	Duration          string  `json:"duration"`
	Price             float64 `json:"price" validate:"gte=0"`
	Status            string  `json:"status" validate:"omitempty,oneof=pending success rejected"`
}

// SessionUpdateRequest patches status, price, or feedback on a session.
// All fields are optional; only the provided ones are applied.
type SessionUpdateRequest struct {
	Status   *string  `json:"status" validate:"omitempty,oneof=pending success rejected"`
	Price    *float64 `json:"price" validate:"omitempty,gte=0"`
	Feedback *string  `json:"feedback" validate:"omitempty,max=2000"`
}

// MaterialCreateRequest uploads material for a (email, sessionId) pair.
type MaterialCreateRequest struct {
	Title string `json:"title" validate:"omitempty,max=200"`
	Doc   string `json:"doc" validate:"required"`
	Image string `json:"image" validate:"omitempty"`
}

// MaterialUpdateRequest replaces the doc and image fields of a material.
type MaterialUpdateRequest struct {
	Doc   string `json:"doc" validate:"required"`
	Image string `json:"image" validate:"omitempty"`
}

// NoteRequest creates or fully patches a note.
type NoteRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"omitempty,max=10000"`
}

// PaymentIntentRequest asks for a card payment intent for a session price.
type PaymentIntentRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}
