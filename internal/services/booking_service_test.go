package services

import (
	"context"
	"errors"
	"testing"

	"github.com/TanvirMain49/Learn-Hub-Server/internal/models"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/validator"
)

func TestBookingService_Create(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := NewBookingService(repo, testLogger())

	booking := &models.BookedSession{Email: "student@learnhub.com", SessionID: "abc123"}
	id, err := svc.Create(context.Background(), booking)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if id == "" {
		t.Error("Create() returned empty id")
	}
}

func TestBookingService_Create_DuplicateRejected(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []models.BookedSession{
		{Email: "student@learnhub.com", SessionID: "abc123"},
	}}
	svc := NewBookingService(repo, testLogger())

	_, err := svc.Create(context.Background(), &models.BookedSession{
		Email:     "student@learnhub.com",
		SessionID: "abc123",
	})
	if !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("Create() error = %v, want ErrAlreadyExists", err)
	}
	if len(repo.bookings) != 1 {
		t.Errorf("stored %d bookings, want no second record", len(repo.bookings))
	}

	// Same session under a different email is a fresh booking.
	if _, err := svc.Create(context.Background(), &models.BookedSession{
		Email:     "other@learnhub.com",
		SessionID: "abc123",
	}); err != nil {
		t.Errorf("Create() for different email error = %v", err)
	}
}

func TestBookingService_Create_MissingKeys(t *testing.T) {
	svc := NewBookingService(&fakeBookingRepo{}, testLogger())

	_, err := svc.Create(context.Background(), &models.BookedSession{Email: "student@learnhub.com"})
	if !errors.Is(err, ErrValidationFailed) {
		t.Errorf("Create() error = %v, want ErrValidationFailed", err)
	}
}

func TestMaterialService_Create_DuplicateRejected(t *testing.T) {
	repo := &fakeMaterialRepo{materials: []models.Material{
		{Email: "tutor@learnhub.com", SessionID: "abc123"},
	}}
	svc := NewMaterialService(repo, testLogger(), validator.New())

	_, err := svc.Create(context.Background(), "tutor@learnhub.com", "abc123",
		&validator.MaterialCreateRequest{Doc: "https://docs.learnhub.com/1"})
	if !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("Create() error = %v, want ErrAlreadyExists", err)
	}
	if len(repo.materials) != 1 {
		t.Errorf("stored %d materials, want no second record", len(repo.materials))
	}
}

func TestMaterialService_Create(t *testing.T) {
	repo := &fakeMaterialRepo{}
	svc := NewMaterialService(repo, testLogger(), validator.New())

	id, err := svc.Create(context.Background(), "tutor@learnhub.com", "abc123",
		&validator.MaterialCreateRequest{Title: "Notes", Doc: "https://docs.learnhub.com/1"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if id == "" {
		t.Error("Create() returned empty id")
	}
	if len(repo.materials) != 1 {
		t.Fatalf("stored %d materials, want 1", len(repo.materials))
	}
	if repo.materials[0].Email != "tutor@learnhub.com" || repo.materials[0].SessionID != "abc123" {
		t.Errorf("stored material keyed %q/%q", repo.materials[0].Email, repo.materials[0].SessionID)
	}
}
