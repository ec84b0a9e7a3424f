package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/TanvirMain49/Learn-Hub-Server/internal/models"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/payments"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/repositories"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/services"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/validator"
)

// stubPaymentService enforces the provider's minimum charge like the real
// service does.
type stubPaymentService struct {
	intentCalls int
}

func (s *stubPaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	s.intentCalls++
	if int64(price*100) < payments.MinimumAmount {
		return "", fmt.Errorf("%w: amount below provider minimum", services.ErrValidationFailed)
	}
	return "pi_test_secret_abc", nil
}

func (s *stubPaymentService) Record(ctx context.Context, payment *models.Payment) (string, error) {
	return "ledger-id", nil
}

func (s *stubPaymentService) ListAll(ctx context.Context) ([]models.Payment, error) {
	return nil, nil
}

func (s *stubPaymentService) TotalRevenue(ctx context.Context) (float64, error) {
	return 30, nil
}

func (s *stubPaymentService) RevenueByMonth(ctx context.Context) ([]repositories.MonthlyRevenue, error) {
	return []repositories.MonthlyRevenue{
		{Month: "2025-01", Total: 25},
		{Month: "2025-03", Total: 20},
	}, nil
}

func paymentRouter(service services.PaymentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewPaymentHandler(service, validator.New(), testLogger())
	router := gin.New()
	router.POST("/create-payment-intent", h.CreateIntent)
	router.GET("/total-revenue", h.TotalRevenue)
	router.GET("/total-revenue-by-month", h.RevenueByMonth)
	return router
}

func postIntent(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateIntentReturnsClientSecret(t *testing.T) {
	service := &stubPaymentService{}
	router := paymentRouter(service)

	rec := postIntent(router, `{"price": 5.00}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body["clientSecret"] != "pi_test_secret_abc" {
		t.Errorf("clientSecret = %q, want the provider secret", body["clientSecret"])
	}
}

func TestCreateIntentRejectsSubMinimumPrice(t *testing.T) {
	service := &stubPaymentService{}
	router := paymentRouter(service)

	rec := postIntent(router, `{"price": 0.40}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestCreateIntentRejectsMissingPrice(t *testing.T) {
	service := &stubPaymentService{}
	router := paymentRouter(service)

	rec := postIntent(router, `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if service.intentCalls != 0 {
		t.Errorf("service called %d times for invalid payload, want 0", service.intentCalls)
	}
}

func TestRevenueEndpoints(t *testing.T) {
	router := paymentRouter(&stubPaymentService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/total-revenue", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("total-revenue status = %d, want %d", rec.Code, http.StatusOK)
	}
	var total map[string]float64
	if err := json.Unmarshal(rec.Body.Bytes(), &total); err != nil {
		t.Fatalf("decoding total: %v", err)
	}
	if total["total"] != 30 {
		t.Errorf("total = %v, want 30", total["total"])
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/total-revenue-by-month", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("by-month status = %d, want %d", rec.Code, http.StatusOK)
	}
	var months []repositories.MonthlyRevenue
	if err := json.Unmarshal(rec.Body.Bytes(), &months); err != nil {
		t.Fatalf("decoding months: %v", err)
	}
	if len(months) != 2 || months[0].Month != "2025-01" || months[1].Month != "2025-03" {
		t.Errorf("months = %+v, want chronological stub rows", months)
	}
}
