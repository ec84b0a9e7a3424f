package payments

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_CreateIntent(t *testing.T) {
	var gotAuth, gotAmount, gotCurrency string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/payment_intents" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("ParseForm() error = %v", err)
		}
		gotAuth = r.Header.Get("Authorization")
		gotAmount = r.PostForm.Get("amount")
		gotCurrency = r.PostForm.Get("currency")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"pi_123","client_secret":"pi_123_secret_abc","amount":500,"currency":"usd"}`))
	}))
	defer server.Close()

	client := NewClient("sk_test_key", WithBaseURL(server.URL))
	intent, err := client.CreateIntent(context.Background(), 500, "usd")
	if err != nil {
		t.Fatalf("CreateIntent() error = %v", err)
	}

	if gotAuth != "Bearer sk_test_key" {
		t.Errorf("Authorization = %q, want bearer secret key", gotAuth)
	}
	if gotAmount != "500" || gotCurrency != "usd" {
		t.Errorf("form = amount %q currency %q, want 500/usd", gotAmount, gotCurrency)
	}
	if intent.ClientSecret != "pi_123_secret_abc" {
		t.Errorf("ClientSecret = %q, want %q", intent.ClientSecret, "pi_123_secret_abc")
	}
}

func TestClient_CreateIntent_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Amount must be at least 50 cents"}}`))
	}))
	defer server.Close()

	client := NewClient("sk_test_key", WithBaseURL(server.URL))
	_, err := client.CreateIntent(context.Background(), 40, "usd")
	if err == nil {
		t.Fatal("CreateIntent() error = nil, want provider error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("CreateIntent() error = %v, want *APIError", err)
	}
	if apiErr.Status != http.StatusBadRequest {
		t.Errorf("APIError.Status = %d, want %d", apiErr.Status, http.StatusBadRequest)
	}
	if apiErr.Message != "Amount must be at least 50 cents" {
		t.Errorf("APIError.Message = %q", apiErr.Message)
	}
}
