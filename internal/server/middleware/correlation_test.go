package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestCorrelationIDEchoesExisting(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetCorrelationID(r.Context())
	})
	handler := CorrelationID(next)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Correlation-ID", "abc-123")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if seen != "abc-123" {
		t.Errorf("context correlation ID = %q, want abc-123", seen)
	}
	if got := rec.Header().Get("X-Correlation-ID"); got != "abc-123" {
		t.Errorf("response header = %q, want abc-123", got)
	}
}

func TestCorrelationIDMintsUUID(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	handler := CorrelationID(next)

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	got := rec.Header().Get("X-Correlation-ID")
	if got == "" {
		t.Fatal("expected a minted correlation ID")
	}
	if _, err := uuid.Parse(got); err != nil {
		t.Errorf("minted ID %q is not a UUID: %v", got, err)
	}
}

func TestGetCorrelationIDWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if got := GetCorrelationID(req.Context()); got != "" {
		t.Errorf("GetCorrelationID() = %q, want empty", got)
	}
}
