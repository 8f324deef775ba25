package observability

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsRegister(t *testing.T) {
	m := NewMetrics()
	if err := m.Register(); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if m.Handler() == nil {
		t.Error("Handler() should not be nil after Register()")
	}
}

func TestMetricsSetHealthStatus(t *testing.T) {
	m := NewMetrics()

	m.SetHealthStatus(true)
	if got := testutil.ToFloat64(m.HealthStatus); got != 1 {
		t.Errorf("HealthStatus = %v, want 1", got)
	}

	m.SetHealthStatus(false)
	if got := testutil.ToFloat64(m.HealthStatus); got != 0 {
		t.Errorf("HealthStatus = %v, want 0", got)
	}
}

func TestMetricsRecordRequest(t *testing.T) {
	m := NewMetrics()
	if err := m.Register(); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	m.RecordRequest("GET", "/", 200, 5*time.Millisecond, 39)
	m.RecordRequest("GET", "/", 200, 7*time.Millisecond, 39)

	if got := testutil.ToFloat64(m.RequestCount.WithLabelValues("GET", "/", "200")); got != 2 {
		t.Errorf("RequestCount = %v, want 2", got)
	}

	// The scrape output must include the recorded series
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)
	m.Handler().ServeHTTP(rec, req)

	if !strings.Contains(rec.Body.String(), "http_requests_total") {
		t.Error("scrape output missing http_requests_total")
	}
}
