package server

import (
	"encoding/json"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/statuskit/status-api/internal/constants"
	"github.com/statuskit/status-api/internal/observability"
)

// statusHandler serves the root route: the fixed two-field status payload.
// The serialized form is cached so repeated responses are byte-identical.
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	_, span := s.tracer.StartSpan(r.Context(), "status",
		attribute.String("http.method", r.Method),
		attribute.String("http.path", r.URL.Path),
	)
	defer span.End()

	if r.Method != constants.MethodGET && r.Method != constants.MethodHEAD {
		s.sendMethodNotAllowed(w, []string{constants.MethodGET, constants.MethodHEAD}, r.Method)
		s.metrics.RecordRequest(r.Method, constants.PathStatus, http.StatusMethodNotAllowed, time.Since(start), 0)
		s.logger.Warn("Method not allowed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote_addr", r.RemoteAddr),
		)
		return
	}

	payload, err := s.statusPayload()
	if err != nil {
		s.sendErrorResponse(w, http.StatusInternalServerError, "failed to serialize status")
		s.metrics.RecordRequest(r.Method, constants.PathStatus, http.StatusInternalServerError, time.Since(start), 0)
		s.logger.Error("Failed to serialize status payload", zap.Error(err))
		return
	}

	s.sendJSONResponse(w, http.StatusOK, payload)
	s.metrics.RecordRequest(r.Method, constants.PathStatus, http.StatusOK, time.Since(start), int64(len(payload)))
}

// healthHandler serves the detailed health report
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	_, span := s.tracer.StartSpan(r.Context(), "health_check")
	defer span.End()

	if r.Method != constants.MethodGET && r.Method != constants.MethodHEAD {
		s.sendMethodNotAllowed(w, []string{constants.MethodGET, constants.MethodHEAD}, r.Method)
		s.metrics.RecordRequest(r.Method, constants.PathHealth, http.StatusMethodNotAllowed, time.Since(start), 0)
		return
	}

	svc := s.serviceIdentity()
	report := observability.HealthReport{
		Status:    constants.StatusHealthy,
		Service:   svc.Name,
		Timestamp: time.Now(),
		Version:   svc.Version,
		Uptime:    time.Since(s.startTime).String(),
		Checks: map[string]bool{
			"openapi_document": s.doc != nil,
		},
	}

	w.Header().Set(constants.HeaderContentType, constants.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(report)

	s.metrics.RecordRequest(r.Method, constants.PathHealth, http.StatusOK, time.Since(start), 0)
	s.logger.Debug("Health check completed",
		zap.String("path", r.URL.Path),
		zap.String("remote_addr", r.RemoteAddr),
	)
}

// readinessHandler serves the readiness probe
func (s *Server) readinessHandler(w http.ResponseWriter, r *http.Request) {
	_, span := s.tracer.StartSpan(r.Context(), "readiness_check")
	defer span.End()

	if r.Method != constants.MethodGET && r.Method != constants.MethodHEAD {
		s.sendMethodNotAllowed(w, []string{constants.MethodGET, constants.MethodHEAD}, r.Method)
		return
	}

	ready := s.doc != nil

	w.Header().Set(constants.HeaderContentType, constants.ContentTypeJSON)
	if ready {
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ready"})
	} else {
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "not ready"})
	}

	s.logger.Debug("Readiness check completed",
		zap.String("path", r.URL.Path),
		zap.Bool("ready", ready),
	)
}

// openapiHandler serves the embedded API description
func (s *Server) openapiHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	_, span := s.tracer.StartSpan(r.Context(), "openapi_document")
	defer span.End()

	if r.Method != constants.MethodGET && r.Method != constants.MethodHEAD {
		s.sendMethodNotAllowed(w, []string{constants.MethodGET, constants.MethodHEAD}, r.Method)
		s.metrics.RecordRequest(r.Method, constants.PathOpenAPI, http.StatusMethodNotAllowed, time.Since(start), 0)
		return
	}

	body := s.doc.JSON()
	s.sendJSONResponse(w, http.StatusOK, body)
	s.metrics.RecordRequest(r.Method, constants.PathOpenAPI, http.StatusOK, time.Since(start), int64(len(body)))
}

// notFoundHandler renders unknown paths as JSON for content-type uniformity
func (s *Server) notFoundHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	s.sendErrorResponse(w, http.StatusNotFound, "not found")
	s.metrics.RecordRequest(r.Method, "unmatched", http.StatusNotFound, time.Since(start), 0)
	s.logger.Debug("Unmatched path",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)
}
