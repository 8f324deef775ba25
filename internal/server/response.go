package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/patrickmn/go-cache"

	"github.com/statuskit/status-api/internal/constants"
)

// StatusResponse is the fixed payload served on the root route. Field order
// matters: the wire contract is {"service":...,"status":...}.
type StatusResponse struct {
	Service string `json:"service"`
	Status  string `json:"status"`
}

// statusPayload returns the serialized root payload for the current service
// identity. The bytes are cached per identity so repeated responses are
// byte-identical.
func (s *Server) statusPayload() ([]byte, error) {
	name := s.serviceIdentity().Name

	key := "status:" + name
	if cached, ok := s.payloads.Get(key); ok {
		return cached.([]byte), nil
	}

	buf, err := json.Marshal(StatusResponse{
		Service: name,
		Status:  constants.StatusOK,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to serialize status payload: %w", err)
	}

	s.payloads.Set(key, buf, cache.NoExpiration)
	return buf, nil
}

// sendJSONResponse sends a JSON response with the specified status code
func (s *Server) sendJSONResponse(w http.ResponseWriter, statusCode int, body []byte) {
	w.Header().Set(constants.HeaderContentType, constants.ContentTypeJSON)
	w.WriteHeader(statusCode)
	_, _ = w.Write(body)
}

// sendErrorResponse sends a JSON error response
func (s *Server) sendErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set(constants.HeaderContentType, constants.ContentTypeJSON)
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// sendMethodNotAllowed sends a 405 with the allowed methods
func (s *Server) sendMethodNotAllowed(w http.ResponseWriter, methods []string, requestedMethod string) {
	w.Header().Set(constants.HeaderContentType, constants.ContentTypeJSON)
	w.Header().Set(constants.HeaderAllow, strings.Join(methods, ", "))
	w.WriteHeader(http.StatusMethodNotAllowed)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error":   fmt.Sprintf("Method %s not allowed", requestedMethod),
		"methods": methods,
	})
}
