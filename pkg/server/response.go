package server

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/matzehuels/notifstack/pkg/errors"
)

type errorResponse struct {
	Code      errors.Code `json:"code"`
	Message   string      `json:"message"`
	RequestID string      `json:"request_id,omitempty"`
}

// StatusFor maps an error to its HTTP status.
func StatusFor(err error) int {
	var tooLarge *http.MaxBytesError
	if stderrors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput,
		errors.ErrCodeInvalidScenario,
		errors.ErrCodeInvalidBudget,
		errors.ErrCodeInvalidRow,
		errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidLockState,
		errors.ErrCodeContractViolation:
		return http.StatusBadRequest
	case errors.ErrCodeFileNotFound, errors.ErrCodeRouteNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnsupported:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)
	resp := errorResponse{
		Code:      errors.GetCode(err),
		Message:   errors.UserMessage(err),
		RequestID: RequestID(r.Context()),
	}
	switch {
	case status == http.StatusRequestEntityTooLarge:
		resp.Code = errors.ErrCodeInvalidInput
		resp.Message = "request body too large"
	case status >= http.StatusInternalServerError:
		s.logger.Error("request failed", "error", err, "request_id", resp.RequestID)
		resp.Code = errors.ErrCodeInternal
		resp.Message = "internal error"
	default:
		s.logger.Debug("request rejected", "code", resp.Code, "error", err, "request_id", resp.RequestID)
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	s.writeError(w, r, errors.New(errors.ErrCodeRouteNotFound, "no route for %s %s", r.Method, r.URL.Path))
}

func (s *Server) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	s.writeError(w, r, errors.New(errors.ErrCodeUnsupported, "method %s not allowed on %s", r.Method, r.URL.Path))
}
