package handler

import (
	"errors"
	"net/http"

	"github.com/pkordes/family-trip/backend/internal/domain"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a stable machine code and a message for people.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func errorBody(code, message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: code, Message: message}}
}

// notFoundBody returns an ErrorResponse for a missing resource.
// The caller supplies the human-readable message because the handler is the
// layer that knows what was being looked up.
func notFoundBody(message string) ErrorResponse {
	return errorBody("not_found", message)
}

// requestBody returns an ErrorResponse for a bad request rejected before
// reaching the service layer (e.g. missing or malformed body).
func requestBody(message string) ErrorResponse {
	return errorBody("validation_error", message)
}

// writeServiceError maps a service error to its status and body.
// Unknown errors are logged and reported as 500 without detail.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusUnprocessableEntity, errorBody("validation_error", domain.Reason(err)))
	case errors.Is(err, domain.ErrInvalidCredential):
		writeJSON(w, http.StatusUnauthorized, errorBody("invalid_credential", "Incorrect password"))
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, notFoundBody(notFoundMessage(err)))
	case errors.Is(err, domain.ErrNoChanges):
		writeJSON(w, http.StatusConflict, errorBody("no_changes", domain.Reason(err)))
	case errors.Is(err, domain.ErrConflict):
		writeJSON(w, http.StatusConflict, errorBody("conflict", domain.Reason(err)))
	case errors.Is(err, domain.ErrExtraction):
		writeJSON(w, http.StatusBadGateway, errorBody("extraction_failed", domain.Reason(err)))
	case errors.Is(err, domain.ErrWriteFailed):
		writeJSON(w, http.StatusBadGateway, errorBody("write_failed", domain.Reason(err)))
	case errors.Is(err, domain.ErrNotConfigured):
		writeJSON(w, http.StatusServiceUnavailable, errorBody("not_configured", domain.Reason(err)))
	default:
		s.log.ErrorContext(r.Context(), "unhandled service error", "error", err, "path", r.URL.Path)
		writeJSON(w, http.StatusInternalServerError, errorBody("internal_error", "internal server error"))
	}
}

// notFoundMessage keeps a specific reason when the service gave one and
// otherwise assumes the admin session was the thing not found.
func notFoundMessage(err error) string {
	if reason := domain.Reason(err); reason != err.Error() {
		return reason
	}
	return "admin session not found"
}
