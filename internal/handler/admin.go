package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/pkordes/family-trip/backend/internal/domain"
	"github.com/pkordes/family-trip/backend/internal/middleware"
)

// UnlockRequest is the body of POST /admin/unlock.
type UnlockRequest struct {
	Password string `json:"password"`
}

// UnlockResponse carries the bearer token for the new admin session.
type UnlockResponse struct {
	Token     string              `json:"token"`
	ExpiresAt time.Time           `json:"expiresAt"`
	Session   domain.AdminSession `json:"session"`
}

// ParseRequest is the body of POST /admin/parse.
type ParseRequest struct {
	Text string `json:"text"`
}

// UnlockAdmin handles POST /admin/unlock.
func (s *Server) UnlockAdmin(w http.ResponseWriter, r *http.Request) {
	var body UnlockRequest
	if !s.decodeBody(w, r, &body) {
		return
	}

	token, sess, err := s.admin.Unlock(body.Password)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, UnlockResponse{Token: token, ExpiresAt: sess.ExpiresAt, Session: sess})
}

// GetAdminSession handles GET /admin/session.
func (s *Server) GetAdminSession(w http.ResponseWriter, r *http.Request) {
	id, _ := middleware.SessionID(r.Context())
	sess, err := s.admin.Session(id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// CloseAdminSession handles DELETE /admin/session.
func (s *Server) CloseAdminSession(w http.ResponseWriter, r *http.Request) {
	id, _ := middleware.SessionID(r.Context())
	if err := s.admin.Close(id); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ParseConfirmation handles POST /admin/parse.
func (s *Server) ParseConfirmation(w http.ResponseWriter, r *http.Request) {
	var body ParseRequest
	if !s.decodeBody(w, r, &body) {
		return
	}

	id, _ := middleware.SessionID(r.Context())
	sess, err := s.admin.Parse(r.Context(), id, body.Text)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// ApplyChanges handles POST /admin/apply.
func (s *Server) ApplyChanges(w http.ResponseWriter, r *http.Request) {
	id, _ := middleware.SessionID(r.Context())
	sess, err := s.admin.Apply(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// decodeBody decodes a JSON request body into dst. On failure it writes the
// response (413 for an oversized body, 422 otherwise) and returns false.
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorBody("request_too_large", "request body too large"))
		return false
	}
	writeJSON(w, http.StatusUnprocessableEntity, requestBody("request body must be a JSON object"))
	return false
}
