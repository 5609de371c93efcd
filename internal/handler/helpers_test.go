package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/family-trip/backend/internal/domain"
	"github.com/pkordes/family-trip/backend/internal/handler"
	"github.com/pkordes/family-trip/backend/internal/middleware"
)

// ---- mocks -----------------------------------------------------------------

// mockTripServicer is a test double for handler.TripServicer.
// Set only the method fields your test needs.
type mockTripServicer struct {
	snapshot func() domain.TripState
	load     func(ctx context.Context) domain.TripState
}

func (m *mockTripServicer) Snapshot() domain.TripState { return m.snapshot() }
func (m *mockTripServicer) Load(ctx context.Context) domain.TripState {
	return m.load(ctx)
}

// mockAdminServicer is a test double for handler.AdminServicer.
type mockAdminServicer struct {
	unlock     func(password string) (string, domain.AdminSession, error)
	session    func(id string) (domain.AdminSession, error)
	parse      func(ctx context.Context, id, text string) (domain.AdminSession, error)
	apply      func(ctx context.Context, id string) (domain.AdminSession, error)
	export     func(id string) ([]domain.ExportFile, error)
	exportFile func(id, kind string) (domain.ExportFile, error)
	close      func(id string) error
}

func (m *mockAdminServicer) Unlock(password string) (string, domain.AdminSession, error) {
	return m.unlock(password)
}
func (m *mockAdminServicer) Session(id string) (domain.AdminSession, error) {
	return m.session(id)
}
func (m *mockAdminServicer) Parse(ctx context.Context, id, text string) (domain.AdminSession, error) {
	return m.parse(ctx, id, text)
}
func (m *mockAdminServicer) Apply(ctx context.Context, id string) (domain.AdminSession, error) {
	return m.apply(ctx, id)
}
func (m *mockAdminServicer) Export(id string) ([]domain.ExportFile, error) {
	return m.export(id)
}
func (m *mockAdminServicer) ExportFile(id, kind string) (domain.ExportFile, error) {
	return m.exportFile(id, kind)
}
func (m *mockAdminServicer) Close(id string) error {
	return m.close(id)
}

// staticVerifier accepts exactly one token and maps it to sessionID.
type staticVerifier struct{}

func (staticVerifier) Verify(raw string) (string, error) {
	if raw != validToken {
		return "", errors.New("invalid token")
	}
	return sessionID, nil
}

// compile-time checks: mocks must satisfy the handler interfaces.
var (
	_ handler.TripServicer     = (*mockTripServicer)(nil)
	_ handler.AdminServicer    = (*mockAdminServicer)(nil)
	_ middleware.TokenVerifier = staticVerifier{}
)

// ---- helpers ---------------------------------------------------------------

const (
	validToken = "good-token"
	sessionID  = "3f2c9e4a-0000-4000-8000-000000000001"
)

// newHTTPHandler wires a Server with the given mocks into its chi router.
// This mirrors exactly how main.go wires it in production.
func newHTTPHandler(trips handler.TripServicer, admin handler.AdminServicer) http.Handler {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return handler.NewServer(trips, admin, staticVerifier{}, log).Routes()
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(v))
	return &buf
}

// do sends req through h, adding the valid bearer token when authed is true.
func do(h http.Handler, req *http.Request, authed bool) *httptest.ResponseRecorder {
	if authed {
		req.Header.Set("Authorization", "Bearer "+validToken)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) handler.ErrorDetail {
	t.Helper()
	var body handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body.Error
}
