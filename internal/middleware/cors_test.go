package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/family-trip/backend/internal/middleware"
)

const frontend = "http://localhost:5173"

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestCORSHandler_SimpleRequests(t *testing.T) {
	tests := []struct {
		name       string
		origin     string
		wantOrigin string
	}{
		{name: "allowed origin", origin: frontend, wantOrigin: frontend},
		{name: "foreign origin", origin: "http://evil.example.com", wantOrigin: ""},
		{name: "no origin", origin: "", wantOrigin: ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := middleware.NewCORSHandler([]string{frontend})(okHandler)

			req := httptest.NewRequest(http.MethodGet, "/trip", nil)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			// The handler still runs; the browser enforces the missing header.
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tc.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestCORSHandler_ExposesContentDisposition(t *testing.T) {
	h := middleware.NewCORSHandler([]string{frontend})(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/admin/export?type=destinations", nil)
	req.Header.Set("Origin", frontend)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "Content-Disposition", rec.Header().Get("Access-Control-Expose-Headers"))
}

// Access-Control-Request-Headers is lowercase, as browsers send it.
func TestCORSHandler_Preflight(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		headers string
		allowed bool
	}{
		{name: "parse with json body", method: http.MethodPost, headers: "authorization,content-type", allowed: true},
		{name: "close session", method: http.MethodDelete, headers: "authorization", allowed: true},
		{name: "put is not part of the api", method: http.MethodPut, headers: "content-type", allowed: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := middleware.NewCORSHandler([]string{frontend})(okHandler)

			req := httptest.NewRequest(http.MethodOptions, "/admin/session", nil)
			req.Header.Set("Origin", frontend)
			req.Header.Set("Access-Control-Request-Method", tc.method)
			req.Header.Set("Access-Control-Request-Headers", tc.headers)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Less(t, rec.Code, 300, "preflight status")
			if !tc.allowed {
				assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
				return
			}
			assert.Equal(t, frontend, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), tc.method)
			assert.Equal(t, "600", rec.Header().Get("Access-Control-Max-Age"))
		})
	}
}
