package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/family-trip/backend/internal/domain"
)

func loadedState() domain.TripState {
	trip := domain.FallbackTrip()
	trip.LastUpdated = time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	trip.FamilyMembers = nil
	return domain.TripState{Trip: trip}
}

func TestGetTrip_200(t *testing.T) {
	svc := &mockTripServicer{snapshot: loadedState}

	req := httptest.NewRequest(http.MethodGet, "/trip", nil)
	rec := do(newHTTPHandler(svc, nil), req, false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Nil(t, body["error"])
	assert.Equal(t, false, body["loading"])

	trip := body["trip"].(map[string]any)
	assert.Equal(t, "family-europe-2025", trip["id"])
	assert.Equal(t, "2025-06-15", trip["startDate"])
	assert.Equal(t, "2025-07-05", trip["endDate"])
	assert.Equal(t, "2025-06-01T09:30:00Z", trip["lastUpdated"])
	assert.Equal(t, []any{}, trip["familyMembers"])

	dests := trip["destinations"].([]any)
	require.NotEmpty(t, dests)
	rome := dests[0].(map[string]any)
	assert.Equal(t, "rome", rome["id"])
	assert.Contains(t, rome, "keyEvents")
}

func TestGetTrip_BeforeFirstLoad(t *testing.T) {
	svc := &mockTripServicer{snapshot: func() domain.TripState {
		return domain.TripState{Trip: domain.FallbackTrip(), Loading: true}
	}}

	req := httptest.NewRequest(http.MethodGet, "/trip", nil)
	rec := do(newHTTPHandler(svc, nil), req, false)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, true, body["loading"])
	assert.NotContains(t, body["trip"].(map[string]any), "lastUpdated")
}

func TestRefreshTrip_200_WithStaleWarning(t *testing.T) {
	var called bool
	svc := &mockTripServicer{load: func(context.Context) domain.TripState {
		called = true
		return domain.TripState{Trip: domain.FallbackTrip(), Error: "Failed to load latest trip data. Showing cached version."}
	}}

	req := httptest.NewRequest(http.MethodPost, "/trip/refresh", nil)
	rec := do(newHTTPHandler(svc, nil), req, false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "Failed to load latest trip data. Showing cached version.", body["error"])
}
