package handler

import (
	"net/http"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/family-trip/backend/internal/domain"
)

// TripStateResponse is the body of GET /trip and POST /trip/refresh.
// Error is null unless the trip on display is stale.
type TripStateResponse struct {
	Trip    TripResponse `json:"trip"`
	Loading bool         `json:"loading"`
	Error   *string      `json:"error"`
}

// TripResponse is the wire form of domain.Trip. Date bounds are plain
// calendar dates.
type TripResponse struct {
	ID            string                `json:"id"`
	Title         string                `json:"title"`
	StartDate     openapi_types.Date    `json:"startDate"`
	EndDate       openapi_types.Date    `json:"endDate"`
	TotalDays     int                   `json:"totalDays"`
	Countries     []string              `json:"countries"`
	Destinations  []domain.Destination  `json:"destinations"`
	FamilyMembers []domain.FamilyMember `json:"familyMembers"`
	Todos         []domain.TodoItem     `json:"todos"`
	LastUpdated   *time.Time            `json:"lastUpdated,omitempty"`
}

// GetTrip handles GET /trip. It never touches the spreadsheet.
func (s *Server) GetTrip(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, stateToResponse(s.trips.Snapshot()))
}

// RefreshTrip handles POST /trip/refresh.
// A failed reload is still a 200: the response carries the previous trip and
// a non-null error.
func (s *Server) RefreshTrip(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, stateToResponse(s.trips.Load(r.Context())))
}

// --- mapping helpers --------------------------------------------------------

func stateToResponse(st domain.TripState) TripStateResponse {
	resp := TripStateResponse{Trip: tripToResponse(st.Trip), Loading: st.Loading}
	if st.Error != "" {
		resp.Error = &st.Error
	}
	return resp
}

// tripToResponse converts a domain.Trip into its wire form. Nil slices are
// sent as empty arrays.
func tripToResponse(t domain.Trip) TripResponse {
	resp := TripResponse{
		ID:            t.ID,
		Title:         t.Title,
		StartDate:     openapi_types.Date{Time: t.StartDate},
		EndDate:       openapi_types.Date{Time: t.EndDate},
		TotalDays:     t.TotalDays,
		Countries:     nonNil(t.Countries),
		Destinations:  nonNil(t.Destinations),
		FamilyMembers: nonNil(t.FamilyMembers),
		Todos:         nonNil(t.Todos),
	}
	if !t.LastUpdated.IsZero() {
		lu := t.LastUpdated.UTC()
		resp.LastUpdated = &lu
	}
	return resp
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
