package sheet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/family-trip/backend/internal/domain"
	"github.com/pkordes/family-trip/backend/internal/sheet"
)

// ---- helpers ---------------------------------------------------------------

var destinationHeader = sheet.DestinationSchema.Columns()

// destinationCells returns a fully-populated Destinations row.
// Callers override individual cells by schema column.
func destinationCells(overrides map[string]string) []string {
	r := sheet.DestinationSchema.NewRow()
	defaults := map[string]string{
		sheet.ColID:                      "rome",
		sheet.ColCity:                    "Rome",
		sheet.ColCountry:                 "Italy",
		sheet.ColCountryCode:             "IT",
		sheet.ColFlag:                    "🇮🇹",
		sheet.ColStartDate:               "2025-06-15",
		sheet.ColEndDate:                 "2025-06-19",
		sheet.ColAccommodationName:       "Trastevere Apartment",
		sheet.ColAccommodationType:       "airbnb",
		sheet.ColAccommodationAddress:    "Via della Lungaretta",
		sheet.ColAccommodationConfirmed:  "TRUE",
		sheet.ColAccommodationGuests:     "4",
		sheet.ColAccommodationBookingURL: "https://airbnb.example/123",
		sheet.ColTransportType:           "flight",
		sheet.ColTransportFrom:           "Boston",
		sheet.ColTransportTo:             "Rome FCO",
		sheet.ColTransportDate:           "2025-06-14",
		sheet.ColTransportTime:           "18:30",
		sheet.ColTransportProvider:       "ITA Airways",
		sheet.ColTransportStatus:         "confirmed",
		sheet.ColTransportBookingURL:     "https://ita.example/abc",
		sheet.ColKeyEvents:               "Colosseum tour; Vatican Museums ;",
	}
	for col, v := range defaults {
		r.Set(col, v)
	}
	for col, v := range overrides {
		r.Set(col, v)
	}
	return r.Cells()
}

// ---- schema ----------------------------------------------------------------

func TestSchemas_ColumnCounts(t *testing.T) {
	assert.Equal(t, 22, sheet.DestinationSchema.Len())
	assert.Equal(t, 3, sheet.FamilyMemberSchema.Len())
	assert.Equal(t, 7, sheet.TodoSchema.Len())
	assert.Equal(t, 0, sheet.DestinationSchema.Index(sheet.ColID))
	assert.Equal(t, 21, sheet.DestinationSchema.Index(sheet.ColKeyEvents))
}

func TestNewSchema_DuplicateColumn(t *testing.T) {
	_, err := sheet.NewSchema("broken", "id", "name", "id")

	require.Error(t, err)
	assert.ErrorContains(t, err, `duplicate column "id"`)
}

func TestRow_GetMissingTrailingCell(t *testing.T) {
	r := sheet.TodoSchema.Row([]string{"t1", "other"})

	assert.Equal(t, "other", r.Get(sheet.ColCategory))
	assert.Equal(t, "", r.Get(sheet.ColAssignedTo))
}

// ---- Destinations ----------------------------------------------------------

func TestDestinations_FullRow(t *testing.T) {
	got := sheet.Destinations([][]string{destinationHeader, destinationCells(nil)})

	require.Len(t, got, 1)
	d := got[0]
	assert.Equal(t, "rome", d.ID)
	assert.Equal(t, "Rome", d.City)
	assert.Equal(t, []string{"Colosseum tour", "Vatican Museums"}, d.KeyEvents)

	require.NotNil(t, d.Accommodation)
	assert.Equal(t, "rome-accommodation", d.Accommodation.ID)
	assert.Equal(t, domain.AccommodationAirbnb, d.Accommodation.Type)
	assert.Equal(t, "2025-06-15", d.Accommodation.CheckIn)
	assert.Equal(t, "2025-06-19", d.Accommodation.CheckOut)
	assert.Equal(t, 4, d.Accommodation.Nights)
	assert.Equal(t, 4, d.Accommodation.Guests)
	assert.True(t, d.Accommodation.Confirmed)

	require.NotNil(t, d.InboundTransport)
	assert.Equal(t, "rome-transport", d.InboundTransport.ID)
	assert.Equal(t, domain.TransportFlight, d.InboundTransport.Type)
	assert.Equal(t, domain.TransportConfirmed, d.InboundTransport.Status)
	assert.Equal(t, "18:30", d.InboundTransport.DepartureTime)
	assert.Nil(t, d.OutboundTransport)
}

func TestDestinations_SkipsHeaderRow(t *testing.T) {
	got := sheet.Destinations([][]string{destinationHeader})

	assert.Empty(t, got)
}

func TestDestinations_ShortRowTreatsMissingCellsAsEmpty(t *testing.T) {
	got := sheet.Destinations([][]string{destinationHeader, {"nice", "Nice", "France"}})

	require.Len(t, got, 1)
	assert.Equal(t, "Nice", got[0].City)
	assert.Equal(t, "", got[0].StartDate)
	assert.Nil(t, got[0].Accommodation)
	assert.Nil(t, got[0].InboundTransport)
	assert.NotNil(t, got[0].KeyEvents)
	assert.Empty(t, got[0].KeyEvents)
}

func TestDestinations_EmptyAccommodationName_NoAccommodation(t *testing.T) {
	got := sheet.Destinations([][]string{
		destinationHeader,
		destinationCells(map[string]string{sheet.ColAccommodationName: ""}),
	})

	require.Len(t, got, 1)
	assert.Nil(t, got[0].Accommodation)
}

func TestDestinations_ToBeBooked_NoAccommodation(t *testing.T) {
	got := sheet.Destinations([][]string{
		destinationHeader,
		destinationCells(map[string]string{sheet.ColAccommodationName: "To be booked"}),
	})

	require.Len(t, got, 1)
	assert.Nil(t, got[0].Accommodation)
}

func TestDestinations_TransportNeedsTypeFromAndTo(t *testing.T) {
	for _, col := range []string{sheet.ColTransportType, sheet.ColTransportFrom, sheet.ColTransportTo} {
		t.Run(col, func(t *testing.T) {
			got := sheet.Destinations([][]string{
				destinationHeader,
				destinationCells(map[string]string{col: ""}),
			})

			require.Len(t, got, 1)
			assert.Nil(t, got[0].InboundTransport)
		})
	}
}

func TestDestinations_TransportStatusDefaultsToPending(t *testing.T) {
	got := sheet.Destinations([][]string{
		destinationHeader,
		destinationCells(map[string]string{sheet.ColTransportStatus: ""}),
	})

	require.Len(t, got, 1)
	require.NotNil(t, got[0].InboundTransport)
	assert.Equal(t, domain.TransportPending, got[0].InboundTransport.Status)
}

func TestDestinations_GuestsFallback(t *testing.T) {
	cases := map[string]int{"abc": 6, "": 6, "0": 6, "4": 4, " 8 ": 8}
	for in, want := range cases {
		got := sheet.Destinations([][]string{
			destinationHeader,
			destinationCells(map[string]string{sheet.ColAccommodationGuests: in}),
		})

		require.Len(t, got, 1)
		require.NotNil(t, got[0].Accommodation)
		assert.Equal(t, want, got[0].Accommodation.Guests, "guests cell %q", in)
	}
}

// ---- empty id drop, every kind ---------------------------------------------

func TestNormalize_EmptyIDDropsRow(t *testing.T) {
	assert.Empty(t, sheet.Destinations([][]string{destinationHeader, destinationCells(map[string]string{sheet.ColID: ""})}))
	assert.Empty(t, sheet.FamilyMembers([][]string{{"id", "name", "notifications"}, {"", "Ghost", "true"}}))
	assert.Empty(t, sheet.Todos([][]string{{"id"}, {"", "other", "Orphan task"}}))
}

// ---- FamilyMembers ---------------------------------------------------------

func TestFamilyMembers_Notifications(t *testing.T) {
	got := sheet.FamilyMembers([][]string{
		{"id", "name", "notifications"},
		{"ann", "Ann", "True"},
		{"ben", "Ben", "yes"},
		{"cy", "Cy"},
	})

	require.Len(t, got, 3)
	assert.True(t, got[0].Notifications)
	assert.False(t, got[1].Notifications)
	assert.False(t, got[2].Notifications)
	assert.Equal(t, "Cy", got[2].Name)
}

// ---- Todos -----------------------------------------------------------------

func TestTodos_Defaults(t *testing.T) {
	got := sheet.Todos([][]string{
		sheet.TodoSchema.Columns(),
		{"t1", "lodging", "Book Nice hotel"},
	})

	require.Len(t, got, 1)
	assert.Equal(t, domain.TodoLodging, got[0].Category)
	assert.Equal(t, domain.PriorityMedium, got[0].Priority)
	assert.False(t, got[0].Completed)
	assert.Empty(t, got[0].DueDate)
	assert.Nil(t, got[0].AssignedTo)
}

func TestTodos_FullRow(t *testing.T) {
	got := sheet.Todos([][]string{
		sheet.TodoSchema.Columns(),
		{"t2", "flights", "Buy tickets", "TRUE", "high", "2025-05-01", "Ann, Ben ,Cy"},
	})

	require.Len(t, got, 1)
	assert.True(t, got[0].Completed)
	assert.Equal(t, domain.PriorityHigh, got[0].Priority)
	assert.Equal(t, "2025-05-01", got[0].DueDate)
	assert.Equal(t, []string{"Ann", "Ben", "Cy"}, got[0].AssignedTo)
}

// ---- coercions -------------------------------------------------------------

func TestParseBool(t *testing.T) {
	for _, s := range []string{"TRUE", "true", "True"} {
		assert.True(t, sheet.ParseBool(s), s)
	}
	for _, s := range []string{"yes", "", "1", "false"} {
		assert.False(t, sheet.ParseBool(s), s)
	}
}

func TestParseGuests(t *testing.T) {
	assert.Equal(t, 6, sheet.ParseGuests("abc"))
	assert.Equal(t, 6, sheet.ParseGuests(""))
	assert.Equal(t, 4, sheet.ParseGuests("4"))
}

func TestSplitList_EmptySourceIsNil(t *testing.T) {
	assert.Nil(t, sheet.SplitList("", ";"))
	assert.Nil(t, sheet.SplitList("  ", ";"))
}

func TestNights(t *testing.T) {
	assert.Equal(t, 4, sheet.Nights("2025-06-15", "2025-06-19"))
	assert.Equal(t, 0, sheet.Nights("2025-06-15", ""))
	assert.Equal(t, 0, sheet.Nights("June 15", "2025-06-19"))
	assert.Equal(t, 0, sheet.Nights("2025-06-19", "2025-06-15"))
}
