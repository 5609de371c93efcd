package sheet

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkordes/family-trip/backend/internal/domain"
)

// DefaultGuests is used when the guests cell is missing or not a positive integer.
const DefaultGuests = 6

// ToBeBooked is the accommodation name the sheet uses as a placeholder.
const ToBeBooked = "To be booked"

const dateLayout = "2006-01-02"

// Destinations normalizes a Destinations tab. The first row is the header.
func Destinations(rows [][]string) []domain.Destination {
	out := []domain.Destination{}
	for _, cells := range dataRows(rows) {
		if d, ok := DestinationFromRow(cells); ok {
			out = append(out, d)
		}
	}
	return out
}

// FamilyMembers normalizes a Family_Members tab. The first row is the header.
func FamilyMembers(rows [][]string) []domain.FamilyMember {
	out := []domain.FamilyMember{}
	for _, cells := range dataRows(rows) {
		if m, ok := FamilyMemberFromRow(cells); ok {
			out = append(out, m)
		}
	}
	return out
}

// Todos normalizes a Todos tab. The first row is the header.
func Todos(rows [][]string) []domain.TodoItem {
	out := []domain.TodoItem{}
	for _, cells := range dataRows(rows) {
		if t, ok := TodoFromRow(cells); ok {
			out = append(out, t)
		}
	}
	return out
}

func dataRows(rows [][]string) [][]string {
	if len(rows) <= 1 {
		return nil
	}
	return rows[1:]
}

// DestinationFromRow maps one Destinations row. ok is false when the id cell
// is empty and the row should be dropped.
func DestinationFromRow(cells []string) (domain.Destination, bool) {
	r := DestinationSchema.Row(cells)
	id := r.Get(ColID)
	if id == "" {
		return domain.Destination{}, false
	}

	d := domain.Destination{
		ID:          id,
		City:        r.Get(ColCity),
		Country:     r.Get(ColCountry),
		CountryCode: r.Get(ColCountryCode),
		Flag:        r.Get(ColFlag),
		StartDate:   r.Get(ColStartDate),
		EndDate:     r.Get(ColEndDate),
		KeyEvents:   SplitList(r.Get(ColKeyEvents), ";"),
	}
	if d.KeyEvents == nil {
		d.KeyEvents = []string{}
	}

	if name := r.Get(ColAccommodationName); name != "" && name != ToBeBooked {
		d.Accommodation = &domain.Accommodation{
			ID:         id + "-accommodation",
			Name:       name,
			Type:       domain.AccommodationType(r.Get(ColAccommodationType)),
			Address:    r.Get(ColAccommodationAddress),
			CheckIn:    d.StartDate,
			CheckOut:   d.EndDate,
			Nights:     Nights(d.StartDate, d.EndDate),
			Guests:     ParseGuests(r.Get(ColAccommodationGuests)),
			Confirmed:  ParseBool(r.Get(ColAccommodationConfirmed)),
			BookingURL: r.Get(ColAccommodationBookingURL),
		}
	}

	typ, from, to := r.Get(ColTransportType), r.Get(ColTransportFrom), r.Get(ColTransportTo)
	if typ != "" && from != "" && to != "" {
		status := domain.TransportStatus(r.Get(ColTransportStatus))
		if status == "" {
			status = domain.TransportPending
		}
		d.InboundTransport = &domain.Transportation{
			ID:            id + "-transport",
			Type:          domain.TransportType(typ),
			From:          from,
			To:            to,
			DepartureDate: r.Get(ColTransportDate),
			DepartureTime: r.Get(ColTransportTime),
			Provider:      r.Get(ColTransportProvider),
			Status:        status,
			BookingURL:    r.Get(ColTransportBookingURL),
		}
	}

	return d, true
}

// FamilyMemberFromRow maps one Family_Members row.
func FamilyMemberFromRow(cells []string) (domain.FamilyMember, bool) {
	r := FamilyMemberSchema.Row(cells)
	id := r.Get(ColID)
	if id == "" {
		return domain.FamilyMember{}, false
	}
	return domain.FamilyMember{
		ID:            id,
		Name:          r.Get(ColName),
		Notifications: ParseBool(r.Get(ColNotifications)),
	}, true
}

// TodoFromRow maps one Todos row.
func TodoFromRow(cells []string) (domain.TodoItem, bool) {
	r := TodoSchema.Row(cells)
	id := r.Get(ColID)
	if id == "" {
		return domain.TodoItem{}, false
	}
	priority := domain.Priority(r.Get(ColPriority))
	if priority == "" {
		priority = domain.PriorityMedium
	}
	return domain.TodoItem{
		ID:         id,
		Category:   domain.TodoCategory(r.Get(ColCategory)),
		Task:       r.Get(ColTask),
		Completed:  ParseBool(r.Get(ColCompleted)),
		Priority:   priority,
		DueDate:    r.Get(ColDueDate),
		AssignedTo: SplitList(r.Get(ColAssignedTo), ","),
	}, true
}

// ParseBool is true only for a case-insensitive "true".
func ParseBool(s string) bool {
	return strings.EqualFold(s, "true")
}

// ParseGuests parses a base-10 guest count, falling back to DefaultGuests
// when the cell is empty, malformed, or not positive.
func ParseGuests(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return DefaultGuests
	}
	return n
}

// SplitList splits s on sep and trims each element. An empty source and
// empty elements yield nothing.
func SplitList(s, sep string) []string {
	var out []string
	for _, part := range strings.Split(s, sep) {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Nights is the number of nights between two "2006-01-02" dates, or 0 when
// either date is missing or malformed.
func Nights(start, end string) int {
	s, err := time.Parse(dateLayout, start)
	if err != nil {
		return 0
	}
	e, err := time.Parse(dateLayout, end)
	if err != nil {
		return 0
	}
	n := int(e.Sub(s).Hours() / 24)
	if n < 0 {
		return 0
	}
	return n
}
