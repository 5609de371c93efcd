package sheet

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pkordes/family-trip/backend/internal/domain"
)

// NoChangesSummary is the preview summary when nothing actionable was extracted.
const NoChangesSummary = "No actionable changes detected from the parsed data."

// destinationHeaders is the header line of the direct-apply CSV block, in
// DestinationSchema order.
var destinationHeaders = []string{
	"ID", "City", "Country", "CountryCode", "Flag", "StartDate", "EndDate",
	"AccommodationName", "AccommodationType", "AccommodationAddress",
	"AccommodationConfirmed", "AccommodationGuests", "AccommodationBookingUrl",
	"TransportType", "TransportFrom", "TransportTo", "TransportDate",
	"TransportTime", "TransportProvider", "TransportStatus", "TransportBookingUrl",
	"KeyEvents",
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Slugify derives a destination id from a city name: lower-case with each
// whitespace run replaced by a single hyphen.
func Slugify(city string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(city), "-")
}

// GenerateChanges turns parsed confirmation data into sheet edits.
// A destination row is produced only when both city and start date are known.
func GenerateChanges(p domain.ParsedTravelData) domain.ChangePreview {
	changes := []domain.SheetChange{}

	if p.City != "" && p.StartDate != "" {
		changes = append(changes, domain.SheetChange{
			Sheet:       domain.SheetDestinations,
			Action:      domain.ChangeAdd,
			Data:        DestinationRow(p).Cells(),
			Description: describeDestination(p),
		})
	}

	return domain.ChangePreview{Changes: changes, Summary: summarize(changes)}
}

// DestinationRow lays parsed data out in DestinationSchema order.
// Country code and flag are left blank for a human to fill in; notes land in
// the key events column.
func DestinationRow(p domain.ParsedTravelData) Row {
	r := DestinationSchema.NewRow()
	r.Set(ColID, Slugify(p.City))
	r.Set(ColCity, p.City)
	r.Set(ColCountry, p.Country)
	r.Set(ColStartDate, p.StartDate)
	r.Set(ColEndDate, p.EndDate)
	r.Set(ColAccommodationName, p.AccommodationName)
	r.Set(ColAccommodationType, p.AccommodationType)
	r.Set(ColAccommodationAddress, p.AccommodationAddress)
	r.Set(ColAccommodationConfirmed, formatBool(p.AccommodationConfirmed))
	if p.AccommodationGuests != nil {
		r.Set(ColAccommodationGuests, fmt.Sprint(*p.AccommodationGuests))
	}
	r.Set(ColAccommodationBookingURL, p.AccommodationBookingURL)
	r.Set(ColTransportType, p.TransportType)
	r.Set(ColTransportFrom, p.TransportFrom)
	r.Set(ColTransportTo, p.TransportTo)
	r.Set(ColTransportDate, p.TransportDate)
	r.Set(ColTransportTime, p.TransportTime)
	r.Set(ColTransportProvider, p.TransportProvider)
	r.Set(ColTransportStatus, p.TransportStatus)
	r.Set(ColTransportBookingURL, p.TransportBookingURL)
	r.Set(ColKeyEvents, p.Notes)
	return r
}

// ChangesCSV renders destination changes as a header line plus one data
// line, keyed "destinations". Cells are joined verbatim without quoting.
func ChangesCSV(changes []domain.SheetChange) map[string]string {
	out := map[string]string{}
	for _, c := range changes {
		if c.Sheet == domain.SheetDestinations {
			out["destinations"] = strings.Join(destinationHeaders, ",") + "\n" + strings.Join(c.Data, ",")
		}
	}
	return out
}

func describeDestination(p domain.ParsedTravelData) string {
	if p.EndDate == "" {
		return fmt.Sprintf("Add new destination: %s (from %s)", p.City, p.StartDate)
	}
	return fmt.Sprintf("Add new destination: %s (%s - %s)", p.City, p.StartDate, p.EndDate)
}

func summarize(changes []domain.SheetChange) string {
	if len(changes) == 0 {
		return NoChangesSummary
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d proposed changes:\n", len(changes))
	for i, c := range changes {
		fmt.Fprintf(&b, "%d. %s\n", i+1, c.Description)
	}
	return b.String()
}

func formatBool(b *bool) string {
	if b != nil && *b {
		return "true"
	}
	return "false"
}
