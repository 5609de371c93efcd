package sheet

import (
	"fmt"
	"time"

	"github.com/jszwec/csvutil"

	"github.com/pkordes/family-trip/backend/internal/domain"
)

// Export block kinds, also used as the filename prefix.
const (
	ExportDestinations   = "destinations"
	ExportAccommodations = "accommodations"
	ExportTransportation = "transportation"
)

// ExportKinds lists the manual-download blocks in display order.
var ExportKinds = []string{ExportDestinations, ExportAccommodations, ExportTransportation}

type destinationRecord struct {
	ID        string `csv:"ID"`
	City      string `csv:"City"`
	Country   string `csv:"Country"`
	StartDate string `csv:"StartDate"`
	EndDate   string `csv:"EndDate"`
	Notes     string `csv:"Notes"`
}

type accommodationRecord struct {
	DestinationID string `csv:"DestinationID"`
	Name          string `csv:"Name"`
	Type          string `csv:"Type"`
	Address       string `csv:"Address"`
	CheckIn       string `csv:"CheckIn"`
	CheckOut      string `csv:"CheckOut"`
	Confirmed     *bool  `csv:"Confirmed,omitempty"`
	Guests        *int   `csv:"Guests,omitempty"`
	BookingURL    string `csv:"BookingUrl"`
}

type transportRecord struct {
	DestinationID      string `csv:"DestinationID"`
	Type               string `csv:"Type"`
	From               string `csv:"From"`
	To                 string `csv:"To"`
	Date               string `csv:"Date"`
	Time               string `csv:"Time"`
	Provider           string `csv:"Provider"`
	Status             string `csv:"Status"`
	BookingURL         string `csv:"BookingUrl"`
	ConfirmationNumber string `csv:"ConfirmationNumber"`
}

// ExportCSV renders parsed data as up to three CSV blocks for manual import,
// keyed by ExportDestinations, ExportAccommodations and ExportTransportation.
// A block is present only when its field group was extracted. Unlike
// ChangesCSV, cells are quoted so embedded commas survive.
func ExportCSV(p domain.ParsedTravelData) (map[string]string, error) {
	out := map[string]string{}
	destID := ""
	if p.City != "" {
		destID = Slugify(p.City)
	}

	if p.City != "" {
		b, err := csvutil.Marshal([]destinationRecord{{
			ID:        destID,
			City:      p.City,
			Country:   p.Country,
			StartDate: p.StartDate,
			EndDate:   p.EndDate,
			Notes:     p.Notes,
		}})
		if err != nil {
			return nil, fmt.Errorf("sheet.ExportCSV: destinations: %w", err)
		}
		out[ExportDestinations] = string(b)
	}

	if p.HasAccommodation() {
		b, err := csvutil.Marshal([]accommodationRecord{{
			DestinationID: destID,
			Name:          p.AccommodationName,
			Type:          p.AccommodationType,
			Address:       p.AccommodationAddress,
			CheckIn:       p.StartDate,
			CheckOut:      p.EndDate,
			Confirmed:     p.AccommodationConfirmed,
			Guests:        p.AccommodationGuests,
			BookingURL:    p.AccommodationBookingURL,
		}})
		if err != nil {
			return nil, fmt.Errorf("sheet.ExportCSV: accommodations: %w", err)
		}
		out[ExportAccommodations] = string(b)
	}

	if p.HasTransport() {
		b, err := csvutil.Marshal([]transportRecord{{
			DestinationID:      destID,
			Type:               p.TransportType,
			From:               p.TransportFrom,
			To:                 p.TransportTo,
			Date:               p.TransportDate,
			Time:               p.TransportTime,
			Provider:           p.TransportProvider,
			Status:             p.TransportStatus,
			BookingURL:         p.TransportBookingURL,
			ConfirmationNumber: p.ConfirmationNumber,
		}})
		if err != nil {
			return nil, fmt.Errorf("sheet.ExportCSV: transportation: %w", err)
		}
		out[ExportTransportation] = string(b)
	}

	return out, nil
}

// ExportFiles wraps ExportCSV output as downloadable files in ExportKinds order.
func ExportFiles(p domain.ParsedTravelData, now time.Time) ([]domain.ExportFile, error) {
	blocks, err := ExportCSV(p)
	if err != nil {
		return nil, err
	}
	files := []domain.ExportFile{}
	for _, kind := range ExportKinds {
		content, ok := blocks[kind]
		if !ok {
			continue
		}
		files = append(files, domain.ExportFile{
			Kind:     kind,
			Filename: ExportFilename(kind, now),
			Content:  content,
		})
	}
	return files, nil
}

// ExportFilename is "<kind>_<YYYY-MM-DD>.csv" using the UTC date of now.
func ExportFilename(kind string, now time.Time) string {
	return kind + "_" + now.UTC().Format(dateLayout) + ".csv"
}
