package domain

// ParsedTravelData is the loosely-typed result of extracting a travel
// confirmation. Every field is optional; empty strings mean "not found".
// JSON names match the field set the extraction prompt asks for.
type ParsedTravelData struct {
	City      string `json:"city,omitempty"`
	Country   string `json:"country,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`

	AccommodationName       string `json:"accommodation_name,omitempty"`
	AccommodationType       string `json:"accommodation_type,omitempty"`
	AccommodationAddress    string `json:"accommodation_address,omitempty"`
	AccommodationConfirmed  *bool  `json:"accommodation_confirmed,omitempty"`
	AccommodationGuests     *int   `json:"accommodation_guests,omitempty"`
	AccommodationBookingURL string `json:"accommodation_bookingUrl,omitempty"`

	TransportType       string `json:"transport_type,omitempty"`
	TransportFrom       string `json:"transport_from,omitempty"`
	TransportTo         string `json:"transport_to,omitempty"`
	TransportDate       string `json:"transport_date,omitempty"`
	TransportTime       string `json:"transport_time,omitempty"`
	TransportProvider   string `json:"transport_provider,omitempty"`
	TransportStatus     string `json:"transport_status,omitempty"`
	TransportBookingURL string `json:"transport_bookingUrl,omitempty"`

	ConfirmationNumber string `json:"confirmationNumber,omitempty"`
	Notes              string `json:"notes,omitempty"`
}

// HasAccommodation reports whether any accommodation field was extracted.
func (p ParsedTravelData) HasAccommodation() bool {
	return p.AccommodationName != "" || p.AccommodationType != "" ||
		p.AccommodationAddress != "" || p.AccommodationConfirmed != nil ||
		p.AccommodationGuests != nil || p.AccommodationBookingURL != ""
}

// HasTransport reports whether any transport field was extracted.
func (p ParsedTravelData) HasTransport() bool {
	return p.TransportType != "" || p.TransportFrom != "" || p.TransportTo != "" ||
		p.TransportDate != "" || p.TransportTime != "" || p.TransportProvider != "" ||
		p.TransportStatus != "" || p.TransportBookingURL != ""
}

// Sheet tab names used by the read and write paths.
const (
	SheetDestinations   = "Destinations"
	SheetFamilyMembers  = "Family_Members"
	SheetTodos          = "Todos"
	SheetAccommodations = "Accommodations"
	SheetTransportation = "Transportation"
)

// ChangeAction is what the webhook should do with a row.
type ChangeAction string

const (
	ChangeAdd    ChangeAction = "add"
	ChangeUpdate ChangeAction = "update"
)

// SheetChange is one row-level edit sent to the spreadsheet webhook.
// RowIndex is only meaningful for updates and is 1-based like the sheet.
type SheetChange struct {
	Sheet       string       `json:"sheet"`
	Action      ChangeAction `json:"action"`
	RowIndex    int          `json:"rowIndex,omitempty"`
	Data        []string     `json:"data"`
	Description string       `json:"description"`
}

// ChangePreview is the set of edits implied by a parsed confirmation and a
// human-readable summary of them.
type ChangePreview struct {
	Changes []SheetChange `json:"changes"`
	Summary string        `json:"summary"`
}

// ApplyResult is the webhook's verdict on a batch of changes.
type ApplyResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ExportFile is a downloadable CSV block.
type ExportFile struct {
	Kind     string `json:"type"`
	Filename string `json:"filename"`
	Content  string `json:"content"`
}
