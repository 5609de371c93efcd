// Package domain contains the core data types for the Family Trip backend.
// This package has zero external dependencies and is imported by every other
// internal package (sheet, gsheets, llm, service, handler).
package domain

import "time"

// AccommodationType is the kind of lodging booked for a destination.
type AccommodationType string

const (
	AccommodationAirbnb AccommodationType = "airbnb"
	AccommodationVRBO   AccommodationType = "vrbo"
	AccommodationHotel  AccommodationType = "hotel"
)

// TransportType is the mode of travel into a destination.
type TransportType string

const (
	TransportFlight TransportType = "flight"
	TransportTrain  TransportType = "train"
	TransportCar    TransportType = "car"
	TransportFerry  TransportType = "ferry"
)

// TransportStatus tracks whether a leg has been booked.
type TransportStatus string

const (
	TransportConfirmed TransportStatus = "confirmed"
	TransportPending   TransportStatus = "pending"
	TransportToBook    TransportStatus = "to-book"
)

// TodoCategory groups to-do items on the planning board.
type TodoCategory string

const (
	TodoTransportation TodoCategory = "transportation"
	TodoLodging        TodoCategory = "lodging"
	TodoFlights        TodoCategory = "flights"
	TodoOther          TodoCategory = "other"
)

// Priority is the urgency of a to-do item.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Accommodation is where the family sleeps at a destination.
// CheckIn and CheckOut are "2006-01-02" strings copied from the destination
// because the sheet has no separate columns for them.
type Accommodation struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Type       AccommodationType `json:"type"`
	Address    string            `json:"address"`
	CheckIn    string            `json:"checkIn"`
	CheckOut   string            `json:"checkOut"`
	Nights     int               `json:"nights"`
	Guests     int               `json:"guests"`
	Confirmed  bool              `json:"confirmed"`
	BookingURL string            `json:"bookingUrl,omitempty"`
}

// Transportation is a single travel leg.
type Transportation struct {
	ID            string          `json:"id"`
	Type          TransportType   `json:"type"`
	From          string          `json:"from"`
	To            string          `json:"to"`
	DepartureDate string          `json:"departureDate"`
	DepartureTime string          `json:"departureTime,omitempty"`
	Provider      string          `json:"provider,omitempty"`
	Status        TransportStatus `json:"status"`
	BookingURL    string          `json:"bookingUrl,omitempty"`
}

// Destination is one stop on the itinerary. StartDate and EndDate form an
// inclusive range of calendar dates.
type Destination struct {
	ID                string          `json:"id"`
	City              string          `json:"city"`
	Country           string          `json:"country"`
	CountryCode       string          `json:"countryCode"`
	Flag              string          `json:"flag"`
	StartDate         string          `json:"startDate"`
	EndDate           string          `json:"endDate"`
	Accommodation     *Accommodation  `json:"accommodation,omitempty"`
	InboundTransport  *Transportation `json:"inboundTransport,omitempty"`
	OutboundTransport *Transportation `json:"outboundTransport,omitempty"`
	KeyEvents         []string        `json:"keyEvents"`
}

// FamilyMember is a traveller who may receive notifications.
type FamilyMember struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Notifications bool   `json:"notifications"`
}

// TodoItem is a planning task.
type TodoItem struct {
	ID         string       `json:"id"`
	Category   TodoCategory `json:"category"`
	Task       string       `json:"task"`
	Completed  bool         `json:"completed"`
	Priority   Priority     `json:"priority"`
	DueDate    string       `json:"dueDate,omitempty"`
	AssignedTo []string     `json:"assignedTo,omitempty"`
}

// Trip is the aggregate root. It is never persisted on its own: every load
// rebuilds it from the fetched records plus a static template.
type Trip struct {
	ID            string
	Title         string
	StartDate     time.Time
	EndDate       time.Time
	TotalDays     int
	Countries     []string
	Destinations  []Destination
	FamilyMembers []FamilyMember
	Todos         []TodoItem
	LastUpdated   time.Time
}

// TripState is what a viewer sees: the trip currently on display, whether a
// load is in flight, and a non-fatal warning when the last load failed.
type TripState struct {
	Trip    Trip
	Loading bool
	Error   string
}
