package domain

import "time"

// FallbackTrip returns the bundled itinerary shown before the first
// successful sheet load and whenever a load fails.
// It builds a fresh value on every call so callers can never share slices.
func FallbackTrip() Trip {
	date := func(m time.Month, d int) time.Time { return time.Date(2025, m, d, 0, 0, 0, 0, time.UTC) }

	return Trip{
		ID:        "family-europe-2025",
		Title:     "Family Europe Adventure 2025",
		StartDate: date(time.June, 15),
		EndDate:   date(time.July, 5),
		TotalDays: 21,
		Countries: []string{"Italy", "France", "Spain", "Portugal"},
		Destinations: []Destination{
			{
				ID: "rome", City: "Rome", Country: "Italy", CountryCode: "IT", Flag: "🇮🇹",
				StartDate: "2025-06-15", EndDate: "2025-06-19",
				Accommodation: &Accommodation{
					ID: "rome-accommodation", Name: "Trastevere Family Apartment", Type: AccommodationAirbnb,
					Address: "Via della Lungaretta, Rome", CheckIn: "2025-06-15", CheckOut: "2025-06-19",
					Nights: 4, Guests: 6, Confirmed: true,
				},
				InboundTransport: &Transportation{
					ID: "rome-transport", Type: TransportFlight, From: "Home", To: "Rome FCO",
					DepartureDate: "2025-06-14", Status: TransportConfirmed,
				},
				KeyEvents: []string{"Colosseum tour", "Vatican Museums"},
			},
			{
				ID: "sorrento", City: "Sorrento", Country: "Italy", CountryCode: "IT", Flag: "🇮🇹",
				StartDate: "2025-06-19", EndDate: "2025-06-23",
				InboundTransport: &Transportation{
					ID: "sorrento-transport", Type: TransportTrain, From: "Rome", To: "Sorrento",
					DepartureDate: "2025-06-19", Status: TransportToBook,
				},
				KeyEvents: []string{"Capri day trip"},
			},
			{
				ID: "nice", City: "Nice", Country: "France", CountryCode: "FR", Flag: "🇫🇷",
				StartDate: "2025-06-23", EndDate: "2025-06-27",
				KeyEvents: []string{},
			},
			{
				ID: "barcelona", City: "Barcelona", Country: "Spain", CountryCode: "ES", Flag: "🇪🇸",
				StartDate: "2025-06-27", EndDate: "2025-07-01",
				KeyEvents: []string{"Sagrada Familia"},
			},
			{
				ID: "lisbon", City: "Lisbon", Country: "Portugal", CountryCode: "PT", Flag: "🇵🇹",
				StartDate: "2025-07-01", EndDate: "2025-07-05",
				KeyEvents: []string{},
			},
		},
		FamilyMembers: []FamilyMember{},
		Todos:         []TodoItem{},
	}
}
