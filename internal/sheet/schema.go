package sheet

import "fmt"

// Column names shared by the Destinations schema and the serializer.
const (
	ColID                      = "id"
	ColCity                    = "city"
	ColCountry                 = "country"
	ColCountryCode             = "countryCode"
	ColFlag                    = "flag"
	ColStartDate               = "startDate"
	ColEndDate                 = "endDate"
	ColAccommodationName       = "accommodationName"
	ColAccommodationType       = "accommodationType"
	ColAccommodationAddress    = "accommodationAddress"
	ColAccommodationConfirmed  = "accommodationConfirmed"
	ColAccommodationGuests     = "accommodationGuests"
	ColAccommodationBookingURL = "accommodationBookingUrl"
	ColTransportType           = "transportType"
	ColTransportFrom           = "transportFrom"
	ColTransportTo             = "transportTo"
	ColTransportDate           = "transportDate"
	ColTransportTime           = "transportTime"
	ColTransportProvider       = "transportProvider"
	ColTransportStatus         = "transportStatus"
	ColTransportBookingURL     = "transportBookingUrl"
	ColKeyEvents               = "keyEvents"

	ColName          = "name"
	ColNotifications = "notifications"

	ColCategory   = "category"
	ColTask       = "task"
	ColCompleted  = "completed"
	ColPriority   = "priority"
	ColDueDate    = "dueDate"
	ColAssignedTo = "assignedTo"
)

// Schema is the fixed, ordered column layout of one sheet tab.
type Schema struct {
	name    string
	columns []string
	index   map[string]int
}

// Positional layouts of the three readable tabs.
var (
	DestinationSchema = mustSchema("destination",
		ColID, ColCity, ColCountry, ColCountryCode, ColFlag, ColStartDate, ColEndDate,
		ColAccommodationName, ColAccommodationType, ColAccommodationAddress,
		ColAccommodationConfirmed, ColAccommodationGuests, ColAccommodationBookingURL,
		ColTransportType, ColTransportFrom, ColTransportTo, ColTransportDate,
		ColTransportTime, ColTransportProvider, ColTransportStatus, ColTransportBookingURL,
		ColKeyEvents,
	)
	FamilyMemberSchema = mustSchema("family member", ColID, ColName, ColNotifications)
	TodoSchema         = mustSchema("todo",
		ColID, ColCategory, ColTask, ColCompleted, ColPriority, ColDueDate, ColAssignedTo,
	)
)

// NewSchema builds a Schema from an ordered column list.
// Returns an error if the list is empty or names a column twice.
func NewSchema(name string, columns ...string) (*Schema, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("sheet.NewSchema: %s: no columns", name)
	}
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		if _, dup := index[c]; dup {
			return nil, fmt.Errorf("sheet.NewSchema: %s: duplicate column %q", name, c)
		}
		index[c] = i
	}
	return &Schema{name: name, columns: columns, index: index}, nil
}

func mustSchema(name string, columns ...string) *Schema {
	s, err := NewSchema(name, columns...)
	if err != nil {
		panic(err)
	}
	return s
}

// Columns returns the column names in sheet order.
func (s *Schema) Columns() []string {
	out := make([]string, len(s.columns))
	copy(out, s.columns)
	return out
}

// Len is the number of columns.
func (s *Schema) Len() int { return len(s.columns) }

// Index returns the zero-based position of col. It panics on an unknown
// column because column names are compile-time constants.
func (s *Schema) Index(col string) int {
	i, ok := s.index[col]
	if !ok {
		panic(fmt.Sprintf("sheet: %s schema has no column %q", s.name, col))
	}
	return i
}

// Row binds a positional cell slice to its schema.
func (s *Schema) Row(cells []string) Row {
	return Row{schema: s, cells: cells}
}

// NewRow returns an empty, full-width row ready for Set.
func (s *Schema) NewRow() Row {
	return Row{schema: s, cells: make([]string, len(s.columns))}
}

// Row is one record's cells read through a Schema.
type Row struct {
	schema *Schema
	cells  []string
}

// Get returns the cell for col, or "" when the row is shorter than the schema.
func (r Row) Get(col string) string {
	i := r.schema.Index(col)
	if i >= len(r.cells) {
		return ""
	}
	return r.cells[i]
}

// Set writes the cell for col. The row must come from NewRow.
func (r Row) Set(col, value string) {
	r.cells[r.schema.Index(col)] = value
}

// Cells returns the underlying cells.
func (r Row) Cells() []string { return r.cells }
