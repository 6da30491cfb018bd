package venue

import (
	"encoding/json"
	"fmt"
	"os"
)

// defaultVenues is the built-in catalog, used when no catalog file is
// configured. Venue data is reference data: the booking core reads it but
// never mutates it.
var defaultVenues = []Venue{
	{ID: "c1", Name: "Football Turf", Type: "Football", PricePerHour: 1200, Rating: 4.8, Location: "Ratanada, Jodhpur"},
	{ID: "c2", Name: "Cricket Box", Type: "Cricket", PricePerHour: 1500, Rating: 4.6, Location: "Madhuban, Jodhpur"},
	{ID: "c3", Name: "Badminton Court", Type: "Badminton", PricePerHour: 400, Rating: 4.9, Location: "Pal Road, Jodhpur"},
	{ID: "c4", Name: "Tennis Court", Type: "Tennis", PricePerHour: 800, Rating: 4.7, Location: "Paota C Road, Jodhpur"},
}

// Catalog is an immutable venue lookup built once at startup and injected
// into the services that need it.
type Catalog struct {
	venues []Venue
	byID   map[string]Venue
}

func NewCatalog(venues []Venue) *Catalog {
	byID := make(map[string]Venue, len(venues))
	for _, v := range venues {
		byID[v.ID] = v
	}
	return &Catalog{venues: venues, byID: byID}
}

// LoadCatalog reads the venue list from path, or falls back to the built-in
// catalog when path is empty.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return NewCatalog(defaultVenues), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read venues file: %w", err)
	}

	var venues []Venue
	if err := json.Unmarshal(data, &venues); err != nil {
		return nil, fmt.Errorf("failed to parse venues file: %w", err)
	}
	if len(venues) == 0 {
		return nil, fmt.Errorf("venues file %s contains no venues", path)
	}

	return NewCatalog(venues), nil
}

func (c *Catalog) All() []Venue {
	out := make([]Venue, len(c.venues))
	copy(out, c.venues)
	return out
}

func (c *Catalog) Get(id string) (Venue, bool) {
	v, ok := c.byID[id]
	return v, ok
}
