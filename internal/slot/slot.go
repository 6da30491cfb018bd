package slot

import "fmt"

// Slot is one bookable hour for a venue on a date. Slots are derived from the
// operating-hours grid on every query and never stored; identity is the
// (venueId, date, startTime) triple baked into ID.
type Slot struct {
	ID        string `json:"id"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	IsBooked  bool   `json:"isBooked"`
	VenueID   string `json:"venueId"`
	Date      string `json:"date"`
}

// ID derives the deterministic slot id. Server and client must agree on this
// format or availability flags will never line up.
func ID(venueID, date, startTime string) string {
	return fmt.Sprintf("%s-%s-%s", venueID, date, startTime)
}

// Generate cuts N ordered hour boundaries into N-1 slots, all unbooked.
// With fewer than two boundaries there is nothing to cut.
func Generate(venueID, date string, hours []string) []Slot {
	if len(hours) < 2 {
		return []Slot{}
	}

	slots := make([]Slot, 0, len(hours)-1)
	for i := 0; i < len(hours)-1; i++ {
		slots = append(slots, Slot{
			ID:        ID(venueID, date, hours[i]),
			StartTime: hours[i],
			EndTime:   hours[i+1],
			IsBooked:  false,
			VenueID:   venueID,
			Date:      date,
		})
	}
	return slots
}
