package venue

type Venue struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	PricePerHour float64 `json:"pricePerHour"`
	Rating       float64 `json:"rating"`
	Location     string  `json:"location"`
}
