package models

// Service represents a bookable household service offering.
// Services are reference data: defined at startup and never mutated.
type Service struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Duration    string   `json:"duration"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

// Slot represents a bookable calendar date and its available start times.
type Slot struct {
	Date  string   `json:"date"` // e.g., "2025-06-01"
	Times []string `json:"times"`
}
