package domain

// TripStatus represents where a trip sits relative to today.
type TripStatus string

const (
	TripStatusUpcoming TripStatus = "upcoming"
	TripStatusPast     TripStatus = "past"
	TripStatusPlanning TripStatus = "planning"
)

// Valid reports whether s is one of the known trip statuses.
func (s TripStatus) Valid() bool {
	switch s {
	case TripStatusUpcoming, TripStatusPast, TripStatusPlanning:
		return true
	}
	return false
}

// Trip represents a planned or finished trip.
type Trip struct {
	ID          string     `json:"id"`
	Destination string     `json:"destination"`
	Country     string     `json:"country"`
	DateRange   string     `json:"dateRange"` // display string, e.g. "10 Out - 24 Out, 2024"
	ImageURL    string     `json:"imageUrl"`
	Status      TripStatus `json:"status"`
	MediaCount  int        `json:"mediaCount"` // cached, see media-count synchronization
	Notes       string     `json:"notes,omitempty"`
	Travelers   []Traveler `json:"travelers,omitempty"`
}

// EntityID implements Entity.
func (t Trip) EntityID() string { return t.ID }

// Traveler is a person embedded in a trip.
type Traveler struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
	IsMe  bool   `json:"isMe,omitempty"`
}

// EntityID implements Entity.
func (t Traveler) EntityID() string { return t.ID }
