package domain

// EventType is the activity kind of an itinerary entry.
type EventType string

const (
	EventTypeFlight      EventType = "flight"
	EventTypeHotel       EventType = "hotel"
	EventTypeRestaurant  EventType = "restaurant"
	EventTypeSightseeing EventType = "sightseeing"
	EventTypeMuseum      EventType = "museum"
	EventTypeTour        EventType = "tour"
	EventTypeTransport   EventType = "transport"
	EventTypeShopping    EventType = "shopping"
	EventTypeBeach       EventType = "beach"
	EventTypeNightlife   EventType = "nightlife"
	EventTypeMeeting     EventType = "meeting"
	EventTypeOther       EventType = "other"
)

// NormalizeEventType maps unknown or empty values to EventTypeOther.
func NormalizeEventType(t EventType) EventType {
	switch t {
	case EventTypeFlight, EventTypeHotel, EventTypeRestaurant, EventTypeSightseeing,
		EventTypeMuseum, EventTypeTour, EventTypeTransport, EventTypeShopping,
		EventTypeBeach, EventTypeNightlife, EventTypeMeeting, EventTypeOther:
		return t
	}
	return EventTypeOther
}

// TimelineEvent is one entry of a trip's itinerary. Time is "HH:mm" and
// doubles as the sort key.
type TimelineEvent struct {
	ID          string    `json:"id"`
	Time        string    `json:"time"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        EventType `json:"type"`
	Status      string    `json:"status,omitempty"`
	StatusLabel string    `json:"statusLabel,omitempty"`
	MapURL      string    `json:"mapUrl,omitempty"`
}

// EntityID implements Entity.
func (e TimelineEvent) EntityID() string { return e.ID }
