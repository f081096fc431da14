package domain

// BookingType represents the kind of reservation.
type BookingType string

const (
	BookingTypeFlight    BookingType = "flight"
	BookingTypeHotel     BookingType = "hotel"
	BookingTypeCarRental BookingType = "car_rental"
	BookingTypeTour      BookingType = "tour"
	BookingTypeTicket    BookingType = "ticket"
	BookingTypeOther     BookingType = "other"
)

// NormalizeBookingType maps unknown or empty values to BookingTypeOther.
func NormalizeBookingType(t BookingType) BookingType {
	switch t {
	case BookingTypeFlight, BookingTypeHotel, BookingTypeCarRental,
		BookingTypeTour, BookingTypeTicket, BookingTypeOther:
		return t
	}
	return BookingTypeOther
}

// Booking is a reservation attached to a trip.
type Booking struct {
	ID        string      `json:"id"`
	TripID    string      `json:"tripId"`
	Type      BookingType `json:"type"`
	Provider  string      `json:"provider"`
	Reference string      `json:"reference"`
	Date      string      `json:"date"`
	EndDate   string      `json:"endDate,omitempty"`
	Details   string      `json:"details"`
}

// EntityID implements Entity.
func (b Booking) EntityID() string { return b.ID }

// TripKey implements TripScoped.
func (b Booking) TripKey() string { return b.TripID }
