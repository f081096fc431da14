package domain

// Memory is a photo attached to a trip by destination name.
type Memory struct {
	ID    string `json:"id"`
	Trip  string `json:"trip"` // matches Trip.Destination
	Image string `json:"image"`
	Date  string `json:"date"`
}

// EntityID implements Entity.
func (m Memory) EntityID() string { return m.ID }
