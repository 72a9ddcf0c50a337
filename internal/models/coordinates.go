package models

// Coordinates is an optional geographic position attached to a site,
// building or level.
type Coordinates struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Altitude  *float64 `json:"altitude,omitempty"`
}

// Clone returns a deep copy, or nil for a nil receiver.
func (c *Coordinates) Clone() *Coordinates {
	if c == nil {
		return nil
	}
	out := *c
	if c.Altitude != nil {
		alt := *c.Altitude
		out.Altitude = &alt
	}
	return &out
}
