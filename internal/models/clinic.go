package models

// Location represents geolocation information
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

// Clinic represents a medical facility near the user
type Clinic struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Address         string   `json:"address,omitempty"`
	Phone           string   `json:"phone,omitempty"`
	Types           []string `json:"types,omitempty"`
	Rating          float64  `json:"rating,omitempty"`
	OpenNow         bool     `json:"open_now"`
	Latitude        float64  `json:"latitude"`
	Longitude       float64  `json:"longitude"`
	Distance        float64  `json:"distance"` // Distance in kilometers
	Specializations []string `json:"specializations,omitempty"`
}

// HasType reports whether the clinic is tagged with the given place type
func (c Clinic) HasType(t string) bool {
	for _, ct := range c.Types {
		if ct == t {
			return true
		}
	}
	return false
}
