package domain

// Place is a single result of a place search against the mapping
// collaborator. PlaceID is opaque and informational only.
type Place struct {
	Name      string
	Latitude  float64
	Longitude float64
	PlaceID   string
}
