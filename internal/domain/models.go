package domain

import (
	"fmt"
	"strings"
)

// Coordinate is a WGS84 position
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// String formats the coordinate as "lat, lon" with 4 decimals
func (c Coordinate) String() string {
	return fmt.Sprintf("%.4f, %.4f", c.Latitude, c.Longitude)
}

// Region represents a geocoded place, either a search result or a bookmark
type Region struct {
	ID          string // provider identifier, may be empty
	Name        string
	Address     string // lot-number / legal address
	RoadAddress string // road-name address, may be empty
	Category    string
	Coordinate  Coordinate
}

// Key returns the identity of the region.
// Falls back to name and position when the provider gave no ID.
func (r Region) Key() string {
	if r.ID != "" {
		return r.ID
	}
	return fmt.Sprintf("%s@%.6f,%.6f", r.Name, r.Coordinate.Latitude, r.Coordinate.Longitude)
}

// DisplayAddress returns the road address when present, otherwise the plain address
func (r Region) DisplayAddress() string {
	if strings.TrimSpace(r.RoadAddress) != "" {
		return r.RoadAddress
	}
	return r.Address
}

// IsZero reports whether the region is unset
func (r Region) IsZero() bool {
	return r.ID == "" && r.Name == "" && r.Address == ""
}
