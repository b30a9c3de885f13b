package domain

import "time"

// Location is a node in the place hierarchy (country, region, city, venue).
// The parent relation must stay acyclic.
type Location struct {
	ID               uint      `json:"id"`
	Name             string    `json:"name"`
	Address          string    `json:"address,omitempty"`
	ParentLocationID *uint     `json:"parent_location_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
