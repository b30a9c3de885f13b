package domain

import "time"

type Accommodation struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	LocationID  *uint     `json:"location_id,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type RoomType struct {
	ID              uint      `json:"id"`
	AccommodationID uint      `json:"accommodation_id"`
	Name            string    `json:"name"`
	Capacity        int       `json:"capacity"`
	NightlyCost     int       `json:"nightly_cost"` // cents
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type RoomAssignment struct {
	ID         uint      `json:"id"`
	GuestID    uint      `json:"guest_id"`
	RoomTypeID uint      `json:"room_type_id"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Nights is the stay length in whole nights.
func (a RoomAssignment) Nights() int {
	n := int(a.CheckOut.Sub(a.CheckIn).Hours() / 24)
	if n < 0 {
		return 0
	}
	return n
}
