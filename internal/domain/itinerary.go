package domain

import "time"

// ItineraryEntry is one scheduled item on a guest's personal itinerary,
// either an event or an activity, annotated with the guest's RSVP status.
type ItineraryEntry struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"` // "event" or "activity"
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	LocationID *uint     `json:"location_id,omitempty"`
	RSVPStatus string    `json:"rsvp_status,omitempty"`
}

type ItineraryStay struct {
	AccommodationName string    `json:"accommodation_name"`
	RoomType          string    `json:"room_type"`
	CheckIn           time.Time `json:"check_in"`
	CheckOut          time.Time `json:"check_out"`
}

type Itinerary struct {
	GuestID     uint             `json:"guest_id"`
	GuestName   string           `json:"guest_name"`
	Entries     []ItineraryEntry `json:"entries"`
	Stays       []ItineraryStay  `json:"stays"`
	GeneratedAt time.Time        `json:"generated_at"`
}
