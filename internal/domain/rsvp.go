package domain

import "time"

const (
	RSVPStatusPending   = "pending"
	RSVPStatusAttending = "attending"
	RSVPStatusDeclined  = "declined"
	RSVPStatusMaybe     = "maybe"
)

// RSVP is a guest's response to exactly one of an event or an activity.
// GuestCount is the party size the response covers.
type RSVP struct {
	ID           uint       `json:"id"`
	GuestID      uint       `json:"guest_id"`
	EventID      *uint      `json:"event_id,omitempty"`
	ActivityID   *uint      `json:"activity_id,omitempty"`
	Status       string     `json:"status"`
	GuestCount   int        `json:"guest_count"`
	DietaryNotes string     `json:"dietary_notes,omitempty"`
	RespondedAt  *time.Time `json:"responded_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// PartySize treats a missing guest count as one person.
func (r RSVP) PartySize() int {
	if r.GuestCount <= 0 {
		return 1
	}
	return r.GuestCount
}

// ActivityCapacity is the outcome of a capacity calculation.
// Capacity and Available are nil for unlimited activities.
type ActivityCapacity struct {
	Capacity       *int `json:"capacity"`
	AttendingCount int  `json:"attending_count"`
	Available      *int `json:"available"`
}

const (
	CapacityAlertWarning  = "warning"
	CapacityAlertCritical = "critical"
	CapacityAlertFull     = "full"
)

type CapacityAlert struct {
	ActivityID            uint   `json:"activity_id"`
	ActivityName          string `json:"activity_name"`
	Capacity              int    `json:"capacity"`
	AttendingCount        int    `json:"attending_count"`
	UtilizationPercentage int    `json:"utilization_percentage"`
	AlertLevel            string `json:"alert_level"`
	Message               string `json:"message"`
}
