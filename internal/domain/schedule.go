package domain

import "time"

const (
	ScheduleStatusDraft     = "draft"
	ScheduleStatusPublished = "published"
)

// Event is a headline occasion (ceremony, reception, welcome dinner).
// Visibility is a list of guest types the event is shown to; empty means
// visible to everyone.
type Event struct {
	ID           uint       `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description,omitempty"`
	StartTime    time.Time  `json:"start_time"`
	EndTime      time.Time  `json:"end_time"`
	LocationID   *uint      `json:"location_id,omitempty"`
	RSVPDeadline *time.Time `json:"rsvp_deadline,omitempty"`
	Status       string     `json:"status"`
	Visibility   []string   `json:"visibility"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Activity is an optional excursion with a bounded headcount.
// A nil Capacity means unlimited.
type Activity struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	LocationID  *uint     `json:"location_id,omitempty"`
	Capacity    *int      `json:"capacity,omitempty"`
	Status      string    `json:"status"`
	Visibility  []string  `json:"visibility"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// VisibleTo reports whether a guest of the given type should see the event.
func (e Event) VisibleTo(guestType string) bool {
	return visibleTo(e.Visibility, guestType)
}

func (a Activity) VisibleTo(guestType string) bool {
	return visibleTo(a.Visibility, guestType)
}

func visibleTo(visibility []string, guestType string) bool {
	if len(visibility) == 0 {
		return true
	}
	for _, t := range visibility {
		if t == guestType {
			return true
		}
	}
	return false
}
