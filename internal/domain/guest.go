package domain

import "time"

const (
	AgeCategoryAdult  = "adult"
	AgeCategoryChild  = "child"
	AgeCategorySenior = "senior"
)

type GuestGroup struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Guest struct {
	ID           uint      `json:"id"`
	GroupID      uint      `json:"group_id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	AgeCategory  string    `json:"age_category"` // adult, child or senior
	GuestType    string    `json:"guest_type"`   // free-form label driving event visibility
	DietaryNotes string    `json:"dietary_notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
