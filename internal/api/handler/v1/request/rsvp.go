package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type SubmitRSVPRequest struct {
	GuestID      uint   `json:"guest_id"`
	EventID      *uint  `json:"event_id"`
	ActivityID   *uint  `json:"activity_id"`
	Status       string `json:"status"`
	GuestCount   *int   `json:"guest_count"` // omitted means a party of one
	DietaryNotes string `json:"dietary_notes"`
}

func (req *SubmitRSVPRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.GuestID, validation.Required),
		validation.Field(&req.Status, validation.Required,
			validation.In("pending", "attending", "declined", "maybe")),
		validation.Field(&req.GuestCount, validation.NilOrNotEmpty,
			validation.Min(1), validation.Max(20)),
	)
}

// PartySize returns the requested head count, defaulting to one.
func (req *SubmitRSVPRequest) PartySize() int {
	if req.GuestCount == nil {
		return 1
	}

	return *req.GuestCount
}

type UpdateRSVPRequest struct {
	Status       string `json:"status"`
	GuestCount   *int   `json:"guest_count"`
	DietaryNotes string `json:"dietary_notes"`
}

func (req *UpdateRSVPRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Status, validation.Required,
			validation.In("pending", "attending", "declined", "maybe")),
		validation.Field(&req.GuestCount, validation.NilOrNotEmpty,
			validation.Min(1), validation.Max(20)),
	)
}

func (req *UpdateRSVPRequest) PartySize() int {
	if req.GuestCount == nil {
		return 1
	}

	return *req.GuestCount
}
