package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateEventRequest struct {
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	StartTime    time.Time  `json:"start_time"`
	EndTime      time.Time  `json:"end_time"`
	LocationID   *uint      `json:"location_id"`
	RSVPDeadline *time.Time `json:"rsvp_deadline"`
	Visibility   []string   `json:"visibility"`
}

func (req *CreateEventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.StartTime, validation.Required),
		validation.Field(&req.EndTime, validation.Required),
	)
}

type UpdateEventRequest struct {
	CreateEventRequest
	Status string `json:"status"`
}

func (req *UpdateEventRequest) Validate() error {
	if err := req.CreateEventRequest.Validate(); err != nil {
		return err
	}

	return validation.Validate(req.Status, validation.In("draft", "published"))
}

type CreateActivityRequest struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	LocationID  *uint     `json:"location_id"`
	Capacity    *int      `json:"capacity"`
	Visibility  []string  `json:"visibility"`
}

func (req *CreateActivityRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.StartTime, validation.Required),
		validation.Field(&req.EndTime, validation.Required),
	)
	if err != nil {
		return err
	}

	if req.Capacity != nil {
		return validation.Validate(*req.Capacity, validation.Min(1))
	}

	return nil
}

type UpdateActivityRequest struct {
	CreateActivityRequest
	Status string `json:"status"`
}

func (req *UpdateActivityRequest) Validate() error {
	if err := req.CreateActivityRequest.Validate(); err != nil {
		return err
	}

	return validation.Validate(req.Status, validation.In("draft", "published"))
}
