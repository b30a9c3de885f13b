package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateAccommodationRequest struct {
	Name        string `json:"name"`
	LocationID  *uint  `json:"location_id"`
	Description string `json:"description"`
}

func (req *CreateAccommodationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 200)),
	)
}

type UpdateAccommodationRequest struct {
	CreateAccommodationRequest
}

type CreateRoomTypeRequest struct {
	Name        string `json:"name"`
	Capacity    int    `json:"capacity"`
	NightlyCost int    `json:"nightly_cost"`
}

func (req *CreateRoomTypeRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Capacity, validation.Required, validation.Min(1)),
		validation.Field(&req.NightlyCost, validation.Min(0)),
	)
}

type AssignRoomRequest struct {
	GuestID    uint      `json:"guest_id"`
	RoomTypeID uint      `json:"room_type_id"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
}

func (req *AssignRoomRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.GuestID, validation.Required),
		validation.Field(&req.RoomTypeID, validation.Required),
		validation.Field(&req.CheckIn, validation.Required),
		validation.Field(&req.CheckOut, validation.Required),
	)
}
