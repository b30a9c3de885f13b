package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type CreateGuestRequest struct {
	GroupID      uint   `json:"group_id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	AgeCategory  string `json:"age_category"`
	GuestType    string `json:"guest_type"`
	DietaryNotes string `json:"dietary_notes"`
}

func (req *CreateGuestRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.FirstName, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.LastName, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Email, is.Email),
		validation.Field(&req.Phone, is.E164),
		validation.Field(&req.AgeCategory, validation.In("adult", "child", "senior")),
	)
}

type UpdateGuestRequest struct {
	CreateGuestRequest
}

type ImportGuestsRequest struct {
	Guests []CreateGuestRequest `json:"guests"`
}

func (req *ImportGuestsRequest) Validate() error {
	if err := validation.Validate(req.Guests, validation.Required); err != nil {
		return err
	}

	for i := range req.Guests {
		if err := req.Guests[i].Validate(); err != nil {
			return err
		}
	}

	return nil
}

type CreateGuestGroupRequest struct {
	Name string `json:"name"`
}

func (req *CreateGuestGroupRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
	)
}
