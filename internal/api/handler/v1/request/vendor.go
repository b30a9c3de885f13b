package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateVendorRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Contact  string `json:"contact"`
	Notes    string `json:"notes"`
}

func (req *CreateVendorRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Category, validation.Length(0, 100)),
	)
}

type UpdateVendorRequest struct {
	CreateVendorRequest
}
