package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateLocationRequest struct {
	Name             string `json:"name"`
	Address          string `json:"address"`
	ParentLocationID *uint  `json:"parent_location_id"`
}

func (req *CreateLocationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 200)),
	)
}

type UpdateLocationRequest struct {
	CreateLocationRequest
}
