package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type ModeratePhotoRequest struct {
	Status string `json:"status"`
}

func (req *ModeratePhotoRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Status, validation.Required,
			validation.In("approved", "rejected")),
	)
}
