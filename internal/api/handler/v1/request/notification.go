package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type EmailGuestRequest struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func (req *EmailGuestRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Subject, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Body, validation.Required),
	)
}

type EmailGroupRequest struct {
	GroupID uint   `json:"group_id"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func (req *EmailGroupRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.GroupID, validation.Required),
		validation.Field(&req.Subject, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Body, validation.Required),
	)
}
