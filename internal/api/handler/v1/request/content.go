package request

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

type CreateContentPageRequest struct {
	Slug   string `json:"slug"`
	Title  string `json:"title"`
	Status string `json:"status"`
}

func (req *CreateContentPageRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Slug, validation.Required, validation.Match(slugPattern)),
		validation.Field(&req.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Status, validation.In("draft", "published")),
	)
}

type UpdateContentPageRequest struct {
	CreateContentPageRequest
}

type SectionReferenceRequest struct {
	Type string `json:"type"`
	ID   uint   `json:"id"`
}

func (req SectionReferenceRequest) Validate() error {
	return validation.ValidateStruct(
		&req,
		validation.Field(&req.Type, validation.Required,
			validation.In("event", "activity", "accommodation", "content_page", "location")),
		validation.Field(&req.ID, validation.Required),
	)
}

type CreateSectionRequest struct {
	PageType     string                    `json:"page_type"`
	PageID       uint                      `json:"page_id"`
	DisplayOrder int                       `json:"display_order"`
	Title        string                    `json:"title"`
	Body         string                    `json:"body"`
	References   []SectionReferenceRequest `json:"references"`
}

func (req *CreateSectionRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.PageType, validation.Required,
			validation.In("event", "activity", "accommodation", "content_page")),
		validation.Field(&req.PageID, validation.Required),
		validation.Field(&req.DisplayOrder, validation.Min(0)),
	)
	if err != nil {
		return err
	}

	for _, ref := range req.References {
		if err := ref.Validate(); err != nil {
			return err
		}
	}

	return nil
}

type UpdateSectionRequest struct {
	CreateSectionRequest
}
