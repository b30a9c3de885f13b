package domain

import "time"

const (
	ReferenceTypeEvent         = "event"
	ReferenceTypeActivity      = "activity"
	ReferenceTypeContentPage   = "content_page"
	ReferenceTypeAccommodation = "accommodation"
	ReferenceTypeLocation      = "location"
)

// Reference is a typed pointer embedded in page content.
type Reference struct {
	Type string `json:"type"`
	ID   uint   `json:"id"`
}

type ContentPage struct {
	ID        uint      `json:"id"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Section is an ordered block of a page. References lists the typed
// pointers embedded in its content.
type Section struct {
	ID           uint        `json:"id"`
	PageType     string      `json:"page_type"` // event, activity, accommodation or content_page
	PageID       uint        `json:"page_id"`
	DisplayOrder int         `json:"display_order"`
	Title        string      `json:"title,omitempty"`
	Body         string      `json:"body,omitempty"`
	References   []Reference `json:"references"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// ReferenceValidation is the outcome of checking a reference set.
type ReferenceValidation struct {
	Valid                bool        `json:"valid"`
	BrokenReferences     []Reference `json:"broken_references"`
	HasCircularReference bool        `json:"has_circular_reference"`
}
