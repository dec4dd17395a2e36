// Package prompts implements the prompt record domain: ownership-scoped CRUD
// over named text records and their many-to-many tag associations.
//
// Every operation is parameterized by an optional acting user. A nil actor
// means the anonymous scope: anonymous callers only see and match prompts
// whose author is NULL, and authenticated callers only see and match their
// own. The scope comparison is null-safe throughout.
package prompts

import "time"

// Prompt represents a stored text record with metadata and tags.
// The surrogate database id is never exposed; the guid is the public identity.
type Prompt struct {
	ID          int64     `json:"-"`
	Guid        string    `json:"guid"`
	Content     string    `json:"content"`
	DisplayName string    `json:"display_name"`
	Author      *string   `json:"author"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Tags        []string  `json:"tags"`
}

// CreateCommand carries the data needed to create a new prompt.
type CreateCommand struct {
	Content     string   `json:"content" validate:"required"`
	DisplayName string   `json:"display_name" validate:"required"`
	Tags        []string `json:"tags"`
}

// UpdateCommand carries the data needed to update an existing prompt.
// The target guid comes from the request path, not the body.
type UpdateCommand struct {
	Content     string   `json:"content" validate:"required"`
	DisplayName string   `json:"display_name" validate:"required"`
	Tags        []string `json:"tags"`
}
