package domain

import "github.com/damoang/angple-community/pkg/team"

// Draft length limits
const (
	MaxTitleLength   = 50
	MaxContentLength = 1000
)

// DraftField names a field of a draft that can be updated on its own
type DraftField string

const (
	FieldTitle    DraftField = "title"
	FieldContent  DraftField = "content"
	FieldCategory DraftField = "category"
)

// Draft is the unsaved state of a create or edit form.
// Category holds a team label; it is resolved to an id only at submission.
type Draft struct {
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Category   string     `json:"category"`
	Attachment Attachment `json:"-"`
}

// NewDraft returns an empty draft preselecting category
func NewDraft(category string) Draft {
	if category == "" {
		category = team.AllLabel
	}
	return Draft{Category: category, Attachment: None()}
}

// DraftView is a draft as shown by the form, with its character counters
type DraftView struct {
	Title          string `json:"title"`
	Content        string `json:"content"`
	Category       string `json:"category"`
	AttachmentKind string `json:"attachment_kind"`
	AttachmentName string `json:"attachment_name,omitempty"`
	TitleLength    int    `json:"title_length"`
	TitleLimit     int    `json:"title_limit"`
	ContentLength  int    `json:"content_length"`
	ContentLimit   int    `json:"content_limit"`
}

// SubmitResult tells the caller where to go after a successful submission.
// SelectedCategory is threaded back so the list view can restore it.
type SubmitResult struct {
	PostID           int64  `json:"post_id,omitempty"`
	SelectedCategory string `json:"selected_category"`
	Next             string `json:"next"`
}

// EditForm is the edit view: the loaded draft plus the post it belongs to
type EditForm struct {
	PostID int64       `json:"post_id"`
	Draft  DraftView   `json:"draft"`
	Teams  []team.Team `json:"teams"`
}

// WriteForm is the create view opened from the list
type WriteForm struct {
	Draft DraftView   `json:"draft"`
	Teams []team.Team `json:"teams"`
}
