package domain

import "github.com/damoang/angple-community/pkg/team"

// Page size bounds for the list view
const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// ListQuery is the filter and pagination state of the list view
type ListQuery struct {
	Category    string      `json:"category"`
	SearchField SearchField `json:"field"`
	SearchTerm  string      `json:"q"`
	Page        int         `json:"page"`
	PerPage     int         `json:"per_page"`
}

// Normalize fills defaults. It does not clamp Page; that needs the filtered count.
func (q ListQuery) Normalize() ListQuery {
	if q.SearchField == "" {
		q.SearchField = SearchByTitle
	}
	if q.PerPage < 1 || q.PerPage > MaxPerPage {
		q.PerPage = DefaultPerPage
	}
	if q.Page < 1 {
		q.Page = 1
	}
	return q
}

// PostRow is one line of the list table
type PostRow struct {
	No            int    `json:"no"`
	ID            int64  `json:"post_id"`
	Category      string `json:"category"`
	Title         string `json:"title"`
	CommentsCount int    `json:"comments_count"`
	Author        string `json:"author"`
	Date          string `json:"date"`
	Views         int    `json:"views"`
}

// NewPostRow renders p as the row at one-based position no
func NewPostRow(no int, p *Post) PostRow {
	label, _ := team.IDToLabel(int(p.Category))
	return PostRow{
		No:            no,
		ID:            p.ID,
		Category:      label,
		Title:         p.Title,
		CommentsCount: p.CommentsCount,
		Author:        p.Author,
		Date:          FormatDate(p.CreatedAt, false),
		Views:         p.Views,
	}
}

// PostListView is the community list page
type PostListView struct {
	Rows          []PostRow      `json:"rows"`
	Query         ListQuery      `json:"query"`
	SearchOptions []SearchOption `json:"search_options"`
	Teams         []team.Team    `json:"teams"`
	TotalPosts    int            `json:"total_posts"`
	TotalPages    int            `json:"total_pages"`
	CanWrite      bool           `json:"can_write"`
	// Degraded is set when the remote list could not be fetched
	Degraded bool `json:"degraded,omitempty"`
}

// PostDetailView is the community detail page
type PostDetailView struct {
	Attachment       *AttachmentView `json:"attachment,omitempty"`
	PreviousID       *int64          `json:"previous_id"`
	NextID           *int64          `json:"next_id"`
	Category         string          `json:"category"`
	Title            string          `json:"title"`
	Author           string          `json:"author"`
	Date             string          `json:"date"`
	Content          string          `json:"content"`
	SelectedCategory string          `json:"selected_category"`
	ID               int64           `json:"post_id"`
	Views            int             `json:"views"`
	CommentsCount    int             `json:"comments_count"`
	IsAuthor         bool            `json:"is_author"`
	Suspended        bool            `json:"suspended"`
}
