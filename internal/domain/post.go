package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Post is a community post as served by the remote community API.
// CommentsCount is not part of the remote post; it is filled in by the post store.
type Post struct {
	CreatedAt     Timestamp  `json:"communityDate"`
	Title         string     `json:"postTitle"`
	Content       string     `json:"postContent"`
	Author        string     `json:"communityId"`
	ImagePath     string     `json:"postImgPath,omitempty"`
	ID            int64      `json:"postId"`
	Category      CategoryID `json:"categoryName"`
	Views         int        `json:"postView"`
	CommentsCount int        `json:"commentsCount"`
}

// HasAttachment reports whether the post carries a remote file
func (p *Post) HasAttachment() bool {
	return p.ImagePath != ""
}

// CategoryID is a team id. The remote API sends it either as a JSON number
// or as a numeric string, so both are accepted.
type CategoryID int

// UnknownCategory marks a category value that is not a team id. It matches no
// team filter, so only the "all" view lists such a post.
const UnknownCategory CategoryID = -1

// UnmarshalJSON implements json.Unmarshaler. It never fails: one odd post must
// not break decoding of the whole list.
func (c *CategoryID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*c = 0
		return nil
	}

	raw := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*c = UnknownCategory
			return nil
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			*c = 0
			return nil
		}
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		*c = UnknownCategory
		return nil
	}
	*c = CategoryID(n)
	return nil
}

// Timestamp accepts the timestamp layouts the remote API has been seen to emit
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses s with the first matching layout
func ParseTimestamp(s string) (Timestamp, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Timestamp{}, nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return Timestamp{Time: t}, nil
		}
	}
	return Timestamp{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// UnmarshalJSON implements json.Unmarshaler. Unparsable values decode as the zero time.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		t.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		t.Time = time.Time{}
		return nil
	}
	// 알 수 없는 형식은 날짜 없음으로 표시
	parsed, err := ParseTimestamp(s)
	if err != nil {
		t.Time = time.Time{}
		return nil
	}
	*t = parsed
	return nil
}

// MarshalJSON implements json.Marshaler
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(time.RFC3339))
}

// Date layouts used by the views
const (
	TableDateLayout  = "2006.01.02"
	DetailDateLayout = "2006.01.02 15:04"
	NoDateText       = "날짜 정보 없음"
)

// FormatDate renders a post date for the list table or, with withTime, the detail view
func FormatDate(t Timestamp, withTime bool) string {
	if t.IsZero() {
		return NoDateText
	}
	if withTime {
		return t.Format(DetailDateLayout)
	}
	return t.Format(TableDateLayout)
}

// SearchField selects which post field a search term is matched against
type SearchField string

const (
	SearchByTitle   SearchField = "postTitle"
	SearchByContent SearchField = "postContent"
	SearchByAuthor  SearchField = "userNickname"
)

// Value returns the post field selected by f and whether f is a known field
func (f SearchField) Value(p *Post) (string, bool) {
	switch f {
	case SearchByTitle:
		return p.Title, true
	case SearchByContent:
		return p.Content, true
	case SearchByAuthor:
		return p.Author, true
	}
	return "", false
}

// SearchOption is a search field choice offered by the list view
type SearchOption struct {
	Value SearchField `json:"value"`
	Label string      `json:"label"`
}

// SearchOptions returns the search fields in display order
func SearchOptions() []SearchOption {
	return []SearchOption{
		{Value: SearchByTitle, Label: "제목"},
		{Value: SearchByContent, Label: "내용"},
		{Value: SearchByAuthor, Label: "작성자"},
	}
}
