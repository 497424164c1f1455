package service

import (
	"net/url"
	"strconv"
)

// Client-facing view paths. The category travels as a query parameter so the
// list view can restore the selection after a round trip.
const (
	ListBasePath = "/community/posts"
)

// ListPath is the list view restoring category
func ListPath(category string) string {
	return withCategory(ListBasePath, category)
}

// DetailPath is the detail view of post id carrying category
func DetailPath(id int64, category string) string {
	return withCategory(ListBasePath+"/"+strconv.FormatInt(id, 10), category)
}

func withCategory(p, category string) string {
	if category == "" {
		return p
	}
	return p + "?" + url.Values{"category": {category}}.Encode()
}
