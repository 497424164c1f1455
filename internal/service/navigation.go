package service

import "github.com/damoang/angple-community/internal/domain"

// Previous returns the id of the post before currentID in list order.
// ok is false at the first post or when currentID is not in the list.
func Previous(posts []*domain.Post, currentID int64) (id int64, ok bool) {
	i := indexOf(posts, currentID)
	if i <= 0 {
		return 0, false
	}
	return posts[i-1].ID, true
}

// Next returns the id of the post after currentID in list order.
// ok is false at the last post or when currentID is not in the list.
func Next(posts []*domain.Post, currentID int64) (id int64, ok bool) {
	i := indexOf(posts, currentID)
	if i < 0 || i >= len(posts)-1 {
		return 0, false
	}
	return posts[i+1].ID, true
}

func indexOf(posts []*domain.Post, id int64) int {
	for i, p := range posts {
		if p.ID == id {
			return i
		}
	}
	return -1
}
