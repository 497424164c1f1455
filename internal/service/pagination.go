package service

import "github.com/damoang/angple-community/internal/domain"

// TotalPages returns the number of pages needed for total items, at least 1
func TotalPages(total, perPage int) int {
	if perPage < 1 {
		perPage = domain.DefaultPerPage
	}
	pages := (total + perPage - 1) / perPage
	if pages < 1 {
		return 1
	}
	return pages
}

// ClampPage moves page into [1, TotalPages(total, perPage)]
func ClampPage(total, perPage, page int) int {
	if page < 1 {
		return 1
	}
	if last := TotalPages(total, perPage); page > last {
		return last
	}
	return page
}

// Paginate returns items[(page-1)*perPage : page*perPage] clipped to the slice.
// A page outside the range yields an empty slice.
func Paginate(posts []*domain.Post, perPage, page int) []*domain.Post {
	if perPage < 1 || page < 1 {
		return []*domain.Post{}
	}
	start := (page - 1) * perPage
	if start >= len(posts) {
		return []*domain.Post{}
	}
	end := start + perPage
	if end > len(posts) {
		end = len(posts)
	}
	return posts[start:end]
}

// RowNumber is the one-based number shown for the i-th row of a page
func RowNumber(page, perPage, i int) int {
	return (page-1)*perPage + i + 1
}
