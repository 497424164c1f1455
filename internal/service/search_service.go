package service

import (
	"strings"

	"github.com/damoang/angple-community/internal/domain"
	"github.com/damoang/angple-community/pkg/team"
)

// FilterPosts returns the posts matching a search term and a category, in input order.
//
// The text predicate runs first: an empty term matches everything, otherwise the
// selected field must be present and contain term (case-sensitive). Then, unless
// categoryLabel is the "all" sentinel, only posts whose category id equals the
// resolved id are kept. An unknown search field or an unresolvable category label
// matches nothing. The input slice is never modified.
func FilterPosts(posts []*domain.Post, categoryLabel string, field domain.SearchField, term string) []*domain.Post {
	if _, known := field.Value(&domain.Post{}); !known {
		return []*domain.Post{}
	}

	allCategories := categoryLabel == "" || team.IsAll(categoryLabel)
	categoryID, resolved := team.LabelToID(categoryLabel)
	if !allCategories && !resolved {
		return []*domain.Post{}
	}

	out := make([]*domain.Post, 0, len(posts))
	for _, p := range posts {
		if !matchesTerm(p, field, term) {
			continue
		}
		if !allCategories && int(p.Category) != categoryID {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesTerm(p *domain.Post, field domain.SearchField, term string) bool {
	if term == "" {
		return true
	}
	v, _ := field.Value(p)
	return v != "" && strings.Contains(v, term)
}
