package service

import (
	"testing"

	"github.com/damoang/angple-community/internal/domain"
	"github.com/damoang/angple-community/pkg/team"
	"github.com/stretchr/testify/assert"
)

func ids(posts []*domain.Post) []int64 {
	out := make([]int64, len(posts))
	for i, p := range posts {
		out[i] = p.ID
	}
	return out
}

func TestFilterPosts_CategoryKeepsOrder(t *testing.T) {
	posts := samplePosts(1, 2, 1)

	got := FilterPosts(posts, "KIA 타이거즈", domain.SearchByTitle, "")

	assert.Equal(t, []int64{1, 3}, ids(got))
}

func TestFilterPosts_AllIsIdentity(t *testing.T) {
	posts := samplePosts(1, 2, 3, 1, 5)
	posts[2].Title = ""

	for _, label := range []string{"KIA 타이거즈", "삼성 라이온즈", team.AllLabel} {
		FilterPosts(posts, label, domain.SearchByTitle, "")
		got := FilterPosts(posts, team.AllLabel, domain.SearchByTitle, "")
		assert.Equal(t, ids(posts), ids(got), "after filtering by %s", label)
	}
}

func TestFilterPosts_UnknownCategoryOnlyInAll(t *testing.T) {
	posts := samplePosts(1, 2)
	posts[1].Category = domain.UnknownCategory

	assert.Equal(t, []int64{1}, ids(FilterPosts(posts, "KIA 타이거즈", domain.SearchByTitle, "")))
	assert.Empty(t, FilterPosts(posts, "삼성 라이온즈", domain.SearchByTitle, ""))
	assert.Equal(t, []int64{1, 2}, ids(FilterPosts(posts, team.AllLabel, domain.SearchByTitle, "")))
}

func TestFilterPosts_TextFields(t *testing.T) {
	posts := []*domain.Post{
		{ID: 1, Title: "두산 승리", Content: "<p>완봉</p>", Author: "bear"},
		{ID: 2, Title: "LG 패배", Content: "", Author: "twin"},
		{ID: 3, Title: "", Content: "두산 이야기", Author: "bear2"},
	}

	assert.Equal(t, []int64{1}, ids(FilterPosts(posts, team.AllLabel, domain.SearchByTitle, "두산")))
	assert.Equal(t, []int64{3}, ids(FilterPosts(posts, team.AllLabel, domain.SearchByContent, "두산")))
	assert.Equal(t, []int64{1, 3}, ids(FilterPosts(posts, team.AllLabel, domain.SearchByAuthor, "bear")))
	// case-sensitive
	assert.Empty(t, FilterPosts(posts, team.AllLabel, domain.SearchByTitle, "lg"))
	// missing field is excluded, not an error
	assert.Equal(t, []int64{1}, ids(FilterPosts(posts, team.AllLabel, domain.SearchByContent, "<p>")))
}

func TestFilterPosts_TextThenCategory(t *testing.T) {
	posts := samplePosts(1, 2, 1, 1)
	posts[0].Title = "hello"
	posts[1].Title = "hello"
	posts[3].Title = "hello"

	got := FilterPosts(posts, "KIA 타이거즈", domain.SearchByTitle, "hello")
	assert.Equal(t, []int64{1, 4}, ids(got))
}

func TestFilterPosts_UnknownInputsMatchNothing(t *testing.T) {
	posts := samplePosts(1, 2)

	assert.Empty(t, FilterPosts(posts, team.AllLabel, domain.SearchField("postAuthor"), ""))
	assert.Empty(t, FilterPosts(posts, "없는 구단", domain.SearchByTitle, ""))
	assert.Empty(t, FilterPosts(posts, "%25", domain.SearchByTitle, ""))
}

func TestFilterPosts_DoesNotMutateInput(t *testing.T) {
	posts := samplePosts(2, 1, 2)
	before := ids(posts)

	_ = FilterPosts(posts, "삼성 라이온즈", domain.SearchByTitle, "")

	assert.Equal(t, before, ids(posts))
}
