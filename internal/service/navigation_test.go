package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreviousNext_Ends(t *testing.T) {
	posts := samplePosts(1, 2, 3)

	_, ok := Previous(posts, 1)
	assert.False(t, ok)
	_, ok = Next(posts, 3)
	assert.False(t, ok)

	id, ok := Next(posts, 1)
	assert.True(t, ok)
	assert.Equal(t, int64(2), id)
	id, ok = Previous(posts, 3)
	assert.True(t, ok)
	assert.Equal(t, int64(2), id)
}

func TestPreviousNext_AreInverse(t *testing.T) {
	posts := samplePosts(1, 2, 3, 4, 5)

	for _, p := range posts[1 : len(posts)-1] {
		prev, ok := Previous(posts, p.ID)
		assert.True(t, ok)
		back, ok := Next(posts, prev)
		assert.True(t, ok)
		assert.Equal(t, p.ID, back)

		next, ok := Next(posts, p.ID)
		assert.True(t, ok)
		back, ok = Previous(posts, next)
		assert.True(t, ok)
		assert.Equal(t, p.ID, back)
	}
}

func TestPreviousNext_UnknownID(t *testing.T) {
	posts := samplePosts(1, 2)

	_, ok := Previous(posts, 42)
	assert.False(t, ok)
	_, ok = Next(posts, 42)
	assert.False(t, ok)

	_, ok = Next(nil, 1)
	assert.False(t, ok)
}

func TestPaths(t *testing.T) {
	assert.Equal(t, "/community/posts", ListPath(""))
	assert.Equal(t, "/community/posts?category=%EB%91%90%EC%82%B0+%EB%B2%A0%EC%96%B4%EC%8A%A4", ListPath("두산 베어스"))
	assert.Equal(t, "/community/posts/7?category=%ED%86%B5%ED%95%A9", DetailPath(7, "통합"))
}
