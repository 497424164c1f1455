package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCommentCountKey(t *testing.T) {
	assert.Equal(t, "community:comments:42", CommentCountKey(42))
}

func TestNilClient_MissesAndIgnoresWrites(t *testing.T) {
	ctx := context.Background()
	svc := NewService(nil)

	assert.False(t, svc.IsAvailable())
	assert.Error(t, svc.Ping(ctx))

	assert.NoError(t, svc.SetCommentCount(ctx, 1, 5))
	_, err := svc.GetCommentCount(ctx, 1)
	assert.ErrorIs(t, err, ErrCacheMiss)

	var dest map[string]int
	assert.ErrorIs(t, svc.Get(ctx, "k", &dest), ErrCacheMiss)
	assert.NoError(t, svc.Set(ctx, "k", map[string]int{"a": 1}, time.Minute))
	assert.NoError(t, svc.InvalidateCommentCount(ctx, 1))
}
