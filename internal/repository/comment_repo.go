package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/damoang/angple-community/internal/common"
)

type CommentRepository interface {
	// CountComments returns the number of comments on a post. The remote answers a bare integer.
	CountComments(ctx context.Context, postID int64) (int, error)
}

func (r *communityRepository) CountComments(ctx context.Context, postID int64) (int, error) {
	var count int
	path := "/api/comments/commentscount?postId=" + strconv.FormatInt(postID, 10)
	if err := r.getJSON(ctx, "comment_count", path, nil, &count); err != nil {
		return 0, fmt.Errorf("%w: comment count %d: %w", common.ErrRemoteFetchFailed, postID, err)
	}
	return count, nil
}
