package service

import (
	"context"

	"github.com/damoang/angple-community/internal/domain"
	"github.com/damoang/angple-community/internal/repository"
	pkgcache "github.com/damoang/angple-community/pkg/cache"
	pkglogger "github.com/damoang/angple-community/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// PostStore loads the full post list for one view and fills in comment counts
type PostStore struct {
	repo  repository.CommunityRepository
	cache pkgcache.Service
	// concurrency caps parallel comment count lookups; 0 means one per post at once
	concurrency int
}

// NewPostStore creates a PostStore. cache may be nil.
func NewPostStore(repo repository.CommunityRepository, cache pkgcache.Service, concurrency int) *PostStore {
	if cache == nil {
		cache = pkgcache.NewService(nil)
	}
	return &PostStore{repo: repo, cache: cache, concurrency: concurrency}
}

// Load fetches the list once, then looks up every comment count concurrently.
// A failed count falls back to the last known value, else 0; it never fails the load.
// Only a list failure is returned, wrapping common.ErrRemoteFetchFailed.
func (s *PostStore) Load(ctx context.Context) ([]*domain.Post, error) {
	posts, err := s.repo.ListPosts(ctx)
	if err != nil {
		return nil, err
	}

	counts := make([]int, len(posts))
	g, gctx := errgroup.WithContext(ctx)
	if s.concurrency > 0 {
		g.SetLimit(s.concurrency)
	}
	for i, p := range posts {
		g.Go(func() error {
			counts[i] = s.CommentCount(gctx, p.ID)
			return nil
		})
	}
	_ = g.Wait()

	out := make([]*domain.Post, len(posts))
	for i, p := range posts {
		cp := *p
		cp.CommentsCount = counts[i]
		out[i] = &cp
	}
	return out, nil
}

// CommentCount returns the comment count of a post, degrading to the cached
// count and then to 0 when the remote lookup fails
func (s *PostStore) CommentCount(ctx context.Context, postID int64) int {
	n, err := s.repo.CountComments(ctx, postID)
	if err == nil {
		if cerr := s.cache.SetCommentCount(ctx, postID, n); cerr != nil {
			pkglogger.Warn("comment count cache write failed for post %d: %v", postID, cerr)
		}
		return n
	}

	cached, cerr := s.cache.GetCommentCount(ctx, postID)
	if cerr == nil {
		pkglogger.Warn("comment count for post %d served from cache: %v", postID, err)
		return cached
	}
	pkglogger.Warn("comment count for post %d unavailable: %v", postID, err)
	return 0
}
