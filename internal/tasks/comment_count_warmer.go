package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/damoang/angple-community/internal/domain"
	pkglogger "github.com/damoang/angple-community/pkg/logger"
	"github.com/robfig/cron/v3"
)

// PostLoader loads the post list with comment counts. service.PostStore
// satisfies it and refreshes the redis comment count cache as a side effect.
type PostLoader interface {
	Load(ctx context.Context) ([]*domain.Post, error)
}

// CommentCountWarmer periodically reloads the post list so the last-known
// comment counts in redis stay fresh for degraded views
type CommentCountWarmer struct {
	loader  PostLoader
	cron    *cron.Cron
	timeout time.Duration
}

// NewCommentCountWarmer creates a warmer. Start schedules it.
func NewCommentCountWarmer(loader PostLoader, timeout time.Duration) *CommentCountWarmer {
	if timeout <= 0 {
		timeout = time.Minute
	}
	return &CommentCountWarmer{
		loader:  loader,
		cron:    cron.New(),
		timeout: timeout,
	}
}

// Start schedules the refresh with a cron spec such as "@every 5m"
func (w *CommentCountWarmer) Start(schedule string) error {
	entryID, err := w.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
		defer cancel()
		w.RunOnce(ctx)
	})
	if err != nil {
		return fmt.Errorf("invalid warm schedule %q: %w", schedule, err)
	}

	w.cron.Start()
	pkglogger.Info("comment count warmer started: schedule=%s entry=%d", schedule, entryID)
	return nil
}

// RunOnce performs one refresh and reports how many posts it touched
func (w *CommentCountWarmer) RunOnce(ctx context.Context) int {
	start := time.Now()
	posts, err := w.loader.Load(ctx)
	if err != nil {
		pkglogger.Warn("comment count warm-up failed: %v", err)
		return 0
	}
	pkglogger.Info("comment count warm-up done: posts=%d duration=%s", len(posts), time.Since(start))
	return len(posts)
}

// Stop stops scheduling; the returned context is done once a running refresh finishes
func (w *CommentCountWarmer) Stop() context.Context {
	return w.cron.Stop()
}
