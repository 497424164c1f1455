package service

import (
	"context"
	"io"
	"time"

	"github.com/damoang/angple-community/internal/domain"
	"github.com/damoang/angple-community/internal/repository"
	"github.com/stretchr/testify/mock"
)

// --- Mock CommunityRepository ---

type mockCommunityRepo struct {
	mock.Mock
}

func (m *mockCommunityRepo) ListPosts(ctx context.Context) ([]*domain.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Post), args.Error(1)
}

func (m *mockCommunityRepo) GetPost(ctx context.Context, session *domain.Session, id int64) (*domain.Post, error) {
	args := m.Called(ctx, session, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

func (m *mockCommunityRepo) CreatePost(ctx context.Context, session *domain.Session, form *repository.PostForm) (int64, error) {
	args := m.Called(ctx, session, form)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCommunityRepo) UpdatePost(ctx context.Context, session *domain.Session, id int64, form *repository.PostForm) error {
	return m.Called(ctx, session, id, form).Error(0)
}

func (m *mockCommunityRepo) DeletePost(ctx context.Context, session *domain.Session, id int64) error {
	return m.Called(ctx, session, id).Error(0)
}

func (m *mockCommunityRepo) CountComments(ctx context.Context, postID int64) (int, error) {
	args := m.Called(ctx, postID)
	return args.Int(0), args.Error(1)
}

func (m *mockCommunityRepo) RemoveFile(ctx context.Context, session *domain.Session, postID int64) error {
	return m.Called(ctx, session, postID).Error(0)
}

func (m *mockCommunityRepo) OpenFile(ctx context.Context, kind repository.FileKind, name string) (io.ReadCloser, *domain.FileStream, error) {
	args := m.Called(ctx, kind, name)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(*domain.FileStream), args.Error(2)
}

// --- Mock cache.Service ---

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(ctx context.Context, key string, dest interface{}) error {
	return m.Called(ctx, key, dest).Error(0)
}

func (m *mockCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}

func (m *mockCache) GetCommentCount(ctx context.Context, postID int64) (int, error) {
	args := m.Called(ctx, postID)
	return args.Int(0), args.Error(1)
}

func (m *mockCache) SetCommentCount(ctx context.Context, postID int64, count int) error {
	return m.Called(ctx, postID, count).Error(0)
}

func (m *mockCache) InvalidateCommentCount(ctx context.Context, postID int64) error {
	return m.Called(ctx, postID).Error(0)
}

func (m *mockCache) IsAvailable() bool {
	return true
}

func (m *mockCache) Ping(ctx context.Context) error {
	return nil
}

// --- fixtures ---

func samplePosts(categories ...int) []*domain.Post {
	posts := make([]*domain.Post, len(categories))
	for i, c := range categories {
		posts[i] = &domain.Post{
			ID:       int64(i + 1),
			Title:    "post",
			Author:   "author",
			Category: domain.CategoryID(c),
		}
	}
	return posts
}
