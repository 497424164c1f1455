package service

import (
	"context"
	"errors"
	"io"

	"github.com/damoang/angple-community/internal/common"
	"github.com/damoang/angple-community/internal/domain"
	"github.com/damoang/angple-community/internal/repository"
	pkgcache "github.com/damoang/angple-community/pkg/cache"
	pkglogger "github.com/damoang/angple-community/pkg/logger"
	"github.com/damoang/angple-community/pkg/team"
)

// Direction selects a neighbour in list order
type Direction int

const (
	DirPrevious Direction = iota
	DirNext
)

// PostService builds the list and detail views and performs post deletion
type PostService interface {
	BuildList(ctx context.Context, session *domain.Session, query domain.ListQuery) *domain.PostListView
	WriteGate(session *domain.Session, category string) (*domain.WriteForm, error)
	BuildDetail(ctx context.Context, session *domain.Session, id int64, category string) (*domain.PostDetailView, error)
	Neighbor(ctx context.Context, session *domain.Session, id int64, dir Direction) (int64, error)
	DeletePost(ctx context.Context, session *domain.Session, id int64) error
	OpenFile(ctx context.Context, kind repository.FileKind, name string) (io.ReadCloser, *domain.FileStream, error)
}

type postService struct {
	repo  repository.CommunityRepository
	store *PostStore
	cache pkgcache.Service
}

// NewPostService creates a new PostService
func NewPostService(repo repository.CommunityRepository, store *PostStore, cache pkgcache.Service) PostService {
	if cache == nil {
		cache = pkgcache.NewService(nil)
	}
	return &postService{repo: repo, store: store, cache: cache}
}

// DefaultCategory picks the category a list view opens with:
// the carried one, then the user's favourite team, then "all"
func DefaultCategory(session *domain.Session, carried string) string {
	if carried != "" {
		return carried
	}
	if session != nil && team.IsValidLabel(session.FavoriteTeam) {
		return session.FavoriteTeam
	}
	return team.AllLabel
}

// BuildList renders the list view. A remote failure yields an empty, degraded view.
func (s *postService) BuildList(ctx context.Context, session *domain.Session, query domain.ListQuery) *domain.PostListView {
	query = query.Normalize()
	query.Category = DefaultCategory(session, query.Category)

	view := &domain.PostListView{
		Rows:          []domain.PostRow{},
		SearchOptions: domain.SearchOptions(),
		Teams:         team.All(),
		CanWrite:      session != nil && !session.IsSuspended(),
	}

	posts, err := s.store.Load(ctx)
	if err != nil {
		pkglogger.Warn("post list unavailable: %v", err)
		view.Degraded = true
		query.Page = 1
		view.Query = query
		view.TotalPages = 1
		return view
	}

	filtered := FilterPosts(posts, query.Category, query.SearchField, query.SearchTerm)
	query.Page = ClampPage(len(filtered), query.PerPage, query.Page)

	for i, p := range Paginate(filtered, query.PerPage, query.Page) {
		view.Rows = append(view.Rows, domain.NewPostRow(RowNumber(query.Page, query.PerPage, i), p))
	}
	view.Query = query
	view.TotalPosts = len(filtered)
	view.TotalPages = TotalPages(len(filtered), query.PerPage)
	return view
}

// WriteGate opens the create form, carrying the list's category into the draft
func (s *postService) WriteGate(session *domain.Session, category string) (*domain.WriteForm, error) {
	if session == nil {
		return nil, common.ErrNotAuthenticated
	}
	if session.IsSuspended() {
		return nil, common.ErrSuspendedAccount
	}
	if !team.IsValidLabel(category) {
		category = team.AllLabel
	}
	return &domain.WriteForm{
		Draft: NewDraftView(domain.NewDraft(category)),
		Teams: team.All(),
	}, nil
}

// BuildDetail renders one post. The list is fetched only for navigation and the
// comment count degrades to 0; only a failure to load the post itself is returned.
func (s *postService) BuildDetail(ctx context.Context, session *domain.Session, id int64, category string) (*domain.PostDetailView, error) {
	if session == nil {
		return nil, common.ErrNotAuthenticated
	}

	post, err := s.repo.GetPost(ctx, session, id)
	if err != nil {
		return nil, err
	}

	label, _ := team.IDToLabel(int(post.Category))
	view := &domain.PostDetailView{
		Attachment:       domain.NewAttachmentView(post.ImagePath),
		Category:         label,
		Title:            post.Title,
		Author:           post.Author,
		Date:             domain.FormatDate(post.CreatedAt, true),
		Content:          post.Content,
		SelectedCategory: category,
		ID:               post.ID,
		Views:            post.Views,
		CommentsCount:    s.store.CommentCount(ctx, id),
		IsAuthor:         session.IsAuthorOf(post),
		Suspended:        session.IsSuspended(),
	}

	posts, err := s.repo.ListPosts(ctx)
	if err != nil {
		pkglogger.Warn("navigation unavailable for post %d: %v", id, err)
		return view, nil
	}
	if prev, ok := Previous(posts, id); ok {
		view.PreviousID = &prev
	}
	if next, ok := Next(posts, id); ok {
		view.NextID = &next
	}
	return view, nil
}

// Neighbor resolves the previous or next post id for the navigation buttons
func (s *postService) Neighbor(ctx context.Context, session *domain.Session, id int64, dir Direction) (int64, error) {
	if session == nil {
		return 0, common.ErrNotAuthenticated
	}
	posts, err := s.repo.ListPosts(ctx)
	if err != nil {
		return 0, err
	}

	if dir == DirPrevious {
		if prev, ok := Previous(posts, id); ok {
			return prev, nil
		}
		return 0, common.ErrNoPrevious
	}
	if next, ok := Next(posts, id); ok {
		return next, nil
	}
	return 0, common.ErrNoNext
}

// DeletePost removes a post after checking the session user wrote it
func (s *postService) DeletePost(ctx context.Context, session *domain.Session, id int64) error {
	if session == nil {
		return common.ErrNotAuthenticated
	}
	post, err := s.repo.GetPost(ctx, session, id)
	if err != nil {
		return err
	}
	if !session.IsAuthorOf(post) {
		return common.ErrNotAuthor
	}
	if err := s.repo.DeletePost(ctx, session, id); err != nil {
		return err
	}
	if err := s.cache.InvalidateCommentCount(ctx, id); err != nil {
		pkglogger.Warn("comment count cache invalidation failed for post %d: %v", id, err)
	}
	return nil
}

// OpenFile proxies an image or download from the remote service
func (s *postService) OpenFile(ctx context.Context, kind repository.FileKind, name string) (io.ReadCloser, *domain.FileStream, error) {
	if name == "" {
		return nil, nil, common.ErrFileNotFound
	}
	body, stream, err := s.repo.OpenFile(ctx, kind, name)
	if err != nil && !errors.Is(err, common.ErrFileNotFound) {
		pkglogger.Warn("file %q unavailable: %v", name, err)
	}
	return body, stream, err
}
