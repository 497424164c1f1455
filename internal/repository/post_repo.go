package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"strings"

	"github.com/damoang/angple-community/internal/common"
	"github.com/damoang/angple-community/internal/domain"
)

// PostForm is the multipart body of a create or update call
type PostForm struct {
	Title      string
	Content    string
	CategoryID int
	// Attachment is sent only when it is a NewUpload
	Attachment domain.Attachment
}

// PostRepository 게시글 원격 저장소 인터페이스
type PostRepository interface {
	// 조회
	ListPosts(ctx context.Context) ([]*domain.Post, error)
	GetPost(ctx context.Context, session *domain.Session, id int64) (*domain.Post, error)

	// 작성/수정/삭제
	CreatePost(ctx context.Context, session *domain.Session, form *PostForm) (int64, error)
	UpdatePost(ctx context.Context, session *domain.Session, id int64, form *PostForm) error
	DeletePost(ctx context.Context, session *domain.Session, id int64) error
}

// CommunityRepository is everything the views call on the remote community API
type CommunityRepository interface {
	PostRepository
	CommentRepository
	FileRepository
}

// communityRepository HTTP 구현체
type communityRepository struct {
	remote
}

// NewCommunityRepository 생성자. cookieName is the session cookie forwarded on credentialed calls.
func NewCommunityRepository(baseURL, cookieName string, client *http.Client) CommunityRepository {
	if client == nil {
		client = http.DefaultClient
	}
	return &communityRepository{remote{
		baseURL:    strings.TrimRight(baseURL, "/"),
		cookieName: cookieName,
		client:     client,
	}}
}

// ListPosts 전체 게시글 목록 (서버 정렬 순서 유지)
func (r *communityRepository) ListPosts(ctx context.Context) ([]*domain.Post, error) {
	var posts []*domain.Post
	if err := r.getJSON(ctx, "list_posts", "/api/community/posts", nil, &posts); err != nil {
		return nil, fmt.Errorf("%w: list posts: %w", common.ErrRemoteFetchFailed, err)
	}
	return posts, nil
}

// GetPost 게시글 단건 조회
func (r *communityRepository) GetPost(ctx context.Context, session *domain.Session, id int64) (*domain.Post, error) {
	var post domain.Post
	path := "/api/community/post/" + strconv.FormatInt(id, 10)
	if err := r.getJSON(ctx, "get_post", path, session, &post); err != nil {
		if isStatus(err, http.StatusNotFound) {
			return nil, fmt.Errorf("%w: post %d", common.ErrPostNotFound, id)
		}
		return nil, fmt.Errorf("%w: get post %d: %w", common.ErrRemoteFetchFailed, id, err)
	}
	return &post, nil
}

// CreatePost 게시글 작성. Returns 0 when the remote answer carries no id.
func (r *communityRepository) CreatePost(ctx context.Context, session *domain.Session, form *PostForm) (int64, error) {
	body, contentType, err := encodePostForm(form)
	if err != nil {
		return 0, fmt.Errorf("%w: encode: %w", common.ErrRemoteWriteFailed, err)
	}
	answer, err := r.send(ctx, "create_post", http.MethodPost, "/api/community/post", body, contentType, session)
	if err != nil {
		return 0, fmt.Errorf("%w: create post: %w", common.ErrRemoteWriteFailed, err)
	}
	return parseCreatedID(answer), nil
}

// UpdatePost 게시글 수정 (전체 교체)
func (r *communityRepository) UpdatePost(ctx context.Context, session *domain.Session, id int64, form *PostForm) error {
	body, contentType, err := encodePostForm(form)
	if err != nil {
		return fmt.Errorf("%w: encode: %w", common.ErrRemoteWriteFailed, err)
	}
	path := "/api/community/post/" + strconv.FormatInt(id, 10)
	if _, err := r.send(ctx, "update_post", http.MethodPut, path, body, contentType, session); err != nil {
		return fmt.Errorf("%w: update post %d: %w", common.ErrRemoteWriteFailed, id, err)
	}
	return nil
}

// DeletePost 게시글 삭제
func (r *communityRepository) DeletePost(ctx context.Context, session *domain.Session, id int64) error {
	path := "/api/community/post/" + strconv.FormatInt(id, 10)
	if _, err := r.send(ctx, "delete_post", http.MethodDelete, path, nil, "", session); err != nil {
		return fmt.Errorf("%w: delete post %d: %w", common.ErrRemoteWriteFailed, id, err)
	}
	return nil
}

// encodePostForm builds the multipart body: postTitle, postContent, categoryName, file
func encodePostForm(form *PostForm) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	fields := [][2]string{
		{"postTitle", form.Title},
		{"postContent", form.Content},
		{"categoryName", strconv.Itoa(form.CategoryID)},
	}
	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return nil, "", err
		}
	}

	if form.Attachment.Kind == domain.NewUpload {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, form.Attachment.Name))
		ct := form.Attachment.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		h.Set("Content-Type", ct)
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(form.Attachment.Data); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}

// parseCreatedID reads the new post id from a create answer: a post object,
// a bare integer, or nothing
func parseCreatedID(answer []byte) int64 {
	answer = bytes.TrimSpace(answer)
	if len(answer) == 0 {
		return 0
	}
	var created struct {
		PostID int64 `json:"postId"`
	}
	if err := json.Unmarshal(answer, &created); err == nil && created.PostID > 0 {
		return created.PostID
	}
	if id, err := strconv.ParseInt(string(answer), 10, 64); err == nil && id > 0 {
		return id
	}
	return 0
}
