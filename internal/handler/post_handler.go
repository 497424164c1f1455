package handler

import (
	"net/http"

	"github.com/damoang/angple-community/internal/common"
	"github.com/damoang/angple-community/internal/domain"
	"github.com/damoang/angple-community/internal/middleware"
	"github.com/damoang/angple-community/internal/service"
	"github.com/damoang/angple-community/pkg/ginutil"
	"github.com/damoang/angple-community/pkg/i18n"
	"github.com/gin-gonic/gin"
)

// maxUploadSize bounds one attachment read from a multipart submission
const maxUploadSize = 10 << 20

// CommunityHandler serves the community board views
type CommunityHandler struct {
	posts     service.PostService
	forms     *service.FormController
	bundle    *i18n.Bundle
	loginPath string
}

// NewCommunityHandler creates a new CommunityHandler
func NewCommunityHandler(posts service.PostService, forms *service.FormController, bundle *i18n.Bundle, loginPath string) *CommunityHandler {
	return &CommunityHandler{
		posts:     posts,
		forms:     forms,
		bundle:    bundle,
		loginPath: loginPath,
	}
}

// ListPosts godoc
// @Summary      게시글 목록
// @Description  구단 필터, 검색, 페이지네이션을 적용한 커뮤니티 게시글 목록. 원격 조회 실패 시 빈 목록과 degraded=true
// @Tags         community
// @Produce      json
// @Param        category  query     string  false  "구단 이름 (기본값: 선호 구단 또는 통합)"
// @Param        field     query     string  false  "검색 필드"  Enums(postTitle, postContent, userNickname)  default(postTitle)
// @Param        q         query     string  false  "검색어"
// @Param        page      query     int     false  "페이지 번호"  default(1)
// @Param        per_page  query     int     false  "페이지당 게시글 수"  default(10)
// @Success      200  {object}  common.APIResponse{data=domain.PostListView}
// @Router       /community/posts [get]
func (h *CommunityHandler) ListPosts(c *gin.Context) {
	query := domain.ListQuery{
		Category:    c.Query("category"),
		SearchField: domain.SearchField(c.Query("field")),
		SearchTerm:  c.Query("q"),
		Page:        ginutil.QueryInt(c, "page", 1),
		PerPage:     ginutil.QueryInt(c, "per_page", domain.DefaultPerPage),
	}

	view := h.posts.BuildList(c.Request.Context(), middleware.GetSession(c), query)
	if view.Degraded {
		middleware.RecordDegradedView("list")
	}

	common.SuccessWithMeta(c, view, common.NewMeta(view.Query.Page, view.Query.PerPage, view.TotalPosts))
}

// GetPost godoc
// @Summary      게시글 상세
// @Description  게시글 본문, 첨부파일, 댓글 수, 이전/다음 글 정보 (로그인 필요)
// @Tags         community
// @Produce      json
// @Security     BearerAuth
// @Param        id        path      int     true   "게시글 ID"
// @Param        category  query     string  false  "목록에서 선택된 구단"
// @Success      200  {object}  common.APIResponse{data=domain.PostDetailView}
// @Failure      401  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Failure      502  {object}  common.APIResponse
// @Router       /community/posts/{id} [get]
func (h *CommunityHandler) GetPost(c *gin.Context) {
	category := c.Query("category")
	id, err := ginutil.ParamID(c, "id")
	if err != nil {
		h.respondError(c, err, actionView, category)
		return
	}

	view, err := h.posts.BuildDetail(c.Request.Context(), middleware.GetSession(c), id, category)
	if err != nil {
		h.respondError(c, err, actionView, category)
		return
	}

	common.SuccessResponse(c, view)
}

// PreviousPost godoc
// @Summary      이전 글로 이동
// @Tags         community
// @Produce      json
// @Security     BearerAuth
// @Param        id        path      int     true   "현재 게시글 ID"
// @Param        category  query     string  false  "목록에서 선택된 구단"
// @Success      303
// @Failure      404  {object}  common.APIResponse
// @Router       /community/posts/{id}/previous [get]
func (h *CommunityHandler) PreviousPost(c *gin.Context) {
	h.navigate(c, service.DirPrevious)
}

// NextPost godoc
// @Summary      다음 글로 이동
// @Tags         community
// @Produce      json
// @Security     BearerAuth
// @Param        id        path      int     true   "현재 게시글 ID"
// @Param        category  query     string  false  "목록에서 선택된 구단"
// @Success      303
// @Failure      404  {object}  common.APIResponse
// @Router       /community/posts/{id}/next [get]
func (h *CommunityHandler) NextPost(c *gin.Context) {
	h.navigate(c, service.DirNext)
}

func (h *CommunityHandler) navigate(c *gin.Context, dir service.Direction) {
	category := c.Query("category")
	id, err := ginutil.ParamID(c, "id")
	if err != nil {
		h.respondError(c, err, actionView, category)
		return
	}

	target, err := h.posts.Neighbor(c.Request.Context(), middleware.GetSession(c), id, dir)
	if err != nil {
		h.respondError(c, err, actionView, category)
		return
	}

	c.Redirect(http.StatusSeeOther, service.DetailPath(target, category))
}

// DeletePost godoc
// @Summary      게시글 삭제
// @Description  작성자만 삭제할 수 있습니다
// @Tags         community
// @Produce      json
// @Security     BearerAuth
// @Param        id        path      int     true   "게시글 ID"
// @Param        category  query     string  false  "목록에서 선택된 구단"
// @Success      200  {object}  common.APIResponse{data=domain.SubmitResult}
// @Failure      401  {object}  common.APIResponse
// @Failure      403  {object}  common.APIResponse
// @Failure      502  {object}  common.APIResponse
// @Router       /community/posts/{id} [delete]
func (h *CommunityHandler) DeletePost(c *gin.Context) {
	category := c.Query("category")
	id, err := ginutil.ParamID(c, "id")
	if err != nil {
		h.respondError(c, err, actionDelete, category)
		return
	}

	if err := h.posts.DeletePost(c.Request.Context(), middleware.GetSession(c), id); err != nil {
		h.respondError(c, err, actionDelete, category)
		return
	}

	common.SuccessResponse(c, domain.SubmitResult{
		SelectedCategory: category,
		Next:             service.ListPath(category),
	})
}
