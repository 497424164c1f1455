package handler

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/damoang/angple-community/internal/common"
	"github.com/damoang/angple-community/internal/domain"
	"github.com/damoang/angple-community/internal/middleware"
	"github.com/damoang/angple-community/internal/service"
	"github.com/damoang/angple-community/pkg/ginutil"
	"github.com/damoang/angple-community/pkg/team"
	"github.com/gin-gonic/gin"
)

// DraftUpdateRequest applies one field edit to a draft held by the client
type DraftUpdateRequest struct {
	Draft domain.Draft      `json:"draft"`
	Field domain.DraftField `json:"field" binding:"required"`
	Value string            `json:"value"`
}

// NewPost godoc
// @Summary      글쓰기 폼 열기
// @Description  로그인/정지 여부를 확인하고 목록의 구단을 미리 선택한 빈 초안을 반환합니다
// @Tags         community
// @Produce      json
// @Security     BearerAuth
// @Param        category  query     string  false  "목록에서 선택된 구단"
// @Success      200  {object}  common.APIResponse{data=domain.WriteForm}
// @Failure      401  {object}  common.APIResponse
// @Failure      403  {object}  common.APIResponse
// @Router       /community/posts/new [get]
func (h *CommunityHandler) NewPost(c *gin.Context) {
	category := c.Query("category")
	form, err := h.posts.WriteGate(middleware.GetSession(c), category)
	if err != nil {
		h.respondError(c, err, actionCreate, category)
		return
	}
	common.SuccessResponse(c, form)
}

// UpdateDraft godoc
// @Summary      초안 필드 갱신
// @Description  제목/내용/구단 중 하나를 갱신하고 글자 수를 반환합니다. 제한 초과 시 422와 변경 전 초안
// @Tags         community
// @Accept       json
// @Produce      json
// @Param        request  body      DraftUpdateRequest  true  "초안과 갱신할 필드"
// @Success      200  {object}  common.APIResponse{data=domain.DraftView}
// @Failure      422  {object}  common.APIResponse{error=common.ErrorInfo{details=domain.DraftView}}
// @Router       /community/drafts [post]
func (h *CommunityHandler) UpdateDraft(c *gin.Context) {
	var req DraftUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, common.ErrInvalidInput, actionCreate, "")
		return
	}

	draft, err := h.forms.UpdateField(req.Draft, req.Field, req.Value)
	if err != nil {
		// 변경 전 초안을 그대로 돌려준다
		status, info := h.errorInfo(c, err, actionCreate, draft.Category)
		info.Details = service.NewDraftView(draft)
		common.ErrorWithInfo(c, status, info)
		return
	}
	common.SuccessResponse(c, service.NewDraftView(draft))
}

// CreatePost godoc
// @Summary      게시글 작성
// @Description  multipart 폼으로 게시글을 작성합니다. 성공 시 다음 화면 경로와 선택된 구단을 반환합니다
// @Tags         community
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title     formData  string  true   "제목 (최대 50자)"
// @Param        content   formData  string  true   "본문 HTML (텍스트 최대 1000자)"
// @Param        category  formData  string  false  "구단 이름"
// @Param        file      formData  file    false  "첨부파일"
// @Success      201  {object}  common.APIResponse{data=domain.SubmitResult}
// @Failure      401  {object}  common.APIResponse
// @Failure      403  {object}  common.APIResponse
// @Failure      422  {object}  common.APIResponse
// @Failure      502  {object}  common.APIResponse
// @Router       /community/posts [post]
func (h *CommunityHandler) CreatePost(c *gin.Context) {
	category := c.PostForm("category")
	draft, err := h.draftFromForm(c, domain.None())
	if err != nil {
		h.respondError(c, err, actionCreate, category)
		return
	}

	result, err := h.forms.Submit(c.Request.Context(), middleware.GetSession(c), 0, draft, category)
	if err != nil {
		h.respondError(c, err, actionCreate, category)
		return
	}
	common.CreatedResponse(c, result)
}

// EditPost godoc
// @Summary      수정 폼 열기
// @Description  작성자에게 기존 게시글을 초안으로 반환합니다 (제목의 [구단] 접두어 제거)
// @Tags         community
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "게시글 ID"
// @Success      200  {object}  common.APIResponse{data=domain.EditForm}
// @Failure      401  {object}  common.APIResponse
// @Failure      403  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /community/posts/{id}/edit [get]
func (h *CommunityHandler) EditPost(c *gin.Context) {
	id, err := ginutil.ParamID(c, "id")
	if err != nil {
		h.respondError(c, err, actionEdit, "")
		return
	}

	draft, err := h.forms.LoadEditDraft(c.Request.Context(), middleware.GetSession(c), id)
	if err != nil {
		h.respondError(c, err, actionView, "")
		return
	}
	common.SuccessResponse(c, domain.EditForm{
		PostID: id,
		Draft:  service.NewDraftView(draft),
		Teams:  team.All(),
	})
}

// UpdatePost godoc
// @Summary      게시글 수정
// @Description  multipart 폼으로 게시글 전체를 교체합니다. 새 파일이 없으면 file_path의 기존 첨부파일을 유지합니다
// @Tags         community
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id         path      int     true   "게시글 ID"
// @Param        title      formData  string  true   "제목 (최대 50자)"
// @Param        content    formData  string  true   "본문 HTML (텍스트 최대 1000자)"
// @Param        category   formData  string  false  "구단 이름"
// @Param        file       formData  file    false  "새 첨부파일"
// @Param        file_path  formData  string  false  "유지할 기존 첨부파일 경로"
// @Success      200  {object}  common.APIResponse{data=domain.SubmitResult}
// @Failure      401  {object}  common.APIResponse
// @Failure      403  {object}  common.APIResponse
// @Failure      422  {object}  common.APIResponse
// @Failure      502  {object}  common.APIResponse
// @Router       /community/posts/{id} [put]
func (h *CommunityHandler) UpdatePost(c *gin.Context) {
	category := c.PostForm("category")
	id, err := ginutil.ParamID(c, "id")
	if err != nil {
		h.respondError(c, err, actionEdit, category)
		return
	}

	draft, err := h.draftFromForm(c, domain.RemoteFile(c.PostForm("file_path")))
	if err != nil {
		h.respondError(c, err, actionEdit, category)
		return
	}

	result, err := h.forms.Submit(c.Request.Context(), middleware.GetSession(c), id, draft, category)
	if err != nil {
		h.respondError(c, err, actionEdit, category)
		return
	}
	common.SuccessResponse(c, result)
}

// RemoveAttachment godoc
// @Summary      첨부파일 삭제
// @Description  수정 중인 게시글의 기존 첨부파일을 원격에서 제거합니다
// @Tags         community
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "게시글 ID"
// @Success      200  {object}  common.APIResponse{data=domain.DraftView}
// @Failure      401  {object}  common.APIResponse
// @Failure      403  {object}  common.APIResponse
// @Failure      502  {object}  common.APIResponse
// @Router       /community/posts/{id}/attachment [delete]
func (h *CommunityHandler) RemoveAttachment(c *gin.Context) {
	id, err := ginutil.ParamID(c, "id")
	if err != nil {
		h.respondError(c, err, actionRemoveFile, "")
		return
	}
	session := middleware.GetSession(c)

	draft, err := h.forms.LoadEditDraft(c.Request.Context(), session, id)
	if err != nil {
		h.respondError(c, err, actionRemoveFile, "")
		return
	}
	draft, err = h.forms.RemoveAttachment(c.Request.Context(), session, id, draft)
	if err != nil {
		h.respondError(c, err, actionRemoveFile, "")
		return
	}
	common.SuccessResponse(c, service.NewDraftView(draft))
}

// draftFromForm rebuilds a draft from a multipart submission, running every
// field through the same checks as live editing
func (h *CommunityHandler) draftFromForm(c *gin.Context, fallback domain.Attachment) (domain.Draft, error) {
	category := c.PostForm("category")
	if category == "" {
		category = team.AllLabel
	}
	draft := domain.NewDraft(category)
	fields := []struct {
		field domain.DraftField
		value string
	}{
		{domain.FieldTitle, c.PostForm("title")},
		{domain.FieldContent, c.PostForm("content")},
		{domain.FieldCategory, category},
	}
	for _, f := range fields {
		var err error
		if draft, err = h.forms.UpdateField(draft, f.field, f.value); err != nil {
			return draft, err
		}
	}

	fh, err := c.FormFile("file")
	if err == http.ErrMissingFile {
		return h.forms.SetAttachment(draft, fallback), nil
	}
	if err != nil {
		return draft, common.ErrInvalidInput
	}
	upload, err := readUpload(fh)
	if err != nil {
		return draft, err
	}
	return h.forms.SetAttachment(draft, upload), nil
}

func readUpload(fh *multipart.FileHeader) (domain.Attachment, error) {
	if fh.Size > maxUploadSize {
		return domain.None(), common.ErrInvalidInput
	}
	f, err := fh.Open()
	if err != nil {
		return domain.None(), common.ErrInvalidInput
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadSize))
	if err != nil {
		return domain.None(), common.ErrInvalidInput
	}
	return domain.Upload(fh.Filename, data, fh.Header.Get("Content-Type")), nil
}
