package handler

import (
	"mime"
	"net/http"

	"github.com/damoang/angple-community/internal/repository"
	"github.com/gin-gonic/gin"
)

// Image godoc
// @Summary      첨부 이미지
// @Description  원격 서비스에 저장된 이미지를 그대로 전달합니다
// @Tags         community
// @Produce      octet-stream
// @Param        name  path  string  true  "저장된 파일 이름"
// @Success      200
// @Failure      404  {object}  common.APIResponse
// @Router       /community/images/{name} [get]
func (h *CommunityHandler) Image(c *gin.Context) {
	h.streamFile(c, repository.FileImage)
}

// File godoc
// @Summary      첨부파일 다운로드
// @Tags         community
// @Produce      octet-stream
// @Param        name  path  string  true  "파일 이름"
// @Success      200
// @Failure      404  {object}  common.APIResponse
// @Router       /community/files/{name} [get]
func (h *CommunityHandler) File(c *gin.Context) {
	h.streamFile(c, repository.FileDownload)
}

func (h *CommunityHandler) streamFile(c *gin.Context, kind repository.FileKind) {
	name := c.Param("name")
	body, stream, err := h.posts.OpenFile(c.Request.Context(), kind, name)
	if err != nil {
		h.respondError(c, err, actionView, "")
		return
	}
	defer body.Close()

	headers := map[string]string{}
	switch {
	case stream.Disposition != "":
		headers["Content-Disposition"] = stream.Disposition
	case kind == repository.FileDownload:
		headers["Content-Disposition"] = mime.FormatMediaType("attachment", map[string]string{"filename": name})
	}
	c.DataFromReader(http.StatusOK, stream.ContentLength, stream.ContentType, body, headers)
}
