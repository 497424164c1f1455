package routes

import (
	"github.com/damoang/angple-community/internal/handler"
	"github.com/gin-gonic/gin"
)

// Middlewares are the per-route guards wired by main
type Middlewares struct {
	// WriteLimit guards every request that writes to the remote service
	WriteLimit gin.HandlerFunc
	// FileCache fronts the image proxy
	FileCache gin.HandlerFunc
}

func (m Middlewares) orPass() Middlewares {
	pass := func(c *gin.Context) { c.Next() }
	if m.WriteLimit == nil {
		m.WriteLimit = pass
	}
	if m.FileCache == nil {
		m.FileCache = pass
	}
	return m
}

// Setup configures the community routes
func Setup(router *gin.Engine, h *handler.CommunityHandler, mw Middlewares) {
	mw = mw.orPass()
	community := router.Group("/community")

	// 게시글
	posts := community.Group("/posts")
	{
		posts.GET("", h.ListPosts)                                         // 목록 (필터/검색/페이지)
		posts.GET("/new", h.NewPost)                                       // 글쓰기 폼
		posts.POST("", mw.WriteLimit, h.CreatePost)                        // 작성
		posts.GET("/:id", h.GetPost)                                       // 상세
		posts.GET("/:id/previous", h.PreviousPost)                         // 이전 글
		posts.GET("/:id/next", h.NextPost)                                 // 다음 글
		posts.GET("/:id/edit", h.EditPost)                                 // 수정 폼
		posts.PUT("/:id", mw.WriteLimit, h.UpdatePost)                     // 수정
		posts.DELETE("/:id", mw.WriteLimit, h.DeletePost)                  // 삭제
		posts.DELETE("/:id/attachment", mw.WriteLimit, h.RemoveAttachment) // 첨부파일 삭제
	}

	// 초안 필드 검증 (글자 수 카운터)
	community.POST("/drafts", h.UpdateDraft)

	// 첨부파일 프록시
	community.GET("/images/:name", mw.FileCache, h.Image)
	community.GET("/files/:name", h.File)
}
