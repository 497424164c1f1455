package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	pkgcache "github.com/damoang/angple-community/pkg/cache"
	"github.com/damoang/angple-community/pkg/i18n"
	pkglogger "github.com/damoang/angple-community/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLogger_SetsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger())
	var seen string
	r.GET("/test", func(c *gin.Context) {
		seen = GetRequestID(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Len(t, seen, 8)
	assert.Equal(t, seen, w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("X-Request-ID", "given-id")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "given-id", seen)
}

func TestI18n_Locale(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(I18n())
	var locale i18n.Locale
	r.GET("/test", func(c *gin.Context) {
		locale = GetLocale(c)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, i18n.LocaleEn, locale)
	assert.Equal(t, "en", w.Header().Get("Content-Language"))

	req = httptest.NewRequest(http.MethodGet, "/test?lang=ja", nil)
	req.Header.Set("Accept-Language", "en")
	r.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, i18n.LocaleJa, locale)
}

func TestSecurityHeadersAndSanitizer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SecurityHeaders(), I18n(), InputSanitizer(i18n.NewDefaultBundle()))
	r.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test?q=%EB%91%90%EC%82%B0", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test?q=%3Cscript%3Ealert(1)", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "잘못된 요청입니다.")
}

func TestWriteRateLimit_NoRedisPasses(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(WriteRateLimit(nil, i18n.NewDefaultBundle(), RateLimitConfig{}))
	r.POST("/test", func(c *gin.Context) { c.Status(http.StatusCreated) })

	for i := 0; i < 50; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/test", nil))
		assert.Equal(t, http.StatusCreated, w.Code)
	}
}

func TestMetrics_PassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Metrics())
	r.GET("/community/posts/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/community/posts/3", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestFileCache_NoRedisPasses(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(FileCache(nil, FileCacheConfig{}))
	r.GET("/community/images/:name", func(c *gin.Context) {
		c.Data(http.StatusOK, "image/png", []byte("png"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/community/images/a.png", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "png", w.Body.String())
	assert.Empty(t, w.Header().Get("X-Cache"))
}

// memoryCache is an in-process cache.Service for the file cache tests
type memoryCache struct {
	entries map[string][]byte
	setErr  error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (m *memoryCache) Get(ctx context.Context, key string, dest interface{}) error {
	data, ok := m.entries[key]
	if !ok {
		return pkgcache.ErrCacheMiss
	}
	return json.Unmarshal(data, dest)
}

func (m *memoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if m.setErr != nil {
		return m.setErr
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = data
	return nil
}

func (m *memoryCache) GetCommentCount(ctx context.Context, postID int64) (int, error) {
	return 0, pkgcache.ErrCacheMiss
}

func (m *memoryCache) SetCommentCount(ctx context.Context, postID int64, count int) error {
	return nil
}

func (m *memoryCache) InvalidateCommentCount(ctx context.Context, postID int64) error {
	return nil
}

func (m *memoryCache) IsAvailable() bool { return true }

func (m *memoryCache) Ping(ctx context.Context) error { return nil }

func newImageRouter(files pkgcache.Service, calls *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(FileCache(files, FileCacheConfig{}))
	r.GET("/community/images/:name", func(c *gin.Context) {
		*calls++
		c.Header("Content-Disposition", "inline")
		c.Data(http.StatusOK, "image/png", []byte("png"))
	})
	r.GET("/community/files/:name", func(c *gin.Context) {
		*calls++
		c.Status(http.StatusNotFound)
	})
	return r
}

func TestFileCache_HitAfterMiss(t *testing.T) {
	calls := 0
	r := newImageRouter(newMemoryCache(), &calls)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/community/images/a.png", nil))
	assert.Equal(t, "MISS", w.Header().Get("X-Cache"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/community/images/a.png", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "HIT", w.Header().Get("X-Cache"))
	assert.Equal(t, "png", w.Body.String())
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, "inline", w.Header().Get("Content-Disposition"))
	assert.Equal(t, 1, calls)
}

func TestFileCache_SkipsNonOK(t *testing.T) {
	calls := 0
	files := newMemoryCache()
	r := newImageRouter(files, &calls)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/community/files/missing.pdf", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	}
	assert.Equal(t, 2, calls)
	assert.Empty(t, files.entries)
}

func TestFileCache_LogsWriteFailure(t *testing.T) {
	var buf bytes.Buffer
	pkglogger.SetOutput(&buf)
	t.Cleanup(func() { pkglogger.SetOutput(os.Stdout) })

	calls := 0
	files := newMemoryCache()
	files.setErr = errors.New("redis down")
	r := newImageRouter(files, &calls)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/community/images/a.png", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "png", w.Body.String())
	assert.Contains(t, buf.String(), "file cache write")
	assert.Contains(t, buf.String(), "redis down")
}

func TestResponseWriter_StopsCapturingPastLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	w := &responseWriter{ResponseWriter: c.Writer, limit: 4}

	_, _ = w.Write([]byte("abc"))
	assert.Equal(t, "abc", string(w.body))
	assert.False(t, w.overflow)

	_, _ = w.WriteString("de")
	assert.True(t, w.overflow)
	assert.Nil(t, w.body)
	assert.Equal(t, "abcde", rec.Body.String())
}
