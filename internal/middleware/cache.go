package middleware

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"net/http"
	"time"

	pkgcache "github.com/damoang/angple-community/pkg/cache"
	pkglogger "github.com/damoang/angple-community/pkg/logger"
	"github.com/gin-gonic/gin"
)

// FileCacheConfig configures the proxied file cache
type FileCacheConfig struct {
	TTL       time.Duration
	KeyPrefix string
	// MaxBodySize skips responses larger than this many bytes
	MaxBodySize int
}

// DefaultFileCacheConfig returns the image cache settings used when config leaves them unset
func DefaultFileCacheConfig() FileCacheConfig {
	return FileCacheConfig{
		TTL:         10 * time.Minute,
		KeyPrefix:   "community:files:",
		MaxBodySize: 1 << 20,
	}
}

type cachedFile struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Disposition string `json:"disposition,omitempty"`
	Body        []byte `json:"body"`
}

// FileCache keeps successful proxied file responses in Redis so repeated
// views of the same attachment skip the remote service
func FileCache(files pkgcache.Service, cfg FileCacheConfig) gin.HandlerFunc {
	d := DefaultFileCacheConfig()
	if cfg.TTL <= 0 {
		cfg.TTL = d.TTL
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = d.KeyPrefix
	}
	if cfg.MaxBodySize <= 0 {
		cfg.MaxBodySize = d.MaxBodySize
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet || files == nil || !files.IsAvailable() {
			c.Next()
			return
		}

		key := cfg.KeyPrefix + cacheKey(c.Request.URL.Path)
		ctx := c.Request.Context()

		var cached cachedFile
		err := files.Get(ctx, key, &cached)
		if err == nil {
			if cached.Disposition != "" {
				c.Header("Content-Disposition", cached.Disposition)
			}
			c.Header("X-Cache", "HIT")
			c.Data(cached.Status, cached.ContentType, cached.Body)
			c.Abort()
			return
		}
		if !errors.Is(err, pkgcache.ErrCacheMiss) {
			pkglogger.Warn("file cache read %s: %v", c.Request.URL.Path, err)
		}

		// Cache miss
		c.Header("X-Cache", "MISS")
		w := &responseWriter{ResponseWriter: c.Writer, limit: cfg.MaxBodySize}
		c.Writer = w

		c.Next()

		if w.Status() != http.StatusOK || w.overflow {
			return
		}
		entry := cachedFile{
			Status:      w.Status(),
			ContentType: w.Header().Get("Content-Type"),
			Disposition: w.Header().Get("Content-Disposition"),
			Body:        w.body,
		}
		if err := files.Set(ctx, key, entry, cfg.TTL); err != nil {
			pkglogger.Warn("file cache write %s: %v", c.Request.URL.Path, err)
		}
	}
}

func cacheKey(path string) string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(path)))
}

// responseWriter captures the response body up to limit bytes
type responseWriter struct {
	gin.ResponseWriter
	body     []byte
	limit    int
	overflow bool
}

func (w *responseWriter) capture(b []byte) {
	if w.overflow {
		return
	}
	if len(w.body)+len(b) > w.limit {
		w.overflow = true
		w.body = nil
		return
	}
	w.body = append(w.body, b...)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.capture(b)
	return w.ResponseWriter.Write(b)
}

func (w *responseWriter) WriteString(s string) (int, error) {
	w.capture([]byte(s))
	return w.ResponseWriter.WriteString(s)
}
