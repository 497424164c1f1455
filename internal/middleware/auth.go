package middleware

import (
	"errors"
	"strings"

	"github.com/damoang/angple-community/internal/domain"
	"github.com/damoang/angple-community/pkg/jwt"
	pkglogger "github.com/damoang/angple-community/pkg/logger"
	"github.com/gin-gonic/gin"
)

const (
	sessionKey      = "session"
	sessionErrorKey = "session_error"
)

// SessionAuth reads the session token from the session cookie, then from an
// Authorization: Bearer header, and stores the verified *domain.Session in the
// context. A missing or bad token leaves the request anonymous; views decide
// whether they need a session.
func SessionAuth(jwtManager *jwt.Manager, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c, cookieName)
		if token == "" {
			c.Next()
			return
		}

		claims, err := jwtManager.VerifyToken(token)
		if err != nil {
			if errors.Is(err, jwt.ErrExpiredToken) {
				c.Set(sessionErrorKey, err)
			}
			pkglogger.GetLogger().Debug().Err(err).Str("path", c.Request.URL.Path).Msg("session token rejected")
			c.Next()
			return
		}

		c.Set(sessionKey, &domain.Session{
			UserID:       claims.UserID,
			Nickname:     claims.Nickname,
			State:        claims.State,
			FavoriteTeam: claims.FavoriteTeam,
			Token:        token,
		})
		c.Next()
	}
}

func sessionToken(c *gin.Context, cookieName string) string {
	if v, err := c.Cookie(cookieName); err == nil && v != "" {
		return v
	}
	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// GetSession returns the session stored by SessionAuth, or nil for anonymous requests
func GetSession(c *gin.Context) *domain.Session {
	v, exists := c.Get(sessionKey)
	if !exists {
		return nil
	}
	if s, ok := v.(*domain.Session); ok {
		return s
	}
	return nil
}

// SessionExpired reports whether the request carried an expired session token
func SessionExpired(c *gin.Context) bool {
	_, exists := c.Get(sessionErrorKey)
	return exists
}

// GetUserID extracts the session user ID from context
func GetUserID(c *gin.Context) string {
	if s := GetSession(c); s != nil {
		return s.UserID
	}
	return ""
}
