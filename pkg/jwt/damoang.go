package jwt

import (
	"errors"
	"time"

	"github.com/damoang/angple-community/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Errors returned by VerifyToken
var (
	ErrInvalidToken = common.ErrInvalidToken
	ErrExpiredToken = common.ErrExpiredToken
)

// SessionClaims - 로그인 세션 토큰 페이로드
// The auth provider signs these; the community service only verifies them.
type SessionClaims struct {
	jwt.RegisteredClaims
	UserID       string `json:"user_id"`
	Nickname     string `json:"nickname"`
	State        string `json:"state,omitempty"`
	FavoriteTeam string `json:"favorite_team,omitempty"`
}

// Manager verifies session tokens signed with a shared HMAC secret
type Manager struct {
	secretKey []byte
	expiresIn time.Duration
}

// NewManager creates a Manager. expiresIn is only used by IssueToken.
func NewManager(secret string, expiresIn time.Duration) *Manager {
	return &Manager{
		secretKey: []byte(secret),
		expiresIn: expiresIn,
	}
}

// IssueToken signs claims for a user. Used by local tooling and tests.
func (m *Manager) IssueToken(userID, nickname, state, favoriteTeam string) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiresIn)),
		},
		UserID:       userID,
		Nickname:     nickname,
		State:        state,
		FavoriteTeam: favoriteTeam,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secretKey)
}

// VerifyToken - 세션 토큰 검증
func (m *Manager) VerifyToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Validate signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		if claims.UserID == "" {
			claims.UserID = claims.Subject
		}
		return claims, nil
	}

	return nil, ErrInvalidToken
}
