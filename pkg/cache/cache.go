package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// TTL 상수 정의
const (
	TTLCommentCount = 10 * time.Minute // 댓글 수 (원격 조회 실패 시 대체값)
)

// 캐시 키 접두사
const (
	PrefixCommentCount = "community:comments:"
)

// ErrCacheMiss is returned when a key is absent or redis is not configured
var ErrCacheMiss = errors.New("cache miss")

// Service Redis 캐시 서비스 인터페이스
type Service interface {
	// 기본 캐시 연산 (JSON 직렬화)
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// 댓글 수 캐시
	GetCommentCount(ctx context.Context, postID int64) (int, error)
	SetCommentCount(ctx context.Context, postID int64, count int) error
	InvalidateCommentCount(ctx context.Context, postID int64) error

	// 유틸리티
	IsAvailable() bool
	Ping(ctx context.Context) error
}

// redisCache Redis 기반 캐시 구현
type redisCache struct {
	client *redis.Client
}

// NewService 새로운 캐시 서비스 생성. client가 nil이면 모든 조회는 miss, 저장은 무시된다.
func NewService(client *redis.Client) Service {
	return &redisCache{client: client}
}

// IsAvailable Redis 연결 가능 여부
func (c *redisCache) IsAvailable() bool {
	return c.client != nil
}

// Ping Redis 연결 테스트
func (c *redisCache) Ping(ctx context.Context) error {
	if c.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	return c.client.Ping(ctx).Err()
}

// Get 캐시에서 값 조회
func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) error {
	if c.client == nil {
		return ErrCacheMiss
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		return err
	}

	return json.Unmarshal(data, dest)
}

// Set 캐시에 값 저장
func (c *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c.client == nil {
		return nil // Redis 없으면 무시
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, data, ttl).Err()
}

// ========================================
// 댓글 수 캐시
// ========================================

// CommentCountKey returns the redis key holding the last known comment count of a post
func CommentCountKey(postID int64) string {
	return PrefixCommentCount + strconv.FormatInt(postID, 10)
}

func (c *redisCache) GetCommentCount(ctx context.Context, postID int64) (int, error) {
	if c.client == nil {
		return 0, ErrCacheMiss
	}
	n, err := c.client.Get(ctx, CommentCountKey(postID)).Int()
	if errors.Is(err, redis.Nil) {
		return 0, ErrCacheMiss
	}
	return n, err
}

func (c *redisCache) SetCommentCount(ctx context.Context, postID int64, count int) error {
	if c.client == nil {
		return nil
	}
	return c.client.Set(ctx, CommentCountKey(postID), count, TTLCommentCount).Err()
}

func (c *redisCache) InvalidateCommentCount(ctx context.Context, postID int64) error {
	if c.client == nil {
		return nil
	}
	return c.client.Del(ctx, CommentCountKey(postID)).Err()
}
