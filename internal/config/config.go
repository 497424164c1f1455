package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	pkglogger "github.com/damoang/angple-community/pkg/logger"
	"gopkg.in/yaml.v3"
)

// Config 애플리케이션 설정
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Remote    RemoteConfig    `yaml:"remote"`
	Session   SessionConfig   `yaml:"session"`
	Redis     RedisConfig     `yaml:"redis"`
	Cache     CacheConfig     `yaml:"cache"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	I18n      I18nConfig      `yaml:"i18n"`
}

// ServerConfig HTTP 서버 설정
type ServerConfig struct {
	Port            int           `yaml:"port"`
	Env             string        `yaml:"env"`
	Mode            string        `yaml:"mode"` // gin mode: debug, release, test
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// RemoteConfig 원격 커뮤니티 API 설정
type RemoteConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
	// CommentCountConcurrency bounds parallel comment count lookups; 0 means unbounded
	CommentCountConcurrency int `yaml:"comment_count_concurrency"`
}

// SessionConfig 로그인 세션 설정
type SessionConfig struct {
	CookieName string `yaml:"cookie_name"`
	Secret     string `yaml:"secret"`
	LoginPath  string `yaml:"login_path"`

	// TTL is the lifetime of tokens issued by this service
	TTL time.Duration `yaml:"ttl"`
}

// RedisConfig Redis 설정
type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	PoolSize int    `yaml:"pool_size"`
}

// CacheConfig Redis 캐시 설정
type CacheConfig struct {
	FileTTL      time.Duration `yaml:"file_ttl"`       // 첨부 이미지 응답 캐시
	FileMaxBytes int           `yaml:"file_max_bytes"` // 이보다 큰 파일은 캐시하지 않음
	WarmSchedule string        `yaml:"warm_schedule"`  // 댓글 수 캐시 갱신 주기 (cron), 비어 있으면 사용 안 함
}

// CORSConfig CORS 설정
type CORSConfig struct {
	AllowOrigins string `yaml:"allow_origins"` // comma separated
}

// RateLimitConfig 글쓰기 요청 제한
type RateLimitConfig struct {
	WriteLimit  int           `yaml:"write_limit"`
	WriteWindow time.Duration `yaml:"write_window"`
}

// I18nConfig 번역 파일 설정
type I18nConfig struct {
	Dir string `yaml:"dir"` // optional JSON overlay directory
}

// Default returns the configuration used when a key is missing from the file
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8082,
			Env:             "local",
			Mode:            "debug",
			ShutdownTimeout: 10 * time.Second,
		},
		Remote: RemoteConfig{
			BaseURL:                 "http://localhost:8090",
			Timeout:                 10 * time.Second,
			CommentCountConcurrency: 8,
		},
		Session: SessionConfig{
			CookieName: "community_session",
			LoginPath:  "/login",
			TTL:        24 * time.Hour,
		},
		Redis: RedisConfig{
			Host:     "localhost",
			Port:     6379,
			PoolSize: 10,
		},
		CORS: CORSConfig{
			AllowOrigins: "http://localhost:3000",
		},
		Cache: CacheConfig{
			FileTTL:      10 * time.Minute,
			FileMaxBytes: 1 << 20,
		},
		RateLimit: RateLimitConfig{
			WriteLimit:  20,
			WriteWindow: time.Minute,
		},
	}
}

// Load reads a YAML config file on top of Default.
// ${VAR} references in the file are expanded from the environment,
// then COMMUNITY_* variables override individual keys.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// env-only configuration
	default:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	applyEnv(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Server.Port = getEnvInt("COMMUNITY_PORT", cfg.Server.Port)
	cfg.Server.Env = getEnv("APP_ENV", cfg.Server.Env)
	cfg.Server.Mode = getEnv("GIN_MODE", cfg.Server.Mode)
	cfg.Remote.BaseURL = getEnv("COMMUNITY_REMOTE_BASE_URL", cfg.Remote.BaseURL)
	cfg.Session.Secret = getEnv("COMMUNITY_SESSION_SECRET", cfg.Session.Secret)
	cfg.Redis.Host = getEnv("REDIS_HOST", cfg.Redis.Host)
	cfg.Redis.Port = getEnvInt("REDIS_PORT", cfg.Redis.Port)
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.CORS.AllowOrigins = getEnv("CORS_ALLOW_ORIGINS", cfg.CORS.AllowOrigins)
}

func (c *Config) validate() error {
	if c.Remote.BaseURL == "" {
		return fmt.Errorf("remote.base_url is required")
	}
	if c.Session.CookieName == "" {
		return fmt.Errorf("session.cookie_name is required")
	}
	if c.Session.Secret == "" && !c.IsDevelopment() {
		return fmt.Errorf("session.secret is required outside development")
	}
	c.Remote.BaseURL = strings.TrimRight(c.Remote.BaseURL, "/")
	return nil
}

// IsDevelopment reports whether the server runs in a local or dev environment
func (c *Config) IsDevelopment() bool {
	switch c.Server.Env {
	case "", "local", "dev", "development":
		return true
	}
	return false
}

// IsProduction reports whether the server runs in production
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production" || c.Server.Env == "prod"
}

// AllowOrigins splits the comma separated CORS origins
func (c *Config) AllowOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORS.AllowOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// LogResolved prints the effective configuration without secrets
func LogResolved(cfg *Config) {
	pkglogger.Info("config: env=%s port=%d mode=%s", cfg.Server.Env, cfg.Server.Port, cfg.Server.Mode)
	pkglogger.Info("config: remote=%s timeout=%s concurrency=%d", cfg.Remote.BaseURL, cfg.Remote.Timeout, cfg.Remote.CommentCountConcurrency)
	pkglogger.Info("config: redis enabled=%t addr=%s:%d db=%d", cfg.Redis.Enabled, cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)
	pkglogger.Info("config: session cookie=%s secret_set=%t", cfg.Session.CookieName, cfg.Session.Secret != "")
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
