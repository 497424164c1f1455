package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/damoang/angple-community/internal/config"
	"github.com/damoang/angple-community/internal/handler"
	"github.com/damoang/angple-community/internal/middleware"
	"github.com/damoang/angple-community/internal/repository"
	"github.com/damoang/angple-community/internal/routes"
	"github.com/damoang/angple-community/internal/service"
	"github.com/damoang/angple-community/internal/tasks"
	pkgcache "github.com/damoang/angple-community/pkg/cache"
	"github.com/damoang/angple-community/pkg/i18n"
	"github.com/damoang/angple-community/pkg/jwt"
	pkglogger "github.com/damoang/angple-community/pkg/logger"
	pkgredis "github.com/damoang/angple-community/pkg/redis"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// @title           Angple Community API
// @version         1.0
// @description     야구 커뮤니티 게시판 화면 API (목록, 상세, 글쓰기, 수정)
//
// @license.name    MIT
//
// @host            localhost:8082
// @BasePath        /
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Session token using the Bearer scheme. Example: "Bearer {token}". The community_session cookie is accepted as well.

// getConfigPath returns config file path based on APP_ENV environment variable
func getConfigPath(env string) string {
	return fmt.Sprintf("configs/config.%s.yaml", env)
}

func main() {
	dotenvFiles := config.LoadDotEnv()

	// 로거 초기화
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	pkglogger.InitStructured(env)
	pkglogger.Info("APP_ENV=%s, loaded env files: %v", env, dotenvFiles)

	// 설정 로드
	configPath := getConfigPath(env)
	pkglogger.Info("Loading config from: %s", configPath)
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	config.LogResolved(cfg)
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	// Redis 연결 (댓글 수 캐시, 글쓰기 제한, 이미지 캐시)
	var redisClient *goredis.Client
	if cfg.Redis.Enabled {
		redisClient, err = pkgredis.NewClient(pkgredis.Options{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err != nil {
			pkglogger.Warn("Failed to connect to Redis: %v (continuing without Redis)", err)
			redisClient = nil
		} else {
			pkglogger.Info("Connected to Redis")
		}
	}
	cacheService := pkgcache.NewService(redisClient)

	// 세션 토큰
	secret := cfg.Session.Secret
	if secret == "" {
		// 개발 환경 전용: 재시작하면 기존 세션은 모두 무효
		secret = uuid.NewString()
		pkglogger.Warn("session.secret is empty; using a random per-process secret")
	}
	jwtManager := jwt.NewManager(secret, cfg.Session.TTL)

	// i18n Bundle
	i18nBundle := i18n.NewDefaultBundle()
	if cfg.I18n.Dir != "" {
		if err := i18nBundle.LoadDir(cfg.I18n.Dir); err != nil {
			pkglogger.Warn("i18n LoadDir failed: %v", err)
		}
	}

	// 원격 커뮤니티 API
	httpClient := repository.NewHTTPClient(cfg.Remote.Timeout)
	communityRepo := repository.NewCommunityRepository(cfg.Remote.BaseURL, cfg.Session.CookieName, httpClient)

	// Services
	postStore := service.NewPostStore(communityRepo, cacheService, cfg.Remote.CommentCountConcurrency)
	postService := service.NewPostService(communityRepo, postStore, cacheService)
	formController := service.NewFormController(communityRepo)

	// 댓글 수 캐시 갱신 (Redis 사용 시)
	var warmer *tasks.CommentCountWarmer
	if cacheService.IsAvailable() && cfg.Cache.WarmSchedule != "" {
		warmer = tasks.NewCommentCountWarmer(postStore, cfg.Remote.Timeout*3)
		if err := warmer.Start(cfg.Cache.WarmSchedule); err != nil {
			pkglogger.Warn("comment count warmer disabled: %v", err)
			warmer = nil
		}
	}

	// Handlers
	communityHandler := handler.NewCommunityHandler(postService, formController, i18nBundle, cfg.Session.LoginPath)

	// Gin 라우터 생성
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware("angple-community"))

	// CORS 설정
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins(),
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Accept-Language", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Remaining", "Retry-After", "X-Cache"},
		MaxAge:           12 * time.Hour,
	}))

	// Middleware
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Metrics())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.I18n())
	router.Use(middleware.InputSanitizer(i18nBundle))
	router.Use(middleware.SessionAuth(jwtManager, cfg.Session.CookieName))

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health Check
	router.GET("/health", func(c *gin.Context) {
		status := gin.H{
			"status":  "ok",
			"service": "angple-community",
			"time":    time.Now().Unix(),
		}
		if cacheService.IsAvailable() {
			if err := cacheService.Ping(c.Request.Context()); err != nil {
				status["redis"] = "unavailable"
			} else {
				status["redis"] = "ok"
			}
		}
		c.JSON(http.StatusOK, status)
	})

	// Swagger UI
	if !cfg.IsProduction() {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	routes.Setup(router, communityHandler, routes.Middlewares{
		WriteLimit: middleware.WriteRateLimit(redisClient, i18nBundle, middleware.RateLimitConfig{
			Limit:  cfg.RateLimit.WriteLimit,
			Window: cfg.RateLimit.WriteWindow,
		}),
		FileCache: middleware.FileCache(cacheService, middleware.FileCacheConfig{
			TTL:         cfg.Cache.FileTTL,
			MaxBodySize: cfg.Cache.FileMaxBytes,
		}),
	})

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": gin.H{"code": "NOT_FOUND", "message": "not found"}})
	})

	// 서버 시작
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		pkglogger.Info("Server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	pkglogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		pkglogger.Error("Server forced to shutdown: %v", err)
	}
	if warmer != nil {
		select {
		case <-warmer.Stop().Done():
		case <-ctx.Done():
		}
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
	pkglogger.Info("Server exited")
}
