package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"article-generator/internal/auth"
	"article-generator/internal/config"
	"article-generator/internal/handler"
	"article-generator/internal/infrastructure/database"
	"article-generator/internal/infrastructure/gemini"
	"article-generator/internal/infrastructure/wordpress"
	"article-generator/internal/logger"
	"article-generator/internal/metrics"
	"article-generator/internal/middleware"
	"article-generator/internal/moderation"
	"article-generator/internal/ratelimit"
	"article-generator/internal/repository"
	"article-generator/internal/service"
	"article-generator/internal/validator"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.SetLogger(logger.New(logger.ParseLevel(cfg.LogLevel)))

	ctx := context.Background()
	deps := map[string]database.Pinger{}

	// Publication ledger (optional)
	var publications repository.PublicationRepository
	if cfg.DatabaseEnabled() {
		pool := connectDatabase(ctx, cfg)
		defer pool.Close()

		poolStatsCollector := metrics.NewPoolStatsCollector(pool)
		poolStatsCollector.Start(15 * time.Second)
		defer poolStatsCollector.Stop()

		publications = repository.NewPostgresPublicationRepository(pool)
		deps["database"] = pool
	} else {
		logger.Info("DB_HOST not set, publication ledger disabled")
	}

	// Rate limiter
	store := ratelimit.Store(ratelimit.NewMemoryStore())
	if cfg.RateLimitStore == config.RateLimitStoreRedis {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Fatal("Invalid REDIS_URL", slog.String("error", err.Error()))
		}
		rdb := redis.NewClient(opts)
		defer rdb.Close()

		store = ratelimit.NewRedisStore(rdb, "ratelimit:generate")
		deps["redis"] = database.PingerFunc(func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		})
	}
	limiter := ratelimit.NewLimiter(store, ratelimit.DefaultWindows(cfg.RateLimitPerMinute, cfg.RateLimitPerDay))

	policy, err := moderation.ParsePolicy(cfg.ModerationPolicy)
	if err != nil {
		logger.Fatal("Invalid MODERATION_POLICY", slog.String("error", err.Error()))
	}

	// Generation client; requests answer SERVICE_ERROR while unconfigured
	var generator service.TextGenerator
	if cfg.GeminiAPIKey != "" {
		client, err := gemini.NewClient(ctx, gemini.Config{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			BaseURL: cfg.GeminiBaseURL,
		})
		if err != nil {
			logger.Fatal("Failed to create generation client", slog.String("error", err.Error()))
		}
		generator = client
	} else {
		logger.Warn("GEMINI_API_KEY not set, generation requests will fail")
	}

	// CMS client; publishing answers SERVICE_ERROR while unconfigured
	var cms service.CMSPublisher
	if wp, err := wordpress.NewClient(wordpress.Config{
		BaseURL:  cfg.WordPressBaseURL,
		Username: cfg.WordPressUsername,
		Password: cfg.WordPressAppPassword,
	}); err == nil {
		cms = wp
	} else {
		logger.Warn("WordPress publishing disabled", slog.String("reason", err.Error()))
	}

	// Identity verification
	var verifier middleware.Verifier
	if cfg.SupabaseJWTSecret != "" {
		verifier = auth.NewJWTVerifier(cfg.SupabaseJWTSecret)
	} else {
		verifier = auth.NewSupabaseVerifier(cfg.SupabaseURL, cfg.SupabaseAnonKey, nil)
	}

	// Initialize services
	v := validator.NewValidator()
	generationService := service.NewGenerationService(
		limiter,
		v,
		moderation.NewModerator(policy),
		generator,
		service.GenerationConfig{
			MaxPayloadBytes: cfg.MaxPayloadBytes,
			Timeout:         cfg.GenerationTimeout,
		},
	)
	publishService := service.NewPublishService(cms, publications, v, service.PublishConfig{
		RatePerMinute: cfg.PublishRatePerMinute,
		AuthorID:      cfg.WordPressAuthorID,
	})

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := handler.NewRouter(handler.RouterConfig{
		Generate: handler.NewGenerateHandler(generationService),
		Publish:  handler.NewPublishHandler(publishService),
		Health:   handler.NewHealthHandler(version, deps),
		Verifier: verifier,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort),
			slog.String("moderation_policy", string(policy)),
			slog.String("rate_limit_store", cfg.RateLimitStore))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// In-flight generations may take up to the upstream timeout.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GenerationTimeout+5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}

// connectDatabase opens the pool and applies migrations when a path is set.
func connectDatabase(ctx context.Context, cfg *config.Config) *pgxpool.Pool {
	poolCfg := database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	}

	if cfg.DBMigrationsPath != "" {
		if err := database.Migrate(poolCfg.URL(), cfg.DBMigrationsPath); err != nil {
			logger.Fatal("Failed to apply migrations", slog.String("error", err.Error()))
		}
	}

	pool, err := database.NewPostgres(ctx, poolCfg)
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	return pool
}
