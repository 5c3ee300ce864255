package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/brightofhouse/site/internal/api"
	"github.com/brightofhouse/site/internal/auth"
	"github.com/brightofhouse/site/internal/config"
	"github.com/brightofhouse/site/internal/db"
	"github.com/brightofhouse/site/internal/email"
	"github.com/brightofhouse/site/internal/health"
	"github.com/brightofhouse/site/internal/logger"
	"github.com/brightofhouse/site/internal/media/image"
	"github.com/brightofhouse/site/internal/media/video"
	"github.com/brightofhouse/site/internal/metrics"
	"github.com/brightofhouse/site/internal/storage"
	"github.com/brightofhouse/site/internal/tracing"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

const version = "1.0.0"

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		logger.Flush(2 * time.Second)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger.InitWithOptions(logger.Options{
		Level:       cfg.LogLevel,
		Environment: cfg.Environment,
		SentryDSN:   cfg.SentryDSN,
	})
	defer logger.Flush(2 * time.Second)
	log := logger.Default()

	log.Info("configuration loaded", "environment", cfg.Environment, "storage", cfg.StorageBackend, "email", cfg.EmailProvider)

	ctx := context.Background()

	if cfg.TracingEnabled {
		shutdownTracing, err := tracing.Init(ctx, &tracing.Config{
			ServiceName:    cfg.OTELServiceName,
			ServiceVersion: version,
			Environment:    cfg.Environment,
			OTLPEndpoint:   cfg.OTLPEndpoint,
			Enabled:        true,
			SampleRate:     1.0,
		})
		if err != nil {
			return fmt.Errorf("failed to init tracing: %w", err)
		}
		defer func() { _ = shutdownTracing(ctx) }()
		log.Info("tracing enabled", "endpoint", cfg.OTLPEndpoint)
	}

	log.Info("connecting to database")
	pool, err := db.Open(ctx, cfg.DatabaseURL, int32(cfg.DBMaxConns))
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.RunMigrations(ctx, pool); err != nil {
			return err
		}
	}
	queries := db.New(pool)

	log.Info("connecting to object storage")
	store, err := storage.Open(ctx, cfg.StorageBackend, cfg.Storage())
	if err != nil {
		return fmt.Errorf("failed to create storage: %w", err)
	}
	instrumentedStore := metrics.NewInstrumentedStorage(store)
	keys := storage.NewKeys(cfg.PublicBaseURL())
	log.Info("object storage connected", "public_url", keys.BaseURL())

	var codes auth.CodeStore = auth.NewPostgresCodeStore(queries)
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisOpt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("failed to parse redis url: %w", err)
		}
		redisClient = redis.NewClient(redisOpt)
		defer func() { _ = redisClient.Close() }()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			// Login codes stay in postgres; throttling falls back to memory.
			log.Warn("redis unreachable at startup", "error", err)
		} else {
			codes = auth.NewRedisCodeStore(redisClient)
			log.Info("redis connected")
		}
	}

	mailer, err := email.New(cfg.EmailProvider, email.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
	}, cfg.ResendAPIKey)
	if err != nil {
		return err
	}
	composer := email.Composer{From: cfg.SMTPFrom}

	gate := auth.NewGate(cfg.JWTSecret, cfg.SessionTTL)
	authService := auth.NewService(auth.ServiceConfig{
		Credentials: auth.Credentials{User: cfg.AdminUser, Pass: cfg.AdminPass},
		AdminEmail:  cfg.AdminEmail,
		CodeTTL:     cfg.AuthCodeTTL,
	}, gate, codes, mailer, composer)

	encoder := image.NewCwebpEncoder(cfg.CwebpPath, cfg.ImageQuality, cfg.VideoTemp)
	normalizer := image.NewNormalizer(cfg.ImageMaxDimension, encoder)
	transcoder := video.NewTranscoder(video.Config{
		FFmpegPath:  cfg.FFmpegPath,
		FFprobePath: cfg.FFprobePath,
		TempDir:     cfg.VideoTemp,
		CRF:         cfg.VideoCRF,
		Timeout:     cfg.TranscodeTimeout,
	})
	if err := encoder.Available(); err != nil {
		log.Warn("cwebp not found, image uploads will fail", "error", err)
	}
	if err := transcoder.Available(); err != nil {
		log.Warn("ffmpeg not found, video uploads will fail", "error", err)
	}

	limiter := api.NewHybridRateLimiter(redisClient, cfg.RateLimit, cfg.RateBurst)
	defer limiter.Stop()

	checker := health.NewChecker(version).
		WithDatabase(pool).
		WithRedis(redisClient).
		WithStorage(store).
		WithBinary("ffmpeg", transcoder.Available).
		WithBinary("cwebp", encoder.Available)

	metrics.SetAppInfo(version, cfg.Environment, cfg.OTELServiceName)

	apiRouter := api.NewRouter(&api.Config{
		Storage:            instrumentedStore,
		Keys:               keys,
		Queries:            queries,
		Images:             normalizer,
		Videos:             transcoder,
		Auth:               authService,
		CookieSecure:       cfg.CookieSecure,
		Mailer:             mailer,
		Composer:           composer,
		ContactMailTo:      cfg.ContactMailTo,
		MaxImageUploadSize: cfg.MaxImageUploadSize,
		MaxVideoUploadSize: cfg.MaxVideoUploadSize,
		SiteURL:            cfg.BaseURL,
		AllowedOrigins:     cfg.AllowedOrigins,
		DevMode:            !cfg.IsProduction(),
		Limiter:            limiter,
		Health:             checker,
	})

	mux := http.NewServeMux()
	if cfg.MetricsEnabled {
		mux.Handle(cfg.MetricsPath, promhttp.Handler())
	}
	mux.Handle("/", apiRouter)

	handler := api.SecurityHeaders(metrics.HTTPMetricsMiddleware(api.Recovery(api.RequestID(api.RequestLogger(tracing.NameByRoute(mux))))))
	if cfg.TracingEnabled {
		handler = tracing.HTTPMiddleware(cfg.OTELServiceName)(handler)
	}

	// No write timeout: a video upload blocks until ffmpeg finishes.
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		log.Info("server starting", "port", cfg.Port, "url", cfg.BaseURL)
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
	case sig := <-shutdown:
		log.Info("shutdown signal received", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			_ = server.Close()
			return fmt.Errorf("forced shutdown: %w", err)
		}
	}

	log.Info("server stopped gracefully")
	return nil
}
