package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/brightofhouse/site/internal/storage"
	"github.com/joho/godotenv"
)

const (
	StorageR2     = storage.BackendR2
	StorageMinIO  = storage.BackendMinIO
	StorageMemory = storage.BackendMemory

	EmailSMTP   = "smtp"
	EmailResend = "resend"
	EmailLog    = "log"
)

type Config struct {
	Port            int
	BaseURL         string
	Environment     string
	LogLevel        string
	ShutdownTimeout time.Duration

	DatabaseURL   string
	DBMaxConns    int
	RunMigrations bool

	RedisURL string

	StorageBackend string

	R2Endpoint        string
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2Bucket          string
	R2PublicURL       string

	MinIOEndpoint  string
	MinIOAccessKey string
	MinIOSecretKey string
	MinIOBucket    string
	MinIOUseSSL    bool
	MinIORegion    string

	JWTSecret    string
	AdminUser    string
	AdminPass    string
	AdminEmail   string
	SessionTTL   time.Duration
	AuthCodeTTL  time.Duration
	CookieSecure bool

	EmailProvider string
	SMTPHost      string
	SMTPPort      int
	SMTPUsername  string
	SMTPPassword  string
	SMTPFrom      string
	ContactMailTo string
	ResendAPIKey  string

	// Zero disables the application-level limit.
	MaxImageUploadSize int64
	MaxVideoUploadSize int64

	ImageMaxDimension int
	ImageQuality      int
	CwebpPath         string

	FFmpegPath  string
	FFprobePath string
	VideoTemp   string
	VideoCRF    int
	// Zero leaves the transcode bounded only by the request context.
	TranscodeTimeout time.Duration

	// Requests per minute per client on the login and contact endpoints.
	RateLimit      int
	RateBurst      int
	AllowedOrigins []string

	MetricsEnabled  bool
	MetricsPath     string
	TracingEnabled  bool
	OTLPEndpoint    string
	OTELServiceName string
	SentryDSN       string
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; real environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	var err error

	cfg.Port = getEnvInt("PORT", 8080)
	cfg.BaseURL = strings.TrimSuffix(getEnvString("BASE_URL", "http://localhost:8080"), "/")
	cfg.Environment = getEnvString("ENVIRONMENT", "development")
	cfg.LogLevel = getEnvString("LOG_LEVEL", "info")
	cfg.ShutdownTimeout, err = getEnvDuration("SHUTDOWN_TIMEOUT", "30s")
	if err != nil {
		return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	cfg.DBMaxConns = getEnvInt("DB_MAX_CONNS", 10)
	cfg.RunMigrations = getEnvBool("RUN_MIGRATIONS", true)

	cfg.RedisURL = os.Getenv("REDIS_URL")

	cfg.StorageBackend = strings.ToLower(getEnvString("STORAGE_BACKEND", StorageR2))

	cfg.R2Endpoint = os.Getenv("R2_ENDPOINT")
	cfg.R2AccountID = os.Getenv("R2_ACCOUNT_ID")
	if cfg.R2Endpoint == "" && cfg.R2AccountID != "" {
		cfg.R2Endpoint = fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.R2AccountID)
	}
	cfg.R2AccessKeyID = os.Getenv("R2_ACCESS_KEY_ID")
	cfg.R2SecretAccessKey = os.Getenv("R2_SECRET_ACCESS_KEY")
	cfg.R2Bucket = os.Getenv("R2_BUCKET_NAME")
	cfg.R2PublicURL = strings.TrimSuffix(os.Getenv("R2_PUBLIC_URL"), "/")

	cfg.MinIOEndpoint = getEnvString("MINIO_ENDPOINT", "localhost:9000")
	cfg.MinIOAccessKey = os.Getenv("MINIO_ACCESS_KEY")
	cfg.MinIOSecretKey = os.Getenv("MINIO_SECRET_KEY")
	cfg.MinIOBucket = getEnvString("MINIO_BUCKET", "site-media")
	cfg.MinIOUseSSL = getEnvBool("MINIO_USE_SSL", false)
	cfg.MinIORegion = getEnvString("MINIO_REGION", "us-east-1")

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	cfg.AdminUser = os.Getenv("ADMIN_USER")
	cfg.AdminPass = os.Getenv("ADMIN_PASS")
	cfg.AdminEmail = os.Getenv("ADMIN_EMAIL")
	cfg.SessionTTL, err = getEnvDuration("SESSION_TTL", "24h")
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}
	cfg.AuthCodeTTL, err = getEnvDuration("AUTH_CODE_TTL", "10m")
	if err != nil {
		return nil, fmt.Errorf("invalid AUTH_CODE_TTL: %w", err)
	}
	cfg.CookieSecure = getEnvBool("COOKIE_SECURE", cfg.Environment == "production")

	cfg.EmailProvider = strings.ToLower(getEnvString("EMAIL_PROVIDER", EmailSMTP))
	cfg.SMTPHost = os.Getenv("SMTP_HOST")
	cfg.SMTPPort = getEnvInt("SMTP_PORT", 587)
	cfg.SMTPUsername = os.Getenv("SMTP_USER")
	cfg.SMTPPassword = os.Getenv("SMTP_PASS")
	cfg.SMTPFrom = getEnvString("SMTP_FROM", cfg.SMTPUsername)
	cfg.ContactMailTo = os.Getenv("CONTACT_MAIL_TO")
	cfg.ResendAPIKey = os.Getenv("RESEND_API_KEY")

	cfg.MaxImageUploadSize = getEnvInt64("MAX_IMAGE_UPLOAD_BYTES", 0)
	cfg.MaxVideoUploadSize = getEnvInt64("MAX_VIDEO_UPLOAD_BYTES", 0)

	cfg.ImageMaxDimension = getEnvInt("IMAGE_MAX_DIMENSION", 1920)
	cfg.ImageQuality = getEnvInt("IMAGE_QUALITY", 80)
	cfg.CwebpPath = getEnvString("CWEBP_PATH", "cwebp")

	cfg.FFmpegPath = getEnvString("FFMPEG_PATH", "ffmpeg")
	cfg.FFprobePath = getEnvString("FFPROBE_PATH", "ffprobe")
	cfg.VideoTemp = getEnvString("VIDEO_TEMP_DIR", os.TempDir())
	cfg.VideoCRF = getEnvInt("VIDEO_CRF", 28)
	cfg.TranscodeTimeout, err = getEnvDuration("TRANSCODE_TIMEOUT", "0s")
	if err != nil {
		return nil, fmt.Errorf("invalid TRANSCODE_TIMEOUT: %w", err)
	}

	cfg.RateLimit = getEnvInt("RATE_LIMIT", 10)
	cfg.RateBurst = getEnvInt("RATE_BURST", 5)
	cfg.AllowedOrigins = getEnvList("ALLOWED_ORIGINS", cfg.BaseURL)

	cfg.MetricsEnabled = getEnvBool("METRICS_ENABLED", true)
	cfg.MetricsPath = getEnvString("METRICS_PATH", "/metrics")
	cfg.TracingEnabled = getEnvBool("TRACING_ENABLED", false)
	cfg.OTLPEndpoint = getEnvString("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317")
	cfg.OTELServiceName = getEnvString("OTEL_SERVICE_NAME", "brightofhouse-site")
	cfg.SentryDSN = os.Getenv("SENTRY_DSN")

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// PublicBaseURL is the prefix that turns a storage key into a browser URL.
func (c *Config) PublicBaseURL() string {
	if c.StorageBackend == StorageMinIO && c.R2PublicURL == "" {
		scheme := "http"
		if c.MinIOUseSSL {
			scheme = "https"
		}
		return fmt.Sprintf("%s://%s/%s", scheme, c.MinIOEndpoint, c.MinIOBucket)
	}
	return c.R2PublicURL
}

// Storage returns the connection settings for the selected backend.
func (c *Config) Storage() *storage.Config {
	if c.StorageBackend == StorageMinIO {
		return &storage.Config{
			Endpoint:  c.MinIOEndpoint,
			AccessKey: c.MinIOAccessKey,
			SecretKey: c.MinIOSecretKey,
			Bucket:    c.MinIOBucket,
			UseSSL:    c.MinIOUseSSL,
			Region:    c.MinIORegion,
		}
	}
	return &storage.Config{
		Endpoint:  c.R2Endpoint,
		AccessKey: c.R2AccessKeyID,
		SecretKey: c.R2SecretAccessKey,
		Bucket:    c.R2Bucket,
	}
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvList splits a comma-separated value, dropping empty entries.
func getEnvList(key, defaultValue string) []string {
	var out []string
	for _, v := range strings.Split(getEnvString(key, defaultValue), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, strings.TrimSuffix(v, "/"))
		}
	}
	return out
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key, defaultValue string) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}
	return time.ParseDuration(value)
}

func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}

	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}

	if c.AdminUser == "" || c.AdminPass == "" {
		return fmt.Errorf("ADMIN_USER and ADMIN_PASS are required")
	}

	switch c.StorageBackend {
	case StorageR2:
		if c.R2Endpoint == "" || c.R2Bucket == "" || c.R2PublicURL == "" {
			return fmt.Errorf("R2_ENDPOINT (or R2_ACCOUNT_ID), R2_BUCKET_NAME and R2_PUBLIC_URL are required for r2 storage")
		}
		if c.R2AccessKeyID == "" || c.R2SecretAccessKey == "" {
			return fmt.Errorf("R2_ACCESS_KEY_ID and R2_SECRET_ACCESS_KEY are required for r2 storage")
		}
	case StorageMinIO:
		if c.MinIOAccessKey == "" || c.MinIOSecretKey == "" {
			return fmt.Errorf("MINIO_ACCESS_KEY and MINIO_SECRET_KEY are required for minio storage")
		}
	case StorageMemory:
		if c.IsProduction() {
			return fmt.Errorf("memory storage is not allowed in production")
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND: %q", c.StorageBackend)
	}

	switch c.EmailProvider {
	case EmailSMTP:
		if c.SMTPHost == "" {
			return fmt.Errorf("SMTP_HOST is required for smtp email")
		}
	case EmailResend:
		if c.ResendAPIKey == "" {
			return fmt.Errorf("RESEND_API_KEY is required for resend email")
		}
	case EmailLog:
	default:
		return fmt.Errorf("unknown EMAIL_PROVIDER: %q", c.EmailProvider)
	}

	if c.ImageMaxDimension < 1 {
		return fmt.Errorf("invalid image max dimension: %d", c.ImageMaxDimension)
	}

	if c.ImageQuality < 1 || c.ImageQuality > 100 {
		return fmt.Errorf("invalid image quality: %d", c.ImageQuality)
	}

	if c.RateLimit < 0 || c.RateBurst < 0 {
		return fmt.Errorf("rate limits must not be negative")
	}

	if c.MaxImageUploadSize < 0 || c.MaxVideoUploadSize < 0 {
		return fmt.Errorf("upload size limits must not be negative")
	}

	return nil
}
