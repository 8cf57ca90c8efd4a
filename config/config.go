package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	GinMode  string
	LogLevel string
	// Store: "postgres" or "memory"
	StoreDriver string
	DBUrl       string
	// Credentials
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
	// CORS
	CORSOrigins []string
	// Uploads: "local" or "s3"
	UploadDriver     string
	UploadDir        string
	UploadPublicPath string
	UploadMaxBytes   int64
	UploadPerMinute  int
	UploadPerDay     int
	S3Endpoint       string
	S3Region         string
	S3Bucket         string
	S3AccessKeyID    string
	S3SecretKey      string
	S3UsePathStyle   bool
	S3PublicBaseURL  string
	// Redis (role cache + rate limiting)
	RedisURL      string
	RedisPassword string
	RoleCacheTTL  time.Duration
	// SMTP (new applicant notifications, optional)
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
	// Rate Limiting
	RateLimitWindowSeconds   int
	RateLimitAuthThreshold   int
	RateLimitGlobalThreshold int
}

func LoadConfig() (*Config, error) {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "5000"),
		GinMode:     getEnv("GIN_MODE", "debug"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		StoreDriver: strings.ToLower(getEnv("STORE_DRIVER", "postgres")),
		DBUrl:       getEnv("DATABASE_URL", ""),

		JWTSecret:  getEnv("JWT_SECRET", ""),
		TokenTTL:   getEnvDuration("TOKEN_TTL", 7*24*time.Hour),
		BcryptCost: getEnvInt("BCRYPT_COST", 10),

		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:5173,http://localhost:5174")),

		UploadDriver:     strings.ToLower(getEnv("UPLOAD_DRIVER", "local")),
		UploadDir:        getEnv("UPLOAD_DIR", "./uploads"),
		UploadPublicPath: "/" + strings.Trim(getEnv("UPLOAD_PUBLIC_PATH", "/uploads"), "/"),
		UploadMaxBytes:   int64(getEnvInt("UPLOAD_MAX_BYTES", 5<<20)),
		UploadPerMinute:  getEnvInt("UPLOAD_PER_MINUTE", 10),
		UploadPerDay:     getEnvInt("UPLOAD_PER_DAY", 50),
		S3Endpoint:       strings.TrimRight(getEnv("S3_ENDPOINT", ""), "/"),
		S3Region:         getEnv("S3_REGION", "us-east-1"),
		S3Bucket:         getEnv("S3_BUCKET", ""),
		S3AccessKeyID:    getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretKey:      getEnv("S3_SECRET_ACCESS_KEY", ""),
		S3UsePathStyle:   getEnvBool("S3_USE_PATH_STYLE", false),
		S3PublicBaseURL:  strings.TrimRight(getEnv("S3_PUBLIC_BASE_URL", ""), "/"),

		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RoleCacheTTL:  getEnvDuration("ROLE_CACHE_TTL", 5*time.Minute),

		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnvInt("SMTP_PORT", 587),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:     getEnv("SMTP_FROM", ""),

		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitAuthThreshold:   getEnvInt("RATE_LIMIT_AUTH_THRESHOLD", 10),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 300),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting and role cache will use in-memory fallback.")
	}

	return cfg, nil
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("config: JWT_SECRET is required")
	}
	switch c.StoreDriver {
	case "postgres":
		if c.DBUrl == "" {
			return errors.New("config: DATABASE_URL is required for the postgres store")
		}
	case "memory":
	default:
		return errors.New("config: STORE_DRIVER must be postgres or memory")
	}
	switch c.UploadDriver {
	case "local":
	case "s3":
		if c.S3Bucket == "" {
			return errors.New("config: S3_BUCKET is required for the s3 upload driver")
		}
	default:
		return errors.New("config: UPLOAD_DRIVER must be local or s3")
	}
	return nil
}

func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimRight(strings.TrimSpace(part), "/"); p != "" {
			out = append(out, p)
		}
	}
	return out
}
