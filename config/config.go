package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config application configuration
type Config struct {
	APIPort     int
	LogLevel    string
	LogFile     LogFileConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Auth        AuthConfig
	Upload      UploadConfig
	CORS        CORSConfig
	Email       EmailConfig
	Geetest     GeetestConfig
	RateLimit   RateLimitConfig
	QuickAccess QuickAccessConfig
}

// LogFileConfig rotating log file settings
type LogFileConfig struct {
	Enabled    bool
	Path       string
	MaxSize    int // MB
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

// DatabaseConfig SQL database settings. Driver is "mysql" or "sqlite".
type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	Path     string // sqlite only
}

// RedisConfig Redis settings
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// AuthConfig JWT settings
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// UploadConfig local media storage
type UploadConfig struct {
	Dir       string
	URLPrefix string
	MaxSize   int64 // bytes
}

// CORSConfig allowed browser origins
type CORSConfig struct {
	AllowedOrigins []string
}

// EmailConfig SMTP settings
type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
	NotifyTo string // feedback notifications go here; empty disables them
}

// GeetestConfig captcha settings for public forms; empty CaptchaID disables the check
type GeetestConfig struct {
	CaptchaID  string
	CaptchaKey string
	APIServer  string
}

// RateLimitConfig per-IP request limits
type RateLimitConfig struct {
	LoginPerWindow    int
	FeedbackPerWindow int
	Window            time.Duration
}

// QuickAccessConfig in-memory link cache
type QuickAccessConfig struct {
	TTL           time.Duration
	SweepInterval time.Duration
}

// ErrMissingJWTSecret returned when JWT_SECRET is not set
var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set")

// Load reads configuration from the environment, loading .env first when it exists
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	cfg := &Config{
		APIPort:  envInt("API_PORT", 8080),
		LogLevel: envString("LOG_LEVEL", "info"),
		LogFile: LogFileConfig{
			Enabled:    envBool("LOG_FILE_ENABLED", false),
			Path:       envString("LOG_FILE_PATH", "logs/kentkonut.log"),
			MaxSize:    envInt("LOG_FILE_MAX_SIZE", 100),
			MaxBackups: envInt("LOG_FILE_MAX_BACKUPS", 7),
			MaxAge:     envInt("LOG_FILE_MAX_AGE", 30),
			Compress:   envBool("LOG_FILE_COMPRESS", true),
		},
		Database: DatabaseConfig{
			Driver:   envString("DB_DRIVER", "mysql"),
			Host:     envString("DB_HOST", "127.0.0.1"),
			Port:     envInt("DB_PORT", 3306),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			DBName:   envString("DB_NAME", "kentkonut"),
			Path:     envString("DB_PATH", "data/kentkonut.db"),
		},
		Redis: RedisConfig{
			Host:     envString("REDIS_HOST", "127.0.0.1"),
			Port:     envInt("REDIS_PORT", 6379),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       envInt("REDIS_DB", 0),
		},
		Auth: AuthConfig{
			JWTSecret: os.Getenv("JWT_SECRET"),
			TokenTTL:  envDuration("JWT_TTL", 24*time.Hour),
		},
		Upload: UploadConfig{
			Dir:       envString("UPLOAD_DIR", "public/uploads"),
			URLPrefix: envString("UPLOAD_URL_PREFIX", "/uploads"),
			MaxSize:   int64(envInt("UPLOAD_MAX_SIZE_MB", 10)) << 20,
		},
		CORS: CORSConfig{
			AllowedOrigins: envList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		},
		Email: EmailConfig{
			Host:     os.Getenv("EMAIL_HOST"),
			Port:     envInt("EMAIL_PORT", 465),
			Username: os.Getenv("EMAIL_USERNAME"),
			Password: os.Getenv("EMAIL_PASSWORD"),
			From:     os.Getenv("EMAIL_FROM"),
			FromName: envString("EMAIL_FROM_NAME", "Kent Konut"),
			NotifyTo: os.Getenv("FEEDBACK_NOTIFY_TO"),
		},
		Geetest: GeetestConfig{
			CaptchaID:  os.Getenv("GEETEST_CAPTCHA_ID"),
			CaptchaKey: os.Getenv("GEETEST_CAPTCHA_KEY"),
			APIServer:  envString("GEETEST_API_SERVER", "https://gcaptcha4.geetest.com"),
		},
		RateLimit: RateLimitConfig{
			LoginPerWindow:    envInt("RATE_LIMIT_LOGIN", 5),
			FeedbackPerWindow: envInt("RATE_LIMIT_FEEDBACK", 3),
			Window:            envDuration("RATE_LIMIT_WINDOW", 15*time.Minute),
		},
		QuickAccess: QuickAccessConfig{
			TTL:           envDuration("QUICK_ACCESS_TTL", 10*time.Minute),
			SweepInterval: 10 * time.Minute,
		},
	}

	if cfg.Auth.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}

	return cfg, nil
}

func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func envBool(key string, def bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func envDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func envList(key string, def []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
