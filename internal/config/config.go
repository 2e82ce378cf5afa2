package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort         string
	ServerReadTimeout  time.Duration
	ServerWriteTimeout time.Duration
	ServerIdleTimeout  time.Duration
	RequestTimeout     time.Duration

	DataDir     string
	UploadsDir  string
	PicturesDir string
	StaticDir   string

	SessionTTL   time.Duration
	HandshakeTTL time.Duration

	ServerName    string
	ServerVersion string

	CORSOrigins      []string
	RateLimitRPM     int
	AuthRateLimitRPM int
	MaxUploadSize    int64

	LogObfuscationKey string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:         getEnv("SERVER_PORT", "3000"),
		ServerReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 15*time.Second),
		ServerWriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
		ServerIdleTimeout:  getDuration("SERVER_IDLE_TIMEOUT", 120*time.Second),
		RequestTimeout:     getDuration("REQUEST_TIMEOUT", 30*time.Second),
		DataDir:            getEnv("DATA_DIR", "./data"),
		UploadsDir:         getEnv("UPLOADS_DIR", "./data/uploads"),
		PicturesDir:        getEnv("PICTURES_DIR", "./data/pictures"),
		StaticDir:          strings.TrimSpace(os.Getenv("STATIC_DIR")),
		SessionTTL:         getDuration("SESSION_TTL", 24*time.Hour),
		HandshakeTTL:       getDuration("HANDSHAKE_TTL", 2*time.Minute),
		ServerName:         getEnv("SERVER_NAME", "Salon API"),
		ServerVersion:      getEnv("SERVER_VERSION", "1.2.0"),
		CORSOrigins:        splitCSV(strings.TrimSpace(os.Getenv("CORS_ORIGINS"))),
		RateLimitRPM:       getInt("RATE_LIMIT_RPM", 100),
		AuthRateLimitRPM:   getInt("AUTH_RATE_LIMIT_RPM", 10),
		MaxUploadSize:      getInt64("MAX_UPLOAD_SIZE", 5*1024*1024),
		LogObfuscationKey:  strings.TrimSpace(os.Getenv("LOG_OBFUSCATION_KEY")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT cannot be empty")
	}

	if strings.TrimSpace(c.DataDir) == "" {
		return fmt.Errorf("DATA_DIR cannot be empty")
	}

	if strings.TrimSpace(c.UploadsDir) == "" {
		return fmt.Errorf("UPLOADS_DIR cannot be empty")
	}

	if strings.TrimSpace(c.PicturesDir) == "" {
		return fmt.Errorf("PICTURES_DIR cannot be empty")
	}

	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}

	if c.HandshakeTTL <= 0 {
		return fmt.Errorf("HANDSHAKE_TTL must be positive")
	}

	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive")
	}

	if c.MaxUploadSize <= 0 {
		return fmt.Errorf("MAX_UPLOAD_SIZE must be positive")
	}

	return nil
}

func getEnv(key string, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}

	return v
}

func getInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return v
}

func getInt64(key string, fallback int64) int64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fallback
	}

	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	v, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return v
}

func splitCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}

	return out
}
