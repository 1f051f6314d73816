package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr                string        `yaml:"addr"`
	Environment         string        `yaml:"environment"`
	FrontendDir         string        `yaml:"frontendDir"`
	BackendBaseURL      string        `yaml:"backendBaseUrl"`
	BackendAPIKey       string        `yaml:"backendApiKey"`
	BackendTimeout      time.Duration `yaml:"backendTimeout"`
	JWTSecret           string        `yaml:"jwtSecret"`
	MaxBodyBytes        int64         `yaml:"maxBodyBytes"`
	RateLimitPerMinute  int           `yaml:"rateLimitPerMinute"`
	AutoRefreshInterval time.Duration `yaml:"autoRefreshInterval"`
	ResumeMaxBytes      int64         `yaml:"resumeMaxBytes"`
	LogLevel            string        `yaml:"logLevel"`
	MetricsEnabled      bool          `yaml:"metricsEnabled"`
	ReportFont          string        `yaml:"reportFont"`
}

const DefaultResumeMaxBytes = 10 * 1024 * 1024

// Load reads an optional .env file and then the process environment.
func Load() Config {
	_ = godotenv.Load()
	return Config{
		Addr:                getEnv("APP_ADDR", ":8080"),
		Environment:         getEnv("APP_ENV", "development"),
		FrontendDir:         getEnv("FRONTEND_DIR", "frontend/dist"),
		BackendBaseURL:      strings.TrimRight(getEnv("BACKEND_BASE_URL", ""), "/"),
		BackendAPIKey:       getEnv("BACKEND_API_KEY", ""),
		BackendTimeout:      getEnvDuration("BACKEND_TIMEOUT", 0),
		JWTSecret:           getEnv("JWT_SECRET", ""),
		MaxBodyBytes:        int64(getEnvInt("MAX_BODY_BYTES", 12*1024*1024)),
		RateLimitPerMinute:  getEnvInt("RATE_LIMIT_PER_MINUTE", 120),
		AutoRefreshInterval: getEnvDuration("AUTO_REFRESH_INTERVAL", 30*time.Second),
		ResumeMaxBytes:      int64(getEnvInt("RESUME_MAX_BYTES", DefaultResumeMaxBytes)),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		MetricsEnabled:      getEnvBool("METRICS_ENABLED", true),
		ReportFont:          getEnv("REPORT_FONT", ""),
	}
}

// LoadFile overlays the YAML file at path onto the environment config.
// Keys absent from the file keep their environment value.
func LoadFile(path string) (Config, error) {
	cfg := Load()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.BackendBaseURL = strings.TrimRight(cfg.BackendBaseURL, "/")
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.BackendBaseURL) == "" {
		return fmt.Errorf("BACKEND_BASE_URL is required")
	}
	parsed, err := url.Parse(c.BackendBaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("BACKEND_BASE_URL must be an absolute URL")
	}
	if c.IsProduction() && strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("JWT_SECRET must be set in production")
	}
	if c.BackendTimeout < 0 {
		return fmt.Errorf("BACKEND_TIMEOUT must not be negative")
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.ResumeMaxBytes <= 0 {
		return fmt.Errorf("RESUME_MAX_BYTES must be positive")
	}
	if c.MaxBodyBytes < c.ResumeMaxBytes {
		return fmt.Errorf("MAX_BODY_BYTES must be at least RESUME_MAX_BYTES")
	}
	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}
	if c.AutoRefreshInterval < 0 {
		return fmt.Errorf("AUTO_REFRESH_INTERVAL must not be negative")
	}
	return nil
}
