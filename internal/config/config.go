package config

import (
	"errors"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/kitbuilder587/reposcout/search"
)

var (
	ErrInvalidBaseURL = errors.New("GITHUB_API_BASE_URL must be an absolute http(s) url")
	ErrInvalidTimeout = errors.New("GITHUB_TIMEOUT_SEC must be positive")
)

type Config struct {
	GitHub  GitHubConfig
	Log     LogConfig
	Metrics MetricsConfig
}

type GitHubConfig struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

type LogConfig struct {
	Level  string
	Format string
}

type MetricsConfig struct {
	Namespace string
}

func Load() (*Config, error) {
	cfg := &Config{
		GitHub: GitHubConfig{
			BaseURL:   getEnvOrDefault("GITHUB_API_BASE_URL", search.DefaultBaseURL),
			Timeout:   time.Duration(getEnvIntOrDefault("GITHUB_TIMEOUT_SEC", 30)) * time.Second,
			UserAgent: getEnvOrDefault("GITHUB_USER_AGENT", "reposcout"),
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: os.Getenv("LOG_FORMAT"),
		},
		Metrics: MetricsConfig{
			Namespace: getEnvOrDefault("METRICS_NAMESPACE", "reposcout"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	u, err := url.Parse(c.GitHub.BaseURL)
	if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidBaseURL
	}
	if c.GitHub.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
