package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	Env       string `envconfig:"APP_ENV" default:"development"`
	Port      string `envconfig:"PORT" default:"3000"`
	StaticDir string `envconfig:"STATIC_DIR" default:"dist"`
	Limiter   RateLimiterConfig
	CORS      CORSConfig
	Providers ProvidersConfig
	Redis     RedisConfig
}

// rate limiting configuration
type RateLimiterConfig struct {
	RPS     float64 `envconfig:"RATE_LIMIT_RPS" default:"5"`
	Burst   int     `envconfig:"RATE_LIMIT_BURST" default:"10"`
	Enabled bool    `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

// ProvidersConfig holds the keys for the real content providers. An empty
// key leaves that provider disabled and its content comes from templates.
type ProvidersConfig struct {
	GeminiAPIKey      string        `envconfig:"GEMINI_API_KEY"`
	GeminiModel       string        `envconfig:"GEMINI_MODEL" default:"gemini-1.5-flash"`
	GeminiTimeout     time.Duration `envconfig:"GEMINI_TIMEOUT" default:"30s"`
	YouTubeAPIKey     string        `envconfig:"YOUTUBE_API_KEY"`
	OpenTripMapAPIKey string        `envconfig:"OPENTRIPMAP_API_KEY"`
	Timeout           time.Duration `envconfig:"PROVIDER_TIMEOUT" default:"10s"`
}

// Redis is only used to publish provider events; empty Addr disables it.
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
		"test":        true,
	}
	if !validEnvs[c.Env] {
		return fmt.Errorf("invalid environment: %s (must be one of: development, staging, production, test)", c.Env)
	}
	port, err := strconv.Atoi(strings.TrimPrefix(c.Port, ":"))
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid port: %q (must be between 1 and 65535)", c.Port)
	}
	if c.Limiter.Enabled && c.Limiter.RPS <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be positive when rate limiting is enabled")
	}
	if c.Limiter.Burst < 1 {
		return fmt.Errorf("RATE_LIMIT_BURST must be at least 1")
	}
	if c.Providers.GeminiAPIKey != "" && c.Providers.GeminiModel == "" {
		return fmt.Errorf("GEMINI_MODEL must be set when GEMINI_API_KEY is")
	}
	if len(c.GetCORSOrigins()) == 0 {
		return fmt.Errorf("at least one CORS origin must be specified")
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// GetServerAddr accepts PORT given either as "3000" or ":3000".
func (c *Config) GetServerAddr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

func (c *Config) GetCORSOrigins() []string {
	origins := make([]string, 0, len(c.CORS.AllowedOrigins))
	for _, origin := range c.CORS.AllowedOrigins {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func (c *Config) String() string {
	return fmt.Sprintf("Config{Env=%s, Port=%s, Limiter.RPS=%.2f, Limiter.Burst=%d, Limiter.Enabled=%t, "+
		"CORS.Origins=%d, Gemini=%t, YouTube=%t, OpenTripMap=%t, Redis=%t}",
		c.Env, c.Port, c.Limiter.RPS, c.Limiter.Burst, c.Limiter.Enabled, len(c.GetCORSOrigins()),
		c.Providers.GeminiAPIKey != "", c.Providers.YouTubeAPIKey != "",
		c.Providers.OpenTripMapAPIKey != "", c.Redis.Addr != "")
}
