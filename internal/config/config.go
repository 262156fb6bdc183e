package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration. It is constructed once at
// startup and passed into every component that needs it; nothing reads the
// environment after Load returns.
type Config struct {
	Port         int    `env:"PORT" envDefault:"4000"`
	DatabasePath string `env:"DATABASE_PATH" envDefault:"./ledger.db"`
	JWTSecret    string `env:"JWT_SECRET,notEmpty"`
	JWTExpiresIn string `env:"JWT_EXPIRES_IN" envDefault:"7d"`
	BcryptCost   int    `env:"BCRYPT_COST" envDefault:"10"`
	CORSOrigin   string `env:"CORS_ORIGIN"`

	// TokenTTL is JWTExpiresIn parsed into a duration.
	TokenTTL time.Duration `env:"-"`
}

// Load reads an optional .env file, parses the environment and validates
// the result.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if len(cfg.JWTSecret) < 20 {
		return nil, fmt.Errorf("JWT_SECRET should be at least 20 chars")
	}
	if cfg.BcryptCost < 8 || cfg.BcryptCost > 15 {
		return nil, fmt.Errorf("BCRYPT_COST must be between 8 and 15, got %d", cfg.BcryptCost)
	}

	ttl, err := parseTTL(cfg.JWTExpiresIn)
	if err != nil {
		return nil, fmt.Errorf("JWT_EXPIRES_IN: %w", err)
	}
	cfg.TokenTTL = ttl

	return cfg, nil
}

// AllowedOrigins returns the configured CORS origins, or a wildcard when
// none are set.
func (c *Config) AllowedOrigins() []string {
	if c.CORSOrigin == "" {
		return []string{"*"}
	}
	origins := strings.Split(c.CORSOrigin, ",")
	for i, o := range origins {
		origins[i] = strings.TrimSpace(o)
	}
	return origins
}

// parseTTL parses a duration string, additionally accepting a day suffix
// ("7d") since token lifetimes are commonly expressed in days.
func parseTTL(s string) (time.Duration, error) {
	if days, ok := strings.CutSuffix(s, "d"); ok {
		n, err := strconv.Atoi(days)
		if err == nil && n > 0 {
			return time.Duration(n) * 24 * time.Hour, nil
		}
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	return d, nil
}
