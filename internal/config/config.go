// Package config loads runtime settings from the environment, with an
// optional .env file for local development.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/altuslab/challenges-api/auth"
)

// Config holds every runtime setting the server needs.
//
// SECRET_KEY has no default: a server that signs tokens with a guessable
// key is worse than one that refuses to start.
type Config struct {
	HTTPAddr       string
	SecretKey      string
	TokenTTL       time.Duration
	MongoURI       string
	DatabaseName   string
	FirebaseAPIKey string
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first when present; real environment
// variables win over file values.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		HTTPAddr:       getenv("HTTP_ADDR", ":8000"),
		SecretKey:      os.Getenv("SECRET_KEY"),
		TokenTTL:       getenvDuration("TOKEN_TTL", auth.DefaultTokenTTL),
		MongoURI:       getenv("MONGODB_URI", "mongodb://localhost:27017"),
		DatabaseName:   getenv("DATABASE_NAME", "challenges"),
		FirebaseAPIKey: os.Getenv("FIREBASE_API_KEY"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks settings that have no safe fallback.
func (c *Config) Validate() error {
	if c.SecretKey == "" {
		return auth.ErrMissingSigningKey
	}
	return nil
}

// GetSigningKey implements auth.Config.
func (c *Config) GetSigningKey() string {
	return c.SecretKey
}

// GetTokenTTL implements auth.Config.
func (c *Config) GetTokenTTL() time.Duration {
	return c.TokenTTL
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getenvDuration accepts either a Go duration string ("90m") or a plain
// number of seconds, matching how deployments usually express TTLs.
func getenvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return def
}
