// Package config assembles client configuration from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds everything the client needs to reach the platform.
type Config struct {
	// APIBaseURL is the platform REST API root.
	APIBaseURL string `validate:"required,url"`

	// Token is the bearer token attached to every request. Empty is
	// allowed at load time; requests fail with a clear error instead.
	Token string

	// TokenFile, when set, is read at load time if Token is empty.
	TokenFile string

	// Timeout bounds a single API request including retries.
	Timeout time.Duration `validate:"min=1s,max=5m"`

	// DBPath overrides the local history database location.
	DBPath string
}

// Default returns a Config with defaults applied. The base URL has no
// default; the platform endpoint must be configured explicitly.
func Default() Config {
	return Config{
		Timeout: 30 * time.Second,
	}
}

// Load builds configuration from a .env file (if present) and the
// process environment, validates it, and resolves the token file.
//
// Environment:
//
//	PREPDECK_API_URL     platform API root (required)
//	PREPDECK_TOKEN       bearer token
//	PREPDECK_TOKEN_FILE  file containing the bearer token
//	PREPDECK_TIMEOUT     request timeout, Go duration syntax
//	PREPDECK_DB          local history database path
func Load() (Config, error) {
	// Missing .env is fine; explicit env vars still apply.
	_ = godotenv.Load()

	cfg := Default()
	cfg.APIBaseURL = os.Getenv("PREPDECK_API_URL")
	cfg.Token = os.Getenv("PREPDECK_TOKEN")
	cfg.TokenFile = os.Getenv("PREPDECK_TOKEN_FILE")
	cfg.DBPath = os.Getenv("PREPDECK_DB")

	if v := os.Getenv("PREPDECK_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse PREPDECK_TIMEOUT: %w", err)
		}
		cfg.Timeout = d
	}

	if cfg.Token == "" && cfg.TokenFile == "" {
		cfg.TokenFile = defaultTokenFile()
	}
	if cfg.Token == "" && cfg.TokenFile != "" {
		if b, err := os.ReadFile(cfg.TokenFile); err == nil {
			cfg.Token = trimToken(string(b))
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks structural constraints on the config.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			f := errs[0]
			return fmt.Errorf("config: field %s failed %q validation", f.Field(), f.Tag())
		}
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

var validate = validator.New()

// defaultTokenFile resolves $XDG_CONFIG_HOME/prepdeck/token, falling
// back to ~/.config/prepdeck/token.
func defaultTokenFile() string {
	cfgHome := os.Getenv("XDG_CONFIG_HOME")
	if cfgHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		cfgHome = filepath.Join(home, ".config")
	}
	return filepath.Join(cfgHome, "prepdeck", "token")
}

func trimToken(s string) string {
	return strings.TrimSpace(s)
}
