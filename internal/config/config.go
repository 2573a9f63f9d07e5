// Package config resolves runtime settings from defaults, the environment and
// command-line flags.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jmylchreest/tonal/internal/validation"
)

// Environment variables read by WithEnvConfig.
const (
	EnvAddr            = "TONAL_ADDR"
	EnvVerbose         = "TONAL_VERBOSE"
	EnvShutdownTimeout = "TONAL_SHUTDOWN_TIMEOUT"
	EnvAllowedOrigins  = "TONAL_ALLOWED_ORIGINS"
)

// Defaults.
const (
	DefaultAddr            = "localhost:7420"
	DefaultShutdownTimeout = 5 * time.Second
)

// Config holds settings for the tonal server and CLI.
type Config struct {
	// Addr is the listen address for the HTTP server.
	Addr string `validate:"required,hostname_port"`
	// Verbose enables debug logging.
	Verbose bool
	// ShutdownTimeout bounds graceful shutdown of the HTTP server.
	ShutdownTimeout time.Duration `validate:"gte=0"`
	// AllowedOrigins lists extra browser origins allowed to call the API.
	AllowedOrigins []string `validate:"dive,required,url"`
}

// Builder assembles a Config. Later sources override earlier ones: defaults,
// then the environment, then explicit With* calls.
type Builder struct {
	config    Config
	useEnv    bool
	overrides []func(*Config)
	getenv    func(string) string
}

// NewBuilder creates a builder seeded with defaults.
func NewBuilder() *Builder {
	return &Builder{
		config: Config{
			Addr:            DefaultAddr,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		getenv: os.Getenv,
	}
}

// WithEnvConfig loads configuration from environment variables.
// Reads TONAL_ADDR, TONAL_VERBOSE, TONAL_SHUTDOWN_TIMEOUT and the
// comma-separated TONAL_ALLOWED_ORIGINS.
func (b *Builder) WithEnvConfig() *Builder {
	b.useEnv = true
	return b
}

// WithLookup replaces the environment lookup (useful for testing).
func (b *Builder) WithLookup(getenv func(string) string) *Builder {
	b.getenv = getenv
	return b
}

// WithAddr overrides the listen address when addr is not empty.
func (b *Builder) WithAddr(addr string) *Builder {
	b.overrides = append(b.overrides, func(c *Config) {
		if addr != "" {
			c.Addr = addr
		}
	})
	return b
}

// WithVerbose enables verbose logging when v is true.
func (b *Builder) WithVerbose(v bool) *Builder {
	b.overrides = append(b.overrides, func(c *Config) {
		if v {
			c.Verbose = true
		}
	})
	return b
}

// WithAllowedOrigins adds browser origins allowed to call the API.
func (b *Builder) WithAllowedOrigins(origins []string) *Builder {
	b.overrides = append(b.overrides, func(c *Config) {
		c.AllowedOrigins = append(c.AllowedOrigins, origins...)
	})
	return b
}

// Build resolves and validates the configuration.
func (b *Builder) Build() (Config, error) {
	config := b.config

	if b.useEnv {
		if addr := b.getenv(EnvAddr); addr != "" {
			config.Addr = addr
		}
		if verbose := b.getenv(EnvVerbose); verbose != "" {
			v, err := strconv.ParseBool(verbose)
			if err != nil {
				return Config{}, fmt.Errorf("invalid %s: %w", EnvVerbose, err)
			}
			config.Verbose = v
		}
		if timeout := b.getenv(EnvShutdownTimeout); timeout != "" {
			d, err := time.ParseDuration(timeout)
			if err != nil {
				return Config{}, fmt.Errorf("invalid %s: %w", EnvShutdownTimeout, err)
			}
			config.ShutdownTimeout = d
		}
		if origins := b.getenv(EnvAllowedOrigins); origins != "" {
			config.AllowedOrigins = parseList(origins)
		}
	}

	for _, apply := range b.overrides {
		apply(&config)
	}

	if err := validation.New().Struct(config); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

// parseList splits a comma-separated list, dropping empty items.
func parseList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
