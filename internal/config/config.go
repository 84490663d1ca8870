// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() initializer to build a Config with defaults.
// - Load layers defaults, an optional YAML file and the environment.
// - External errors are wrapped with this package's sentinel kinds.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Supported store backends.
const (
	StoreMemory = "memory"
	StoreMongo  = "mongo"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// Store selects the contact repository backend: memory or mongo.
	Store string `koanf:"store"`

	// Mongo settings, used when Store is "mongo".
	MongoURI        string `koanf:"mongo_uri"`
	MongoDatabase   string `koanf:"mongo_database"`
	MongoCollection string `koanf:"mongo_collection"`
	MongoTimeoutMS  int    `koanf:"mongo_timeout_ms"`

	// GenerateIDs assigns a UUID to created contacts that arrive without an id.
	GenerateIDs bool `koanf:"generate_ids"`

	// Sanitize strips markup from contact text fields on create.
	Sanitize bool `koanf:"sanitize"`

	// ShutdownTimeoutMS bounds graceful HTTP shutdown.
	ShutdownTimeoutMS int `koanf:"shutdown_timeout_ms"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:          "info",
		LogFormat:         "text",
		Addr:              ":9080",
		Store:             StoreMemory,
		MongoURI:          "mongodb://localhost:27017",
		MongoDatabase:     "contacts",
		MongoCollection:   "contacts",
		MongoTimeoutMS:    5000,
		GenerateIDs:       true,
		Sanitize:          true,
		ShutdownTimeoutMS: 30000,
	}
}

// MongoTimeout returns MongoTimeoutMS as a duration.
func (c *Config) MongoTimeout() time.Duration {
	return time.Duration(c.MongoTimeoutMS) * time.Millisecond
}

// ShutdownTimeout returns ShutdownTimeoutMS as a duration.
func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutMS) * time.Millisecond
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	switch strings.ToLower(strings.TrimSpace(c.LogFormat)) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format must be text or json, got %q", ErrInvalidConfig, c.LogFormat)
	}
	switch c.Store {
	case StoreMemory:
	case StoreMongo:
		if strings.TrimSpace(c.MongoURI) == "" {
			return fmt.Errorf("%w: mongo_uri must not be empty when store is mongo", ErrInvalidConfig)
		}
		if c.MongoDatabase == "" || c.MongoCollection == "" {
			return fmt.Errorf("%w: mongo_database and mongo_collection are required", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown store %q", ErrInvalidConfig, c.Store)
	}
	if c.ShutdownTimeoutMS <= 0 {
		return fmt.Errorf("%w: shutdown_timeout_ms must be positive", ErrInvalidConfig)
	}
	return nil
}
