// Package loadtest drives a running contacts service with concurrent
// creates and verifies that every created contact is listed back.
package loadtest

import (
	"errors"
	"time"
)

// Config holds configuration for a load test run.
type Config struct {
	BaseURL     string        // Base URL of the service
	NumContacts int           // Number of contacts to generate
	Workers     int           // Number of concurrent workers
	Timeout     time.Duration // HTTP request timeout
	OutputFile  string        // Optional JSON file for generated contacts
	Verbose     bool          // Log per-request failures
}

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid load test config")

// Validate checks the config for values Run cannot work with.
func (c *Config) Validate() error {
	switch {
	case c.BaseURL == "":
		return errors.Join(ErrInvalidConfig, errors.New("base url must not be empty"))
	case c.NumContacts <= 0:
		return errors.Join(ErrInvalidConfig, errors.New("contacts must be positive"))
	case c.Workers <= 0:
		return errors.Join(ErrInvalidConfig, errors.New("workers must be positive"))
	case c.Timeout <= 0:
		return errors.Join(ErrInvalidConfig, errors.New("timeout must be positive"))
	}
	return nil
}

// Stats holds run statistics.
type Stats struct {
	ContactsGenerated int
	ContactsSubmitted int
	ContactsCreated   int
	ContactsFailed    int
	ContactsListed    int
	ContactsVerified  int
	StartTime         time.Time
	EndTime           time.Time
	Duration          time.Duration
}
