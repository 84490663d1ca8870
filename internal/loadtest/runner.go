package loadtest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/okian/contacts/internal/domain/model"
	"github.com/okian/contacts/pkg/logger"
)

// File permission constants.
const (
	directoryPermission = 0o750
	filePermission      = 0o600
)

// Run executes a complete load test against cfg.BaseURL.
func Run(ctx context.Context, cfg *Config) (*Stats, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := logger.Named("loadtest")
	stats := &Stats{StartTime: time.Now()}

	log.Info(ctx, "starting contacts load test",
		logger.String("baseURL", cfg.BaseURL),
		logger.Int("contacts", cfg.NumContacts),
		logger.Int("workers", cfg.Workers),
		logger.Duration("timeout", cfg.Timeout),
		logger.Bool("verbose", cfg.Verbose),
	)

	// Step 1: Check service health
	if err := checkServiceHealth(ctx, cfg); err != nil {
		return stats, fmt.Errorf("service health check failed: %w", err)
	}

	// Step 2: Generate contacts
	contacts := generateContacts(cfg.NumContacts)
	stats.ContactsGenerated = len(contacts)

	// Step 3: Submit contacts concurrently
	created := submitContacts(ctx, cfg, contacts, stats)
	if err := ctx.Err(); err != nil {
		return stats, fmt.Errorf("contact submission interrupted: %w", err)
	}

	// Step 4: List and verify
	listed, err := listContacts(ctx, cfg)
	if err != nil {
		return stats, err
	}
	stats.ContactsListed = len(listed)

	verified, verr := verifyContacts(created, listed)
	stats.ContactsVerified = verified

	// Step 5: Save contacts to file
	if cfg.OutputFile != "" {
		if err := saveContactsToFile(cfg.OutputFile, contacts); err != nil {
			log.Warn(ctx, "failed to save contacts to file", logger.Error(err))
		} else {
			log.Info(ctx, "contacts saved to file", logger.String("filename", cfg.OutputFile))
		}
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	logFinalStats(ctx, log, stats)

	if verr != nil {
		return stats, verr
	}
	log.Info(ctx, "load test completed successfully")
	return stats, nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, cfg *Config) error {
	resp, err := newHTTPClient(cfg.Timeout).Get(ctx, cfg.BaseURL+"/healthz")
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer resp.Body.Close()

	// The service answers 200 with Prometheus metrics.
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
	return nil
}

func saveContactsToFile(filename string, contacts []model.Contact) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(contacts, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal contacts: %w", err)
	}
	if err := os.WriteFile(filename, append(data, '\n'), filePermission); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

func logFinalStats(ctx context.Context, log logger.Logger, stats *Stats) {
	var successRate, perSecond float64
	if stats.ContactsSubmitted > 0 {
		successRate = float64(stats.ContactsCreated) / float64(stats.ContactsSubmitted) * 100
	}
	if stats.Duration > 0 {
		perSecond = float64(stats.ContactsSubmitted) / stats.Duration.Seconds()
	}

	log.Info(ctx, "final statistics",
		logger.Int("generated", stats.ContactsGenerated),
		logger.Int("submitted", stats.ContactsSubmitted),
		logger.Int("created", stats.ContactsCreated),
		logger.Int("failed", stats.ContactsFailed),
		logger.Int("listed", stats.ContactsListed),
		logger.Int("verified", stats.ContactsVerified),
		logger.Duration("duration", stats.Duration),
		logger.Float64("successRate", successRate),
		logger.Float64("contactsPerSecond", perSecond),
	)
}
