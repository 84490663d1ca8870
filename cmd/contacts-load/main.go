// Command contacts-load floods a contacts service with creates and checks
// that each one is listed back exactly once.
package main

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/okian/contacts/internal/loadtest"
	"github.com/okian/contacts/pkg/logger"
)

// Default configuration constants.
const (
	defaultNumContacts = 1000
	defaultWorkers     = 2 // multiplier for runtime.NumCPU()
	defaultTimeout     = 30 * time.Second
	defaultTestTimeout = 10 * time.Minute
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := &loadtest.Config{}
	var logFormat string

	cmd := &cobra.Command{
		Use:           "contacts-load",
		Short:         "Concurrent load and consistency test for the contacts API",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := logger.Init(logger.WithFormat(logFormat), logger.WithOutput(cmd.OutOrStdout())); err != nil {
				return err
			}
			if cfg.Verbose {
				return logger.SetLevelString("debug")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			ctx, cancel := context.WithTimeout(ctx, defaultTestTimeout)
			defer cancel()

			_, err := loadtest.Run(ctx, cfg)
			return err
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfg.BaseURL, "url", "http://localhost:9080", "base URL of the service")
	f.IntVar(&cfg.NumContacts, "contacts", defaultNumContacts, "number of contacts to generate and submit")
	f.IntVar(&cfg.Workers, "workers", runtime.NumCPU()*defaultWorkers, "number of concurrent workers")
	f.DurationVar(&cfg.Timeout, "timeout", defaultTimeout, "HTTP request timeout")
	f.StringVar(&cfg.OutputFile, "output", "", "write generated contacts to this JSON file")
	f.BoolVarP(&cfg.Verbose, "verbose", "v", false, "log every failed request")
	f.StringVar(&logFormat, "log-format", logger.FormatText, "log format: text or json")

	return cmd
}
