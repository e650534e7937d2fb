package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/certwatch-app/certprobe/internal/runner"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Scan endpoints periodically and expose Prometheus metrics",
	Long: `Run the certificate scan on a fixed interval and publish the results
as Prometheus metrics on the configured listen address.

Example:
  certprobe watch -c /etc/certprobe/certprobe.yaml`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if validationErr := cfg.Validate(); validationErr != nil {
		return fmt.Errorf("invalid configuration: %w", validationErr)
	}

	if !cfg.HasSources() {
		return fmt.Errorf("no domains to watch: configure at least one source")
	}

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		fmt.Fprintf(os.Stderr, "\nReceived signal %v, shutting down...\n", sig)
		cancel()
	}()

	logger := runner.NewLogger(logLevel(cfg))
	defer logger.Sync() //nolint:errcheck // stderr sync failure is unactionable

	r := runner.New(cfg, logger, os.Stdout)
	if err := r.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("watch error: %w", err)
	}

	return nil
}
