package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration file",
	Long: `Validate the certprobe configuration file without probing anything.

Example:
  certprobe validate -c /etc/certprobe/certprobe.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	fmt.Println("Configuration is valid!")
	fmt.Printf("  Renewal alert: %d days\n", cfg.Probe.RenewAlertDays)
	fmt.Printf("  Probe timeout: %s\n", cfg.Probe.Timeout)
	fmt.Printf("  Concurrency:   %d\n", cfg.Probe.Concurrency)
	fmt.Printf("  Output mode:   %s\n", cfg.Output.Mode)
	if cfg.Sources.DomainsFile != "" {
		fmt.Printf("  Domains file:  %s\n", cfg.Sources.DomainsFile)
	}
	if cfg.Sources.DomainsDir != "" {
		fmt.Printf("  Domains dir:   %s\n", cfg.Sources.DomainsDir)
	}
	if cfg.Sources.Panel != "" {
		fmt.Printf("  Panel:         %s\n", cfg.Sources.Panel)
	}
	if len(cfg.Sources.Domains) > 0 {
		fmt.Printf("  Domains:       %d\n", len(cfg.Sources.Domains))
	}

	return nil
}
