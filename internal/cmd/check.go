package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/certwatch-app/certprobe/internal/config"
	"github.com/certwatch-app/certprobe/internal/runner"
)

var (
	checkRenewals bool
	checkProblems bool
)

var checkCmd = &cobra.Command{
	Use:   "check [domain...]",
	Short: "Probe endpoints and report certificate status",
	Long: `Probe the given domains (plus any sources from the config file),
evaluate each certificate, and render the report.

Domains use the form hostname[:port-or-service], where the service may be
one of: https, ftp, ftpi, imap, imaps, pop3, pop3s, smtp, smtps, xmpp,
xmpps, ldaps, or any port number.

Examples:
  certprobe check example.com
  certprobe check mail.example.com:smtp imap.example.com:imap
  certprobe check -f domains.txt --days 14 --problems
  certprobe check -f domains.txt --renew-command /usr/local/bin/renew-cert`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringP("file", "f", "", "file with one domain spec per line ('#' comments ignored)")
	checkCmd.Flags().StringP("dir", "d", "", "directory whose subdirectory names are hostnames")
	checkCmd.Flags().String("panel", "", "hosting control panel to enumerate domains from (plesk, vesta)")
	checkCmd.Flags().Int("days", 30, "renewal alert threshold in days")
	checkCmd.Flags().Duration("timeout", 0, "per-probe connect timeout")
	checkCmd.Flags().Int("concurrency", 0, "number of parallel probes")
	checkCmd.Flags().BoolVar(&checkRenewals, "renewals", false, "print only hostnames due for renewal, one per line")
	checkCmd.Flags().BoolVar(&checkProblems, "problems", false, "print only endpoints with problems")
	checkCmd.Flags().String("renew-command", "", "command to invoke once per renewal-due domain")

	//nolint:errcheck // the flags are guaranteed to exist
	viper.BindPFlag("sources.domains_file", checkCmd.Flags().Lookup("file"))
	//nolint:errcheck
	viper.BindPFlag("sources.domains_dir", checkCmd.Flags().Lookup("dir"))
	//nolint:errcheck
	viper.BindPFlag("sources.panel", checkCmd.Flags().Lookup("panel"))
	//nolint:errcheck
	viper.BindPFlag("probe.renew_alert_days", checkCmd.Flags().Lookup("days"))
	//nolint:errcheck
	viper.BindPFlag("output.renew_command", checkCmd.Flags().Lookup("renew-command"))
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if timeout, _ := cmd.Flags().GetDuration("timeout"); timeout > 0 {
		cfg.Probe.Timeout = timeout
	}
	if concurrency, _ := cmd.Flags().GetInt("concurrency"); concurrency > 0 {
		cfg.Probe.Concurrency = concurrency
	}

	// Literal domain arguments come first, ahead of file/dir/panel sources.
	cfg.Sources.Domains = append(args, cfg.Sources.Domains...)

	switch {
	case checkProblems:
		cfg.Output.Mode = config.ModeProblems
	case checkRenewals:
		cfg.Output.Mode = config.ModeRenewals
	}

	if validationErr := cfg.Validate(); validationErr != nil {
		return fmt.Errorf("invalid configuration: %w", validationErr)
	}

	if !cfg.HasSources() {
		return fmt.Errorf("no domains to check: pass a domain argument or configure a source")
	}

	logger := runner.NewLogger(logLevel(cfg))
	defer logger.Sync() //nolint:errcheck // stderr sync failure is unactionable

	r := runner.New(cfg, logger, os.Stdout)
	return r.Run(context.Background())
}

// logLevel resolves the effective log level: --verbose forces debug.
func logLevel(cfg *config.Config) string {
	if verbose {
		return "debug"
	}
	return cfg.LogLevel
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}
