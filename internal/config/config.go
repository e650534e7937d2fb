// Package config handles configuration loading and validation for certprobe.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Output modes, mutually exclusive at run time.
const (
	ModeTable    = "table"
	ModeRenewals = "renewals"
	ModeProblems = "problems"
)

// Config represents the complete certprobe configuration
type Config struct {
	Sources  SourcesConfig `mapstructure:"sources"`
	Probe    ProbeConfig   `mapstructure:"probe"`
	Output   OutputConfig  `mapstructure:"output"`
	Watch    WatchConfig   `mapstructure:"watch"`
	LogLevel string        `mapstructure:"log_level"`
}

// SourcesConfig selects where domain specs come from. All configured
// sources contribute, in field order; within a source, input order is kept.
type SourcesConfig struct {
	Domains     []string `mapstructure:"domains"`
	DomainsFile string   `mapstructure:"domains_file"`
	DomainsDir  string   `mapstructure:"domains_dir"`
	Panel       string   `mapstructure:"panel"`
}

// ProbeConfig contains connection and evaluation settings
type ProbeConfig struct {
	RenewAlertDays int           `mapstructure:"renew_alert_days"`
	Timeout        time.Duration `mapstructure:"timeout"`
	Concurrency    int           `mapstructure:"concurrency"`
}

// OutputConfig selects the report rendering mode. A non-empty RenewCommand
// switches the run to command dispatch and takes precedence over the
// renewals mode.
type OutputConfig struct {
	Mode         string `mapstructure:"mode"`
	RenewCommand string `mapstructure:"renew_command"`
}

// WatchConfig contains settings for the periodic watch mode
type WatchConfig struct {
	MetricsListen string        `mapstructure:"metrics_listen"`
	ScanInterval  time.Duration `mapstructure:"scan_interval"`
}

// Load reads configuration from viper
func Load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")

	v.SetDefault("probe.renew_alert_days", 30)
	v.SetDefault("probe.timeout", "10s")
	v.SetDefault("probe.concurrency", 1)

	v.SetDefault("output.mode", ModeTable)

	v.SetDefault("watch.scan_interval", "1h")
	v.SetDefault("watch.metrics_listen", ":9374")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateProbe(); err != nil {
		return fmt.Errorf("probe: %w", err)
	}

	if err := c.validateOutput(); err != nil {
		return fmt.Errorf("output: %w", err)
	}

	if err := c.validateWatch(); err != nil {
		return fmt.Errorf("watch: %w", err)
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("log_level must be one of: debug, info, warn, error")
	}

	return nil
}

func (c *Config) validateProbe() error {
	if c.Probe.RenewAlertDays < 1 {
		return fmt.Errorf("renew_alert_days must be at least 1")
	}

	if c.Probe.RenewAlertDays > 3650 {
		return fmt.Errorf("renew_alert_days must be at most 3650")
	}

	if c.Probe.Timeout < time.Second {
		return fmt.Errorf("timeout must be at least 1 second")
	}

	if c.Probe.Concurrency < 1 || c.Probe.Concurrency > 50 {
		return fmt.Errorf("concurrency must be between 1 and 50")
	}

	return nil
}

func (c *Config) validateOutput() error {
	switch c.Output.Mode {
	case ModeTable, ModeRenewals, ModeProblems:
	default:
		return fmt.Errorf("mode must be one of: %s", strings.Join([]string{ModeTable, ModeRenewals, ModeProblems}, ", "))
	}

	return nil
}

func (c *Config) validateWatch() error {
	if c.Watch.ScanInterval < 10*time.Second {
		return fmt.Errorf("scan_interval must be at least 10 seconds")
	}

	return nil
}

// HasSources reports whether at least one domain source is configured.
func (c *Config) HasSources() bool {
	return len(c.Sources.Domains) > 0 ||
		c.Sources.DomainsFile != "" ||
		c.Sources.DomainsDir != "" ||
		c.Sources.Panel != ""
}
