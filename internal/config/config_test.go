package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Probe.RenewAlertDays != 30 {
		t.Errorf("Probe.RenewAlertDays = %v, want 30", cfg.Probe.RenewAlertDays)
	}
	if cfg.Probe.Timeout != 10*time.Second {
		t.Errorf("Probe.Timeout = %v, want 10s", cfg.Probe.Timeout)
	}
	if cfg.Probe.Concurrency != 1 {
		t.Errorf("Probe.Concurrency = %v, want 1", cfg.Probe.Concurrency)
	}
	if cfg.Output.Mode != ModeTable {
		t.Errorf("Output.Mode = %v, want table", cfg.Output.Mode)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if cfg.Watch.ScanInterval != time.Hour {
		t.Errorf("Watch.ScanInterval = %v, want 1h", cfg.Watch.ScanInterval)
	}
	if cfg.Watch.MetricsListen != ":9374" {
		t.Errorf("Watch.MetricsListen = %v, want :9374", cfg.Watch.MetricsListen)
	}
}

func TestLoad_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("probe.renew_alert_days", 14)
	v.Set("probe.timeout", "5s")
	v.Set("probe.concurrency", 8)
	v.Set("sources.domains", []string{"example.com", "mail.example.com:smtp"})
	v.Set("sources.domains_file", "/etc/certprobe/domains.txt")
	v.Set("output.mode", "problems")
	v.Set("output.renew_command", "renew-cert")

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Probe.RenewAlertDays != 14 {
		t.Errorf("Probe.RenewAlertDays = %v, want 14", cfg.Probe.RenewAlertDays)
	}
	if cfg.Probe.Timeout != 5*time.Second {
		t.Errorf("Probe.Timeout = %v, want 5s", cfg.Probe.Timeout)
	}
	if len(cfg.Sources.Domains) != 2 {
		t.Errorf("len(Sources.Domains) = %v, want 2", len(cfg.Sources.Domains))
	}
	if cfg.Output.RenewCommand != "renew-cert" {
		t.Errorf("Output.RenewCommand = %v, want renew-cert", cfg.Output.RenewCommand)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		v := viper.New()
		cfg, err := Load(v)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "zero renew alert days",
			mutate:  func(c *Config) { c.Probe.RenewAlertDays = 0 },
			wantErr: true,
		},
		{
			name:    "sub-second timeout",
			mutate:  func(c *Config) { c.Probe.Timeout = 500 * time.Millisecond },
			wantErr: true,
		},
		{
			name:    "excess concurrency",
			mutate:  func(c *Config) { c.Probe.Concurrency = 100 },
			wantErr: true,
		},
		{
			name:    "unknown output mode",
			mutate:  func(c *Config) { c.Output.Mode = "json" },
			wantErr: true,
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.LogLevel = "trace" },
			wantErr: true,
		},
		{
			name:    "tiny scan interval",
			mutate:  func(c *Config) { c.Watch.ScanInterval = time.Second },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestHasSources(t *testing.T) {
	cfg := &Config{}
	if cfg.HasSources() {
		t.Error("HasSources() = true for empty sources")
	}

	cfg.Sources.DomainsDir = "/var/www"
	if !cfg.HasSources() {
		t.Error("HasSources() = false with domains_dir set")
	}
}
