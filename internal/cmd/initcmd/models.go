// Package initcmd provides the interactive init command wizard.
package initcmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"
	"time"

	"github.com/certwatch-app/certprobe/internal/config"
)

// WizardState holds all collected input during the wizard.
type WizardState struct {
	// Output configuration
	ConfigPath    string
	OverwriteFile bool

	// Endpoint configuration, one domain spec per line
	DomainsText string

	// Probe configuration
	RenewDaysStr string
	Timeout      string
	Concurrency  string
	LogLevel     string

	// Report configuration
	OutputMode string
}

// NewWizardState creates a new WizardState with sensible defaults.
func NewWizardState() *WizardState {
	return &WizardState{
		ConfigPath:   "./certprobe.yaml",
		RenewDaysStr: "30",
		Timeout:      "10s",
		Concurrency:  "1",
		LogLevel:     "info",
		OutputMode:   config.ModeTable,
	}
}

// Domains returns the entered domain specs, one per non-blank line.
func (s *WizardState) Domains() []string {
	var domains []string
	for _, line := range strings.Split(s.DomainsText, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			domains = append(domains, line)
		}
	}
	return domains
}

// ToConfig converts the wizard state to a config.Config struct.
func (s *WizardState) ToConfig() (*config.Config, error) {
	days, err := strconv.Atoi(strings.TrimSpace(s.RenewDaysStr))
	if err != nil {
		return nil, fmt.Errorf("invalid renewal alert days: %w", err)
	}

	timeout, err := time.ParseDuration(s.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid probe timeout: %w", err)
	}

	concurrency, err := strconv.Atoi(strings.TrimSpace(s.Concurrency))
	if err != nil {
		return nil, fmt.Errorf("invalid concurrency: %w", err)
	}

	return &config.Config{
		Sources: config.SourcesConfig{Domains: s.Domains()},
		Probe: config.ProbeConfig{
			RenewAlertDays: days,
			Timeout:        timeout,
			Concurrency:    concurrency,
		},
		Output: config.OutputConfig{Mode: s.OutputMode},
		Watch: config.WatchConfig{
			ScanInterval:  time.Hour,
			MetricsListen: ":9374",
		},
		LogLevel: s.LogLevel,
	}, nil
}

var configTemplate = template.Must(template.New("certprobe.yaml").Parse(`# certprobe configuration
# Generated by 'certprobe init'

log_level: {{.LogLevel}}

sources:
  domains:
{{- range .Domains}}
    - "{{.}}"
{{- end}}

probe:
  renew_alert_days: {{.Probe.RenewAlertDays}}
  timeout: {{.Probe.Timeout}}
  concurrency: {{.Probe.Concurrency}}

output:
  mode: {{.Output.Mode}}

watch:
  scan_interval: {{.Watch.ScanInterval}}
  metrics_listen: "{{.Watch.MetricsListen}}"
`))

type configTemplateData struct {
	*config.Config
	Domains []string
}

// WriteConfig renders the configuration to YAML at the given path,
// creating parent directories as needed.
func WriteConfig(cfg *config.Config, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	data := configTemplateData{Config: cfg, Domains: cfg.Sources.Domains}
	if err := configTemplate.Execute(f, data); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// FileExists reports whether path exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
