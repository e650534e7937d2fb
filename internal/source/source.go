// Package source gathers raw domain lines from the configured inputs:
// inline literals, a domains file, a directory listing, or a hosting
// control panel's enumeration command.
package source

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"go.uber.org/zap"

	"github.com/certwatch-app/certprobe/internal/config"
)

// Fatal configuration errors. Per-domain problems never abort a run, but
// an unknown panel kind or a missing external program does, before any
// probing starts.
var (
	ErrUnknownPanel      = errors.New("unknown control panel kind")
	ErrMissingDependency = errors.New("required program not found")
)

// panelCommand describes how a control panel enumerates its hosted
// domains. The command must emit one domain as the first field of each
// output line.
type panelCommand struct {
	binary string
	args   []string
}

var panelCommands = map[string]panelCommand{
	"plesk": {binary: "plesk", args: []string{"bin", "domain", "--list"}},
	"vesta": {binary: "v-list-web-domains", args: []string{"admin", "plain"}},
}

// Collector gathers raw input lines from all configured sources
type Collector struct {
	logger *zap.Logger
}

// NewCollector creates a Collector
func NewCollector(logger *zap.Logger) *Collector {
	return &Collector{logger: logger}
}

// Collect returns the merged raw lines from every configured source, in
// source order: inline domains, file, directory, panel. Comment and blank
// lines are already filtered out; each returned line is ready for the
// domain-spec parser.
func (c *Collector) Collect(cfg config.SourcesConfig) ([]string, error) {
	var lines []string

	for _, d := range cfg.Domains {
		if keep, ok := cleanLine(d); ok {
			lines = append(lines, keep)
		}
	}

	if cfg.DomainsFile != "" {
		fromFile, err := c.FromFile(cfg.DomainsFile)
		if err != nil {
			return nil, err
		}
		lines = append(lines, fromFile...)
	}

	if cfg.DomainsDir != "" {
		fromDir, err := c.FromDir(cfg.DomainsDir)
		if err != nil {
			return nil, err
		}
		lines = append(lines, fromDir...)
	}

	if cfg.Panel != "" {
		fromPanel, err := c.FromPanel(cfg.Panel)
		if err != nil {
			return nil, err
		}
		lines = append(lines, fromPanel...)
	}

	return lines, nil
}

// FromFile reads one domain spec per line, skipping blank lines and lines
// starting with '#'.
func (c *Collector) FromFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open domains file: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if keep, ok := cleanLine(scanner.Text()); ok {
			lines = append(lines, keep)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read domains file: %w", err)
	}

	c.logger.Debug("collected domains from file",
		zap.String("path", path),
		zap.Int("count", len(lines)),
	)

	return lines, nil
}

// FromDir treats each subdirectory name as a hostname, the common layout
// of per-vhost web roots (/var/www/<domain>). Entries are returned in
// directory order as reported by the OS.
func (c *Collector) FromDir(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to list domains directory: %w", err)
	}

	var lines []string
	for _, e := range entries {
		if e.IsDir() {
			lines = append(lines, e.Name())
		}
	}

	c.logger.Debug("collected domains from directory",
		zap.String("path", path),
		zap.Int("count", len(lines)),
	)

	return lines, nil
}

// FromPanel runs the control panel's enumeration command and extracts one
// domain per output line. An unrecognized kind or an absent binary is
// fatal, surfaced before any probing begins.
func (c *Collector) FromPanel(kind string) ([]string, error) {
	cmd, ok := panelCommands[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPanel, kind)
	}

	if _, err := exec.LookPath(cmd.binary); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrMissingDependency, cmd.binary)
	}

	out, err := exec.Command(cmd.binary, cmd.args...).Output()
	if err != nil {
		return nil, fmt.Errorf("panel enumeration failed: %w", err)
	}

	var lines []string
	scanner := bufio.NewScanner(strings.NewReader(string(out)))
	for scanner.Scan() {
		if keep, ok := cleanLine(scanner.Text()); ok {
			// Panels may append per-domain columns; the domain is
			// always the first field.
			lines = append(lines, strings.Fields(keep)[0])
		}
	}

	c.logger.Debug("collected domains from panel",
		zap.String("panel", kind),
		zap.Int("count", len(lines)),
	)

	return lines, nil
}

// cleanLine trims a raw line and reports whether it should be kept.
func cleanLine(line string) (string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", false
	}
	return line, true
}
