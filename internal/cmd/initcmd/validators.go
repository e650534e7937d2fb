package initcmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// ValidateConfigPath validates the output file path.
func ValidateConfigPath(path string) error {
	if path == "" {
		return fmt.Errorf("config path is required")
	}

	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		info, err := os.Stat(dir)
		if err != nil {
			if os.IsNotExist(err) {
				// Created during write.
				return nil
			}
			return fmt.Errorf("cannot access directory: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("'%s' is not a directory", dir)
		}
	}

	return nil
}

// ValidateDomains validates the multiline domain spec input.
func ValidateDomains(text string) error {
	lines := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines++

		if strings.Contains(line, "://") {
			return fmt.Errorf("use 'example.com', not a URL: %q", line)
		}
		host := line
		if i := strings.Index(host, ":"); i >= 0 {
			host = host[:i]
		}
		if host == "" {
			return fmt.Errorf("line %q has no hostname before ':'", line)
		}
	}

	if lines == 0 {
		return fmt.Errorf("at least one domain is required")
	}

	return nil
}

// ValidateRenewDays validates the renewal alert threshold.
func ValidateRenewDays(s string) error {
	days, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("must be a number of days")
	}
	if days < 1 || days > 3650 {
		return fmt.Errorf("must be between 1 and 3650")
	}
	return nil
}

// ValidateTimeout validates the probe timeout.
func ValidateTimeout(s string) error {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("must be a duration like '10s'")
	}
	if d < time.Second {
		return fmt.Errorf("must be at least 1 second")
	}
	return nil
}

// ValidateConcurrency validates the probe concurrency.
func ValidateConcurrency(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if n < 1 || n > 50 {
		return fmt.Errorf("must be between 1 and 50")
	}
	return nil
}
