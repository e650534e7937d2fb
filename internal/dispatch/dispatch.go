// Package dispatch invokes an external command once per renewal-due
// domain.
package dispatch

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"go.uber.org/zap"

	"github.com/certwatch-app/certprobe/internal/inspect"
)

// Dispatcher runs the configured renewal command
type Dispatcher struct {
	logger *zap.Logger
	binary string
	args   []string
}

// New creates a Dispatcher for the given command line. The command is
// split on whitespace, so baked-in arguments like "renew-cert --force"
// work; shell quoting is not interpreted.
func New(command string, logger *zap.Logger) *Dispatcher {
	fields := strings.Fields(command)
	d := &Dispatcher{logger: logger}
	if len(fields) > 0 {
		d.binary = fields[0]
		d.args = fields[1:]
	}
	return d
}

// Run invokes the command once per renewal-due verdict, appending the
// domain as the final argument. Invocations are strictly sequential so
// external side effects stay deterministic even when probing was parallel.
// A failed invocation is logged and the remaining dispatches continue;
// there are no retries.
func (d *Dispatcher) Run(ctx context.Context, report *inspect.Report) int {
	failed := 0
	for _, domain := range report.RenewalDomains() {
		cmd := exec.CommandContext(ctx, d.binary, append(append([]string{}, d.args...), domain)...)
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr

		d.logger.Info("dispatching renewal command",
			zap.String("command", d.binary),
			zap.String("domain", domain),
		)

		if err := cmd.Run(); err != nil {
			failed++
			d.logger.Warn("renewal command failed",
				zap.String("domain", domain),
				zap.Error(err),
			)
		}
	}
	return failed
}
