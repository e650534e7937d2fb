// Package runner orchestrates a certprobe run: collect domain specs,
// probe and evaluate each endpoint, then render or dispatch the report.
package runner

import (
	"context"
	"io"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/certwatch-app/certprobe/internal/config"
	"github.com/certwatch-app/certprobe/internal/dispatch"
	"github.com/certwatch-app/certprobe/internal/domain"
	"github.com/certwatch-app/certprobe/internal/inspect"
	"github.com/certwatch-app/certprobe/internal/probe"
	"github.com/certwatch-app/certprobe/internal/render"
	"github.com/certwatch-app/certprobe/internal/source"
)

// Runner drives the probe pipeline. It carries all run state explicitly;
// there are no package-level accumulators.
type Runner struct {
	cfg       *config.Config
	logger    *zap.Logger
	collector *source.Collector
	prober    *probe.Prober
	out       io.Writer
	now       func() time.Time
}

// New creates a Runner writing report output to out
func New(cfg *config.Config, logger *zap.Logger, out io.Writer) *Runner {
	return &Runner{
		cfg:       cfg,
		logger:    logger,
		collector: source.NewCollector(logger),
		prober:    probe.New(cfg.Probe.Timeout, logger),
		out:       out,
		now:       time.Now,
	}
}

// Run performs one full pipeline pass. Source collection errors (unknown
// panel, missing dependency, unreadable file) are fatal and returned
// before any probing starts; per-endpoint failures are folded into the
// report instead.
func (r *Runner) Run(ctx context.Context) error {
	specs, err := r.collectSpecs()
	if err != nil {
		return err
	}

	report := r.scan(ctx, specs)

	r.render(ctx, report)
	return nil
}

func (r *Runner) collectSpecs() ([]domain.Spec, error) {
	lines, err := r.collector.Collect(r.cfg.Sources)
	if err != nil {
		return nil, err
	}

	// Duplicates are kept: each occurrence is probed independently.
	specs := make([]domain.Spec, 0, len(lines))
	for _, line := range lines {
		specs = append(specs, domain.ParseSpec(line))
	}
	return specs, nil
}

// scan probes every spec and materializes the report in input order. With
// concurrency > 1 the probes run under a semaphore-bounded pool, writing
// into slots indexed by input position so completion order never leaks
// into the report.
func (r *Runner) scan(ctx context.Context, specs []domain.Spec) *inspect.Report {
	start := r.now()
	r.logger.Info("starting scan",
		zap.Int("endpoints", len(specs)),
		zap.Int("renew_alert_days", r.cfg.Probe.RenewAlertDays),
	)

	verdicts := make([]inspect.Verdict, len(specs))
	sem := make(chan struct{}, r.cfg.Probe.Concurrency)
	var wg sync.WaitGroup

	for i, spec := range specs {
		wg.Add(1)
		go func(idx int, s domain.Spec) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				// A canceled probe degrades to the no-certificate
				// outcome, same as any other connection failure.
				verdicts[idx] = inspect.Evaluate(s, probe.CertificateInfo{}, r.cfg.Probe.RenewAlertDays, r.now())
				return
			}

			cert := r.prober.Fetch(ctx, s)
			verdicts[idx] = inspect.Evaluate(s, cert, r.cfg.Probe.RenewAlertDays, r.now())
		}(i, spec)
	}

	wg.Wait()

	report := inspect.NewReport(len(verdicts))
	for _, v := range verdicts {
		report.Append(v)
	}

	r.logger.Info("scan complete",
		zap.Duration("duration", r.now().Sub(start)),
		zap.Int("endpoints", report.Len()),
		zap.Int("problems", len(report.WithProblems())),
		zap.Int("renewal_due", len(report.NearRenewal())),
	)

	return report
}

// render dispatches the report to the selected output mode. A configured
// renew command takes precedence over the renewals list.
func (r *Runner) render(ctx context.Context, report *inspect.Report) {
	if r.cfg.Output.RenewCommand != "" {
		d := dispatch.New(r.cfg.Output.RenewCommand, r.logger)
		if failed := d.Run(ctx, report); failed > 0 {
			r.logger.Warn("renewal dispatches failed", zap.Int("failed", failed))
		}
		return
	}

	renderer := render.New(r.out)
	switch r.cfg.Output.Mode {
	case config.ModeRenewals:
		renderer.Renewals(report)
	case config.ModeProblems:
		renderer.Problems(report)
	default:
		renderer.Table(report)
	}
}
