package runner

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/certwatch-app/certprobe/internal/metrics"
)

// Watch runs the scan on a fixed interval until the context is canceled,
// publishing results as Prometheus metrics instead of rendering a report.
// Scan failures inside the loop are logged and the loop continues; only
// the initial source-collection pass can abort watch mode.
func (r *Runner) Watch(ctx context.Context) error {
	// Fail fast on configuration problems before serving anything.
	specs, err := r.collectSpecs()
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{
		Addr:              r.cfg.Watch.MetricsListen,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		r.logger.Info("metrics listener starting", zap.String("addr", srv.Addr))
		if serveErr := srv.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			r.logger.Error("metrics listener failed", zap.Error(serveErr))
		}
	}()

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	// Initial scan, then tick. The inventory is re-collected every cycle
	// so file and panel sources may change between scans.
	report := r.scan(ctx, specs)
	metrics.Observe(report, r.now())

	ticker := time.NewTicker(r.cfg.Watch.ScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("watch stopping")
			return ctx.Err()

		case <-ticker.C:
			start := r.now()
			specs, err := r.collectSpecs()
			if err != nil {
				r.logger.Error("source collection failed", zap.Error(err))
				continue
			}

			report := r.scan(ctx, specs)
			metrics.Observe(report, r.now())
			metrics.ProbeDuration.Observe(r.now().Sub(start).Seconds())
		}
	}
}
