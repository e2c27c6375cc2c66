package telemetry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the benchmark collectors on a private registry, so several
// instances (tests, embedded use) never collide on registration.
type Metrics struct {
	Registry *prometheus.Registry

	PhaseDuration   *prometheus.GaugeVec
	PhaseOperations *prometheus.CounterVec
	Runs            *prometheus.CounterVec
}

// NewMetrics creates and registers the benchmark metrics.
func NewMetrics() *Metrics {
	m := &Metrics{Registry: prometheus.NewRegistry()}

	m.PhaseDuration = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "listprof_phase_duration_seconds",
			Help: "Wall-clock duration of the last run of a workload phase",
		},
		[]string{"container", "phase"},
	)

	m.PhaseOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "listprof_phase_operations_total",
			Help: "Container operations issued by completed workload phases",
		},
		[]string{"container", "phase"},
	)

	m.Runs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "listprof_runs_total",
			Help: "Container benchmark runs by outcome",
		},
		[]string{"container", "status"},
	)

	m.Registry.MustRegister(m.PhaseDuration, m.PhaseOperations, m.Runs)
	return m
}

// ObservePhase records one completed phase.
func (m *Metrics) ObservePhase(container, phase string, d time.Duration, ops int) {
	m.PhaseDuration.WithLabelValues(container, phase).Set(d.Seconds())
	m.PhaseOperations.WithLabelValues(container, phase).Add(float64(ops))
}

// ObserveRun counts a finished run as "ok" or "failed".
func (m *Metrics) ObserveRun(container string, ok bool) {
	status := "ok"
	if !ok {
		status = "failed"
	}
	m.Runs.WithLabelValues(container, status).Inc()
}

// Handler returns the Prometheus HTTP handler for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// WriteTextfile dumps the registry in the node_exporter textfile format.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.Registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile %s: %w", path, err)
	}
	return nil
}

// StartMetricsServer serves /metrics on addr until ctx is done.
func StartMetricsServer(ctx context.Context, addr string, handler http.Handler) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	slog.Info("Starting metrics server", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
