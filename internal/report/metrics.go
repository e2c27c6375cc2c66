package report

import (
	"listprof/internal/benchmark"
	"listprof/internal/telemetry"
)

// Metrics records every report into Prometheus collectors.
type Metrics struct {
	m *telemetry.Metrics
}

func NewMetrics(m *telemetry.Metrics) *Metrics {
	return &Metrics{m: m}
}

func (r *Metrics) Report(rep benchmark.Report) {
	for _, p := range rep.Phases {
		r.m.ObservePhase(rep.Container, string(p.Phase), p.Duration, p.Operations)
	}
	r.m.ObserveRun(rep.Container, !rep.Failed())
}
