package report

import (
	"log/slog"

	"listprof/internal/benchmark"
)

// Log emits one record per phase and a summary record per report.
type Log struct {
	logger *slog.Logger
}

func NewLog(logger *slog.Logger) *Log {
	return &Log{logger: logger}
}

func (l *Log) Report(r benchmark.Report) {
	for _, p := range r.Phases {
		attrs := []any{
			"container", r.Container,
			"phase", string(p.Phase),
			"duration", p.Duration,
			"operations", p.Operations,
		}
		if len(p.Searches) > 0 {
			attrs = append(attrs, "searches", searchFlags(p.Searches))
		}
		l.logger.Info("phase timed", attrs...)
	}

	if r.Failed() {
		l.logger.Error("benchmark failed", "container", r.Container, "completed_phases", len(r.Phases), "error", r.Failure)
		return
	}
	l.logger.Info("benchmark finished", "container", r.Container, "length", r.Length, "total", r.Total())
}
