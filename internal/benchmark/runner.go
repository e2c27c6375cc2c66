package benchmark

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"listprof/internal/container"
)

// Runner drives a Workload against containers and times each phase.
// It is single-threaded: phases and the operations inside them run strictly
// one after another so their timings stay comparable.
type Runner struct {
	clock  Clock
	logger *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithClock replaces the system clock, mostly for tests.
func WithClock(c Clock) Option {
	return func(r *Runner) { r.clock = c }
}

func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		clock:  SystemClock{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes every phase of w against list. The first failing phase stops
// the run; the returned report then holds the phases completed so far and
// the error is a *PhaseError.
func (r *Runner) Run(list container.List[int], w Workload, name string) (Report, error) {
	report := Report{Container: name, Length: w.Length()}
	if w.Length() < 2 {
		err := &PhaseError{Container: name, Phase: PhaseFill, Err: ErrInvalidLength}
		report.Failure = err.Error()
		return report, err
	}

	r.logger.Debug("benchmark started", "container", name, "length", w.Length())
	for _, phase := range w.Phases() {
		start := r.clock.Now()
		res, err := w.execute(phase, list)
		end := r.clock.Now()
		if err == nil {
			err = w.checkLength(phase, list)
		}
		if err != nil {
			perr := &PhaseError{Container: name, Phase: phase, Err: err}
			report.Failure = perr.Error()
			r.logger.Error("benchmark phase failed", "container", name, "phase", phase, "error", err)
			return report, perr
		}

		res.Duration = end.Sub(start)
		if res.Duration < 0 {
			res.Duration = 0
		}
		r.logger.Debug("phase finished", "container", name, "phase", phase, "duration", res.Duration)
		report.Phases = append(report.Phases, res)
	}
	return report, nil
}

// Subject is a container under test. New must return a fresh, empty list on
// every call so no state leaks between runs.
type Subject struct {
	Name string
	New  func() container.List[int]
}

// RunSession runs w against each subject in order. A failing subject is
// recorded and the remaining subjects still run. ctx is checked between
// subjects only; a phase in progress is never interrupted. onReport, when
// not nil, receives each report as soon as its subject finishes.
func (r *Runner) RunSession(ctx context.Context, w Workload, subjects []Subject, onReport func(Report)) Session {
	session := Session{
		ID:        uuid.NewString(),
		Timestamp: r.clock.Now(),
		Length:    w.Length(),
	}

	for _, s := range subjects {
		if ctx.Err() != nil {
			r.logger.Info("benchmark session interrupted", "session", session.ID, "error", ctx.Err())
			session.Interrupted = true
			break
		}
		report, err := r.Run(s.New(), w, s.Name)
		if err != nil {
			r.logger.Warn("container benchmark aborted", "session", session.ID, "container", s.Name, "error", err)
		}
		session.Reports = append(session.Reports, report)
		if onReport != nil {
			onReport(report)
		}
	}
	return session
}
