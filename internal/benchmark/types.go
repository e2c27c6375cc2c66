package benchmark

import (
	"errors"
	"time"
)

// Phase names one step of the workload.
type Phase string

const (
	PhaseFill      Phase = "fill"
	PhaseIncrement Phase = "increment"
	PhaseSearch    Phase = "search"
	PhaseDrain     Phase = "drain"
)

// SearchResult is one Contains query and its answer.
type SearchResult struct {
	Value int  `json:"value" yaml:"value"`
	Found bool `json:"found" yaml:"found"`
}

// PhaseResult records a completed phase.
type PhaseResult struct {
	Phase      Phase          `json:"phase" yaml:"phase"`
	Duration   time.Duration  `json:"duration_ns" yaml:"duration"`
	Operations int            `json:"operations" yaml:"operations"`
	Searches   []SearchResult `json:"searches,omitempty" yaml:"searches,omitempty"`
}

// Report is the outcome of running the workload against one container.
// Phases holds only the phases that completed; Failure is set when a phase
// aborted the run.
type Report struct {
	Container string        `json:"container" yaml:"container"`
	Length    int           `json:"length" yaml:"length"`
	Phases    []PhaseResult `json:"phases" yaml:"phases"`
	Failure   string        `json:"failure,omitempty" yaml:"failure,omitempty"`
}

// Failed reports whether the run was aborted.
func (r Report) Failed() bool {
	return r.Failure != ""
}

// Phase looks up the result of p.
func (r Report) Phase(p Phase) (PhaseResult, bool) {
	for _, res := range r.Phases {
		if res.Phase == p {
			return res, true
		}
	}
	return PhaseResult{}, false
}

// Total sums the duration of every completed phase.
func (r Report) Total() time.Duration {
	var total time.Duration
	for _, res := range r.Phases {
		total += res.Duration
	}
	return total
}

// Session is a set of reports produced against the same workload, in the
// order the containers were run.
type Session struct {
	ID          string    `json:"id" yaml:"id"`
	Timestamp   time.Time `json:"timestamp" yaml:"timestamp"`
	Length      int       `json:"length" yaml:"length"`
	Reports     []Report  `json:"reports" yaml:"reports"`
	Interrupted bool      `json:"interrupted,omitempty" yaml:"interrupted,omitempty"`
}

// Err joins the failure of every aborted report, or returns nil.
func (s Session) Err() error {
	var errs []error
	for _, r := range s.Reports {
		if r.Failed() {
			errs = append(errs, errors.New(r.Failure))
		}
	}
	return errors.Join(errs...)
}
