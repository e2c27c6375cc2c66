package benchmark

import (
	"fmt"
	"time"
)

// Comparison is the change of one (container, phase) timing between runs.
type Comparison struct {
	Container string
	Phase     Phase
	Prev      time.Duration
	Curr      time.Duration
	Diff      float64 // Percentage change, positive is slower
}

// Compare matches reports by container name and phases by name, and returns
// one comparison for every pair completed in both sessions.
func Compare(prev, curr Session) []Comparison {
	prevMap := make(map[string]Report)
	for _, r := range prev.Reports {
		prevMap[r.Container] = r
	}

	var comparisons []Comparison
	for _, c := range curr.Reports {
		p, ok := prevMap[c.Container]
		if !ok {
			continue
		}
		for _, cp := range c.Phases {
			pp, ok := p.Phase(cp.Phase)
			if !ok {
				continue
			}
			comp := Comparison{
				Container: c.Container,
				Phase:     cp.Phase,
				Prev:      pp.Duration,
				Curr:      cp.Duration,
			}
			if pp.Duration > 0 {
				comp.Diff = float64(cp.Duration-pp.Duration) / float64(pp.Duration) * 100
			}
			comparisons = append(comparisons, comp)
		}
	}
	return comparisons
}

// Regressed reports whether the phase got slower by more than threshold
// percent.
func (c Comparison) Regressed(threshold float64) bool {
	return c.Diff > threshold
}

func (c Comparison) String() string {
	return fmt.Sprintf("%s/%s: %+.2f%%", c.Container, c.Phase, c.Diff)
}
