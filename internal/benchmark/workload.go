package benchmark

import (
	"fmt"

	"listprof/internal/container"
)

// Workload is the fixed sequence of phases applied to every container.
// The zero value is not usable; build one with NewWorkload.
type Workload struct {
	length int
}

func NewWorkload(length int) (Workload, error) {
	if length < 2 {
		return Workload{}, fmt.Errorf("%w, got %d", ErrInvalidLength, length)
	}
	return Workload{length: length}, nil
}

// Length is the number of elements the workload fills.
func (w Workload) Length() int {
	return w.length
}

// Phases returns the phases in execution order. Each phase depends on the
// state the previous one leaves behind.
func (w Workload) Phases() []Phase {
	return []Phase{PhaseFill, PhaseIncrement, PhaseSearch, PhaseDrain}
}

// SearchValues returns the Contains queries in the order they are issued.
// After Increment the list holds 1..N, so 1 and 5 are present for N >= 5,
// N is present and N+1 never is.
func (w Workload) SearchValues() []int {
	return []int{1, 5, w.length, w.length + 1}
}

// expectedLen is the length a correct container has after phase p.
func (w Workload) expectedLen(p Phase) int {
	if p == PhaseDrain {
		return 0
	}
	return w.length
}

func (w Workload) execute(p Phase, list container.List[int]) (PhaseResult, error) {
	res := PhaseResult{Phase: p}
	switch p {
	case PhaseFill:
		for i := 0; i < w.length; i++ {
			list.Append(i)
		}
		res.Operations = w.length
	case PhaseIncrement:
		for i := 0; i < w.length; i++ {
			v, err := list.Get(i)
			if err != nil {
				return res, err
			}
			if err := list.Set(i, v+1); err != nil {
				return res, err
			}
		}
		res.Operations = 2 * w.length
	case PhaseSearch:
		values := w.SearchValues()
		res.Searches = make([]SearchResult, 0, len(values))
		for _, v := range values {
			res.Searches = append(res.Searches, SearchResult{Value: v, Found: list.Contains(v)})
		}
		res.Operations = len(values)
	case PhaseDrain:
		for i := 0; i < w.length; i++ {
			if _, err := list.RemoveAt(0); err != nil {
				return res, err
			}
		}
		res.Operations = w.length
	default:
		return res, fmt.Errorf("unknown phase %q", p)
	}
	return res, nil
}

func (w Workload) checkLength(p Phase, list container.List[int]) error {
	if got, want := list.Len(), w.expectedLen(p); got != want {
		return &InvariantError{Phase: p, Expected: want, Actual: got}
	}
	return nil
}
