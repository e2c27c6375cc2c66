package benchmark

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength is returned for workloads shorter than two elements.
	ErrInvalidLength = errors.New("workload length must be at least 2")

	// ErrInvariantViolation means a container ended a phase with the wrong
	// length. It points at a defect in the container, not the runner.
	ErrInvariantViolation = errors.New("runner invariant violation")
)

// InvariantError reports the length a phase expected to leave behind.
type InvariantError struct {
	Phase    Phase
	Expected int
	Actual   int
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s: expected length %d after %s, got %d", ErrInvariantViolation, e.Expected, e.Phase, e.Actual)
}

func (e *InvariantError) Unwrap() error {
	return ErrInvariantViolation
}

// PhaseError ties a failure to the container and phase it happened in.
type PhaseError struct {
	Container string
	Phase     Phase
	Err       error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("%s: %s phase failed: %v", e.Container, e.Phase, e.Err)
}

func (e *PhaseError) Unwrap() error {
	return e.Err
}
