package container

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when an index falls outside [0, Len()).
var ErrOutOfRange = errors.New("index out of range")

// IndexError describes a failed indexed operation.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

// Error implements the error interface
func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d out of range [0, %d)", e.Op, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error {
	return ErrOutOfRange
}

func checkIndex(op string, i, n int) error {
	if i < 0 || i >= n {
		return &IndexError{Op: op, Index: i, Len: n}
	}
	return nil
}

// List is the capability set every container under test must provide.
type List[T comparable] interface {
	Append(v T)
	Get(i int) (T, error)
	Set(i int, v T) error
	RemoveAt(i int) (T, error)
	Contains(v T) bool
	Len() int
}
