package container

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// SearchStage marks which side of a Contains call an event was emitted on.
type SearchStage int

const (
	SearchStarted SearchStage = iota
	SearchFinished
)

// SearchEvent is emitted by TalkativeList around every Contains call.
// Found is only meaningful when Stage is SearchFinished.
type SearchEvent[T comparable] struct {
	Stage SearchStage
	Value T
	Found bool
}

// Observer receives search events. It must not call back into the list.
type Observer[T comparable] func(SearchEvent[T])

// TalkativeList wraps another List and narrates what Contains is doing.
// All other operations are forwarded untouched.
type TalkativeList[T comparable] struct {
	inner    List[T]
	observer Observer[T]
}

// NewTalkativeList decorates inner. A nil observer discards events.
func NewTalkativeList[T comparable](inner List[T], observer Observer[T]) *TalkativeList[T] {
	return &TalkativeList[T]{inner: inner, observer: observer}
}

func (l *TalkativeList[T]) Append(v T)                { l.inner.Append(v) }
func (l *TalkativeList[T]) Get(i int) (T, error)      { return l.inner.Get(i) }
func (l *TalkativeList[T]) Set(i int, v T) error      { return l.inner.Set(i, v) }
func (l *TalkativeList[T]) RemoveAt(i int) (T, error) { return l.inner.RemoveAt(i) }
func (l *TalkativeList[T]) Len() int                  { return l.inner.Len() }

func (l *TalkativeList[T]) Contains(v T) bool {
	l.emit(SearchEvent[T]{Stage: SearchStarted, Value: v})
	found := l.inner.Contains(v)
	l.emit(SearchEvent[T]{Stage: SearchFinished, Value: v, Found: found})
	return found
}

func (l *TalkativeList[T]) emit(ev SearchEvent[T]) {
	if l.observer != nil {
		l.observer(ev)
	}
}

// WriterObserver prints the classic chatty messages to w.
func WriterObserver[T comparable](w io.Writer) Observer[T] {
	return func(ev SearchEvent[T]) {
		switch {
		case ev.Stage == SearchStarted:
			fmt.Fprintf(w, "Looking for %v...\n", ev.Value)
		case ev.Found:
			fmt.Fprintln(w, "I found it!")
		default:
			fmt.Fprintln(w, "No where to be seen.")
		}
	}
}

// LogObserver emits one debug record per event. A nil logger means
// slog.Default().
func LogObserver[T comparable](logger *slog.Logger) Observer[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return func(ev SearchEvent[T]) {
		if !logger.Enabled(context.Background(), slog.LevelDebug) {
			return
		}
		if ev.Stage == SearchStarted {
			logger.Debug("searching", "value", ev.Value)
			return
		}
		logger.Debug("search finished", "value", ev.Value, "found", ev.Found)
	}
}
