package container

import "sync"

// SyncList is a slice-backed list that serializes every operation behind a
// mutex, the way a synchronized vector does. Callers still pay for the lock
// when they never share the list.
type SyncList[T comparable] struct {
	mu    sync.Mutex
	inner ArrayList[T]
}

func NewSyncList[T comparable]() *SyncList[T] {
	return &SyncList[T]{}
}

func (l *SyncList[T]) Append(v T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.inner.Append(v)
}

func (l *SyncList[T]) Get(i int) (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.Get(i)
}

func (l *SyncList[T]) Set(i int, v T) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.Set(i, v)
}

func (l *SyncList[T]) RemoveAt(i int) (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.RemoveAt(i)
}

func (l *SyncList[T]) Contains(v T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.Contains(v)
}

func (l *SyncList[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.Len()
}
