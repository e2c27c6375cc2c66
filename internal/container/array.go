package container

// ArrayList is a slice-backed list.
type ArrayList[T comparable] struct {
	items []T
}

func NewArrayList[T comparable]() *ArrayList[T] {
	return &ArrayList[T]{}
}

func (l *ArrayList[T]) Append(v T) {
	l.items = append(l.items, v)
}

func (l *ArrayList[T]) Get(i int) (T, error) {
	if err := checkIndex("get", i, len(l.items)); err != nil {
		var zero T
		return zero, err
	}
	return l.items[i], nil
}

func (l *ArrayList[T]) Set(i int, v T) error {
	if err := checkIndex("set", i, len(l.items)); err != nil {
		return err
	}
	l.items[i] = v
	return nil
}

// RemoveAt shifts every element after i one slot to the left.
func (l *ArrayList[T]) RemoveAt(i int) (T, error) {
	var zero T
	if err := checkIndex("remove", i, len(l.items)); err != nil {
		return zero, err
	}
	v := l.items[i]
	copy(l.items[i:], l.items[i+1:])
	l.items[len(l.items)-1] = zero
	l.items = l.items[:len(l.items)-1]
	return v, nil
}

func (l *ArrayList[T]) Contains(v T) bool {
	for _, item := range l.items {
		if item == v {
			return true
		}
	}
	return false
}

func (l *ArrayList[T]) Len() int {
	return len(l.items)
}
