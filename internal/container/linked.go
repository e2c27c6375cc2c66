package container

type node[T comparable] struct {
	value      T
	prev, next *node[T]
}

// LinkedList is a doubly linked list. Indexed access walks from whichever
// end is closer to the index.
type LinkedList[T comparable] struct {
	head, tail *node[T]
	size       int
}

func NewLinkedList[T comparable]() *LinkedList[T] {
	return &LinkedList[T]{}
}

func (l *LinkedList[T]) Append(v T) {
	n := &node[T]{value: v, prev: l.tail}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
}

func (l *LinkedList[T]) nodeAt(i int) *node[T] {
	if i < l.size/2 {
		n := l.head
		for ; i > 0; i-- {
			n = n.next
		}
		return n
	}
	n := l.tail
	for j := l.size - 1; j > i; j-- {
		n = n.prev
	}
	return n
}

func (l *LinkedList[T]) Get(i int) (T, error) {
	if err := checkIndex("get", i, l.size); err != nil {
		var zero T
		return zero, err
	}
	return l.nodeAt(i).value, nil
}

func (l *LinkedList[T]) Set(i int, v T) error {
	if err := checkIndex("set", i, l.size); err != nil {
		return err
	}
	l.nodeAt(i).value = v
	return nil
}

func (l *LinkedList[T]) RemoveAt(i int) (T, error) {
	if err := checkIndex("remove", i, l.size); err != nil {
		var zero T
		return zero, err
	}
	n := l.nodeAt(i)
	if n.prev == nil {
		l.head = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		l.tail = n.prev
	} else {
		n.next.prev = n.prev
	}
	n.prev, n.next = nil, nil
	l.size--
	return n.value, nil
}

func (l *LinkedList[T]) Contains(v T) bool {
	for n := l.head; n != nil; n = n.next {
		if n.value == v {
			return true
		}
	}
	return false
}

func (l *LinkedList[T]) Len() int {
	return l.size
}
