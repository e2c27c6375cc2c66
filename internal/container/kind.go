package container

import (
	"fmt"
	"strings"
)

// Kind names a List implementation.
type Kind string

const (
	KindArray     Kind = "array"
	KindLinked    Kind = "linked"
	KindSync      Kind = "sync"
	KindTalkative Kind = "talkative"
)

// Kinds lists every known kind in the default benchmark order.
func Kinds() []Kind {
	return []Kind{KindArray, KindLinked, KindSync, KindTalkative}
}

// DisplayName returns the name shown in reports.
func (k Kind) DisplayName() string {
	switch k {
	case KindArray:
		return "ArrayList"
	case KindLinked:
		return "LinkedList"
	case KindSync:
		return "SyncList"
	case KindTalkative:
		return "TalkativeList"
	}
	return string(k)
}

// ParseKind accepts a kind name case-insensitively.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown container kind: %q", s)
}

// New returns a fresh, empty list of the given kind. The observer is only
// used by KindTalkative, which decorates an ArrayList.
func New[T comparable](kind Kind, observer Observer[T]) (List[T], error) {
	switch kind {
	case KindArray:
		return NewArrayList[T](), nil
	case KindLinked:
		return NewLinkedList[T](), nil
	case KindSync:
		return NewSyncList[T](), nil
	case KindTalkative:
		return NewTalkativeList[T](NewArrayList[T](), observer), nil
	}
	return nil, fmt.Errorf("unknown container kind: %q", kind)
}
