package container

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allKinds(t *testing.T) map[Kind]func() List[int] {
	t.Helper()
	out := make(map[Kind]func() List[int])
	for _, k := range Kinds() {
		k := k
		out[k] = func() List[int] {
			l, err := New[int](k, nil)
			require.NoError(t, err)
			return l
		}
	}
	return out
}

func TestList_AppendGetSet(t *testing.T) {
	for kind, newList := range allKinds(t) {
		t.Run(string(kind), func(t *testing.T) {
			l := newList()
			for i := 0; i < 10; i++ {
				l.Append(i)
				assert.Equal(t, i+1, l.Len())
			}
			for i := 0; i < 10; i++ {
				v, err := l.Get(i)
				require.NoError(t, err)
				assert.Equal(t, i, v)
			}

			require.NoError(t, l.Set(3, 42))
			v, err := l.Get(3)
			require.NoError(t, err)
			assert.Equal(t, 42, v)

			// neighbours untouched
			v, _ = l.Get(2)
			assert.Equal(t, 2, v)
			v, _ = l.Get(4)
			assert.Equal(t, 4, v)
		})
	}
}

func TestList_RemoveAt(t *testing.T) {
	for kind, newList := range allKinds(t) {
		t.Run(string(kind), func(t *testing.T) {
			l := newList()
			for i := 0; i < 6; i++ {
				l.Append(i)
			}

			v, err := l.RemoveAt(2)
			require.NoError(t, err)
			assert.Equal(t, 2, v)
			assert.Equal(t, 5, l.Len())

			var got []int
			for i := 0; i < l.Len(); i++ {
				v, err := l.Get(i)
				require.NoError(t, err)
				got = append(got, v)
			}
			assert.Equal(t, []int{0, 1, 3, 4, 5}, got)

			v, err = l.RemoveAt(l.Len() - 1)
			require.NoError(t, err)
			assert.Equal(t, 5, v)

			for l.Len() > 0 {
				_, err := l.RemoveAt(0)
				require.NoError(t, err)
			}
			assert.Equal(t, 0, l.Len())
			assert.False(t, l.Contains(0))

			// usable again after being emptied
			l.Append(7)
			v, err = l.Get(0)
			require.NoError(t, err)
			assert.Equal(t, 7, v)
		})
	}
}

func TestList_OutOfRange(t *testing.T) {
	for kind, newList := range allKinds(t) {
		t.Run(string(kind), func(t *testing.T) {
			l := newList()

			_, err := l.RemoveAt(0)
			assert.ErrorIs(t, err, ErrOutOfRange)

			l.Append(1)
			_, err = l.Get(1)
			assert.ErrorIs(t, err, ErrOutOfRange)
			_, err = l.Get(-1)
			assert.ErrorIs(t, err, ErrOutOfRange)
			assert.ErrorIs(t, l.Set(5, 0), ErrOutOfRange)

			var idxErr *IndexError
			require.True(t, errors.As(l.Set(5, 0), &idxErr))
			assert.Equal(t, "set", idxErr.Op)
			assert.Equal(t, 5, idxErr.Index)
			assert.Equal(t, 1, idxErr.Len)
			assert.Equal(t, 1, l.Len())
		})
	}
}

func TestList_Contains(t *testing.T) {
	for kind, newList := range allKinds(t) {
		t.Run(string(kind), func(t *testing.T) {
			l := newList()
			assert.False(t, l.Contains(0))
			for i := 1; i <= 10; i++ {
				l.Append(i)
			}
			assert.True(t, l.Contains(1))
			assert.True(t, l.Contains(10))
			assert.False(t, l.Contains(11))
			assert.Equal(t, 10, l.Len())
		})
	}
}

func TestLinkedList_IndexFromBothEnds(t *testing.T) {
	l := NewLinkedList[string]()
	for _, s := range []string{"a", "b", "c", "d", "e"} {
		l.Append(s)
	}
	for i, want := range []string{"a", "b", "c", "d", "e"} {
		got, err := l.Get(i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := l.RemoveAt(0)
	require.NoError(t, err)
	_, err = l.RemoveAt(3)
	require.NoError(t, err)

	first, _ := l.Get(0)
	last, _ := l.Get(l.Len() - 1)
	assert.Equal(t, "b", first)
	assert.Equal(t, "d", last)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind(" Linked ")
	require.NoError(t, err)
	assert.Equal(t, KindLinked, k)
	assert.Equal(t, "LinkedList", k.DisplayName())

	_, err = ParseKind("vector")
	assert.Error(t, err)

	_, err = New[int](Kind("vector"), nil)
	assert.Error(t, err)
}

func TestNew_ReturnsFreshInstances(t *testing.T) {
	a, err := New[int](KindArray, nil)
	require.NoError(t, err)
	b, err := New[int](KindArray, nil)
	require.NoError(t, err)

	a.Append(1)
	assert.Equal(t, 0, b.Len())
}
