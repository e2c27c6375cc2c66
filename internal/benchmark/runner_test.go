package benchmark

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listprof/internal/container"
)

// scriptedClock returns the scripted instants in order and then keeps
// repeating the last one.
type scriptedClock struct {
	times []time.Time
	calls int
}

func (c *scriptedClock) Now() time.Time {
	i := c.calls
	if i >= len(c.times) {
		i = len(c.times) - 1
	}
	c.calls++
	return c.times[i]
}

func steppingClock(start time.Time, steps ...time.Duration) *scriptedClock {
	times := []time.Time{start}
	for _, s := range steps {
		start = start.Add(s)
		times = append(times, start)
	}
	return &scriptedClock{times: times}
}

// greedyList removes two elements per RemoveAt, so Drain runs dry halfway.
type greedyList struct {
	*container.ArrayList[int]
}

func (l greedyList) RemoveAt(i int) (int, error) {
	v, err := l.ArrayList.RemoveAt(i)
	if err != nil {
		return v, err
	}
	_, _ = l.ArrayList.RemoveAt(i)
	return v, nil
}

// stickyList never actually removes anything.
type stickyList struct {
	*container.ArrayList[int]
}

func (l stickyList) RemoveAt(i int) (int, error) {
	return l.ArrayList.Get(i)
}

// lossyList drops every other appended value.
type lossyList struct {
	*container.ArrayList[int]
	n *int
}

func (l lossyList) Append(v int) {
	*l.n++
	if *l.n%2 == 0 {
		return
	}
	l.ArrayList.Append(v)
}

func mustWorkload(t *testing.T, n int) Workload {
	t.Helper()
	w, err := NewWorkload(n)
	require.NoError(t, err)
	return w
}

func TestRunner_EndToEndArrayListN5(t *testing.T) {
	r := NewRunner()
	report, err := r.Run(container.NewArrayList[int](), mustWorkload(t, 5), "ArrayList")
	require.NoError(t, err)

	assert.Equal(t, "ArrayList", report.Container)
	assert.Equal(t, 5, report.Length)
	assert.False(t, report.Failed())
	require.Len(t, report.Phases, 4)

	var phases []Phase
	for _, p := range report.Phases {
		phases = append(phases, p.Phase)
		assert.GreaterOrEqual(t, p.Duration, time.Duration(0))
	}
	assert.Equal(t, []Phase{PhaseFill, PhaseIncrement, PhaseSearch, PhaseDrain}, phases)

	search, ok := report.Phase(PhaseSearch)
	require.True(t, ok)
	assert.Equal(t, []SearchResult{
		{Value: 1, Found: true},
		{Value: 5, Found: true},
		{Value: 5, Found: true},
		{Value: 6, Found: false},
	}, search.Searches)

	drain, _ := report.Phase(PhaseDrain)
	assert.Equal(t, 5, drain.Operations)
	fill, _ := report.Phase(PhaseFill)
	assert.Equal(t, 5, fill.Operations)
	inc, _ := report.Phase(PhaseIncrement)
	assert.Equal(t, 10, inc.Operations)
}

func TestRunner_SearchResultsN10AllKinds(t *testing.T) {
	want := []SearchResult{
		{Value: 1, Found: true},
		{Value: 5, Found: true},
		{Value: 10, Found: true},
		{Value: 11, Found: false},
	}
	for _, kind := range container.Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			list, err := container.New[int](kind, nil)
			require.NoError(t, err)

			report, err := NewRunner().Run(list, mustWorkload(t, 10), kind.DisplayName())
			require.NoError(t, err)

			search, ok := report.Phase(PhaseSearch)
			require.True(t, ok)
			assert.Equal(t, want, search.Searches)
			assert.Equal(t, 0, list.Len())
		})
	}
}

// Fill and Increment are checked through a list that snapshots its
// contents when Search starts.
type snapshotList struct {
	*container.ArrayList[int]
	snap []int
}

func (l *snapshotList) Contains(v int) bool {
	if l.snap == nil {
		for i := 0; i < l.Len(); i++ {
			x, _ := l.Get(i)
			l.snap = append(l.snap, x)
		}
	}
	return l.ArrayList.Contains(v)
}

func TestRunner_IncrementAddsOneToEveryElement(t *testing.T) {
	for _, n := range []int{2, 3, 7, 100} {
		list := &snapshotList{ArrayList: container.NewArrayList[int]()}
		_, err := NewRunner().Run(list, mustWorkload(t, n), "snap")
		require.NoError(t, err)

		require.Len(t, list.snap, n)
		for i, v := range list.snap {
			assert.Equal(t, i+1, v)
		}
	}
}

func TestRunner_FillProducesAscendingValues(t *testing.T) {
	w := mustWorkload(t, 8)
	for _, kind := range container.Kinds() {
		list, err := container.New[int](kind, nil)
		require.NoError(t, err)

		_, err = w.execute(PhaseFill, list)
		require.NoError(t, err)
		for i := 0; i < 8; i++ {
			v, err := list.Get(i)
			require.NoError(t, err)
			assert.Equal(t, i, v, "kind %s index %d", kind, i)
		}
	}
}

func TestRunner_FakeClockDurations(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := steppingClock(start,
		10*time.Millisecond, 0, // fill
		20*time.Millisecond, 0, // increment
		3*time.Millisecond, 0, // search
		40*time.Millisecond, // drain
	)
	r := NewRunner(WithClock(clock))

	report, err := r.Run(container.NewLinkedList[int](), mustWorkload(t, 4), "LinkedList")
	require.NoError(t, err)

	var got []time.Duration
	for _, p := range report.Phases {
		got = append(got, p.Duration)
	}
	assert.Equal(t, []time.Duration{10 * time.Millisecond, 20 * time.Millisecond, 3 * time.Millisecond, 40 * time.Millisecond}, got)
	assert.Equal(t, 73*time.Millisecond, report.Total())
	assert.Equal(t, 8, clock.calls)
}

func TestRunner_NegativeDurationIsClamped(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := &scriptedClock{times: []time.Time{start, start.Add(-time.Second)}}

	report, err := NewRunner(WithClock(clock)).Run(container.NewArrayList[int](), mustWorkload(t, 3), "a")
	require.NoError(t, err)
	for _, p := range report.Phases {
		assert.Equal(t, time.Duration(0), p.Duration)
	}
}

func TestRunner_OutOfRangeDuringDrain(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))
	list := greedyList{container.NewArrayList[int]()}

	report, err := NewRunner(WithLogger(logger)).Run(list, mustWorkload(t, 6), "Greedy")
	require.Error(t, err)

	assert.ErrorIs(t, err, container.ErrOutOfRange)
	var perr *PhaseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, PhaseDrain, perr.Phase)
	assert.Equal(t, "Greedy", perr.Container)

	assert.True(t, report.Failed())
	assert.Contains(t, report.Failure, "drain")
	_, ok := report.Phase(PhaseDrain)
	assert.False(t, ok, "a failed drain must not be reported")
	assert.Len(t, report.Phases, 3)
	assert.Contains(t, logs.String(), "benchmark phase failed")
}

func TestRunner_DrainLeavesElements(t *testing.T) {
	list := stickyList{container.NewArrayList[int]()}

	report, err := NewRunner().Run(list, mustWorkload(t, 4), "Sticky")
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrInvariantViolation)
	var inv *InvariantError
	require.True(t, errors.As(err, &inv))
	assert.Equal(t, PhaseDrain, inv.Phase)
	assert.Equal(t, 0, inv.Expected)
	assert.Equal(t, 4, inv.Actual)
	assert.Len(t, report.Phases, 3)
}

func TestRunner_FillInvariant(t *testing.T) {
	n := 0
	list := lossyList{ArrayList: container.NewArrayList[int](), n: &n}

	report, err := NewRunner().Run(list, mustWorkload(t, 4), "Lossy")
	assert.ErrorIs(t, err, ErrInvariantViolation)
	assert.Empty(t, report.Phases)
}

func TestRunner_ZeroWorkloadRejected(t *testing.T) {
	report, err := NewRunner().Run(container.NewArrayList[int](), Workload{}, "a")
	assert.ErrorIs(t, err, ErrInvalidLength)
	assert.True(t, report.Failed())
}

func TestRunner_DecoratorDoesNotChangeObservations(t *testing.T) {
	strip := func(r Report) Report {
		for i := range r.Phases {
			r.Phases[i].Duration = 0
		}
		r.Container = ""
		return r
	}
	w := mustWorkload(t, 50)

	plain, err := NewRunner().Run(container.NewArrayList[int](), w, "plain")
	require.NoError(t, err)

	events := 0
	talk := container.NewTalkativeList[int](container.NewArrayList[int](), func(container.SearchEvent[int]) { events++ })
	decorated, err := NewRunner().Run(talk, w, "talkative")
	require.NoError(t, err)

	assert.Equal(t, strip(plain), strip(decorated))
	assert.Equal(t, 8, events)
}

func TestRunSession_ContinuesAfterFailure(t *testing.T) {
	w := mustWorkload(t, 6)
	made := 0
	subjects := []Subject{
		{Name: "ArrayList", New: func() container.List[int] { made++; return container.NewArrayList[int]() }},
		{Name: "Greedy", New: func() container.List[int] { made++; return greedyList{container.NewArrayList[int]()} }},
		{Name: "LinkedList", New: func() container.List[int] { made++; return container.NewLinkedList[int]() }},
	}

	var streamed []string
	session := NewRunner().RunSession(context.Background(), w, subjects, func(r Report) {
		streamed = append(streamed, r.Container)
	})

	assert.Equal(t, []string{"ArrayList", "Greedy", "LinkedList"}, streamed)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, 6, session.Length)
	assert.False(t, session.Interrupted)
	require.Len(t, session.Reports, 3)
	assert.Equal(t, 3, made)

	assert.False(t, session.Reports[0].Failed())
	assert.True(t, session.Reports[1].Failed())
	assert.False(t, session.Reports[2].Failed())
	assert.Len(t, session.Reports[2].Phases, 4)

	err := session.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Greedy")
}

func TestRunSession_FreshContainerPerRun(t *testing.T) {
	shared := container.NewArrayList[int]()
	w := mustWorkload(t, 3)

	// Sharing one instance across subjects still works because Drain empties
	// it, but the session must call New once per subject.
	calls := 0
	subject := Subject{Name: "a", New: func() container.List[int] { calls++; return shared }}
	session := NewRunner().RunSession(context.Background(), w, []Subject{subject, subject}, nil)

	assert.Equal(t, 2, calls)
	assert.NoError(t, session.Err())
}

func TestRunSession_StopsBetweenSubjectsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	w := mustWorkload(t, 3)
	subjects := []Subject{
		{Name: "first", New: func() container.List[int] { cancel(); return container.NewArrayList[int]() }},
		{Name: "second", New: func() container.List[int] { return container.NewArrayList[int]() }},
	}

	session := NewRunner().RunSession(ctx, w, subjects, nil)

	require.Len(t, session.Reports, 1)
	assert.Equal(t, "first", session.Reports[0].Container)
	assert.Len(t, session.Reports[0].Phases, 4, "the subject in progress runs to completion")
	assert.True(t, session.Interrupted)
}
