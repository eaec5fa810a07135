package statefn_test

import (
	"errors"
	"iter"
	"statefn"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOf_AppendsEndOfStream(t *testing.T) {
	out := drain(statefn.Of(1, 2))

	require.Equal(t, []statefn.Notification[int]{
		statefn.Value(1),
		statefn.Value(2),
		statefn.Completed[int](),
	}, out)
}

func TestOf_EmptyIsJustEndOfStream(t *testing.T) {
	require.Equal(t, []statefn.Notification[int]{
		statefn.Completed[int](),
	}, drain(statefn.Of[int]()))
}

func TestMaterialize_LiftsPlainSequence(t *testing.T) {
	out := drain(statefn.Materialize(seqOf("x", "y")))

	require.Equal(t, []statefn.Notification[string]{
		statefn.Value("x"),
		statefn.Value("y"),
		statefn.Completed[string](),
	}, out)
}

func TestFromChan_CompletesOnClose(t *testing.T) {
	ch := make(chan int, 3)
	ch <- 1
	ch <- 2
	close(ch)

	out := drain(statefn.FromChan(ch))

	require.Equal(t, []statefn.Notification[int]{
		statefn.Value(1),
		statefn.Value(2),
		statefn.Completed[int](),
	}, out)
}

func TestFromNotifications_DeliversVerbatim(t *testing.T) {
	boom := errors.New("boom")

	out := drain(statefn.FromNotifications(
		statefn.Value("a"),
		statefn.Failed[string](boom),
	))

	require.Equal(t, []statefn.Notification[string]{
		statefn.Value("a"),
		statefn.Failed[string](boom),
	}, out)
}

func TestDematerialize_StopsAtFirstTerminal(t *testing.T) {
	// A value after the terminal is malformed input; it must not be
	// observed.
	src := statefn.FromNotifications(
		statefn.Value(1),
		statefn.Completed[int](),
		statefn.Value(2),
	)

	var vals []int
	for v, err := range statefn.Dematerialize(src) {
		require.NoError(t, err)
		vals = append(vals, v)
	}

	require.Equal(t, []int{1}, vals)
}

func TestDematerialize_YieldsTerminalError(t *testing.T) {
	boom := errors.New("boom")
	src := statefn.FromNotifications(
		statefn.Value(1),
		statefn.Failed[int](boom),
	)

	var vals []int
	var got error
	for v, err := range statefn.Dematerialize(src) {
		if err != nil {
			got = err
			continue
		}
		vals = append(vals, v)
	}

	require.Equal(t, []int{1}, vals)
	require.ErrorIs(t, got, boom)
}

func TestCollect_CleanCompletion(t *testing.T) {
	vals, err := statefn.Collect(statefn.Of("a", "b", "c"))

	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, vals)
}

func TestCollect_ReturnsValuesBeforeError(t *testing.T) {
	boom := errors.New("boom")
	src := statefn.FromNotifications(
		statefn.Value(1),
		statefn.Value(2),
		statefn.Failed[int](boom),
	)

	vals, err := statefn.Collect(src)

	require.ErrorIs(t, err, boom)
	require.Equal(t, []int{1, 2}, vals)
}

func seqOf[T any](values ...T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	}
}
