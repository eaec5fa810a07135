package statefn_test

import (
	"errors"
	"statefn"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNotification_Constructors(t *testing.T) {
	boom := errors.New("boom")

	v := statefn.Value(42)
	require.Equal(t, statefn.KindValue, v.Kind)
	require.Equal(t, 42, v.Value)
	require.False(t, v.IsTerminal())

	c := statefn.Completed[int]()
	require.Equal(t, statefn.KindCompleted, c.Kind)
	require.True(t, c.IsTerminal())

	f := statefn.Failed[int](boom)
	require.Equal(t, statefn.KindError, f.Kind)
	require.ErrorIs(t, f.Err, boom)
	require.True(t, f.IsTerminal())
}

func TestKind_String(t *testing.T) {
	require.Equal(t, "value", statefn.KindValue.String())
	require.Equal(t, "completed", statefn.KindCompleted.String())
	require.Equal(t, "error", statefn.KindError.String())
	require.Equal(t, "kind(7)", statefn.Kind(7).String())
}
