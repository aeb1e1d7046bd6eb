package assert

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestThat(t *testing.T) {
	require.NotPanics(t, func() { That(true, "never") })

	if Enabled {
		require.PanicsWithValue(t, "bad row 3", func() { That(false, "bad row %d", 3) })
	} else {
		require.NotPanics(t, func() { That(false, "bad row %d", 3) })
	}
}

func TestIsStructType(t *testing.T) {
	require.NotPanics(t, func() { IsStructType(reflect.TypeFor[struct{ X int }]()) })
	require.Panics(t, func() { IsStructType(reflect.TypeFor[*struct{ X int }]()) })
}
