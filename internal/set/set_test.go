package set

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	var s Set[string]

	require.True(t, s.Insert("a"))
	require.True(t, s.Insert("b"))
	require.False(t, s.Insert("a"))
	require.False(t, s.Insert("b"))
	require.True(t, s.Insert(""))
}
