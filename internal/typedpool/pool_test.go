package typedpool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPool(t *testing.T) {
	pool := New(func(values *[]int) { *values = (*values)[:0] })

	values := pool.Get()
	require.NotNil(t, values)
	require.Empty(t, *values)

	*values = append(*values, 1, 2, 3)
	pool.Put(values)

	// put resets the value, independent of it being reused
	require.Empty(t, *values)
	require.Empty(t, *pool.Get())
}
