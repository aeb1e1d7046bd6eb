package soa

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIterator_Arithmetic(t *testing.T) {
	table := NewTable(rowSchema)
	pushRows(table, 1, 2, 3, 4, 5, 6, 7, 8)

	it := table.Begin()

	for m := -4; m <= 4; m++ {
		for n := -4; n <= 4; n++ {
			require.True(t, it.Add(m).Add(n).Equal(it.Add(m+n)))
			require.True(t, it.Add(n).Sub(n).Equal(it))
			require.Equal(t, n-m, it.Add(n).Distance(it.Add(m)))
			require.Equal(t, m < n, it.Add(m).Less(it.Add(n)))
			require.Equal(t, m == n, it.Add(m).Equal(it.Add(n)))
		}
	}

	require.Equal(t, 8, table.End().Distance(table.Begin()))
	require.True(t, table.Begin().Next().Prev().Equal(table.Begin()))
	require.Equal(t, -1, table.Begin().Compare(table.End()))
	require.Equal(t, 1, table.End().Compare(table.Begin()))
	require.Equal(t, 0, table.End().Compare(table.End()))
}

func TestIterator_Ref(t *testing.T) {
	table := NewTable(rowSchema)
	pushRows(table, 1, 2, 3)

	var ids []int
	for it := table.Begin(); !it.Equal(table.End()); it = it.Next() {
		ids = append(ids, it.Ref().Get(0).(int))
	}

	require.Equal(t, []int{1, 2, 3}, ids)

	it := table.Begin().Add(1)
	*(*string)(it.Ptr(1)) = "changed"
	require.Equal(t, "changed", table.At(1).Get(1))
}

func TestReverseIterator(t *testing.T) {
	table := NewTable(rowSchema)
	pushRows(table, 1, 2, 3)

	var ids []int
	for it := table.RBegin(); !it.Equal(table.REnd()); it = it.Next() {
		ids = append(ids, it.Ref().Get(0).(int))
	}

	require.Equal(t, []int{3, 2, 1}, ids)

	require.Equal(t, 2, table.RBegin().Row())
	require.True(t, table.RBegin().Base().Equal(table.End()))
	require.Equal(t, 3, table.REnd().Distance(table.RBegin()))
	require.True(t, table.RBegin().Less(table.REnd()))
	require.True(t, table.RBegin().Next().Prev().Equal(table.RBegin()))
}

func TestRef_SwapWith(t *testing.T) {
	a := NewTable(rowSchema)
	pushRows(a, 1, 2)

	b := NewTable(rowSchema)
	pushRows(b, 3)

	a.At(1).SwapWith(b.At(0))
	requireIds(t, a, 1, 3)
	requireIds(t, b, 2)

	other := NewTable(MustSchema(Col[int]("id")))
	other.PushBackValues(5)
	require.Panics(t, func() { a.At(0).SwapWith(other.At(0)) })
}

func TestTable_All_Break(t *testing.T) {
	table := NewTable(rowSchema)
	pushRows(table, 1, 2, 3)

	var rows []int
	for row := range table.All() {
		if row == 2 {
			break
		}

		rows = append(rows, row)
	}

	require.Equal(t, []int{0, 1}, rows)
}
