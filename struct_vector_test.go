package soa

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type Body struct {
	Position Point `soa:"pos"`
	Mass     float64
	Name     string
	Scratch  []int `soa:"-"`
	internal int
}

func TestStructVector(t *testing.T) {
	vec := NewStructVector[Body]()
	require.Equal(t, 3, vec.Schema().Len())

	vec.PushBack(Body{Position: Point{1, 2}, Mass: 3, Name: "a", Scratch: []int{1}, internal: 5})
	vec.Append(
		Body{Position: Point{4, 5}, Mass: 6, Name: "b"},
		Body{Position: Point{7, 8}, Mass: 9, Name: "c"},
	)

	require.Equal(t, 3, vec.Len())

	// skipped fields are not stored
	require.Equal(t, Body{Position: Point{1, 2}, Mass: 3, Name: "a"}, vec.Get(0))

	require.Equal(t, []float64{3, 6, 9}, ColumnByName[float64](vec.Table, "Mass"))
	require.Equal(t, []Point{{1, 2}, {4, 5}, {7, 8}}, ColumnByName[Point](vec.Table, "pos"))

	vec.Set(1, Body{Name: "replaced"})
	require.Equal(t, Body{Name: "replaced"}, vec.Get(1))

	require.Panics(t, func() { vec.Get(3) })
}

func TestStructVector_Insert(t *testing.T) {
	vec := NewStructVector[Body]()
	vec.Append(Body{Name: "a"}, Body{Name: "d"})

	vec.Insert(vec.Begin().Add(1), 2, Body{Name: "x", Mass: 1})
	vec.InsertSlice(vec.End(), []Body{{Name: "e"}, {Name: "f"}})

	var names []string
	for _, body := range vec.All() {
		names = append(names, body.Name)
	}

	require.Equal(t, []string{"a", "x", "x", "d", "e", "f"}, names)
	require.Equal(t, []float64{0, 1, 1, 0, 0, 0}, ColumnByName[float64](vec.Table, "Mass"))

	values := vec.ToSlice()
	require.Len(t, values, 6)
	require.Equal(t, "d", values[3].Name)

	clone := vec.Clone()
	clone.Set(0, Body{Name: "z"})
	require.Equal(t, "a", vec.Get(0).Name)
	require.Equal(t, "z", clone.Get(0).Name)

	require.NoError(t, vec.Validate())
}

func TestStructVector_NoStruct(t *testing.T) {
	require.Panics(t, func() { NewStructVector[int]() })
}
