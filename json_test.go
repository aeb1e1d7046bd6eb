package soa

import (
	"testing"

	gojson "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

type Point struct {
	X, Y int
}

func TestTable_MarshalJSON(t *testing.T) {
	table := NewTable(MustSchema(
		Col[int]("id"),
		Col[Point]("position"),
		Col[string](""),
	))

	table.PushBackValues(1, Point{X: 1, Y: 2}, "first")
	table.PushBackValues(2, Point{X: 3, Y: 4}, "second")

	encoded, err := gojson.Marshal(table)
	require.NoError(t, err)

	require.JSONEq(t, `[
		{"id": 1, "position": {"X": 1, "Y": 2}, "2": "first"},
		{"id": 2, "position": {"X": 3, "Y": 4}, "2": "second"}
	]`, string(encoded))

	// keys are written in column order
	require.Equal(t, `[{"id":1,"position":{"X":1,"Y":2},"2":"first"},{"id":2,"position":{"X":3,"Y":4},"2":"second"}]`, string(encoded))
}

func TestTable_MarshalJSON_Empty(t *testing.T) {
	encoded, err := NewTable(rowSchema).MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, `[]`, string(encoded))
}

func TestTable_UnmarshalJSON(t *testing.T) {
	table := NewTable(rowSchema)
	pushRows(table, 7)

	err := gojson.Unmarshal([]byte(`[
		{"id": 1, "name": "1", "flag": 1},
		{"id": 2, "flag": 2},
		{"name": "3"}
	]`), table)
	require.NoError(t, err)

	require.NoError(t, table.Validate())
	require.Equal(t, []int{1, 2, 0}, ColumnSlice[int](table, 0))
	require.Equal(t, []string{"1", "", "3"}, ColumnSlice[string](table, 1))
	require.Equal(t, []byte{1, 2, 0}, ColumnSlice[byte](table, 2))
}

func TestTable_UnmarshalJSON_Invalid(t *testing.T) {
	table := NewTable(rowSchema)
	pushRows(table, 7)

	require.Error(t, table.UnmarshalJSON([]byte(`{"id": 1}`)))
	require.Error(t, table.UnmarshalJSON([]byte(`[{"id": "one"}]`)))

	// the table is untouched after an error
	requireIds(t, table, 7)

	var missingSchema Table
	require.Error(t, missingSchema.UnmarshalJSON([]byte(`[]`)))
}

func TestTable_JSON_RoundTrip(t *testing.T) {
	table := NewTable(rowSchema)
	pushRows(table, 1, 2, 3)

	encoded, err := table.MarshalJSON()
	require.NoError(t, err)

	decoded := NewTable(rowSchema)
	require.NoError(t, decoded.UnmarshalJSON(encoded))
	require.True(t, Equal(table, decoded))
}
