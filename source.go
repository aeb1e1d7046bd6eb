package soa

import (
	"fmt"
	"unsafe"

	"github.com/oliverbestmann/soa/spoke"
)

// rowSource provides the values of rows that are inserted into or assigned to a table.
type rowSource interface {
	// copyTo writes count rows, starting with row from of the source, of
	// column col to dst. dst might hold live values that are overwritten.
	copyTo(col int, ty *spoke.ColumnType, dst unsafe.Pointer, from, count int)
}

// fillSource repeats the same row. A nil value fills a column with its zero value.
type fillSource struct {
	values []unsafe.Pointer
}

func (s fillSource) copyTo(col int, ty *spoke.ColumnType, dst unsafe.Pointer, _, count int) {
	if s.values == nil || s.values[col] == nil {
		ty.Clear(dst, count)
		return
	}

	ty.Fill(dst, count, s.values[col])
}

// rangeSource copies rows from column storage, e.g. from another table.
type rangeSource struct {
	bases []unsafe.Pointer
	start int
}

func (s rangeSource) copyTo(col int, ty *spoke.ColumnType, dst unsafe.Pointer, from, count int) {
	if count == 0 {
		return
	}

	ty.Move(dst, spoke.ElementAt(ty, s.bases[col], s.start+from), count)
}

// rowsSource assigns boxed values, one slice per row.
type rowsSource struct {
	rows [][]any
}

func (s rowsSource) copyTo(col int, ty *spoke.ColumnType, dst unsafe.Pointer, from, count int) {
	for idx := range count {
		ty.Set(spoke.ElementAt(ty, dst, idx), s.rows[from+idx][col])
	}
}

// stageValues copies boxed values of one row into a temporary storage.
// An empty list of values yields a source producing zero values.
func (t *Table) stageValues(values []any) fillSource {
	if len(values) == 0 {
		return fillSource{}
	}

	t.checkRowWidth(len(values))

	storage := spoke.Allocate(t.types, 1, t.maxBytes)
	for col, ty := range t.types {
		ty.Set(storage.Bases[col], values[col])
	}

	return fillSource{values: storage.Bases}
}

// stageRange copies count rows of the source into a temporary storage. This is
// required if the source is part of the table that is modified.
func (t *Table) stageRange(src rangeSource, count int) rangeSource {
	storage := spoke.Allocate(t.types, count, t.maxBytes)
	for col, ty := range t.types {
		src.copyTo(col, ty, storage.Bases[col], 0, count)
	}

	return rangeSource{bases: storage.Bases}
}

func (t *Table) checkRowWidth(width int) {
	if width != len(t.types) {
		panic(fmt.Sprintf("expected %d values per row, got %d", len(t.types), width))
	}
}

func (t *Table) checkRows(rows [][]any) {
	for _, row := range rows {
		t.checkRowWidth(len(row))
	}
}
