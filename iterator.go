package soa

import (
	"unsafe"
)

// Iterator is a random access position within a table. It holds the row
// index and a snapshot of the column base pointers. Any reallocation of the
// table invalidates all previously created iterators.
type Iterator struct {
	schema     *Schema
	generation uint64
	bases      []unsafe.Pointer
	row        int
}

func (it Iterator) Row() int {
	return it.row
}

func (it Iterator) Add(n int) Iterator {
	it.row += n
	return it
}

func (it Iterator) Sub(n int) Iterator {
	it.row -= n
	return it
}

func (it Iterator) Next() Iterator {
	return it.Add(1)
}

func (it Iterator) Prev() Iterator {
	return it.Sub(1)
}

// Distance returns the signed number of rows from other to it.
func (it Iterator) Distance(other Iterator) int {
	return it.row - other.row
}

// Equal compares the row and the storage generation. Iterators
// from different tables or generations of a table are never equal.
func (it Iterator) Equal(other Iterator) bool {
	return it.row == other.row && it.generation == other.generation
}

func (it Iterator) Less(other Iterator) bool {
	return it.row < other.row
}

func (it Iterator) Compare(other Iterator) int {
	switch {
	case it.row < other.row:
		return -1
	case it.row > other.row:
		return 1
	default:
		return 0
	}
}

// Ref materializes the row the iterator points to.
func (it Iterator) Ref() Ref {
	return Ref{schema: it.schema, bases: it.bases, row: it.row}
}

func (it Iterator) Ptr(col int) unsafe.Pointer {
	return it.Ref().Ptr(col)
}

func (it Iterator) sameGeneration(other Iterator) bool {
	return it.generation != 0 && it.generation == other.generation
}

// ReverseIterator walks a table from back to front. Like the reverse
// iterators of the standard containers, it points one row behind its base.
type ReverseIterator struct {
	base Iterator
}

// Base returns the forward iterator one row after the row this iterator points to.
func (it ReverseIterator) Base() Iterator {
	return it.base
}

func (it ReverseIterator) Row() int {
	return it.base.row - 1
}

func (it ReverseIterator) Add(n int) ReverseIterator {
	return ReverseIterator{base: it.base.Sub(n)}
}

func (it ReverseIterator) Next() ReverseIterator {
	return it.Add(1)
}

func (it ReverseIterator) Prev() ReverseIterator {
	return it.Add(-1)
}

func (it ReverseIterator) Distance(other ReverseIterator) int {
	return other.base.row - it.base.row
}

func (it ReverseIterator) Equal(other ReverseIterator) bool {
	return it.base.Equal(other.base)
}

func (it ReverseIterator) Less(other ReverseIterator) bool {
	return other.base.Less(it.base)
}

func (it ReverseIterator) Ref() Ref {
	return it.base.Prev().Ref()
}
