package soa

import (
	"unsafe"

	"github.com/oliverbestmann/soa/spoke"
)

// Ref is a row of a table: a tuple of references, one per column, computed
// from the row index and the column base pointers at the time the Ref was
// created. A Ref must not be kept across an operation that reallocates or
// shifts rows.
type Ref struct {
	schema *Schema
	bases  []unsafe.Pointer
	row    int
}

func (r Ref) Row() int {
	return r.row
}

func (r Ref) Schema() *Schema {
	return r.schema
}

// Ptr returns a pointer to the value of the given column.
func (r Ref) Ptr(col int) unsafe.Pointer {
	return spoke.ElementAt(r.schema.types[col], r.bases[col], r.row)
}

// Get returns a copy of the value in the given column.
func (r Ref) Get(col int) any {
	return r.schema.types[col].Get(r.Ptr(col))
}

// Set assigns a value of the column type, or a pointer to one, to the given column.
func (r Ref) Set(col int, value any) {
	r.schema.types[col].Set(r.Ptr(col), value)
}

// Values returns a copy of every value of the row.
func (r Ref) Values() []any {
	values := make([]any, len(r.bases))
	for col := range values {
		values[col] = r.Get(col)
	}

	return values
}

// SwapWith swaps each referenced value with the corresponding value of other.
// The rows themselves stay in place. Both refs must share the same schema.
func (r Ref) SwapWith(other Ref) {
	if !r.schema.Matches(other.schema) {
		panic(ErrSchemaMismatch)
	}

	for col, ty := range r.schema.types {
		ty.Swap(r.Ptr(col), other.Ptr(col))
	}
}
