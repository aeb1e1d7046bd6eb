package soa

import (
	"iter"
	"unsafe"
)

// Vector1 is a table with one column of static type. The embedded Table
// provides the untyped operations.
type Vector1[T0 any] struct {
	*Table
}

func NewVector1[T0 any](opts ...Option) *Vector1[T0] {
	names := columnNames(1, opts)
	schema := MustSchema(Col[T0](names[0]))

	return &Vector1[T0]{Table: NewTable(schema, opts...)}
}

// PushBack appends a row and returns a reference to it.
func (v *Vector1[T0]) PushBack(v0 T0) Ref1[T0] {
	v.grow(v.len + 1)
	v.len += 1

	ref := v.refAt(v.len - 1)
	*ref.A = v0

	return ref
}

// At returns a reference to the row at idx. It panics if idx is out of range.
func (v *Vector1[T0]) At(idx int) Ref1[T0] {
	v.checkIndex(idx)
	return v.refAt(idx)
}

func (v *Vector1[T0]) Front() Ref1[T0] {
	return v.At(0)
}

func (v *Vector1[T0]) Back() Ref1[T0] {
	return v.At(v.len - 1)
}

// Get returns a copy of the values at row idx.
func (v *Vector1[T0]) Get(idx int) T0 {
	return v.At(idx).Values()
}

func (v *Vector1[T0]) Set(idx int, v0 T0) {
	v.At(idx).Set(v0)
}

// Values returns the live rows as a slice sharing memory with the vector.
func (v *Vector1[T0]) Values() []T0 {
	return ColumnSlice[T0](v.Table, 0)
}

func (v *Vector1[T0]) Begin() Iter1[T0] {
	return v.iterAt(0)
}

func (v *Vector1[T0]) End() Iter1[T0] {
	return v.iterAt(v.len)
}

// Insert inserts n copies of the given row before pos.
func (v *Vector1[T0]) Insert(pos Iter1[T0], n int, v0 T0) Iter1[T0] {
	at := v.position(v.untyped(pos))
	if n < 0 {
		panic("negative row count")
	}

	v.insert(at, n, fillRow(unsafe.Pointer(&v0)))

	return v.iterAt(at)
}

// InsertRange inserts copies of the rows [first, last) before pos.
func (v *Vector1[T0]) InsertRange(pos, first, last Iter1[T0]) Iter1[T0] {
	return v.typed(v.Table.InsertRange(v.untyped(pos), v.untyped(first), v.untyped(last)))
}

func (v *Vector1[T0]) Erase(first, last Iter1[T0]) Iter1[T0] {
	return v.typed(v.Table.Erase(v.untyped(first), v.untyped(last)))
}

func (v *Vector1[T0]) EraseAt(pos Iter1[T0]) Iter1[T0] {
	return v.typed(v.Table.EraseAt(v.untyped(pos)))
}

// EraseUnsorted removes the row at pos by moving the last row into its place.
func (v *Vector1[T0]) EraseUnsorted(pos Iter1[T0]) Iter1[T0] {
	return v.typed(v.Table.EraseUnsorted(v.untyped(pos)))
}

// ResizeWith sets the length to n, new rows hold the given values.
func (v *Vector1[T0]) ResizeWith(n int, v0 T0) {
	if n < 0 {
		panic("negative length")
	}

	v.resize(n, fillRow(unsafe.Pointer(&v0)))
}

// Assign replaces all rows with n copies of the given row.
func (v *Vector1[T0]) Assign(n int, v0 T0) {
	if n < 0 {
		panic("negative row count")
	}

	v.assign(n, fillRow(unsafe.Pointer(&v0)))
}

func (v *Vector1[T0]) AssignRange(first, last Iter1[T0]) {
	v.Table.AssignRange(v.untyped(first), v.untyped(last))
}

func (v *Vector1[T0]) All() iter.Seq2[int, Ref1[T0]] {
	return func(yield func(int, Ref1[T0]) bool) {
		for row := range v.len {
			if !yield(row, v.refAt(row)) {
				return
			}
		}
	}
}

// SortFunc sorts the rows stable using the given comparison function.
func (v *Vector1[T0]) SortFunc(cmp func(a, b Ref1[T0]) int) {
	v.Table.SortFunc(func(a, b Ref) int {
		return cmp(v.refOf(a), v.refOf(b))
	})
}

func (v *Vector1[T0]) Clone() *Vector1[T0] {
	return &Vector1[T0]{Table: v.Table.Clone()}
}

func (v *Vector1[T0]) refAt(row int) Ref1[T0] {
	bases := v.storage.Bases

	return Ref1[T0]{
		A: elementAt((*T0)(bases[0]), row),
	}
}

func (v *Vector1[T0]) refOf(ref Ref) Ref1[T0] {
	return Ref1[T0]{
		A: (*T0)(ref.Ptr(0)),
	}
}

func (v *Vector1[T0]) iterAt(row int) Iter1[T0] {
	bases := v.storage.Bases

	return Iter1[T0]{
		generation: v.storage.Generation,
		row:        row,
		a:          (*T0)(bases[0]),
	}
}

// untyped converts a typed iterator into an untyped one.
func (v *Vector1[T0]) untyped(it Iter1[T0]) Iterator {
	return Iterator{schema: v.schema, generation: it.generation, bases: []unsafe.Pointer{unsafe.Pointer(it.a)}, row: it.row}
}

func (v *Vector1[T0]) typed(it Iterator) Iter1[T0] {
	return Iter1[T0]{
		generation: it.generation,
		row:        it.row,
		a:          (*T0)(it.bases[0]),
	}
}

// Ref1 references the values of one row, one pointer per column.
type Ref1[T0 any] struct {
	A *T0
}

func (r Ref1[T0]) Values() T0 {
	return *r.A
}

func (r Ref1[T0]) Set(v0 T0) {
	*r.A = v0
}

// SwapWith swaps each referenced value with the corresponding value of other.
func (r Ref1[T0]) SwapWith(other Ref1[T0]) {
	swapValues(r.A, other.A)
}

// Iter1 is a random access iterator over a Vector1. It holds the row
// and a snapshot of the column base pointers.
type Iter1[T0 any] struct {
	generation uint64
	row        int
	a          *T0
}

func (it Iter1[T0]) Row() int {
	return it.row
}

func (it Iter1[T0]) Add(n int) Iter1[T0] {
	it.row += n
	return it
}

func (it Iter1[T0]) Sub(n int) Iter1[T0] {
	it.row -= n
	return it
}

func (it Iter1[T0]) Next() Iter1[T0] {
	return it.Add(1)
}

func (it Iter1[T0]) Prev() Iter1[T0] {
	return it.Sub(1)
}

func (it Iter1[T0]) Distance(other Iter1[T0]) int {
	return it.row - other.row
}

func (it Iter1[T0]) Equal(other Iter1[T0]) bool {
	return it.row == other.row && it.generation == other.generation
}

func (it Iter1[T0]) Less(other Iter1[T0]) bool {
	return it.row < other.row
}

func (it Iter1[T0]) Ref() Ref1[T0] {
	return Ref1[T0]{
		A: elementAt(it.a, it.row),
	}
}

// Const converts the iterator into a read only iterator.
func (it Iter1[T0]) Const() ConstIter1[T0] {
	return ConstIter1[T0]{generation: it.generation, row: it.row, a: it.a}
}

// ConstIter1 is a read only iterator over a Vector1.
type ConstIter1[T0 any] struct {
	generation uint64
	row        int
	a          *T0
}

func (it ConstIter1[T0]) Row() int {
	return it.row
}

func (it ConstIter1[T0]) Add(n int) ConstIter1[T0] {
	it.row += n
	return it
}

func (it ConstIter1[T0]) Sub(n int) ConstIter1[T0] {
	it.row -= n
	return it
}

func (it ConstIter1[T0]) Next() ConstIter1[T0] {
	return it.Add(1)
}

func (it ConstIter1[T0]) Prev() ConstIter1[T0] {
	return it.Sub(1)
}

func (it ConstIter1[T0]) Distance(other ConstIter1[T0]) int {
	return it.row - other.row
}

func (it ConstIter1[T0]) Equal(other ConstIter1[T0]) bool {
	return it.row == other.row && it.generation == other.generation
}

func (it ConstIter1[T0]) Less(other ConstIter1[T0]) bool {
	return it.row < other.row
}

// Get returns a copy of the values in the row of the iterator.
func (it ConstIter1[T0]) Get() T0 {
	return *elementAt(it.a, it.row)
}
