package soa

import (
	"iter"
	"unsafe"
)

// Vector2 is a table with two columns of static types. The embedded Table
// provides the untyped operations.
type Vector2[T0, T1 any] struct {
	*Table
}

func NewVector2[T0, T1 any](opts ...Option) *Vector2[T0, T1] {
	names := columnNames(2, opts)
	schema := MustSchema(Col[T0](names[0]), Col[T1](names[1]))

	return &Vector2[T0, T1]{Table: NewTable(schema, opts...)}
}

// PushBack appends a row and returns a reference to it.
func (v *Vector2[T0, T1]) PushBack(v0 T0, v1 T1) Ref2[T0, T1] {
	v.grow(v.len + 1)
	v.len += 1

	ref := v.refAt(v.len - 1)
	*ref.A, *ref.B = v0, v1

	return ref
}

// At returns a reference to the row at idx. It panics if idx is out of range.
func (v *Vector2[T0, T1]) At(idx int) Ref2[T0, T1] {
	v.checkIndex(idx)
	return v.refAt(idx)
}

func (v *Vector2[T0, T1]) Front() Ref2[T0, T1] {
	return v.At(0)
}

func (v *Vector2[T0, T1]) Back() Ref2[T0, T1] {
	return v.At(v.len - 1)
}

// Get returns a copy of the values at row idx.
func (v *Vector2[T0, T1]) Get(idx int) (T0, T1) {
	return v.At(idx).Values()
}

func (v *Vector2[T0, T1]) Set(idx int, v0 T0, v1 T1) {
	v.At(idx).Set(v0, v1)
}

// Columns returns the live rows of each column as slices sharing memory with the vector.
func (v *Vector2[T0, T1]) Columns() ([]T0, []T1) {
	return ColumnSlice[T0](v.Table, 0), ColumnSlice[T1](v.Table, 1)
}

func (v *Vector2[T0, T1]) Begin() Iter2[T0, T1] {
	return v.iterAt(0)
}

func (v *Vector2[T0, T1]) End() Iter2[T0, T1] {
	return v.iterAt(v.len)
}

// Insert inserts n copies of the given row before pos.
func (v *Vector2[T0, T1]) Insert(pos Iter2[T0, T1], n int, v0 T0, v1 T1) Iter2[T0, T1] {
	at := v.position(v.untyped(pos))
	if n < 0 {
		panic("negative row count")
	}

	v.insert(at, n, fillRow(unsafe.Pointer(&v0), unsafe.Pointer(&v1)))

	return v.iterAt(at)
}

// InsertRange inserts copies of the rows [first, last) before pos.
func (v *Vector2[T0, T1]) InsertRange(pos, first, last Iter2[T0, T1]) Iter2[T0, T1] {
	return v.typed(v.Table.InsertRange(v.untyped(pos), v.untyped(first), v.untyped(last)))
}

func (v *Vector2[T0, T1]) Erase(first, last Iter2[T0, T1]) Iter2[T0, T1] {
	return v.typed(v.Table.Erase(v.untyped(first), v.untyped(last)))
}

func (v *Vector2[T0, T1]) EraseAt(pos Iter2[T0, T1]) Iter2[T0, T1] {
	return v.typed(v.Table.EraseAt(v.untyped(pos)))
}

// EraseUnsorted removes the row at pos by moving the last row into its place.
func (v *Vector2[T0, T1]) EraseUnsorted(pos Iter2[T0, T1]) Iter2[T0, T1] {
	return v.typed(v.Table.EraseUnsorted(v.untyped(pos)))
}

// ResizeWith sets the length to n, new rows hold the given values.
func (v *Vector2[T0, T1]) ResizeWith(n int, v0 T0, v1 T1) {
	if n < 0 {
		panic("negative length")
	}

	v.resize(n, fillRow(unsafe.Pointer(&v0), unsafe.Pointer(&v1)))
}

// Assign replaces all rows with n copies of the given row.
func (v *Vector2[T0, T1]) Assign(n int, v0 T0, v1 T1) {
	if n < 0 {
		panic("negative row count")
	}

	v.assign(n, fillRow(unsafe.Pointer(&v0), unsafe.Pointer(&v1)))
}

func (v *Vector2[T0, T1]) AssignRange(first, last Iter2[T0, T1]) {
	v.Table.AssignRange(v.untyped(first), v.untyped(last))
}

func (v *Vector2[T0, T1]) All() iter.Seq2[int, Ref2[T0, T1]] {
	return func(yield func(int, Ref2[T0, T1]) bool) {
		for row := range v.len {
			if !yield(row, v.refAt(row)) {
				return
			}
		}
	}
}

// SortFunc sorts the rows stable using the given comparison function.
func (v *Vector2[T0, T1]) SortFunc(cmp func(a, b Ref2[T0, T1]) int) {
	v.Table.SortFunc(func(a, b Ref) int {
		return cmp(v.refOf(a), v.refOf(b))
	})
}

func (v *Vector2[T0, T1]) Clone() *Vector2[T0, T1] {
	return &Vector2[T0, T1]{Table: v.Table.Clone()}
}

func (v *Vector2[T0, T1]) refAt(row int) Ref2[T0, T1] {
	bases := v.storage.Bases

	return Ref2[T0, T1]{
		A: elementAt((*T0)(bases[0]), row),
		B: elementAt((*T1)(bases[1]), row),
	}
}

func (v *Vector2[T0, T1]) refOf(ref Ref) Ref2[T0, T1] {
	return Ref2[T0, T1]{
		A: (*T0)(ref.Ptr(0)),
		B: (*T1)(ref.Ptr(1)),
	}
}

func (v *Vector2[T0, T1]) iterAt(row int) Iter2[T0, T1] {
	bases := v.storage.Bases

	return Iter2[T0, T1]{
		generation: v.storage.Generation,
		row:        row,
		a:          (*T0)(bases[0]),
		b:          (*T1)(bases[1]),
	}
}

// untyped converts a typed iterator into an untyped one.
func (v *Vector2[T0, T1]) untyped(it Iter2[T0, T1]) Iterator {
	return Iterator{schema: v.schema, generation: it.generation, bases: []unsafe.Pointer{unsafe.Pointer(it.a), unsafe.Pointer(it.b)}, row: it.row}
}

func (v *Vector2[T0, T1]) typed(it Iterator) Iter2[T0, T1] {
	return Iter2[T0, T1]{
		generation: it.generation,
		row:        it.row,
		a:          (*T0)(it.bases[0]),
		b:          (*T1)(it.bases[1]),
	}
}

// Ref2 references the values of one row, one pointer per column.
type Ref2[T0, T1 any] struct {
	A *T0
	B *T1
}

func (r Ref2[T0, T1]) Values() (T0, T1) {
	return *r.A, *r.B
}

func (r Ref2[T0, T1]) Set(v0 T0, v1 T1) {
	*r.A, *r.B = v0, v1
}

// SwapWith swaps each referenced value with the corresponding value of other.
func (r Ref2[T0, T1]) SwapWith(other Ref2[T0, T1]) {
	swapValues(r.A, other.A)
	swapValues(r.B, other.B)
}

// Iter2 is a random access iterator over a Vector2. It holds the row
// and a snapshot of the column base pointers.
type Iter2[T0, T1 any] struct {
	generation uint64
	row        int
	a          *T0
	b          *T1
}

func (it Iter2[T0, T1]) Row() int {
	return it.row
}

func (it Iter2[T0, T1]) Add(n int) Iter2[T0, T1] {
	it.row += n
	return it
}

func (it Iter2[T0, T1]) Sub(n int) Iter2[T0, T1] {
	it.row -= n
	return it
}

func (it Iter2[T0, T1]) Next() Iter2[T0, T1] {
	return it.Add(1)
}

func (it Iter2[T0, T1]) Prev() Iter2[T0, T1] {
	return it.Sub(1)
}

func (it Iter2[T0, T1]) Distance(other Iter2[T0, T1]) int {
	return it.row - other.row
}

func (it Iter2[T0, T1]) Equal(other Iter2[T0, T1]) bool {
	return it.row == other.row && it.generation == other.generation
}

func (it Iter2[T0, T1]) Less(other Iter2[T0, T1]) bool {
	return it.row < other.row
}

func (it Iter2[T0, T1]) Ref() Ref2[T0, T1] {
	return Ref2[T0, T1]{
		A: elementAt(it.a, it.row),
		B: elementAt(it.b, it.row),
	}
}

// Const converts the iterator into a read only iterator.
func (it Iter2[T0, T1]) Const() ConstIter2[T0, T1] {
	return ConstIter2[T0, T1]{generation: it.generation, row: it.row, a: it.a, b: it.b}
}

// ConstIter2 is a read only iterator over a Vector2.
type ConstIter2[T0, T1 any] struct {
	generation uint64
	row        int
	a          *T0
	b          *T1
}

func (it ConstIter2[T0, T1]) Row() int {
	return it.row
}

func (it ConstIter2[T0, T1]) Add(n int) ConstIter2[T0, T1] {
	it.row += n
	return it
}

func (it ConstIter2[T0, T1]) Sub(n int) ConstIter2[T0, T1] {
	it.row -= n
	return it
}

func (it ConstIter2[T0, T1]) Next() ConstIter2[T0, T1] {
	return it.Add(1)
}

func (it ConstIter2[T0, T1]) Prev() ConstIter2[T0, T1] {
	return it.Sub(1)
}

func (it ConstIter2[T0, T1]) Distance(other ConstIter2[T0, T1]) int {
	return it.row - other.row
}

func (it ConstIter2[T0, T1]) Equal(other ConstIter2[T0, T1]) bool {
	return it.row == other.row && it.generation == other.generation
}

func (it ConstIter2[T0, T1]) Less(other ConstIter2[T0, T1]) bool {
	return it.row < other.row
}

// Get returns a copy of the values in the row of the iterator.
func (it ConstIter2[T0, T1]) Get() (T0, T1) {
	return *elementAt(it.a, it.row), *elementAt(it.b, it.row)
}
