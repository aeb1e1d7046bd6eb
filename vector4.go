package soa

import (
	"iter"
	"unsafe"
)

// Vector4 is a table with four columns of static types. The embedded Table
// provides the untyped operations.
type Vector4[T0, T1, T2, T3 any] struct {
	*Table
}

func NewVector4[T0, T1, T2, T3 any](opts ...Option) *Vector4[T0, T1, T2, T3] {
	names := columnNames(4, opts)
	schema := MustSchema(Col[T0](names[0]), Col[T1](names[1]), Col[T2](names[2]), Col[T3](names[3]))

	return &Vector4[T0, T1, T2, T3]{Table: NewTable(schema, opts...)}
}

// PushBack appends a row and returns a reference to it.
func (v *Vector4[T0, T1, T2, T3]) PushBack(v0 T0, v1 T1, v2 T2, v3 T3) Ref4[T0, T1, T2, T3] {
	v.grow(v.len + 1)
	v.len += 1

	ref := v.refAt(v.len - 1)
	*ref.A, *ref.B, *ref.C, *ref.D = v0, v1, v2, v3

	return ref
}

// At returns a reference to the row at idx. It panics if idx is out of range.
func (v *Vector4[T0, T1, T2, T3]) At(idx int) Ref4[T0, T1, T2, T3] {
	v.checkIndex(idx)
	return v.refAt(idx)
}

func (v *Vector4[T0, T1, T2, T3]) Front() Ref4[T0, T1, T2, T3] {
	return v.At(0)
}

func (v *Vector4[T0, T1, T2, T3]) Back() Ref4[T0, T1, T2, T3] {
	return v.At(v.len - 1)
}

// Get returns a copy of the values at row idx.
func (v *Vector4[T0, T1, T2, T3]) Get(idx int) (T0, T1, T2, T3) {
	return v.At(idx).Values()
}

func (v *Vector4[T0, T1, T2, T3]) Set(idx int, v0 T0, v1 T1, v2 T2, v3 T3) {
	v.At(idx).Set(v0, v1, v2, v3)
}

// Columns returns the live rows of each column as slices sharing memory with the vector.
func (v *Vector4[T0, T1, T2, T3]) Columns() ([]T0, []T1, []T2, []T3) {
	return ColumnSlice[T0](v.Table, 0), ColumnSlice[T1](v.Table, 1), ColumnSlice[T2](v.Table, 2), ColumnSlice[T3](v.Table, 3)
}

func (v *Vector4[T0, T1, T2, T3]) Begin() Iter4[T0, T1, T2, T3] {
	return v.iterAt(0)
}

func (v *Vector4[T0, T1, T2, T3]) End() Iter4[T0, T1, T2, T3] {
	return v.iterAt(v.len)
}

// Insert inserts n copies of the given row before pos.
func (v *Vector4[T0, T1, T2, T3]) Insert(pos Iter4[T0, T1, T2, T3], n int, v0 T0, v1 T1, v2 T2, v3 T3) Iter4[T0, T1, T2, T3] {
	at := v.position(v.untyped(pos))
	if n < 0 {
		panic("negative row count")
	}

	v.insert(at, n, fillRow(unsafe.Pointer(&v0), unsafe.Pointer(&v1), unsafe.Pointer(&v2), unsafe.Pointer(&v3)))

	return v.iterAt(at)
}

// InsertRange inserts copies of the rows [first, last) before pos.
func (v *Vector4[T0, T1, T2, T3]) InsertRange(pos, first, last Iter4[T0, T1, T2, T3]) Iter4[T0, T1, T2, T3] {
	return v.typed(v.Table.InsertRange(v.untyped(pos), v.untyped(first), v.untyped(last)))
}

func (v *Vector4[T0, T1, T2, T3]) Erase(first, last Iter4[T0, T1, T2, T3]) Iter4[T0, T1, T2, T3] {
	return v.typed(v.Table.Erase(v.untyped(first), v.untyped(last)))
}

func (v *Vector4[T0, T1, T2, T3]) EraseAt(pos Iter4[T0, T1, T2, T3]) Iter4[T0, T1, T2, T3] {
	return v.typed(v.Table.EraseAt(v.untyped(pos)))
}

// EraseUnsorted removes the row at pos by moving the last row into its place.
func (v *Vector4[T0, T1, T2, T3]) EraseUnsorted(pos Iter4[T0, T1, T2, T3]) Iter4[T0, T1, T2, T3] {
	return v.typed(v.Table.EraseUnsorted(v.untyped(pos)))
}

// ResizeWith sets the length to n, new rows hold the given values.
func (v *Vector4[T0, T1, T2, T3]) ResizeWith(n int, v0 T0, v1 T1, v2 T2, v3 T3) {
	if n < 0 {
		panic("negative length")
	}

	v.resize(n, fillRow(unsafe.Pointer(&v0), unsafe.Pointer(&v1), unsafe.Pointer(&v2), unsafe.Pointer(&v3)))
}

// Assign replaces all rows with n copies of the given row.
func (v *Vector4[T0, T1, T2, T3]) Assign(n int, v0 T0, v1 T1, v2 T2, v3 T3) {
	if n < 0 {
		panic("negative row count")
	}

	v.assign(n, fillRow(unsafe.Pointer(&v0), unsafe.Pointer(&v1), unsafe.Pointer(&v2), unsafe.Pointer(&v3)))
}

func (v *Vector4[T0, T1, T2, T3]) AssignRange(first, last Iter4[T0, T1, T2, T3]) {
	v.Table.AssignRange(v.untyped(first), v.untyped(last))
}

func (v *Vector4[T0, T1, T2, T3]) All() iter.Seq2[int, Ref4[T0, T1, T2, T3]] {
	return func(yield func(int, Ref4[T0, T1, T2, T3]) bool) {
		for row := range v.len {
			if !yield(row, v.refAt(row)) {
				return
			}
		}
	}
}

// SortFunc sorts the rows stable using the given comparison function.
func (v *Vector4[T0, T1, T2, T3]) SortFunc(cmp func(a, b Ref4[T0, T1, T2, T3]) int) {
	v.Table.SortFunc(func(a, b Ref) int {
		return cmp(v.refOf(a), v.refOf(b))
	})
}

func (v *Vector4[T0, T1, T2, T3]) Clone() *Vector4[T0, T1, T2, T3] {
	return &Vector4[T0, T1, T2, T3]{Table: v.Table.Clone()}
}

func (v *Vector4[T0, T1, T2, T3]) refAt(row int) Ref4[T0, T1, T2, T3] {
	bases := v.storage.Bases

	return Ref4[T0, T1, T2, T3]{
		A: elementAt((*T0)(bases[0]), row),
		B: elementAt((*T1)(bases[1]), row),
		C: elementAt((*T2)(bases[2]), row),
		D: elementAt((*T3)(bases[3]), row),
	}
}

func (v *Vector4[T0, T1, T2, T3]) refOf(ref Ref) Ref4[T0, T1, T2, T3] {
	return Ref4[T0, T1, T2, T3]{
		A: (*T0)(ref.Ptr(0)),
		B: (*T1)(ref.Ptr(1)),
		C: (*T2)(ref.Ptr(2)),
		D: (*T3)(ref.Ptr(3)),
	}
}

func (v *Vector4[T0, T1, T2, T3]) iterAt(row int) Iter4[T0, T1, T2, T3] {
	bases := v.storage.Bases

	return Iter4[T0, T1, T2, T3]{
		generation: v.storage.Generation,
		row:        row,
		a:          (*T0)(bases[0]),
		b:          (*T1)(bases[1]),
		c:          (*T2)(bases[2]),
		d:          (*T3)(bases[3]),
	}
}

// untyped converts a typed iterator into an untyped one.
func (v *Vector4[T0, T1, T2, T3]) untyped(it Iter4[T0, T1, T2, T3]) Iterator {
	return Iterator{schema: v.schema, generation: it.generation, bases: []unsafe.Pointer{unsafe.Pointer(it.a), unsafe.Pointer(it.b), unsafe.Pointer(it.c), unsafe.Pointer(it.d)}, row: it.row}
}

func (v *Vector4[T0, T1, T2, T3]) typed(it Iterator) Iter4[T0, T1, T2, T3] {
	return Iter4[T0, T1, T2, T3]{
		generation: it.generation,
		row:        it.row,
		a:          (*T0)(it.bases[0]),
		b:          (*T1)(it.bases[1]),
		c:          (*T2)(it.bases[2]),
		d:          (*T3)(it.bases[3]),
	}
}

// Ref4 references the values of one row, one pointer per column.
type Ref4[T0, T1, T2, T3 any] struct {
	A *T0
	B *T1
	C *T2
	D *T3
}

func (r Ref4[T0, T1, T2, T3]) Values() (T0, T1, T2, T3) {
	return *r.A, *r.B, *r.C, *r.D
}

func (r Ref4[T0, T1, T2, T3]) Set(v0 T0, v1 T1, v2 T2, v3 T3) {
	*r.A, *r.B, *r.C, *r.D = v0, v1, v2, v3
}

// SwapWith swaps each referenced value with the corresponding value of other.
func (r Ref4[T0, T1, T2, T3]) SwapWith(other Ref4[T0, T1, T2, T3]) {
	swapValues(r.A, other.A)
	swapValues(r.B, other.B)
	swapValues(r.C, other.C)
	swapValues(r.D, other.D)
}

// Iter4 is a random access iterator over a Vector4. It holds the row
// and a snapshot of the column base pointers.
type Iter4[T0, T1, T2, T3 any] struct {
	generation uint64
	row        int
	a          *T0
	b          *T1
	c          *T2
	d          *T3
}

func (it Iter4[T0, T1, T2, T3]) Row() int {
	return it.row
}

func (it Iter4[T0, T1, T2, T3]) Add(n int) Iter4[T0, T1, T2, T3] {
	it.row += n
	return it
}

func (it Iter4[T0, T1, T2, T3]) Sub(n int) Iter4[T0, T1, T2, T3] {
	it.row -= n
	return it
}

func (it Iter4[T0, T1, T2, T3]) Next() Iter4[T0, T1, T2, T3] {
	return it.Add(1)
}

func (it Iter4[T0, T1, T2, T3]) Prev() Iter4[T0, T1, T2, T3] {
	return it.Sub(1)
}

func (it Iter4[T0, T1, T2, T3]) Distance(other Iter4[T0, T1, T2, T3]) int {
	return it.row - other.row
}

func (it Iter4[T0, T1, T2, T3]) Equal(other Iter4[T0, T1, T2, T3]) bool {
	return it.row == other.row && it.generation == other.generation
}

func (it Iter4[T0, T1, T2, T3]) Less(other Iter4[T0, T1, T2, T3]) bool {
	return it.row < other.row
}

func (it Iter4[T0, T1, T2, T3]) Ref() Ref4[T0, T1, T2, T3] {
	return Ref4[T0, T1, T2, T3]{
		A: elementAt(it.a, it.row),
		B: elementAt(it.b, it.row),
		C: elementAt(it.c, it.row),
		D: elementAt(it.d, it.row),
	}
}

// Const converts the iterator into a read only iterator.
func (it Iter4[T0, T1, T2, T3]) Const() ConstIter4[T0, T1, T2, T3] {
	return ConstIter4[T0, T1, T2, T3]{generation: it.generation, row: it.row, a: it.a, b: it.b, c: it.c, d: it.d}
}

// ConstIter4 is a read only iterator over a Vector4.
type ConstIter4[T0, T1, T2, T3 any] struct {
	generation uint64
	row        int
	a          *T0
	b          *T1
	c          *T2
	d          *T3
}

func (it ConstIter4[T0, T1, T2, T3]) Row() int {
	return it.row
}

func (it ConstIter4[T0, T1, T2, T3]) Add(n int) ConstIter4[T0, T1, T2, T3] {
	it.row += n
	return it
}

func (it ConstIter4[T0, T1, T2, T3]) Sub(n int) ConstIter4[T0, T1, T2, T3] {
	it.row -= n
	return it
}

func (it ConstIter4[T0, T1, T2, T3]) Next() ConstIter4[T0, T1, T2, T3] {
	return it.Add(1)
}

func (it ConstIter4[T0, T1, T2, T3]) Prev() ConstIter4[T0, T1, T2, T3] {
	return it.Sub(1)
}

func (it ConstIter4[T0, T1, T2, T3]) Distance(other ConstIter4[T0, T1, T2, T3]) int {
	return it.row - other.row
}

func (it ConstIter4[T0, T1, T2, T3]) Equal(other ConstIter4[T0, T1, T2, T3]) bool {
	return it.row == other.row && it.generation == other.generation
}

func (it ConstIter4[T0, T1, T2, T3]) Less(other ConstIter4[T0, T1, T2, T3]) bool {
	return it.row < other.row
}

// Get returns a copy of the values in the row of the iterator.
func (it ConstIter4[T0, T1, T2, T3]) Get() (T0, T1, T2, T3) {
	return *elementAt(it.a, it.row), *elementAt(it.b, it.row), *elementAt(it.c, it.row), *elementAt(it.d, it.row)
}
