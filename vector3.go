package soa

import (
	"iter"
	"unsafe"
)

// Vector3 is a table with three columns of static types. The embedded Table
// provides the untyped operations.
type Vector3[T0, T1, T2 any] struct {
	*Table
}

func NewVector3[T0, T1, T2 any](opts ...Option) *Vector3[T0, T1, T2] {
	names := columnNames(3, opts)
	schema := MustSchema(Col[T0](names[0]), Col[T1](names[1]), Col[T2](names[2]))

	return &Vector3[T0, T1, T2]{Table: NewTable(schema, opts...)}
}

// PushBack appends a row and returns a reference to it.
func (v *Vector3[T0, T1, T2]) PushBack(v0 T0, v1 T1, v2 T2) Ref3[T0, T1, T2] {
	v.grow(v.len + 1)
	v.len += 1

	ref := v.refAt(v.len - 1)
	*ref.A, *ref.B, *ref.C = v0, v1, v2

	return ref
}

// At returns a reference to the row at idx. It panics if idx is out of range.
func (v *Vector3[T0, T1, T2]) At(idx int) Ref3[T0, T1, T2] {
	v.checkIndex(idx)
	return v.refAt(idx)
}

func (v *Vector3[T0, T1, T2]) Front() Ref3[T0, T1, T2] {
	return v.At(0)
}

func (v *Vector3[T0, T1, T2]) Back() Ref3[T0, T1, T2] {
	return v.At(v.len - 1)
}

// Get returns a copy of the values at row idx.
func (v *Vector3[T0, T1, T2]) Get(idx int) (T0, T1, T2) {
	return v.At(idx).Values()
}

func (v *Vector3[T0, T1, T2]) Set(idx int, v0 T0, v1 T1, v2 T2) {
	v.At(idx).Set(v0, v1, v2)
}

// Columns returns the live rows of each column as slices sharing memory with the vector.
func (v *Vector3[T0, T1, T2]) Columns() ([]T0, []T1, []T2) {
	return ColumnSlice[T0](v.Table, 0), ColumnSlice[T1](v.Table, 1), ColumnSlice[T2](v.Table, 2)
}

func (v *Vector3[T0, T1, T2]) Begin() Iter3[T0, T1, T2] {
	return v.iterAt(0)
}

func (v *Vector3[T0, T1, T2]) End() Iter3[T0, T1, T2] {
	return v.iterAt(v.len)
}

// Insert inserts n copies of the given row before pos.
func (v *Vector3[T0, T1, T2]) Insert(pos Iter3[T0, T1, T2], n int, v0 T0, v1 T1, v2 T2) Iter3[T0, T1, T2] {
	at := v.position(v.untyped(pos))
	if n < 0 {
		panic("negative row count")
	}

	v.insert(at, n, fillRow(unsafe.Pointer(&v0), unsafe.Pointer(&v1), unsafe.Pointer(&v2)))

	return v.iterAt(at)
}

// InsertRange inserts copies of the rows [first, last) before pos.
func (v *Vector3[T0, T1, T2]) InsertRange(pos, first, last Iter3[T0, T1, T2]) Iter3[T0, T1, T2] {
	return v.typed(v.Table.InsertRange(v.untyped(pos), v.untyped(first), v.untyped(last)))
}

func (v *Vector3[T0, T1, T2]) Erase(first, last Iter3[T0, T1, T2]) Iter3[T0, T1, T2] {
	return v.typed(v.Table.Erase(v.untyped(first), v.untyped(last)))
}

func (v *Vector3[T0, T1, T2]) EraseAt(pos Iter3[T0, T1, T2]) Iter3[T0, T1, T2] {
	return v.typed(v.Table.EraseAt(v.untyped(pos)))
}

// EraseUnsorted removes the row at pos by moving the last row into its place.
func (v *Vector3[T0, T1, T2]) EraseUnsorted(pos Iter3[T0, T1, T2]) Iter3[T0, T1, T2] {
	return v.typed(v.Table.EraseUnsorted(v.untyped(pos)))
}

// ResizeWith sets the length to n, new rows hold the given values.
func (v *Vector3[T0, T1, T2]) ResizeWith(n int, v0 T0, v1 T1, v2 T2) {
	if n < 0 {
		panic("negative length")
	}

	v.resize(n, fillRow(unsafe.Pointer(&v0), unsafe.Pointer(&v1), unsafe.Pointer(&v2)))
}

// Assign replaces all rows with n copies of the given row.
func (v *Vector3[T0, T1, T2]) Assign(n int, v0 T0, v1 T1, v2 T2) {
	if n < 0 {
		panic("negative row count")
	}

	v.assign(n, fillRow(unsafe.Pointer(&v0), unsafe.Pointer(&v1), unsafe.Pointer(&v2)))
}

func (v *Vector3[T0, T1, T2]) AssignRange(first, last Iter3[T0, T1, T2]) {
	v.Table.AssignRange(v.untyped(first), v.untyped(last))
}

func (v *Vector3[T0, T1, T2]) All() iter.Seq2[int, Ref3[T0, T1, T2]] {
	return func(yield func(int, Ref3[T0, T1, T2]) bool) {
		for row := range v.len {
			if !yield(row, v.refAt(row)) {
				return
			}
		}
	}
}

// SortFunc sorts the rows stable using the given comparison function.
func (v *Vector3[T0, T1, T2]) SortFunc(cmp func(a, b Ref3[T0, T1, T2]) int) {
	v.Table.SortFunc(func(a, b Ref) int {
		return cmp(v.refOf(a), v.refOf(b))
	})
}

func (v *Vector3[T0, T1, T2]) Clone() *Vector3[T0, T1, T2] {
	return &Vector3[T0, T1, T2]{Table: v.Table.Clone()}
}

func (v *Vector3[T0, T1, T2]) refAt(row int) Ref3[T0, T1, T2] {
	bases := v.storage.Bases

	return Ref3[T0, T1, T2]{
		A: elementAt((*T0)(bases[0]), row),
		B: elementAt((*T1)(bases[1]), row),
		C: elementAt((*T2)(bases[2]), row),
	}
}

func (v *Vector3[T0, T1, T2]) refOf(ref Ref) Ref3[T0, T1, T2] {
	return Ref3[T0, T1, T2]{
		A: (*T0)(ref.Ptr(0)),
		B: (*T1)(ref.Ptr(1)),
		C: (*T2)(ref.Ptr(2)),
	}
}

func (v *Vector3[T0, T1, T2]) iterAt(row int) Iter3[T0, T1, T2] {
	bases := v.storage.Bases

	return Iter3[T0, T1, T2]{
		generation: v.storage.Generation,
		row:        row,
		a:          (*T0)(bases[0]),
		b:          (*T1)(bases[1]),
		c:          (*T2)(bases[2]),
	}
}

// untyped converts a typed iterator into an untyped one.
func (v *Vector3[T0, T1, T2]) untyped(it Iter3[T0, T1, T2]) Iterator {
	return Iterator{schema: v.schema, generation: it.generation, bases: []unsafe.Pointer{unsafe.Pointer(it.a), unsafe.Pointer(it.b), unsafe.Pointer(it.c)}, row: it.row}
}

func (v *Vector3[T0, T1, T2]) typed(it Iterator) Iter3[T0, T1, T2] {
	return Iter3[T0, T1, T2]{
		generation: it.generation,
		row:        it.row,
		a:          (*T0)(it.bases[0]),
		b:          (*T1)(it.bases[1]),
		c:          (*T2)(it.bases[2]),
	}
}

// Ref3 references the values of one row, one pointer per column.
type Ref3[T0, T1, T2 any] struct {
	A *T0
	B *T1
	C *T2
}

func (r Ref3[T0, T1, T2]) Values() (T0, T1, T2) {
	return *r.A, *r.B, *r.C
}

func (r Ref3[T0, T1, T2]) Set(v0 T0, v1 T1, v2 T2) {
	*r.A, *r.B, *r.C = v0, v1, v2
}

// SwapWith swaps each referenced value with the corresponding value of other.
func (r Ref3[T0, T1, T2]) SwapWith(other Ref3[T0, T1, T2]) {
	swapValues(r.A, other.A)
	swapValues(r.B, other.B)
	swapValues(r.C, other.C)
}

// Iter3 is a random access iterator over a Vector3. It holds the row
// and a snapshot of the column base pointers.
type Iter3[T0, T1, T2 any] struct {
	generation uint64
	row        int
	a          *T0
	b          *T1
	c          *T2
}

func (it Iter3[T0, T1, T2]) Row() int {
	return it.row
}

func (it Iter3[T0, T1, T2]) Add(n int) Iter3[T0, T1, T2] {
	it.row += n
	return it
}

func (it Iter3[T0, T1, T2]) Sub(n int) Iter3[T0, T1, T2] {
	it.row -= n
	return it
}

func (it Iter3[T0, T1, T2]) Next() Iter3[T0, T1, T2] {
	return it.Add(1)
}

func (it Iter3[T0, T1, T2]) Prev() Iter3[T0, T1, T2] {
	return it.Sub(1)
}

func (it Iter3[T0, T1, T2]) Distance(other Iter3[T0, T1, T2]) int {
	return it.row - other.row
}

func (it Iter3[T0, T1, T2]) Equal(other Iter3[T0, T1, T2]) bool {
	return it.row == other.row && it.generation == other.generation
}

func (it Iter3[T0, T1, T2]) Less(other Iter3[T0, T1, T2]) bool {
	return it.row < other.row
}

func (it Iter3[T0, T1, T2]) Ref() Ref3[T0, T1, T2] {
	return Ref3[T0, T1, T2]{
		A: elementAt(it.a, it.row),
		B: elementAt(it.b, it.row),
		C: elementAt(it.c, it.row),
	}
}

// Const converts the iterator into a read only iterator.
func (it Iter3[T0, T1, T2]) Const() ConstIter3[T0, T1, T2] {
	return ConstIter3[T0, T1, T2]{generation: it.generation, row: it.row, a: it.a, b: it.b, c: it.c}
}

// ConstIter3 is a read only iterator over a Vector3.
type ConstIter3[T0, T1, T2 any] struct {
	generation uint64
	row        int
	a          *T0
	b          *T1
	c          *T2
}

func (it ConstIter3[T0, T1, T2]) Row() int {
	return it.row
}

func (it ConstIter3[T0, T1, T2]) Add(n int) ConstIter3[T0, T1, T2] {
	it.row += n
	return it
}

func (it ConstIter3[T0, T1, T2]) Sub(n int) ConstIter3[T0, T1, T2] {
	it.row -= n
	return it
}

func (it ConstIter3[T0, T1, T2]) Next() ConstIter3[T0, T1, T2] {
	return it.Add(1)
}

func (it ConstIter3[T0, T1, T2]) Prev() ConstIter3[T0, T1, T2] {
	return it.Sub(1)
}

func (it ConstIter3[T0, T1, T2]) Distance(other ConstIter3[T0, T1, T2]) int {
	return it.row - other.row
}

func (it ConstIter3[T0, T1, T2]) Equal(other ConstIter3[T0, T1, T2]) bool {
	return it.row == other.row && it.generation == other.generation
}

func (it ConstIter3[T0, T1, T2]) Less(other ConstIter3[T0, T1, T2]) bool {
	return it.row < other.row
}

// Get returns a copy of the values in the row of the iterator.
func (it ConstIter3[T0, T1, T2]) Get() (T0, T1, T2) {
	return *elementAt(it.a, it.row), *elementAt(it.b, it.row), *elementAt(it.c, it.row)
}
