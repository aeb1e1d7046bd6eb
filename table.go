package soa

import (
	"fmt"
	"iter"
	"slices"
	"unsafe"

	"github.com/oliverbestmann/soa/internal/assert"
	"github.com/oliverbestmann/soa/spoke"
	"go.uber.org/zap"
)

// Table stores rows of a fixed Schema. Each column is laid out contiguously,
// all columns share one allocation.
//
// Growing the table invalidates all iterators, refs, pointers and slices
// previously taken from it. A Table must not be copied, use Clone instead.
type Table struct {
	noCopy noCopy

	schema *Schema
	types  []*spoke.ColumnType

	storage spoke.Storage
	len     int

	logger   *zap.Logger
	maxBytes uintptr
}

func NewTable(schema *Schema, opts ...Option) *Table {
	options := applyOptions(opts)

	t := &Table{}
	t.init(schema, options)

	if options.capacity > 0 {
		t.reallocate(options.capacity)
	}

	return t
}

func (t *Table) init(schema *Schema, options options) {
	logger := options.logger
	if logger == nil {
		logger = Logger()
	}

	t.schema = schema
	t.types = schema.types
	t.storage = spoke.Allocate(schema.types, 0, options.maxBytes)
	t.logger = logger
	t.maxBytes = options.maxBytes
}

func (t *Table) Schema() *Schema {
	return t.schema
}

func (t *Table) Len() int {
	return t.len
}

func (t *Table) Cap() int {
	return t.storage.Capacity()
}

func (t *Table) Empty() bool {
	return t.len == 0
}

// Reserve grows the capacity to at least n rows. The length is not changed.
func (t *Table) Reserve(n int) {
	if n > t.Cap() {
		t.reallocate(n)
	}
}

// ShrinkToFit reallocates the table to have a capacity equal to its length.
func (t *Table) ShrinkToFit() {
	if t.Cap() != t.len {
		t.reallocate(t.len)
	}
}

// Resize sets the length of the table to n. New rows hold zero values.
func (t *Table) Resize(n int) {
	t.resize(n, fillSource{})
}

// ResizeWith sets the length of the table to n, new rows are initialized with the given values.
func (t *Table) ResizeWith(n int, values ...any) {
	t.resize(n, t.stageValues(values))
}

func (t *Table) resize(n int, src rowSource) {
	if n < 0 {
		panic(fmt.Sprintf("negative length %d", n))
	}

	if n < t.len {
		t.clearRows(n, t.len)
		t.len = n
		return
	}

	if n == t.len {
		return
	}

	t.grow(n)

	for col, ty := range t.types {
		src.copyTo(col, ty, t.elem(col, t.len), 0, n-t.len)
	}

	t.len = n
}

// Clear removes all rows but keeps the capacity.
func (t *Table) Clear() {
	t.clearRows(0, t.len)
	t.len = 0
}

// PushBack appends a row of zero values and returns a reference to it.
func (t *Table) PushBack() Ref {
	t.grow(t.len + 1)
	t.len += 1

	return t.At(t.len - 1)
}

// PushBackValues appends a row. A value must be given for every column.
func (t *Table) PushBackValues(values ...any) Ref {
	t.checkRowWidth(len(values))

	t.grow(t.len + 1)

	row := t.len
	for col, ty := range t.types {
		ty.Set(t.elem(col, row), values[col])
	}

	t.len += 1

	return t.At(row)
}

// PopBack removes the last row. It panics if the table is empty.
func (t *Table) PopBack() {
	if t.len == 0 {
		panic("PopBack on empty table")
	}

	t.clearRows(t.len-1, t.len)
	t.len -= 1
}

// Insert inserts n rows before pos. The rows are initialized with the given
// values or with zero values if none are given. It returns an iterator
// to the first inserted row.
func (t *Table) Insert(pos Iterator, n int, values ...any) Iterator {
	at := t.position(pos)
	if n < 0 {
		panic(fmt.Sprintf("negative row count %d", n))
	}

	t.insert(at, n, t.stageValues(values))

	return t.iteratorAt(at)
}

// InsertRange inserts copies of the rows [first, last) before pos. The rows may
// belong to this table.
func (t *Table) InsertRange(pos Iterator, first, last Iterator) Iterator {
	at := t.position(pos)
	n := t.rangeLength(first, last)

	src := rangeSource{bases: first.bases, start: first.row}
	if t.aliases(first) {
		src = t.stageRange(src, n)
	}

	t.insert(at, n, src)

	return t.iteratorAt(at)
}

// InsertRows inserts the given rows before pos. Each row must have a value for every column.
func (t *Table) InsertRows(pos Iterator, rows [][]any) Iterator {
	at := t.position(pos)
	t.checkRows(rows)

	t.insert(at, len(rows), rowsSource{rows: rows})

	return t.iteratorAt(at)
}

func (t *Table) insert(at, n int, src rowSource) {
	if n == 0 {
		return
	}

	required := t.len + n
	if required > t.Cap() {
		t.insertReallocate(at, n, src, t.grownCapacity(required))
	} else {
		t.insertInPlace(at, n, src)
	}

	t.len = required
}

// insertReallocate moves the rows before at, the new rows and the rows after
// at into a new allocation in one pass.
func (t *Table) insertReallocate(at, n int, src rowSource, capacity int) {
	storage := spoke.Allocate(t.types, capacity, t.maxBytes)

	for col, ty := range t.types {
		newBase, oldBase := storage.Bases[col], t.storage.Bases[col]

		spoke.Relocate(ty, newBase, oldBase, at)
		src.copyTo(col, ty, spoke.ElementAt(ty, newBase, at), 0, n)

		if at < t.len {
			spoke.Relocate(ty, spoke.ElementAt(ty, newBase, at+n), spoke.ElementAt(ty, oldBase, at), t.len-at)
		}
	}

	t.replaceStorage(storage)
}

func (t *Table) insertInPlace(at, n int, src rowSource) {
	count := t.len

	// number of rows that need to make room
	nExtra := count - at

	for col, ty := range t.types {
		if n < nExtra {
			// the last n rows move into the unused space behind the table,
			// the remaining rows are shifted up within the live region.
			spoke.Relocate(ty, t.elem(col, count), t.elem(col, count-n), n)
			spoke.Relocate(ty, t.elem(col, at+n), t.elem(col, at), nExtra-n)
			src.copyTo(col, ty, t.elem(col, at), 0, n)
		} else {
			// the new rows reach past the current end. Write the part beyond the
			// end first, then move all rows starting at 'at' behind it.
			src.copyTo(col, ty, t.elem(col, count), nExtra, n-nExtra)

			if nExtra > 0 {
				spoke.Relocate(ty, t.elem(col, at+n), t.elem(col, at), nExtra)
				src.copyTo(col, ty, t.elem(col, at), 0, nExtra)
			}
		}
	}
}

// Erase removes the rows [first, last) and returns an iterator to the row
// following the removed ones.
func (t *Table) Erase(first, last Iterator) Iterator {
	from := t.position(first)
	n := t.rangeLength(first, last)

	if from+n > t.len {
		panic(fmt.Sprintf("erase range [%d, %d) out of range [0, %d)", from, from+n, t.len))
	}

	t.eraseRows(from, from+n)

	return t.iteratorAt(from)
}

// EraseAt removes the row at pos.
func (t *Table) EraseAt(pos Iterator) Iterator {
	return t.Erase(pos, pos.Next())
}

// EraseUnsorted removes the row at pos by moving the last row into its place.
// This does not preserve the order of rows.
func (t *Table) EraseUnsorted(pos Iterator) Iterator {
	row := t.position(pos)
	t.checkIndex(row)

	last := t.len - 1
	if row == last {
		t.clearRows(last, t.len)
	} else {
		for col, ty := range t.types {
			spoke.Relocate(ty, t.elem(col, row), t.elem(col, last), 1)
		}
	}

	t.len = last

	return t.iteratorAt(row)
}

func (t *Table) eraseRows(from, to int) {
	if from == to {
		return
	}

	// drop the removed rows, then move the tail down. Relocate resets the
	// rows vacated by the tail.
	t.clearRows(from, to)

	if to < t.len {
		for col, ty := range t.types {
			spoke.Relocate(ty, t.elem(col, from), t.elem(col, to), t.len-to)
		}
	}

	t.len -= to - from
}

// Assign replaces all rows with n rows holding the given values, or zero values if none are given.
func (t *Table) Assign(n int, values ...any) {
	if n < 0 {
		panic(fmt.Sprintf("negative row count %d", n))
	}

	t.assign(n, t.stageValues(values))
}

// AssignRange replaces all rows with copies of the rows [first, last). The rows may
// belong to this table.
func (t *Table) AssignRange(first, last Iterator) {
	n := t.rangeLength(first, last)
	t.assign(n, rangeSource{bases: first.bases, start: first.row})
}

// AssignRows replaces all rows.
func (t *Table) AssignRows(rows [][]any) {
	t.checkRows(rows)
	t.assign(len(rows), rowsSource{rows: rows})
}

func (t *Table) assign(n int, src rowSource) {
	if n > t.Cap() {
		// no need to keep the previous rows
		storage := spoke.Allocate(t.types, n, t.maxBytes)
		for col, ty := range t.types {
			src.copyTo(col, ty, storage.Bases[col], 0, n)
		}

		t.clearRows(0, t.len)
		t.replaceStorage(storage)
		t.len = n

		return
	}

	// a range of this table always starts at or after row zero,
	// copying it to the front is fine as Move handles overlap.
	for col, ty := range t.types {
		src.copyTo(col, ty, t.storage.Bases[col], 0, n)
	}

	if n < t.len {
		t.clearRows(n, t.len)
	}

	t.len = n
}

// At returns a reference to the row at index idx. It panics if idx is out of range.
func (t *Table) At(idx int) Ref {
	t.checkIndex(idx)
	return Ref{schema: t.schema, bases: t.storage.Bases, row: idx}
}

func (t *Table) Front() Ref {
	return t.At(0)
}

func (t *Table) Back() Ref {
	return t.At(t.len - 1)
}

// Data returns the base pointer of every column. Use it for bulk processing.
func (t *Table) Data() []unsafe.Pointer {
	return slices.Clone(t.storage.Bases)
}

// Column returns an accessor for the column with the given index.
func (t *Table) Column(col int) spoke.ColumnAccess {
	return t.storage.Access(t.types[col], col)
}

func (t *Table) Begin() Iterator {
	return t.iteratorAt(0)
}

func (t *Table) End() Iterator {
	return t.iteratorAt(t.len)
}

func (t *Table) RBegin() ReverseIterator {
	return ReverseIterator{base: t.End()}
}

func (t *Table) REnd() ReverseIterator {
	return ReverseIterator{base: t.Begin()}
}

// All iterates over every row of the table. The table must not be modified during iteration.
func (t *Table) All() iter.Seq2[int, Ref] {
	return func(yield func(int, Ref) bool) {
		for row := range t.len {
			if !yield(row, Ref{schema: t.schema, bases: t.storage.Bases, row: row}) {
				return
			}
		}
	}
}

// Clone creates a deep copy of the table. The capacity of the copy equals its length.
func (t *Table) Clone() *Table {
	clone := NewTable(t.schema, WithLogger(t.logger), WithMaxBytes(t.maxBytes), WithCapacity(t.len))

	for col, ty := range t.types {
		ty.Move(clone.storage.Bases[col], t.storage.Bases[col], t.len)
	}

	clone.len = t.len

	return clone
}

// MoveFrom takes over the rows and storage of other. other is left empty, without any allocation.
func (t *Table) MoveFrom(other *Table) {
	if t == other {
		return
	}

	t.checkSchema(other)

	t.storage = other.storage
	t.len = other.len

	other.storage.Release()
	other.len = 0
}

// Swap exchanges the contents of both tables.
func (t *Table) Swap(other *Table) {
	t.checkSchema(other)

	t.storage, other.storage = other.storage, t.storage
	t.len, other.len = other.len, t.len
}

// SwapRows exchanges the values of two rows in every column.
func (t *Table) SwapRows(i, j int) {
	t.At(i).SwapWith(t.At(j))
}

func (t *Table) iteratorAt(row int) Iterator {
	return Iterator{schema: t.schema, generation: t.storage.Generation, bases: t.storage.Bases, row: row}
}

// position returns the row of an iterator that is used as an insert or erase position.
func (t *Table) position(pos Iterator) int {
	if assert.Enabled {
		assert.That(t.ValidateIterator(pos) != IteratorNone, "iterator at row %d is not valid for this table", pos.row)
	}

	if pos.row < 0 || pos.row > t.len {
		panic(fmt.Sprintf("iterator at row %d out of range [0, %d]", pos.row, t.len))
	}

	return pos.row
}

func (t *Table) rangeLength(first, last Iterator) int {
	if assert.Enabled {
		assert.That(first.sameGeneration(last), "iterators do not belong to the same table")
	}

	if len(first.bases) != len(t.types) {
		panic(fmt.Sprintf("iterator has %d columns, table has %d", len(first.bases), len(t.types)))
	}

	n := last.row - first.row
	if n < 0 || first.row < 0 {
		panic(fmt.Sprintf("invalid iterator range [%d, %d)", first.row, last.row))
	}

	return n
}

func (t *Table) checkIndex(idx int) {
	if idx < 0 || idx >= t.len {
		panic(fmt.Sprintf("index %d out of range [0, %d)", idx, t.len))
	}
}

func (t *Table) checkSchema(other *Table) {
	if !t.schema.Matches(other.schema) {
		panic(fmt.Errorf("%s and %s: %w", t.schema, other.schema, ErrSchemaMismatch))
	}
}

func (t *Table) aliases(it Iterator) bool {
	return it.generation == t.storage.Generation
}

func (t *Table) elem(col, row int) unsafe.Pointer {
	return spoke.ElementAt(t.types[col], t.storage.Bases[col], row)
}

// clearRows resets the rows [from, to) to zero values.
func (t *Table) clearRows(from, to int) {
	if from == to {
		return
	}

	for col, ty := range t.types {
		ty.Clear(t.elem(col, from), to-from)
	}
}

// grownCapacity applies the growth policy: the capacity doubles, but
// grows at least to the required number of rows.
func (t *Table) grownCapacity(required int) int {
	doubled := 2 * t.Cap()
	if doubled == 0 {
		doubled = 1
	}

	return max(doubled, required)
}

// grow ensures that the table has room for the required number of rows.
func (t *Table) grow(required int) {
	if required > t.Cap() {
		t.reallocate(t.grownCapacity(required))
	}
}

// reallocate moves all rows into a new allocation with the given capacity.
func (t *Table) reallocate(capacity int) {
	storage := spoke.Allocate(t.types, capacity, t.maxBytes)

	for col, ty := range t.types {
		spoke.Relocate(ty, storage.Bases[col], t.storage.Bases[col], t.len)
	}

	t.replaceStorage(storage)
}

// replaceStorage installs a new storage. The live rows of the previous storage
// must already be relocated or cleared, so it holds no references anymore.
func (t *Table) replaceStorage(storage spoke.Storage) {
	previousCapacity := t.Cap()

	t.storage = storage

	t.logger.Debug(
		"table reallocated",
		zap.Stringer("schema", t.schema),
		zap.Int("len", t.len),
		zap.Int("previousCapacity", previousCapacity),
		zap.Int("capacity", storage.Capacity()),
		zap.Uintptr("bytes", storage.Bytes()),
	)
}
