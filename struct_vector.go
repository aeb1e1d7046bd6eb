package soa

import (
	"iter"
	"reflect"
	"unsafe"

	"github.com/oliverbestmann/soa/internal/assert"
	"github.com/oliverbestmann/soa/internal/refl"
	"github.com/oliverbestmann/soa/spoke"
)

// StructVector stores values of the struct type T column wise, one column per
// exported field. See SchemaOf for how fields map to columns.
type StructVector[T any] struct {
	*Table
	offsets []uintptr
}

func NewStructVector[T any](opts ...Option) *StructVector[T] {
	assert.IsStructType(reflect.TypeFor[T]())

	fields, err := refl.ColumnFields(reflect.TypeFor[T]())
	if err != nil {
		panic(err)
	}

	schema, err := SchemaOf[T]()
	if err != nil {
		panic(err)
	}

	offsets := make([]uintptr, len(fields))
	for idx, field := range fields {
		offsets[idx] = field.Offset
	}

	return &StructVector[T]{
		Table:   NewTable(schema, opts...),
		offsets: offsets,
	}
}

// PushBack appends the fields of value as a new row.
func (v *StructVector[T]) PushBack(value T) Ref {
	v.grow(v.len + 1)

	row := v.len
	v.scatter(row, &value)
	v.len += 1

	return v.Table.At(row)
}

// Append appends all values in order.
func (v *StructVector[T]) Append(values ...T) {
	v.insert(v.len, len(values), structsSource[T]{values: values, offsets: v.offsets})
}

// Get assembles the value stored at row idx.
func (v *StructVector[T]) Get(idx int) T {
	v.checkIndex(idx)

	var value T
	v.gather(idx, &value)

	return value
}

// Set overwrites the row at idx with the fields of value.
func (v *StructVector[T]) Set(idx int, value T) {
	v.checkIndex(idx)
	v.scatter(idx, &value)
}

// Insert inserts n copies of value before pos.
func (v *StructVector[T]) Insert(pos Iterator, n int, value T) Iterator {
	at := v.position(pos)
	if n < 0 {
		panic("negative row count")
	}

	values := make([]unsafe.Pointer, len(v.offsets))
	for col, offset := range v.offsets {
		values[col] = unsafe.Add(unsafe.Pointer(&value), offset)
	}

	v.insert(at, n, fillRow(values...))

	return v.iteratorAt(at)
}

// InsertSlice inserts the values before pos.
func (v *StructVector[T]) InsertSlice(pos Iterator, values []T) Iterator {
	at := v.position(pos)
	v.insert(at, len(values), structsSource[T]{values: values, offsets: v.offsets})
	return v.iteratorAt(at)
}

// All iterates over copies of the stored values.
func (v *StructVector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for row := range v.len {
			var value T
			v.gather(row, &value)

			if !yield(row, value) {
				return
			}
		}
	}
}

// ToSlice assembles all rows into a new slice.
func (v *StructVector[T]) ToSlice() []T {
	values := make([]T, v.len)
	for row := range values {
		v.gather(row, &values[row])
	}

	return values
}

func (v *StructVector[T]) Clone() *StructVector[T] {
	return &StructVector[T]{Table: v.Table.Clone(), offsets: v.offsets}
}

func (v *StructVector[T]) scatter(row int, value *T) {
	for col, ty := range v.types {
		ty.Move(v.elem(col, row), unsafe.Add(unsafe.Pointer(value), v.offsets[col]), 1)
	}
}

func (v *StructVector[T]) gather(row int, value *T) {
	for col, ty := range v.types {
		ty.Move(unsafe.Add(unsafe.Pointer(value), v.offsets[col]), v.elem(col, row), 1)
	}
}

// structsSource copies the fields of struct values into their columns.
type structsSource[T any] struct {
	values  []T
	offsets []uintptr
}

func (s structsSource[T]) copyTo(col int, ty *spoke.ColumnType, dst unsafe.Pointer, from, count int) {
	for idx := range count {
		field := unsafe.Add(unsafe.Pointer(&s.values[from+idx]), s.offsets[col])
		ty.Move(spoke.ElementAt(ty, dst, idx), field, 1)
	}
}
