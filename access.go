package soa

import (
	"fmt"
	"reflect"
	"unsafe"
)

// ColumnSlice returns the live rows of a column as a slice. The slice shares
// memory with the table and is invalidated by any operation that reallocates
// or shifts rows. Its capacity equals its length.
func ColumnSlice[T any](t *Table, col int) []T {
	checkColumnType[T](t.schema, col)

	if t.len == 0 {
		return nil
	}

	return unsafe.Slice((*T)(t.storage.Bases[col]), t.len)
}

// ColumnByName returns the live rows of the column with the given symbolic name.
func ColumnByName[T any](t *Table, name string) []T {
	return ColumnSlice[T](t, t.schema.Index(name))
}

// ColumnByType returns the live rows of the only column of type T.
func ColumnByType[T any](t *Table) []T {
	col, err := t.schema.IndexOfType(reflect.TypeFor[T]())
	if err != nil {
		panic(err)
	}

	return ColumnSlice[T](t, col)
}

// Field returns a pointer to the value of a column within the referenced row.
func Field[T any](ref Ref, col int) *T {
	checkColumnType[T](ref.schema, col)
	return (*T)(ref.Ptr(col))
}

// FieldByName returns a pointer to the value of the named column.
func FieldByName[T any](ref Ref, name string) *T {
	return Field[T](ref, ref.schema.Index(name))
}

func checkColumnType[T any](schema *Schema, col int) {
	if ty := schema.types[col].Type; ty != reflect.TypeFor[T]() {
		panic(fmt.Sprintf("column %d holds values of type %s, not %s", col, ty, reflect.TypeFor[T]()))
	}
}
