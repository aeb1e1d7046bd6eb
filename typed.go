package soa

import (
	"unsafe"
)

// elementAt returns a pointer to the value at row of a column starting at base.
func elementAt[T any](base *T, row int) *T {
	var zero T
	return (*T)(unsafe.Add(unsafe.Pointer(base), unsafe.Sizeof(zero)*uintptr(row)))
}

func swapValues[T any](a, b *T) {
	*a, *b = *b, *a
}

// fillRow creates a source repeating the row made of the given values.
func fillRow(values ...unsafe.Pointer) fillSource {
	return fillSource{values: values}
}
