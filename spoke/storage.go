package spoke

import (
	"fmt"
	"reflect"
	"strconv"
	"sync/atomic"
	"unsafe"

	"github.com/oliverbestmann/soa/internal/layout"
)

// Storage is one allocation holding every column of a table at a fixed
// capacity. The memory is allocated as a struct with one array field per
// column, so the garbage collector knows about every pointer stored within.
type Storage struct {
	// keeps the allocation alive
	value reflect.Value

	// Bases holds the address of the first row of each column. A new slice is
	// created for each allocation, so holders of an old slice keep a snapshot.
	Bases []unsafe.Pointer

	Layout layout.Layout

	// Generation identifies the allocation. Zero sized columns all share the
	// same base pointer, so the bases alone do not identify a storage.
	Generation uint64
}

var generations atomic.Uint64

func nextGeneration() uint64 {
	return generations.Add(1)
}

// Allocate creates a new zeroed storage for the given columns. A capacity of
// zero does not allocate and yields nil base pointers. Allocations larger
// than maxBytes are considered a bug and panic.
func Allocate(columns []*ColumnType, capacity int, maxBytes uintptr) Storage {
	bases := make([]unsafe.Pointer, len(columns))

	descriptors := make([]layout.Column, len(columns))
	for idx, column := range columns {
		descriptors[idx] = layout.Column{Size: column.Size, Align: column.Align}
	}

	l, err := layout.Compute(descriptors, capacity)
	if err != nil {
		panic(fmt.Sprintf("failed to compute layout for %d rows: %s", capacity, err))
	}

	if capacity == 0 {
		return Storage{Bases: bases, Layout: l, Generation: nextGeneration()}
	}

	if l.Size > maxBytes {
		panic(fmt.Sprintf("allocation of %d bytes for %d rows exceeds limit of %d bytes", l.Size, capacity, maxBytes))
	}

	fields := make([]reflect.StructField, len(columns))
	for idx, column := range columns {
		fields[idx] = reflect.StructField{
			Name: "Column" + strconv.Itoa(idx),
			Type: reflect.ArrayOf(capacity, column.Type),
		}
	}

	structType := reflect.StructOf(fields)
	value := reflect.New(structType)

	base := value.UnsafePointer()
	for idx := range columns {
		offset := l.Offsets[idx]
		if structType.Field(idx).Offset != offset {
			panic(fmt.Sprintf(
				"column %d: layout offset %d does not match struct offset %d",
				idx, offset, structType.Field(idx).Offset,
			))
		}

		bases[idx] = unsafe.Add(base, offset)
	}

	return Storage{value: value, Bases: bases, Layout: l, Generation: nextGeneration()}
}

func (s *Storage) Capacity() int {
	return s.Layout.Capacity
}

// Pointer returns the start of the allocation or nil, if nothing was allocated.
func (s *Storage) Pointer() unsafe.Pointer {
	if !s.value.IsValid() {
		return nil
	}

	return s.value.UnsafePointer()
}

// Bytes returns the size of the allocation as seen by the runtime. This might be
// larger than Layout.Size due to trailing padding.
func (s *Storage) Bytes() uintptr {
	if !s.value.IsValid() {
		return 0
	}

	return s.value.Type().Elem().Size()
}

func (s *Storage) Access(ty *ColumnType, column int) ColumnAccess {
	return ColumnAccess{base: s.Bases[column], stride: ty.Size}
}

// Release drops the reference to the allocation.
func (s *Storage) Release() {
	*s = Storage{
		Bases:      make([]unsafe.Pointer, len(s.Bases)),
		Generation: nextGeneration(),
	}
}
