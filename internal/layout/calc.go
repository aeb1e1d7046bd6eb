package layout

import (
	"errors"
	"fmt"
	"math/bits"
)

// ErrOverflow is returned when the requested capacity does not fit into the address space.
var ErrOverflow = errors.New("layout: allocation size overflows")

// Column describes the memory requirements of a single element of one column.
type Column struct {
	Size  uintptr
	Align uintptr
}

type Layout struct {
	// Size is the number of bytes needed to hold every column at the
	// requested capacity. It is not rounded up to Align.
	Size uintptr

	// Align is the maximum alignment of all columns, at least 1.
	Align uintptr

	// Offsets holds the byte offset of each column, in declaration order.
	Offsets []uintptr

	Capacity int
}

func AlignUp(offset, align uintptr) uintptr {
	if align <= 1 {
		return offset
	}

	return (offset + align - 1) &^ (align - 1)
}

func Compute(columns []Column, capacity int) (Layout, error) {
	if capacity < 0 {
		return Layout{}, fmt.Errorf("layout: negative capacity %d", capacity)
	}

	l := Layout{
		Align:    1,
		Offsets:  make([]uintptr, len(columns)),
		Capacity: capacity,
	}

	var offset uintptr

	for idx, column := range columns {
		if column.Align == 0 || column.Align&(column.Align-1) != 0 {
			return Layout{}, fmt.Errorf("layout: column %d has invalid alignment %d", idx, column.Align)
		}

		aligned := AlignUp(offset, column.Align)
		if aligned < offset {
			return Layout{}, ErrOverflow
		}

		hi, length := bits.Mul64(uint64(column.Size), uint64(capacity))
		if hi != 0 || uint64(uintptr(length)) != length {
			return Layout{}, ErrOverflow
		}

		end := aligned + uintptr(length)
		if end < aligned {
			return Layout{}, ErrOverflow
		}

		l.Offsets[idx] = aligned
		l.Align = max(l.Align, column.Align)

		offset = end
	}

	l.Size = offset

	return l, nil
}

// End returns the offset one past the last byte of the given column.
func (l Layout) End(column int, size uintptr) uintptr {
	return l.Offsets[column] + size*uintptr(l.Capacity)
}
