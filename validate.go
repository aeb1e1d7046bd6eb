package soa

import (
	"fmt"

	"github.com/oliverbestmann/soa/spoke"
)

// IteratorStatus describes the relation of an iterator to a table.
// The values are flags and can be combined.
type IteratorStatus int

const IteratorNone IteratorStatus = 0

const (
	// IteratorValid is set if the iterator is within [Begin, End].
	IteratorValid IteratorStatus = 1 << iota

	// IteratorCurrent is set if the table was not reallocated since the iterator was created.
	IteratorCurrent

	// IteratorDereferenceable is set if the iterator is within [Begin, End).
	IteratorDereferenceable
)

func (s IteratorStatus) Has(flag IteratorStatus) bool {
	return s&flag == flag
}

// ValidateIterator checks if the iterator belongs to the current storage of the table.
func (t *Table) ValidateIterator(it Iterator) IteratorStatus {
	if !t.iteratorAt(0).sameGeneration(it) {
		return IteratorNone
	}

	switch {
	case it.row >= 0 && it.row < t.len:
		return IteratorValid | IteratorCurrent | IteratorDereferenceable

	case it.row == t.len:
		return IteratorValid | IteratorCurrent

	default:
		return IteratorNone
	}
}

// Validate checks the internal consistency of the table. It verifies the
// storage layout and that all unused slots hold zero values.
func (t *Table) Validate() error {
	capacity := t.Cap()

	if t.len < 0 || t.len > capacity {
		return fmt.Errorf("length %d exceeds capacity %d: %w", t.len, capacity, ErrCorrupt)
	}

	bases := t.storage.Bases
	if len(bases) != len(t.types) {
		return fmt.Errorf("%d column bases for %d columns: %w", len(bases), len(t.types), ErrCorrupt)
	}

	if capacity == 0 {
		for col, base := range bases {
			if base != nil {
				return fmt.Errorf("column %d has storage without capacity: %w", col, ErrCorrupt)
			}
		}

		return nil
	}

	l := t.storage.Layout
	start := uintptr(t.storage.Pointer())

	for col, ty := range t.types {
		base := uintptr(bases[col])

		if base%ty.Align != 0 {
			return fmt.Errorf("column %d at %#x is not aligned to %d: %w", col, base, ty.Align, ErrCorrupt)
		}

		if base != start+l.Offsets[col] {
			return fmt.Errorf("column %d is not at offset %d: %w", col, l.Offsets[col], ErrCorrupt)
		}

		if l.End(col, ty.Size) > l.Size {
			return fmt.Errorf("column %d is outside of the allocation: %w", col, ErrCorrupt)
		}

		if col > 0 && l.Offsets[col] < l.End(col-1, t.types[col-1].Size) {
			return fmt.Errorf("column %d overlaps column %d: %w", col, col-1, ErrCorrupt)
		}

		if t.len == capacity || ty.Size == 0 {
			continue
		}

		unused := ty.Size * uintptr(capacity-t.len)
		if offset, found := spoke.FirstNonZero(t.elem(col, t.len), unused); found {
			return fmt.Errorf("column %d has values in unused row %d: %w", col, t.len+int(offset/ty.Size), ErrCorrupt)
		}
	}

	return nil
}
