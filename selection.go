package soa

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// Select returns the rows for which the predicate returns true.
func (t *Table) Select(pred func(ref Ref) bool) *roaring.Bitmap {
	rows := roaring.New()

	for row, ref := range t.All() {
		if pred(ref) {
			rows.Add(uint32(row))
		}
	}

	return rows
}

type rowSegment struct {
	from, to int
}

// EraseRows removes all rows contained in the bitmap while keeping the order of
// the remaining rows. Rows beyond the end of the table are ignored. Each column is
// compacted in a single pass. Returns the number of rows removed.
func (t *Table) EraseRows(rows *roaring.Bitmap) int {
	if uint64(t.len) > math.MaxUint32 {
		panic("table is too large to be addressed by a bitmap")
	}

	removed := rows.Clone()
	removed.RemoveRange(uint64(t.len), math.MaxUint32+1)

	if removed.IsEmpty() {
		return 0
	}

	// collect the ranges of rows that are kept behind the first removed row
	var segments []rowSegment

	iter := removed.Iterator()

	first := int(iter.Next())
	last := first

	for iter.HasNext() {
		row := int(iter.Next())
		if row > last+1 {
			segments = append(segments, rowSegment{from: last + 1, to: row})
		}

		last = row
	}

	if last+1 < t.len {
		segments = append(segments, rowSegment{from: last + 1, to: t.len})
	}

	for col, ty := range t.types {
		target := first

		for _, segment := range segments {
			count := segment.to - segment.from
			ty.Move(t.elem(col, target), t.elem(col, segment.from), count)
			target += count
		}
	}

	count := int(removed.GetCardinality())

	t.clearRows(t.len-count, t.len)
	t.len -= count

	return count
}
