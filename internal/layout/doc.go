// Package layout computes how the columns of a table share one allocation.
//
// Columns are placed in declaration order. Each column starts at the next
// offset that satisfies its alignment and spans size*capacity bytes. The
// allocation itself is aligned to the largest column alignment.
//
//	l, err := layout.Compute([]layout.Column{{Size: 4, Align: 4}, {Size: 1, Align: 1}}, 16)
//	// l.Offsets == []uintptr{0, 64}, l.Size == 80, l.Align == 4
//
// Columns are never reordered to reduce padding, so the offsets of two
// schemas holding the same types in different order will differ.
package layout
