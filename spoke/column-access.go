package spoke

import (
	"unsafe"
)

// ColumnAccess points to the first row of one column. The pointer is only
// valid until the owning storage is replaced.
type ColumnAccess struct {
	base   unsafe.Pointer
	stride uintptr
}

func (c ColumnAccess) At(row int) unsafe.Pointer {
	return unsafe.Add(c.base, c.stride*uintptr(row))
}

func (c ColumnAccess) Base() unsafe.Pointer {
	return c.base
}

func (c ColumnAccess) Stride() uintptr {
	return c.stride
}

// ElementAt returns a pointer to the value at the given row of a column
// starting at base.
func ElementAt(ty *ColumnType, base unsafe.Pointer, row int) unsafe.Pointer {
	return unsafe.Add(base, ty.Size*uintptr(row))
}

// Relocate moves n values from src to dst and resets the source slots to
// their zero value afterward. Slots of src that dst overlaps keep the moved
// values.
func Relocate(ty *ColumnType, dst, src unsafe.Pointer, n int) {
	if n == 0 || dst == src {
		return
	}

	ty.Move(dst, src, n)

	// clear the part of the source that was not overwritten
	srcStart, dstStart := uintptr(src), uintptr(dst)
	length := ty.Size * uintptr(n)

	switch {
	case ty.Size == 0:
		// nothing to clear

	case dstStart >= srcStart+length || dstStart+length <= srcStart:
		ty.Clear(src, n)

	case dstStart > srcStart:
		// moved up, the head of the source is stale
		ty.Clear(src, int((dstStart-srcStart)/ty.Size))

	default:
		// moved down, the tail of the source is stale
		stale := int((srcStart - dstStart) / ty.Size)
		ty.Clear(ElementAt(ty, src, n-stale), stale)
	}
}
