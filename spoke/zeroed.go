package spoke

import (
	"unsafe"
)

const noOffset = ^uintptr(0)

func firstNonZeroSlow(ptr unsafe.Pointer, n uintptr) uintptr {
	for idx := uintptr(0); idx < n; idx++ {
		if *(*byte)(unsafe.Add(ptr, idx)) != 0 {
			return idx
		}
	}

	return noOffset
}

// FirstNonZero returns the offset of the first non zero byte within the n bytes
// starting at ptr. It returns false if all bytes are zero.
func FirstNonZero(ptr unsafe.Pointer, n uintptr) (uintptr, bool) {
	if n == 0 {
		return 0, false
	}

	// compare byte by byte until we're aligned
	var offset uintptr
	if !isAligned(uintptr(ptr)) {
		offset = min(n, 8-uintptr(ptr)%8)

		if res := firstNonZeroSlow(ptr, offset); res != noOffset {
			return res, true
		}
	}

	for ; offset+8 <= n; offset += 8 {
		word := unsafe.Add(ptr, offset)

		if *(*uint64)(word) == 0 {
			continue
		}

		return offset + firstNonZeroSlow(word, 8), true
	}

	if offset < n {
		// less than 8 bytes remaining
		if res := firstNonZeroSlow(unsafe.Add(ptr, offset), n-offset); res != noOffset {
			return offset + res, true
		}
	}

	return 0, false
}

func isAligned(ptr uintptr) bool {
	return ptr%8 == 0
}
