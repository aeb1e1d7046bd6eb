package soa

import (
	"fmt"
)

// Equal reports whether both tables hold the same rows. Every column must be comparable.
func Equal(a, b *Table) bool {
	a.checkSchema(b)

	if a.len != b.len {
		return false
	}

	for col, ty := range a.types {
		if !ty.Comparable() {
			panic(fmt.Sprintf("column %d of type %s is not comparable", col, ty))
		}

		for row := range a.len {
			if !ty.Equal(a.elem(col, row), b.elem(col, row)) {
				return false
			}
		}
	}

	return true
}

// Compare compares both tables lexicographically, row by row. Within a row,
// columns are compared in declaration order. Every column must be ordered.
func Compare(a, b *Table) int {
	a.checkSchema(b)

	for col, ty := range a.types {
		if !ty.Ordered() {
			panic(fmt.Sprintf("column %d of type %s is not ordered", col, ty))
		}
	}

	for row := range min(a.len, b.len) {
		for col, ty := range a.types {
			if result := ty.Compare(a.elem(col, row), b.elem(col, row)); result != 0 {
				return result
			}
		}
	}

	switch {
	case a.len < b.len:
		return -1
	case a.len > b.len:
		return 1
	default:
		return 0
	}
}

func Less(a, b *Table) bool {
	return Compare(a, b) < 0
}

func LessEqual(a, b *Table) bool {
	return Compare(a, b) <= 0
}

func Greater(a, b *Table) bool {
	return Compare(a, b) > 0
}

func GreaterEqual(a, b *Table) bool {
	return Compare(a, b) >= 0
}

// SwapTables exchanges the contents of both tables.
func SwapTables(a, b *Table) {
	a.Swap(b)
}
