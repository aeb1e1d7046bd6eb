package soa

import (
	"fmt"
	"slices"

	"github.com/oliverbestmann/soa/internal/typedpool"
	"github.com/oliverbestmann/soa/spoke"
)

var permutations = typedpool.New(func(perm *[]int) { *perm = (*perm)[:0] })

// SortFunc sorts the rows of the table using the given comparison function.
// The sort is stable. The rows are moved into a new allocation of the same
// capacity, so all iterators are invalidated.
func (t *Table) SortFunc(cmp func(a, b Ref) int) {
	if t.len < 2 {
		return
	}

	perm := permutations.Get()
	defer permutations.Put(perm)

	for row := range t.len {
		*perm = append(*perm, row)
	}

	bases := t.storage.Bases
	slices.SortStableFunc(*perm, func(a, b int) int {
		return cmp(
			Ref{schema: t.schema, bases: bases, row: a},
			Ref{schema: t.schema, bases: bases, row: b},
		)
	})

	t.permute(*perm)
}

// SortByColumns sorts the rows by the values of the given columns, compared
// lexicographically. Each column must have an ordered type.
func (t *Table) SortByColumns(cols ...int) {
	for _, col := range cols {
		if !t.types[col].Ordered() {
			panic(fmt.Sprintf("column %d of type %s is not ordered", col, t.types[col]))
		}
	}

	t.SortFunc(func(a, b Ref) int {
		for _, col := range cols {
			if result := t.types[col].Compare(a.Ptr(col), b.Ptr(col)); result != 0 {
				return result
			}
		}

		return 0
	})
}

// IsSortedFunc reports whether the rows are sorted according to cmp.
func (t *Table) IsSortedFunc(cmp func(a, b Ref) int) bool {
	for row := 1; row < t.len; row++ {
		if cmp(t.At(row-1), t.At(row)) > 0 {
			return false
		}
	}

	return true
}

// permute reorders the rows, so that row perm[i] ends up at row i.
func (t *Table) permute(perm []int) {
	storage := spoke.Allocate(t.types, t.Cap(), t.maxBytes)

	for col, ty := range t.types {
		base := storage.Bases[col]

		for dst, src := range perm {
			spoke.Relocate(ty, spoke.ElementAt(ty, base, dst), t.elem(col, src), 1)
		}
	}

	t.replaceStorage(storage)
}
