package soa

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVector3_Sums(t *testing.T) {
	vec := NewVector3[int, float32, int]()

	for idx := 1; idx <= 5; idx++ {
		vec.PushBack(idx, float32(idx+1), idx+5)
	}

	_, floats, ints := vec.Columns()

	var floatSum float32
	for _, value := range floats {
		floatSum += value
	}

	var intSum int
	for _, value := range ints {
		intSum += value
	}

	require.Equal(t, float32(20.0), floatSum)
	require.Equal(t, 40, intSum)
}

func TestVector1_PushBackZero(t *testing.T) {
	vec := NewVector1[int]()
	require.Zero(t, vec.Len())
	require.Zero(t, vec.Cap())

	vec.Table.PushBack()
	vec.PushBack(5)

	require.Equal(t, 2, vec.Len())
	require.Equal(t, 5, vec.Get(1))
	require.Equal(t, 0, vec.Get(0))
	require.Equal(t, []int{0, 5}, vec.Values())
}

func TestVector2_EraseUnsorted(t *testing.T) {
	vec := NewVector2[int, string]()
	for idx := range 5 {
		vec.PushBack(idx, name(idx))
	}

	it := vec.EraseUnsorted(vec.Begin().Add(1))
	require.Equal(t, 1, it.Row())
	require.Equal(t, 4, vec.Len())

	ids, names := vec.Columns()
	require.Equal(t, []int{0, 4, 2, 3}, ids)
	require.Equal(t, []string{"", "4", "2", "3"}, names)
	require.NoError(t, vec.Validate())
}

func TestVector2_Named(t *testing.T) {
	vec := NewVector2[[2]float64, [2]float64](Named("position", "velocity"), WithCapacity(4))
	require.Equal(t, 4, vec.Cap())

	vec.PushBack([2]float64{1, 2}, [2]float64{3, 4})

	byName := ColumnByName[[2]float64](vec.Table, "velocity")
	_, byIndex := vec.Columns()
	require.Same(t, &byIndex[0], &byName[0])

	col, ok := vec.Schema().Resolve(11337903)
	require.True(t, ok)
	require.Equal(t, 1, col)

	require.Panics(t, func() { NewVector2[int, int](Named("a", "a")) })
	require.Panics(t, func() { NewVector1[int](Named("a", "b")) })
}

func TestVector2_Refs(t *testing.T) {
	vec := NewVector2[int, string]()
	vec.PushBack(1, "a")
	vec.PushBack(2, "b")

	ref := vec.At(0)
	*ref.A = 10
	ref.B = vec.At(1).B

	id, value := vec.Get(0)
	require.Equal(t, 10, id)
	require.Equal(t, "a", value)

	vec.At(0).SwapWith(vec.At(1))
	require.Equal(t, 2, *vec.Front().A)
	require.Equal(t, 10, *vec.Back().A)

	vec.Set(1, 11, "c")
	id, value = vec.Back().Values()
	require.Equal(t, 11, id)
	require.Equal(t, "c", value)

	require.Panics(t, func() { vec.At(2) })
}

func TestVector2_Iterators(t *testing.T) {
	vec := NewVector2[int, string]()
	for idx := range 6 {
		vec.PushBack(idx, name(idx))
	}

	var ids []int
	for it := vec.Begin(); !it.Equal(vec.End()); it = it.Next() {
		ids = append(ids, *it.Ref().A)
	}
	require.Equal(t, []int{0, 1, 2, 3, 4, 5}, ids)

	it := vec.Begin()
	for m := -3; m <= 3; m++ {
		for n := -3; n <= 3; n++ {
			require.True(t, it.Add(m).Add(n).Equal(it.Add(m+n)))
			require.True(t, it.Add(n).Sub(n).Equal(it))
			require.Equal(t, n-m, it.Add(n).Distance(it.Add(m)))
			require.Equal(t, m < n, it.Add(m).Less(it.Add(n)))
		}
	}

	cit := vec.Begin().Add(2).Const()
	id, value := cit.Get()
	require.Equal(t, 2, id)
	require.Equal(t, "2", value)
	require.True(t, cit.Next().Prev().Equal(cit))
	require.Equal(t, 2, cit.Distance(vec.Begin().Const()))
	require.True(t, vec.Begin().Const().Less(cit))

	// iterators from before a reallocation are not equal
	begin := vec.Begin()
	vec.Reserve(100)
	require.False(t, begin.Equal(vec.Begin()))
}

func TestVector2_Insert(t *testing.T) {
	for size := range 5 {
		for spare := range 5 {
			for at := range size + 1 {
				for n := range 6 {
					vec := NewVector2[int, string](WithCapacity(size + spare))

					var model []int
					for idx := range size {
						vec.PushBack(idx, name(idx))
						model = append(model, idx)
					}

					it := vec.Insert(vec.Begin().Add(at), n, 9, "9")
					require.Equal(t, at, it.Row())

					model = slices.Insert(model, at, slices.Repeat([]int{9}, n)...)

					ids, names := vec.Columns()
					require.Equal(t, model, nilIfEmpty(ids))

					for idx, id := range model {
						require.Equal(t, name(id), names[idx])
					}

					require.NoError(t, vec.Validate())
				}
			}
		}
	}
}

func TestVector2_Ranges(t *testing.T) {
	vec := NewVector2[int, string]()
	for idx := range 6 {
		vec.PushBack(idx, name(idx))
	}

	vec.InsertRange(vec.Begin(), vec.Begin().Add(4), vec.End())
	ids, _ := vec.Columns()
	require.Equal(t, []int{4, 5, 0, 1, 2, 3, 4, 5}, ids)

	it := vec.Erase(vec.Begin().Add(1), vec.Begin().Add(4))
	require.Equal(t, 1, it.Row())
	ids, _ = vec.Columns()
	require.Equal(t, []int{4, 2, 3, 4, 5}, ids)

	vec.EraseAt(vec.Begin())
	ids, _ = vec.Columns()
	require.Equal(t, []int{2, 3, 4, 5}, ids)

	vec.AssignRange(vec.Begin().Add(2), vec.End())
	ids, _ = vec.Columns()
	require.Equal(t, []int{4, 5}, ids)

	vec.Assign(3, 7, "7")
	ids, names := vec.Columns()
	require.Equal(t, []int{7, 7, 7}, ids)
	require.Equal(t, []string{"7", "7", "7"}, names)

	vec.ResizeWith(5, 8, "8")
	ids, _ = vec.Columns()
	require.Equal(t, []int{7, 7, 7, 8, 8}, ids)

	require.NoError(t, vec.Validate())
}

func TestVector3_SortFunc(t *testing.T) {
	vec := NewVector3[int, string, float64]()
	vec.PushBack(3, "c", 0.3)
	vec.PushBack(1, "a", 0.1)
	vec.PushBack(2, "b", 0.2)
	vec.PushBack(1, "a2", 0.15)

	vec.SortFunc(func(a, b Ref3[int, string, float64]) int {
		return *a.A - *b.A
	})

	ids, names, values := vec.Columns()
	require.Equal(t, []int{1, 1, 2, 3}, ids)
	require.Equal(t, []string{"a", "a2", "b", "c"}, names)
	require.Equal(t, []float64{0.1, 0.15, 0.2, 0.3}, values)
}

func TestVector4(t *testing.T) {
	vec := NewVector4[int8, int16, int32, int64](Named("a", "b", "c", "d"))

	for idx := range 10 {
		vec.PushBack(int8(idx), int16(idx*2), int32(idx*3), int64(idx*4))
	}

	a, b, c, d := vec.Get(5)
	require.Equal(t, int8(5), a)
	require.Equal(t, int16(10), b)
	require.Equal(t, int32(15), c)
	require.Equal(t, int64(20), d)

	var sum int64
	for _, ref := range vec.All() {
		sum += *ref.D
	}
	require.Equal(t, int64(180), sum)

	clone := vec.Clone()
	clone.Set(0, 1, 1, 1, 1)
	require.True(t, Less(vec.Table, clone.Table))
	require.Equal(t, int8(0), *vec.Front().A)

	require.Equal(t, []int64{0, 4, 8}, ColumnByName[int64](vec.Table, "d")[:3])
}

func nilIfEmpty[T any](values []T) []T {
	if len(values) == 0 {
		return nil
	}

	return values
}
