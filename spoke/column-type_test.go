package spoke

import (
	"reflect"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

type Celsius float64

type Version struct {
	Major, Minor int
}

func (v Version) Compare(other Version) int {
	if v.Major != other.Major {
		return v.Major - other.Major
	}

	return v.Minor - other.Minor
}

type Labels struct {
	Values []string
}

func ptr[T any](value *T) unsafe.Pointer {
	return unsafe.Pointer(value)
}

func TestColumnTypeOf_Registry(t *testing.T) {
	a := ColumnTypeOf[int32]()
	b := ColumnTypeOf[int32]()
	require.Same(t, a, b)

	require.Equal(t, "int32", a.Name)
	require.Equal(t, uintptr(4), a.Size)
	require.Equal(t, uintptr(4), a.Align)
	require.False(t, a.HasPointers)

	require.NotEqual(t, a.Id, ColumnTypeOf[int64]().Id)
}

func TestColumnTypeOf_Capabilities(t *testing.T) {
	require.True(t, ColumnTypeOf[string]().HasPointers)
	require.True(t, ColumnTypeOf[string]().Comparable())
	require.True(t, ColumnTypeOf[string]().Ordered())

	require.True(t, ColumnTypeOf[Celsius]().Ordered())
	require.True(t, ColumnTypeOf[Version]().Ordered())
	require.True(t, ColumnTypeOf[Version]().Comparable())

	require.True(t, ColumnTypeOf[Labels]().HasPointers)
	require.False(t, ColumnTypeOf[Labels]().Comparable())
	require.False(t, ColumnTypeOf[Labels]().Ordered())

	require.False(t, ColumnTypeOf[[4]float32]().HasPointers)
	require.True(t, ColumnTypeOf[[4]*int]().HasPointers)
	require.False(t, ColumnTypeOf[[0]*int]().HasPointers)
}

func TestColumnType_Operations(t *testing.T) {
	ty := ColumnTypeOf[string]()

	values := []string{"a", "b", "c", "d", "e"}

	// overlapping move up
	ty.Move(ptr(&values[1]), ptr(&values[0]), 3)
	require.Equal(t, []string{"a", "a", "b", "c", "e"}, values)

	// overlapping move down
	ty.Move(ptr(&values[0]), ptr(&values[2]), 3)
	require.Equal(t, []string{"b", "c", "e", "c", "e"}, values)

	ty.Clear(ptr(&values[3]), 2)
	require.Equal(t, []string{"b", "c", "e", "", ""}, values)

	fill := "x"
	ty.Fill(ptr(&values[1]), 3, ptr(&fill))
	require.Equal(t, []string{"b", "x", "x", "x", ""}, values)

	ty.Swap(ptr(&values[0]), ptr(&values[4]))
	require.Equal(t, []string{"", "x", "x", "x", "b"}, values)

	require.True(t, ty.Equal(ptr(&values[1]), ptr(&values[2])))
	require.Equal(t, -1, ty.Compare(ptr(&values[0]), ptr(&values[4])))

	ty.Set(ptr(&values[0]), "y")
	require.Equal(t, "y", ty.Get(ptr(&values[0])))

	value := "z"
	ty.Set(ptr(&values[0]), &value)
	require.Equal(t, "z", values[0])

	require.Panics(t, func() { ty.Set(ptr(&values[0]), 12) })
}

func TestColumnType_Compare(t *testing.T) {
	a, b := Celsius(-1), Celsius(2.5)
	require.Equal(t, -1, ColumnTypeOf[Celsius]().Compare(ptr(&a), ptr(&b)))
	require.Equal(t, 1, ColumnTypeOf[Celsius]().Compare(ptr(&b), ptr(&a)))

	v1, v2 := Version{1, 2}, Version{1, 3}
	require.Negative(t, ColumnTypeOf[Version]().Compare(ptr(&v1), ptr(&v2)))

	f, tr := false, true
	require.Equal(t, -1, ColumnTypeOf[bool]().Compare(ptr(&f), ptr(&tr)))
	require.Equal(t, 0, ColumnTypeOf[bool]().Compare(ptr(&tr), ptr(&tr)))
}

func TestColumnTypeFor_Reflection(t *testing.T) {
	type point struct {
		X, Y int16
	}

	ty := ColumnTypeFor(reflect.TypeFor[point]())
	require.Same(t, ty, ColumnTypeFor(reflect.TypeFor[point]()))
	require.True(t, ty.Comparable())
	require.False(t, ty.Ordered())

	values := []point{{1, 1}, {2, 2}, {3, 3}, {4, 4}}

	ty.Move(ptr(&values[1]), ptr(&values[0]), 3)
	require.Equal(t, []point{{1, 1}, {1, 1}, {2, 2}, {3, 3}}, values)

	ty.Clear(ptr(&values[0]), 1)
	require.Equal(t, point{}, values[0])

	ty.Fill(ptr(&values[0]), 2, ptr(&values[3]))
	require.Equal(t, []point{{3, 3}, {3, 3}, {2, 2}, {3, 3}}, values)

	ty.Swap(ptr(&values[0]), ptr(&values[2]))
	require.Equal(t, point{2, 2}, values[0])

	require.True(t, ty.Equal(ptr(&values[1]), ptr(&values[3])))

	ty.Set(ptr(&values[0]), point{7, 8})
	require.Equal(t, point{7, 8}, ty.Get(ptr(&values[0])))

	// the generic instantiation replaces the reflection based one
	typed := ColumnTypeOf[point]()
	require.NotSame(t, ty, typed)
	require.Equal(t, ty.Id, typed.Id)
	require.Same(t, typed, ColumnTypeFor(reflect.TypeFor[point]()))
}

func TestRelocate(t *testing.T) {
	ty := ColumnTypeOf[string]()

	t.Run("disjoint", func(t *testing.T) {
		src := []string{"a", "b", "c"}
		dst := make([]string, 3)

		Relocate(ty, ptr(&dst[0]), ptr(&src[0]), 3)
		require.Equal(t, []string{"a", "b", "c"}, dst)
		require.Equal(t, []string{"", "", ""}, src)
	})

	t.Run("overlap up", func(t *testing.T) {
		values := []string{"a", "b", "c", "", ""}

		Relocate(ty, ptr(&values[2]), ptr(&values[0]), 3)
		require.Equal(t, []string{"", "", "a", "b", "c"}, values)
	})

	t.Run("overlap down", func(t *testing.T) {
		values := []string{"", "", "a", "b", "c"}

		Relocate(ty, ptr(&values[1]), ptr(&values[2]), 3)
		require.Equal(t, []string{"", "a", "b", "c", ""}, values)
	})
}
