package spoke

import (
	"reflect"
	"unsafe"
)

func makeReflectColumnType(reflectType reflect.Type, id ColumnTypeId) *ColumnType {
	sliceAt := func(ptr unsafe.Pointer, n int) reflect.Value {
		return reflect.SliceAt(reflectType, ptr, n)
	}

	valueAt := func(ptr unsafe.Pointer) reflect.Value {
		return reflect.NewAt(reflectType, ptr).Elem()
	}

	ty := &ColumnType{
		Id:          id,
		Type:        reflectType,
		Name:        reflectType.String(),
		Size:        reflectType.Size(),
		Align:       uintptr(reflectType.Align()),
		HasPointers: typeHasPointers(reflectType),

		Move: func(dst, src unsafe.Pointer, n int) {
			if n == 0 || dst == src {
				return
			}

			reflect.Copy(sliceAt(dst, n), sliceAt(src, n))
		},

		Clear: func(ptr unsafe.Pointer, n int) {
			if n == 0 {
				return
			}

			sliceAt(ptr, n).Clear()
		},

		Fill: func(ptr unsafe.Pointer, n int, value unsafe.Pointer) {
			if n == 0 {
				return
			}

			source := valueAt(value)

			values := sliceAt(ptr, n)
			for idx := range n {
				values.Index(idx).Set(source)
			}
		},

		Swap: func(a, b unsafe.Pointer) {
			valueA, valueB := valueAt(a), valueAt(b)

			tmp := reflect.New(reflectType).Elem()
			tmp.Set(valueA)
			valueA.Set(valueB)
			valueB.Set(tmp)
		},

		Set: func(ptr unsafe.Pointer, value any) {
			source := reflect.ValueOf(value)
			if source.Kind() == reflect.Pointer && source.Type().Elem() == reflectType {
				source = source.Elem()
			}

			valueAt(ptr).Set(source)
		},

		Get: func(ptr unsafe.Pointer) any {
			return valueAt(ptr).Interface()
		},
	}

	if reflectType.Comparable() {
		ty.Equal = func(a, b unsafe.Pointer) bool {
			return valueAt(a).Equal(valueAt(b))
		}
	}

	ty.Compare = orderedCompareOf(reflectType)

	return ty
}
