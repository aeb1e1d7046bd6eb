package spoke

import (
	"cmp"
	"fmt"
	"maps"
	"reflect"
	"sync/atomic"
	"unsafe"

	"go.uber.org/zap"
)

type ColumnTypeId uint16

// Comparer can be implemented by column values to define an ordering
// for types that do not have an ordered kind.
type Comparer[T any] interface {
	Compare(other T) int
}

// ColumnType describes the element type of one column and holds the type
// erased operations the container uses to move rows around.
type ColumnType struct {
	Name string
	Type reflect.Type

	// The Id of the type
	Id ColumnTypeId

	Size  uintptr
	Align uintptr

	// HasPointers indicates that a value of the type contains pointers, e.g.
	// by having a field of type *T, a string, a slice or a map value.
	HasPointers bool

	// Move copies n values from src to dst. The ranges may overlap.
	Move func(dst, src unsafe.Pointer, n int)

	// Clear resets n values starting at ptr to the zero value. This drops any
	// references the values hold.
	Clear func(ptr unsafe.Pointer, n int)

	// Fill copies the value at value into the n slots starting at ptr.
	Fill func(ptr unsafe.Pointer, n int, value unsafe.Pointer)

	Swap func(a, b unsafe.Pointer)

	// Equal is only defined if the type is comparable.
	Equal func(a, b unsafe.Pointer) bool

	// Compare is only defined for types with an ordered kind or for types
	// implementing Comparer.
	Compare func(a, b unsafe.Pointer) int

	Set func(ptr unsafe.Pointer, value any)
	Get func(ptr unsafe.Pointer) any

	// typed is set if the operations were instantiated for the static type
	// instead of going through reflection.
	typed bool
}

func (c *ColumnType) String() string {
	return c.Name
}

func (c *ColumnType) Comparable() bool {
	return c.Equal != nil
}

func (c *ColumnType) Ordered() bool {
	return c.Compare != nil
}

var columnTypes atomic.Pointer[map[reflect.Type]*ColumnType]

func init() {
	// initialize the lookup table
	columnTypes.Store(&map[reflect.Type]*ColumnType{})
}

// ColumnTypeOf returns the ColumnType for T. The type is registered on first use.
func ColumnTypeOf[T any]() *ColumnType {
	reflectType := reflect.TypeFor[T]()

	if cached, ok := (*columnTypes.Load())[reflectType]; ok && cached.typed {
		return cached
	}

	return ensureColumnType(reflectType, true, makeColumnType[T])
}

// ColumnTypeFor returns the ColumnType for a type only known at runtime. If
// the type was not yet registered through ColumnTypeOf, the operations are
// implemented using reflection.
func ColumnTypeFor(reflectType reflect.Type) *ColumnType {
	if cached, ok := (*columnTypes.Load())[reflectType]; ok {
		return cached
	}

	return ensureColumnType(reflectType, false, func(id ColumnTypeId) *ColumnType {
		return makeReflectColumnType(reflectType, id)
	})
}

func ensureColumnType(reflectType reflect.Type, typed bool, makeType func(id ColumnTypeId) *ColumnType) *ColumnType {
	for {
		previousTypes := columnTypes.Load()

		newTypeId := ColumnTypeId(len(*previousTypes) + 1)

		cached, ok := (*previousTypes)[reflectType]
		if ok {
			if cached.typed || !typed {
				return cached
			}

			// upgrade a reflection based type, keep its id
			newTypeId = cached.Id
		}

		newType := makeType(newTypeId)

		newTypes := maps.Clone(*previousTypes)
		newTypes[reflectType] = newType

		if columnTypes.CompareAndSwap(previousTypes, &newTypes) {
			Logger().Debug(
				"column type registered",
				zap.String("name", newType.Name),
				zap.Int("id", int(newType.Id)),
				zap.Bool("typed", newType.typed),
			)

			return newType
		}
	}
}

func makeColumnType[T any](id ColumnTypeId) *ColumnType {
	reflectType := reflect.TypeFor[T]()

	ty := &ColumnType{
		Id:          id,
		Type:        reflectType,
		Name:        reflectType.String(),
		Size:        reflectType.Size(),
		Align:       uintptr(reflectType.Align()),
		HasPointers: typeHasPointers(reflectType),
		Move:        moveValues[T],
		Clear:       clearValues[T],
		Fill:        fillValues[T],
		Swap:        swapValues[T],
		Set:         setValue[T],
		Get:         getValue[T],
		typed:       true,
	}

	if reflectType.Comparable() {
		ty.Equal = equalValues[T]
	}

	var zeroValue T
	if _, ok := any(zeroValue).(Comparer[T]); ok {
		ty.Compare = compareWithComparer[T]
	} else {
		ty.Compare = orderedCompareOf(reflectType)
	}

	return ty
}

func moveValues[T any](dst, src unsafe.Pointer, n int) {
	if n == 0 || dst == src {
		return
	}

	copy(unsafe.Slice((*T)(dst), n), unsafe.Slice((*T)(src), n))
}

func clearValues[T any](ptr unsafe.Pointer, n int) {
	if n == 0 {
		return
	}

	clear(unsafe.Slice((*T)(ptr), n))
}

func fillValues[T any](ptr unsafe.Pointer, n int, value unsafe.Pointer) {
	if n == 0 {
		return
	}

	v := *(*T)(value)

	values := unsafe.Slice((*T)(ptr), n)
	for idx := range values {
		values[idx] = v
	}
}

func swapValues[T any](a, b unsafe.Pointer) {
	ptrA, ptrB := (*T)(a), (*T)(b)
	*ptrA, *ptrB = *ptrB, *ptrA
}

func equalValues[T any](a, b unsafe.Pointer) bool {
	return any(*(*T)(a)) == any(*(*T)(b))
}

func compareWithComparer[T any](a, b unsafe.Pointer) int {
	return any(*(*T)(a)).(Comparer[T]).Compare(*(*T)(b))
}

func setValue[T any](ptr unsafe.Pointer, value any) {
	switch value := value.(type) {
	case T:
		*(*T)(ptr) = value
	case *T:
		*(*T)(ptr) = *value
	default:
		var zeroValue T
		panic(fmt.Errorf("got type %T, expected either %T or %T", value, zeroValue, &zeroValue))
	}
}

func getValue[T any](ptr unsafe.Pointer) any {
	return *(*T)(ptr)
}

func orderedCompareOf(ty reflect.Type) func(a, b unsafe.Pointer) int {
	switch ty.Kind() {
	case reflect.Bool:
		return compareBool
	case reflect.Int:
		return compareOrdered[int]
	case reflect.Int8:
		return compareOrdered[int8]
	case reflect.Int16:
		return compareOrdered[int16]
	case reflect.Int32:
		return compareOrdered[int32]
	case reflect.Int64:
		return compareOrdered[int64]
	case reflect.Uint:
		return compareOrdered[uint]
	case reflect.Uint8:
		return compareOrdered[uint8]
	case reflect.Uint16:
		return compareOrdered[uint16]
	case reflect.Uint32:
		return compareOrdered[uint32]
	case reflect.Uint64:
		return compareOrdered[uint64]
	case reflect.Uintptr:
		return compareOrdered[uintptr]
	case reflect.Float32:
		return compareOrdered[float32]
	case reflect.Float64:
		return compareOrdered[float64]
	case reflect.String:
		return compareOrdered[string]
	default:
		return nil
	}
}

// compareOrdered reinterprets the values as O. This is valid for every
// named type with the same underlying kind.
func compareOrdered[O cmp.Ordered](a, b unsafe.Pointer) int {
	return cmp.Compare(*(*O)(a), *(*O)(b))
}

func compareBool(a, b unsafe.Pointer) int {
	lhs, rhs := *(*bool)(a), *(*bool)(b)

	switch {
	case lhs == rhs:
		return 0
	case !lhs:
		return -1
	default:
		return 1
	}
}

func typeHasPointers(ty reflect.Type) bool {
	switch ty.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.String, reflect.Slice,
		reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return true

	case reflect.Array:
		return ty.Len() > 0 && typeHasPointers(ty.Elem())

	case reflect.Struct:
		for idx := range ty.NumField() {
			if typeHasPointers(ty.Field(idx).Type) {
				return true
			}
		}

		return false

	default:
		return false
	}
}
