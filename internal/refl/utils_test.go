package refl

import (
	"reflect"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

type particle struct {
	Position [2]float32 `soa:"pos"`
	Mass     float64
	Cache    []byte `soa:"-"`
	Alive    bool   `soa:""`
	dirty    bool
}

func TestColumnFields(t *testing.T) {
	fields, err := ColumnFields(reflect.TypeFor[particle]())
	require.NoError(t, err)

	require.Equal(t, []Field{
		{Name: "pos", Type: reflect.TypeFor[[2]float32](), Offset: unsafe.Offsetof(particle{}.Position)},
		{Name: "Mass", Type: reflect.TypeFor[float64](), Offset: unsafe.Offsetof(particle{}.Mass)},
		{Name: "Alive", Type: reflect.TypeFor[bool](), Offset: unsafe.Offsetof(particle{}.Alive)},
	}, fields)
}

func TestColumnFields_NoStruct(t *testing.T) {
	_, err := ColumnFields(reflect.TypeFor[int]())
	require.Error(t, err)
}

func TestIterFields(t *testing.T) {
	var names []string
	for field := range IterFields(reflect.TypeFor[particle]()) {
		names = append(names, field.Name)
		if field.Name == "Mass" {
			break
		}
	}

	require.Equal(t, []string{"Position", "Mass"}, names)
}
