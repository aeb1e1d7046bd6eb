package soa

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSchema(t *testing.T) {
	schema, err := NewSchema(
		Col[int]("someInt"),
		Col[float32](""),
		Col[string]("name"),
	)
	require.NoError(t, err)

	require.Equal(t, 3, schema.Len())
	require.Equal(t, "someInt", schema.Name(0))
	require.Equal(t, "", schema.Name(1))
	require.Equal(t, reflect.TypeFor[string](), schema.Type(2).Type)

	idx, ok := schema.Resolve(56441375)
	require.True(t, ok)
	require.Equal(t, 0, idx)

	_, ok = schema.Resolve(Hash("missing"))
	require.False(t, ok)

	require.Equal(t, 2, schema.Index("name"))
	require.Panics(t, func() { schema.Index("missing") })

	require.Equal(t, "Schema(someInt int, float32, name string)", schema.String())
}

func TestNewSchema_DuplicateName(t *testing.T) {
	_, err := NewSchema(Col[int]("x"), Col[int]("y"), Col[float32]("x"))
	require.ErrorIs(t, err, ErrDuplicateName)

	// names with the same hash are rejected too
	_, err = NewSchema(Col[int]("Ba"), Col[int]("!b"))
	require.ErrorIs(t, err, ErrDuplicateName)

	// unnamed columns never collide
	_, err = NewSchema(Col[int](""), Col[int](""))
	require.NoError(t, err)

	require.Panics(t, func() { MustSchema(Col[int]("x"), Col[int]("x")) })
}

func TestNewSchema_MissingType(t *testing.T) {
	_, err := NewSchema(ColumnDef{Name: "x"})
	require.Error(t, err)
}

func TestSchema_Index_Collision(t *testing.T) {
	schema := MustSchema(Col[int]("Ba"))
	require.Equal(t, 0, schema.Index("Ba"))
	require.Panics(t, func() { schema.Index("!b") })
}

func TestSchema_IndexOfType(t *testing.T) {
	schema := MustSchema(Col[int]("a"), Col[float32]("b"), Col[int]("c"))

	idx, err := schema.IndexOfType(reflect.TypeFor[float32]())
	require.NoError(t, err)
	require.Equal(t, 1, idx)

	_, err = schema.IndexOfType(reflect.TypeFor[int]())
	require.ErrorIs(t, err, ErrAmbiguousType)

	_, err = schema.IndexOfType(reflect.TypeFor[string]())
	require.ErrorIs(t, err, ErrTypeNotFound)
}

func TestSchema_Matches(t *testing.T) {
	a := MustSchema(Col[int]("a"), Col[string]("b"))
	b := MustSchema(Col[int]("x"), Col[string]("y"))
	c := MustSchema(Col[string]("a"), Col[int]("b"))

	require.True(t, a.Matches(a))
	require.True(t, a.Matches(b))
	require.False(t, a.Matches(c))
	require.False(t, a.Matches(MustSchema(Col[int]("a"))))
}

type Particle struct {
	Position [2]float64 `soa:"pos"`
	Mass     float32
	Debug    string `soa:"-"`
	internal int
}

func TestSchemaOf(t *testing.T) {
	schema, err := SchemaOf[Particle]()
	require.NoError(t, err)

	require.Equal(t, 2, schema.Len())
	require.Equal(t, "pos", schema.Name(0))
	require.Equal(t, "Mass", schema.Name(1))
	require.Equal(t, reflect.TypeFor[[2]float64](), schema.Type(0).Type)
	require.Equal(t, reflect.TypeFor[float32](), schema.Type(1).Type)

	_, err = SchemaOf[int]()
	require.Error(t, err)
}
