package soa

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/oliverbestmann/soa/internal/refl"
	"github.com/oliverbestmann/soa/internal/set"
	"github.com/oliverbestmann/soa/spoke"
)

// ColumnDef declares a single column of a Schema.
type ColumnDef struct {
	// Name is the symbolic name of the column, empty for an unnamed column.
	Name string
	Type *spoke.ColumnType
}

// Col declares a column holding values of type T.
func Col[T any](name string) ColumnDef {
	return ColumnDef{Name: name, Type: spoke.ColumnTypeOf[T]()}
}

// Schema is the fixed, ordered set of columns of a Table. It maps symbolic
// names to column indices. A Schema is immutable and can be shared between
// any number of tables.
type Schema struct {
	columns []ColumnDef
	types   []*spoke.ColumnType
	byHash  map[NameHash]int
}

func NewSchema(defs ...ColumnDef) (*Schema, error) {
	schema := &Schema{
		columns: make([]ColumnDef, len(defs)),
		types:   make([]*spoke.ColumnType, len(defs)),
		byHash:  make(map[NameHash]int),
	}

	var seen set.Set[NameHash]

	for idx, def := range defs {
		if def.Type == nil {
			return nil, fmt.Errorf("column %d has no type", idx)
		}

		schema.columns[idx] = def
		schema.types[idx] = def.Type

		if def.Name == "" {
			continue
		}

		hash := Hash(def.Name)
		if !seen.Insert(hash) {
			other := schema.columns[schema.byHash[hash]].Name
			return nil, fmt.Errorf("column %d %q collides with %q: %w", idx, def.Name, other, ErrDuplicateName)
		}

		schema.byHash[hash] = idx
	}

	return schema, nil
}

// MustSchema is like NewSchema but panics on error. Use it to declare a schema at package level.
func MustSchema(defs ...ColumnDef) *Schema {
	schema, err := NewSchema(defs...)
	if err != nil {
		panic(err)
	}

	return schema
}

// SchemaOf derives a Schema from the fields of struct T. Fields are stored in declaration order
// and named after the field. Use a `soa:"name"` tag to overwrite the name, `soa:"-"` to skip a field.
func SchemaOf[T any]() (*Schema, error) {
	fields, err := refl.ColumnFields(reflect.TypeFor[T]())
	if err != nil {
		return nil, err
	}

	defs := make([]ColumnDef, len(fields))
	for idx, field := range fields {
		defs[idx] = ColumnDef{Name: field.Name, Type: spoke.ColumnTypeFor(field.Type)}
	}

	return NewSchema(defs...)
}

func (s *Schema) Len() int {
	return len(s.columns)
}

func (s *Schema) Column(idx int) ColumnDef {
	return s.columns[idx]
}

func (s *Schema) Type(idx int) *spoke.ColumnType {
	return s.types[idx]
}

// Name returns the symbolic name of a column or an empty string.
func (s *Schema) Name(idx int) string {
	return s.columns[idx].Name
}

// Resolve translates a name hash to the index of its column.
func (s *Schema) Resolve(hash NameHash) (int, bool) {
	idx, ok := s.byHash[hash]
	return idx, ok
}

// Index returns the column with the given symbolic name. Asking for a name
// that is not part of the schema is a programming error and panics.
func (s *Schema) Index(name string) int {
	idx, ok := s.Resolve(Hash(name))
	if !ok || s.columns[idx].Name != name {
		panic(fmt.Errorf("%q in %s: %w", name, s, ErrNameNotFound))
	}

	return idx
}

// IndexOfType returns the index of the only column of the given type.
func (s *Schema) IndexOfType(ty reflect.Type) (int, error) {
	found := -1

	for idx, columnType := range s.types {
		if columnType.Type != ty {
			continue
		}

		if found >= 0 {
			return 0, fmt.Errorf("%s in %s: %w", ty, s, ErrAmbiguousType)
		}

		found = idx
	}

	if found < 0 {
		return 0, fmt.Errorf("%s in %s: %w", ty, s, ErrTypeNotFound)
	}

	return found, nil
}

// Matches returns true if both schemas have the same column types in the same order.
func (s *Schema) Matches(other *Schema) bool {
	if s == other {
		return true
	}

	if len(s.types) != len(other.types) {
		return false
	}

	for idx := range s.types {
		if s.types[idx].Type != other.types[idx].Type {
			return false
		}
	}

	return true
}

func (s *Schema) String() string {
	var sb strings.Builder

	sb.WriteString("Schema(")
	for idx, column := range s.columns {
		if idx > 0 {
			sb.WriteString(", ")
		}

		if column.Name != "" {
			sb.WriteString(column.Name)
			sb.WriteString(" ")
		}

		sb.WriteString(column.Type.Name)
	}
	sb.WriteString(")")

	return sb.String()
}
