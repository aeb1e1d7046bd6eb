package refl

import (
	"fmt"
	"iter"
	"reflect"
)

func IterFields(ty reflect.Type) iter.Seq[reflect.StructField] {
	return func(yield func(reflect.StructField) bool) {
		for idx := range ty.NumField() {
			if !yield(ty.Field(idx)) {
				return
			}
		}
	}
}

// Field is a struct field that is stored as its own column.
type Field struct {
	Name   string
	Type   reflect.Type
	Offset uintptr
}

// ColumnFields returns the exported fields of the given struct type in declaration
// order. The name of a field can be overwritten using a `soa:"name"` tag,
// fields tagged with `soa:"-"` are skipped.
func ColumnFields(ty reflect.Type) ([]Field, error) {
	if ty.Kind() != reflect.Struct {
		return nil, fmt.Errorf("expected struct type, got %s", ty)
	}

	var fields []Field

	for field := range IterFields(ty) {
		if !field.IsExported() {
			continue
		}

		name := field.Name

		if tag, ok := field.Tag.Lookup("soa"); ok {
			if tag == "-" {
				continue
			}

			if tag != "" {
				name = tag
			}
		}

		fields = append(fields, Field{
			Name:   name,
			Type:   field.Type,
			Offset: field.Offset,
		})
	}

	return fields, nil
}
