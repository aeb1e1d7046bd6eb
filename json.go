package soa

import (
	"bytes"
	"fmt"
	"reflect"
	"strconv"

	gojson "github.com/goccy/go-json"
)

// Key returns the symbolic name of a column or, for unnamed columns, its index.
func (s *Schema) Key(col int) string {
	if name := s.columns[col].Name; name != "" {
		return name
	}

	return strconv.Itoa(col)
}

// MarshalJSON encodes the table as an array of objects, one per row. Each
// object holds the values of a row keyed by the column name, or the
// column index for unnamed columns.
func (t *Table) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	keys := make([][]byte, len(t.types))
	for col := range t.types {
		key, err := gojson.Marshal(t.schema.Key(col))
		if err != nil {
			return nil, err
		}

		keys[col] = key
	}

	buf.WriteByte('[')

	for row, ref := range t.All() {
		if row > 0 {
			buf.WriteByte(',')
		}

		buf.WriteByte('{')

		for col := range t.types {
			if col > 0 {
				buf.WriteByte(',')
			}

			buf.Write(keys[col])
			buf.WriteByte(':')

			value, err := gojson.Marshal(ref.Get(col))
			if err != nil {
				return nil, fmt.Errorf("encode row %d, column %d: %w", row, col, err)
			}

			buf.Write(value)
		}

		buf.WriteByte('}')
	}

	buf.WriteByte(']')

	return buf.Bytes(), nil
}

// UnmarshalJSON replaces the rows of the table with the rows decoded from an
// array of objects as written by MarshalJSON. Missing keys decode to zero values.
// The table must have been created using NewTable before.
func (t *Table) UnmarshalJSON(data []byte) error {
	if t.schema == nil {
		return fmt.Errorf("decode into table without schema")
	}

	var objects []map[string]gojson.RawMessage
	if err := gojson.Unmarshal(data, &objects); err != nil {
		return fmt.Errorf("decode rows: %w", err)
	}

	rows := make([][]any, len(objects))

	for row, object := range objects {
		values := make([]any, len(t.types))

		for col, ty := range t.types {
			value := reflect.New(ty.Type)

			if raw, ok := object[t.schema.Key(col)]; ok {
				if err := gojson.Unmarshal(raw, value.Interface()); err != nil {
					return fmt.Errorf("decode row %d, column %d: %w", row, col, err)
				}
			}

			values[col] = value.Interface()
		}

		rows[row] = values
	}

	t.AssignRows(rows)

	return nil
}
