package soaarrow

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unsafe"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/oliverbestmann/soa"
)

var ErrUnsupportedColumn = errors.New("column type not supported")
var ErrSchemaMismatch = errors.New("record does not match table schema")

type converter struct {
	dataType arrow.DataType

	// appendTo appends n values of the column starting at base to the builder.
	appendTo func(builder array.Builder, base unsafe.Pointer, n int)

	// copyFrom writes the values of the array to the column starting at base.
	// Null values are written as zero values.
	copyFrom func(arr arrow.Array, base unsafe.Pointer)
}

var converters = map[reflect.Kind]converter{
	reflect.Bool:    converterOf[bool, *array.BooleanBuilder, *array.Boolean](arrow.FixedWidthTypes.Boolean, nil),
	reflect.Int8:    converterOf[int8, *array.Int8Builder, *array.Int8](arrow.PrimitiveTypes.Int8, nil),
	reflect.Int16:   converterOf[int16, *array.Int16Builder, *array.Int16](arrow.PrimitiveTypes.Int16, nil),
	reflect.Int32:   converterOf[int32, *array.Int32Builder, *array.Int32](arrow.PrimitiveTypes.Int32, nil),
	reflect.Int64:   converterOf[int64, *array.Int64Builder, *array.Int64](arrow.PrimitiveTypes.Int64, nil),
	reflect.Uint8:   converterOf[uint8, *array.Uint8Builder, *array.Uint8](arrow.PrimitiveTypes.Uint8, nil),
	reflect.Uint16:  converterOf[uint16, *array.Uint16Builder, *array.Uint16](arrow.PrimitiveTypes.Uint16, nil),
	reflect.Uint32:  converterOf[uint32, *array.Uint32Builder, *array.Uint32](arrow.PrimitiveTypes.Uint32, nil),
	reflect.Uint64:  converterOf[uint64, *array.Uint64Builder, *array.Uint64](arrow.PrimitiveTypes.Uint64, nil),
	reflect.Float32: converterOf[float32, *array.Float32Builder, *array.Float32](arrow.PrimitiveTypes.Float32, nil),
	reflect.Float64: converterOf[float64, *array.Float64Builder, *array.Float64](arrow.PrimitiveTypes.Float64, nil),
	reflect.String:  converterOf[string, *array.StringBuilder, *array.String](arrow.BinaryTypes.String, strings.Clone),
}

func init() {
	if strconv.IntSize == 64 {
		converters[reflect.Int] = converters[reflect.Int64]
		converters[reflect.Uint] = converters[reflect.Uint64]
	}
}

type valueBuilder[V any] interface {
	array.Builder
	AppendValues(values []V, valid []bool)
}

type valueArray[V any] interface {
	arrow.Array
	Value(idx int) V
}

// converterOf creates a converter for values of type V. If detach is set, it is
// applied to each value read from an array, to copy out data that still
// references the array's buffers.
func converterOf[V any, B valueBuilder[V], A valueArray[V]](dataType arrow.DataType, detach func(V) V) converter {
	return converter{
		dataType: dataType,

		appendTo: func(builder array.Builder, base unsafe.Pointer, n int) {
			if n == 0 {
				return
			}

			builder.(B).AppendValues(unsafe.Slice((*V)(base), n), nil)
		},

		copyFrom: func(arr arrow.Array, base unsafe.Pointer) {
			if arr.Len() == 0 {
				return
			}

			typed := arr.(A)

			values := unsafe.Slice((*V)(base), arr.Len())
			for idx := range values {
				if typed.IsNull(idx) {
					var zero V
					values[idx] = zero
					continue
				}

				value := typed.Value(idx)
				if detach != nil {
					value = detach(value)
				}

				values[idx] = value
			}
		},
	}
}

func converterFor(schema *soa.Schema, col int) (converter, error) {
	ty := schema.Type(col)

	conv, ok := converters[ty.Type.Kind()]
	if !ok {
		return converter{}, fmt.Errorf("column %q of type %s: %w", schema.Key(col), ty, ErrUnsupportedColumn)
	}

	return conv, nil
}

// Schema returns the arrow schema matching the columns of a table schema.
// Fields are named after the symbolic name of the column, or its index if the
// column is unnamed.
func Schema(schema *soa.Schema) (*arrow.Schema, error) {
	fields := make([]arrow.Field, schema.Len())

	for col := range fields {
		conv, err := converterFor(schema, col)
		if err != nil {
			return nil, err
		}

		fields[col] = arrow.Field{Name: schema.Key(col), Type: conv.dataType}
	}

	return arrow.NewSchema(fields, nil), nil
}

// Record copies all rows of the table into a new arrow record. The caller must
// release the record.
func Record(table *soa.Table, mem memory.Allocator) (arrow.Record, error) {
	schema := table.Schema()

	arrowSchema, err := Schema(schema)
	if err != nil {
		return nil, err
	}

	builder := array.NewRecordBuilder(mem, arrowSchema)
	defer builder.Release()

	builder.Reserve(table.Len())

	bases := table.Data()
	for col := range bases {
		conv, _ := converterFor(schema, col)
		conv.appendTo(builder.Field(col), bases[col], table.Len())
	}

	return builder.NewRecord(), nil
}

// AppendRecord appends the rows of the record to the table. The record must have
// one column per table column with the matching arrow type.
func AppendRecord(table *soa.Table, record arrow.Record) error {
	schema := table.Schema()

	arrowSchema, err := Schema(schema)
	if err != nil {
		return err
	}

	if int(record.NumCols()) != len(arrowSchema.Fields()) {
		return fmt.Errorf("record has %d columns, expected %d: %w", record.NumCols(), schema.Len(), ErrSchemaMismatch)
	}

	for col, field := range arrowSchema.Fields() {
		if !arrow.TypeEqual(record.Column(col).DataType(), field.Type) {
			return fmt.Errorf(
				"column %d has type %s, expected %s: %w",
				col, record.Column(col).DataType(), field.Type, ErrSchemaMismatch,
			)
		}
	}

	if record.NumRows() == 0 {
		return nil
	}

	offset := table.Len()
	table.Resize(offset + int(record.NumRows()))

	for col := range schema.Len() {
		conv, _ := converterFor(schema, col)
		conv.copyFrom(record.Column(col), table.Column(col).At(offset))
	}

	return nil
}
