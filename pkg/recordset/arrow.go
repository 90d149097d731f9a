package recordset

import (
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/colkit/colkit/pkg/column"
	"github.com/colkit/colkit/pkg/errors"
)

// ToArrow converts a record set to an Arrow record. The caller owns the
// returned record and must Release it. Timestamps are converted to
// microsecond precision.
func ToArrow(rs *RecordSet, mem memory.Allocator) (arrow.Record, error) {
	schema, err := arrowSchema(rs)
	if err != nil {
		return nil, err
	}

	rb := array.NewRecordBuilder(mem, schema)
	defer rb.Release()

	for i, col := range rs.Columns() {
		if err := appendColumn(rb.Field(i), col); err != nil {
			return nil, err
		}
	}

	return rb.NewRecord(), nil
}

// arrowSchema maps record-set column metadata to an Arrow schema.
func arrowSchema(rs *RecordSet) (*arrow.Schema, error) {
	fields := make([]arrow.Field, rs.ColumnCount())
	for i, col := range rs.Columns() {
		dt, err := arrowType(col.Type())
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeData, "mapping column "+col.Name())
		}
		fields[i] = arrow.Field{Name: col.Name(), Type: dt, Nullable: true}
	}
	return arrow.NewSchema(fields, nil), nil
}

func arrowType(t column.ColumnDataType) (arrow.DataType, error) {
	switch t {
	case column.TypeBool:
		return arrow.FixedWidthTypes.Boolean, nil
	case column.TypeInt8, column.TypeInt16, column.TypeInt32, column.TypeInt64,
		column.TypeUInt8, column.TypeUInt16, column.TypeUInt32, column.TypeUInt64:
		return arrow.PrimitiveTypes.Int64, nil
	case column.TypeFloat32, column.TypeFloat64:
		return arrow.PrimitiveTypes.Float64, nil
	case column.TypeString:
		return arrow.BinaryTypes.String, nil
	case column.TypeBytes:
		return arrow.BinaryTypes.Binary, nil
	case column.TypeTimestamp:
		return arrow.FixedWidthTypes.Timestamp_us, nil
	default:
		return nil, errors.Newf(errors.ErrorTypeData, "no Arrow mapping for column type %s", t)
	}
}

// appendColumn copies one column's rows into an Arrow array builder.
func appendColumn(b array.Builder, col column.Column) error {
	for row := 0; row < col.RowCount(); row++ {
		v, err := col.ValueAt(row)
		if err != nil {
			return err
		}
		if err := appendValue(b, v, col.Name()); err != nil {
			return err
		}
	}
	return nil
}

func appendValue(b array.Builder, v interface{}, name string) error {
	switch b := b.(type) {
	case *array.BooleanBuilder:
		bv, ok := v.(bool)
		if !ok {
			return errMismatch(name, "bool", v)
		}
		b.Append(bv)
	case *array.Int64Builder:
		iv, ok := v.(int64)
		if !ok {
			return errMismatch(name, "int64", v)
		}
		b.Append(iv)
	case *array.Float64Builder:
		fv, ok := v.(float64)
		if !ok {
			return errMismatch(name, "float64", v)
		}
		b.Append(fv)
	case *array.StringBuilder:
		sv, ok := v.(string)
		if !ok {
			return errMismatch(name, "string", v)
		}
		b.Append(sv)
	case *array.BinaryBuilder:
		bv, ok := v.([]byte)
		if !ok {
			return errMismatch(name, "[]byte", v)
		}
		b.Append(bv)
	case *array.TimestampBuilder:
		tv, ok := v.(time.Time)
		if !ok {
			return errMismatch(name, "time.Time", v)
		}
		b.Append(arrow.Timestamp(tv.UnixMicro()))
	default:
		return errors.Newf(errors.ErrorTypeData, "unsupported Arrow builder for column %q", name)
	}
	return nil
}

func errMismatch(name, want string, got interface{}) error {
	return errors.Newf(errors.ErrorTypeData, "column %q: expected %s, got %T", name, want, got)
}
