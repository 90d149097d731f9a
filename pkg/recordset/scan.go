package recordset

import (
	"database/sql"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/colkit/colkit/pkg/column"
	"github.com/colkit/colkit/pkg/errors"
	"github.com/colkit/colkit/pkg/logger"
)

// columnBuilder accumulates one column's values while rows are scanned,
// then constructs the finished column. The backing store is populated
// first and the column created last, so the bool variant's shadow copy
// happens once over the full data.
type columnBuilder struct {
	dest      interface{}
	appendRow func()
	build     func() column.Column
}

// FromRows drains a database/sql result into a record set of typed
// columns. Column kinds are chosen from the driver's reported database
// type names; NULL values are stored as the column type's zero value.
// The rows are closed by the caller.
func FromRows(rows *sql.Rows) (*RecordSet, error) {
	cts, err := rows.ColumnTypes()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeQuery, "reading column metadata")
	}

	builders := make([]*columnBuilder, len(cts))
	dests := make([]interface{}, len(cts))
	for i, ct := range cts {
		builders[i] = newColumnBuilder(i, ct)
		dests[i] = builders[i].dest
	}

	rowCount := 0
	for rows.Next() {
		if err := rows.Scan(dests...); err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeData, "scanning row")
		}
		for _, b := range builders {
			b.appendRow()
		}
		rowCount++
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeQuery, "iterating rows")
	}

	cols := make([]column.Column, len(builders))
	for i, b := range builders {
		cols[i] = b.build()
	}

	logger.Get().Debug("record set populated",
		zap.Int("rows", rowCount),
		zap.Int("columns", len(cols)))

	return New(cols...)
}

func newColumnBuilder(pos int, ct *sql.ColumnType) *columnBuilder {
	meta := column.MetaColumn{
		Name:     ct.Name(),
		Position: uint(pos),
	}
	if n, ok := ct.Length(); ok && n > 0 {
		meta.Length = uint(n)
	}
	if p, _, ok := ct.DecimalSize(); ok && p > 0 {
		meta.Precision = uint(p)
	}

	switch typeName := strings.ToUpper(ct.DatabaseTypeName()); {
	case isBoolType(typeName):
		meta.Type = column.TypeBool
		data := column.NewBitset()
		v := &sql.NullBool{}
		return &columnBuilder{
			dest:      v,
			appendRow: func() { data.Append(v.Bool) },
			build:     func() column.Column { return column.NewBool(meta, data) },
		}

	case isIntType(typeName):
		meta.Type = column.TypeInt64
		data := &[]int64{}
		v := &sql.NullInt64{}
		return &columnBuilder{
			dest:      v,
			appendRow: func() { *data = append(*data, v.Int64) },
			build:     func() column.Column { return column.NewSlice(meta, data) },
		}

	case isFloatType(typeName):
		meta.Type = column.TypeFloat64
		data := &[]float64{}
		v := &sql.NullFloat64{}
		return &columnBuilder{
			dest:      v,
			appendRow: func() { *data = append(*data, v.Float64) },
			build:     func() column.Column { return column.NewSlice(meta, data) },
		}

	case isTimeType(typeName):
		meta.Type = column.TypeTimestamp
		data := &[]time.Time{}
		v := &sql.NullTime{}
		return &columnBuilder{
			dest:      v,
			appendRow: func() { *data = append(*data, v.Time) },
			build:     func() column.Column { return column.NewSlice(meta, data) },
		}

	case isBytesType(typeName):
		meta.Type = column.TypeBytes
		data := &[][]byte{}
		v := &[]byte{}
		return &columnBuilder{
			dest: v,
			appendRow: func() {
				row := make([]byte, len(*v))
				copy(row, *v)
				*data = append(*data, row)
			},
			build: func() column.Column { return column.NewSlice(meta, data) },
		}

	default:
		meta.Type = column.TypeString
		data := &[]string{}
		v := &sql.NullString{}
		return &columnBuilder{
			dest:      v,
			appendRow: func() { *data = append(*data, v.String) },
			build:     func() column.Column { return column.NewSlice(meta, data) },
		}
	}
}

func isBoolType(name string) bool {
	switch name {
	case "BOOL", "BOOLEAN", "BIT":
		return true
	}
	return false
}

func isIntType(name string) bool {
	switch name {
	case "TINYINT", "SMALLINT", "MEDIUMINT", "INT", "INTEGER", "BIGINT",
		"INT2", "INT4", "INT8", "SERIAL", "BIGSERIAL", "UNSIGNED BIGINT":
		return true
	}
	return false
}

func isFloatType(name string) bool {
	switch name {
	case "FLOAT", "DOUBLE", "REAL", "FLOAT4", "FLOAT8", "NUMERIC", "DECIMAL":
		return true
	}
	return false
}

func isTimeType(name string) bool {
	switch name {
	case "DATE", "DATETIME", "TIME", "TIMESTAMP", "TIMESTAMPTZ":
		return true
	}
	return false
}

func isBytesType(name string) bool {
	switch name {
	case "BLOB", "TINYBLOB", "MEDIUMBLOB", "LONGBLOB",
		"BYTEA", "BINARY", "VARBINARY":
		return true
	}
	return false
}
