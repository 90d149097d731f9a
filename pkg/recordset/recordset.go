// Package recordset assembles typed columns into result sets and moves
// them between a database/sql source and JSON, CSV or Arrow outputs.
package recordset

import (
	"go.uber.org/zap"

	"github.com/colkit/colkit/pkg/column"
	"github.com/colkit/colkit/pkg/errors"
	"github.com/colkit/colkit/pkg/logger"
)

// RecordSet is an ordered collection of columns holding one query's
// result data. All columns carry the same number of rows.
type RecordSet struct {
	columns []column.Column
	byName  map[string]int
	log     *zap.Logger
}

// New creates a record set over the given columns. Column names must be
// unique and row counts must agree across columns.
func New(cols ...column.Column) (*RecordSet, error) {
	byName := make(map[string]int, len(cols))
	for i, col := range cols {
		if _, dup := byName[col.Name()]; dup {
			return nil, errors.Newf(errors.ErrorTypeValidation, "duplicate column name %q", col.Name())
		}
		byName[col.Name()] = i

		if col.RowCount() != cols[0].RowCount() {
			return nil, errors.Newf(errors.ErrorTypeValidation,
				"column %q has %d rows, expected %d", col.Name(), col.RowCount(), cols[0].RowCount())
		}
	}

	return &RecordSet{
		columns: cols,
		byName:  byName,
		log:     logger.Get(),
	}, nil
}

// RowCount returns the number of rows held by the record set.
func (rs *RecordSet) RowCount() int {
	if len(rs.columns) == 0 {
		return 0
	}
	return rs.columns[0].RowCount()
}

// ColumnCount returns the number of columns.
func (rs *RecordSet) ColumnCount() int {
	return len(rs.columns)
}

// Columns returns the columns in ordinal order.
func (rs *RecordSet) Columns() []column.Column {
	return rs.columns
}

// ColumnNames returns the column names in ordinal order.
func (rs *RecordSet) ColumnNames() []string {
	names := make([]string, len(rs.columns))
	for i, col := range rs.columns {
		names[i] = col.Name()
	}
	return names
}

// Column returns the column at the given ordinal position.
func (rs *RecordSet) Column(i int) (column.Column, error) {
	if i < 0 || i >= len(rs.columns) {
		return nil, errors.Newf(errors.ErrorTypeNotFound, "no column at position %d", i)
	}
	return rs.columns[i], nil
}

// ColumnByName returns the column with the given name.
func (rs *RecordSet) ColumnByName(name string) (column.Column, bool) {
	i, ok := rs.byName[name]
	if !ok {
		return nil, false
	}
	return rs.columns[i], true
}

// Row assembles the values at the given row across all columns.
func (rs *RecordSet) Row(i int) ([]interface{}, error) {
	row := make([]interface{}, len(rs.columns))
	for c, col := range rs.columns {
		v, err := col.ValueAt(i)
		if err != nil {
			return nil, err
		}
		row[c] = v
	}
	return row, nil
}

// Reset empties every column's backing store.
func (rs *RecordSet) Reset() {
	for _, col := range rs.columns {
		col.Reset()
	}
	rs.log.Debug("record set reset", zap.Int("columns", len(rs.columns)))
}

// RowIterator provides sequential access to assembled rows.
type RowIterator struct {
	rs    *RecordSet
	index int
}

// Iterate returns a fresh iterator positioned before the first row.
func (rs *RecordSet) Iterate() *RowIterator {
	return &RowIterator{rs: rs, index: -1}
}

// Next advances to the next row.
func (it *RowIterator) Next() bool {
	it.index++
	return it.index < it.rs.RowCount()
}

// Row returns the current row.
func (it *RowIterator) Row() ([]interface{}, error) {
	return it.rs.Row(it.index)
}
