package recordset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/colkit/colkit/pkg/errors"
	"github.com/colkit/colkit/pkg/json"
)

// WriteJSON writes the record set as a JSON array of objects keyed by
// column name.
func (rs *RecordSet) WriteJSON(w io.Writer) error {
	names := rs.ColumnNames()
	out := make([]map[string]interface{}, 0, rs.RowCount())

	it := rs.Iterate()
	for it.Next() {
		row, err := it.Row()
		if err != nil {
			return err
		}
		obj := make(map[string]interface{}, len(names))
		for i, name := range names {
			obj[name] = row[i]
		}
		out = append(out, obj)
	}

	if err := json.MarshalToWriter(w, out); err != nil {
		return errors.Wrap(err, errors.ErrorTypeData, "encoding record set as JSON")
	}
	return nil
}

// WriteCSV writes the record set as CSV with a header row of column
// names.
func (rs *RecordSet) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(rs.ColumnNames()); err != nil {
		return errors.Wrap(err, errors.ErrorTypeData, "writing CSV header")
	}

	record := make([]string, rs.ColumnCount())
	it := rs.Iterate()
	for it.Next() {
		row, err := it.Row()
		if err != nil {
			return err
		}
		for i, v := range row {
			record[i] = formatValue(v)
		}
		if err := cw.Write(record); err != nil {
			return errors.Wrap(err, errors.ErrorTypeData, "writing CSV row")
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Wrap(err, errors.ErrorTypeData, "flushing CSV output")
	}
	return nil
}

// formatValue renders a column value as a CSV field.
func formatValue(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case bool:
		return strconv.FormatBool(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case time.Time:
		return v.Format(time.RFC3339)
	default:
		return fmt.Sprint(v)
	}
}
