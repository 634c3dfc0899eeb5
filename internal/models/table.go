package models

import (
	"fmt"
	"sort"
	"strconv"
	"time"
)

// RecordTable maps a column name to its ordered values, one per row.
// All columns of a well-formed table have the same length.
//
// Readers only store string, int64, float64, bool, time.Time or nil values.
type RecordTable map[string][]any

// NewRecordTable returns an empty table.
func NewRecordTable() RecordTable {
	return make(RecordTable)
}

// Has reports whether the column exists.
func (t RecordTable) Has(column string) bool {
	_, ok := t[column]
	return ok
}

// Columns returns the column names in sorted order.
func (t RecordTable) Columns() []string {
	columns := make([]string, 0, len(t))
	for name := range t {
		columns = append(columns, name)
	}
	sort.Strings(columns)
	return columns
}

// RowCount returns the length of the longest column.
func (t RecordTable) RowCount() int {
	rows := 0
	for _, values := range t {
		if len(values) > rows {
			rows = len(values)
		}
	}
	return rows
}

// Value returns the value at row of column, or nil when out of range.
func (t RecordTable) Value(column string, row int) any {
	values := t[column]
	if row < 0 || row >= len(values) {
		return nil
	}
	return values[row]
}

// Clone returns a copy whose column slices can be replaced or mutated
// without touching the receiver.
func (t RecordTable) Clone() RecordTable {
	clone := make(RecordTable, len(t))
	for name, values := range t {
		clone[name] = append([]any(nil), values...)
	}
	return clone
}

// RenameColumns moves every column named by a key of cols to the name it maps
// to. Keys absent from the table are ignored; an existing column with the
// target name is replaced. Renames are applied in sorted key order.
func (t RecordTable) RenameColumns(cols map[string]string) {
	keys := make([]string, 0, len(cols))
	for from := range cols {
		keys = append(keys, from)
	}
	sort.Strings(keys)

	for _, from := range keys {
		to := cols[from]
		if from == to || to == "" {
			continue
		}
		if values, ok := t[from]; ok {
			t[to] = values
			delete(t, from)
		}
	}
}

// FormatValue renders a table value as the canonical text used for
// comparisons. Dates without a time of day render as YYYY-MM-DD.
func FormatValue(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case int64:
		return strconv.FormatInt(value, 10)
	case int:
		return strconv.Itoa(value)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	case time.Time:
		if value.Hour() == 0 && value.Minute() == 0 && value.Second() == 0 && value.Nanosecond() == 0 {
			return value.Format("2006-01-02")
		}
		return value.Format(time.RFC3339)
	case fmt.Stringer:
		return value.String()
	default:
		return fmt.Sprint(value)
	}
}
