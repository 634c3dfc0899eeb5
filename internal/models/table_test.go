package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecordTable_ColumnsAndRowCount(t *testing.T) {
	table := RecordTable{
		"Date":        {"2023-01-01", "2023-01-02"},
		"Amount":      {"10.50", "3"},
		"Description": {"Coffee", "Bus"},
	}

	assert.Equal(t, []string{"Amount", "Date", "Description"}, table.Columns())
	assert.Equal(t, 2, table.RowCount())
	assert.True(t, table.Has("Date"))
	assert.False(t, table.Has("Balance"))
	assert.Equal(t, "Bus", table.Value("Description", 1))
	assert.Nil(t, table.Value("Description", 5))
	assert.Nil(t, table.Value("Missing", 0))
}

func TestRecordTable_Clone(t *testing.T) {
	table := RecordTable{"Amount": {"10.50"}}
	clone := table.Clone()
	clone["Amount"][0] = int64(10)

	assert.Equal(t, "10.50", table["Amount"][0], "clone must not share backing arrays")
	assert.Equal(t, int64(10), clone["Amount"][0])
}

func TestRecordTable_RenameColumns(t *testing.T) {
	tests := []struct {
		name     string
		table    RecordTable
		cols     map[string]string
		expected []string
	}{
		{
			name:     "renames present columns",
			table:    RecordTable{"Posting Date": {"x"}, "Memo": {"y"}, "Value": {"1"}},
			cols:     map[string]string{"Posting Date": "Date", "Memo": "Description", "Value": "Amount"},
			expected: []string{"Amount", "Date", "Description"},
		},
		{
			name:     "ignores absent columns",
			table:    RecordTable{"Date": {"x"}},
			cols:     map[string]string{"Booking": "Date"},
			expected: []string{"Date"},
		},
		{
			name:     "identity and empty targets are skipped",
			table:    RecordTable{"Date": {"x"}, "Memo": {"y"}},
			cols:     map[string]string{"Date": "Date", "Memo": ""},
			expected: []string{"Date", "Memo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.table.RenameColumns(tt.cols)
			assert.Equal(t, tt.expected, tt.table.Columns())
		})
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{"nil", nil, ""},
		{"string", "coffe shop", "coffe shop"},
		{"int64", int64(-42), "-42"},
		{"int", 7, "7"},
		{"float", 10.5, "10.5"},
		{"whole float", 10.0, "10"},
		{"bool", true, "true"},
		{"date", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), "2023-01-01"},
		{"timestamp", time.Date(2023, 1, 1, 8, 30, 0, 0, time.UTC), "2023-01-01T08:30:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatValue(tt.value))
		})
	}
}
