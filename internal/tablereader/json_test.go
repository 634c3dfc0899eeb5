package tablereader

import (
	"context"
	"errors"
	"testing"

	"fjacquet/find-overlap/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONReader_Array(t *testing.T) {
	path := writeFile(t, "tx.json", `[
		{"Date": "2023-01-01", "Description": "Coffee", "Amount": 10.5},
		{"Date": "2023-01-02", "Amount": 3}
	]`)

	table, err := NewJSONReader(DefaultJSONRecordsPath).Read(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []any{"2023-01-01", "2023-01-02"}, table["Date"])
	assert.Equal(t, []any{"Coffee", nil}, table["Description"])
	assert.Equal(t, []any{10.5, int64(3)}, table["Amount"])
}

func TestJSONReader_NestedPath(t *testing.T) {
	path := writeFile(t, "export.json", `{"account": "CH00", "transactions": [
		{"Date": "2023-01-01", "Description": "Rent", "Amount": "-1200.00"}
	]}`)

	table, err := NewJSONReader("$.transactions[*]").Read(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 1, table.RowCount())
	assert.Equal(t, []any{"-1200.00"}, table["Amount"])
}

func TestJSONReader_InvalidDocuments(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", `{"Date": `},
		{"scalar records", `[1, 2]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "bad.json", tt.content)
			_, err := NewJSONReader(DefaultJSONRecordsPath).Read(context.Background(), path)

			var formatErr *parsererror.InvalidFormatError
			assert.True(t, errors.As(err, &formatErr), "got %v", err)
		})
	}
}
