package tablereader

import (
	"context"
	"database/sql"
	"fmt"

	"fjacquet/find-overlap/internal/fileutils"
	"fjacquet/find-overlap/internal/models"

	_ "modernc.org/sqlite"
)

// SQLiteReader reads every row of one table of a SQLite database.
type SQLiteReader struct {
	table string
}

// NewSQLiteReader creates a reader for the named table.
func NewSQLiteReader(table string) *SQLiteReader {
	return &SQLiteReader{table: table}
}

// Read loads the configured table from the database at path.
func (r *SQLiteReader) Read(ctx context.Context, path string) (models.RecordTable, error) {
	// sql.Open would create a missing database
	if !fileutils.FileExists(path) {
		return nil, fmt.Errorf("file does not exist: %s", path)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	defer func() {
		_ = db.Close()
	}()

	rows, err := db.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %q", r.table))
	if err != nil {
		return nil, fmt.Errorf("query table %s: %w", r.table, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}

	table := models.NewRecordTable()
	for _, name := range columns {
		table[name] = nil
	}

	values := make([]any, len(columns))
	ptrs := make([]any, len(columns))
	for i := range values {
		ptrs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		for i, name := range columns {
			table[name] = append(table[name], coerceValue(values[i]))
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return table, nil
}
