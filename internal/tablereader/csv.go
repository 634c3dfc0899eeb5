package tablereader

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"fjacquet/find-overlap/internal/fileutils"
	"fjacquet/find-overlap/internal/models"
	"fjacquet/find-overlap/internal/parsererror"
)

const utf8BOM = "\ufeff"

// CSVReader reads delimited text with a header row. Every cell is kept as a
// string; cells missing from short rows are nil.
type CSVReader struct {
	delimiter rune
}

// NewCSVReader creates a reader for the given field delimiter.
func NewCSVReader(delimiter rune) *CSVReader {
	return &CSVReader{delimiter: delimiter}
}

// Read loads the file at path.
func (r *CSVReader) Read(ctx context.Context, path string) (models.RecordTable, error) {
	f, err := fileutils.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	return r.ReadFrom(ctx, f, path)
}

// ReadFrom parses CSV from rd. source names the input in errors.
func (r *CSVReader) ReadFrom(ctx context.Context, rd io.Reader, source string) (models.RecordTable, error) {
	cr := csv.NewReader(rd)
	cr.Comma = r.delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       source,
			ExpectedFormat: "CSV with a header row",
			Msg:            "file is empty",
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	header = uniqueHeader(header)

	table := models.NewRecordTable()
	for _, name := range header {
		table[name] = nil
	}

	for row := 0; ; row++ {
		if row%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row %d: %w", row+1, err)
		}

		for i, name := range header {
			var value any
			if i < len(record) {
				value = record[i]
			}
			table[name] = append(table[name], value)
		}
	}

	return table, nil
}

// uniqueHeader strips a UTF-8 byte order mark and suffixes repeated names
// with .1, .2, ...
func uniqueHeader(header []string) []string {
	out := make([]string, len(header))
	seen := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		if n, ok := seen[name]; ok {
			seen[name] = n + 1
			name = name + "." + strconv.Itoa(n+1)
		} else {
			seen[name] = 0
		}
		out[i] = name
	}
	return out
}
