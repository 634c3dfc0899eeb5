package tablereader

import (
	"context"
	"encoding/json"
	"fmt"

	"fjacquet/find-overlap/internal/fileutils"
	"fjacquet/find-overlap/internal/models"
	"fjacquet/find-overlap/internal/parsererror"

	"github.com/PaesslerAG/jsonpath"
)

// JSONReader reads an array of flat objects selected by a JSONPath
// expression. Each object is one row; missing keys read as nil.
type JSONReader struct {
	recordsPath string
}

// NewJSONReader creates a reader that selects records with recordsPath,
// for example "$[*]" or "$.transactions[*]".
func NewJSONReader(recordsPath string) *JSONReader {
	return &JSONReader{recordsPath: recordsPath}
}

// Read loads the file at path.
func (r *JSONReader) Read(ctx context.Context, path string) (models.RecordTable, error) {
	f, err := fileutils.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	var doc any
	dec := json.NewDecoder(f)
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       path,
			ExpectedFormat: "JSON",
			Msg:            err.Error(),
		}
	}

	selected, err := jsonpath.Get(r.recordsPath, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate %q: %w", r.recordsPath, err)
	}

	// jsonpath returns a list for wildcard paths and the value itself otherwise
	var records []any
	switch v := selected.(type) {
	case []any:
		records = v
	case map[string]any:
		records = []any{v}
	default:
		return nil, &parsererror.InvalidFormatError{
			FilePath:       path,
			ExpectedFormat: "JSON array of objects at " + r.recordsPath,
			Msg:            fmt.Sprintf("selection is %T", selected),
		}
	}

	builder := newTableBuilder()
	for i, item := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, ok := item.(map[string]any)
		if !ok {
			return nil, &parsererror.InvalidFormatError{
				FilePath:       path,
				ExpectedFormat: "JSON array of objects at " + r.recordsPath,
				Msg:            fmt.Sprintf("record %d is %T", i, item),
			}
		}
		builder.addRecord(record)
	}
	return builder.build(), nil
}
