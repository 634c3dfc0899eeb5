package tablereader

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"fjacquet/find-overlap/internal/fileutils"
	"fjacquet/find-overlap/internal/models"

	"github.com/linkedin/goavro/v2"
)

// AvroReader reads Avro object container files whose records are flat.
type AvroReader struct{}

// NewAvroReader creates an Avro reader.
func NewAvroReader() *AvroReader {
	return &AvroReader{}
}

// Read loads the file at path.
func (r *AvroReader) Read(ctx context.Context, path string) (models.RecordTable, error) {
	f, err := fileutils.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	ocf, err := goavro.NewOCFReader(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("failed to open avro container: %w", err)
	}

	builder := newTableBuilder()
	for _, field := range recordFieldNames(ocf.Codec().Schema()) {
		builder.addColumn(field)
	}

	for ocf.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		datum, err := ocf.Read()
		if err != nil {
			return nil, fmt.Errorf("failed to read avro record: %w", err)
		}
		record, ok := datum.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("avro datum is %T, expected a record", datum)
		}
		builder.addRecord(record)
	}
	if err := ocf.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan avro container: %w", err)
	}

	return builder.build(), nil
}

// recordFieldNames lists the top-level field names of a record schema so
// that a container without rows still yields its columns.
func recordFieldNames(schema string) []string {
	var parsed struct {
		Fields []struct {
			Name string `json:"name"`
		} `json:"fields"`
	}
	if err := json.Unmarshal([]byte(schema), &parsed); err != nil {
		return nil
	}
	names := make([]string, 0, len(parsed.Fields))
	for _, field := range parsed.Fields {
		names = append(names, field.Name)
	}
	return names
}
