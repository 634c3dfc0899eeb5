// Package tablereader loads transaction files into column tables. Each file
// extension is served by one Reader registered in a Registry.
package tablereader

import (
	"context"
	"fmt"
	"sort"

	"fjacquet/find-overlap/internal/fileutils"
	"fjacquet/find-overlap/internal/logging"
	"fjacquet/find-overlap/internal/models"
	"fjacquet/find-overlap/internal/parsererror"
)

// Reader loads a file into a RecordTable.
type Reader interface {
	Read(ctx context.Context, path string) (models.RecordTable, error)
}

// ReaderFunc adapts a function to the Reader interface.
type ReaderFunc func(ctx context.Context, path string) (models.RecordTable, error)

// Read calls f(ctx, path).
func (f ReaderFunc) Read(ctx context.Context, path string) (models.RecordTable, error) {
	return f(ctx, path)
}

// Options tunes the built-in readers.
type Options struct {
	// CSVDelimiter separates fields in .csv files. Defaults to ','.
	CSVDelimiter rune
	// JSONRecordsPath selects the records array in .json files. Defaults to "$[*]".
	JSONRecordsPath string
	// SQLiteTable is the table read from .db/.sqlite files. Defaults to "transactions".
	SQLiteTable string
}

// Default option values
const (
	DefaultCSVDelimiter    = ','
	DefaultJSONRecordsPath = "$[*]"
	DefaultSQLiteTable     = "transactions"
)

func (o Options) withDefaults() Options {
	if o.CSVDelimiter == 0 {
		o.CSVDelimiter = DefaultCSVDelimiter
	}
	if o.JSONRecordsPath == "" {
		o.JSONRecordsPath = DefaultJSONRecordsPath
	}
	if o.SQLiteTable == "" {
		o.SQLiteTable = DefaultSQLiteTable
	}
	return o
}

// Registry dispatches on the lowercase file extension.
type Registry struct {
	readers map[string]Reader
	logger  logging.Logger
}

// NewRegistry returns a registry with every built-in reader registered.
func NewRegistry(logger logging.Logger, opts Options) *Registry {
	if logger == nil {
		logger = logging.GetLogger()
	}
	opts = opts.withDefaults()

	r := &Registry{
		readers: make(map[string]Reader),
		logger:  logger,
	}

	r.Register(".csv", NewCSVReader(opts.CSVDelimiter))
	r.Register(".tsv", NewCSVReader('\t'))

	arrowReader := NewArrowReader()
	r.Register(".parquet", ReaderFunc(arrowReader.ReadParquet))
	r.Register(".feather", ReaderFunc(arrowReader.ReadIPC))
	r.Register(".arrow", ReaderFunc(arrowReader.ReadIPC))

	r.Register(".avro", NewAvroReader())
	r.Register(".xml", NewCamtReader())
	r.Register(".json", NewJSONReader(opts.JSONRecordsPath))

	sqliteReader := NewSQLiteReader(opts.SQLiteTable)
	r.Register(".db", sqliteReader)
	r.Register(".sqlite", sqliteReader)
	r.Register(".sqlite3", sqliteReader)

	return r
}

// Register associates ext (with leading dot) with reader, replacing any
// previous registration.
func (r *Registry) Register(ext string, reader Reader) {
	r.readers[fileutils.Extension("x"+ext)] = reader
}

// Extensions returns the registered extensions in sorted order.
func (r *Registry) Extensions() []string {
	exts := make([]string, 0, len(r.readers))
	for ext := range r.readers {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Read loads path with the reader registered for its extension.
func (r *Registry) Read(ctx context.Context, path string) (models.RecordTable, error) {
	ext := fileutils.Extension(path)
	reader, ok := r.readers[ext]
	if !ok {
		return nil, &parsererror.UnsupportedFormatError{
			FilePath:  path,
			Extension: ext,
			Supported: r.Extensions(),
		}
	}

	r.logger.Debug("Reading file",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldExtension, Value: ext})

	table, err := reader.Read(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	r.logger.Debug("File loaded",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldRows, Value: table.RowCount()})
	return table, nil
}
