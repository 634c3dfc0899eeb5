package tablereader

import (
	"context"
	"fmt"

	"fjacquet/find-overlap/internal/fileutils"
	"fjacquet/find-overlap/internal/models"

	"github.com/apache/arrow/go/v15/arrow"
	"github.com/apache/arrow/go/v15/arrow/array"
	"github.com/apache/arrow/go/v15/arrow/ipc"
	"github.com/apache/arrow/go/v15/arrow/memory"
	"github.com/apache/arrow/go/v15/parquet/file"
	"github.com/apache/arrow/go/v15/parquet/pqarrow"
)

// ArrowReader reads columnar files: Parquet and the Arrow IPC file format
// (Feather v2).
type ArrowReader struct {
	mem memory.Allocator
}

// NewArrowReader creates a reader using the default Go allocator.
func NewArrowReader() *ArrowReader {
	return &ArrowReader{mem: memory.DefaultAllocator}
}

// ReadParquet loads a Parquet file.
func (r *ArrowReader) ReadParquet(ctx context.Context, path string) (models.RecordTable, error) {
	pf, err := file.OpenParquetFile(path, false)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer func() {
		_ = pf.Close()
	}()

	fr, err := pqarrow.NewFileReader(pf, pqarrow.ArrowReadProperties{}, r.mem)
	if err != nil {
		return nil, fmt.Errorf("failed to create parquet reader: %w", err)
	}

	tbl, err := fr.ReadTable(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read parquet table: %w", err)
	}
	defer tbl.Release()

	table := models.NewRecordTable()
	for i := 0; i < int(tbl.NumCols()); i++ {
		col := tbl.Column(i)
		values := make([]any, 0, tbl.NumRows())
		for _, chunk := range col.Data().Chunks() {
			values = appendArrowValues(values, chunk)
		}
		table[col.Name()] = values
	}
	return table, nil
}

// ReadIPC loads an Arrow IPC file (.feather, .arrow).
func (r *ArrowReader) ReadIPC(ctx context.Context, path string) (models.RecordTable, error) {
	f, err := fileutils.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	fr, err := ipc.NewFileReader(f, ipc.WithAllocator(r.mem))
	if err != nil {
		return nil, fmt.Errorf("failed to open arrow file: %w", err)
	}
	defer func() {
		_ = fr.Close()
	}()

	schema := fr.Schema()
	table := models.NewRecordTable()
	for _, field := range schema.Fields() {
		table[field.Name] = nil
	}

	for i := 0; i < fr.NumRecords(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := fr.Record(i)
		if err != nil {
			return nil, fmt.Errorf("failed to read record batch %d: %w", i, err)
		}
		for c := 0; c < int(rec.NumCols()); c++ {
			name := rec.ColumnName(c)
			table[name] = appendArrowValues(table[name], rec.Column(c))
		}
	}
	return table, nil
}

func appendArrowValues(values []any, arr arrow.Array) []any {
	for i := 0; i < arr.Len(); i++ {
		values = append(values, arrowValue(arr, i))
	}
	return values
}

func arrowValue(arr arrow.Array, i int) any {
	if arr.IsNull(i) {
		return nil
	}

	switch a := arr.(type) {
	case *array.String:
		return a.Value(i)
	case *array.LargeString:
		return a.Value(i)
	case *array.Binary:
		return string(a.Value(i))
	case *array.Boolean:
		return a.Value(i)
	case *array.Int8:
		return int64(a.Value(i))
	case *array.Int16:
		return int64(a.Value(i))
	case *array.Int32:
		return int64(a.Value(i))
	case *array.Int64:
		return a.Value(i)
	case *array.Uint8:
		return int64(a.Value(i))
	case *array.Uint16:
		return int64(a.Value(i))
	case *array.Uint32:
		return int64(a.Value(i))
	case *array.Uint64:
		return coerceValue(a.Value(i))
	case *array.Float32:
		return float64(a.Value(i))
	case *array.Float64:
		return a.Value(i)
	case *array.Date32:
		return a.Value(i).ToTime()
	case *array.Date64:
		return a.Value(i).ToTime()
	case *array.Timestamp:
		unit := a.DataType().(*arrow.TimestampType).Unit
		return a.Value(i).ToTime(unit).UTC()
	case *array.Decimal128:
		scale := a.DataType().(*arrow.Decimal128Type).Scale
		return a.Value(i).ToString(scale)
	case *array.Dictionary:
		return arrowValue(a.Dictionary(), a.GetValueIndex(i))
	default:
		return arr.ValueStr(i)
	}
}
