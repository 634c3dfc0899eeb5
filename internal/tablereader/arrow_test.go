package tablereader

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fjacquet/find-overlap/internal/models"

	"github.com/apache/arrow/go/v15/arrow"
	"github.com/apache/arrow/go/v15/arrow/array"
	"github.com/apache/arrow/go/v15/arrow/ipc"
	"github.com/apache/arrow/go/v15/arrow/memory"
	"github.com/apache/arrow/go/v15/parquet"
	"github.com/apache/arrow/go/v15/parquet/pqarrow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord(t *testing.T) arrow.Record {
	t.Helper()
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "Date", Type: arrow.FixedWidthTypes.Date32},
		{Name: "Description", Type: arrow.BinaryTypes.String, Nullable: true},
		{Name: "Amount", Type: arrow.PrimitiveTypes.Float64},
	}, nil)

	b := array.NewRecordBuilder(memory.DefaultAllocator, schema)
	defer b.Release()

	b.Field(0).(*array.Date32Builder).AppendValues([]arrow.Date32{
		arrow.Date32FromTime(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)),
		arrow.Date32FromTime(time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)),
	}, nil)
	b.Field(1).(*array.StringBuilder).AppendValues([]string{"Coffee", ""}, []bool{true, false})
	b.Field(2).(*array.Float64Builder).AppendValues([]float64{10.5, -3.25}, nil)

	return b.NewRecord()
}

func assertSampleTable(t *testing.T, table models.RecordTable) {
	t.Helper()
	require.Equal(t, 2, table.RowCount())
	assert.Equal(t, "2023-01-01", models.FormatValue(table.Value("Date", 0)))
	assert.Equal(t, "2023-01-02", models.FormatValue(table.Value("Date", 1)))
	assert.Equal(t, []any{"Coffee", nil}, table["Description"])
	assert.Equal(t, []any{10.5, -3.25}, table["Amount"])
}

func TestArrowReader_ReadIPC(t *testing.T) {
	rec := sampleRecord(t)
	defer rec.Release()

	path := filepath.Join(t.TempDir(), "tx.feather")
	f, err := os.Create(path)
	require.NoError(t, err)

	w, err := ipc.NewFileWriter(f, ipc.WithSchema(rec.Schema()), ipc.WithAllocator(memory.DefaultAllocator))
	require.NoError(t, err)
	require.NoError(t, w.Write(rec))
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())

	table, err := NewArrowReader().ReadIPC(context.Background(), path)
	require.NoError(t, err)
	assertSampleTable(t, table)
}

func TestArrowReader_ReadParquet(t *testing.T) {
	rec := sampleRecord(t)
	defer rec.Release()

	tbl := array.NewTableFromRecords(rec.Schema(), []arrow.Record{rec})
	defer tbl.Release()

	var buf bytes.Buffer
	require.NoError(t, pqarrow.WriteTable(tbl, &buf, 1024, parquet.NewWriterProperties(), pqarrow.DefaultWriterProps()))

	path := filepath.Join(t.TempDir(), "tx.parquet")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	table, err := NewArrowReader().ReadParquet(context.Background(), path)
	require.NoError(t, err)
	assertSampleTable(t, table)
}

func TestArrowReader_InvalidFiles(t *testing.T) {
	r := NewArrowReader()

	_, err := r.ReadParquet(context.Background(), writeFile(t, "bad.parquet", "not parquet"))
	assert.Error(t, err)

	_, err = r.ReadIPC(context.Background(), writeFile(t, "bad.feather", "not arrow"))
	assert.Error(t, err)
}
