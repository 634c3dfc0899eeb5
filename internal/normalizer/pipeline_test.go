package normalizer

import (
	"errors"
	"testing"

	"fjacquet/find-overlap/internal/logging"
	"fjacquet/find-overlap/internal/models"
	"fjacquet/find-overlap/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawTable() models.RecordTable {
	return models.RecordTable{
		models.ColumnDate:        {"2023-01-01", "2023-01-02"},
		models.ColumnDescription: {"Coffee Shop Purchase", "Grocery payment"},
		models.ColumnAmount:      {10.50, "-20.75"},
	}
}

func TestPipeline_Prepare(t *testing.T) {
	p := NewPipeline(logging.NewMockLogger())
	raw := rawTable()

	table, err := p.Prepare(raw, models.Customizations{}, "in.csv")
	require.NoError(t, err)

	assert.Equal(t, []any{int64(10), int64(-20)}, table[models.ColumnAmount])
	assert.Equal(t, "coffe shop purchas", table[models.ColumnDescription][0])
	assert.Equal(t, []any{"2023-01-01", "2023-01-02"}, table[models.ColumnDate])

	// the raw table is not modified
	assert.Equal(t, 10.50, raw[models.ColumnAmount][0])
	assert.Equal(t, "Coffee Shop Purchase", raw[models.ColumnDescription][0])
}

func TestPipeline_PrepareAppliesCustomizations(t *testing.T) {
	p := NewPipeline(logging.NewMockLogger())
	raw := models.RecordTable{
		"Booking Date": {"15.01.2023"},
		"Text":         {"Coffee"},
		"Value":        {"3.20"},
	}
	custom := models.Customizations{
		Cols: map[string]string{
			"Booking Date": models.ColumnDate,
			"Text":         models.ColumnDescription,
			"Value":        models.ColumnAmount,
		},
		DateFormat: "%d.%m.%Y",
	}

	table, err := p.Prepare(raw, custom, "bank.csv")
	require.NoError(t, err)

	assert.Equal(t, []any{"2023-01-15"}, table[models.ColumnDate])
	assert.Equal(t, []any{"coffe"}, table[models.ColumnDescription])
	assert.Equal(t, []any{int64(3)}, table[models.ColumnAmount])
	assert.True(t, raw.Has("Booking Date"))
}

func TestPipeline_PrepareCanonicalDates(t *testing.T) {
	logger := logging.NewMockLogger()
	p := NewPipeline(logger)
	p.CanonicalDates = true

	raw := rawTable()
	raw[models.ColumnDate] = []any{"01/02/2023", "soon"}

	table, err := p.Prepare(raw, models.Customizations{}, "in.csv")
	require.NoError(t, err)

	assert.Equal(t, []any{"2023-01-02", "soon"}, table[models.ColumnDate])
	assert.True(t, logger.HasEntry("WARN", "Some dates could not be parsed and were kept as-is"))
}

func TestPipeline_PrepareMissingColumn(t *testing.T) {
	p := NewPipeline(logging.NewMockLogger())
	raw := rawTable()
	delete(raw, models.ColumnAmount)

	_, err := p.Prepare(raw, models.Customizations{}, "bad.csv")

	var schemaErr *parsererror.SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, []string{models.ColumnAmount}, schemaErr.Missing)
}

func TestPipeline_PrepareBadAmount(t *testing.T) {
	p := NewPipeline(logging.NewMockLogger())
	raw := rawTable()
	raw[models.ColumnAmount] = []any{"ten", "1"}

	_, err := p.Prepare(raw, models.Customizations{}, "bad.csv")

	var parseErr *parsererror.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, 0, parseErr.Row)

	p.Amounts.Lenient = true
	_, err = p.Prepare(raw, models.Customizations{}, "bad.csv")
	assert.Error(t, err)
}
