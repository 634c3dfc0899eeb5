package overlap

import (
	"errors"
	"testing"

	"fjacquet/find-overlap/internal/models"
	"fjacquet/find-overlap/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTransactionSet(t *testing.T) {
	table := models.RecordTable{
		models.ColumnDate:        {"2023-01-01", "2023-01-02", "2023-01-01"},
		models.ColumnDescription: {"coffe shop", "rent", "coffe shop"},
		models.ColumnAmount:      {int64(10), int64(-1200), int64(10)},
		"Extra":                  {"a", "b", "c"},
	}

	set, err := BuildTransactionSet(table)
	require.NoError(t, err)

	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Contains(models.Transaction{Date: "2023-01-01", Description: "coffe shop", Amount: "10"}))
	assert.True(t, set.Contains(models.Transaction{Date: "2023-01-02", Description: "rent", Amount: "-1200"}))
}

func TestBuildTransactionSet_RowOrderDoesNotMatter(t *testing.T) {
	a := models.RecordTable{
		models.ColumnDate:        {"d1", "d2"},
		models.ColumnDescription: {"x", "y"},
		models.ColumnAmount:      {int64(1), int64(2)},
	}
	b := models.RecordTable{
		models.ColumnDate:        {"d2", "d1"},
		models.ColumnDescription: {"y", "x"},
		models.ColumnAmount:      {int64(2), int64(1)},
	}

	setA, err := BuildTransactionSet(a)
	require.NoError(t, err)
	setB, err := BuildTransactionSet(b)
	require.NoError(t, err)
	assert.True(t, setA.Equal(setB))
}

func TestBuildTransactionSet_CustomFields(t *testing.T) {
	table := models.RecordTable{
		"when": {"2023-01-01"},
		"what": {"coffe"},
		"how":  {int64(3)},
	}

	set, err := BuildTransactionSet(table, "when", "what", "how")
	require.NoError(t, err)
	assert.True(t, set.Contains(models.Transaction{Date: "2023-01-01", Description: "coffe", Amount: "3"}))

	_, err = BuildTransactionSet(table, "when", "what")
	assert.Error(t, err)
}

func TestBuildTransactionSet_MissingColumn(t *testing.T) {
	table := models.RecordTable{
		models.ColumnDate:        {"2023-01-01"},
		models.ColumnDescription: {"coffe"},
	}

	_, err := BuildTransactionSet(table)

	var schemaErr *parsererror.SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, []string{models.ColumnAmount}, schemaErr.Missing)
}

func TestBuildTransactionSet_ShortColumn(t *testing.T) {
	table := models.RecordTable{
		models.ColumnDate:        {"d1", "d2"},
		models.ColumnDescription: {"x"},
		models.ColumnAmount:      {int64(1), int64(2)},
	}

	set, err := BuildTransactionSet(table)
	require.NoError(t, err)
	assert.True(t, set.Contains(models.Transaction{Date: "d2", Description: "", Amount: "2"}))
}

func TestBuildTransactionSet_Empty(t *testing.T) {
	table := models.RecordTable{
		models.ColumnDate:        nil,
		models.ColumnDescription: nil,
		models.ColumnAmount:      nil,
	}

	set, err := BuildTransactionSet(table)
	require.NoError(t, err)
	assert.Equal(t, 0, set.Len())
}
