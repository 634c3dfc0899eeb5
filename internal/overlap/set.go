// Package overlap builds comparable transaction sets from normalized tables,
// scores how much two sets overlap, and ranks candidate files against an
// input file.
package overlap

import (
	"fmt"

	"fjacquet/find-overlap/internal/models"
	"fjacquet/find-overlap/internal/validation"
)

// BuildTransactionSet projects every row of table onto the (Date,
// Description, Amount) triple named by fields, in that order. Without fields
// the canonical column names are used. The row count is the length of the
// first field's column; identical rows collapse into one member.
func BuildTransactionSet(table models.RecordTable, fields ...string) (models.TransactionSet, error) {
	if len(fields) == 0 {
		fields = models.ComparisonFields()
	}
	if len(fields) != 3 {
		return nil, fmt.Errorf("a transaction needs 3 fields (date, description, amount), got %d", len(fields))
	}
	if err := validation.RequireColumnSet(table, "table", fields); err != nil {
		return nil, err
	}

	dates, descriptions, amounts := fields[0], fields[1], fields[2]
	rows := len(table[dates])

	set := make(models.TransactionSet, rows)
	for row := 0; row < rows; row++ {
		set.Add(models.Transaction{
			Date:        models.FormatValue(table.Value(dates, row)),
			Description: models.FormatValue(table.Value(descriptions, row)),
			Amount:      models.FormatValue(table.Value(amounts, row)),
		})
	}
	return set, nil
}
