// Package normalizer canonicalizes the Amount, Description and Date columns
// of a transaction table so that rows exported by different banks compare
// equal.
package normalizer

import (
	"fjacquet/find-overlap/internal/logging"
	"fjacquet/find-overlap/internal/models"
	"fjacquet/find-overlap/internal/validation"
)

// Pipeline validates a raw table and returns its normalized copy.
type Pipeline struct {
	Amounts        AmountNormalizer
	Descriptions   *DescriptionNormalizer
	CanonicalDates bool

	logger logging.Logger
}

// NewPipeline creates a pipeline with the default description normalizer.
func NewPipeline(logger logging.Logger) *Pipeline {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Pipeline{
		Descriptions: NewDescriptionNormalizer(),
		logger:       logger,
	}
}

// Prepare renames columns according to custom, checks the required columns
// and normalizes them. The input table is left untouched.
func (p *Pipeline) Prepare(raw models.RecordTable, custom models.Customizations, source string) (models.RecordTable, error) {
	table := raw.Clone()
	custom.Apply(table)

	if err := validation.RequireColumns(table, source); err != nil {
		return nil, err
	}

	if err := p.Amounts.NormalizeColumn(table, models.ColumnAmount, source); err != nil {
		return nil, err
	}

	descriptions := p.Descriptions
	if descriptions == nil {
		descriptions = NewDescriptionNormalizer()
	}
	descriptions.NormalizeColumn(table, models.ColumnDescription)

	if layout := custom.DateLayout(); layout != "" || p.CanonicalDates {
		if unparsed := (DateNormalizer{Layout: layout}).NormalizeColumn(table, models.ColumnDate); unparsed > 0 {
			p.logger.Warn("Some dates could not be parsed and were kept as-is",
				logging.Field{Key: logging.FieldFile, Value: source},
				logging.Field{Key: logging.FieldCount, Value: unparsed})
		}
	}

	p.logger.Debug("Normalized table",
		logging.Field{Key: logging.FieldFile, Value: source},
		logging.Field{Key: logging.FieldRows, Value: table.RowCount()})
	return table, nil
}
