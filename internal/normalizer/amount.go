package normalizer

import (
	"fmt"
	"math"
	"strings"

	"fjacquet/find-overlap/internal/currencyutils"
	"fjacquet/find-overlap/internal/models"
	"fjacquet/find-overlap/internal/parsererror"

	"github.com/shopspring/decimal"
)

// AmountNormalizer truncates monetary values to whole units.
type AmountNormalizer struct {
	// Lenient cleans currency symbols and locale separators from strings
	// before parsing them.
	Lenient bool
}

// NormalizeAmount truncates v toward zero using the strict rules.
func NormalizeAmount(v any) (any, error) {
	return AmountNormalizer{}.Normalize(v)
}

// NormalizeAmounts replaces every value of column with its truncated form.
func NormalizeAmounts(table models.RecordTable, column string) error {
	return AmountNormalizer{}.NormalizeColumn(table, column, "")
}

// Normalize converts integers, floats and numeric strings to an int64,
// discarding the fraction. Values of any other type are returned unchanged,
// as are blank strings.
func (n AmountNormalizer) Normalize(v any) (any, error) {
	switch value := v.(type) {
	case int64:
		return value, nil
	case int:
		return int64(value), nil
	case int32:
		return int64(value), nil
	case float32:
		return truncateFloat(float64(value))
	case float64:
		return truncateFloat(value)
	case string:
		return n.parseString(value)
	default:
		return v, nil
	}
}

var (
	minAmount = decimal.NewFromInt(math.MinInt64)
	maxAmount = decimal.NewFromInt(math.MaxInt64)
)

func truncateFloat(f float64) (any, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("cannot convert %v to an integer", f)
	}
	t := math.Trunc(f)
	// float64(math.MaxInt64) rounds up to 2^63, which is already out of range.
	if t < math.MinInt64 || t >= math.MaxInt64 {
		return nil, fmt.Errorf("amount %v is out of range", f)
	}
	return int64(t), nil
}

func (n AmountNormalizer) parseString(raw string) (any, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return raw, nil
	}
	if n.Lenient {
		s = currencyutils.StandardizeAmount(s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("not a number: %w", err)
	}
	d = d.Truncate(0)
	if d.Cmp(minAmount) < 0 || d.Cmp(maxAmount) > 0 {
		return nil, fmt.Errorf("amount %s is out of range", s)
	}
	return d.IntPart(), nil
}

// NormalizeColumn normalizes column of table in place. The first value that
// cannot be converted is reported as a *parsererror.ParseError.
func (n AmountNormalizer) NormalizeColumn(table models.RecordTable, column, source string) error {
	values, ok := table[column]
	if !ok {
		return nil
	}
	for row, v := range values {
		normalized, err := n.Normalize(v)
		if err != nil {
			return &parsererror.ParseError{
				Source: source,
				Field:  column,
				Row:    row,
				Value:  models.FormatValue(v),
				Err:    err,
			}
		}
		values[row] = normalized
	}
	return nil
}
