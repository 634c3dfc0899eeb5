package normalizer

import (
	"time"

	"fjacquet/find-overlap/internal/dateutils"
	"fjacquet/find-overlap/internal/models"
)

// DateNormalizer rewrites Date values as ISO dates (YYYY-MM-DD).
type DateNormalizer struct {
	// Layout is the expected format, strftime or Go style. When empty the
	// common bank formats are tried in order.
	Layout string
}

// Normalize returns the ISO rendering of v and whether it was recognized.
// Unrecognized values are returned unchanged.
func (n DateNormalizer) Normalize(v any) (any, bool) {
	switch value := v.(type) {
	case time.Time:
		return dateutils.ToISODate(value), true
	case string:
		var (
			t   time.Time
			err error
		)
		if n.Layout != "" {
			t, err = dateutils.ParseWithLayout(value, n.Layout)
		} else {
			t, _, err = dateutils.ParseDate(value)
		}
		if err != nil {
			return v, false
		}
		return dateutils.ToISODate(t), true
	default:
		return v, false
	}
}

// NormalizeColumn rewrites column in place and returns how many values could
// not be parsed.
func (n DateNormalizer) NormalizeColumn(table models.RecordTable, column string) int {
	unparsed := 0
	values := table[column]
	for row, v := range values {
		normalized, ok := n.Normalize(v)
		if !ok {
			unparsed++
		}
		values[row] = normalized
	}
	return unparsed
}
