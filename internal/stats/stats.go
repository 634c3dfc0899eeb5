// Package stats summarizes a transaction table: its date range and the
// distribution of its amounts.
package stats

import (
	"time"

	"fjacquet/find-overlap/internal/currencyutils"
	"fjacquet/find-overlap/internal/dateutils"
	"fjacquet/find-overlap/internal/models"

	"github.com/shopspring/decimal"
)

// Summary describes one table.
type Summary struct {
	Rows    int      `json:"rows"`
	Columns []string `json:"columns"`

	// DateMin and DateMax are ISO dates; empty when no Date value parses.
	DateMin        string `json:"date_min,omitempty"`
	DateMax        string `json:"date_max,omitempty"`
	UnparsedDates  int    `json:"unparsed_dates"`
	AmountCount    int    `json:"amount_count"`
	UnparsedAmount int    `json:"unparsed_amounts"`

	AmountMin  decimal.Decimal `json:"amount_min"`
	AmountMax  decimal.Decimal `json:"amount_max"`
	AmountSum  decimal.Decimal `json:"amount_sum"`
	AmountMean decimal.Decimal `json:"amount_mean"`
}

// Summarize computes the summary of table. Missing Date or Amount columns
// leave the corresponding fields empty.
func Summarize(table models.RecordTable) Summary {
	s := Summary{
		Rows:    table.RowCount(),
		Columns: table.Columns(),
	}

	var minDate, maxDate time.Time
	for _, v := range table[models.ColumnDate] {
		t, ok := toTime(v)
		if !ok {
			s.UnparsedDates++
			continue
		}
		if minDate.IsZero() || t.Before(minDate) {
			minDate = t
		}
		if maxDate.IsZero() || t.After(maxDate) {
			maxDate = t
		}
	}
	if !minDate.IsZero() {
		s.DateMin = dateutils.ToISODate(minDate)
		s.DateMax = dateutils.ToISODate(maxDate)
	}

	for _, v := range table[models.ColumnAmount] {
		amount, ok := toDecimal(v)
		if !ok {
			s.UnparsedAmount++
			continue
		}
		if s.AmountCount == 0 || amount.LessThan(s.AmountMin) {
			s.AmountMin = amount
		}
		if s.AmountCount == 0 || amount.GreaterThan(s.AmountMax) {
			s.AmountMax = amount
		}
		s.AmountSum = s.AmountSum.Add(amount)
		s.AmountCount++
	}
	if s.AmountCount > 0 {
		s.AmountMean = s.AmountSum.DivRound(decimal.NewFromInt(int64(s.AmountCount)), 2)
	}

	return s
}

func toTime(v any) (time.Time, bool) {
	switch value := v.(type) {
	case time.Time:
		return value, true
	case string:
		t, _, err := dateutils.ParseDate(value)
		return t, err == nil
	default:
		return time.Time{}, false
	}
}

func toDecimal(v any) (decimal.Decimal, bool) {
	switch value := v.(type) {
	case int64:
		return decimal.NewFromInt(value), true
	case float64:
		return decimal.NewFromFloat(value), true
	case string:
		d, err := currencyutils.ParseAmount(value)
		return d, err == nil
	default:
		return decimal.Zero, false
	}
}
