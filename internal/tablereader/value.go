package tablereader

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"time"

	"fjacquet/find-overlap/internal/models"
)

// coerceValue maps driver and decoder values onto the types a RecordTable
// holds: string, int64, float64, bool, time.Time or nil.
func coerceValue(v any) any {
	switch value := v.(type) {
	case nil, string, int64, float64, bool, time.Time:
		return value
	case int:
		return int64(value)
	case int8:
		return int64(value)
	case int16:
		return int64(value)
	case int32:
		return int64(value)
	case uint8:
		return int64(value)
	case uint16:
		return int64(value)
	case uint32:
		return int64(value)
	case uint64:
		if value > math.MaxInt64 {
			return strconv.FormatUint(value, 10)
		}
		return int64(value)
	case float32:
		return float64(value)
	case []byte:
		return string(value)
	case json.Number:
		if i, err := value.Int64(); err == nil {
			return i
		}
		if f, err := value.Float64(); err == nil {
			return f
		}
		return value.String()
	case *big.Rat:
		return value.FloatString(6)
	case map[string]any:
		// Avro unions decode as {"type": value}
		if len(value) == 1 {
			for _, inner := range value {
				return coerceValue(inner)
			}
		}
		return fmt.Sprint(value)
	default:
		return fmt.Sprint(value)
	}
}

// tableBuilder assembles a table from records whose keys may differ.
// Cells of a column that a record does not carry are nil.
type tableBuilder struct {
	table models.RecordTable
	rows  int
}

func newTableBuilder() *tableBuilder {
	return &tableBuilder{table: models.NewRecordTable()}
}

func (b *tableBuilder) addColumn(name string) {
	if _, ok := b.table[name]; !ok {
		b.table[name] = make([]any, b.rows)
	}
}

func (b *tableBuilder) addRecord(record map[string]any) {
	for name, v := range record {
		b.addColumn(name)
		b.table[name] = append(b.table[name], coerceValue(v))
	}
	b.rows++
	for name, values := range b.table {
		if len(values) < b.rows {
			b.table[name] = append(values, nil)
		}
	}
}

func (b *tableBuilder) build() models.RecordTable {
	return b.table
}
