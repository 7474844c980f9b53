package decimal

import (
	"github.com/shopspring/decimal"
)

// Record is a keyed set of optional decimals, such as one row of a report.
type Record = map[string]decimal.NullDecimal

// TotalOf sums the present values, skipping absent ones. A nil or empty
// slice totals to zero. The result scale follows decimal.Add.
func TotalOf(values []decimal.NullDecimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		if !v.Valid {
			continue
		}
		total = total.Add(v.Decimal)
	}
	return total
}

// ExtractField returns one entry per record holding that record's value for
// key; records without the key contribute an absent entry.
// A nil records slice returns nil, an empty one returns an empty slice.
func ExtractField(records []Record, key string) []decimal.NullDecimal {
	if records == nil {
		return nil
	}
	values := make([]decimal.NullDecimal, 0, len(records))
	for _, r := range records {
		values = append(values, r[key])
	}
	return values
}
