package output

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
)

// ConsoleFormatter renders a summary as a plain text table.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(s *Summary) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "FIELD: %s\n", s.Field)
	fmt.Fprintln(&buf, "================================")
	if s.Values == nil {
		fmt.Fprintln(&buf, "(no records)")
	}
	for i, v := range s.Values {
		fmt.Fprintf(&buf, "%4d  %s\n", i, displayValue(v))
	}
	fmt.Fprintln(&buf, "--------------------------------")
	fmt.Fprintf(&buf, "Total: %s (present=%d absent=%d)\n", s.Total.String(), s.Present, s.Absent)
	return buf.Bytes(), nil
}

func displayValue(v decimal.NullDecimal) string {
	if !v.Valid {
		return "-"
	}
	return v.Decimal.String()
}
