package output

import (
	"sort"
	"strings"

	nulldec "github.com/rpgo/nulldecimal/pkg/decimal"
	"github.com/shopspring/decimal"
)

// Summary is the result of totaling one field across a record set.
type Summary struct {
	Field   string                `json:"field"`
	Values  []decimal.NullDecimal `json:"values"`
	Total   decimal.Decimal       `json:"total"`
	Present int                   `json:"present"`
	Absent  int                   `json:"absent"`
}

// NewSummary totals values and counts how many were present.
// A nil values slice is kept as nil so JSON output distinguishes it from [].
func NewSummary(field string, values []decimal.NullDecimal) *Summary {
	s := &Summary{Field: field, Values: values, Total: nulldec.TotalOf(values)}
	for _, v := range values {
		if v.Valid {
			s.Present++
		} else {
			s.Absent++
		}
	}
	return s
}

// Formatter defines a pluggable output formatter that returns a byte slice.
type Formatter interface {
	Format(s *Summary) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// FormatterFunc adapter to allow ordinary functions to act as a Formatter.
type FormatterFunc struct {
	ID string
	F  func(*Summary) ([]byte, error)
}

func (ff FormatterFunc) Format(s *Summary) ([]byte, error) { return ff.F(s) }
func (ff FormatterFunc) Name() string                      { return ff.ID }

var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	CSVFormatter{},
	JSONFormatter{},
}

// GetFormatterByName fetches a registered formatter, or nil if none matches.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"text":        "console",
	"table":       "console",
	"json-pretty": "json",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}
