package output

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// CSVFormatter writes one index,value row per value followed by a total row.
// Absent values are written as empty cells.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(s *Summary) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"index", s.Field}); err != nil {
		return nil, err
	}
	for i, v := range s.Values {
		cell := ""
		if v.Valid {
			cell = v.Decimal.String()
		}
		if err := w.Write([]string{strconv.Itoa(i), cell}); err != nil {
			return nil, err
		}
	}
	if err := w.Write([]string{"total", s.Total.String()}); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
