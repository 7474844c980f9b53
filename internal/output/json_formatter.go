package output

import (
	"encoding/json"
)

// JSONFormatter serializes the summary as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(s *Summary) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}
