package config

import (
	"fmt"
	"os"
	"sort"

	nulldec "github.com/rpgo/nulldecimal/pkg/decimal"
	"gopkg.in/yaml.v3"
)

// recordFile is the on-disk layout. Values are kept as raw text so that
// the scale written in the file survives decoding.
type recordFile struct {
	Records *[]map[string]*string `yaml:"records"`
}

// InputParser loads keyed decimal records from YAML files
type InputParser struct {
	log nulldec.Logger
}

// NewInputParser creates a new input parser. Values that fail to parse are
// reported to log; a nil log discards them.
func NewInputParser(log nulldec.Logger) *InputParser {
	if log == nil {
		log = nulldec.NopLogger{}
	}
	return &InputParser{log: log}
}

// LoadFromFile loads records from a YAML file
func (ip *InputParser) LoadFromFile(filename string) ([]nulldec.Record, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.LoadFromBytes(data)
}

// LoadFromBytes decodes a YAML document with a top-level records list.
// A document without records (or with records: ~) yields a nil slice,
// records: [] yields an empty one.
func (ip *InputParser) LoadFromBytes(data []byte) ([]nulldec.Record, error) {
	var file recordFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if file.Records == nil {
		return nil, nil
	}

	raw := *file.Records
	records := make([]nulldec.Record, 0, len(raw))
	for i, entry := range raw {
		record, err := ip.convertRecord(entry)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		records = append(records, record)
	}
	return records, nil
}

// convertRecord parses every value of a raw record. Keys are visited in
// sorted order so the first reported failure is stable.
func (ip *InputParser) convertRecord(entry map[string]*string) (nulldec.Record, error) {
	if entry == nil {
		return nil, nil
	}

	keys := make([]string, 0, len(entry))
	for k := range entry {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	record := make(nulldec.Record, len(entry))
	for _, k := range keys {
		text := entry[k]
		if text == nil {
			record[k] = nulldec.None()
			continue
		}
		value, err := nulldec.ParseOrNull(*text, ip.log)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", k, err)
		}
		record[k] = value
	}
	return record, nil
}
