// Package output provides JSON serialization for extraction results.
package output

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/bacteria-search/bpextract/pkg/bpextract/models"
)

// ToJSON serializes records as a JSON array indented with two spaces.
// A nil slice is written as an empty array.
func ToJSON(records []models.BreakpointRecord) ([]byte, error) {
	if records == nil {
		records = []models.BreakpointRecord{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile serializes records and writes them to path.
func WriteFile(path string, records []models.BreakpointRecord) error {
	data, err := ToJSON(records)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
