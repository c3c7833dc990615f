// Package export renders a parsed resume as JSON or as flat tabular rows.
package export

import (
	"bytes"
	"encoding/json"

	"github.com/artem13815/cvparse/pkg/resume"
)

// ToJSON renders the record as human-readable JSON: UTF-8, two-space indent,
// non-ASCII preserved.
func ToJSON(r resume.ParsedResume) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// FromJSON is the inverse of ToJSON; a ToJSON/FromJSON round trip
// reconstructs the record field for field.
func FromJSON(data []byte) (resume.ParsedResume, error) {
	var r resume.ParsedResume
	if err := json.Unmarshal(data, &r); err != nil {
		return resume.ParsedResume{}, err
	}
	return r, nil
}
