// Package jsondump implements the DumpReader port for bulk JSON dumps.
// Both a single top-level array and JSON Lines (one object per line, the
// shape of ROR and OpenAIRE bulk exports) are accepted.
package jsondump

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"unicode"

	"github.com/openvocab/vocab-cli/internal/core/domain"
	"github.com/openvocab/vocab-cli/internal/core/ports/driven"
)

// Ensure Reader implements the interface.
var _ driven.DumpReader = (*Reader)(nil)

// Reader loads vocabulary dump files into parsed source records.
type Reader struct{}

// New creates a new JSON dump reader.
func New() *Reader {
	return &Reader{}
}

// Read parses the dump at path. The collection shape is detected from the
// first non-space byte: '[' for a JSON array, '{' for JSON Lines.
// Anything else is not a sequence of records and fails with
// domain.ErrMalformedInput.
func (r *Reader) Read(path string) ([]domain.SourceRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dump: %w", err)
	}

	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	data = bytes.TrimLeftFunc(data, unicode.IsSpace)

	switch {
	case len(data) == 0:
		return nil, fmt.Errorf("%w: empty dump file", domain.ErrMalformedInput)

	case data[0] == '[':
		var records []domain.SourceRecord
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrMalformedInput, err)
		}
		return records, nil

	case data[0] == '{':
		return readLines(data)

	default:
		return nil, fmt.Errorf("%w: expected a JSON array of records", domain.ErrMalformedInput)
	}
}

// readLines decodes a stream of concatenated JSON objects.
func readLines(data []byte) ([]domain.SourceRecord, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	var records []domain.SourceRecord
	for dec.More() {
		var record domain.SourceRecord
		if err := dec.Decode(&record); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", domain.ErrMalformedInput, len(records), err)
		}
		records = append(records, record)
	}
	return records, nil
}
