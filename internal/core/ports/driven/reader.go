package driven

import "github.com/openvocab/vocab-cli/internal/core/domain"

// DumpReader loads a vocabulary dump into parsed source records.
// The core receives fully deserialised records; no raw text parsing
// happens inside the mapping engine.
type DumpReader interface {
	// Read parses the dump at path into a sequence of source records.
	// A collection that is not a sequence of records at all fails with
	// domain.ErrMalformedInput.
	Read(path string) ([]domain.SourceRecord, error)
}
