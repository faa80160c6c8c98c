package driven

import "github.com/openvocab/vocab-cli/internal/core/domain"

// VocabularyWriter serialises an ordered sequence of output records to the
// target vocabulary format. The core only shapes records; serialisation
// lives behind this port.
type VocabularyWriter interface {
	// Write serialises records to the file at path, preserving order.
	Write(path string, records []domain.OutputRecord) error
}
