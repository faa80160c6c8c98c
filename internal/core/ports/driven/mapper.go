package driven

import (
	"context"

	"github.com/openvocab/vocab-cli/internal/core/domain"
)

// Mapper transforms source records of one vocabulary type into the target
// shape. Mapping is a pure function of the record and the static
// normalisation rules: no shared state, safe to call concurrently.
type Mapper interface {
	// VocabularyType returns the vocabulary this mapper handles.
	VocabularyType() domain.VocabularyType

	// Map transforms one source record into an output record.
	// Structural failures (missing identifier, missing funder) abort only
	// this record; soft issues surface as warnings in the result.
	Map(ctx context.Context, record domain.SourceRecord) (*MapResult, error)
}

// MapResult contains the output of mapping one record.
type MapResult struct {
	// Record is the fully shaped output record.
	Record *domain.OutputRecord

	// Warnings lists non-fatal issues encountered while mapping, such as
	// unrecognised identifier schemes or status values.
	Warnings []string
}
