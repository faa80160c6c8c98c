package driving

import (
	"context"

	"github.com/openvocab/vocab-cli/internal/core/domain"
)

// Converter runs a full-dump conversion for one vocabulary type.
type Converter interface {
	// Convert maps every record in order. One record's failure never
	// aborts the batch; failures are captured per record in the report.
	// The whole run fails only for an unknown vocabulary type or a
	// structurally unreadable collection.
	Convert(ctx context.Context, vocab domain.VocabularyType, records []domain.SourceRecord) (*ConversionReport, error)
}

// ConversionReport is the outcome of one batch run.
// Records, Failures and Warnings are all ordered by input index, and
// len(Records)+len(Failures) always equals the input length: no record is
// silently dropped.
type ConversionReport struct {
	// RunID identifies this conversion run in logs.
	RunID string

	// VocabularyType is the selector the run was dispatched on.
	VocabularyType domain.VocabularyType

	// Records holds the successfully mapped output records in input order.
	Records []domain.OutputRecord

	// Failures holds one entry per record whose mapping aborted.
	Failures []RecordFailure

	// Warnings holds non-fatal issues from records that still converted.
	Warnings []RecordWarning
}

// RecordFailure captures one record's mapping failure.
type RecordFailure struct {
	// Index is the record's position in the input sequence.
	Index int

	// RecordID is the record's original identifier, when derivable.
	RecordID string

	// Err is the mapping error.
	Err error
}

// RecordWarning is a non-fatal issue raised while mapping one record.
type RecordWarning struct {
	// Index is the record's position in the input sequence.
	Index int

	// Message describes the issue.
	Message string
}
