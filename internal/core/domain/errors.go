package domain

import "errors"

// Domain errors represent mapping failures.
// These are distinct from infrastructure errors.
var (
	// ErrMissingIdentifier indicates a record has no identifier a canonical
	// ID could be derived from. An OutputRecord without a canonical ID is
	// never produced.
	ErrMissingIdentifier = errors.New("missing identifier")

	// ErrMissingLabel indicates a record has neither a label entry nor a
	// fallback name to build one from.
	ErrMissingLabel = errors.New("missing label")

	// ErrUnknownRelationType indicates a relationship type string does not
	// match any known variant and passthrough mode is disabled.
	ErrUnknownRelationType = errors.New("unknown relation type")

	// ErrMissingFunder indicates an award record lacks the mandatory
	// funding-body reference.
	ErrMissingFunder = errors.New("missing funder reference")

	// ErrUnknownVocabularyType indicates an unsupported vocabulary-type
	// selector. This aborts the whole run, not a single record.
	ErrUnknownVocabularyType = errors.New("unknown vocabulary type")

	// ErrMalformedInput indicates a structurally unreadable record or
	// collection (not a sequence of records at all).
	ErrMalformedInput = errors.New("malformed input")
)
