package driven

import "github.com/openvocab/vocab-cli/internal/core/domain"

// MapperRegistry dispatches a vocabulary-type selector to the mapper that
// handles it. The selector is validated here exactly once per batch run,
// never per record.
type MapperRegistry interface {
	// Lookup returns the mapper for a vocabulary type.
	// Returns domain.ErrUnknownVocabularyType for any other selector.
	Lookup(vocab domain.VocabularyType) (Mapper, error)

	// Register adds a mapper to the registry.
	Register(mapper Mapper)

	// VocabularyTypes returns all vocabulary types with a registered mapper.
	VocabularyTypes() []domain.VocabularyType
}
