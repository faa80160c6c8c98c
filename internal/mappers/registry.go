package mappers

import (
	"fmt"
	"sort"
	"sync"

	"github.com/openvocab/vocab-cli/internal/core/domain"
	"github.com/openvocab/vocab-cli/internal/core/ports/driven"
	"github.com/openvocab/vocab-cli/internal/mappers/affiliations"
	"github.com/openvocab/vocab-cli/internal/mappers/awards"
	"github.com/openvocab/vocab-cli/internal/mappers/funding"
	"github.com/openvocab/vocab-cli/internal/mappers/names"
	"github.com/openvocab/vocab-cli/internal/mappers/subjects"
)

// Ensure Registry implements the interface.
var _ driven.MapperRegistry = (*Registry)(nil)

// Registry dispatches a vocabulary-type selector to its mapper.
type Registry struct {
	mu      sync.RWMutex
	mappers map[domain.VocabularyType]driven.Mapper
}

// NewRegistry creates a registry with all five vocabulary mappers
// registered under the given conversion defaults.
func NewRegistry(defaults domain.ConversionDefaults) *Registry {
	r := &Registry{
		mappers: make(map[domain.VocabularyType]driven.Mapper),
	}
	r.Register(affiliations.New(defaults))
	r.Register(names.New(defaults))
	r.Register(funding.New(defaults))
	r.Register(awards.New(defaults))
	r.Register(subjects.New(defaults))
	return r
}

// Register adds a mapper, replacing any previous mapper for the same
// vocabulary type.
func (r *Registry) Register(mapper driven.Mapper) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mappers[mapper.VocabularyType()] = mapper
}

// Lookup returns the mapper for a vocabulary type.
func (r *Registry) Lookup(vocab domain.VocabularyType) (driven.Mapper, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	mapper, ok := r.mappers[vocab]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownVocabularyType, vocab)
	}
	return mapper, nil
}

// VocabularyTypes returns all registered vocabulary types in stable order.
func (r *Registry) VocabularyTypes() []domain.VocabularyType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]domain.VocabularyType, 0, len(r.mappers))
	for vocab := range r.mappers {
		types = append(types, vocab)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
