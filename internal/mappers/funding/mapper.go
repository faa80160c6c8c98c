// Package funding maps funding-body records into the target vocabulary
// shape.
package funding

import (
	"context"
	"strings"

	"github.com/openvocab/vocab-cli/internal/core/domain"
	"github.com/openvocab/vocab-cli/internal/core/ports/driven"
	"github.com/openvocab/vocab-cli/internal/norm"
)

// Ensure Mapper implements the interface.
var _ driven.Mapper = (*Mapper)(nil)

// Mapper converts funding-body records. The canonical ID derives from the
// funder identifier, preferring ROR, then Crossref funder DOIs.
type Mapper struct {
	defaults domain.ConversionDefaults
}

// New creates a new funding mapper.
func New(defaults domain.ConversionDefaults) *Mapper {
	return &Mapper{defaults: defaults}
}

// VocabularyType returns the vocabulary this mapper handles.
func (m *Mapper) VocabularyType() domain.VocabularyType {
	return domain.VocabularyFunding
}

// Map transforms one funding-body record.
func (m *Mapper) Map(_ context.Context, record domain.SourceRecord) (*driven.MapResult, error) {
	if record == nil {
		return nil, domain.ErrMalformedInput
	}

	ids, warnings := norm.RecordIdentifiers(record, "id", "identifiers")
	primary, ok := domain.PrimaryIdentifier(ids, domain.SchemeROR, domain.SchemeDOI)
	if !ok {
		return nil, domain.ErrMissingIdentifier
	}

	name := norm.Transliterate(record.String("name"))
	labels, err := norm.Labels(record["labels"], m.defaults.FallbackLanguage, name)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = primaryLabel(labels, m.defaults.FallbackLanguage)
	}

	rels, err := norm.Relationships(record["relationships"], m.defaults.RelationPassthrough)
	if err != nil {
		return nil, err
	}

	active, warning := norm.Status(record["status"])
	if warning != "" {
		warnings = append(warnings, warning)
	}

	funderType := record.String("funder_type")
	if funderType == "" {
		funderType = record.String("type")
	}

	return &driven.MapResult{
		Record: &domain.OutputRecord{
			ID:            primary.Value,
			Name:          name,
			Title:         labels,
			Identifiers:   ids,
			Relationships: rels,
			Active:        active,
			Country:       strings.ToUpper(strings.TrimSpace(record.String("country"))),
			FunderType:    norm.Transliterate(funderType),
		},
		Warnings: warnings,
	}, nil
}

// primaryLabel picks a deterministic display name from the label set:
// the fallback-language entry when present, else the lexicographically
// smallest language's entry.
func primaryLabel(labels domain.MultilingualLabel, fallbackLang string) string {
	if v, ok := labels[fallbackLang]; ok {
		return v
	}
	var best string
	for lang := range labels {
		if best == "" || lang < best {
			best = lang
		}
	}
	return labels[best]
}
