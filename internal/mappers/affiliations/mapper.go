// Package affiliations maps research-organisation dump records (e.g. a ROR
// dump) into the target vocabulary shape.
package affiliations

import (
	"context"

	"github.com/openvocab/vocab-cli/internal/core/domain"
	"github.com/openvocab/vocab-cli/internal/core/ports/driven"
	"github.com/openvocab/vocab-cli/internal/norm"
)

// Ensure Mapper implements the interface.
var _ driven.Mapper = (*Mapper)(nil)

// Mapper converts affiliation records. The canonical ID derives from the
// record's primary identifier, preferring the ROR scheme.
type Mapper struct {
	defaults domain.ConversionDefaults
}

// New creates a new affiliations mapper.
func New(defaults domain.ConversionDefaults) *Mapper {
	return &Mapper{defaults: defaults}
}

// VocabularyType returns the vocabulary this mapper handles.
func (m *Mapper) VocabularyType() domain.VocabularyType {
	return domain.VocabularyAffiliations
}

// Map transforms one affiliation record.
func (m *Mapper) Map(_ context.Context, record domain.SourceRecord) (*driven.MapResult, error) {
	if record == nil {
		return nil, domain.ErrMalformedInput
	}

	ids, warnings := norm.RecordIdentifiers(record, "id", "identifiers")
	primary, ok := domain.PrimaryIdentifier(ids, domain.SchemeROR)
	if !ok {
		return nil, domain.ErrMissingIdentifier
	}

	name := norm.Transliterate(record.String("name"))
	labels, err := norm.Labels(labelSource(record), m.defaults.FallbackLanguage, name)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = primaryLabel(labels, m.defaults.FallbackLanguage)
	}
	// The untranslated entry defaults to the record name, matching the
	// downstream schema's expectation of one always-present title.
	if _, ok := labels[m.defaults.FallbackLanguage]; !ok && name != "" {
		labels[m.defaults.FallbackLanguage] = name
	}

	rels, err := norm.Relationships(record["relationships"], m.defaults.RelationPassthrough)
	if err != nil {
		return nil, err
	}
	if rels == nil {
		rels = []domain.Relationship{}
	}

	active, activeSet := record.Bool("active")
	if !activeSet {
		var warning string
		active, warning = norm.Status(record["status"])
		if warning != "" {
			warnings = append(warnings, warning)
		}
	}

	return &driven.MapResult{
		Record: &domain.OutputRecord{
			ID:            primary.Value,
			Name:          name,
			Title:         labels,
			Identifiers:   ids,
			Relationships: rels,
			Active:        active,
			Acronym:       firstAcronym(record),
		},
		Warnings: warnings,
	}, nil
}

// labelSource picks the record's name-variant list. ROR dumps use
// "labels", older exports use "names".
func labelSource(record domain.SourceRecord) any {
	if record.Has("labels") {
		return record["labels"]
	}
	return record["names"]
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

// firstAcronym returns the first non-empty acronym, transliterated.
func firstAcronym(record domain.SourceRecord) string {
	for _, a := range record.StringSlice("acronyms") {
		if a != "" {
			return norm.Transliterate(a)
		}
	}
	return ""
}
