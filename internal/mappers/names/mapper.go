// Package names maps personal and organisational name records into the
// target vocabulary shape.
package names

import (
	"context"

	"github.com/openvocab/vocab-cli/internal/core/domain"
	"github.com/openvocab/vocab-cli/internal/core/ports/driven"
	"github.com/openvocab/vocab-cli/internal/norm"
)

// Ensure Mapper implements the interface.
var _ driven.Mapper = (*Mapper)(nil)

// Mapper converts name records. The canonical ID derives from a personal
// identifier, preferring ORCID, then ISNI.
type Mapper struct {
	defaults domain.ConversionDefaults
}

// New creates a new names mapper.
func New(defaults domain.ConversionDefaults) *Mapper {
	return &Mapper{defaults: defaults}
}

// VocabularyType returns the vocabulary this mapper handles.
func (m *Mapper) VocabularyType() domain.VocabularyType {
	return domain.VocabularyNames
}

// Map transforms one name record.
func (m *Mapper) Map(_ context.Context, record domain.SourceRecord) (*driven.MapResult, error) {
	if record == nil {
		return nil, domain.ErrMalformedInput
	}

	ids, warnings := norm.RecordIdentifiers(record, "id", "identifiers")
	ids = append(ids, scalarIdentifiers(record)...)
	primary, ok := domain.PrimaryIdentifier(ids, domain.SchemeORCID, domain.SchemeISNI)
	if !ok {
		return nil, domain.ErrMissingIdentifier
	}

	name := displayName(record)
	if name == "" {
		return nil, domain.ErrMissingLabel
	}
	labels := domain.MultilingualLabel{m.defaults.FallbackLanguage: name}

	rels, relWarnings := affiliationRelationships(record)
	warnings = append(warnings, relWarnings...)

	active, warning := norm.Status(record["status"])
	if warning != "" {
		warnings = append(warnings, warning)
	}

	return &driven.MapResult{
		Record: &domain.OutputRecord{
			ID:            primary.Value,
			Name:          name,
			Title:         labels,
			Identifiers:   ids,
			Relationships: rels,
			Active:        active,
		},
		Warnings: warnings,
	}, nil
}

// scalarIdentifiers picks up identifiers that name dumps carry as flat
// top-level fields rather than entries in an identifier list.
func scalarIdentifiers(record domain.SourceRecord) []domain.ExternalIdentifier {
	var ids []domain.ExternalIdentifier
	if v := record.String("orcid"); v != "" {
		ids = append(ids, domain.ExternalIdentifier{Scheme: domain.SchemeORCID, Value: v})
	}
	if v := record.String("isni"); v != "" {
		ids = append(ids, domain.ExternalIdentifier{Scheme: domain.SchemeISNI, Value: v})
	}
	return ids
}

// displayName builds the record's single full-name label: "Family, Given"
// when the split fields are present, else the full name field.
func displayName(record domain.SourceRecord) string {
	given := norm.Transliterate(record.String("given_name"))
	family := norm.Transliterate(record.String("family_name"))
	if family != "" && given != "" {
		return family + ", " + given
	}
	if family != "" {
		return family
	}
	return norm.Transliterate(record.String("name"))
}

// affiliationRelationships represents the record's affiliations as
// relationships of type related pointing at affiliation IDs. Entries are
// either bare ID strings or mappings carrying an "id".
func affiliationRelationships(record domain.SourceRecord) ([]domain.Relationship, []string) {
	raw := record.Slice("affiliations")
	if raw == nil {
		return []domain.Relationship{}, nil
	}

	var (
		rels     []domain.Relationship
		warnings []string
	)
	for _, entry := range raw {
		var target string
		switch v := entry.(type) {
		case string:
			target = v
		case map[string]any:
			target, _ = v["id"].(string)
			if target == "" {
				if nested, ok := v["id"].(map[string]any); ok {
					target, _ = nested["value"].(string)
				}
			}
		}
		if target == "" {
			warnings = append(warnings, "affiliation entry without an id skipped")
			continue
		}
		rels = append(rels, domain.Relationship{Type: domain.RelationRelated, TargetID: target})
	}
	if rels == nil {
		rels = []domain.Relationship{}
	}
	return rels, warnings
}
