// Package subjects maps subject-classification records into the target
// vocabulary shape.
package subjects

import (
	"context"
	"strings"

	"github.com/openvocab/vocab-cli/internal/core/domain"
	"github.com/openvocab/vocab-cli/internal/core/ports/driven"
	"github.com/openvocab/vocab-cli/internal/norm"
)

// Ensure Mapper implements the interface.
var _ driven.Mapper = (*Mapper)(nil)

// Mapper converts subject records. The canonical ID derives from the
// scheme and notation pair; both are mandatory.
type Mapper struct {
	defaults domain.ConversionDefaults
}

// New creates a new subjects mapper.
func New(defaults domain.ConversionDefaults) *Mapper {
	return &Mapper{defaults: defaults}
}

// VocabularyType returns the vocabulary this mapper handles.
func (m *Mapper) VocabularyType() domain.VocabularyType {
	return domain.VocabularySubjects
}

// Map transforms one subject record.
func (m *Mapper) Map(_ context.Context, record domain.SourceRecord) (*driven.MapResult, error) {
	if record == nil {
		return nil, domain.ErrMalformedInput
	}

	scheme := strings.TrimSpace(record.String("scheme"))
	notation := strings.TrimSpace(record.String("notation"))
	if notation == "" {
		notation = strings.TrimSpace(record.String("id"))
	}
	if scheme == "" || notation == "" {
		return nil, domain.ErrMissingIdentifier
	}

	name := norm.Transliterate(record.String("subject"))
	if name == "" {
		name = norm.Transliterate(record.String("term"))
	}
	labels, err := norm.Labels(labelSource(record), m.defaults.FallbackLanguage, name)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = labels[m.defaults.FallbackLanguage]
	}

	ids, warnings := norm.RecordIdentifiers(record, "identifiers")
	if ids == nil {
		ids = []domain.ExternalIdentifier{}
	}

	// Subjects may carry relationships (broader/narrower exports map them
	// to the closed enum upstream) but none are required.
	rels, err := norm.Relationships(record["relationships"], m.defaults.RelationPassthrough)
	if err != nil {
		return nil, err
	}

	active, warning := norm.Status(record["status"])
	if warning != "" {
		warnings = append(warnings, warning)
	}

	return &driven.MapResult{
		Record: &domain.OutputRecord{
			ID:            scheme + ":" + notation,
			Name:          name,
			Title:         labels,
			Identifiers:   ids,
			Relationships: rels,
			Active:        active,
			Scheme:        scheme,
			Notation:      notation,
		},
		Warnings: warnings,
	}, nil
}

// labelSource picks the subject term translations: "translations" in newer
// dumps, "labels" in older ones.
func labelSource(record domain.SourceRecord) any {
	if record.Has("translations") {
		return record["translations"]
	}
	return record["labels"]
}
