// Package awards maps grant and award records into the target vocabulary
// shape.
package awards

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/openvocab/vocab-cli/internal/core/domain"
	"github.com/openvocab/vocab-cli/internal/core/ports/driven"
	"github.com/openvocab/vocab-cli/internal/norm"
)

// Ensure Mapper implements the interface.
var _ driven.Mapper = (*Mapper)(nil)

// Mapper converts award records. Every award must reference its funding
// body; the canonical ID derives from the award identifier, preferring DOI.
type Mapper struct {
	defaults domain.ConversionDefaults
}

// New creates a new awards mapper.
func New(defaults domain.ConversionDefaults) *Mapper {
	return &Mapper{defaults: defaults}
}

// VocabularyType returns the vocabulary this mapper handles.
func (m *Mapper) VocabularyType() domain.VocabularyType {
	return domain.VocabularyAwards
}

// Map transforms one award record.
func (m *Mapper) Map(_ context.Context, record domain.SourceRecord) (*driven.MapResult, error) {
	if record == nil {
		return nil, domain.ErrMalformedInput
	}

	ids, warnings := norm.RecordIdentifiers(record, "id", "identifiers")
	primary, ok := domain.PrimaryIdentifier(ids, domain.SchemeDOI)
	if !ok {
		return nil, domain.ErrMissingIdentifier
	}

	funder := funderReference(record)
	if funder == "" {
		return nil, domain.ErrMissingFunder
	}

	name := norm.Transliterate(record.String("name"))
	labels, err := norm.Labels(titleSource(record), m.defaults.FallbackLanguage, name)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = labels[m.defaults.FallbackLanguage]
	}

	rels, err := norm.Relationships(record["relationships"], m.defaults.RelationPassthrough)
	if err != nil {
		return nil, err
	}

	active, warning := norm.Status(record["status"])
	if warning != "" {
		warnings = append(warnings, warning)
	}

	amount, amountWarning := amountValue(record["amount"])
	if amountWarning != "" {
		warnings = append(warnings, amountWarning)
	}
	currency := strings.ToUpper(strings.TrimSpace(record.String("currency")))
	if amount > 0 && currency == "" {
		currency = m.defaults.DefaultCurrency
		warnings = append(warnings, fmt.Sprintf("amount without currency, defaulted to %s", currency))
	}

	return &driven.MapResult{
		Record: &domain.OutputRecord{
			ID:            primary.Value,
			Name:          name,
			Title:         labels,
			Identifiers:   ids,
			Relationships: rels,
			Active:        active,
			Funder:        funder,
			Amount:        amount,
			Currency:      currency,
		},
		Warnings: warnings,
	}, nil
}

// funderReference extracts the mandatory funding-body reference: a bare ID
// string or a mapping carrying an "id".
func funderReference(record domain.SourceRecord) string {
	switch v := record["funder"].(type) {
	case string:
		return strings.TrimSpace(v)
	case map[string]any:
		if id, ok := v["id"].(string); ok {
			return strings.TrimSpace(id)
		}
	}
	return ""
}

// titleSource picks the award title field: multilingual "title" when
// present, else the plain "title" string handled by the label normaliser.
func titleSource(record domain.SourceRecord) any {
	if record.Has("title") {
		return record["title"]
	}
	return record["labels"]
}

// amountValue reads the award amount: a JSON number or a numeric string.
func amountValue(raw any) (float64, string) {
	switch v := raw.(type) {
	case nil:
		return 0, ""
	case float64:
		return v, ""
	case int:
		return float64(v), ""
	case int64:
		return float64(v), ""
	case string:
		amount, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Sprintf("unreadable amount %q ignored", v)
		}
		return amount, ""
	default:
		return 0, fmt.Sprintf("unreadable amount %v ignored", raw)
	}
}
