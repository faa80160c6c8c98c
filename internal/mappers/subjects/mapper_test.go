package subjects

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openvocab/vocab-cli/internal/core/domain"
	"github.com/openvocab/vocab-cli/internal/core/ports/driven"
)

func newMapper() *Mapper {
	return New(domain.NewConversionDefaults())
}

func TestMap_SubjectRecord(t *testing.T) {
	mapper := newMapper()
	ctx := context.Background()

	record := domain.SourceRecord{
		"scheme":   "MeSH",
		"notation": "D008511",
		"subject":  "Measles",
		"translations": []any{
			map[string]any{"lang": "de", "value": "Masern"},
			map[string]any{"lang": "fr", "value": "Rougeole"},
		},
	}

	result, err := mapper.Map(ctx, record)
	require.NoError(t, err)

	out := result.Record
	assert.Equal(t, "MeSH:D008511", out.ID)
	assert.Equal(t, "MeSH", out.Scheme)
	assert.Equal(t, "D008511", out.Notation)
	assert.Equal(t, "Measles", out.Name)
	assert.Equal(t, "Masern", out.Title["de"])
	assert.Equal(t, "Rougeole", out.Title["fr"])
	assert.True(t, out.Active)
	assert.NotNil(t, out.Identifiers)
}

func TestMap_NotationFallsBackToID(t *testing.T) {
	mapper := newMapper()
	ctx := context.Background()

	record := domain.SourceRecord{
		"scheme":  "ddc",
		"id":      "530",
		"subject": "Physics",
	}

	result, err := mapper.Map(ctx, record)
	require.NoError(t, err)
	assert.Equal(t, "ddc:530", result.Record.ID)
	assert.Equal(t, "530", result.Record.Notation)
}

func TestMap_MissingSchemeOrNotation(t *testing.T) {
	tests := []struct {
		name   string
		record domain.SourceRecord
	}{
		{"no scheme", domain.SourceRecord{"notation": "530", "subject": "Physics"}},
		{"no notation", domain.SourceRecord{"scheme": "ddc", "subject": "Physics"}},
		{"both missing", domain.SourceRecord{"subject": "Physics"}},
	}

	mapper := newMapper()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := mapper.Map(context.Background(), tc.record)
			assert.ErrorIs(t, err, domain.ErrMissingIdentifier)
		})
	}
}

func TestMap_NoRelationshipsRequired(t *testing.T) {
	mapper := newMapper()
	ctx := context.Background()

	record := domain.SourceRecord{
		"scheme":   "ddc",
		"notation": "530",
		"subject":  "Physics",
	}

	result, err := mapper.Map(ctx, record)
	require.NoError(t, err)
	assert.Empty(t, result.Record.Relationships)
}

func TestMap_LabelFallsBackToTerm(t *testing.T) {
	mapper := newMapper()
	ctx := context.Background()

	record := domain.SourceRecord{
		"scheme":   "ddc",
		"notation": "530",
		"term":     "Physique",
	}

	result, err := mapper.Map(ctx, record)
	require.NoError(t, err)
	assert.Equal(t, "Physique", result.Record.Name)
	assert.Equal(t, domain.MultilingualLabel{"en": "Physique"}, result.Record.Title)
}

func TestMap_MissingLabel(t *testing.T) {
	mapper := newMapper()
	record := domain.SourceRecord{"scheme": "ddc", "notation": "530"}

	_, err := mapper.Map(context.Background(), record)
	assert.ErrorIs(t, err, domain.ErrMissingLabel)
}

func TestMap_NilRecord(t *testing.T) {
	mapper := newMapper()
	_, err := mapper.Map(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrMalformedInput)
}

func TestInterfaceCompliance(t *testing.T) {
	var _ driven.Mapper = (*Mapper)(nil)
}
