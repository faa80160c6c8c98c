package names

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

func TestMap_ORCIDRecord(t *testing.T) {
	mapper := newMapper()
	ctx := context.Background()

	record := domain.SourceRecord{
		"orcid":       "0000-0002-1825-0097",
		"given_name":  "Josiah",
		"family_name": "Carberry",
	}

	result, err := mapper.Map(ctx, record)
	require.NoError(t, err)
	assert.Empty(t, result.Warnings)

	out := result.Record
	assert.Equal(t, "0000-0002-1825-0097", out.ID)
	assert.Equal(t, "Carberry, Josiah", out.Name)
	assert.Equal(t, domain.MultilingualLabel{"en": "Carberry, Josiah"}, out.Title)
	require.Len(t, out.Identifiers, 1)
	assert.Equal(t, domain.SchemeORCID, out.Identifiers[0].Scheme)
	assert.True(t, out.Active)
}

func TestMap_ORCIDPreferredOverISNI(t *testing.T) {
	mapper := newMapper()
	ctx := context.Background()

	record := domain.SourceRecord{
		"name": "Josiah Carberry",
		"identifiers": []any{
			map[string]any{"scheme": "isni", "value": "0000 0001 2150 090X"},
			map[string]any{"scheme": "orcid", "value": "0000-0002-1825-0097"},
		},
	}

	result, err := mapper.Map(ctx, record)
	require.NoError(t, err)
	assert.Equal(t, "0000-0002-1825-0097", result.Record.ID)
}

func TestMap_ISNIWhenNoORCID(t *testing.T) {
	mapper := newMapper()
	ctx := context.Background()

	record := domain.SourceRecord{
		"name": "Josiah Carberry",
		"isni": "0000 0001 2150 090X",
	}

	result, err := mapper.Map(ctx, record)
	require.NoError(t, err)
	assert.Equal(t, "0000 0001 2150 090X", result.Record.ID)
}

func TestMap_FullNameLabelWhenNoSplitFields(t *testing.T) {
	mapper := newMapper()
	ctx := context.Background()

	record := domain.SourceRecord{
		"orcid": "0000-0002-1825-0097",
		"name":  "Josiah Carberry",
	}

	result, err := mapper.Map(ctx, record)
	require.NoError(t, err)
	assert.Equal(t, "Josiah Carberry", result.Record.Name)
}

func TestMap_FamilyNameOnly(t *testing.T) {
	mapper := newMapper()
	ctx := context.Background()

	record := domain.SourceRecord{
		"orcid":       "0000-0002-1825-0097",
		"family_name": "Carberry",
	}

	result, err := mapper.Map(ctx, record)
	require.NoError(t, err)
	assert.Equal(t, "Carberry", result.Record.Name)
}

func TestMap_AffiliationsBecomeRelatedRelationships(t *testing.T) {
	mapper := newMapper()
	ctx := context.Background()

	record := domain.SourceRecord{
		"orcid": "0000-0002-1825-0097",
		"name":  "Josiah Carberry",
		"affiliations": []any{
			"https://ror.org/05gq02987",
			map[string]any{"id": "https://ror.org/012345678", "name": "Other University"},
		},
	}

	result, err := mapper.Map(ctx, record)
	require.NoError(t, err)

	rels := result.Record.Relationships
	require.Len(t, rels, 2)
	assert.Equal(t, domain.RelationRelated, rels[0].Type)
	assert.Equal(t, "https://ror.org/05gq02987", rels[0].TargetID)
	assert.Equal(t, domain.RelationRelated, rels[1].Type)
	assert.Equal(t, "https://ror.org/012345678", rels[1].TargetID)
}

func TestMap_AffiliationWithoutIDWarns(t *testing.T) {
	mapper := newMapper()
	ctx := context.Background()

	record := domain.SourceRecord{
		"orcid": "0000-0002-1825-0097",
		"name":  "Josiah Carberry",
		"affiliations": []any{
			map[string]any{"name": "Unidentified University"},
		},
	}

	result, err := mapper.Map(ctx, record)
	require.NoError(t, err)
	assert.Empty(t, result.Record.Relationships)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "skipped")
}

func TestMap_MissingIdentifier(t *testing.T) {
	mapper := newMapper()
	ctx := context.Background()

	record := domain.SourceRecord{"name": "Josiah Carberry"}

	_, err := mapper.Map(ctx, record)
	assert.ErrorIs(t, err, domain.ErrMissingIdentifier)
}

func TestMap_MissingLabel(t *testing.T) {
	mapper := newMapper()
	ctx := context.Background()

	record := domain.SourceRecord{"orcid": "0000-0002-1825-0097"}

	_, err := mapper.Map(ctx, record)
	assert.ErrorIs(t, err, domain.ErrMissingLabel)
}

func TestMap_TransliteratesNames(t *testing.T) {
	mapper := newMapper()
	ctx := context.Background()

	record := domain.SourceRecord{
		"orcid":       "0000-0002-1825-0097",
		"given_name":  "Andrés",
		"family_name": "Müller",
	}

	result, err := mapper.Map(ctx, record)
	require.NoError(t, err)
	assert.Equal(t, "Muller, Andres", result.Record.Name)
}

func TestMap_NilRecord(t *testing.T) {
	mapper := newMapper()
	_, err := mapper.Map(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrMalformedInput)
}

func TestInterfaceCompliance(t *testing.T) {
	var _ driven.Mapper = (*Mapper)(nil)
}
