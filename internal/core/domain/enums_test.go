package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVocabularyType(t *testing.T) {
	tests := []struct {
		input    string
		expected VocabularyType
	}{
		{"affiliations", VocabularyAffiliations},
		{"names", VocabularyNames},
		{"funding", VocabularyFunding},
		{"awards", VocabularyAwards},
		{"subjects", VocabularySubjects},
		{"AFFILIATIONS", VocabularyAffiliations},
		{"  subjects  ", VocabularySubjects},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			vocab, err := ParseVocabularyType(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, vocab)
		})
	}
}

func TestParseVocabularyType_Unknown(t *testing.T) {
	for _, input := range []string{"grants", "", "affiliation"} {
		_, err := ParseVocabularyType(input)
		assert.ErrorIs(t, err, ErrUnknownVocabularyType, "input %q", input)
	}
}

func TestVocabularyTypes_Stable(t *testing.T) {
	assert.Equal(t, VocabularyTypes(), VocabularyTypes())
	assert.Len(t, VocabularyTypes(), 5)
}

func TestKnownScheme(t *testing.T) {
	for _, s := range []IdentifierScheme{SchemeISNI, SchemeGRID, SchemeWikidata, SchemeROR, SchemeORCID, SchemeDOI, SchemeCustom} {
		assert.True(t, KnownScheme(s), "scheme %q", s)
	}
	assert.False(t, KnownScheme(SchemeOther))
	assert.False(t, KnownScheme("handle"))
}
