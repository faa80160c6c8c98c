package yamlvocab

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/openvocab/vocab-cli/internal/core/domain"
)

func TestWrite_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "affiliations.yaml")

	records := []domain.OutputRecord{
		{
			ID:   "https://ror.org/05gq02987",
			Name: "Example University",
			Title: domain.MultilingualLabel{
				"en": "Example University",
			},
			Identifiers: []domain.ExternalIdentifier{
				{Scheme: "ror", Value: "https://ror.org/05gq02987", Preferred: true},
			},
			Relationships: []domain.Relationship{},
			Active:        true,
		},
		{
			ID:     "https://ror.org/0472cxd90",
			Name:   "Example Agency",
			Active: false,
		},
	}

	require.NoError(t, New().Write(path, records))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	// UTF-8 BOM comes first.
	require.True(t, bytes.HasPrefix(raw, []byte{0xEF, 0xBB, 0xBF}))

	var parsed []domain.OutputRecord
	require.NoError(t, yaml.Unmarshal(bytes.TrimPrefix(raw, []byte{0xEF, 0xBB, 0xBF}), &parsed))
	require.Len(t, parsed, 2)
	assert.Equal(t, records[0].ID, parsed[0].ID)
	assert.Equal(t, records[0].Title, parsed[0].Title)
	assert.True(t, parsed[0].Active)
	assert.Equal(t, "Example Agency", parsed[1].Name)
}

func TestWrite_EmptyList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")

	require.NoError(t, New().Write(path, nil))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte{0xEF, 0xBB, 0xBF}))

	var parsed []domain.OutputRecord
	require.NoError(t, yaml.Unmarshal(bytes.TrimPrefix(raw, []byte{0xEF, 0xBB, 0xBF}), &parsed))
	assert.Empty(t, parsed)
}

func TestWrite_IdentifierFieldName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ids.yaml")

	records := []domain.OutputRecord{
		{
			ID:   "x",
			Name: "X",
			Identifiers: []domain.ExternalIdentifier{
				{Scheme: "orcid", Value: "0000-0001-8135-3489"},
			},
		},
	}
	require.NoError(t, New().Write(path, records))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "identifier: 0000-0001-8135-3489")
	assert.Contains(t, string(raw), "scheme: orcid")
}

func TestWrite_UnwritablePathFails(t *testing.T) {
	err := New().Write(filepath.Join(t.TempDir(), "missing", "out.yaml"), nil)
	assert.Error(t, err)
}
