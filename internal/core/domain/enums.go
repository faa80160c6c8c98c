package domain

import (
	"fmt"
	"strings"
)

// VocabularyType identifies one of the supported controlled vocabularies.
type VocabularyType string

const (
	// VocabularyAffiliations covers research organisations, e.g. a ROR dump.
	VocabularyAffiliations VocabularyType = "affiliations"
	// VocabularyNames covers personal and organisational name records.
	VocabularyNames VocabularyType = "names"
	// VocabularyFunding covers funding bodies.
	VocabularyFunding VocabularyType = "funding"
	// VocabularyAwards covers grants and awards.
	VocabularyAwards VocabularyType = "awards"
	// VocabularySubjects covers subject classification terms.
	VocabularySubjects VocabularyType = "subjects"
)

// VocabularyTypes returns all supported vocabulary types in stable order.
func VocabularyTypes() []VocabularyType {
	return []VocabularyType{
		VocabularyAffiliations,
		VocabularyNames,
		VocabularyFunding,
		VocabularyAwards,
		VocabularySubjects,
	}
}

// ParseVocabularyType converts a selector string into a VocabularyType.
// Matching is case-insensitive. Returns ErrUnknownVocabularyType for any
// other input; this is the single validation point for the selector.
func ParseVocabularyType(s string) (VocabularyType, error) {
	candidate := VocabularyType(strings.ToLower(strings.TrimSpace(s)))
	for _, v := range VocabularyTypes() {
		if candidate == v {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownVocabularyType, s)
}

// RelationType classifies a directed reference between two records.
type RelationType string

const (
	// RelationParent points at the record's parent organisation or term.
	RelationParent RelationType = "parent"
	// RelationChild points at a subordinate record.
	RelationChild RelationType = "child"
	// RelationRelated points at an associated record without hierarchy.
	RelationRelated RelationType = "related"
	// RelationSuccessor points at the record that superseded this one.
	RelationSuccessor RelationType = "successor"
	// RelationPredecessor points at the record this one superseded.
	RelationPredecessor RelationType = "predecessor"
)

// IdentifierScheme names the registry an identifier value belongs to.
type IdentifierScheme string

const (
	// SchemeISNI is the International Standard Name Identifier.
	SchemeISNI IdentifierScheme = "isni"
	// SchemeGRID is the Global Research Identifier Database.
	SchemeGRID IdentifierScheme = "grid"
	// SchemeWikidata is a Wikidata entity ID.
	SchemeWikidata IdentifierScheme = "wikidata"
	// SchemeROR is the Research Organization Registry.
	SchemeROR IdentifierScheme = "ror"
	// SchemeORCID is the Open Researcher and Contributor ID.
	SchemeORCID IdentifierScheme = "orcid"
	// SchemeDOI is a Digital Object Identifier.
	SchemeDOI IdentifierScheme = "doi"
	// SchemeCustom is a locally assigned identifier.
	SchemeCustom IdentifierScheme = "custom"
	// SchemeOther tags identifiers whose scheme is not recognised.
	// Unknown schemes degrade to this tag, never to an error.
	SchemeOther IdentifierScheme = "other"
)

// KnownScheme reports whether s is one of the recognised identifier schemes.
func KnownScheme(s IdentifierScheme) bool {
	switch s {
	case SchemeISNI, SchemeGRID, SchemeWikidata, SchemeROR, SchemeORCID, SchemeDOI, SchemeCustom:
		return true
	default:
		return false
	}
}
