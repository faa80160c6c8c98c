package norm

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/openvocab/vocab-cli/internal/core/domain"
)

// Identifier value patterns for scheme inference.
var (
	orcidPattern    = regexp.MustCompile(`^\d{4}-\d{4}-\d{4}-\d{3}[\dX]$`)
	isniPattern     = regexp.MustCompile(`^\d{4} ?\d{4} ?\d{4} ?\d{3}[\dX]$`)
	wikidataPattern = regexp.MustCompile(`^Q\d+$`)
)

// Identifiers decodes the raw identifier field of a record. Accepted
// element shapes: a bare string, a {scheme, value} mapping, or the legacy
// {type, id} mapping. A single element may also appear outside a sequence.
//
// Schemes are inferred from the value when absent; unrecognised scheme
// strings pass through tagged domain.SchemeOther. Identifiers never fails:
// unknown shapes degrade to a best-effort string capture plus a warning.
//
// The per-record invariant that at most one identifier per scheme is marked
// preferred is enforced here; later duplicates are demoted with a warning.
func Identifiers(raw any) ([]domain.ExternalIdentifier, []string) {
	var (
		ids      []domain.ExternalIdentifier
		warnings []string
	)

	entries, ok := raw.([]any)
	if !ok {
		if raw == nil {
			return nil, nil
		}
		entries = []any{raw}
	}

	preferredSeen := map[domain.IdentifierScheme]bool{}
	for _, entry := range entries {
		id, warning := decodeIdentifier(entry)
		if warning != "" {
			warnings = append(warnings, warning)
		}
		if id == nil {
			continue
		}
		if id.Preferred {
			if preferredSeen[id.Scheme] {
				id.Preferred = false
				warnings = append(warnings, fmt.Sprintf("identifier %q: second preferred %s identifier demoted", id.Value, id.Scheme))
			}
			preferredSeen[id.Scheme] = true
		}
		ids = append(ids, *id)
	}
	return ids, warnings
}

// decodeIdentifier turns one raw element into an identifier.
// A nil identifier with an empty warning means the entry carried nothing
// usable and was dropped silently (e.g. an empty string).
func decodeIdentifier(entry any) (*domain.ExternalIdentifier, string) {
	switch v := entry.(type) {
	case string:
		value := strings.TrimSpace(v)
		if value == "" {
			return nil, ""
		}
		return &domain.ExternalIdentifier{Scheme: InferScheme(value), Value: value}, ""

	case map[string]any:
		value, _ := firstString(v, "value", "id", "identifier")
		value = strings.TrimSpace(value)
		if value == "" {
			return nil, fmt.Sprintf("identifier entry %v: no value found, entry dropped", v)
		}

		scheme, hasScheme := firstString(v, "scheme", "type")
		id := &domain.ExternalIdentifier{Value: value}
		if preferred, ok := v["preferred"].(bool); ok {
			id.Preferred = preferred
		}

		if !hasScheme {
			id.Scheme = InferScheme(value)
			return id, ""
		}

		normalised := domain.IdentifierScheme(strings.ToLower(strings.TrimSpace(scheme)))
		if domain.KnownScheme(normalised) {
			id.Scheme = normalised
			return id, ""
		}
		id.Scheme = domain.SchemeOther
		return id, fmt.Sprintf("identifier %q: unrecognised scheme %q tagged %s", value, scheme, domain.SchemeOther)

	default:
		// Best-effort capture of shapes we do not know.
		value := strings.TrimSpace(fmt.Sprintf("%v", entry))
		if value == "" || value == "<nil>" {
			return nil, ""
		}
		return &domain.ExternalIdentifier{Scheme: domain.SchemeOther, Value: value},
			fmt.Sprintf("identifier entry of unknown shape captured as %q", value)
	}
}

// InferScheme recognises an identifier scheme from the value itself.
// Values matching no known pattern are tagged domain.SchemeOther.
func InferScheme(value string) domain.IdentifierScheme {
	v := strings.TrimSpace(value)
	lower := strings.ToLower(v)

	switch {
	case strings.Contains(lower, "ror.org/"):
		return domain.SchemeROR
	case strings.Contains(lower, "orcid.org/"), orcidPattern.MatchString(v):
		return domain.SchemeORCID
	case strings.HasPrefix(lower, "10."), strings.Contains(lower, "doi.org/"):
		return domain.SchemeDOI
	case strings.HasPrefix(lower, "grid."):
		return domain.SchemeGRID
	case wikidataPattern.MatchString(v), strings.Contains(lower, "wikidata.org/"):
		return domain.SchemeWikidata
	case isniPattern.MatchString(v), strings.Contains(lower, "isni.org/"):
		return domain.SchemeISNI
	default:
		return domain.SchemeOther
	}
}

// RecordIdentifiers gathers identifiers from several record keys in order,
// concatenating the decoded lists. Dumps spread identifiers across a
// primary "id" field and an "identifiers" list.
func RecordIdentifiers(record domain.SourceRecord, keys ...string) ([]domain.ExternalIdentifier, []string) {
	var (
		ids      []domain.ExternalIdentifier
		warnings []string
	)
	for _, key := range keys {
		if !record.Has(key) {
			continue
		}
		decoded, warns := Identifiers(record[key])
		ids = append(ids, decoded...)
		warnings = append(warnings, warns...)
	}

	// Re-apply the preferred-per-scheme invariant across the merged list.
	preferredSeen := map[domain.IdentifierScheme]bool{}
	for i := range ids {
		if !ids[i].Preferred {
			continue
		}
		if preferredSeen[ids[i].Scheme] {
			ids[i].Preferred = false
			warnings = append(warnings, fmt.Sprintf("identifier %q: second preferred %s identifier demoted", ids[i].Value, ids[i].Scheme))
			continue
		}
		preferredSeen[ids[i].Scheme] = true
	}
	return ids, warnings
}
