package norm

import (
	"fmt"
	"strings"

	"github.com/openvocab/vocab-cli/internal/core/domain"
)

// relationTypes maps source relationship-type strings to the closed enum.
var relationTypes = map[string]domain.RelationType{
	"parent":      domain.RelationParent,
	"child":       domain.RelationChild,
	"related":     domain.RelationRelated,
	"successor":   domain.RelationSuccessor,
	"predecessor": domain.RelationPredecessor,
}

// Relationships decodes the raw relationship field of a record. Each
// element is a mapping carrying a type string and a target reference
// ("id", "target_id" or "label"-free "target"). Entries without a target
// are dropped; the converter cannot pass through an edge with no endpoint.
//
// Type strings match case-insensitively. An unknown type fails with
// domain.ErrUnknownRelationType unless passthrough is enabled, in which
// case the string is kept verbatim (lower-cased) for the downstream system
// to interpret.
func Relationships(raw any, passthrough bool) ([]domain.Relationship, error) {
	if raw == nil {
		return nil, nil
	}
	entries, ok := raw.([]any)
	if !ok {
		entries = []any{raw}
	}

	var rels []domain.Relationship
	for _, entry := range entries {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		target, _ := firstString(m, "id", "target_id", "target")
		target = strings.TrimSpace(target)
		if target == "" {
			continue
		}

		rawType, _ := firstString(m, "type", "relationship_type", "relation")
		key := strings.ToLower(strings.TrimSpace(rawType))

		relType, known := relationTypes[key]
		if !known {
			if !passthrough {
				return nil, fmt.Errorf("%w: %q", domain.ErrUnknownRelationType, rawType)
			}
			relType = domain.RelationType(key)
		}
		rels = append(rels, domain.Relationship{Type: relType, TargetID: target})
	}
	return rels, nil
}
