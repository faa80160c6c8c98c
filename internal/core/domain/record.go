package domain

// SourceRecord is one entity as parsed from the input dump.
// It is an opaque structured document: string keys mapping to scalars,
// sequences or nested mappings. The input reader creates it, exactly one
// vocabulary mapper consumes it, and it is never mutated after creation.
type SourceRecord map[string]any

// String returns the string value for key, or "" when the key is absent
// or holds a non-string value.
func (r SourceRecord) String(key string) string {
	s, _ := r[key].(string)
	return s
}

// Bool returns the boolean value for key and whether it was present.
func (r SourceRecord) Bool(key string) (bool, bool) {
	b, ok := r[key].(bool)
	return b, ok
}

// Slice returns the sequence value for key, or nil.
func (r SourceRecord) Slice(key string) []any {
	s, _ := r[key].([]any)
	return s
}

// Map returns the nested mapping for key, or nil.
func (r SourceRecord) Map(key string) map[string]any {
	m, _ := r[key].(map[string]any)
	return m
}

// StringSlice returns the string elements of the sequence at key,
// skipping non-string entries.
func (r SourceRecord) StringSlice(key string) []string {
	raw := r.Slice(key)
	if raw == nil {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Has reports whether key is present with a non-nil value.
func (r SourceRecord) Has(key string) bool {
	v, ok := r[key]
	return ok && v != nil
}

// MultilingualLabel maps an ISO-639-like language code to a display string,
// at most one string per language. Order is irrelevant.
type MultilingualLabel map[string]string

// ExternalIdentifier is a scheme-qualified identifier carried by a record.
// Within one record at most one identifier per scheme is marked preferred.
type ExternalIdentifier struct {
	Scheme    IdentifierScheme `yaml:"scheme" json:"scheme"`
	Value     string           `yaml:"identifier" json:"identifier"`
	Preferred bool             `yaml:"preferred,omitempty" json:"preferred,omitempty"`
}

// Relationship is a directed edge to another record identified by its
// canonical ID. The converter passes the reference through without
// resolving it; resolution belongs to the downstream system.
type Relationship struct {
	Type     RelationType `yaml:"type" json:"type"`
	TargetID string       `yaml:"target_id" json:"target_id"`
}

// OutputRecord is the target-schema document. One shape serves all five
// vocabularies; vocabulary-specific fields stay empty elsewhere and are
// omitted from serialisation.
type OutputRecord struct {
	ID            string               `yaml:"id" json:"id"`
	Name          string               `yaml:"name" json:"name"`
	Title         MultilingualLabel    `yaml:"title" json:"title"`
	Identifiers   []ExternalIdentifier `yaml:"identifiers" json:"identifiers"`
	Relationships []Relationship       `yaml:"relationships,omitempty" json:"relationships,omitempty"`
	Active        bool                 `yaml:"active" json:"active"`

	// Affiliations.
	Acronym string `yaml:"acronym,omitempty" json:"acronym,omitempty"`

	// Funding bodies.
	Country    string `yaml:"country,omitempty" json:"country,omitempty"`
	FunderType string `yaml:"funder_type,omitempty" json:"funder_type,omitempty"`

	// Awards.
	Funder   string  `yaml:"funder,omitempty" json:"funder,omitempty"`
	Amount   float64 `yaml:"amount,omitempty" json:"amount,omitempty"`
	Currency string  `yaml:"currency,omitempty" json:"currency,omitempty"`

	// Subjects.
	Scheme   string `yaml:"scheme,omitempty" json:"scheme,omitempty"`
	Notation string `yaml:"notation,omitempty" json:"notation,omitempty"`
}

// PrimaryIdentifier selects the identifier the canonical ID derives from.
// Selection order:
//  1. the first identifier marked preferred whose scheme appears in
//     schemes, in schemes order
//  2. the first identifier marked preferred
//  3. the first identifier whose scheme appears in schemes, in schemes order
//  4. the first identifier
//
// When several identifiers share a scheme and none is marked preferred the
// first occurrence in input order wins. Returns false only when ids is empty.
func PrimaryIdentifier(ids []ExternalIdentifier, schemes ...IdentifierScheme) (ExternalIdentifier, bool) {
	if len(ids) == 0 {
		return ExternalIdentifier{}, false
	}
	for _, scheme := range schemes {
		for _, id := range ids {
			if id.Preferred && id.Scheme == scheme {
				return id, true
			}
		}
	}
	for _, id := range ids {
		if id.Preferred {
			return id, true
		}
	}
	for _, scheme := range schemes {
		for _, id := range ids {
			if id.Scheme == scheme {
				return id, true
			}
		}
	}
	return ids[0], true
}
