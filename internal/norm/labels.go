package norm

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/openvocab/vocab-cli/internal/core/domain"
)

// Labels collapses the raw label field of a record into a multilingual
// label set. Accepted shapes:
//
//   - a sequence of {lang, value} mappings (legacy dumps use {iso639, label})
//   - a mapping from language code to string (already-normalised input;
//     Labels is idempotent over its own output)
//   - a bare string, stored under fallbackLang
//
// Duplicate languages keep the first occurrence. Language codes are
// canonicalised to their ISO-639 base; unparseable codes are kept verbatim
// in lower case. All values are transliterated.
//
// When the result is empty a non-empty fallbackName becomes the
// fallbackLang entry; otherwise Labels fails with domain.ErrMissingLabel.
func Labels(raw any, fallbackLang, fallbackName string) (domain.MultilingualLabel, error) {
	labels := domain.MultilingualLabel{}

	switch v := raw.(type) {
	case nil:
	case string:
		addLabel(labels, fallbackLang, v)
	case []any:
		for _, entry := range v {
			m, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			lang, _ := firstString(m, "lang", "iso639", "language")
			value, _ := firstString(m, "value", "label", "title")
			addLabel(labels, lang, value)
		}
	case map[string]any:
		for lang, value := range v {
			if s, ok := value.(string); ok {
				addLabel(labels, lang, s)
			}
		}
	case map[string]string:
		for lang, value := range v {
			addLabel(labels, lang, value)
		}
	case domain.MultilingualLabel:
		for lang, value := range v {
			addLabel(labels, lang, value)
		}
	}

	if len(labels) == 0 {
		if fallbackName == "" {
			return nil, domain.ErrMissingLabel
		}
		addLabel(labels, fallbackLang, fallbackName)
		if len(labels) == 0 {
			return nil, domain.ErrMissingLabel
		}
	}
	return labels, nil
}

// CanonicalLang reduces a language code to its ISO-639 base ("en-GB" to
// "en"). Codes the language matcher cannot parse are kept verbatim in
// lower case so that legacy dumps still round-trip.
func CanonicalLang(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return ""
	}
	tag, err := language.Parse(code)
	if err != nil {
		return strings.ToLower(code)
	}
	base, conf := tag.Base()
	if conf == language.No {
		return strings.ToLower(code)
	}
	return base.String()
}

// addLabel inserts a single entry, keeping the first occurrence per
// language and dropping entries with an empty code or value.
func addLabel(labels domain.MultilingualLabel, lang, value string) {
	lang = CanonicalLang(lang)
	value = Transliterate(value)
	if lang == "" || value == "" {
		return
	}
	if _, exists := labels[lang]; exists {
		return
	}
	labels[lang] = value
}

// firstString returns the first present, non-empty string among keys.
func firstString(m map[string]any, keys ...string) (string, bool) {
	for _, key := range keys {
		if s, ok := m[key].(string); ok && s != "" {
			return s, true
		}
	}
	return "", false
}
