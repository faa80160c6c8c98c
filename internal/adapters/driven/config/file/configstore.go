// Package file implements the ConfigStore port on a TOML file.
package file

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/openvocab/vocab-cli/internal/core/domain"
	"github.com/openvocab/vocab-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.ConfigStore = (*Store)(nil)

// Store reads conversion defaults from a TOML file. Nested tables are
// flattened to dot-notation keys, so
//
//	[labels]
//	fallback_language = "en"
//
// is read as "labels.fallback_language". An empty path yields the
// built-in defaults.
type Store struct {
	path string
	data map[string]any
}

// NewStore loads the configuration at path. A missing file with a
// non-empty path is an error; path "" skips loading entirely.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path: path,
		data: make(map[string]any),
	}
	if path == "" {
		return s, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var loaded map[string]any
	if err := toml.Unmarshal(raw, &loaded); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	s.data = flattenMap(loaded, "")
	return s, nil
}

// Defaults returns the effective conversion policy.
func (s *Store) Defaults() domain.ConversionDefaults {
	d := domain.NewConversionDefaults()
	if v := s.getString("labels.fallback_language"); v != "" {
		d.FallbackLanguage = v
	}
	if v := s.getString("awards.default_currency"); v != "" {
		d.DefaultCurrency = v
	}
	if v, ok := s.data["relations.passthrough"].(bool); ok {
		d.RelationPassthrough = v
	}
	if v := s.getInt("convert.workers"); v > 0 {
		d.Workers = v
	}
	return d
}

// Path returns the configuration file path.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) getString(key string) string {
	v, _ := s.data[key].(string)
	return v
}

func (s *Store) getInt(key string) int {
	// TOML integers are parsed as int64.
	switch v := s.data[key].(type) {
	case int64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

// flattenMap converts nested maps to dot-notation keys.
// E.g., {"a": {"b": 1}} becomes {"a.b": 1}.
func flattenMap(m map[string]any, prefix string) map[string]any {
	result := make(map[string]any)

	for key, value := range m {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		if nested, ok := value.(map[string]any); ok {
			for k, v := range flattenMap(nested, fullKey) {
				result[k] = v
			}
		} else {
			result[fullKey] = value
		}
	}

	return result
}
