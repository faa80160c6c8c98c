package driven

import "github.com/openvocab/vocab-cli/internal/core/domain"

// ConfigStore supplies conversion defaults from host configuration.
type ConfigStore interface {
	// Defaults returns the effective conversion policy, with built-in
	// values filling anything the configuration leaves unset.
	Defaults() domain.ConversionDefaults

	// Path returns the configuration file path, or "" when running on
	// built-in defaults only.
	Path() string
}
