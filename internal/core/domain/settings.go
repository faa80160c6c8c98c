package domain

import "runtime"

// ConversionDefaults carries the configurable mapping policy shared by the
// vocabulary mappers and the batch converter. Values come from the host
// configuration; zero values are filled by NewConversionDefaults.
type ConversionDefaults struct {
	// FallbackLanguage keys the untranslated label entry when a record
	// carries a name but no translations.
	FallbackLanguage string

	// DefaultCurrency applies to award amounts that carry no currency.
	DefaultCurrency string

	// RelationPassthrough keeps unknown relationship-type strings verbatim
	// instead of failing the record.
	RelationPassthrough bool

	// Workers bounds the converter's parallelism.
	Workers int
}

// NewConversionDefaults returns the built-in policy: English fallback
// labels, EUR award currency, strict relationship types, one worker per CPU.
func NewConversionDefaults() ConversionDefaults {
	return ConversionDefaults{
		FallbackLanguage:    "en",
		DefaultCurrency:     "EUR",
		RelationPassthrough: false,
		Workers:             runtime.NumCPU(),
	}
}
