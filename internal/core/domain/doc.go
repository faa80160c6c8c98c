// Package domain defines the core business entities for the vocabulary
// converter.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - SourceRecord: One entity as parsed from an input dump
//   - OutputRecord: The target controlled-vocabulary shape
//   - MultilingualLabel: Language code to display string mapping
//   - ExternalIdentifier: A scheme-qualified identifier
//   - Relationship: A directed reference between records
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
