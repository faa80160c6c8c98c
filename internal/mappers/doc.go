// Package mappers provides implementations of the Mapper interface, one
// per controlled-vocabulary type, plus the registry that dispatches a
// vocabulary-type selector to its mapper.
//
// Mappers are registered with the Registry at startup.
package mappers
