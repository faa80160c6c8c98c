// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Mapper: Transforms one source record into an output record
//   - MapperRegistry: Selects the mapper for a vocabulary type
//   - DumpReader: Loads a parsed record collection from a dump file
//   - VocabularyWriter: Serialises output records to the target format
//   - ConfigStore: Supplies conversion defaults
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or mapper package
package driven
