// Package domain defines the core entities for doctrace.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A planning document loaded once per run
//   - ElementSet: Terms, quoted phrases and requirement IDs of a document
//   - ConsistencyResult: Per-document gaps against the union of all documents
//   - TraceabilityMatrix: Per-requirement coverage status across documents
//   - Config: The immutable document-name-to-path mapping for a run
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
