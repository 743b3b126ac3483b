// Package loader groups the driven.DocumentLoader adapters.
//
// Adapters:
//   - filesystem: Reads planning documents from disk
//   - memory: Serves fixed texts, for tests and embedding
package loader
