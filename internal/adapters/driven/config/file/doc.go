// Package file provides file-based implementations of driven port interfaces.
//
// Adapters:
//   - ConfigStore: Read-only TOML configuration (doctrace.toml)
package file
