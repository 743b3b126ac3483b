// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - DocumentLoader: Reads every configured planning document once
//   - Renderer: Turns analysis results into artifact bytes
//   - ArtifactWriter: Persists artifacts into the output directory
//   - ConfigStore: Read-only access to the optional configuration file
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
