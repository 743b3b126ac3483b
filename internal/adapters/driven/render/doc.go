// Package render groups the driven.Renderer adapters.
//
// Renderers are pure mappings from analysis results to bytes. They contain
// no analytical logic and iterate sets and maps in sorted or configured
// order, so identical results always render identical artifacts.
//
// Adapters:
//   - markdown: Human-readable reports
//   - snapshot: JSON or YAML structural snapshots for downstream tooling
package render
