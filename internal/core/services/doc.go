// Package services implements the driving port interfaces.
// Services contain the core analysis logic and orchestrate
// calls to driven ports (adapters).
//
// The extractor and both analyzers are pure: they receive loaded
// documents and return new results without touching any port.
// ReportService wires them to the loader, renderers and writer.
//
// Services are pure Go with no CGO or external dependencies.
package services
