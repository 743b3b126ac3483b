package driven

import "github.com/custodia-labs/doctrace/internal/core/domain"

// Renderer converts analysis results into artifact content.
// Implementations are pure formatting steps with no analytical logic.
type Renderer interface {
	// Extension returns the file extension of rendered artifacts.
	Extension() string

	// RenderConsistency renders a consistency analysis result.
	RenderConsistency(result *domain.ConsistencyResult) ([]byte, error)

	// RenderTraceability renders a traceability matrix.
	RenderTraceability(matrix *domain.TraceabilityMatrix) ([]byte, error)
}
