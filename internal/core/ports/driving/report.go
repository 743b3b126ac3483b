package driving

import (
	"context"

	"github.com/custodia-labs/doctrace/internal/core/domain"
)

// ReportKind names a report pipeline.
type ReportKind string

// Report pipelines.
const (
	ReportConsistency  ReportKind = "consistency"
	ReportTraceability ReportKind = "traceability"
)

// ReportService runs the analysis pipelines and writes their artifacts.
type ReportService interface {
	// RunConsistency produces the consistency report and snapshot.
	RunConsistency(ctx context.Context) (*RunResult, error)

	// RunTraceability produces the traceability matrix and snapshot.
	RunTraceability(ctx context.Context) (*RunResult, error)

	// RunAll loads documents once and runs both pipelines.
	RunAll(ctx context.Context) ([]RunResult, error)

	// WatchPaths returns the resolved document paths for change detection.
	WatchPaths() []string
}

// RunResult summarises one pipeline run.
type RunResult struct {
	// Kind is the pipeline that produced this result.
	Kind ReportKind

	// Documents are the loaded documents the analysis ran on.
	Documents []domain.Document

	// Consistency is set for ReportConsistency runs.
	Consistency *domain.ConsistencyResult

	// Traceability is set for ReportTraceability runs.
	Traceability *domain.TraceabilityMatrix

	// Artifacts are the paths written, report first.
	Artifacts []string
}
