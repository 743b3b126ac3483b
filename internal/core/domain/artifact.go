package domain

// Artifact is a named output file produced by a run.
type Artifact struct {
	// Name is the file name inside the output directory.
	Name string

	// Data is the full file content.
	Data []byte
}

// Artifact file names.
const (
	ConsistencyReportName    = "consistency_report.md"
	ConsistencyResultsStem   = "consistency_results"
	TraceabilityReportName   = "traceability_matrix.md"
	TraceabilitySnapshotStem = "traceability_matrix"
)
