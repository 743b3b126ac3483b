package domain

import "sort"

// CoverageStatus classifies how a document covers a requirement.
type CoverageStatus int

// Coverage statuses, from weakest to strongest.
const (
	NotCovered CoverageStatus = iota
	PartiallyCovered
	FullyCovered
)

// String returns the snapshot name of the status.
func (s CoverageStatus) String() string {
	switch s {
	case FullyCovered:
		return "fully_covered"
	case PartiallyCovered:
		return "partially_covered"
	default:
		return "not_covered"
	}
}

// Glyph returns the symbol used in the matrix report.
func (s CoverageStatus) Glyph() string {
	switch s {
	case FullyCovered:
		return "✅"
	case PartiallyCovered:
		return "⚠️"
	default:
		return "❌"
	}
}

// Label returns the human-readable legend text.
func (s CoverageStatus) Label() string {
	switch s {
	case FullyCovered:
		return "Fully covered"
	case PartiallyCovered:
		return "Partially covered"
	default:
		return "Not covered"
	}
}

// CoverageStatuses returns all statuses, strongest first, as listed in the legend.
func CoverageStatuses() []CoverageStatus {
	return []CoverageStatus{FullyCovered, PartiallyCovered, NotCovered}
}

// RequirementMention is one occurrence of a requirement ID in a document.
type RequirementMention struct {
	// ID is the requirement identifier.
	ID string

	// Description is the rest of the line following the identifier.
	Description string
}

// Requirement is a traceable requirement and its per-document coverage.
type Requirement struct {
	ID string

	// Description comes from the first occurrence across all documents.
	Description string

	// Coverage maps each document to its coverage status.
	Coverage map[DocumentName]CoverageStatus

	// References maps each document to section numbers and headings
	// found after the identifier, in order of appearance.
	References map[DocumentName][]string
}

// NewRequirement creates a requirement with empty coverage maps.
func NewRequirement(id, description string) *Requirement {
	return &Requirement{
		ID:          id,
		Description: description,
		Coverage:    make(map[DocumentName]CoverageStatus),
		References:  make(map[DocumentName][]string),
	}
}

// TraceabilityMatrix maps requirement IDs to their coverage across documents.
type TraceabilityMatrix struct {
	Metadata Metadata

	// Requirements is keyed by requirement ID.
	Requirements map[string]*Requirement
}

// SortedIDs returns the requirement IDs in ascending order.
func (m *TraceabilityMatrix) SortedIDs() []string {
	ids := make([]string, 0, len(m.Requirements))
	for id := range m.Requirements {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// StatusCounts tallies statuses over every requirement and document.
func (m *TraceabilityMatrix) StatusCounts() map[CoverageStatus]int {
	counts := make(map[CoverageStatus]int, 3)
	for _, req := range m.Requirements {
		for _, status := range req.Coverage {
			counts[status]++
		}
	}
	return counts
}
