package domain

import (
	"math"
	"strconv"
)

// CoverageReport holds the gaps of one document against the union.
type CoverageReport struct {
	// MissingTerms is union terms minus the document's terms, sorted.
	MissingTerms []string

	// MissingPhrases is union phrases minus the document's phrases, sorted.
	MissingPhrases []string

	// MissingRequirements is union IDs minus the document's IDs, sorted.
	MissingRequirements []string

	// TermsCoverage is the share of union terms present, in [0,100].
	TermsCoverage float64

	// PhrasesCoverage is the share of union phrases present, in [0,100].
	PhrasesCoverage float64

	// RequirementsCoverage is the share of union requirement IDs present, in [0,100].
	RequirementsCoverage float64
}

// ConsistencyResult is the outcome of cross-document consistency analysis.
type ConsistencyResult struct {
	Metadata Metadata

	// Versions maps each document to its declared version or UnknownVersion.
	Versions map[DocumentName]string

	// Reports maps each document to its coverage report.
	Reports map[DocumentName]CoverageReport

	// Union is the union of all extracted element sets.
	Union ElementSet
}

// FormatPercent renders a coverage percentage with at most two decimals
// and no trailing zeros: 100%, 66.67%, 12.5%.
func FormatPercent(pct float64) string {
	return strconv.FormatFloat(math.Round(pct*100)/100, 'f', -1, 64) + "%"
}
