package services

import (
	"math"

	"github.com/custodia-labs/doctrace/internal/core/domain"
)

// ConsistencyAnalyzer computes cross-document gaps and coverage percentages.
type ConsistencyAnalyzer struct {
	extractor *Extractor
}

// NewConsistencyAnalyzer creates an analyzer using extractor.
// A nil extractor selects the default one.
func NewConsistencyAnalyzer(extractor *Extractor) *ConsistencyAnalyzer {
	if extractor == nil {
		extractor = NewExtractor()
	}
	return &ConsistencyAnalyzer{extractor: extractor}
}

// Analyze extracts elements from every document, builds their union and
// reports what each document is missing. It is a pure function of docs.
func (a *ConsistencyAnalyzer) Analyze(meta domain.Metadata, docs []domain.Document) *domain.ConsistencyResult {
	result := &domain.ConsistencyResult{
		Metadata: meta,
		Versions: make(map[domain.DocumentName]string, len(docs)),
		Reports:  make(map[domain.DocumentName]domain.CoverageReport, len(docs)),
		Union:    domain.NewElementSet(),
	}

	// First pass: extract once per document and accumulate the union.
	sets := make([]domain.ElementSet, len(docs))
	for i := range docs {
		result.Versions[docs[i].Name] = a.extractor.ExtractVersion(docs[i].Text)
		sets[i] = a.extractor.ExtractKeyElements(docs[i].Text)
		result.Union = result.Union.Union(sets[i])
	}

	// Second pass: compare each document against the union.
	for i := range docs {
		result.Reports[docs[i].Name] = CompareToUnion(sets[i], result.Union)
	}

	return result
}

// CompareToUnion computes the gaps and coverage of own against union.
// own is expected to be a subset of union.
func CompareToUnion(own, union domain.ElementSet) domain.CoverageReport {
	return domain.CoverageReport{
		MissingTerms:         union.Terms.Difference(own.Terms).Sorted(),
		MissingPhrases:       union.Phrases.Difference(own.Phrases).Sorted(),
		MissingRequirements:  union.RequirementIDs.Difference(own.RequirementIDs).Sorted(),
		TermsCoverage:        CoveragePercent(own.Terms.Len(), union.Terms.Len()),
		PhrasesCoverage:      CoveragePercent(own.Phrases.Len(), union.Phrases.Len()),
		RequirementsCoverage: CoveragePercent(own.RequirementIDs.Len(), union.RequirementIDs.Len()),
	}
}

// CoveragePercent returns own/total as a percentage rounded to two decimals.
// An empty total is vacuously fully covered. The result is clamped to [0,100].
func CoveragePercent(own, total int) float64 {
	if total <= 0 {
		return 100
	}
	pct := math.Round(float64(own)/float64(total)*100*100) / 100
	return math.Max(0, math.Min(100, pct))
}
