package snapshot

import (
	"time"

	"github.com/custodia-labs/doctrace/internal/core/domain"
)

// metadata mirrors domain.Metadata.
type metadata struct {
	RunID             string   `json:"run_id" yaml:"run_id"`
	Timestamp         string   `json:"timestamp" yaml:"timestamp"`
	DocumentsAnalyzed []string `json:"documents_analyzed" yaml:"documents_analyzed"`
}

type missingElements struct {
	MissingTerms        []string `json:"missing_terms" yaml:"missing_terms"`
	MissingPhrases      []string `json:"missing_phrases" yaml:"missing_phrases"`
	MissingRequirements []string `json:"missing_requirements" yaml:"missing_requirements"`
}

type coverageFigures struct {
	TermsCoverage        float64 `json:"terms_coverage" yaml:"terms_coverage"`
	PhrasesCoverage      float64 `json:"phrases_coverage" yaml:"phrases_coverage"`
	RequirementsCoverage float64 `json:"requirements_coverage" yaml:"requirements_coverage"`
}

// consistencySnapshot is the structural form of domain.ConsistencyResult.
type consistencySnapshot struct {
	Metadata             metadata                   `json:"metadata" yaml:"metadata"`
	VersionAnalysis      map[string]string          `json:"version_analysis" yaml:"version_analysis"`
	ConsistencyAnalysis  map[string]missingElements `json:"consistency_analysis" yaml:"consistency_analysis"`
	RequirementsCoverage map[string]coverageFigures `json:"requirements_coverage" yaml:"requirements_coverage"`
}

type requirementEntry struct {
	Description string              `json:"description" yaml:"description"`
	Coverage    map[string]string   `json:"coverage" yaml:"coverage"`
	References  map[string][]string `json:"references" yaml:"references"`
}

// traceabilitySnapshot is the structural form of domain.TraceabilityMatrix.
type traceabilitySnapshot struct {
	Metadata     metadata                    `json:"metadata" yaml:"metadata"`
	Requirements map[string]requirementEntry `json:"requirements" yaml:"requirements"`
}

func newMetadata(m domain.Metadata) metadata {
	docs := make([]string, 0, len(m.DocumentsAnalyzed))
	for _, d := range m.DocumentsAnalyzed {
		docs = append(docs, string(d))
	}
	return metadata{
		RunID:             m.RunID,
		Timestamp:         m.Timestamp.Format(time.RFC3339Nano),
		DocumentsAnalyzed: docs,
	}
}

func newConsistencySnapshot(r *domain.ConsistencyResult) consistencySnapshot {
	s := consistencySnapshot{
		Metadata:             newMetadata(r.Metadata),
		VersionAnalysis:      make(map[string]string, len(r.Metadata.DocumentsAnalyzed)),
		ConsistencyAnalysis:  make(map[string]missingElements, len(r.Metadata.DocumentsAnalyzed)),
		RequirementsCoverage: make(map[string]coverageFigures, len(r.Metadata.DocumentsAnalyzed)),
	}

	for _, doc := range r.Metadata.DocumentsAnalyzed {
		version, ok := r.Versions[doc]
		if !ok {
			version = domain.UnknownVersion
		}
		report := r.Reports[doc]

		s.VersionAnalysis[string(doc)] = version
		s.ConsistencyAnalysis[string(doc)] = missingElements{
			MissingTerms:        orEmpty(report.MissingTerms),
			MissingPhrases:      orEmpty(report.MissingPhrases),
			MissingRequirements: orEmpty(report.MissingRequirements),
		}
		s.RequirementsCoverage[string(doc)] = coverageFigures{
			TermsCoverage:        report.TermsCoverage,
			PhrasesCoverage:      report.PhrasesCoverage,
			RequirementsCoverage: report.RequirementsCoverage,
		}
	}

	return s
}

func newTraceabilitySnapshot(m *domain.TraceabilityMatrix) traceabilitySnapshot {
	s := traceabilitySnapshot{
		Metadata:     newMetadata(m.Metadata),
		Requirements: make(map[string]requirementEntry, len(m.Requirements)),
	}

	for _, id := range m.SortedIDs() {
		req := m.Requirements[id]
		entry := requirementEntry{
			Description: req.Description,
			Coverage:    make(map[string]string, len(m.Metadata.DocumentsAnalyzed)),
			References:  make(map[string][]string, len(m.Metadata.DocumentsAnalyzed)),
		}
		for _, doc := range m.Metadata.DocumentsAnalyzed {
			entry.Coverage[string(doc)] = req.Coverage[doc].String()
			entry.References[string(doc)] = orEmpty(req.References[doc])
		}
		s.Requirements[id] = entry
	}

	return s
}

func orEmpty(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
