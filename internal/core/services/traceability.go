package services

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/doctrace/internal/core/domain"
)

// implementationStems mark a requirement as addressed when they follow it.
// They are prefixes, so "implementing" and "provides" qualify.
var implementationStems = []string{"implement", "provid", "ensur", "handle", "process", "support"}

// TraceabilityAnalyzer classifies requirement coverage per document.
//
// Classification is a textual heuristic. The search from an identifier to an
// implementation stem or section marker is unbounded, so an unrelated later
// sentence can promote a requirement to FullyCovered.
type TraceabilityAnalyzer struct {
	extractor *Extractor
}

// NewTraceabilityAnalyzer creates an analyzer using extractor.
// A nil extractor selects the default one.
func NewTraceabilityAnalyzer(extractor *Extractor) *TraceabilityAnalyzer {
	if extractor == nil {
		extractor = NewExtractor()
	}
	return &TraceabilityAnalyzer{extractor: extractor}
}

// Analyze discovers requirements across docs and classifies each one in
// every document. It is a pure function of docs.
func (a *TraceabilityAnalyzer) Analyze(meta domain.Metadata, docs []domain.Document) *domain.TraceabilityMatrix {
	matrix := &domain.TraceabilityMatrix{
		Metadata:     meta,
		Requirements: make(map[string]*domain.Requirement),
	}

	// First pass: discover requirements; the first non-empty description wins.
	for i := range docs {
		for _, mention := range a.extractor.ExtractRequirements(docs[i].Text) {
			req, ok := matrix.Requirements[mention.ID]
			if !ok {
				matrix.Requirements[mention.ID] = domain.NewRequirement(mention.ID, mention.Description)
				continue
			}
			if req.Description == "" {
				req.Description = mention.Description
			}
		}
	}

	// Second pass: classify each requirement independently per document.
	for _, id := range matrix.SortedIDs() {
		req := matrix.Requirements[id]
		patterns := compileRequirementPatterns(id)
		for i := range docs {
			req.Coverage[docs[i].Name] = patterns.classify(docs[i].Text)
			req.References[docs[i].Name] = patterns.references(docs[i].Text)
		}
	}

	return matrix
}

// ClassifyCoverage returns the coverage status of requirement id in text.
func ClassifyCoverage(id, text string) domain.CoverageStatus {
	return compileRequirementPatterns(id).classify(text)
}

// FindReferences returns section numbers and quoted headings that follow
// requirement id in text: section references first, then headings, each in
// order of appearance and without deduplication.
func FindReferences(id, text string) []string {
	return compileRequirementPatterns(id).references(text)
}

// requirementPatterns are the per-identifier search expressions.
type requirementPatterns struct {
	id             string
	implementation *regexp.Regexp
	section        *regexp.Regexp
	heading        *regexp.Regexp
}

func compileRequirementPatterns(id string) requirementPatterns {
	quoted := regexp.QuoteMeta(id)
	return requirementPatterns{
		id:             id,
		implementation: regexp.MustCompile(`(?is)` + quoted + `.*?(?:` + strings.Join(implementationStems, "|") + `)`),
		section:        regexp.MustCompile(`(?is)` + quoted + `.*?(?:Section|§)\s+([0-9.]+)`),
		heading:        regexp.MustCompile(`(?is)` + quoted + `.*?(?:in|under)\s+["']([^"']+)["']`),
	}
}

func (p requirementPatterns) classify(text string) domain.CoverageStatus {
	if !strings.Contains(text, p.id) {
		return domain.NotCovered
	}
	if p.implementation.MatchString(text) {
		return domain.FullyCovered
	}
	return domain.PartiallyCovered
}

func (p requirementPatterns) references(text string) []string {
	refs := make([]string, 0)
	for _, m := range p.section.FindAllStringSubmatch(text, -1) {
		refs = append(refs, m[1])
	}
	for _, m := range p.heading.FindAllStringSubmatch(text, -1) {
		refs = append(refs, m[1])
	}
	return refs
}
