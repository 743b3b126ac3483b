// Package markdown renders analysis results as markdown reports.
package markdown

import (
	"fmt"
	"strings"
	"time"

	"github.com/custodia-labs/doctrace/internal/core/domain"
	"github.com/custodia-labs/doctrace/internal/core/ports/driven"
)

// Ensure Renderer implements the interface.
var _ driven.Renderer = (*Renderer)(nil)

// Renderer produces markdown reports.
type Renderer struct{}

// New creates a markdown renderer.
func New() *Renderer {
	return &Renderer{}
}

// Extension returns the markdown file extension.
func (r *Renderer) Extension() string {
	return "md"
}

// RenderConsistency renders the version table, the coverage summary and the
// per-document list of missing elements.
func (r *Renderer) RenderConsistency(result *domain.ConsistencyResult) ([]byte, error) {
	if result == nil {
		return nil, domain.ErrInvalidInput
	}

	var sb strings.Builder
	docs := result.Metadata.DocumentsAnalyzed

	sb.WriteString("# Documentation Consistency Report\n")
	fmt.Fprintf(&sb, "Generated: %s\n\n", formatTimestamp(result.Metadata.Timestamp))

	sb.WriteString("## Version Analysis\n")
	sb.WriteString("| Document | Version |\n")
	sb.WriteString("|----------|---------|\n")
	for _, doc := range docs {
		version, ok := result.Versions[doc]
		if !ok {
			version = domain.UnknownVersion
		}
		fmt.Fprintf(&sb, "| %s | %s |\n", doc, escapeCell(version))
	}

	sb.WriteString("\n## Coverage Summary\n")
	sb.WriteString("| Document | Terms Coverage | Phrases Coverage | Requirements Coverage |\n")
	sb.WriteString("|----------|----------------|------------------|-----------------------|\n")
	for _, doc := range docs {
		report := result.Reports[doc]
		fmt.Fprintf(&sb, "| %s | %s | %s | %s |\n", doc,
			domain.FormatPercent(report.TermsCoverage),
			domain.FormatPercent(report.PhrasesCoverage),
			domain.FormatPercent(report.RequirementsCoverage))
	}

	sb.WriteString("\n## Detailed Analysis\n")
	for _, doc := range docs {
		report := result.Reports[doc]
		fmt.Fprintf(&sb, "\n### %s\n", doc)

		writeList(&sb, "Missing Terms", report.MissingTerms, func(s string) string { return "`" + s + "`" })
		writeList(&sb, "Missing Phrases", report.MissingPhrases, func(s string) string { return `"` + s + `"` })
		writeList(&sb, "Missing Requirements", report.MissingRequirements, func(s string) string { return s })
	}

	return []byte(sb.String()), nil
}

// RenderTraceability renders one table row per requirement with a status
// glyph and references per document, followed by the legend.
func (r *Renderer) RenderTraceability(matrix *domain.TraceabilityMatrix) ([]byte, error) {
	if matrix == nil {
		return nil, domain.ErrInvalidInput
	}

	var sb strings.Builder
	docs := matrix.Metadata.DocumentsAnalyzed

	sb.WriteString("# Traceability Matrix\n")
	fmt.Fprintf(&sb, "Generated: %s\n\n", formatTimestamp(matrix.Metadata.Timestamp))
	sb.WriteString("This matrix maps requirements to their implementation across planning documents.\n\n")

	header := make([]string, 0, len(docs))
	rule := make([]string, 0, len(docs))
	for _, doc := range docs {
		header = append(header, string(doc))
		rule = append(rule, "---")
	}
	fmt.Fprintf(&sb, "| Requirement ID | Description | %s |\n", strings.Join(header, " | "))
	fmt.Fprintf(&sb, "|---------------|-------------|%s |\n", strings.Join(rule, " | "))

	for _, id := range matrix.SortedIDs() {
		req := matrix.Requirements[id]
		cells := make([]string, 0, len(docs))
		for _, doc := range docs {
			cells = append(cells, statusCell(req.Coverage[doc], req.References[doc]))
		}
		fmt.Fprintf(&sb, "| %s | %s | %s |\n", id, escapeCell(req.Description), strings.Join(cells, " | "))
	}

	sb.WriteString("\n## Coverage Legend\n")
	for _, status := range domain.CoverageStatuses() {
		fmt.Fprintf(&sb, "- %s %s\n", status.Glyph(), status.Label())
	}

	return []byte(sb.String()), nil
}

func writeList(sb *strings.Builder, title string, items []string, format func(string) string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(sb, "\n#### %s\n", title)
	for _, item := range items {
		fmt.Fprintf(sb, "- %s\n", format(item))
	}
}

func statusCell(status domain.CoverageStatus, refs []string) string {
	cell := status.Glyph()
	if len(refs) > 0 {
		escaped := make([]string, 0, len(refs))
		for _, ref := range refs {
			escaped = append(escaped, escapeCell(ref))
		}
		cell += " (" + strings.Join(escaped, ", ") + ")"
	}
	return cell
}

func formatTimestamp(ts time.Time) string {
	return ts.Format(time.RFC3339)
}

// escapeCell keeps table cells on one row.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
