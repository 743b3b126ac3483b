package console

import (
	"fmt"
	"io"

	"github.com/custodia-labs/doctrace/internal/core/domain"
	"github.com/custodia-labs/doctrace/internal/core/ports/driving"
)

// Printer writes run summaries.
type Printer struct {
	w      io.Writer
	styles *Styles
}

// NewPrinter creates a printer writing to w. Colour is applied only when
// color is true.
func NewPrinter(w io.Writer, color bool) *Printer {
	styles := PlainStyles()
	if color {
		styles = NewStyles(w, nil)
	}
	return &Printer{w: w, styles: styles}
}

// Print writes a summary of every result.
func (p *Printer) Print(results []driving.RunResult) {
	for i := range results {
		if i > 0 {
			fmt.Fprintln(p.w)
		}
		p.PrintResult(&results[i])
	}
}

// PrintResult writes a summary of one pipeline run.
func (p *Printer) PrintResult(result *driving.RunResult) {
	switch result.Kind {
	case driving.ReportConsistency:
		p.printConsistency(result)
	case driving.ReportTraceability:
		p.printTraceability(result)
	}

	for _, doc := range result.Documents {
		if !doc.Loaded() {
			fmt.Fprintf(p.w, "  %s\n", p.styles.Error.Render(fmt.Sprintf("%-8s unreadable: %s", doc.Name, doc.Path)))
		}
	}
	for _, path := range result.Artifacts {
		fmt.Fprintf(p.w, "  %s %s\n", p.styles.Success.Render("wrote"), path)
	}
}

func (p *Printer) printConsistency(result *driving.RunResult) {
	fmt.Fprintln(p.w, p.styles.Title.Render("Consistency report"))
	if result.Consistency == nil {
		return
	}

	r := result.Consistency
	for _, doc := range r.Metadata.DocumentsAnalyzed {
		report := r.Reports[doc]
		version := r.Versions[doc]
		versionText := fmt.Sprintf("%-10s", version)
		if version == domain.UnknownVersion {
			versionText = p.styles.Muted.Render(versionText)
		}
		fmt.Fprintf(p.w, "  %-8s %s terms %-7s phrases %-7s requirements %s\n",
			doc, versionText,
			domain.FormatPercent(report.TermsCoverage),
			domain.FormatPercent(report.PhrasesCoverage),
			domain.FormatPercent(report.RequirementsCoverage))
	}
}

func (p *Printer) printTraceability(result *driving.RunResult) {
	fmt.Fprintln(p.w, p.styles.Title.Render("Traceability matrix"))
	if result.Traceability == nil {
		return
	}

	counts := result.Traceability.StatusCounts()
	fmt.Fprintf(p.w, "  %d requirements: %s  %s  %s\n",
		len(result.Traceability.Requirements),
		p.styles.Success.Render(fmt.Sprintf("%s %d", domain.FullyCovered.Glyph(), counts[domain.FullyCovered])),
		p.styles.Warning.Render(fmt.Sprintf("%s %d", domain.PartiallyCovered.Glyph(), counts[domain.PartiallyCovered])),
		p.styles.Error.Render(fmt.Sprintf("%s %d", domain.NotCovered.Glyph(), counts[domain.NotCovered])))
}
