// Package reporting provides report generation for benchmark results.
package reporting

import (
	"fmt"
	"io"
	"time"

	"github.com/discochess/draughts/benchmark/analysis"
	"github.com/discochess/draughts/benchmark/arena"
)

// MarkdownReport generates strategy benchmark reports in Markdown format.
type MarkdownReport struct {
	w io.Writer
}

// NewMarkdownReport creates a new Markdown report writer.
func NewMarkdownReport(w io.Writer) *MarkdownReport {
	return &MarkdownReport{w: w}
}

// WriteHeader writes the report header.
func (r *MarkdownReport) WriteHeader(title string) {
	fmt.Fprintf(r.w, "# %s\n\n", title)
	fmt.Fprintf(r.w, "Generated: %s\n\n", time.Now().Format(time.RFC3339))
}

// WriteMethodology writes the methodology section.
func (r *MarkdownReport) WriteMethodology(positions, maxPly int, timeLimit time.Duration) {
	fmt.Fprintln(r.w, "## Methodology")
	fmt.Fprintln(r.w)
	fmt.Fprintf(r.w, "- **Positions searched:** %d (sampled from self-play)\n", positions)
	fmt.Fprintf(r.w, "- **Depth budget:** %d plies, time budget %s per search\n", maxPly, timeLimit)
	fmt.Fprintln(r.w, "- **Metric:** nodes expanded per search (lower is better)")
	fmt.Fprintln(r.w, "- **Statistical test:** Mann-Whitney U (non-parametric)")
	fmt.Fprintln(r.w)
}

// WriteSummaryTable writes one row of descriptive statistics per strategy.
func (r *MarkdownReport) WriteSummaryTable(strategies []string, samples map[string][]arena.Sample) {
	fmt.Fprintln(r.w, "## Summary")
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, "| Strategy | Mean Nodes | Median | Std Dev | Mean Prunes | Mean Time |")
	fmt.Fprintln(r.w, "|----------|------------|--------|---------|-------------|-----------|")

	for _, name := range strategies {
		ss := samples[name]
		nodes := analysis.Describe(arena.NodesExpanded(ss))
		var prunes, elapsed float64
		for _, s := range ss {
			prunes += float64(s.Prunes)
			elapsed += s.Elapsed.Seconds()
		}
		n := float64(len(ss))
		if n == 0 {
			n = 1
		}
		fmt.Fprintf(r.w, "| %s | %.1f | %.0f | %.1f | %.1f | %.0fms |\n",
			name, nodes.Mean, nodes.Median, nodes.StdDev, prunes/n, elapsed/n*1000)
	}
	fmt.Fprintln(r.w)
}

// WriteComparison writes a two-strategy comparison with the test verdict.
func (r *MarkdownReport) WriteComparison(name1, name2 string, sample1, sample2 []float64) {
	s1 := analysis.Describe(sample1)
	s2 := analysis.Describe(sample2)
	mw := analysis.MannWhitneyU(sample1, sample2)

	fmt.Fprintf(r.w, "## %s vs %s\n\n", name1, name2)
	fmt.Fprintln(r.w, "| Metric | "+name1+" | "+name2+" |")
	fmt.Fprintln(r.w, "|--------|------|------|")
	fmt.Fprintf(r.w, "| Mean | %.2f | %.2f |\n", s1.Mean, s2.Mean)
	fmt.Fprintf(r.w, "| Median | %.2f | %.2f |\n", s1.Median, s2.Median)
	fmt.Fprintf(r.w, "| Std Dev | %.2f | %.2f |\n", s1.StdDev, s2.StdDev)
	fmt.Fprintf(r.w, "| Min | %.0f | %.0f |\n", s1.Min, s2.Min)
	fmt.Fprintf(r.w, "| Max | %.0f | %.0f |\n", s1.Max, s2.Max)
	fmt.Fprintln(r.w)

	fmt.Fprintf(r.w, "Mann-Whitney U = %.1f, p = %.4f", mw.U, mw.PValue)
	if mw.Significant {
		fmt.Fprintln(r.w, " — difference is statistically significant.")
	} else {
		fmt.Fprintln(r.w, " — difference is not statistically significant.")
	}
	fmt.Fprintln(r.w)
}
