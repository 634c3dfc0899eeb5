// Package report renders the outcome of a best-match search.
package report

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"fjacquet/find-overlap/internal/logging"
	"fjacquet/find-overlap/internal/models"

	"github.com/charmbracelet/glamour"
)

// Report formats
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
	FormatXML      = "xml"
)

// StyleRaw disables terminal rendering of markdown reports.
const StyleRaw = "raw"

// ReportGenerator renders match results in various formats.
type ReportGenerator struct {
	logger logging.Logger
	style  string
}

// NewReportGenerator creates a generator. style is a glamour style name
// ("notty", "dark", "light", "ascii") or StyleRaw.
func NewReportGenerator(logger logging.Logger, style string) *ReportGenerator {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &ReportGenerator{
		logger: logger.WithField("component", "ReportGenerator"),
		style:  style,
	}
}

// GenerateReport renders result in the given format.
func (g *ReportGenerator) GenerateReport(result *models.MatchResult, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatText, "":
		return g.generateTextReport(result), nil
	case FormatJSON:
		return g.generateJSONReport(result)
	case FormatMarkdown:
		return g.generateMarkdownReport(result)
	case FormatXML:
		return g.generateXMLReport(result)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

// Summary is the one-line verdict of a search.
func Summary(result *models.MatchResult) string {
	switch {
	case result.NoCandidates:
		return fmt.Sprintf("No files found for pattern: %s", result.Pattern)
	case result.HasMatch():
		return fmt.Sprintf("Best match: %s with %.2f%% overlap", result.Best.Path, result.Best.Score)
	default:
		return "No matches found."
	}
}

func (g *ReportGenerator) generateTextReport(result *models.MatchResult) []byte {
	var b strings.Builder
	for _, skipped := range result.Skipped {
		fmt.Fprintf(&b, "Skipped %s: %s\n", skipped.Path, skipped.Reason)
	}
	b.WriteString(Summary(result))
	b.WriteByte('\n')
	return []byte(b.String())
}

func (g *ReportGenerator) generateJSONReport(result *models.MatchResult) ([]byte, error) {
	jsonReport, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return append(jsonReport, '\n'), nil
}

func (g *ReportGenerator) generateXMLReport(result *models.MatchResult) ([]byte, error) {
	xmlReport, err := xml.MarshalIndent(result, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal XML report")
		return nil, fmt.Errorf("failed to marshal XML report: %w", err)
	}
	return []byte(xml.Header + string(xmlReport) + "\n"), nil
}

func (g *ReportGenerator) generateMarkdownReport(result *models.MatchResult) ([]byte, error) {
	md := Markdown(result)
	if g.style == "" || g.style == StyleRaw {
		return []byte(md), nil
	}

	rendered, err := glamour.Render(md, g.style)
	if err != nil {
		g.logger.WithError(err).Error("Failed to render markdown report")
		return nil, fmt.Errorf("failed to render markdown report: %w", err)
	}
	return []byte(rendered), nil
}

// Markdown returns the unrendered markdown report.
func Markdown(result *models.MatchResult) string {
	var b strings.Builder
	b.WriteString("# Overlap report\n\n")
	fmt.Fprintf(&b, "- Input: `%s` (%d transactions)\n", result.Input, result.InputTransactions)
	if result.Pattern != "" {
		fmt.Fprintf(&b, "- Pattern: `%s`\n", result.Pattern)
	}
	b.WriteString("\n")

	if len(result.Comparisons) > 0 {
		b.WriteString("| Candidate | Transactions | Overlap |\n")
		b.WriteString("|---|---:|---:|\n")
		for _, c := range result.Comparisons {
			fmt.Fprintf(&b, "| %s | %d | %.2f%% |\n", escapeCell(c.Path), c.Transactions, c.Score)
		}
		b.WriteString("\n")
	}

	if len(result.Skipped) > 0 {
		b.WriteString("## Skipped\n\n")
		for _, s := range result.Skipped {
			fmt.Fprintf(&b, "- `%s`: %s\n", s.Path, s.Reason)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "**%s**\n", Summary(result))
	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// ProgressWriter prints one line per candidate as the search advances.
type ProgressWriter struct {
	w io.Writer
}

// NewProgressWriter creates a ProgressWriter writing to w.
func NewProgressWriter(w io.Writer) *ProgressWriter {
	return &ProgressWriter{w: w}
}

// Comparing announces that path is being evaluated.
func (p *ProgressWriter) Comparing(path string) {
	_, _ = fmt.Fprintf(p.w, "Comparing with %s...\n", path)
}

// Scored prints the overlap of path.
func (p *ProgressWriter) Scored(path string, score float64) {
	_, _ = fmt.Fprintf(p.w, "Match percentage with %s: %.2f%%\n", path, score)
}
