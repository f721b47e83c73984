package reporter

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yaklabco/gohipify/internal/ui/pretty"
	"github.com/yaklabco/gohipify/pkg/analysis"
	"github.com/yaklabco/gohipify/pkg/config"
)

// Table layout constants for summary output.
// Both tables use the same width for visual consistency.
const (
	tableWidth           = 90 // Width of table separators (same for both tables).
	matcherColWidth      = 30 // Width of the matcher name column.
	fileColWidth         = 60 // Width of the file path column (wider for relative paths).
	numColWidth          = 7  // Width of numeric columns.
	warnColWidth         = 8  // Width of warnings column.
	rewriteColWidth      = 8  // Width of rewrites column.
	maxMatcherNameLength = 28 // Maximum characters for matcher name before truncation.
	maxFilePathLength    = 58 // Maximum characters for file path before truncation.
	totalPartsCapacity   = 2  // Expected number of parts in total summary line.
)

// padRight pads a string to the given width with spaces on the right.
// This must be called BEFORE applying ANSI styles.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// padLeft pads a string to the given width with spaces on the left.
// This must be called BEFORE applying ANSI styles.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// SummaryRenderer formats results as aggregated summary tables.
type SummaryRenderer struct {
	opts   Options
	styles *pretty.Styles
	out    io.Writer
}

// NewSummaryRenderer creates a new summary renderer.
func NewSummaryRenderer(opts Options) *SummaryRenderer {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &SummaryRenderer{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		out:    opts.Writer,
	}
}

// Render implements Renderer.
func (r *SummaryRenderer) Render(_ context.Context, report *analysis.Report) error {
	if report.Totals.Replacements == 0 {
		fmt.Fprintln(r.out, r.styles.Success.Render("No CUDA constructs found"))
		return nil
	}

	// Determine order
	if r.opts.SummaryOrder == config.SummaryOrderFiles {
		r.renderFileTable(report.ByFile)
		fmt.Fprintln(r.out)
		r.renderMatcherTable(report.ByMatcher)
	} else {
		r.renderMatcherTable(report.ByMatcher)
		fmt.Fprintln(r.out)
		r.renderFileTable(report.ByFile)
	}

	fmt.Fprintln(r.out)
	r.renderTotals(report.Totals)

	return nil
}

func (r *SummaryRenderer) renderMatcherTable(matchers []analysis.MatcherAnalysis) {
	if len(matchers) == 0 {
		return
	}

	fmt.Fprintln(r.out, r.styles.Bold.Render("Matchers Summary"))
	fmt.Fprintln(r.out, r.styles.TableSeparator.Render(strings.Repeat("─", tableWidth)))

	// Header - pad first, then style
	fmt.Fprintf(r.out, "%s %s %s %s %s\n",
		r.styles.TableHeader.Render(padRight("Matcher", matcherColWidth)),
		r.styles.TableHeader.Render(padLeft("Count", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Errors", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Warnings", warnColWidth)),
		r.styles.TableHeader.Render(padLeft("Rewrites", rewriteColWidth)),
	)
	fmt.Fprintln(r.out, r.styles.TableSeparator.Render(strings.Repeat("─", tableWidth)))

	// Rows
	for _, matcher := range matchers {
		matcherName := matcher.MatcherName
		if matcherName == "" {
			matcherName = matcher.MatcherID
		}
		if len(matcherName) > maxMatcherNameLength {
			matcherName = matcherName[:maxMatcherNameLength] + "…"
		}

		// Pad first, then style
		paddedName := padRight(matcherName, matcherColWidth)
		var styledName string
		switch {
		case matcher.Errors > 0:
			styledName = r.styles.TableErrorRow.Render(paddedName)
		case matcher.Warnings > 0:
			styledName = r.styles.TableWarnRow.Render(paddedName)
		default:
			styledName = paddedName
		}

		rewrites := padLeft("", rewriteColWidth)
		if matcher.Rewrites {
			rewrites = r.styles.Success.Render(padLeft("✓", rewriteColWidth))
		}

		fmt.Fprintf(r.out, "%s %s %s %s %s\n",
			styledName,
			padLeft(strconv.Itoa(matcher.Replacements), numColWidth),
			padLeft(strconv.Itoa(matcher.Errors), numColWidth),
			padLeft(strconv.Itoa(matcher.Warnings), warnColWidth),
			rewrites,
		)
	}
}

func (r *SummaryRenderer) renderFileTable(files []analysis.FileAnalysis) {
	if len(files) == 0 {
		return
	}

	fmt.Fprintln(r.out, r.styles.Bold.Render("Files Summary"))
	fmt.Fprintln(r.out, r.styles.TableSeparator.Render(strings.Repeat("─", tableWidth)))

	// Header - pad first, then style
	fmt.Fprintf(r.out, "%s %s %s %s\n",
		r.styles.TableHeader.Render(padRight("File", fileColWidth)),
		r.styles.TableHeader.Render(padLeft("Count", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Errors", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Warnings", warnColWidth)),
	)
	fmt.Fprintln(r.out, r.styles.TableSeparator.Render(strings.Repeat("─", tableWidth)))

	// Rows
	for _, file := range files {
		path := file.Path
		if len(path) > maxFilePathLength {
			path = "…" + path[len(path)-(maxFilePathLength-1):]
		}

		// Pad first, then style
		paddedPath := padRight(path, fileColWidth)
		var styledPath string
		switch {
		case file.Errors > 0:
			styledPath = r.styles.TableErrorRow.Render(paddedPath)
		case file.Warnings > 0:
			styledPath = r.styles.TableWarnRow.Render(paddedPath)
		default:
			styledPath = paddedPath
		}

		fmt.Fprintf(r.out, "%s %s %s %s\n",
			styledPath,
			padLeft(strconv.Itoa(file.Replacements), numColWidth),
			padLeft(strconv.Itoa(file.Errors), numColWidth),
			padLeft(strconv.Itoa(file.Warnings), warnColWidth),
		)
	}
}

func (r *SummaryRenderer) renderTotals(totals analysis.Totals) {
	parts := make([]string, 0, totalPartsCapacity)

	// Total replacements
	replacementWord := "replacements"
	if totals.Replacements == 1 {
		replacementWord = "replacement"
	}
	parts = append(parts, fmt.Sprintf("%d %s", totals.Replacements, replacementWord))

	// Severity breakdown
	var severityParts []string
	if totals.Errors > 0 {
		severityParts = append(severityParts, r.styles.Error.Render(fmt.Sprintf("%d errors", totals.Errors)))
	}
	if totals.Warnings > 0 {
		severityParts = append(severityParts, r.styles.Warning.Render(fmt.Sprintf("%d warnings", totals.Warnings)))
	}
	if len(severityParts) > 0 {
		parts[0] = fmt.Sprintf("%d %s (%s)", totals.Replacements, replacementWord, strings.Join(severityParts, ", "))
	}

	// Files with replacements
	fileWord := "files"
	if totals.FilesWithReplacements == 1 {
		fileWord = "file"
	}
	parts = append(parts, fmt.Sprintf("in %d %s", totals.FilesWithReplacements, fileWord))

	fmt.Fprintln(r.out, r.styles.Bold.Render("Total: ")+strings.Join(parts, " "))
}
