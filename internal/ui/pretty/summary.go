package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/gohipify/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "12 replacements (8 errors, 4 warnings) in 3 files, 2 skipped".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.ReplacementsTotal == 0 {
		msg := s.Success.Render("No CUDA constructs found") +
			s.Dim.Render(fmt.Sprintf(" (%d files processed)", stats.FilesProcessed))
		return msg + "\n"
	}

	var parts []string

	// Total replacements
	replacementWord := "replacements"
	if stats.ReplacementsTotal == 1 {
		replacementWord = "replacement"
	}

	// Build severity breakdown
	var severityParts []string
	if errors := stats.DiagnosticsBySeverity["error"]; errors > 0 {
		severityParts = append(severityParts, s.Error.Render(fmt.Sprintf("%d errors", errors)))
	}
	if warnings := stats.DiagnosticsBySeverity["warning"]; warnings > 0 {
		severityParts = append(severityParts, s.Warning.Render(fmt.Sprintf("%d warnings", warnings)))
	}
	if infos := stats.DiagnosticsBySeverity["info"]; infos > 0 {
		severityParts = append(severityParts, s.Info.Render(fmt.Sprintf("%d info", infos)))
	}

	// Main count with severity breakdown
	if len(severityParts) > 0 {
		parts = append(parts, fmt.Sprintf("%d %s (%s)", stats.ReplacementsTotal, replacementWord, strings.Join(severityParts, ", ")))
	} else {
		parts = append(parts, fmt.Sprintf("%d %s", stats.ReplacementsTotal, replacementWord))
	}

	// Files with replacements
	fileWord := wordFiles
	if stats.FilesWithReplacements == 1 {
		fileWord = wordFile
	}
	parts = append(parts, fmt.Sprintf("in %d %s", stats.FilesWithReplacements, fileWord))

	// Files written
	if stats.FilesWritten > 0 {
		writtenFileWord := wordFiles
		if stats.FilesWritten == 1 {
			writtenFileWord = wordFile
		}
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d %s written", stats.FilesWritten, writtenFileWord)))
	}

	// Skipped edits signal conflicts that need a human.
	if stats.ReplacementsSkipped > 0 {
		parts = append(parts, s.Warning.Render(fmt.Sprintf("%d skipped", stats.ReplacementsSkipped)))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	// Files
	builder.WriteString("  Files processed:   " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed)) + "\n")

	if stats.FilesChanged > 0 {
		builder.WriteString("  Files changed:     " +
			s.SummaryValue.Render(strconv.Itoa(stats.FilesChanged)) + "\n")
	}

	if stats.FilesWritten > 0 {
		builder.WriteString("  Files written:     " +
			s.Success.Render(strconv.Itoa(stats.FilesWritten)) + "\n")
	}

	builder.WriteString("\n")

	// Replacements by severity
	builder.WriteString("  Replacements:      " +
		s.SummaryValue.Render(strconv.Itoa(stats.ReplacementsTotal)) + "\n")

	if errors := stats.DiagnosticsBySeverity["error"]; errors > 0 {
		builder.WriteString("    Errors:          " +
			s.Error.Render(strconv.Itoa(errors)) + "\n")
	}
	if warnings := stats.DiagnosticsBySeverity["warning"]; warnings > 0 {
		builder.WriteString("    Warnings:        " +
			s.Warning.Render(strconv.Itoa(warnings)) + "\n")
	}
	if infos := stats.DiagnosticsBySeverity["info"]; infos > 0 {
		builder.WriteString("    Info:            " +
			s.Info.Render(strconv.Itoa(infos)) + "\n")
	}

	if stats.ReplacementsSkipped > 0 {
		builder.WriteString("    Skipped edits:   " +
			s.Warning.Render(strconv.Itoa(stats.ReplacementsSkipped)) + "\n")
	}

	builder.WriteString("\n")

	// Overall status
	switch {
	case stats.DiagnosticsBySeverity["error"] > 0:
		builder.WriteString(s.Failure.Render("Translation finished with errors"))
	case stats.ReplacementsSkipped > 0:
		builder.WriteString(s.Warning.Render("Translation finished; some edits need manual review"))
	default:
		builder.WriteString(s.Success.Render("Translation complete"))
	}
	builder.WriteString("\n")

	return builder.String()
}
