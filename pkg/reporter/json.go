package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/gohipify/pkg/runner"
)

// Severity string constants.
const (
	severityWarning = "warning"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path        string           `json:"path"`
	OutputPath  string           `json:"outputPath,omitempty"`
	Diagnostics []JSONDiagnostic `json:"diagnostics"`
	Written     bool             `json:"written,omitempty"`
	Error       string           `json:"error,omitempty"`
}

// JSONDiagnostic represents a single replacement diagnostic.
type JSONDiagnostic struct {
	MatcherID   string     `json:"matcherId"`
	MatcherName string     `json:"matcherName"`
	Severity    string     `json:"severity"`
	Message     string     `json:"message"`
	StartLine   int        `json:"startLine"`
	StartColumn int        `json:"startColumn"`
	EndLine     int        `json:"endLine"`
	EndColumn   int        `json:"endColumn"`
	OldText     string     `json:"oldText,omitempty"`
	NewText     string     `json:"newText,omitempty"`
	Rewritten   bool       `json:"rewritten"`
	Edits       []JSONEdit `json:"edits,omitempty"`
}

// JSONEdit represents an applied text edit.
type JSONEdit struct {
	StartOffset int    `json:"startOffset"`
	EndOffset   int    `json:"endOffset"`
	NewText     string `json:"newText"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesProcessed        int            `json:"filesProcessed"`
	FilesWithReplacements int            `json:"filesWithReplacements"`
	FilesWritten          int            `json:"filesWritten"`
	FilesErrored          int            `json:"filesErrored"`
	TotalReplacements     int            `json:"totalReplacements"`
	BySeverity            map[string]int `json:"bySeverity"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.TotalReplacements, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: "1.0.0",
		Files:   make([]JSONFileResult, 0),
		Summary: JSONSummary{
			BySeverity: make(map[string]int),
		},
	}

	if result == nil {
		return output
	}

	// Pre-allocate if we have files
	if len(result.Files) > 0 {
		output.Files = make([]JSONFileResult, 0, len(result.Files))
	}

	for _, file := range result.Files {
		fileResult := JSONFileResult{
			Path:        file.Path,
			Diagnostics: make([]JSONDiagnostic, 0),
		}

		if file.Error != nil {
			fileResult.Error = file.Error.Error()
			output.Summary.FilesErrored++
		}

		if file.Result != nil {
			fileResult.Written = file.Result.Written
			if file.Result.Written {
				fileResult.OutputPath = file.Result.OutputPath
			}

			if file.Result.FileResult != nil {
				for _, diag := range file.Result.Diagnostics {
					jsonDiag := JSONDiagnostic{
						MatcherID:   diag.MatcherID,
						MatcherName: diag.MatcherName,
						Severity:    string(diag.Severity),
						Message:     diag.Message,
						StartLine:   diag.StartLine,
						StartColumn: diag.StartColumn,
						EndLine:     diag.EndLine,
						EndColumn:   diag.EndColumn,
						OldText:     diag.OldText,
						NewText:     diag.NewText,
						Rewritten:   len(diag.Edits) > 0,
					}

					for _, textEdit := range diag.Edits {
						jsonDiag.Edits = append(jsonDiag.Edits, JSONEdit{
							StartOffset: textEdit.StartOffset,
							EndOffset:   textEdit.EndOffset,
							NewText:     textEdit.NewText,
						})
					}

					fileResult.Diagnostics = append(fileResult.Diagnostics, jsonDiag)
					output.Summary.TotalReplacements++

					severity := string(diag.Severity)
					if severity == "" {
						severity = severityWarning
					}
					output.Summary.BySeverity[severity]++
				}
			}
		}

		if len(fileResult.Diagnostics) > 0 {
			output.Summary.FilesWithReplacements++
		}
		if fileResult.Written {
			output.Summary.FilesWritten++
		}

		output.Files = append(output.Files, fileResult)
		output.Summary.FilesProcessed++
	}

	return output
}
