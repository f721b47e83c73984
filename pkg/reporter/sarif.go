package reporter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/yaklabco/gohipify/pkg/config"
	"github.com/yaklabco/gohipify/pkg/runner"
	"github.com/yaklabco/gohipify/pkg/translate"
)

// SARIF version used by this reporter.
const sarifVersion = "2.1.0"

// SARIF schema URI.
const sarifSchemaURI = "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json"

// SARIFOutput represents the root SARIF document.
type SARIFOutput struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []SARIFRun `json:"runs"`
}

// SARIFRun represents a single analysis run.
type SARIFRun struct {
	Tool    SARIFTool     `json:"tool"`
	Results []SARIFResult `json:"results"`
}

// SARIFTool describes the analysis tool.
type SARIFTool struct {
	Driver SARIFDriver `json:"driver"`
}

// SARIFDriver contains tool metadata and rules.
type SARIFDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version"`
	InformationURI string      `json:"informationUri"`
	Rules          []SARIFRule `json:"rules"`
}

// SARIFRule describes a reporting rule (one per matcher).
type SARIFRule struct {
	ID               string               `json:"id"`
	Name             string               `json:"name,omitempty"`
	ShortDescription SARIFMultiformatText `json:"shortDescription,omitempty"`
	DefaultConfig    *SARIFRuleConfig     `json:"defaultConfiguration,omitempty"`
	Properties       map[string]any       `json:"properties,omitempty"`
}

// SARIFMultiformatText contains text in multiple formats.
type SARIFMultiformatText struct {
	Text string `json:"text"`
}

// SARIFRuleConfig contains rule configuration.
type SARIFRuleConfig struct {
	Level string `json:"level"`
}

// SARIFResult represents a single diagnostic result.
type SARIFResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   SARIFMessage    `json:"message"`
	Locations []SARIFLocation `json:"locations"`
	Fixes     []SARIFFix      `json:"fixes,omitempty"`
}

// SARIFMessage contains the result message.
type SARIFMessage struct {
	Text string `json:"text"`
}

// SARIFLocation describes a code location.
type SARIFLocation struct {
	PhysicalLocation SARIFPhysicalLocation `json:"physicalLocation"`
}

// SARIFPhysicalLocation contains file path and region.
type SARIFPhysicalLocation struct {
	ArtifactLocation SARIFArtifactLocation `json:"artifactLocation"`
	Region           SARIFRegion           `json:"region"`
}

// SARIFArtifactLocation contains the file URI.
type SARIFArtifactLocation struct {
	URI string `json:"uri"`
}

// SARIFRegion describes the affected text region.
type SARIFRegion struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn,omitempty"`
	EndLine     int `json:"endLine,omitempty"`
	EndColumn   int `json:"endColumn,omitempty"`
}

// SARIFFix represents a proposed fix.
type SARIFFix struct {
	Description     SARIFMessage          `json:"description"`
	ArtifactChanges []SARIFArtifactChange `json:"artifactChanges"`
}

// SARIFArtifactChange describes changes to a file.
type SARIFArtifactChange struct {
	ArtifactLocation SARIFArtifactLocation `json:"artifactLocation"`
	Replacements     []SARIFReplacement    `json:"replacements"`
}

// SARIFReplacement describes a text replacement.
type SARIFReplacement struct {
	DeletedRegion   SARIFRegion           `json:"deletedRegion"`
	InsertedContent *SARIFInsertedContent `json:"insertedContent,omitempty"`
}

// SARIFInsertedContent contains the replacement text.
type SARIFInsertedContent struct {
	Text string `json:"text"`
}

// SARIFReporter renders results as a single-run SARIF document. One
// reportingDescriptor is emitted per matcher that fired; every
// replacement diagnostic becomes a result, carrying its rewrite as a
// SARIF fix.
type SARIFReporter struct {
	opts Options
	out  io.Writer
}

// NewSARIFReporter creates a new SARIF reporter.
func NewSARIFReporter(opts Options) *SARIFReporter {
	return &SARIFReporter{
		opts: opts,
		out:  opts.Writer,
	}
}

// Report implements Reporter.
func (r *SARIFReporter) Report(_ context.Context, result *runner.Result) (int, error) {
	run := r.buildRun(result)

	encoder := json.NewEncoder(r.out)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(&SARIFOutput{
		Schema:  sarifSchemaURI,
		Version: sarifVersion,
		Runs:    []SARIFRun{run},
	}); err != nil {
		return 0, fmt.Errorf("encode SARIF: %w", err)
	}

	return len(run.Results), nil
}

func (r *SARIFReporter) buildRun(result *runner.Result) SARIFRun {
	run := SARIFRun{
		Tool: SARIFTool{
			Driver: SARIFDriver{
				Name:           "gohipify",
				Version:        "0.1.0",
				InformationURI: "https://github.com/yaklabco/gohipify",
				Rules:          make([]SARIFRule, 0),
			},
		},
		Results: make([]SARIFResult, 0),
	}
	if result == nil {
		return run
	}

	rulesSeen := make(map[string]bool)
	for _, file := range result.Files {
		if file.Result == nil || file.Result.FileResult == nil {
			continue
		}
		for i := range file.Result.Diagnostics {
			diag := &file.Result.Diagnostics[i]
			if !rulesSeen[diag.MatcherID] {
				rulesSeen[diag.MatcherID] = true
				run.Tool.Driver.Rules = append(run.Tool.Driver.Rules, SARIFRule{
					ID:               diag.MatcherID,
					Name:             diag.MatcherName,
					ShortDescription: SARIFMultiformatText{Text: diag.Message},
					DefaultConfig:    &SARIFRuleConfig{Level: sarifLevel(diag.Severity)},
				})
			}
			run.Results = append(run.Results, sarifResultFor(diag))
		}
	}
	return run
}

// sarifResultFor converts one diagnostic into a SARIF result.
func sarifResultFor(diag *translate.Diagnostic) SARIFResult {
	res := SARIFResult{
		RuleID:  diag.MatcherID,
		Level:   sarifLevel(diag.Severity),
		Message: SARIFMessage{Text: diag.Message},
		Locations: []SARIFLocation{{
			PhysicalLocation: SARIFPhysicalLocation{
				ArtifactLocation: SARIFArtifactLocation{URI: diag.FilePath},
				Region: SARIFRegion{
					StartLine:   diag.StartLine,
					StartColumn: diag.StartColumn,
					EndLine:     diag.EndLine,
					EndColumn:   diag.EndColumn,
				},
			},
		}},
	}

	// Skip-style diagnostics carry no rewrite and surface as plain
	// results without fixes.
	if len(diag.Edits) == 0 || diag.NewText == "" {
		return res
	}

	fix := SARIFFix{
		Description:     SARIFMessage{Text: fmt.Sprintf("Replace with %s", diag.NewText)},
		ArtifactChanges: make([]SARIFArtifactChange, 0, len(diag.Edits)),
	}
	for _, textEdit := range diag.Edits {
		fix.ArtifactChanges = append(fix.ArtifactChanges, SARIFArtifactChange{
			ArtifactLocation: SARIFArtifactLocation{URI: diag.FilePath},
			Replacements: []SARIFReplacement{{
				// Line-granular: the edit's byte offsets have no SARIF
				// region equivalent without a char-offset translation.
				DeletedRegion:   SARIFRegion{StartLine: diag.StartLine},
				InsertedContent: &SARIFInsertedContent{Text: textEdit.NewText},
			}},
		})
	}
	res.Fixes = append(res.Fixes, fix)
	return res
}

// sarifLevel maps a diagnostic severity onto the SARIF level vocabulary.
func sarifLevel(severity config.Severity) string {
	switch severity {
	case config.SeverityError:
		return "error"
	case config.SeverityInfo:
		return "note"
	default:
		return "warning"
	}
}
