package translate

import (
	"context"
	"fmt"

	"github.com/yaklabco/gohipify/pkg/config"
	"github.com/yaklabco/gohipify/pkg/cuast"
	"github.com/yaklabco/gohipify/pkg/edit"
	"github.com/yaklabco/gohipify/pkg/rename"
)

// FileResult contains the results of translating a single file.
type FileResult struct {
	// Snapshots holds the parsed file per compilation view.
	Snapshots map[cuast.View]*cuast.FileSnapshot

	// Diagnostics contains all proposed replacements, deduplicated
	// across views.
	Diagnostics []Diagnostic

	// Edits contains validated, sorted, deduplicated edits ready to apply.
	Edits []edit.TextEdit

	// SkippedEdits contains edits that were dropped, with reasons.
	// When multiple edits overlap, earlier edits (by start position) take
	// precedence; later ones are skipped, never merged.
	SkippedEdits []edit.SkippedEdit

	// EditConflicts is true if any edits were skipped.
	EditConflicts bool

	// MatcherErrors contains any errors from matcher execution, keyed by
	// matcher ID.
	MatcherErrors map[string]error
}

// HasReplacements returns true if any replacements were proposed.
func (fr *FileResult) HasReplacements() bool {
	return len(fr.Diagnostics) > 0
}

// HasEdits returns true if any edits are ready to apply.
func (fr *FileResult) HasEdits() bool {
	return len(fr.Edits) > 0
}

// ReplacementCount returns the total number of diagnostics.
func (fr *FileResult) ReplacementCount() int {
	return len(fr.Diagnostics)
}

// Clean returns true if no proposed edit was skipped.
func (fr *FileResult) Clean() bool {
	return len(fr.SkippedEdits) == 0
}

// Engine coordinates parsing and matcher execution for translation.
//
// Each file is processed twice, once per compilation view, so that code
// behind __CUDA_ARCH__ conditionals is seen from both sides. Edits from
// the two passes land in one shared set; passes that see the same text
// propose byte-identical edits, which collapse in deduplication.
type Engine struct {
	// Parser parses CUDA files into FileSnapshots.
	Parser Parser

	// Registry holds all available matchers.
	Registry *Registry

	// Table is the identifier rename table.
	Table *rename.Table
}

// NewEngine creates a new Engine with the given parser, registry, and table.
func NewEngine(parser Parser, registry *Registry, table *rename.Table) *Engine {
	return &Engine{
		Parser:   parser,
		Registry: registry,
		Table:    table,
	}
}

// TranslateFile parses and translates a single file under all views.
func (e *Engine) TranslateFile(
	ctx context.Context,
	path string,
	content []byte,
	cfg *config.Config,
) (*FileResult, error) {
	result := &FileResult{
		Snapshots:     make(map[cuast.View]*cuast.FileSnapshot),
		MatcherErrors: make(map[string]error),
	}

	// Resolve which matchers to run. The set is the same for every view.
	resolved := ResolveMatchers(e.Registry, cfg)

	// Collect all edits and diagnostics across views.
	var allEdits []edit.TextEdit
	var allDiags []Diagnostic

	for _, view := range cuast.AllViews() {
		// Check for cancellation.
		select {
		case <-ctx.Done():
			return result, fmt.Errorf("translation cancelled: %w", ctx.Err())
		default:
		}

		// Parse the file under this view.
		snapshot, err := e.Parser.Parse(ctx, path, content, view)
		if err != nil {
			return nil, fmt.Errorf("parse error: %w", err)
		}
		result.Snapshots[view] = snapshot

		// Run each matcher.
		for _, rm := range resolved {
			select {
			case <-ctx.Done():
				return result, fmt.Errorf("translation cancelled: %w", ctx.Err())
			default:
			}

			// Create matcher context.
			matchCtx := NewMatchContext(ctx, snapshot, e.Table, cfg, rm.Config)
			matchCtx.Registry = e.Registry

			// Execute matcher.
			diags, err := rm.Matcher.Apply(matchCtx)
			if err != nil {
				result.MatcherErrors[rm.Matcher.ID()] = err
				continue
			}

			// Process diagnostics.
			for diagIdx := range diags {
				// Apply resolved severity.
				diags[diagIdx].Severity = rm.Severity

				// Ensure file path is set.
				if diags[diagIdx].FilePath == "" {
					diags[diagIdx].FilePath = path
				}

				// Ensure matcher name is set for human-readable output.
				if diags[diagIdx].MatcherName == "" {
					diags[diagIdx].MatcherName = rm.Matcher.Name()
				}
			}

			// The builder is the authoritative edit channel; diagnostics
			// carry copies for reporting only.
			allEdits = append(allEdits, matchCtx.Builder.Edits...)
			allDiags = append(allDiags, diags...)
		}
	}

	// Views that see the same text report the same replacement twice;
	// keep one.
	result.Diagnostics = dedupeDiagnostics(allDiags)

	// Validate, sort, deduplicate, and filter conflicting edits.
	if len(allEdits) > 0 {
		accepted, skipped := edit.PrepareEdits(allEdits, len(content))
		result.Edits = accepted
		result.SkippedEdits = skipped
		result.EditConflicts = len(skipped) > 0
	}

	return result, nil
}

// diagKey identifies a diagnostic for cross-view deduplication.
type diagKey struct {
	matcherID string
	filePath  string
	startLine int
	startCol  int
	endLine   int
	endCol    int
	message   string
	newText   string
}

// dedupeDiagnostics drops diagnostics that duplicate an earlier one.
// Order is preserved.
func dedupeDiagnostics(diags []Diagnostic) []Diagnostic {
	if len(diags) < 2 {
		return diags
	}

	seen := make(map[diagKey]bool, len(diags))
	out := make([]Diagnostic, 0, len(diags))
	for _, d := range diags {
		key := diagKey{
			matcherID: d.MatcherID,
			filePath:  d.FilePath,
			startLine: d.StartLine,
			startCol:  d.StartColumn,
			endLine:   d.EndLine,
			endCol:    d.EndColumn,
			message:   d.Message,
			newText:   d.NewText,
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, d)
	}
	return out
}
