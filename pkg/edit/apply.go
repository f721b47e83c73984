package edit

import "bytes"

// ApplyResult reports what ApplyAll did with a batch of edits.
type ApplyResult struct {
	// Output is the rewritten buffer with every accepted edit applied.
	Output []byte

	// Applied holds the edits that made it into Output, in buffer order.
	Applied []TextEdit

	// Skipped holds the edits that could not be applied, each with a
	// reason. A non-empty Skipped list means the rewrite was partial.
	Skipped []SkippedEdit
}

// Clean reports whether every queued edit was applied.
func (r *ApplyResult) Clean() bool {
	return len(r.Skipped) == 0
}

// Changed reports whether any edit was applied.
func (r *ApplyResult) Changed() bool {
	return len(r.Applied) > 0
}

// ApplyAll applies a batch of edits to content best-effort. The batch is
// validated, sorted, deduplicated, and conflict-filtered first; edits
// that survive are applied in one pass over the buffer, the rest land in
// Skipped. The operation never fails as a whole: a bad span costs only
// that one edit.
func ApplyAll(content []byte, edits []TextEdit) *ApplyResult {
	accepted, skipped := PrepareEdits(edits, len(content))

	result := &ApplyResult{
		Applied: accepted,
		Skipped: skipped,
	}

	if len(accepted) == 0 {
		result.Output = content
		return result
	}

	// Size the output buffer exactly.
	delta := 0
	for _, e := range accepted {
		delta += len(e.NewText) - (e.EndOffset - e.StartOffset)
	}

	var out bytes.Buffer
	out.Grow(len(content) + delta)

	cursor := 0
	for _, e := range accepted {
		out.Write(content[cursor:e.StartOffset])
		out.WriteString(e.NewText)
		cursor = e.EndOffset
	}
	out.Write(content[cursor:])

	result.Output = out.Bytes()
	return result
}
