// Package edit provides text edit types and application logic for
// source-to-source rewriting. Matchers emit TextEdits against the original
// file content; the package validates, orders, deduplicates, and applies
// them in one pass, skipping edits that conflict so a bad span never
// corrupts the rest of the output.
package edit

// TextEdit represents a single text replacement in a file.
type TextEdit struct {
	// StartOffset is the byte index where the edit begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the edit ends (exclusive).
	EndOffset int

	// NewText is the replacement text.
	NewText string
}

// EditBuilder accumulates text edits for a file. Both compilation views of
// a source file feed the same builder; identical edits produced twice
// collapse when the builder's edits are applied.
type EditBuilder struct {
	Edits []TextEdit
}

// NewEditBuilder creates a new EditBuilder.
func NewEditBuilder() *EditBuilder {
	return &EditBuilder{
		Edits: make([]TextEdit, 0),
	}
}

// ReplaceRange adds an edit that replaces bytes [start, end) with newText.
func (b *EditBuilder) ReplaceRange(start, end int, newText string) {
	b.Edits = append(b.Edits, TextEdit{
		StartOffset: start,
		EndOffset:   end,
		NewText:     newText,
	})
}

// Insert adds an edit that inserts text at the given offset.
func (b *EditBuilder) Insert(offset int, text string) {
	b.ReplaceRange(offset, offset, text)
}

// Delete adds an edit that deletes bytes [start, end).
func (b *EditBuilder) Delete(start, end int) {
	b.ReplaceRange(start, end, "")
}

// Len returns the number of accumulated edits.
func (b *EditBuilder) Len() int {
	return len(b.Edits)
}

// Apply applies the accumulated edits to content best-effort.
// See ApplyAll for the exact semantics.
func (b *EditBuilder) Apply(content []byte) *ApplyResult {
	return ApplyAll(content, b.Edits)
}
