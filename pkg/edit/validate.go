package edit

import (
	"fmt"
	"sort"
)

// Skip reasons attached to edits that could not be applied.
const (
	// ReasonOutOfRange marks an edit whose span does not fit the buffer.
	ReasonOutOfRange = "span out of range"

	// ReasonConflict marks an edit overlapping an earlier-accepted edit.
	ReasonConflict = "overlaps an earlier edit"
)

// SkippedEdit pairs a rejected edit with the reason it was rejected.
type SkippedEdit struct {
	Edit   TextEdit
	Reason string
}

func (s SkippedEdit) String() string {
	return fmt.Sprintf("[%d:%d] %s", s.Edit.StartOffset, s.Edit.EndOffset, s.Reason)
}

// ValidateEdit checks that a single edit has a valid span for the given
// content length.
func ValidateEdit(e TextEdit, contentLen int) bool {
	if e.StartOffset < 0 {
		return false
	}
	if e.EndOffset < e.StartOffset {
		return false
	}
	return e.EndOffset <= contentLen
}

// SortEdits sorts edits by start offset, then by end offset.
// This produces a deterministic order for edit application.
func SortEdits(edits []TextEdit) {
	sort.Slice(edits, func(i, j int) bool {
		if edits[i].StartOffset != edits[j].StartOffset {
			return edits[i].StartOffset < edits[j].StartOffset
		}
		return edits[i].EndOffset < edits[j].EndOffset
	})
}

// DedupeEdits removes exact duplicates from a sorted edit slice. The two
// compilation views of a source file both visit unconditional code and
// queue the same edits twice; set semantics collapse them.
// Edits must be sorted with SortEdits first.
func DedupeEdits(edits []TextEdit) []TextEdit {
	if len(edits) < 2 {
		return edits
	}

	out := edits[:1]
	for _, e := range edits[1:] {
		last := out[len(out)-1]
		if e == last {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterConflicts splits a sorted, deduped edit slice into edits safe to
// apply and edits that overlap an earlier-accepted edit. Earlier edits,
// by start position, win; only the later of two overlapping edits is
// rejected.
func FilterConflicts(edits []TextEdit) (accepted, skipped []TextEdit) {
	if len(edits) == 0 {
		return nil, nil
	}

	accepted = make([]TextEdit, 0, len(edits))
	accepted = append(accepted, edits[0])
	lastEnd := edits[0].EndOffset

	for _, e := range edits[1:] {
		if e.StartOffset < lastEnd {
			skipped = append(skipped, e)
			continue
		}
		accepted = append(accepted, e)
		if e.EndOffset > lastEnd {
			lastEnd = e.EndOffset
		}
	}

	return accepted, skipped
}

// PrepareEdits turns a raw edit list into an ordered, applicable set.
// Out-of-range edits and later-queued conflicting edits are moved to the
// skipped list with a reason instead of failing the whole batch.
func PrepareEdits(edits []TextEdit, contentLen int) (accepted []TextEdit, skipped []SkippedEdit) {
	if len(edits) == 0 {
		return nil, nil
	}

	valid := make([]TextEdit, 0, len(edits))
	for _, e := range edits {
		if !ValidateEdit(e, contentLen) {
			skipped = append(skipped, SkippedEdit{Edit: e, Reason: ReasonOutOfRange})
			continue
		}
		valid = append(valid, e)
	}

	SortEdits(valid)
	valid = DedupeEdits(valid)

	accepted, conflicts := FilterConflicts(valid)
	for _, e := range conflicts {
		skipped = append(skipped, SkippedEdit{Edit: e, Reason: ReasonConflict})
	}

	return accepted, skipped
}
