package edit_test

import (
	"testing"

	"github.com/yaklabco/gohipify/pkg/edit"
)

func TestValidateEdit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		e          edit.TextEdit
		contentLen int
		want       bool
	}{
		{"valid range", edit.TextEdit{StartOffset: 0, EndOffset: 5}, 10, true},
		{"empty range", edit.TextEdit{StartOffset: 3, EndOffset: 3}, 10, true},
		{"full range", edit.TextEdit{StartOffset: 0, EndOffset: 10}, 10, true},
		{"negative start", edit.TextEdit{StartOffset: -1, EndOffset: 3}, 10, false},
		{"end before start", edit.TextEdit{StartOffset: 5, EndOffset: 3}, 10, false},
		{"end past content", edit.TextEdit{StartOffset: 0, EndOffset: 11}, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := edit.ValidateEdit(tt.e, tt.contentLen); got != tt.want {
				t.Errorf("ValidateEdit() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSortEdits(t *testing.T) {
	t.Parallel()

	edits := []edit.TextEdit{
		{StartOffset: 10, EndOffset: 12},
		{StartOffset: 0, EndOffset: 5},
		{StartOffset: 0, EndOffset: 2},
	}
	edit.SortEdits(edits)

	want := []edit.TextEdit{
		{StartOffset: 0, EndOffset: 2},
		{StartOffset: 0, EndOffset: 5},
		{StartOffset: 10, EndOffset: 12},
	}
	for i := range want {
		if edits[i] != want[i] {
			t.Errorf("edits[%d] = %v, want %v", i, edits[i], want[i])
		}
	}
}

func TestDedupeEdits(t *testing.T) {
	t.Parallel()

	edits := []edit.TextEdit{
		{StartOffset: 0, EndOffset: 4, NewText: "hip"},
		{StartOffset: 0, EndOffset: 4, NewText: "hip"},
		{StartOffset: 0, EndOffset: 4, NewText: "other"},
		{StartOffset: 8, EndOffset: 9, NewText: "x"},
	}

	deduped := edit.DedupeEdits(edits)
	if len(deduped) != 3 {
		t.Errorf("DedupeEdits() kept %d edits, want 3", len(deduped))
	}
}

func TestFilterConflicts(t *testing.T) {
	t.Parallel()

	edits := []edit.TextEdit{
		{StartOffset: 0, EndOffset: 5},
		{StartOffset: 3, EndOffset: 8},
		{StartOffset: 5, EndOffset: 9},
	}

	accepted, skipped := edit.FilterConflicts(edits)

	// The first edit wins; the second overlaps it; the third starts
	// exactly where the first ends.
	if len(accepted) != 2 {
		t.Errorf("accepted = %d edits, want 2", len(accepted))
	}
	if len(skipped) != 1 {
		t.Fatalf("skipped = %d edits, want 1", len(skipped))
	}
	if skipped[0].StartOffset != 3 {
		t.Errorf("skipped edit starts at %d, want 3", skipped[0].StartOffset)
	}
}

func TestPrepareEditsReportsReasons(t *testing.T) {
	t.Parallel()

	edits := []edit.TextEdit{
		{StartOffset: 0, EndOffset: 4, NewText: "a"},
		{StartOffset: 2, EndOffset: 6, NewText: "b"},
		{StartOffset: 0, EndOffset: 999, NewText: "c"},
	}

	accepted, skipped := edit.PrepareEdits(edits, 10)

	if len(accepted) != 1 {
		t.Errorf("accepted = %d edits, want 1", len(accepted))
	}
	if len(skipped) != 2 {
		t.Fatalf("skipped = %d edits, want 2", len(skipped))
	}

	reasons := map[string]int{}
	for _, s := range skipped {
		reasons[s.Reason]++
	}
	if reasons[edit.ReasonOutOfRange] != 1 || reasons[edit.ReasonConflict] != 1 {
		t.Errorf("skip reasons = %v", reasons)
	}
}
