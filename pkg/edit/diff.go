package edit

import (
	"fmt"
	"strings"
)

// Diff is a unified diff between the original and rewritten content of
// one file.
type Diff struct {
	// Path is the file path for the diff header.
	Path string

	// Original is the content before translation.
	Original []byte

	// Modified is the content after translation.
	Modified []byte

	// Hunks contains the diff hunks.
	Hunks []Hunk

	// Additions and Deletions count changed lines across all hunks.
	Additions int
	Deletions int
}

// Hunk is a single unified-diff hunk.
type Hunk struct {
	OriginalStart int
	OriginalCount int
	ModifiedStart int
	ModifiedCount int
	Lines         []Line
}

// Line is a single line within a hunk.
type Line struct {
	Kind    LineKind
	Content string
}

// LineKind classifies a diff line.
type LineKind int

const (
	// LineContext is an unchanged context line.
	LineContext LineKind = iota

	// LineAdd is a line present only in the rewritten content.
	LineAdd

	// LineRemove is a line present only in the original content.
	LineRemove
)

// hunkContext is the number of context lines around each change.
const hunkContext = 3

// GenerateDiff computes a unified diff between original and modified.
// Returns nil when the two are line-identical.
func GenerateDiff(path string, original, modified []byte) *Diff {
	origLines := splitLines(original)
	modLines := splitLines(modified)

	hunks := computeHunks(origLines, modLines)
	if len(hunks) == 0 {
		return nil
	}

	d := &Diff{
		Path:     path,
		Original: original,
		Modified: modified,
		Hunks:    hunks,
	}
	for _, h := range hunks {
		for _, line := range h.Lines {
			switch line.Kind {
			case LineAdd:
				d.Additions++
			case LineRemove:
				d.Deletions++
			}
		}
	}
	return d
}

// HasChanges reports whether the diff contains any changes.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

// GitHeader returns the "diff --git" header line.
func (d *Diff) GitHeader() string {
	if d == nil {
		return ""
	}
	path := strings.TrimPrefix(d.Path, "/")
	return fmt.Sprintf("diff --git a/%s b/%s", path, path)
}

// String renders the diff in unified format, without the git header.
func (d *Diff) String() string {
	if !d.HasChanges() {
		return ""
	}

	path := strings.TrimPrefix(d.Path, "/")

	var b strings.Builder
	fmt.Fprintf(&b, "--- a/%s\n", path)
	fmt.Fprintf(&b, "+++ b/%s\n", path)

	for _, h := range d.Hunks {
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n",
			h.OriginalStart, h.OriginalCount, h.ModifiedStart, h.ModifiedCount)
		for _, line := range h.Lines {
			switch line.Kind {
			case LineContext:
				fmt.Fprintf(&b, " %s\n", line.Content)
			case LineAdd:
				fmt.Fprintf(&b, "+%s\n", line.Content)
			case LineRemove:
				fmt.Fprintf(&b, "-%s\n", line.Content)
			}
		}
	}

	return b.String()
}

// FullString renders the diff including the git header.
func (d *Diff) FullString() string {
	if !d.HasChanges() {
		return ""
	}
	return d.GitHeader() + "\n" + d.String()
}

func splitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	lines := strings.Split(string(content), "\n")
	// Drop the empty trailing element a final newline produces.
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// diffOp is one line-level operation in the raw diff sequence.
type diffOp struct {
	kind    LineKind
	content string
}

// computeHunks diffs two line slices and groups the changes into hunks
// with surrounding context.
func computeHunks(orig, mod []string) []Hunk {
	ops := buildOps(orig, mod)

	changed := false
	for _, op := range ops {
		if op.kind != LineContext {
			changed = true
			break
		}
	}
	if !changed {
		return nil
	}

	return groupHunks(ops)
}

// buildOps walks the original and modified line slices against their
// longest common subsequence and emits context/remove/add operations.
func buildOps(orig, mod []string) []diffOp {
	lcs := longestCommonSubsequence(orig, mod)

	var ops []diffOp
	oi, mi, li := 0, 0, 0

	for oi < len(orig) || mi < len(mod) {
		if li < len(lcs) && oi < len(orig) && mi < len(mod) &&
			orig[oi] == lcs[li] && mod[mi] == lcs[li] {
			ops = append(ops, diffOp{kind: LineContext, content: orig[oi]})
			oi++
			mi++
			li++
			continue
		}

		for oi < len(orig) && (li >= len(lcs) || orig[oi] != lcs[li]) {
			ops = append(ops, diffOp{kind: LineRemove, content: orig[oi]})
			oi++
		}
		for mi < len(mod) && (li >= len(lcs) || mod[mi] != lcs[li]) {
			ops = append(ops, diffOp{kind: LineAdd, content: mod[mi]})
			mi++
		}
	}

	return ops
}

// groupHunks slices the op sequence into hunks, merging changes whose
// context windows touch.
func groupHunks(ops []diffOp) []Hunk {
	type span struct{ start, end int }

	var changes []span
	open := -1
	for i, op := range ops {
		if op.kind != LineContext {
			if open < 0 {
				open = i
			}
		} else if open >= 0 {
			changes = append(changes, span{open, i})
			open = -1
		}
	}
	if open >= 0 {
		changes = append(changes, span{open, len(ops)})
	}
	if len(changes) == 0 {
		return nil
	}

	var hunks []Hunk
	for i := 0; i < len(changes); {
		j := i + 1
		for j < len(changes) && changes[j].start-changes[j-1].end <= hunkContext*2 {
			j++
		}
		hunks = append(hunks, buildHunk(ops, changes[i].start, changes[j-1].end))
		i = j
	}
	return hunks
}

// buildHunk assembles one hunk covering ops[changeStart:changeEnd] plus
// context lines on both sides.
func buildHunk(ops []diffOp, changeStart, changeEnd int) Hunk {
	start := max(changeStart-hunkContext, 0)
	end := min(changeEnd+hunkContext, len(ops))

	h := Hunk{OriginalStart: 1, ModifiedStart: 1}
	for _, op := range ops[:start] {
		if op.kind != LineAdd {
			h.OriginalStart++
		}
		if op.kind != LineRemove {
			h.ModifiedStart++
		}
	}

	for _, op := range ops[start:end] {
		h.Lines = append(h.Lines, Line{Kind: op.kind, Content: op.content})
		switch op.kind {
		case LineContext:
			h.OriginalCount++
			h.ModifiedCount++
		case LineRemove:
			h.OriginalCount++
		case LineAdd:
			h.ModifiedCount++
		}
	}

	return h
}

// longestCommonSubsequence computes the LCS of two line slices with the
// usual dynamic-programming table.
func longestCommonSubsequence(orig, mod []string) []string {
	n, m := len(orig), len(mod)
	if n == 0 || m == 0 {
		return nil
	}

	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, m+1)
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if orig[i-1] == mod[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
			} else {
				dp[i][j] = max(dp[i-1][j], dp[i][j-1])
			}
		}
	}

	length := dp[n][m]
	if length == 0 {
		return nil
	}

	lcs := make([]string, length)
	i, j, k := n, m, length-1
	for i > 0 && j > 0 {
		switch {
		case orig[i-1] == mod[j-1]:
			lcs[k] = orig[i-1]
			i--
			j--
			k--
		case dp[i-1][j] > dp[i][j-1]:
			i--
		default:
			j--
		}
	}

	return lcs
}
