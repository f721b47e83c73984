package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gohipify/pkg/config"
)

func TestTotals_HasReplacements(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		totals Totals
		want   bool
	}{
		{
			name:   "no replacements",
			totals: Totals{Replacements: 0},
			want:   false,
		},
		{
			name:   "has replacements",
			totals: Totals{Replacements: 5},
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.totals.HasReplacements())
		})
	}
}

func TestTotals_HasErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		totals Totals
		want   bool
	}{
		{
			name:   "no errors",
			totals: Totals{Errors: 0, Warnings: 5},
			want:   false,
		},
		{
			name:   "has errors",
			totals: Totals{Errors: 3},
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.totals.HasErrors())
		})
	}
}

func TestTotals_Clean(t *testing.T) {
	t.Parallel()

	assert.True(t, Totals{}.Clean())
	assert.False(t, Totals{Skipped: 1}.Clean())
}

func TestDefaultOptions(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()

	assert.True(t, opts.IncludeDiagnostics)
	assert.True(t, opts.IncludeByFile)
	assert.True(t, opts.IncludeByMatcher)
	assert.Equal(t, SortByCount, opts.SortBy)
	assert.True(t, opts.SortDesc)
	assert.Equal(t, config.MatcherFormatName, opts.MatcherFormat)
}

func TestSortField_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, SortByCount.IsValid())
	assert.True(t, SortByAlpha.IsValid())
	assert.True(t, SortBySeverity.IsValid())
	assert.False(t, SortField("invalid").IsValid())
}
