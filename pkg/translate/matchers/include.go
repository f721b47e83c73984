package matchers

import (
	"github.com/yaklabco/gohipify/pkg/rename"
	"github.com/yaklabco/gohipify/pkg/translate"
)

// IncludeMatcher rewrites #include directives that pull in CUDA headers
// (#include <cuda_runtime.h> -> #include <hip/hip_runtime.h>).
type IncludeMatcher struct {
	translate.BaseMatcher
}

// NewIncludeMatcher creates a new include directive matcher.
func NewIncludeMatcher() *IncludeMatcher {
	return &IncludeMatcher{
		BaseMatcher: translate.NewBaseMatcher(
			"CH010",
			"cuda-include-directive",
			"CUDA header includes should use the HIP headers",
			[]rename.Category{rename.CategoryInclude},
		),
	}
}

// Apply rewrites the file name of every live include whose path appears
// in the include category of the rename table. The replacement keeps the
// original delimiter style.
func (m *IncludeMatcher) Apply(ctx *translate.MatchContext) ([]translate.Diagnostic, error) {
	if ctx.File == nil {
		return nil, nil
	}

	var diags []translate.Diagnostic
	for _, inc := range ctx.File.Includes {
		if ctx.Cancelled() {
			return diags, cancelled(ctx)
		}

		entry, ok := ctx.Table.LookupIn(inc.FileName, rename.CategoryInclude)
		if !ok {
			continue
		}

		newText := `"` + entry.New + `"`
		if inc.Angled {
			newText = "<" + entry.New + ">"
		}
		diags = append(diags, replaceAt(ctx, m.ID(), inc.FileRange, newText,
			inc.FileName+" -> "+entry.New))
	}

	return diags, nil
}
