package matchers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gohipify/pkg/config"
	"github.com/yaklabco/gohipify/pkg/cuast"
	"github.com/yaklabco/gohipify/pkg/parser/cuparse"
	"github.com/yaklabco/gohipify/pkg/rename"
	"github.com/yaklabco/gohipify/pkg/translate"
)

// parseHost parses source under the host compilation view.
func parseHost(t *testing.T, src string) *cuast.FileSnapshot {
	t.Helper()
	snap, err := cuparse.New().Parse(context.Background(), "test.cu", []byte(src), cuast.ViewHost)
	require.NoError(t, err)
	return snap
}

// applyMatcher runs one matcher over source and returns the diagnostics
// and the rewritten text.
func applyMatcher(t *testing.T, m translate.Matcher, src string) ([]translate.Diagnostic, string) {
	t.Helper()

	snap := parseHost(t, src)
	mctx := translate.NewMatchContext(context.Background(), snap, rename.DefaultTable(), config.NewConfig(), nil)

	diags, err := m.Apply(mctx)
	require.NoError(t, err)

	result := mctx.Builder.Apply([]byte(src))
	require.True(t, result.Clean(), "edits should apply without conflicts")
	return diags, string(result.Output)
}
