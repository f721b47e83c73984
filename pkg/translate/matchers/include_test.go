package matchers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIncludeMatcher(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantDiags int
		wantOut   string
	}{
		{
			name:      "angled runtime header",
			input:     "#include <cuda_runtime.h>\n",
			wantDiags: 1,
			wantOut:   "#include <hip_runtime.h>\n",
		},
		{
			name:      "quoted api header",
			input:     "#include \"cuda_runtime_api.h\"\n",
			wantDiags: 1,
			wantOut:   "#include \"hip_runtime_api.h\"\n",
		},
		{
			name:      "unrelated header untouched",
			input:     "#include <vector>\n",
			wantDiags: 0,
			wantOut:   "#include <vector>\n",
		},
		{
			name: "include in a dead branch is not rewritten",
			input: "#ifndef __CUDACC__\n" +
				"#include <cuda_runtime.h>\n" +
				"#endif\n",
			wantDiags: 0,
			wantOut: "#ifndef __CUDACC__\n" +
				"#include <cuda_runtime.h>\n" +
				"#endif\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags, out := applyMatcher(t, NewIncludeMatcher(), tt.input)
			assert.Len(t, diags, tt.wantDiags)
			assert.Equal(t, tt.wantOut, out)
		})
	}
}
