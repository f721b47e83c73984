package matchers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuiltinIndexMatcher(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantDiags int
		wantOut   string
	}{
		{
			name:      "global index computation",
			input:     "__global__ void kern(float* a) {\n    a[threadIdx.x + blockIdx.x * blockDim.x] = 0;\n}\n",
			wantDiags: 3,
			wantOut:   "__global__ void kern(float* a) {\n    a[hipThreadIdx_x + hipBlockIdx_x * hipBlockDim_x] = 0;\n}\n",
		},
		{
			name:      "grid dimension",
			input:     "__global__ void kern(int* n) {\n    *n = gridDim.y;\n}\n",
			wantDiags: 1,
			wantOut:   "__global__ void kern(int* n) {\n    *n = hipGridDim_y;\n}\n",
		},
		{
			name:      "warp size identifier",
			input:     "int w = warpSize;\n",
			wantDiags: 1,
			wantOut:   "int w = hipWarpSize;\n",
		},
		{
			name:      "spaces around the dot collapse",
			input:     "int i = threadIdx . x;\n",
			wantDiags: 1,
			wantOut:   "int i = hipThreadIdx_x;\n",
		},
		{
			name:      "ordinary member access untouched",
			input:     "int x = prop.major;\n",
			wantDiags: 0,
			wantOut:   "int x = prop.major;\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags, out := applyMatcher(t, NewBuiltinIndexMatcher(), tt.input)
			assert.Len(t, diags, tt.wantDiags)
			assert.Equal(t, tt.wantOut, out)
		})
	}
}
