package matchers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPICallMatcher(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantDiags int
		wantOut   string
	}{
		{
			name:      "memory allocation",
			input:     "cudaMalloc(&d_buf, size);\n",
			wantDiags: 1,
			wantOut:   "hipMalloc(&d_buf, size);\n",
		},
		{
			name:      "enum argument left to the enum matcher",
			input:     "cudaMemcpy(dst, src, n, cudaMemcpyHostToDevice);\n",
			wantDiags: 1,
			wantOut:   "hipMemcpy(dst, src, n, cudaMemcpyHostToDevice);\n",
		},
		{
			name:      "deprecated alias maps to modern name",
			input:     "cudaThreadSynchronize();\n",
			wantDiags: 1,
			wantOut:   "hipDeviceSynchronize();\n",
		},
		{
			name:      "call inside another call",
			input:     "CHECK(cudaFree(d_buf));\n",
			wantDiags: 1,
			wantOut:   "CHECK(hipFree(d_buf));\n",
		},
		{
			name:      "call inside function body",
			input:     "void teardown(void) {\n    cudaDeviceReset();\n}\n",
			wantDiags: 1,
			wantOut:   "void teardown(void) {\n    hipDeviceReset();\n}\n",
		},
		{
			name:      "unknown function untouched",
			input:     "myMalloc(&d_buf, size);\n",
			wantDiags: 0,
			wantOut:   "myMalloc(&d_buf, size);\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags, out := applyMatcher(t, NewAPICallMatcher(), tt.input)
			assert.Len(t, diags, tt.wantDiags)
			assert.Equal(t, tt.wantOut, out)

			// Rewriting the output again must be a no-op.
			diags2, out2 := applyMatcher(t, NewAPICallMatcher(), out)
			assert.Empty(t, diags2)
			assert.Equal(t, out, out2)
		})
	}
}

// The reference mapping carries hipStreamWaitEven without the trailing t,
// and the table reproduces it verbatim.
func TestAPICallMatcherStreamWaitEventSpelling(t *testing.T) {
	diags, out := applyMatcher(t, NewAPICallMatcher(),
		"cudaStreamWaitEvent(stream, event, 0);\n")
	assert.Len(t, diags, 1)
	assert.Equal(t, "hipStreamWaitEven(stream, event, 0);\n", out)
}
