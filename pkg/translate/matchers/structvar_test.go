package matchers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStructVarMatcher(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantDiags int
		wantOut   string
	}{
		{
			name:      "stream handle",
			input:     "cudaStream_t stream;\n",
			wantDiags: 1,
			wantOut:   "hipStream_t stream;\n",
		},
		{
			name:      "event pair declaration",
			input:     "cudaEvent_t start, stop;\n",
			wantDiags: 1,
			wantOut:   "hipEvent_t start, stop;\n",
		},
		{
			name:      "device properties gains the t suffix",
			input:     "cudaDeviceProp prop;\n",
			wantDiags: 1,
			wantOut:   "hipDeviceProp_t prop;\n",
		},
		{
			name:      "channel descriptor with initializer",
			input:     "cudaChannelFormatDesc desc = cudaCreateChannelDesc();\n",
			wantDiags: 1,
			wantOut:   "hipChannelFormatDesc desc = cudaCreateChannelDesc();\n",
		},
		{
			name:      "enum type belongs to the enum matcher",
			input:     "cudaError_t err;\n",
			wantDiags: 0,
			wantOut:   "cudaError_t err;\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags, out := applyMatcher(t, NewStructVarMatcher(), tt.input)
			assert.Len(t, diags, tt.wantDiags)
			assert.Equal(t, tt.wantOut, out)
		})
	}
}
