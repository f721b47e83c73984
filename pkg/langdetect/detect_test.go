package langdetect_test

import (
	"testing"

	"github.com/yaklabco/gohipify/pkg/langdetect"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		content  string
		expected string
	}{
		{
			name:     "cu extension",
			path:     "kernel.cu",
			content:  "int main() { return 0; }",
			expected: "cuda",
		},
		{
			name:     "cuh extension",
			path:     "kernel.cuh",
			content:  "",
			expected: "cuda",
		},
		{
			name:     "uppercase extension",
			path:     "KERNEL.CU",
			content:  "",
			expected: "cuda",
		},
		{
			name:     "kernel qualifier in cpp file",
			path:     "kernel.cpp",
			content:  "__global__ void add(float* a) {}",
			expected: "cuda",
		},
		{
			name:     "launch syntax in cpp file",
			path:     "main.cpp",
			content:  "int main() { add<<<1, 128>>>(d); }",
			expected: "cuda",
		},
		{
			name:     "runtime header in plain header",
			path:     "util.h",
			content:  "#include <cuda_runtime.h>\nvoid init();",
			expected: "cuda",
		},
		{
			name:     "runtime api call",
			path:     "alloc.cc",
			content:  "void* p;\ncudaMalloc(&p, 64);",
			expected: "cuda",
		},
		{
			name:     "arch macro",
			path:     "compat.h",
			content:  "#ifdef __CUDA_ARCH__\n#define DEV 1\n#endif",
			expected: "cuda",
		},
		{
			name:     "empty content fallback",
			path:     "notes",
			content:  "",
			expected: "text",
		},
		{
			name:     "barracuda is not an api call",
			path:     "fish.txt",
			content:  "the barracuda swims",
			expected: "text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := langdetect.Detect(tt.path, []byte(tt.content))

			if result != tt.expected {
				t.Errorf("Detect() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestIsCUDA(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    string
		content string
		want    bool
	}{
		{
			name:    "cu file",
			path:    "vec.cu",
			content: "__global__ void k() {}",
			want:    true,
		},
		{
			name:    "header with markers",
			path:    "vec.h",
			content: "__device__ float f(float x);",
			want:    true,
		},
		{
			name:    "plain c file",
			path:    "main.c",
			content: "#include <stdio.h>\nint main(void) { return 0; }",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := langdetect.IsCUDA(tt.path, []byte(tt.content)); got != tt.want {
				t.Errorf("IsCUDA() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasCUDAMarkers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{
			name:    "global qualifier",
			content: "__global__ void k() {}",
			want:    true,
		},
		{
			name:    "constant qualifier",
			content: "__constant__ float table[256];",
			want:    true,
		},
		{
			name:    "triple chevron",
			content: "k<<<grid, block>>>(d);",
			want:    true,
		},
		{
			name:    "cudacc guard",
			content: "#ifdef __CUDACC__\n#endif",
			want:    true,
		},
		{
			name:    "api call mid file",
			content: "int x = 0;\ncudaDeviceSynchronize();",
			want:    true,
		},
		{
			name:    "second cuda occurrence is the call",
			content: "// cuda notes\ncudaFree(d);",
			want:    true,
		},
		{
			name:    "lowercase cuda word only",
			content: "the cudas are plentiful",
			want:    false,
		},
		{
			name:    "plain cpp",
			content: "std::vector<int> v;\nv.push_back(1);",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := langdetect.HasCUDAMarkers([]byte(tt.content)); got != tt.want {
				t.Errorf("HasCUDAMarkers() = %v, want %v", got, tt.want)
			}
		})
	}
}
