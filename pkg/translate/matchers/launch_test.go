package matchers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKernelLaunchMatcherFullConfig(t *testing.T) {
	input := "__global__ void kern(float* d, int n) {\n" +
		"    d[threadIdx.x] = n;\n" +
		"}\n" +
		"\n" +
		"void run(float* d, int n) {\n" +
		"    kern<<<grid, block, 0, stream>>>(d, n);\n" +
		"}\n"

	want := "__global__ void kern(hipLaunchParm lp, float* d, int n) {\n" +
		"    d[threadIdx.x] = n;\n" +
		"}\n" +
		"\n" +
		"void run(float* d, int n) {\n" +
		"    hipLaunchKernel(HIP_KERNEL_NAME(kern), dim3(grid), dim3(block), 0, stream, d, n);\n" +
		"}\n"

	diags, out := applyMatcher(t, NewKernelLaunchMatcher(), input)
	assert.Len(t, diags, 2)
	assert.Equal(t, want, out)
}

func TestKernelLaunchMatcherTwoSlotConfig(t *testing.T) {
	input := "__global__ void tick(int* c) {\n" +
		"}\n" +
		"void run(int* c) {\n" +
		"    tick<<<1, 128>>>(c);\n" +
		"}\n"

	want := "__global__ void tick(hipLaunchParm lp, int* c) {\n" +
		"}\n" +
		"void run(int* c) {\n" +
		"    hipLaunchKernel(HIP_KERNEL_NAME(tick), dim3(1), dim3(128), 0, 0, c);\n" +
		"}\n"

	diags, out := applyMatcher(t, NewKernelLaunchMatcher(), input)
	assert.Len(t, diags, 2)
	assert.Equal(t, want, out)
}

func TestKernelLaunchMatcherDim3Config(t *testing.T) {
	input := "__global__ void kern(float* d) {\n" +
		"}\n" +
		"void run(float* d) {\n" +
		"    kern<<<dim3(gx, gy), dim3(bx, by)>>>(d);\n" +
		"}\n"

	// dim3 wrapping is unconditional; dim3 copy-constructs from itself.
	want := "__global__ void kern(hipLaunchParm lp, float* d) {\n" +
		"}\n" +
		"void run(float* d) {\n" +
		"    hipLaunchKernel(HIP_KERNEL_NAME(kern), dim3(dim3(gx, gy)), dim3(dim3(bx, by)), 0, 0, d);\n" +
		"}\n"

	diags, out := applyMatcher(t, NewKernelLaunchMatcher(), input)
	assert.Len(t, diags, 2)
	assert.Equal(t, want, out)
}

func TestKernelLaunchMatcherUnresolvedCallee(t *testing.T) {
	input := "void run(float* d) {\n" +
		"    mystery<<<1, 1>>>(d);\n" +
		"}\n"

	diags, out := applyMatcher(t, NewKernelLaunchMatcher(), input)
	require.Len(t, diags, 1)
	assert.False(t, diags[0].HasEdits())
	assert.Contains(t, diags[0].Message, "mystery")
	assert.Equal(t, input, out, "unresolved launch stays unchanged")
}

func TestKernelLaunchMatcherZeroParamKernel(t *testing.T) {
	input := "__global__ void noop(void) {\n" +
		"}\n" +
		"void run(void) {\n" +
		"    noop<<<1, 1>>>();\n" +
		"}\n"

	diags, out := applyMatcher(t, NewKernelLaunchMatcher(), input)
	require.Len(t, diags, 2)
	for _, d := range diags {
		assert.False(t, d.HasEdits())
	}
	assert.Equal(t, input, out, "zero-parameter kernel stays unchanged")
}

func TestKernelLaunchMatcherPrototypeAlsoGainsLaunchParm(t *testing.T) {
	input := "__global__ void kern(float* d);\n" +
		"__global__ void kern(float* d) {\n" +
		"}\n" +
		"void run(float* d) {\n" +
		"    kern<<<1, 1>>>(d);\n" +
		"}\n"

	want := "__global__ void kern(hipLaunchParm lp, float* d);\n" +
		"__global__ void kern(hipLaunchParm lp, float* d) {\n" +
		"}\n" +
		"void run(float* d) {\n" +
		"    hipLaunchKernel(HIP_KERNEL_NAME(kern), dim3(1), dim3(1), 0, 0, d);\n" +
		"}\n"

	diags, out := applyMatcher(t, NewKernelLaunchMatcher(), input)
	assert.Len(t, diags, 3)
	assert.Equal(t, want, out)
}

// A kernel that is never launched keeps its parameter list. The decl
// edit rides on the launch site, so translated output (whose launches
// are plain hipLaunchKernel calls) never gains a second hipLaunchParm.
func TestKernelLaunchMatcherUnlaunchedKernelUntouched(t *testing.T) {
	input := "__global__ void helper(float* d) {\n" +
		"}\n"

	diags, out := applyMatcher(t, NewKernelLaunchMatcher(), input)
	assert.Empty(t, diags)
	assert.Equal(t, input, out)
}

func TestKernelLaunchMatcherTranslatedOutputStable(t *testing.T) {
	input := "__global__ void kern(float* d) {\n" +
		"}\n" +
		"void run(float* d) {\n" +
		"    kern<<<grid, block>>>(d);\n" +
		"}\n"

	_, once := applyMatcher(t, NewKernelLaunchMatcher(), input)
	diags, twice := applyMatcher(t, NewKernelLaunchMatcher(), once)
	assert.Empty(t, diags)
	assert.Equal(t, once, twice)
}

// A declaration that already starts with hipLaunchParm is left alone
// even when a triple-chevron launch still names it.
func TestKernelLaunchMatcherDeclAlreadyTranslated(t *testing.T) {
	input := "__global__ void kern(hipLaunchParm lp, float* d) {\n" +
		"}\n" +
		"void run(float* d) {\n" +
		"    kern<<<1, 1>>>(d);\n" +
		"}\n"

	want := "__global__ void kern(hipLaunchParm lp, float* d) {\n" +
		"}\n" +
		"void run(float* d) {\n" +
		"    hipLaunchKernel(HIP_KERNEL_NAME(kern), dim3(1), dim3(1), 0, 0, d);\n" +
		"}\n"

	diags, out := applyMatcher(t, NewKernelLaunchMatcher(), input)
	assert.Len(t, diags, 1)
	assert.Equal(t, want, out)
}

// A launch missing its block slot gets dim3(0), matching the 0
// placeholder used for the shared-memory and stream slots.
func TestKernelLaunchMatcherElidedBlockSlot(t *testing.T) {
	input := "__global__ void tick(int* c) {\n" +
		"}\n" +
		"void run(int* c) {\n" +
		"    tick<<<8>>>(c);\n" +
		"}\n"

	want := "__global__ void tick(hipLaunchParm lp, int* c) {\n" +
		"}\n" +
		"void run(int* c) {\n" +
		"    hipLaunchKernel(HIP_KERNEL_NAME(tick), dim3(8), dim3(0), 0, 0, c);\n" +
		"}\n"

	diags, out := applyMatcher(t, NewKernelLaunchMatcher(), input)
	assert.Len(t, diags, 2)
	assert.Equal(t, want, out)
}
