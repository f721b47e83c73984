package translate_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gohipify/pkg/config"
	"github.com/yaklabco/gohipify/pkg/fsutil"
	"github.com/yaklabco/gohipify/pkg/translate"
)

const pipelineInput = `#include <cuda_runtime.h>
void setup(float* d, int n) {
    cudaMalloc(&d, n);
}
`

const pipelineWant = `#include <hip_runtime.h>
void setup(float* d, int n) {
    hipMalloc(&d, n);
}
`

func newTestPipeline() *translate.Pipeline {
	return translate.NewPipeline(newRealEngine())
}

func writeSource(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestPipeline_ProcessFile_SiblingMode(t *testing.T) {
	path := writeSource(t, "kernel.cu", pipelineInput)
	p := newTestPipeline()

	result, err := p.ProcessFile(context.Background(), path, config.NewConfig(), translate.DefaultPipelineOptions())
	require.NoError(t, err)

	assert.True(t, result.Modified)
	assert.True(t, result.Written)
	assert.False(t, result.Skipped)

	// The .cu source keeps its name; the output lands at the .hip name.
	wantOut := filepath.Join(filepath.Dir(path), "kernel.hip")
	assert.Equal(t, wantOut, result.OutputPath)

	out, err := os.ReadFile(wantOut)
	require.NoError(t, err)
	assert.Equal(t, pipelineWant, string(out))

	// The working file was renamed away and the source is untouched.
	_, err = os.Stat(fsutil.WorkingPath(path))
	assert.True(t, os.IsNotExist(err))
	orig, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, pipelineInput, string(orig))
}

func TestPipeline_ProcessFile_KeepSuffix(t *testing.T) {
	path := writeSource(t, "kernel.cu", pipelineInput)
	p := newTestPipeline()

	opts := translate.DefaultPipelineOptions()
	opts.KeepSuffix = true

	result, err := p.ProcessFile(context.Background(), path, config.NewConfig(), opts)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "kernel.hip.cu"), result.OutputPath)

	out, err := os.ReadFile(result.OutputPath)
	require.NoError(t, err)
	assert.Equal(t, pipelineWant, string(out))
}

func TestPipeline_ProcessFile_InPlaceWithBackup(t *testing.T) {
	path := writeSource(t, "kernel.cu", pipelineInput)
	p := newTestPipeline()

	opts := translate.DefaultPipelineOptions()
	opts.InPlace = true
	opts.Backup = fsutil.BackupConfig{Enabled: true, Mode: fsutil.BackupModeSidecar}

	result, err := p.ProcessFile(context.Background(), path, config.NewConfig(), opts)
	require.NoError(t, err)
	assert.True(t, result.Written)
	assert.True(t, result.BackupCreated)
	assert.Equal(t, path, result.OutputPath)

	out, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, pipelineWant, string(out))

	backup, err := os.ReadFile(path + fsutil.BackupSuffix)
	require.NoError(t, err)
	assert.Equal(t, pipelineInput, string(backup))
}

func TestPipeline_ProcessFile_DryRun(t *testing.T) {
	path := writeSource(t, "kernel.cu", pipelineInput)
	p := newTestPipeline()

	opts := translate.DefaultPipelineOptions()
	opts.DryRun = true

	result, err := p.ProcessFile(context.Background(), path, config.NewConfig(), opts)
	require.NoError(t, err)

	assert.True(t, result.Modified)
	assert.False(t, result.Written)
	require.NotNil(t, result.Diff)
	assert.True(t, result.Diff.HasChanges())

	// Nothing on disk changed.
	orig, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, pipelineInput, string(orig))
	_, err = os.Stat(filepath.Join(filepath.Dir(path), "kernel.hip"))
	assert.True(t, os.IsNotExist(err))
}

func TestPipeline_ProcessFile_NoChanges(t *testing.T) {
	path := writeSource(t, "plain.cu", "int main(void) {\n    return 0;\n}\n")
	p := newTestPipeline()

	result, err := p.ProcessFile(context.Background(), path, config.NewConfig(), translate.DefaultPipelineOptions())
	require.NoError(t, err)
	assert.False(t, result.Modified)
	assert.False(t, result.Written)
	assert.Equal(t, "no changes", result.Summary())
}

func TestPipeline_ProcessFile_NotFound(t *testing.T) {
	p := newTestPipeline()

	_, err := p.ProcessFile(context.Background(),
		filepath.Join(t.TempDir(), "missing.cu"), config.NewConfig(), translate.DefaultPipelineOptions())
	require.Error(t, err)
	assert.ErrorIs(t, err, translate.ErrFileNotFound)
	assert.True(t, translate.IsPipelineError(err))
}

func TestPipeline_ProcessContent(t *testing.T) {
	p := newTestPipeline()

	opts := translate.DefaultPipelineOptions()
	opts.DryRun = true

	result, err := p.ProcessContent(context.Background(), "stdin.cu", []byte(pipelineInput), config.NewConfig(), opts)
	require.NoError(t, err)
	assert.True(t, result.Modified)
	assert.Equal(t, pipelineWant, string(result.ModifiedContent))
	require.NotNil(t, result.Diff)
}

func TestPipelineOptionsFromConfig(t *testing.T) {
	cfg := config.NewConfig()
	cfg.DryRun = true
	cfg.InPlace = true
	cfg.Format = config.FormatDiff

	opts := translate.PipelineOptionsFromConfig(cfg)
	assert.True(t, opts.DryRun)
	assert.True(t, opts.InPlace)
	assert.True(t, opts.WithDiff)
	assert.True(t, opts.Backup.Enabled, "in-place runs back up by default")

	cfg.NoBackups = true
	opts = translate.PipelineOptionsFromConfig(cfg)
	assert.False(t, opts.Backup.Enabled)
}
