package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yaklabco/gohipify/pkg/config"
	"github.com/yaklabco/gohipify/pkg/parser/cuparse"
	"github.com/yaklabco/gohipify/pkg/rename"
	"github.com/yaklabco/gohipify/pkg/runner"
	"github.com/yaklabco/gohipify/pkg/translate"

	_ "github.com/yaklabco/gohipify/pkg/translate/matchers"
)

const runnerInput = `#include <cuda_runtime.h>

void alloc(void** p, size_t n) {
    cudaMalloc(p, n);
}
`

// newTestRunner builds a runner over the full translation stack.
func newTestRunner() *runner.Runner {
	engine := translate.NewEngine(cuparse.New(), translate.DefaultRegistry, rename.DefaultTable())
	return runner.New(translate.NewPipeline(engine))
}

// writeCU writes a CUDA source file under dir and returns its path.
func writeCU(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

func TestNew(t *testing.T) {
	t.Parallel()

	engine := translate.NewEngine(cuparse.New(), translate.DefaultRegistry, rename.DefaultTable())
	pipeline := translate.NewPipeline(engine)

	r := runner.New(pipeline)

	if r.Pipeline != pipeline {
		t.Error("Pipeline not set correctly")
	}
}

func TestRunner_Run_NoFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	r := newTestRunner()

	ctx := context.Background()
	opts := runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
		Config:     config.NewConfig(),
	}

	result, err := r.Run(ctx, opts)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Stats.FilesDiscovered != 0 {
		t.Errorf("FilesDiscovered = %d, want 0", result.Stats.FilesDiscovered)
	}

	if len(result.Files) != 0 {
		t.Errorf("len(Files) = %d, want 0", len(result.Files))
	}
}

func TestRunner_Run_SingleFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := writeCU(t, dir, "alloc.cu", runnerInput)
	r := newTestRunner()

	ctx := context.Background()
	opts := runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
		Config:     config.NewConfig(),
	}

	result, err := r.Run(ctx, opts)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Stats.FilesDiscovered != 1 {
		t.Errorf("FilesDiscovered = %d, want 1", result.Stats.FilesDiscovered)
	}
	if result.Stats.FilesProcessed != 1 {
		t.Errorf("FilesProcessed = %d, want 1", result.Stats.FilesProcessed)
	}
	if result.Stats.FilesChanged != 1 {
		t.Errorf("FilesChanged = %d, want 1", result.Stats.FilesChanged)
	}
	if result.Stats.FilesWritten != 1 {
		t.Errorf("FilesWritten = %d, want 1", result.Stats.FilesWritten)
	}
	if !result.HasReplacements() {
		t.Error("expected replacements for cudaMalloc and the include")
	}
	if result.Stats.DiagnosticsBySeverity["warning"] == 0 {
		t.Error("expected warning diagnostics")
	}

	// Sibling mode leaves the source untouched and writes a .hip file.
	content, err := os.ReadFile(src)
	if err != nil {
		t.Fatalf("read source: %v", err)
	}
	if string(content) != runnerInput {
		t.Error("source file was modified in sibling mode")
	}

	hipContent, err := os.ReadFile(filepath.Join(dir, "alloc.hip"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(hipContent), "hipMalloc") {
		t.Errorf("output missing hipMalloc:\n%s", hipContent)
	}
	if !strings.Contains(string(hipContent), "hip_runtime.h") {
		t.Errorf("output missing rewritten include:\n%s", hipContent)
	}
}

func TestRunner_Run_MultipleFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"a.cu", "b.cu", "c.cu"} {
		writeCU(t, dir, name, runnerInput)
	}
	// A file with nothing to translate.
	writeCU(t, dir, "plain.cu", "int main() { return 0; }\n")

	r := newTestRunner()

	ctx := context.Background()
	opts := runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
		Config:     config.NewConfig(),
	}

	result, err := r.Run(ctx, opts)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Stats.FilesDiscovered != 4 {
		t.Errorf("FilesDiscovered = %d, want 4", result.Stats.FilesDiscovered)
	}
	if result.Stats.FilesProcessed != 4 {
		t.Errorf("FilesProcessed = %d, want 4", result.Stats.FilesProcessed)
	}
	if result.Stats.FilesChanged != 3 {
		t.Errorf("FilesChanged = %d, want 3", result.Stats.FilesChanged)
	}
	if result.Stats.FilesWritten != 3 {
		t.Errorf("FilesWritten = %d, want 3", result.Stats.FilesWritten)
	}
	if !result.Clean() {
		t.Error("expected no skipped replacements")
	}

	// Outcomes come back in sorted path order.
	for i := 1; i < len(result.Files); i++ {
		if result.Files[i].Path < result.Files[i-1].Path {
			t.Errorf("outcomes not ordered: %s after %s", result.Files[i].Path, result.Files[i-1].Path)
		}
	}
}

func TestRunner_Run_DryRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := writeCU(t, dir, "alloc.cu", runnerInput)
	r := newTestRunner()

	cfg := config.NewConfig()
	cfg.DryRun = true

	ctx := context.Background()
	opts := runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
		Config:     cfg,
	}

	result, err := r.Run(ctx, opts)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Stats.FilesWritten != 0 {
		t.Errorf("FilesWritten = %d, want 0 for dry-run", result.Stats.FilesWritten)
	}
	if result.Stats.FilesChanged != 1 {
		t.Errorf("FilesChanged = %d, want 1", result.Stats.FilesChanged)
	}

	// Verify nothing hit the disk.
	content, err := os.ReadFile(src)
	if err != nil {
		t.Fatalf("read source: %v", err)
	}
	if string(content) != runnerInput {
		t.Error("source file was modified in dry-run mode")
	}
	if _, err := os.Stat(filepath.Join(dir, "alloc.hip")); !os.IsNotExist(err) {
		t.Error("output file was written in dry-run mode")
	}

	// But the result should have a diff.
	if len(result.Files) != 1 {
		t.Fatalf("expected 1 file outcome")
	}
	if result.Files[0].Result == nil || result.Files[0].Result.Diff == nil {
		t.Error("expected diff in dry-run mode")
	}
}

func TestRunner_Run_InPlace(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := writeCU(t, dir, "alloc.cu", runnerInput)
	r := newTestRunner()

	cfg := config.NewConfig()
	cfg.InPlace = true

	ctx := context.Background()
	opts := runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
		Config:     cfg,
	}

	result, err := r.Run(ctx, opts)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Stats.FilesWritten != 1 {
		t.Errorf("FilesWritten = %d, want 1", result.Stats.FilesWritten)
	}

	content, err := os.ReadFile(src)
	if err != nil {
		t.Fatalf("read source: %v", err)
	}
	if !strings.Contains(string(content), "hipMalloc") {
		t.Errorf("in-place source not rewritten:\n%s", content)
	}
}

func TestRunner_Run_ConcurrentProcessing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for idx := range 16 {
		name := "file" + string(rune('a'+idx)) + ".cu"
		writeCU(t, dir, name, runnerInput)
	}

	r := newTestRunner()

	ctx := context.Background()
	opts := runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
		Config:     config.NewConfig(),
		Jobs:       4,
	}

	result, err := r.Run(ctx, opts)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Stats.FilesProcessed != 16 {
		t.Errorf("FilesProcessed = %d, want 16", result.Stats.FilesProcessed)
	}

	// Ordering stays deterministic regardless of worker completion order.
	for i := 1; i < len(result.Files); i++ {
		if result.Files[i].Path < result.Files[i-1].Path {
			t.Errorf("outcomes not ordered: %s after %s", result.Files[i].Path, result.Files[i-1].Path)
		}
	}
}

func TestRunner_Run_ContextCancellation(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for idx := range 8 {
		name := "file" + string(rune('a'+idx)) + ".cu"
		writeCU(t, dir, name, runnerInput)
	}

	r := newTestRunner()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opts := runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
		Config:     config.NewConfig(),
	}

	_, err := r.Run(ctx, opts)
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestResult_HasFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		result *runner.Result
		want   bool
	}{
		{
			name:   "nil result",
			result: nil,
			want:   false,
		},
		{
			name: "no errors",
			result: &runner.Result{
				Stats: runner.Stats{
					DiagnosticsBySeverity: map[string]int{"warning": 5},
				},
			},
			want: false,
		},
		{
			name: "with errors",
			result: &runner.Result{
				Stats: runner.Stats{
					DiagnosticsBySeverity: map[string]int{"error": 1, "warning": 5},
				},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tt.result.HasFailures()
			if got != tt.want {
				t.Errorf("HasFailures() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResult_HasReplacements(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		result *runner.Result
		want   bool
	}{
		{
			name:   "nil result",
			result: nil,
			want:   false,
		},
		{
			name: "no replacements",
			result: &runner.Result{
				Stats: runner.Stats{ReplacementsTotal: 0},
			},
			want: false,
		},
		{
			name: "with replacements",
			result: &runner.Result{
				Stats: runner.Stats{ReplacementsTotal: 3},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tt.result.HasReplacements()
			if got != tt.want {
				t.Errorf("HasReplacements() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResult_Clean(t *testing.T) {
	t.Parallel()

	if !(*runner.Result)(nil).Clean() {
		t.Error("nil result should be clean")
	}

	dirty := &runner.Result{Stats: runner.Stats{ReplacementsSkipped: 2}}
	if dirty.Clean() {
		t.Error("result with skipped replacements should not be clean")
	}
}
