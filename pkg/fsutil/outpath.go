package fsutil

import (
	"path/filepath"
	"strings"
)

// WorkingSuffix is inserted before the source extension while a
// translation is being written out: kernel.cu becomes kernel.hip.cu.
const WorkingSuffix = ".hip"

// WorkingPath returns the intermediate output path for a source file.
// The .hip marker goes before the original extension so editors keep
// treating the working file as CUDA/C++ source.
func WorkingPath(path string) string {
	ext := filepath.Ext(path)
	if ext == "" {
		return path + WorkingSuffix
	}
	return strings.TrimSuffix(path, ext) + WorkingSuffix + ext
}

// FinalPath returns the finished output path for a source file. A .cu
// source ends as a bare .hip file; headers and other extensions keep
// the working name so include paths stay well-formed.
func FinalPath(path string) string {
	ext := filepath.Ext(path)
	if ext == ".cu" {
		return strings.TrimSuffix(path, ext) + WorkingSuffix
	}
	return WorkingPath(path)
}
