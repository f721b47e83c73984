// Package langdetect provides language detection for source files.
// It uses go-enry plus CUDA-specific heuristics to decide whether a file
// is CUDA source worth translating, independent of its extension.
package langdetect

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Language constants for the detections the runner cares about.
const (
	langCUDA = "cuda"
	langCPP  = "c++"
	langC    = "c"
	langText = "text"
)

// cudaExtensions are the extensions conventionally holding CUDA source.
var cudaExtensions = map[string]bool{
	".cu":  true,
	".cuh": true,
}

// Detect returns the detected language for a file.
// Returns "text" if detection fails or confidence is low.
func Detect(path string, content []byte) string {
	// Strategy 1: CUDA extensions are authoritative.
	if cudaExtensions[strings.ToLower(filepath.Ext(path))] {
		return langCUDA
	}

	if len(content) == 0 {
		return langText
	}

	// Strategy 2: CUDA-specific markers beat the classifier. Headers and
	// C++ files with kernel code are CUDA regardless of extension.
	if HasCUDAMarkers(content) {
		return langCUDA
	}

	// Strategy 3: Use go-enry with the candidates we can act on.
	candidates := []string{"Cuda", "C", "C++", "Objective-C"}
	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return normalize(lang)
	}

	return langText
}

// IsCUDA reports whether a file should go through the translator.
func IsCUDA(path string, content []byte) bool {
	return Detect(path, content) == langCUDA
}

// HasCUDAMarkers reports whether content carries constructs only CUDA
// source has: execution-space qualifiers, triple-chevron launches, CUDA
// runtime headers, or runtime API calls.
func HasCUDAMarkers(content []byte) bool {
	if bytes.Contains(content, []byte("__global__")) ||
		bytes.Contains(content, []byte("__device__")) ||
		bytes.Contains(content, []byte("__constant__")) ||
		bytes.Contains(content, []byte("<<<")) {
		return true
	}
	if bytes.Contains(content, []byte("cuda_runtime")) ||
		bytes.Contains(content, []byte("__CUDACC__")) ||
		bytes.Contains(content, []byte("__CUDA_ARCH__")) {
		return true
	}
	// Runtime API calls: a cuda identifier followed by an upper-case
	// letter ("cudaMalloc", "cudaStreamCreate").
	idx := bytes.Index(content, []byte("cuda"))
	for idx >= 0 && idx+4 < len(content) {
		c := content[idx+4]
		if c >= 'A' && c <= 'Z' {
			return true
		}
		rest := content[idx+4:]
		next := bytes.Index(rest, []byte("cuda"))
		if next < 0 {
			break
		}
		idx += 4 + next
	}
	return false
}

// normalize converts go-enry language names to the lower-case tags the
// runner uses.
func normalize(lang string) string {
	switch lang {
	case "Cuda":
		return langCUDA
	case "C++":
		return langCPP
	case "C":
		return langC
	default:
		return strings.ToLower(lang)
	}
}
