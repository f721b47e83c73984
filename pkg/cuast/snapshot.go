// Package cuast provides the parsed representation of CUDA source files
// for gohipify. It defines a lossless, immutable view of a source file
// including:
// - FileSnapshot: the complete file representation under one compilation view
// - Token stream: every byte classified
// - Structural nodes: declarations and expressions referencing token spans
// - Preprocessor records: macro definitions and include directives
package cuast

// FileSnapshot is an immutable, lossless view of a source file parsed
// under one compilation view. It holds the raw content, line metadata,
// token stream, structural tree, and preprocessor records. All ranges
// and token offsets index into Content.
type FileSnapshot struct {
	// Path is the file path (may be empty for in-memory content).
	Path string

	// Content is the full file bytes.
	Content []byte

	// Lines contains metadata for each line in the file.
	Lines []LineInfo

	// Tokens is the full token stream covering every byte, including
	// regions suppressed by conditional compilation.
	Tokens []Token

	// Root is the structural tree root (TranslationUnit). Only live
	// regions contribute nodes.
	Root *Node

	// View is the compilation view this snapshot was parsed under.
	View View

	// Macros holds the #define directives seen in live regions,
	// in source order.
	Macros []MacroDef

	// Includes holds the #include directives seen in live regions,
	// in source order.
	Includes []IncludeDirective

	// Suppressed holds the byte ranges excluded by conditional
	// compilation under this view, in source order.
	Suppressed []SourceRange

	// FuncDecls indexes function declarations by name. When a function
	// is declared more than once the most recent declaration wins, which
	// is the one in scope at a call site further down the file.
	FuncDecls map[string]*Node
}

// LineInfo holds metadata for a single line in a file.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where newline characters begin.
	// For lines without a trailing newline (e.g., last line), this equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just after the newline (or end of file).
	EndOffset int
}

// NewFileSnapshot creates a new FileSnapshot from content.
// It builds the line index but does not tokenize or parse (that requires a Parser).
func NewFileSnapshot(path string, content []byte, view View) *FileSnapshot {
	return &FileSnapshot{
		Path:    path,
		Content: content,
		Lines:   BuildLines(content),
		View:    view,
		Tokens:  nil,
		Root:    nil,
	}
}

// TokenText returns the source text of the token at the given index.
func (s *FileSnapshot) TokenText(i int) []byte {
	if i < 0 || i >= len(s.Tokens) {
		return nil
	}
	return s.Tokens[i].Text(s.Content)
}

// InSuppressedRegion reports whether the given offset falls inside a
// region excluded by conditional compilation under this view.
func (s *FileSnapshot) InSuppressedRegion(offset int) bool {
	for _, r := range s.Suppressed {
		if r.Contains(offset) {
			return true
		}
	}
	return false
}
