// Package cuparse provides the CUDA source front end: a full-coverage
// lexer, a conditional-compilation-aware directive scanner, and a
// structural parser producing cuast trees.
package cuparse

import (
	"context"
	"errors"
	"fmt"

	"github.com/yaklabco/gohipify/pkg/cuast"
)

// Parser implements translate.Parser over raw CUDA source bytes.
type Parser struct{}

// New creates a new CUDA parser.
func New() *Parser {
	return &Parser{}
}

// Parse converts raw CUDA source bytes into a fully-populated
// FileSnapshot for one compilation view.
//
// The method:
//  1. Checks for context cancellation.
//  2. Builds a FileSnapshot shell with path, content, lines, and view.
//  3. Tokenizes the content.
//  4. Scans preprocessor directives, evaluating conditionals under the
//     view's predefined macros, and records macro definitions, include
//     directives, and suppressed regions.
//  5. Builds the structural tree over live, non-directive tokens.
//  6. Validates the token stream.
//
// Returns nil and an error if the token stream is inconsistent or the
// context is cancelled.
func (p *Parser) Parse(ctx context.Context, path string, content []byte, view cuast.View) (*cuast.FileSnapshot, error) {
	// Check for early cancellation.
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	// Create the snapshot shell.
	snapshot := &cuast.FileSnapshot{
		Path:    path,
		Content: copyContent(content),
		Lines:   cuast.BuildLines(content),
		View:    view,
	}

	// Tokenize content.
	snapshot.Tokens = Tokenize(snapshot.Content)

	// Check for cancellation after lexing; directive evaluation and the
	// structural walk both run over the full token stream.
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	// Evaluate preprocessor directives under this view.
	pp := scanDirectives(snapshot)
	snapshot.Macros = pp.macros
	snapshot.Includes = pp.includes
	snapshot.Suppressed = pp.suppressed

	// Build the structural tree over live tokens.
	snapshot.Root = buildTree(snapshot, pp.directives)

	// Validate tokens.
	if !cuast.ValidateTokens(snapshot.Tokens, len(snapshot.Content)) {
		return nil, errors.New("invalid token stream: tokens do not cover content")
	}

	return snapshot, nil
}

// copyContent creates a copy of the content slice to ensure immutability.
func copyContent(content []byte) []byte {
	if content == nil {
		return nil
	}
	cp := make([]byte, len(content))
	copy(cp, content)
	return cp
}
