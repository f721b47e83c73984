package translate

import (
	"context"

	"github.com/yaklabco/gohipify/pkg/cuast"
)

// Parser parses CUDA source content into a FileSnapshot for one
// compilation view.
//
// The translate package defines this interface to follow the gobible
// principle of defining interfaces in the consumer package.
// Implementations (e.g., parser/cuparse) provide the concrete parsing
// logic.
//
// Implementations must be:
//   - deterministic for a given (path, content, view) tuple,
//   - safe for concurrent use by multiple goroutines, if documented as such,
//   - side-effect free (no I/O, no global state mutation).
type Parser interface {
	// Parse converts raw CUDA source bytes into a fully-populated FileSnapshot.
	//
	// Parameters:
	//   - ctx: context for cancellation and timeout propagation.
	//   - path: logical file path (for diagnostics; must not be used for I/O).
	//   - content: raw source bytes (must not be mutated by the implementation).
	//   - view: the compilation view to evaluate conditional directives under.
	//
	// Returns:
	//   - On success: a fully-populated FileSnapshot with valid tokens and tree.
	//   - On error: nil and a descriptive error; no partial snapshot is returned.
	//
	// The returned FileSnapshot must satisfy:
	//   - snapshot.Path == path
	//   - bytes.Equal(snapshot.Content, content)
	//   - snapshot.View == view
	//   - cuast.ValidateTokens(snapshot.Tokens, len(snapshot.Content)) == true
	//   - snapshot.Root != nil && snapshot.Root.Kind == cuast.NodeTranslationUnit
	//   - All nodes have node.File == snapshot
	Parse(ctx context.Context, path string, content []byte, view cuast.View) (*cuast.FileSnapshot, error)
}
