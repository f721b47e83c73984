package cuast

//go:generate stringer -type=NodeKind -trimprefix=Node

// NodeKind classifies the type of a structural node.
type NodeKind uint16

// Node kinds cover the constructs the translator matches on. The parser
// does not model full C++ syntax; it records only the shapes that carry
// identifiers worth rewriting.
const (
	NodeTranslationUnit NodeKind = iota

	// Declaration nodes.
	NodeFunctionDecl
	NodeParamDecl
	NodeVarDecl

	// Expression nodes.
	NodeCallExpr
	NodeLaunchExpr
	NodeMemberExpr
	NodeIdentRef
	NodeStringLit
)

// Node represents a single node in the parsed structure.
// Nodes form a tree with parent/child/sibling relationships and keep
// indices into the snapshot token stream rather than copies of text, so
// edits computed from a node stay anchored to exact byte offsets.
type Node struct {
	// Kind identifies what type of node this is.
	Kind NodeKind

	// Tree structure pointers.
	Parent     *Node
	FirstChild *Node
	LastChild  *Node
	Prev       *Node
	Next       *Node

	// Token span (indices into FileSnapshot.Tokens).
	// FirstToken <= LastToken for non-empty nodes.
	// Both are -1 for synthetic/degenerate nodes.
	FirstToken int
	LastToken  int

	// File is a back-reference to the containing FileSnapshot.
	File *FileSnapshot

	// Decl holds attributes for declaration nodes.
	Decl *DeclAttrs

	// Expr holds attributes for expression nodes.
	Expr *ExprAttrs

	// Origin records the macro context the node's text was written in.
	// Nil means plain file text.
	Origin *MacroOrigin
}

// IsDecl returns true if this is a declaration node.
func (n *Node) IsDecl() bool {
	switch n.Kind {
	case NodeFunctionDecl, NodeParamDecl, NodeVarDecl:
		return true
	default:
		return false
	}
}

// IsExpr returns true if this is an expression node.
func (n *Node) IsExpr() bool {
	switch n.Kind {
	case NodeCallExpr, NodeLaunchExpr, NodeMemberExpr, NodeIdentRef, NodeStringLit:
		return true
	default:
		return false
	}
}

// HasChildren returns true if this node has any children.
func (n *Node) HasChildren() bool {
	return n.FirstChild != nil
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	count := 0
	for child := n.FirstChild; child != nil; child = child.Next {
		count++
	}
	return count
}

// Children returns a slice of all direct children.
func (n *Node) Children() []*Node {
	var children []*Node
	for child := n.FirstChild; child != nil; child = child.Next {
		children = append(children, child)
	}
	return children
}

// InMacroArg returns true if the node's text was written inside a macro
// invocation's argument list. Such nodes still carry exact file offsets,
// because the argument text is spelled at the invocation site.
func (n *Node) InMacroArg() bool {
	return n.Origin != nil && n.Origin.Kind == OriginMacroArg
}
