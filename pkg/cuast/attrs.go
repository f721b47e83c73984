package cuast

// DeclAttrs holds attributes for declaration nodes.
type DeclAttrs struct {
	// Name is the declared name.
	Name string

	// NameRange spans the declared name in the source.
	NameRange SourceRange

	// TypeName is the written type for parameter and variable declarations,
	// without qualifiers or declarator punctuation. Empty for functions.
	TypeName string

	// TypeRange spans the written type name.
	TypeRange SourceRange

	// ParamsRange spans the declared parameter list text of a function,
	// from the first byte of the first parameter to the last byte of the
	// last parameter, excluding the parentheses. Zero when the function
	// declares no parameters.
	ParamsRange SourceRange

	// IsKernel is true for functions declared __global__.
	IsKernel bool

	// IsDefinition is true when a function declaration carries a body.
	IsDefinition bool
}

// ConfigArg is one execution-configuration slot of a kernel launch.
// The parser always materializes four slots: grid, block, shared-memory
// size, and stream. Slots not written in the source are marked elided.
type ConfigArg struct {
	// Range spans the written argument expression. Zero when elided.
	Range SourceRange

	// Elided is true when the slot was not written in the source and
	// takes its default value.
	Elided bool
}

// ExprAttrs holds attributes for expression nodes.
type ExprAttrs struct {
	// Callee is the called name for NodeCallExpr and NodeLaunchExpr.
	Callee string

	// CalleeRange spans the written callee name.
	CalleeRange SourceRange

	// Args holds the spans of the ordinary arguments of a call or launch,
	// in source order.
	Args []SourceRange

	// Config holds the four execution-configuration slots of a launch.
	Config []ConfigArg

	// Base and Field name the two sides of a NodeMemberExpr.
	Base  string
	Field string

	// BaseRange and FieldRange span the written base and field names.
	BaseRange  SourceRange
	FieldRange SourceRange

	// Name is the referenced identifier for NodeIdentRef.
	Name string
}

// OriginKind classifies where a node's text was written.
type OriginKind uint8

const (
	// OriginFile means plain file text.
	OriginFile OriginKind = iota

	// OriginMacroArg means the text appears inside the argument list of a
	// macro invocation. The spelled location is still a file offset.
	OriginMacroArg
)

// String returns a human-readable name for the origin kind.
func (k OriginKind) String() string {
	switch k {
	case OriginFile:
		return "file"
	case OriginMacroArg:
		return "macro-arg"
	default:
		return "unknown"
	}
}

// MacroOrigin records the macro context a node was written in.
type MacroOrigin struct {
	Kind OriginKind

	// MacroName is the invoked macro for OriginMacroArg.
	MacroName string
}

// NewDeclAttrs creates a new DeclAttrs with default values.
func NewDeclAttrs() *DeclAttrs {
	return &DeclAttrs{}
}

// NewExprAttrs creates a new ExprAttrs with default values.
func NewExprAttrs() *ExprAttrs {
	return &ExprAttrs{}
}

// WithName sets the declared name and returns the DeclAttrs for chaining.
func (a *DeclAttrs) WithName(name string, r SourceRange) *DeclAttrs {
	a.Name = name
	a.NameRange = r
	return a
}

// WithType sets the written type and returns the DeclAttrs for chaining.
func (a *DeclAttrs) WithType(typeName string, r SourceRange) *DeclAttrs {
	a.TypeName = typeName
	a.TypeRange = r
	return a
}

// WithCallee sets the callee name and returns the ExprAttrs for chaining.
func (a *ExprAttrs) WithCallee(callee string, r SourceRange) *ExprAttrs {
	a.Callee = callee
	a.CalleeRange = r
	return a
}

// WithMember sets the base and field names and returns the ExprAttrs for chaining.
func (a *ExprAttrs) WithMember(base string, baseRange SourceRange, field string, fieldRange SourceRange) *ExprAttrs {
	a.Base = base
	a.BaseRange = baseRange
	a.Field = field
	a.FieldRange = fieldRange
	return a
}
