package cuast

// MacroDef records an object-like or function-like macro definition
// encountered while scanning directives. The body tokens stay anchored
// to their original byte offsets in the snapshot content so matchers
// can rewrite individual body tokens in place.
type MacroDef struct {
	// Name is the macro name as written.
	Name string

	// NameRange spans the macro name in the #define line.
	NameRange SourceRange

	// Params holds parameter names for function-like macros, in order.
	Params []string

	// FunctionLike is true when the definition carries a parameter list,
	// even an empty one.
	FunctionLike bool

	// Body holds the replacement-list tokens, anchored to the snapshot.
	// Trivia tokens are excluded.
	Body []Token

	// Range spans the whole directive, from '#' to end of the last
	// continuation line.
	Range SourceRange
}

// IsParam reports whether name is one of the macro's parameters.
func (m MacroDef) IsParam(name string) bool {
	for _, p := range m.Params {
		if p == name {
			return true
		}
	}
	return false
}

// IncludeDirective records an #include line.
type IncludeDirective struct {
	// FileName is the included path without delimiters.
	FileName string

	// Angled is true for <...> includes and false for "..." includes.
	Angled bool

	// FileRange spans the written file name including its delimiters,
	// so a replacement supplies its own brackets or quotes.
	FileRange SourceRange

	// Range spans the whole directive line.
	Range SourceRange
}
