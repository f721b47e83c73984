package cuparse

import (
	"github.com/yaklabco/gohipify/pkg/cuast"
)

// builtinBases are the CUDA coordinate objects whose member accesses the
// translator flattens to single identifiers.
var builtinBases = map[string]bool{
	"threadIdx": true,
	"blockIdx":  true,
	"blockDim":  true,
	"gridDim":   true,
}

// statement keywords that must never be mistaken for type names in the
// declaration heuristics.
var stmtKeywords = map[string]bool{
	"return": true, "if": true, "else": true, "while": true, "for": true,
	"do": true, "switch": true, "case": true, "goto": true, "break": true,
	"continue": true, "sizeof": true, "new": true, "delete": true,
	"typedef": true, "using": true, "namespace": true, "template": true,
}

// structParser builds the node tree over the significant tokens of one
// snapshot: non-trivia tokens outside suppressed regions and outside
// preprocessor directives.
type structParser struct {
	snap *cuast.FileSnapshot

	// sig holds indices into snap.Tokens, in order.
	sig []int

	// fnMacros names the function-like macros defined in this file. An
	// invocation of one marks the nodes inside its argument list with a
	// macro-argument origin.
	fnMacros map[string]bool
}

// buildTree parses the snapshot's structure. The snapshot must already
// carry Tokens, Suppressed ranges, and Macros.
func buildTree(snap *cuast.FileSnapshot, directives []cuast.SourceRange) *cuast.Node {
	p := &structParser{
		snap:     snap,
		fnMacros: make(map[string]bool),
	}
	for _, m := range snap.Macros {
		if m.FunctionLike {
			p.fnMacros[m.Name] = true
		}
	}
	p.collectSignificant(directives)

	root := cuast.NewTranslationUnit()
	if len(p.sig) > 0 {
		cuast.SetTokenRange(root, p.sig[0], p.sig[len(p.sig)-1])
	}
	p.scanRange(root, 0, len(p.sig), nil, true)
	cuast.SetFile(root, snap)
	return root
}

// collectSignificant selects the tokens the structural parse sees.
func (p *structParser) collectSignificant(directives []cuast.SourceRange) {
	skip := make([]cuast.SourceRange, 0, len(p.snap.Suppressed)+len(directives))
	skip = append(skip, p.snap.Suppressed...)
	skip = append(skip, directives...)

	for i, tok := range p.snap.Tokens {
		if tok.IsTrivia() {
			continue
		}
		skipped := false
		for _, r := range skip {
			if tok.StartOffset >= r.StartOffset && tok.EndOffset <= r.EndOffset {
				skipped = true
				break
			}
		}
		if !skipped {
			p.sig = append(p.sig, i)
		}
	}
}

func (p *structParser) tok(i int) cuast.Token {
	return p.snap.Tokens[p.sig[i]]
}

func (p *structParser) text(i int) string {
	return string(p.tok(i).Text(p.snap.Content))
}

func (p *structParser) is(i int, text string) bool {
	return i >= 0 && i < len(p.sig) && p.text(i) == text
}

func (p *structParser) kind(i int) cuast.TokenKind {
	if i < 0 || i >= len(p.sig) {
		return cuast.TokOther
	}
	return p.tok(i).Kind
}

// spanOf returns the byte range covering significant tokens [first, last].
func (p *structParser) spanOf(first, last int) cuast.SourceRange {
	return cuast.SourceRange{
		StartOffset: p.tok(first).StartOffset,
		EndOffset:   p.tok(last).EndOffset,
	}
}

// scanRange walks sig[lo:hi) and attaches the recognized nodes to
// parent. topLevel enables function-declaration recognition, which only
// applies outside function bodies.
func (p *structParser) scanRange(parent *cuast.Node, lo, hi int, origin *cuast.MacroOrigin, topLevel bool) {
	stmtStart := lo
	i := lo
	for i < hi {
		switch {
		case p.kind(i) == cuast.TokIdent:
			next := p.parseIdent(parent, i, hi, stmtStart, origin, topLevel)
			// A function definition consumes its own terminator.
			if next > i+1 && next-1 < hi && (p.is(next-1, "}") || p.is(next-1, ";")) {
				stmtStart = next
			}
			i = next

		case p.kind(i) == cuast.TokString:
			lit := p.newNode(cuast.NodeStringLit, i, i, origin)
			cuast.AppendChild(parent, lit)
			i++

		default:
			if p.is(i, ";") || p.is(i, "{") || p.is(i, "}") {
				stmtStart = i + 1
			}
			i++
		}
	}
}

// parseIdent dispatches on what follows an identifier and returns the
// index to resume scanning at.
func (p *structParser) parseIdent(parent *cuast.Node, i, hi, stmtStart int, origin *cuast.MacroOrigin, topLevel bool) int {
	// Builtin coordinate access: base '.' field with the dot adjacent.
	if builtinBases[p.text(i)] && i+2 < hi && p.is(i+1, ".") && p.kind(i+2) == cuast.TokIdent {
		member := p.newNode(cuast.NodeMemberExpr, i, i+2, origin)
		member.Expr = cuast.NewExprAttrs().
			WithMember(p.text(i), p.tok(i).Range(), p.text(i+2), p.tok(i+2).Range())
		cuast.AppendChild(parent, member)
		return i + 3
	}

	// Kernel launch: callee '<<<' config '>>>' '(' args ')'.
	if i+1 < hi && p.kind(i+1) == cuast.TokLaunchOpen {
		if next, ok := p.parseLaunch(parent, i, hi, origin); ok {
			return next
		}
	}

	// Call or function declaration: callee '(' ... ')'. Control-flow
	// keywords take parenthesized conditions that are not calls.
	if i+1 < hi && p.is(i+1, "(") && !stmtKeywords[p.text(i)] {
		if topLevel && p.looksLikeFunctionDecl(i, hi, stmtStart) {
			if next, ok := p.parseFunctionDecl(parent, i, hi, stmtStart); ok {
				return next
			}
		}
		if next, ok := p.parseCall(parent, i, hi, origin); ok {
			return next
		}
	}

	// Variable declaration: type [*&]* name ('='|';'|','|'[' ...).
	if next, ok := p.parseVarDecl(parent, i, hi, stmtStart, origin); ok {
		return next
	}

	// Plain identifier reference.
	ref := p.newNode(cuast.NodeIdentRef, i, i, origin)
	ref.Expr = &cuast.ExprAttrs{Name: p.text(i)}
	cuast.AppendChild(parent, ref)
	return i + 1
}

// newNode creates a node spanning sig[first..last] with the given origin.
func (p *structParser) newNode(kind cuast.NodeKind, first, last int, origin *cuast.MacroOrigin) *cuast.Node {
	n := cuast.NewNode(kind)
	cuast.SetTokenRange(n, p.sig[first], p.sig[last])
	n.Origin = origin
	return n
}

// findMatch returns the index of the punctuation matching open at
// sig[openIdx], scanning no further than hi. Both parentheses and
// brackets nest.
func (p *structParser) findMatch(openIdx, hi int, open, closing string) (int, bool) {
	depth := 0
	for i := openIdx; i < hi; i++ {
		switch p.text(i) {
		case open:
			depth++
		case closing:
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// splitTopLevel splits sig[lo:hi) into comma-separated segments at
// nesting depth zero. Empty segments are dropped.
func (p *structParser) splitTopLevel(lo, hi int) [][2]int {
	var segs [][2]int
	depth := 0
	start := lo
	for i := lo; i < hi; i++ {
		switch p.text(i) {
		case "(", "[", "{":
			depth++
		case ")", "]", "}":
			depth--
		case ",":
			if depth == 0 {
				if i > start {
					segs = append(segs, [2]int{start, i})
				}
				start = i + 1
			}
		}
	}
	if hi > start {
		segs = append(segs, [2]int{start, hi})
	}
	return segs
}

// parseCall builds a NodeCallExpr for sig[i] '(' args ')'. The nodes
// inside the argument list are scanned recursively; when the callee is a
// function-like macro they carry a macro-argument origin, because their
// text is spelled at the invocation site while the expansion would place
// them elsewhere.
func (p *structParser) parseCall(parent *cuast.Node, i, hi int, origin *cuast.MacroOrigin) (int, bool) {
	closeIdx, ok := p.findMatch(i+1, hi, "(", ")")
	if !ok {
		return 0, false
	}

	call := p.newNode(cuast.NodeCallExpr, i, closeIdx, origin)
	attrs := cuast.NewExprAttrs().WithCallee(p.text(i), p.tok(i).Range())
	for _, seg := range p.splitTopLevel(i+2, closeIdx) {
		attrs.Args = append(attrs.Args, p.spanOf(seg[0], seg[1]-1))
	}
	call.Expr = attrs
	cuast.AppendChild(parent, call)

	childOrigin := origin
	if p.fnMacros[p.text(i)] {
		childOrigin = &cuast.MacroOrigin{Kind: cuast.OriginMacroArg, MacroName: p.text(i)}
	}
	p.scanRange(call, i+2, closeIdx, childOrigin, false)

	return closeIdx + 1, true
}

// parseLaunch builds a NodeLaunchExpr for
// sig[i] '<<<' config '>>>' '(' args ')'. All four configuration slots
// are materialized; slots not written are marked elided.
func (p *structParser) parseLaunch(parent *cuast.Node, i, hi int, origin *cuast.MacroOrigin) (int, bool) {
	closeCfg := -1
	depth := 0
	for j := i + 2; j < hi; j++ {
		switch {
		case p.is(j, "("):
			depth++
		case p.is(j, ")"):
			depth--
		case p.kind(j) == cuast.TokLaunchClose && depth == 0:
			closeCfg = j
		}
		if closeCfg >= 0 {
			break
		}
	}
	if closeCfg < 0 {
		return 0, false
	}

	if !p.is(closeCfg+1, "(") {
		return 0, false
	}
	closeArgs, ok := p.findMatch(closeCfg+1, hi, "(", ")")
	if !ok {
		return 0, false
	}

	launch := p.newNode(cuast.NodeLaunchExpr, i, closeArgs, origin)
	attrs := cuast.NewExprAttrs().WithCallee(p.text(i), p.tok(i).Range())

	cfgSegs := p.splitTopLevel(i+2, closeCfg)
	attrs.Config = make([]cuast.ConfigArg, 4)
	for slot := range attrs.Config {
		if slot < len(cfgSegs) {
			attrs.Config[slot] = cuast.ConfigArg{
				Range: p.spanOf(cfgSegs[slot][0], cfgSegs[slot][1]-1),
			}
		} else {
			attrs.Config[slot] = cuast.ConfigArg{Elided: true}
		}
	}

	for _, seg := range p.splitTopLevel(closeCfg+2, closeArgs) {
		attrs.Args = append(attrs.Args, p.spanOf(seg[0], seg[1]-1))
	}
	launch.Expr = attrs
	cuast.AppendChild(parent, launch)

	p.scanRange(launch, i+2, closeCfg, origin, false)
	p.scanRange(launch, closeCfg+2, closeArgs, origin, false)

	return closeArgs + 1, true
}

// looksLikeFunctionDecl reports whether the identifier at i, which is
// followed by '(', reads as a function declarator: at least one type
// token precedes it in the current statement and the parameter list is
// followed by a body or a semicolon.
func (p *structParser) looksLikeFunctionDecl(i, hi, stmtStart int) bool {
	if i == stmtStart {
		return false
	}

	// Preceding tokens must read as a declaration specifier sequence.
	for j := stmtStart; j < i; j++ {
		switch {
		case p.kind(j) == cuast.TokIdent && !stmtKeywords[p.text(j)]:
		case p.is(j, "*") || p.is(j, "&"):
		default:
			return false
		}
	}

	closeIdx, ok := p.findMatch(i+1, hi, "(", ")")
	if !ok {
		return false
	}
	return p.is(closeIdx+1, "{") || p.is(closeIdx+1, ";")
}

// parseFunctionDecl builds a NodeFunctionDecl with one NodeParamDecl per
// parameter and indexes it in the snapshot's function table. The most
// recent declaration of a name wins the index, matching what resolution
// at a later call site would see.
func (p *structParser) parseFunctionDecl(parent *cuast.Node, i, hi, stmtStart int) (int, bool) {
	closeIdx, ok := p.findMatch(i+1, hi, "(", ")")
	if !ok {
		return 0, false
	}

	name := p.text(i)
	fn := cuast.NewNode(cuast.NodeFunctionDecl)
	attrs := cuast.NewDeclAttrs().WithName(name, p.tok(i).Range())

	for j := stmtStart; j < i; j++ {
		if p.text(j) == "__global__" {
			attrs.IsKernel = true
		}
	}

	paramSegs := p.splitTopLevel(i+2, closeIdx)
	// "void" as the whole parameter list declares no parameters.
	if len(paramSegs) == 1 && paramSegs[0][1] == paramSegs[0][0]+1 && p.is(paramSegs[0][0], "void") {
		paramSegs = nil
	}
	if len(paramSegs) > 0 {
		first := paramSegs[0][0]
		last := paramSegs[len(paramSegs)-1][1] - 1
		attrs.ParamsRange = p.spanOf(first, last)
	}

	end := closeIdx
	if p.is(closeIdx+1, "{") {
		attrs.IsDefinition = true
		bodyClose, ok := p.findMatch(closeIdx+1, len(p.sig), "{", "}")
		if ok {
			end = bodyClose
		} else {
			end = len(p.sig) - 1
		}
	} else if p.is(closeIdx+1, ";") {
		end = closeIdx + 1
	}

	cuast.SetTokenRange(fn, p.sig[stmtStart], p.sig[end])
	fn.Decl = attrs
	cuast.AppendChild(parent, fn)

	for _, seg := range paramSegs {
		p.addParamDecl(fn, seg[0], seg[1])
	}

	if attrs.IsDefinition && end > closeIdx+1 {
		p.scanRange(fn, closeIdx+2, end, nil, false)
	}

	if p.snap.FuncDecls == nil {
		p.snap.FuncDecls = make(map[string]*cuast.Node)
	}
	p.snap.FuncDecls[name] = fn

	return end + 1, true
}

// addParamDecl builds a NodeParamDecl for one parameter segment. The
// last identifier is the parameter name; the identifier before it is
// the written type.
func (p *structParser) addParamDecl(fn *cuast.Node, lo, hi int) {
	var idents []int
	for j := lo; j < hi; j++ {
		if p.kind(j) == cuast.TokIdent {
			idents = append(idents, j)
		}
	}
	if len(idents) == 0 {
		return
	}

	param := p.newNode(cuast.NodeParamDecl, lo, hi-1, nil)
	attrs := cuast.NewDeclAttrs()
	switch len(idents) {
	case 1:
		// Unnamed parameter: the only identifier is the type.
		attrs.WithType(p.text(idents[0]), p.tok(idents[0]).Range())
	default:
		nameIdx := idents[len(idents)-1]
		typeIdx := idents[len(idents)-2]
		attrs.WithName(p.text(nameIdx), p.tok(nameIdx).Range())
		attrs.WithType(p.text(typeIdx), p.tok(typeIdx).Range())
	}
	param.Decl = attrs
	cuast.AppendChild(fn, param)
}

// parseVarDecl recognizes a local or global variable declaration whose
// written type is a single identifier, possibly with pointer/reference
// declarators: "cudaError_t err = ...", "cudaStream_t s;".
func (p *structParser) parseVarDecl(parent *cuast.Node, i, hi, stmtStart int, origin *cuast.MacroOrigin) (int, bool) {
	if i != stmtStart || stmtKeywords[p.text(i)] {
		return 0, false
	}

	j := i + 1
	for j < hi && (p.is(j, "*") || p.is(j, "&")) {
		j++
	}
	if j >= hi || p.kind(j) != cuast.TokIdent {
		return 0, false
	}
	after := j + 1
	if after >= hi {
		return 0, false
	}
	switch p.text(after) {
	case "=", ";", ",", "[":
	default:
		return 0, false
	}

	decl := p.newNode(cuast.NodeVarDecl, i, j, origin)
	decl.Decl = cuast.NewDeclAttrs().
		WithName(p.text(j), p.tok(j).Range()).
		WithType(p.text(i), p.tok(i).Range())
	cuast.AppendChild(parent, decl)

	return after, true
}
