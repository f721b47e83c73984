package cuparse

import (
	"strconv"

	"github.com/yaklabco/gohipify/pkg/cuast"
)

// Notional value given to __CUDA_ARCH__ under the device view. Sources
// gate on arch thresholds ("#if __CUDA_ARCH__ >= 300"); any modern value
// keeps those regions live where a device compile would see them.
const deviceArchValue = 800

// ppResult is everything the directive scan learns about one file under
// one compilation view.
type ppResult struct {
	macros     []cuast.MacroDef
	includes   []cuast.IncludeDirective
	suppressed []cuast.SourceRange

	// directives spans every directive logical line regardless of
	// liveness. The structural parser skips tokens inside them.
	directives []cuast.SourceRange
}

// condFrame is one level of conditional-compilation nesting.
type condFrame struct {
	parentLive bool
	live       bool
	taken      bool
}

// scanDirectives walks the file line by line, evaluates conditional
// compilation under the view's predefined macros, and records macro
// definitions and include directives from live regions only.
func scanDirectives(snap *cuast.FileSnapshot) *ppResult {
	res := &ppResult{}

	defines := viewDefines(snap.View)
	var stack []condFrame
	live := func() bool {
		if len(stack) == 0 {
			return true
		}
		top := stack[len(stack)-1]
		return top.parentLive && top.live
	}

	// Cursor into the token stream, advanced monotonically as lines go by.
	tokCursor := 0

	suppStart := -1
	closeSuppressed := func(end int) {
		if suppStart >= 0 {
			res.suppressed = append(res.suppressed, cuast.SourceRange{
				StartOffset: suppStart,
				EndOffset:   end,
			})
			suppStart = -1
		}
	}

	for li := 0; li < len(snap.Lines); li++ {
		line := snap.Lines[li]

		first, ok := firstSolidToken(snap, &tokCursor, line)
		if !ok || !tokenIs(snap, first, "#") {
			// Ordinary line: suppressed when the current view excludes it.
			if !live() {
				if suppStart < 0 {
					suppStart = line.StartOffset
				}
			} else {
				closeSuppressed(line.StartOffset)
			}
			continue
		}

		// Directive logical line, including backslash continuations.
		lastLine := li
		for lastLine+1 < len(snap.Lines) && lineContinues(snap, lastLine) {
			lastLine++
		}
		dirRange := cuast.SourceRange{
			StartOffset: line.StartOffset,
			EndOffset:   snap.Lines[lastLine].EndOffset,
		}
		res.directives = append(res.directives, dirRange)
		closeSuppressed(line.StartOffset)

		toks := solidTokensIn(snap, dirRange)
		li = lastLine

		if len(toks) < 2 {
			continue
		}
		keyword := string(snap.Tokens[toks[1]].Text(snap.Content))
		args := toks[2:]

		switch keyword {
		case "define":
			if live() {
				if def, ok := parseDefine(snap, dirRange, args); ok {
					res.macros = append(res.macros, def)
					defines[def.Name] = macroValue(snap, def)
				}
			}
		case "undef":
			if live() && len(args) > 0 {
				delete(defines, string(snap.Tokens[args[0]].Text(snap.Content)))
			}
		case "include":
			if live() {
				if inc, ok := parseInclude(snap, dirRange, args); ok {
					res.includes = append(res.includes, inc)
				}
			}
		case "if":
			stack = append(stack, pushCond(live(), evalCondition(snap, args, defines)))
		case "ifdef":
			cond := len(args) > 0 && isDefined(snap, args[0], defines)
			stack = append(stack, pushCond(live(), cond))
		case "ifndef":
			cond := !(len(args) > 0 && isDefined(snap, args[0], defines))
			stack = append(stack, pushCond(live(), cond))
		case "elif":
			if len(stack) > 0 {
				top := &stack[len(stack)-1]
				if top.taken {
					top.live = false
				} else {
					top.live = evalCondition(snap, args, defines)
					top.taken = top.taken || top.live
				}
			}
		case "else":
			if len(stack) > 0 {
				top := &stack[len(stack)-1]
				top.live = !top.taken
				top.taken = true
			}
		case "endif":
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	closeSuppressed(len(snap.Content))
	return res
}

func pushCond(parentLive, cond bool) condFrame {
	return condFrame{parentLive: parentLive, live: cond, taken: cond}
}

// viewDefines returns the predefined macro environment for a view.
func viewDefines(view cuast.View) map[string]int64 {
	defines := map[string]int64{"__CUDACC__": 1}
	if view == cuast.ViewDevice {
		defines["__CUDA_ARCH__"] = deviceArchValue
	}
	return defines
}

// parseDefine builds a MacroDef from the tokens after "#define".
func parseDefine(snap *cuast.FileSnapshot, dirRange cuast.SourceRange, args []int) (cuast.MacroDef, bool) {
	if len(args) == 0 || snap.Tokens[args[0]].Kind != cuast.TokIdent {
		return cuast.MacroDef{}, false
	}

	nameTok := snap.Tokens[args[0]]
	def := cuast.MacroDef{
		Name:      string(nameTok.Text(snap.Content)),
		NameRange: nameTok.Range(),
		Range:     dirRange,
	}

	bodyFrom := 1

	// Function-like only when '(' touches the macro name.
	if len(args) > 1 && tokenIs(snap, args[1], "(") &&
		snap.Tokens[args[1]].StartOffset == nameTok.EndOffset {
		def.FunctionLike = true
		i := 2
		for i < len(args) && !tokenIs(snap, args[i], ")") {
			if snap.Tokens[args[i]].Kind == cuast.TokIdent {
				def.Params = append(def.Params, string(snap.Tokens[args[i]].Text(snap.Content)))
			}
			i++
		}
		bodyFrom = i + 1
	}

	for _, ti := range args[bodyFrom:] {
		// Continuation backslashes are line glue, not body tokens.
		if tokenIs(snap, ti, "\\") {
			continue
		}
		def.Body = append(def.Body, snap.Tokens[ti])
	}

	return def, true
}

// macroValue resolves a macro body to its numeric value for conditional
// evaluation: a single numeric token counts as that number, anything
// else counts as 1 (defined).
func macroValue(snap *cuast.FileSnapshot, def cuast.MacroDef) int64 {
	if len(def.Body) == 1 && def.Body[0].Kind == cuast.TokNumber {
		if v, err := strconv.ParseInt(string(def.Body[0].Text(snap.Content)), 0, 64); err == nil {
			return v
		}
	}
	return 1
}

// parseInclude builds an IncludeDirective from the tokens after "#include".
func parseInclude(snap *cuast.FileSnapshot, dirRange cuast.SourceRange, args []int) (cuast.IncludeDirective, bool) {
	if len(args) == 0 {
		return cuast.IncludeDirective{}, false
	}

	inc := cuast.IncludeDirective{Range: dirRange}

	// Quoted form lexes as a single string token.
	if snap.Tokens[args[0]].Kind == cuast.TokString {
		tok := snap.Tokens[args[0]]
		text := tok.Text(snap.Content)
		if len(text) < 2 {
			return cuast.IncludeDirective{}, false
		}
		inc.FileName = string(text[1 : len(text)-1])
		inc.FileRange = tok.Range()
		return inc, true
	}

	// Angled form: everything between '<' and '>' on the line.
	if !tokenIs(snap, args[0], "<") {
		return cuast.IncludeDirective{}, false
	}
	for i := 1; i < len(args); i++ {
		if tokenIs(snap, args[i], ">") {
			open := snap.Tokens[args[0]]
			closing := snap.Tokens[args[i]]
			inc.Angled = true
			inc.FileRange = cuast.SourceRange{
				StartOffset: open.StartOffset,
				EndOffset:   closing.EndOffset,
			}
			inc.FileName = string(snap.Content[open.EndOffset:closing.StartOffset])
			return inc, true
		}
	}
	return cuast.IncludeDirective{}, false
}

// isDefined reports whether the identifier token is a defined macro.
func isDefined(snap *cuast.FileSnapshot, tokIdx int, defines map[string]int64) bool {
	_, ok := defines[string(snap.Tokens[tokIdx].Text(snap.Content))]
	return ok
}

// firstSolidToken advances the cursor to the first non-trivia token on
// the given line. Returns (tokenIndex, true) when the line has one.
func firstSolidToken(snap *cuast.FileSnapshot, cursor *int, line cuast.LineInfo) (int, bool) {
	for *cursor < len(snap.Tokens) && snap.Tokens[*cursor].EndOffset <= line.StartOffset {
		*cursor++
	}
	for i := *cursor; i < len(snap.Tokens) && snap.Tokens[i].StartOffset < line.EndOffset; i++ {
		if !snap.Tokens[i].IsTrivia() {
			return i, true
		}
	}
	return 0, false
}

// lineContinues reports whether the line's last non-whitespace byte is a
// backslash, splicing it with the next line.
func lineContinues(snap *cuast.FileSnapshot, lineIdx int) bool {
	line := snap.Lines[lineIdx]
	for i := line.NewlineStart - 1; i >= line.StartOffset; i-- {
		c := snap.Content[i]
		if c == ' ' || c == '\t' {
			continue
		}
		return c == '\\'
	}
	return false
}

// solidTokensIn returns indices of the non-trivia tokens inside r,
// in order.
func solidTokensIn(snap *cuast.FileSnapshot, r cuast.SourceRange) []int {
	var out []int
	for i, tok := range snap.Tokens {
		if tok.EndOffset <= r.StartOffset {
			continue
		}
		if tok.StartOffset >= r.EndOffset {
			break
		}
		if !tok.IsTrivia() {
			out = append(out, i)
		}
	}
	return out
}

// tokenIs reports whether the token at index i spells exactly text.
func tokenIs(snap *cuast.FileSnapshot, i int, text string) bool {
	return string(snap.Tokens[i].Text(snap.Content)) == text
}
