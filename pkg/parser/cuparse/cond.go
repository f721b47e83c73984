package cuparse

import (
	"strconv"

	"github.com/yaklabco/gohipify/pkg/cuast"
)

// evalCondition evaluates the controlling expression of an #if or #elif
// directive against the current macro environment. Unknown identifiers
// evaluate to 0, as a real preprocessor would treat them. A condition
// the evaluator cannot parse is treated as live so that matching still
// sees the region in both views.
func evalCondition(snap *cuast.FileSnapshot, args []int, defines map[string]int64) bool {
	ev := &condEval{snap: snap, toks: args, defines: defines}
	v, ok := ev.orExpr()
	if !ok || ev.pos != len(ev.toks) {
		return true
	}
	return v != 0
}

// condEval is a recursive-descent evaluator over directive tokens.
type condEval struct {
	snap    *cuast.FileSnapshot
	toks    []int
	pos     int
	defines map[string]int64
}

func (e *condEval) peek() (string, cuast.TokenKind, bool) {
	if e.pos >= len(e.toks) {
		return "", 0, false
	}
	tok := e.snap.Tokens[e.toks[e.pos]]
	return string(tok.Text(e.snap.Content)), tok.Kind, true
}

func (e *condEval) accept(text string) bool {
	if s, _, ok := e.peek(); ok && s == text {
		e.pos++
		return true
	}
	return false
}

// acceptPair consumes a two-character operator lexed as two tokens.
func (e *condEval) acceptPair(first, second string) bool {
	if e.pos+1 >= len(e.toks) {
		return false
	}
	a := e.snap.Tokens[e.toks[e.pos]]
	b := e.snap.Tokens[e.toks[e.pos+1]]
	if string(a.Text(e.snap.Content)) != first || string(b.Text(e.snap.Content)) != second {
		return false
	}
	// Must touch to form one operator.
	if a.EndOffset != b.StartOffset {
		return false
	}
	e.pos += 2
	return true
}

func (e *condEval) orExpr() (int64, bool) {
	v, ok := e.andExpr()
	if !ok {
		return 0, false
	}
	for e.acceptPair("|", "|") {
		rhs, ok := e.andExpr()
		if !ok {
			return 0, false
		}
		v = boolVal(v != 0 || rhs != 0)
	}
	return v, true
}

func (e *condEval) andExpr() (int64, bool) {
	v, ok := e.cmpExpr()
	if !ok {
		return 0, false
	}
	for e.acceptPair("&", "&") {
		rhs, ok := e.cmpExpr()
		if !ok {
			return 0, false
		}
		v = boolVal(v != 0 && rhs != 0)
	}
	return v, true
}

func (e *condEval) cmpExpr() (int64, bool) {
	v, ok := e.unary()
	if !ok {
		return 0, false
	}

	for {
		var apply func(a, b int64) int64
		switch {
		case e.acceptPair("=", "="):
			apply = func(a, b int64) int64 { return boolVal(a == b) }
		case e.acceptPair("!", "="):
			apply = func(a, b int64) int64 { return boolVal(a != b) }
		case e.acceptPair("<", "="):
			apply = func(a, b int64) int64 { return boolVal(a <= b) }
		case e.acceptPair(">", "="):
			apply = func(a, b int64) int64 { return boolVal(a >= b) }
		case e.accept("<"):
			apply = func(a, b int64) int64 { return boolVal(a < b) }
		case e.accept(">"):
			apply = func(a, b int64) int64 { return boolVal(a > b) }
		default:
			return v, true
		}

		rhs, ok := e.unary()
		if !ok {
			return 0, false
		}
		v = apply(v, rhs)
	}
}

func (e *condEval) unary() (int64, bool) {
	if e.accept("!") {
		v, ok := e.unary()
		if !ok {
			return 0, false
		}
		return boolVal(v == 0), true
	}
	return e.primary()
}

func (e *condEval) primary() (int64, bool) {
	text, kind, ok := e.peek()
	if !ok {
		return 0, false
	}

	switch {
	case text == "(":
		e.pos++
		v, ok := e.orExpr()
		if !ok || !e.accept(")") {
			return 0, false
		}
		return v, true

	case text == "defined":
		e.pos++
		paren := e.accept("(")
		name, nkind, ok := e.peek()
		if !ok || nkind != cuast.TokIdent {
			return 0, false
		}
		e.pos++
		if paren && !e.accept(")") {
			return 0, false
		}
		_, defined := e.defines[name]
		return boolVal(defined), true

	case kind == cuast.TokNumber:
		e.pos++
		// Integer suffixes are legal in directive expressions.
		trimmed := trimIntSuffix(text)
		v, err := strconv.ParseInt(trimmed, 0, 64)
		if err != nil {
			return 0, false
		}
		return v, true

	case kind == cuast.TokIdent:
		e.pos++
		return e.defines[text], true

	default:
		return 0, false
	}
}

func trimIntSuffix(s string) string {
	for len(s) > 0 {
		switch s[len(s)-1] {
		case 'u', 'U', 'l', 'L':
			s = s[:len(s)-1]
		default:
			return s
		}
	}
	return s
}

func boolVal(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
