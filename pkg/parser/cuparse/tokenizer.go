package cuparse

import "github.com/yaklabco/gohipify/pkg/cuast"

// Tokenize lexes content into a full-coverage token stream. Every byte of
// the input belongs to exactly one token, including comments, string
// bodies, and regions later suppressed by conditional compilation. The
// lexer is deliberately shallow: it classifies spellings, it does not
// expand macros or evaluate anything.
func Tokenize(content []byte) []cuast.Token {
	var tokens []cuast.Token
	pos := 0
	n := len(content)

	emit := func(kind cuast.TokenKind, end int) {
		tokens = append(tokens, cuast.Token{
			Kind:        kind,
			StartOffset: pos,
			EndOffset:   end,
		})
		pos = end
	}

	for pos < n {
		c := content[pos]

		switch {
		case c == '\n':
			emit(cuast.TokNewline, pos+1)

		case c == '\r':
			if pos+1 < n && content[pos+1] == '\n' {
				emit(cuast.TokNewline, pos+2)
			} else {
				emit(cuast.TokNewline, pos+1)
			}

		case c == ' ' || c == '\t' || c == '\v' || c == '\f':
			end := pos + 1
			for end < n && (content[end] == ' ' || content[end] == '\t' ||
				content[end] == '\v' || content[end] == '\f') {
				end++
			}
			emit(cuast.TokWhitespace, end)

		case c == '/' && pos+1 < n && content[pos+1] == '/':
			end := pos + 2
			for end < n && content[end] != '\n' {
				// A line comment continues past a backslash-newline.
				if content[end] == '\\' && end+1 < n && content[end+1] == '\n' {
					end++
				}
				end++
			}
			emit(cuast.TokComment, end)

		case c == '/' && pos+1 < n && content[pos+1] == '*':
			end := pos + 2
			for end+1 < n && !(content[end] == '*' && content[end+1] == '/') {
				end++
			}
			if end+1 < n {
				end += 2
			} else {
				end = n
			}
			emit(cuast.TokComment, end)

		case c == '"':
			emit(cuast.TokString, scanQuoted(content, pos, '"'))

		case c == '\'':
			emit(cuast.TokChar, scanQuoted(content, pos, '\''))

		case isDigit(c) || (c == '.' && pos+1 < n && isDigit(content[pos+1])):
			emit(cuast.TokNumber, scanNumber(content, pos))

		case isIdentStart(c):
			end := pos + 1
			for end < n && isIdentCont(content[end]) {
				end++
			}
			emit(cuast.TokIdent, end)

		case c == '<' && pos+2 < n && content[pos+1] == '<' && content[pos+2] == '<':
			emit(cuast.TokLaunchOpen, pos+3)

		case c == '>' && pos+2 < n && content[pos+1] == '>' && content[pos+2] == '>':
			emit(cuast.TokLaunchClose, pos+3)

		case isPunct(c):
			emit(cuast.TokPunct, pos+1)

		default:
			emit(cuast.TokOther, pos+1)
		}
	}

	return tokens
}

// scanQuoted scans a string or character literal starting at pos, where
// content[pos] is the opening quote. Backslash escapes are honored; an
// unterminated literal runs to the end of the line.
func scanQuoted(content []byte, pos int, quote byte) int {
	n := len(content)
	end := pos + 1
	for end < n {
		switch content[end] {
		case '\\':
			end += 2
			continue
		case quote:
			return end + 1
		case '\n':
			// Unterminated; stop at the newline so the token stream
			// keeps line structure intact.
			return end
		}
		end++
	}
	return n
}

// scanNumber scans a preprocessing number: digits, letters, dots, and
// sign characters directly after an exponent marker. This covers hex,
// float, and suffixed literals without interpreting them.
func scanNumber(content []byte, pos int) int {
	n := len(content)
	end := pos + 1
	for end < n {
		c := content[end]
		switch {
		case isDigit(c) || isIdentStart(c) || c == '.':
			end++
		case (c == '+' || c == '-') && isExponentMarker(content[end-1]):
			end++
		default:
			return end
		}
	}
	return n
}

func isExponentMarker(c byte) bool {
	return c == 'e' || c == 'E' || c == 'p' || c == 'P'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentCont(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isPunct(c byte) bool {
	switch c {
	case '!', '#', '%', '&', '(', ')', '*', '+', ',', '-', '.', '/',
		':', ';', '<', '=', '>', '?', '[', '\\', ']', '^', '{', '|', '}', '~':
		return true
	default:
		return false
	}
}
