package calc

import (
	"strings"
	"unicode"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokString
	tokIdent
	tokOp
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

type lexer struct {
	input string
	pos   int
}

// multi-rune operators, longest first
var multiOps = []string{"**", "//"}

const singleOps = "+-*/%^(),[]{}:"

func newLexer(input string) *lexer {
	return &lexer{input: input}
}

func (l *lexer) next() (token, error) {
	for l.pos < len(l.input) && unicode.IsSpace(rune(l.input[l.pos])) {
		l.pos++
	}
	if l.pos >= len(l.input) {
		return token{kind: tokEOF, pos: l.pos}, nil
	}

	start := l.pos
	ch := l.input[l.pos]

	switch {
	case ch >= '0' && ch <= '9' || ch == '.' && l.peekDigit():
		return l.lexNumber()
	case ch == '\'' || ch == '"':
		return l.lexString(ch)
	case isIdentStart(ch):
		for l.pos < len(l.input) && isIdentPart(l.input[l.pos]) {
			l.pos++
		}
		return token{kind: tokIdent, text: l.input[start:l.pos], pos: start}, nil
	}

	for _, op := range multiOps {
		if strings.HasPrefix(l.input[l.pos:], op) {
			l.pos += len(op)
			return token{kind: tokOp, text: op, pos: start}, nil
		}
	}
	if strings.IndexByte(singleOps, ch) >= 0 {
		l.pos++
		return token{kind: tokOp, text: string(ch), pos: start}, nil
	}

	return token{}, errGeneral("unexpected character %q at position %d", string(ch), start)
}

func (l *lexer) peekDigit() bool {
	return l.pos+1 < len(l.input) && l.input[l.pos+1] >= '0' && l.input[l.pos+1] <= '9'
}

func (l *lexer) lexNumber() (token, error) {
	start := l.pos
	seenDot := false
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if ch >= '0' && ch <= '9' {
			l.pos++
			continue
		}
		if ch == '.' && !seenDot {
			seenDot = true
			l.pos++
			continue
		}
		// exponent part
		if (ch == 'e' || ch == 'E') && l.pos > start {
			next := l.pos + 1
			if next < len(l.input) && (l.input[next] == '+' || l.input[next] == '-') {
				next++
			}
			if next < len(l.input) && l.input[next] >= '0' && l.input[next] <= '9' {
				l.pos = next
				continue
			}
		}
		break
	}
	return token{kind: tokNumber, text: l.input[start:l.pos], pos: start}, nil
}

func (l *lexer) lexString(quote byte) (token, error) {
	start := l.pos
	l.pos++ // opening quote
	var sb strings.Builder
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if ch == quote {
			l.pos++
			return token{kind: tokString, text: sb.String(), pos: start}, nil
		}
		if ch == '\\' && l.pos+1 < len(l.input) {
			l.pos++
			ch = l.input[l.pos]
		}
		sb.WriteByte(ch)
		l.pos++
	}
	return token{}, errGeneral("unterminated string starting at position %d", start)
}

func isIdentStart(ch byte) bool {
	return ch == '_' || ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z'
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || ch >= '0' && ch <= '9'
}
