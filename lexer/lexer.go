// Package lexer implements the hand-written scanner that turns
// Verilog source text into a stream of token.Token values, honoring
// the structural subset's numeric-literal grammar, identifier rules,
// and comment conventions (spec §4.2).
//
// Next is called on demand by the parser; the scanner keeps no
// lookahead of its own and needs none — the grammar in §4.3 is
// context-free at the token level, so `[`, `:`, `]` are always
// returned as plain punctuation and the parser alone decides what a
// bracketed integer means.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/RazKarapetyan/Parser-Verilog/source"
	"github.com/RazKarapetyan/Parser-Verilog/token"
)

// Error codes for the lexer's two failure kinds. Next does not return
// them; both failures are reported as token.LexError tokens.
const (
	// WrongCharError indicates a byte that starts no valid lexeme.
	WrongCharError = 101 + iota
	// UnterminatedCommentError indicates a /* that is never closed.
	UnterminatedCommentError
)

// Lexer scans one Source, character by character, producing tokens on
// demand. Not safe for concurrent use; a Lexer is owned by exactly one
// Parser for the duration of one parse.
type Lexer struct {
	src  *source.Source
	text []byte
	pos  int
}

// New creates a Lexer over src.
func New(src *source.Source) *Lexer {
	return &Lexer{src: src, text: src.Content()}
}

func (l *Lexer) eof() bool { return l.pos >= len(l.text) }

func (l *Lexer) at(off int) byte {
	if l.pos+off >= len(l.text) {
		return 0
	}
	return l.text[l.pos+off]
}

func (l *Lexer) tokenAt(kind token.Kind, text string, startLine, startCol int) token.Token {
	return token.New(kind, text, l.src.Name(), startLine, startCol)
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentCont(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9') || c == '$'
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\v' || c == '\f'
}

// Next scans and returns the next token, advancing past it. Next
// always returns a token; on an unrecognized character or an
// unterminated block comment it returns a token.LexError token instead
// of failing, and resumes scanning at the next whitespace boundary
// (spec §4.2's "best-effort recovery").
func (l *Lexer) Next() token.Token {
	for {
		unterminated, commentLine, commentCol := l.skipSpaceAndComments()
		if unterminated {
			return l.tokenAt(token.LexError, "/*", commentLine, commentCol)
		}
		if l.eof() {
			line, col := l.src.LineCol(l.pos)
			return l.tokenAt(token.EOF, "", line, col)
		}

		startLine, startCol := l.src.LineCol(l.pos)
		c := l.at(0)

		switch {
		case c == '\\':
			return l.scanEscapedIdent(startLine, startCol)
		case isIdentStart(c):
			return l.scanIdentOrKeyword(startLine, startCol)
		case isDigit(c):
			return l.scanNumber(startLine, startCol)
		case c == '\'':
			return l.scanBasedNumber(startLine, startCol, 0, "")
		}

		if kind, ok := punctKind(c); ok {
			l.pos++
			return l.tokenAt(kind, string(c), startLine, startCol)
		}

		return l.scanLexError(startLine, startCol)
	}
}

func punctKind(c byte) (token.Kind, bool) {
	switch c {
	case '(':
		return token.LParen, true
	case ')':
		return token.RParen, true
	case '[':
		return token.LBracket, true
	case ']':
		return token.RBracket, true
	case '{':
		return token.LBrace, true
	case '}':
		return token.RBrace, true
	case ',':
		return token.Comma, true
	case ';':
		return token.Semi, true
	case ':':
		return token.Colon, true
	case '.':
		return token.Dot, true
	case '=':
		return token.Equals, true
	}
	return 0, false
}

// skipSpaceAndComments advances past whitespace and comments. If a
// block comment is never closed, it reports the comment's own start
// position and leaves the cursor at EOF; the caller turns that into a
// LexError token instead of a silent EOF (spec §4.2).
func (l *Lexer) skipSpaceAndComments() (unterminated bool, line, col int) {
	for !l.eof() {
		c := l.at(0)
		switch {
		case isSpace(c):
			l.pos++
		case c == '/' && l.at(1) == '/':
			for !l.eof() && l.at(0) != '\n' {
				l.pos++
			}
		case c == '/' && l.at(1) == '*':
			startLine, startCol := l.src.LineCol(l.pos)
			l.pos += 2
			closed := false
			for !l.eof() {
				if l.at(0) == '*' && l.at(1) == '/' {
					l.pos += 2
					closed = true
					break
				}
				l.pos++
			}
			if !closed {
				return true, startLine, startCol
			}
		default:
			return false, 0, 0
		}
	}
	return false, 0, 0
}

// scanLexError reports the byte or rune at the current position as
// unrecognized and skips to the next whitespace boundary.
func (l *Lexer) scanLexError(line, col int) token.Token {
	start := l.pos
	r, size := utf8.DecodeRune(l.text[l.pos:])
	if r == utf8.RuneError && size <= 1 {
		size = 1
	}
	l.pos += size
	for !l.eof() && !isSpace(l.at(0)) {
		l.pos++
	}
	return l.tokenAt(token.LexError, string(l.text[start:l.pos]), line, col)
}

// scanEscapedIdent consumes a `\...` identifier through the next
// whitespace boundary. The leading backslash and trailing whitespace
// are not part of the interned text.
func (l *Lexer) scanEscapedIdent(line, col int) token.Token {
	l.pos++ // skip backslash
	start := l.pos
	for !l.eof() && !isSpace(l.at(0)) {
		l.pos++
	}
	return l.tokenAt(token.EscapedIdent, string(l.text[start:l.pos]), line, col)
}

func (l *Lexer) scanIdentOrKeyword(line, col int) token.Token {
	start := l.pos
	l.pos++
	for !l.eof() && isIdentCont(l.at(0)) {
		l.pos++
	}
	text := string(l.text[start:l.pos])
	if kw, ok := token.Keywords[text]; ok {
		return l.tokenAt(kw, text, line, col)
	}
	return l.tokenAt(token.Ident, text, line, col)
}

// scanNumber handles every literal that starts with a digit: a plain
// unsized integer, a sized based literal (the leading digit run is the
// size), or a real/exponent literal.
func (l *Lexer) scanNumber(line, col int) token.Token {
	start := l.pos
	l.consumeDigitRun()

	if !l.eof() && l.at(0) == '\'' {
		return l.scanBasedNumber(line, col, l.pos-start, string(l.text[start:l.pos]))
	}

	isReal := false
	if !l.eof() && l.at(0) == '.' && isDigit(l.at(1)) {
		isReal = true
		l.pos++ // dot
		l.consumeDigitRun()
	}

	if !l.eof() && (l.at(0) == 'e' || l.at(0) == 'E') {
		save := l.pos
		l.pos++
		if !l.eof() && (l.at(0) == '+' || l.at(0) == '-') {
			l.pos++
		}
		if !l.eof() && isDigit(l.at(0)) {
			l.consumeDigitRun()
			return l.tokenAt(token.ExpNumber, string(l.text[start:l.pos]), line, col)
		}
		l.pos = save
	}

	if isReal {
		return l.tokenAt(token.RealNumber, string(l.text[start:l.pos]), line, col)
	}
	return l.tokenAt(token.IntNumber, string(l.text[start:l.pos]), line, col)
}

func (l *Lexer) consumeDigitRun() {
	for !l.eof() && (isDigit(l.at(0)) || l.at(0) == '_') {
		l.pos++
	}
}

// scanBasedNumber consumes `' [s] base digits`, having already
// consumed an optional leading size digit run (sizeText, sizeLen may
// be empty/0). The base character determines which digit alphabet is
// accepted; x/z/X/Z (four-state digits) and underscores are always
// permitted, matching Verilog's four-state literal grammar.
func (l *Lexer) scanBasedNumber(line, col, sizeLen int, sizeText string) token.Token {
	start := l.pos - sizeLen
	l.pos++ // the quote
	if !l.eof() && (l.at(0) == 's' || l.at(0) == 'S') {
		l.pos++
	}
	if l.eof() || !strings.ContainsRune("bBoOdDhH", rune(l.at(0))) {
		// Not a valid base character: this is a malformed literal.
		for !l.eof() && !isSpace(l.at(0)) {
			l.pos++
		}
		return l.tokenAt(token.LexError, sizeText+string(l.text[start+sizeLen:l.pos]), line, col)
	}
	base := l.at(0)
	l.pos++
	for !l.eof() && isBasedDigit(base, l.at(0)) {
		l.pos++
	}
	return l.tokenAt(token.BasedNumber, string(l.text[start:l.pos]), line, col)
}

func isBasedDigit(base, c byte) bool {
	if c == '_' || c == 'x' || c == 'X' || c == 'z' || c == 'Z' {
		return true
	}
	switch unicode.ToLower(rune(base)) {
	case 'b':
		return c == '0' || c == '1'
	case 'o':
		return c >= '0' && c <= '7'
	case 'd':
		return isDigit(c)
	case 'h':
		return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
	}
	return false
}
