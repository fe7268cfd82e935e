// Package scanner provides string-boundary-aware scanning of host source
// text. It encapsulates the tracking of double-quoted, WYSIWYG (backtick),
// character, and interpolated (i"...") literals plus escape sequences and
// comments, eliminating the need for every consumer to re-implement this
// logic.
package scanner

import "strings"

// closingKind tracks which type of literal delimiter was just closed.
type closingKind byte

const (
	noClosing       closingKind = iota
	closingDouble               // just closed a "..." string
	closingWysiwyg              // just closed a `...` string
	closingChar                 // just closed a '...' literal
	closingInterp               // just closed an i"..." literal
)

// CodeScanner iterates byte-by-byte over source text, tracking literal
// boundaries (double-quoted, WYSIWYG, character, interpolated) plus escape
// sequences and // and /* */ comments. Callers check InString() or
// InComment() instead of maintaining their own state flags.
//
// InString() returns true for the entire literal span including opening and
// closing quote delimiters (the i prefix of an interpolated literal is the
// byte before the span).
type CodeScanner struct {
	src       string
	pos       int
	line      int
	inDbl     bool
	inWys     bool
	inChr     bool
	inInterp  bool
	inLineCmt bool
	inBlkCmt  bool
	escaped   bool
	closing   closingKind // set when a closing delimiter is processed
	cmtClose  int         // position of the last comment-closing byte, or -1
}

// New creates a CodeScanner for the given source text.
// Call Next() to advance to the first byte.
func New(src string) *CodeScanner {
	return &CodeScanner{src: src, pos: -1, line: 1, cmtClose: -1}
}

// Next advances to the next byte, updating literal/escape/comment state.
// Returns the byte and true, or (0, false) at end of input.
func (s *CodeScanner) Next() (byte, bool) {
	s.closing = noClosing
	s.pos++
	if s.pos >= len(s.src) {
		return 0, false
	}
	ch := s.src[s.pos]
	if ch == '\n' {
		s.line++
		s.inLineCmt = false
	}

	if s.inLineCmt {
		return ch, true
	}
	if s.inBlkCmt {
		// The star that closes the comment must not be the opener's own star
		// (guards against /*/ closing immediately).
		if ch == '/' && s.src[s.pos-1] == '*' && s.pos-1 != s.cmtClose {
			s.inBlkCmt = false
			s.cmtClose = s.pos
		}
		return ch, true
	}
	if s.escaped {
		s.escaped = false
		return ch, true
	}
	if ch == '\\' && (s.inDbl || s.inChr || s.inInterp) {
		s.escaped = true
		return ch, true
	}

	inAnyString := s.inDbl || s.inWys || s.inChr || s.inInterp
	if !inAnyString && ch == '/' && s.pos+1 < len(s.src) {
		switch s.src[s.pos+1] {
		case '/':
			s.inLineCmt = true
			return ch, true
		case '*':
			s.inBlkCmt = true
			s.cmtClose = s.pos + 1 // the * of /* must not also close
			return ch, true
		}
	}

	switch {
	case ch == '"' && !s.inWys && !s.inChr:
		switch {
		case s.inInterp:
			s.inInterp = false
			s.closing = closingInterp
		case s.inDbl:
			s.inDbl = false
			s.closing = closingDouble
		case s.interpPrefixAt(s.pos):
			s.inInterp = true
		default:
			s.inDbl = true
		}
	case ch == '`' && !s.inDbl && !s.inChr && !s.inInterp:
		if s.inWys {
			s.closing = closingWysiwyg
		}
		s.inWys = !s.inWys
	case ch == '\'' && !s.inDbl && !s.inWys && !s.inInterp:
		if s.inChr {
			s.closing = closingChar
		}
		s.inChr = !s.inChr
	}

	return ch, true
}

// interpPrefixAt reports whether the quote at position pos is preceded by an
// i prefix that is itself a standalone token (not the tail of an identifier).
func (s *CodeScanner) interpPrefixAt(pos int) bool {
	if pos == 0 || s.src[pos-1] != 'i' {
		return false
	}
	return pos < 2 || !isIdentChar(s.src[pos-2])
}

// InString reports whether the current position is inside any literal,
// including both opening and closing delimiters.
func (s *CodeScanner) InString() bool {
	return s.inDbl || s.inWys || s.inChr || s.inInterp || s.closing != noClosing
}

// InDoubleString reports whether the current position is inside a plain
// double-quoted string literal.
func (s *CodeScanner) InDoubleString() bool { return s.inDbl || s.closing == closingDouble }

// InWysiwyg reports whether the current position is inside a backtick
// (WYSIWYG) string literal. WYSIWYG strings have no escape sequences.
func (s *CodeScanner) InWysiwyg() bool { return s.inWys || s.closing == closingWysiwyg }

// InCharLiteral reports whether the current position is inside a character
// literal.
func (s *CodeScanner) InCharLiteral() bool { return s.inChr || s.closing == closingChar }

// InInterpolated reports whether the current position is inside an
// interpolated i"..." literal.
func (s *CodeScanner) InInterpolated() bool { return s.inInterp || s.closing == closingInterp }

// InComment reports whether the current position is inside a // or /* */
// comment, including the delimiters.
func (s *CodeScanner) InComment() bool {
	return s.inLineCmt || s.inBlkCmt || s.pos == s.cmtClose
}

// InCode reports whether the current position is outside all literals and
// comments.
func (s *CodeScanner) InCode() bool { return !s.InString() && !s.InComment() }

// Pos returns the current byte offset (the position of the last byte
// returned by Next). Returns -1 before the first call to Next.
func (s *CodeScanner) Pos() int { return s.pos }

// Line returns the current 1-based line number.
func (s *CodeScanner) Line() int { return s.line }

// Src returns the full source text being scanned.
func (s *CodeScanner) Src() string { return s.src }

// Peek returns the next byte without advancing, or (0, false) at end.
func (s *CodeScanner) Peek() (byte, bool) {
	if s.pos+1 >= len(s.src) {
		return 0, false
	}
	return s.src[s.pos+1], true
}

// LookingAt checks if src[pos:] starts with the given prefix.
func (s *CodeScanner) LookingAt(prefix string) bool {
	return strings.HasPrefix(s.src[s.pos:], prefix)
}

// Skip advances past n bytes without returning them. Literal/escape state
// is updated for each skipped byte. Returns the number of bytes actually
// skipped (may be less than n at end of input).
func (s *CodeScanner) Skip(n int) int {
	skipped := 0
	for i := 0; i < n; i++ {
		if _, ok := s.Next(); !ok {
			break
		}
		skipped++
	}
	return skipped
}

// IsOpenBracket reports whether ch is an opening bracket/paren/brace.
func IsOpenBracket(ch byte) bool {
	return ch == '(' || ch == '[' || ch == '{'
}

// IsCloseBracket reports whether ch is a closing bracket/paren/brace.
func IsCloseBracket(ch byte) bool {
	return ch == ')' || ch == ']' || ch == '}'
}

// FindTopLevel scans s for a byte matching pred at bracket depth 0, outside
// all literals and comments. Returns the byte offset or -1.
func FindTopLevel(s string, pred func(ch byte, pos int, src string) bool) int {
	depth := 0
	sc := New(s)
	for ch, ok := sc.Next(); ok; ch, ok = sc.Next() {
		if !sc.InCode() {
			continue
		}
		if IsOpenBracket(ch) {
			depth++
		} else if IsCloseBracket(ch) {
			depth--
		}
		if depth == 0 && pred(ch, sc.Pos(), s) {
			return sc.Pos()
		}
	}
	return -1
}

// FindAllTopLevel is like FindTopLevel but returns all matching positions.
func FindAllTopLevel(s string, pred func(ch byte, pos int, src string) bool) []int {
	var positions []int
	depth := 0
	sc := New(s)
	for ch, ok := sc.Next(); ok; ch, ok = sc.Next() {
		if !sc.InCode() {
			continue
		}
		if IsOpenBracket(ch) {
			depth++
		} else if IsCloseBracket(ch) {
			depth--
		}
		if depth == 0 && pred(ch, sc.Pos(), s) {
			positions = append(positions, sc.Pos())
		}
	}
	return positions
}

func isIdentChar(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' ||
		ch >= '0' && ch <= '9' || ch == '_'
}
