package scanner

import "fmt"

// Literal is one interpolated i"..." literal found in host source. Raw is
// the text between the quotes, exclusive; Offset is the byte offset of the
// i prefix and End is one past the closing quote, so src[Offset:End] is the
// whole token.
type Literal struct {
	Raw    string
	Offset int
	End    int
	Line   int // 1-based line of the opening quote
}

// FindLiterals returns every interpolated literal in src, in source order.
// Literals inside comments or other string forms are not reported. A literal
// that is still open at a newline or at end of input is an error (multiline
// interpolated literals are not supported).
func FindLiterals(src string) ([]Literal, error) {
	var lits []Literal
	sc := New(src)
	open := -1 // offset of the opening quote, -1 when not in a literal
	line := 0
	for ch, ok := sc.Next(); ok; ch, ok = sc.Next() {
		if open < 0 {
			if sc.InInterpolated() {
				open = sc.Pos()
				line = sc.Line()
			}
			continue
		}
		if ch == '\n' {
			return nil, fmt.Errorf("%d: unterminated interpolated string literal (opened at line %d)", sc.Line(), line)
		}
		if ch == '"' && !sc.inInterp {
			lits = append(lits, Literal{
				Raw:    src[open+1 : sc.Pos()],
				Offset: open - 1,
				End:    sc.Pos() + 1,
				Line:   line,
			})
			open = -1
		}
	}
	if open >= 0 {
		return nil, fmt.Errorf("%d: unterminated interpolated string literal", line)
	}
	return lits, nil
}
