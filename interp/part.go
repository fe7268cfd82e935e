// Package interp lowers the contents of an interpolated string literal into
// a normalized, alternating sequence of literal-text fragments and embedded
// source fragments. It operates on the raw text between the literal's quotes
// and knows nothing about the surrounding host syntax; see the rewrite
// package for context validation and call-site splicing.
package interp

import "strings"

// PartKind distinguishes the two variants of Part.
type PartKind byte

const (
	// Fragment is a run of literal characters with escapes resolved.
	Fragment PartKind = iota
	// Embedded is a verbatim run of source characters captured from inside
	// an escape delimiter, to be re-parsed as an identifier or expression.
	Embedded
)

func (k PartKind) String() string {
	if k == Fragment {
		return "fragment"
	}
	return "embedded"
}

// Part is one element of a lowered literal: either a literal-text fragment
// or an embedded source capture.
type Part struct {
	Kind   PartKind
	Text   string
	Offset int // byte offset of the part's first character within the raw literal
	Ident  bool // embedded capture used the identifier shorthand (no grouping)
}

// PartSequence is the ordered output of lowering one interpolated literal.
//
// Invariant: the sequence strictly alternates fragment/embedded/.../fragment,
// beginning and ending with a (possibly empty) fragment, so downstream
// consumers can rely on fixed positional parity: even indices are fragments,
// odd indices are embedded captures.
type PartSequence []Part

// Fragments returns the literal-text parts in order.
func (s PartSequence) Fragments() []string {
	var out []string
	for _, p := range s {
		if p.Kind == Fragment {
			out = append(out, p.Text)
		}
	}
	return out
}

// Sources returns the embedded source parts in order.
func (s PartSequence) Sources() []string {
	var out []string
	for _, p := range s {
		if p.Kind == Embedded {
			out = append(out, p.Text)
		}
	}
	return out
}

// Reconstruct concatenates all fragments with placeholder substituted for
// each embedded part, yielding an unescaped rendering of the original
// literal in part order.
func (s PartSequence) Reconstruct(placeholder string) string {
	var sb strings.Builder
	for _, p := range s {
		if p.Kind == Embedded {
			sb.WriteString(placeholder)
		} else {
			sb.WriteString(p.Text)
		}
	}
	return sb.String()
}

// String renders the sequence in a compact debug form, quoting fragments and
// wrapping embedded captures in $(...).
func (s PartSequence) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, p := range s {
		if i > 0 {
			sb.WriteString(", ")
		}
		if p.Kind == Embedded {
			sb.WriteString("$(" + p.Text + ")")
		} else {
			sb.WriteString(`"` + p.Text + `"`)
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

// Header is the compile-time metadata value synthesized alongside a lowered
// literal. It records the original fragment and embedded-source structure so
// downstream code can introspect the interpolation shape without re-parsing.
// It is a distinct type on purpose: argument-processing code detects it with
// an ordinary type test and skips it.
type Header struct {
	Fragments []string `json:"fragments"`
	Sources   []string `json:"sources"`
}

// Header synthesizes the metadata value for the sequence.
func (s PartSequence) Header() Header {
	return Header{Fragments: s.Fragments(), Sources: s.Sources()}
}
