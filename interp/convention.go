package interp

import "fmt"

// Convention selects the escape convention of the literal's interior. The
// two conventions are incompatible and never mix within one literal; a
// Convention bundles the escape-introducer character, the grouping pair,
// and whether a bare identifier may follow the introducer.
type Convention byte

const (
	// Dollar is the $name / $(expr) / $$ convention. Identifier shorthand is
	// available and expressions are grouped with parentheses.
	Dollar Convention = iota
	// Brace is the {expr} / {{ / }} convention. Every capture is grouped
	// with braces; there is no identifier shorthand.
	Brace
)

// ParseConvention maps a config or flag value to a Convention.
func ParseConvention(name string) (Convention, error) {
	switch name {
	case "dollar", "":
		return Dollar, nil
	case "brace":
		return Brace, nil
	}
	return Dollar, fmt.Errorf("unknown convention %q (want dollar or brace)", name)
}

func (c Convention) String() string {
	if c == Brace {
		return "brace"
	}
	return "dollar"
}

// introducer returns the escape-introducer character.
func (c Convention) introducer() byte {
	if c == Brace {
		return '{'
	}
	return '$'
}

// groupers returns the grouping-delimiter pair for explicit captures.
func (c Convention) groupers() (open, close byte) {
	if c == Brace {
		return '{', '}'
	}
	return '(', ')'
}

// identShorthand reports whether a bare identifier may follow the introducer.
func (c Convention) identShorthand() bool { return c == Dollar }
