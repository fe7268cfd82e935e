package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindLiterals_Single(t *testing.T) {
	src := `writeln(i"Hello, $name!");`
	lits, err := FindLiterals(src)
	require.NoError(t, err)
	require.Len(t, lits, 1)
	assert.Equal(t, "Hello, $name!", lits[0].Raw)
	assert.Equal(t, 8, lits[0].Offset)
	assert.Equal(t, `i"Hello, $name!"`, src[lits[0].Offset:lits[0].End])
	assert.Equal(t, 1, lits[0].Line)
}

func TestFindLiterals_Multiple(t *testing.T) {
	src := "f(i\"a $x\");\ng(i\"b $y\");\n"
	lits, err := FindLiterals(src)
	require.NoError(t, err)
	require.Len(t, lits, 2)
	assert.Equal(t, "a $x", lits[0].Raw)
	assert.Equal(t, 1, lits[0].Line)
	assert.Equal(t, "b $y", lits[1].Raw)
	assert.Equal(t, 2, lits[1].Line)
}

func TestFindLiterals_IgnoresOtherForms(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"plain string", `f("not $interp");`},
		{"wysiwyg", "f(`not i\"here\"`);"},
		{"line comment", "// i\"commented out\"\nf();"},
		{"block comment", `/* i"commented out" */ f();`},
		{"identifier tail", `multi"quoted";`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lits, err := FindLiterals(tt.src)
			require.NoError(t, err)
			assert.Empty(t, lits)
		})
	}
}

func TestFindLiterals_EscapedQuoteInside(t *testing.T) {
	lits, err := FindLiterals(`f(i"say \"$word\"");`)
	require.NoError(t, err)
	require.Len(t, lits, 1)
	assert.Equal(t, `say \"$word\"`, lits[0].Raw)
}

func TestFindLiterals_Unterminated(t *testing.T) {
	_, err := FindLiterals(`f(i"never closed`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unterminated")

	_, err = FindLiterals("f(i\"no multiline\nrest\")")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unterminated")
}

func TestFindLiterals_EmptyLiteral(t *testing.T) {
	lits, err := FindLiterals(`f(i"");`)
	require.NoError(t, err)
	require.Len(t, lits, 1)
	assert.Equal(t, "", lits[0].Raw)
}
