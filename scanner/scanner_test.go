package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeScanner_BasicIteration(t *testing.T) {
	sc := New("abc")
	ch, ok := sc.Next()
	require.True(t, ok)
	assert.Equal(t, byte('a'), ch)
	assert.Equal(t, 0, sc.Pos())

	ch, ok = sc.Next()
	require.True(t, ok)
	assert.Equal(t, byte('b'), ch)

	ch, ok = sc.Next()
	require.True(t, ok)
	assert.Equal(t, byte('c'), ch)

	_, ok = sc.Next()
	assert.False(t, ok)
}

func TestCodeScanner_LineTracking(t *testing.T) {
	sc := New("a\nb\nc")
	sc.Next() // a
	assert.Equal(t, 1, sc.Line())
	sc.Next() // \n
	assert.Equal(t, 2, sc.Line())
	sc.Next() // b
	assert.Equal(t, 2, sc.Line())
	sc.Next() // \n
	assert.Equal(t, 3, sc.Line())
	sc.Next() // c
	assert.Equal(t, 3, sc.Line())
}

// collect returns the bytes for which pred holds while scanning src.
func collect(src string, pred func(*CodeScanner) bool) string {
	sc := New(src)
	var out []byte
	for ch, ok := sc.Next(); ok; ch, ok = sc.Next() {
		if pred(sc) {
			out = append(out, ch)
		}
	}
	return string(out)
}

func TestCodeScanner_DoubleQuotedString(t *testing.T) {
	assert.Equal(t, `"hello"`,
		collect(`x = "hello" ~ y`, (*CodeScanner).InString))
	assert.Equal(t, `x =  ~ y`,
		collect(`x = "hello" ~ y`, (*CodeScanner).InCode))
}

func TestCodeScanner_InterpolatedString(t *testing.T) {
	assert.Equal(t, `"hi $name"`,
		collect(`f(i"hi $name")`, (*CodeScanner).InInterpolated))
}

func TestCodeScanner_InterpolatedPrefixNotIdentifierTail(t *testing.T) {
	// The quote after "mi" opens a plain string: the i is part of an
	// identifier, not a literal prefix.
	assert.Equal(t, "",
		collect(`mi"hi"`, (*CodeScanner).InInterpolated))
	assert.Equal(t, `"hi"`,
		collect(`mi"hi"`, (*CodeScanner).InDoubleString))
}

func TestCodeScanner_WysiwygString(t *testing.T) {
	assert.Equal(t, "`no \\ escapes`",
		collect("x = `no \\ escapes` ~ y", (*CodeScanner).InWysiwyg))
}

func TestCodeScanner_CharLiteral(t *testing.T) {
	assert.Equal(t, `'\''`,
		collect(`c = '\''`, (*CodeScanner).InCharLiteral))
}

func TestCodeScanner_EscapedQuotes(t *testing.T) {
	assert.Equal(t, `"he\"llo"`,
		collect(`"he\"llo" ~ x`, (*CodeScanner).InString))
	assert.Equal(t, `i"he\"llo"`[1:],
		collect(`i"he\"llo" ~ x`, (*CodeScanner).InInterpolated))
}

func TestCodeScanner_QuoteInsideWysiwyg(t *testing.T) {
	assert.Equal(t, "`say \"hi\"`",
		collect("`say \"hi\"` ~ x", (*CodeScanner).InString))
}

func TestCodeScanner_LineComment(t *testing.T) {
	src := "code() // trailing i\"not a literal\"\nmore()"
	assert.Equal(t, "", collect(src, (*CodeScanner).InInterpolated))
	assert.Equal(t, `// trailing i"not a literal"`,
		collect(src, (*CodeScanner).InComment))
}

func TestCodeScanner_BlockComment(t *testing.T) {
	src := `a /* "quoted" */ b`
	assert.Equal(t, `/* "quoted" */`, collect(src, (*CodeScanner).InComment))
	assert.Equal(t, "", collect(src, (*CodeScanner).InDoubleString))
}

func TestCodeScanner_BlockCommentNotClosedByOpeningStar(t *testing.T) {
	src := "a /*/ still comment */ b"
	assert.Equal(t, "/*/ still comment */", collect(src, (*CodeScanner).InComment))
}

func TestCodeScanner_CommentMarkersInsideString(t *testing.T) {
	src := `x = "// not a comment"`
	assert.Equal(t, "", collect(src, (*CodeScanner).InComment))
	assert.Equal(t, `"// not a comment"`, collect(src, (*CodeScanner).InString))
}

func TestCodeScanner_Peek(t *testing.T) {
	sc := New("ab")
	ch, ok := sc.Peek()
	require.True(t, ok)
	assert.Equal(t, byte('a'), ch)
	assert.Equal(t, -1, sc.Pos()) // Peek doesn't advance

	sc.Next() // a
	ch, ok = sc.Peek()
	require.True(t, ok)
	assert.Equal(t, byte('b'), ch)

	sc.Next() // b
	_, ok = sc.Peek()
	assert.False(t, ok)
}

func TestCodeScanner_LookingAt(t *testing.T) {
	sc := New("new Shader(x)")
	sc.Next() // n - pos 0
	assert.True(t, sc.LookingAt("new "))
	assert.False(t, sc.LookingAt("Shader"))

	sc.Skip(3) // pos 3
	sc.Next()  // S - pos 4
	assert.True(t, sc.LookingAt("Shader("))
}

func TestCodeScanner_Skip(t *testing.T) {
	sc := New("abcde")
	n := sc.Skip(3)
	assert.Equal(t, 3, n)
	assert.Equal(t, 2, sc.Pos())

	ch, ok := sc.Next()
	require.True(t, ok)
	assert.Equal(t, byte('d'), ch)
}

func TestCodeScanner_SkipPastEnd(t *testing.T) {
	sc := New("ab")
	n := sc.Skip(5)
	assert.Equal(t, 2, n)
}

func TestCodeScanner_EmptyInput(t *testing.T) {
	sc := New("")
	_, ok := sc.Next()
	assert.False(t, ok)
	assert.True(t, sc.InCode())
}

func TestFindTopLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		find  byte
		want  int
	}{
		{"simple", `a = b + c`, '=', 2},
		{"inside string", `a = "x=y" + c`, '=', 2},
		{"inside parens", `f(a=b) = c`, '=', 7},
		{"inside brackets", `a[1=2] = c`, '=', 7},
		{"inside comment", `a /* = */ + b`, '=', -1},
		{"not found", `a + b`, '=', -1},
		{"nested parens", `f(g(h(x))) = y`, '=', 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindTopLevel(tt.input, func(ch byte, pos int, src string) bool {
				return ch == tt.find
			})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindAllTopLevel(t *testing.T) {
	isComma := func(ch byte, pos int, src string) bool { return ch == ',' }
	tests := []struct {
		name  string
		input string
		want  []int
	}{
		{"no commas", `a + b`, nil},
		{"two commas", `a, b, c`, []int{1, 4}},
		{"comma in string", `a, "x,y", c`, []int{1, 8}},
		{"comma in parens", `f(a, b), c`, []int{7}},
		{"comma in interpolated", `i"a, b", c`, []int{7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FindAllTopLevel(tt.input, isComma))
		})
	}
}

func TestBracketHelpers(t *testing.T) {
	assert.True(t, IsOpenBracket('('))
	assert.True(t, IsOpenBracket('['))
	assert.True(t, IsOpenBracket('{'))
	assert.False(t, IsOpenBracket(')'))

	assert.True(t, IsCloseBracket(')'))
	assert.True(t, IsCloseBracket(']'))
	assert.True(t, IsCloseBracket('}'))
	assert.False(t, IsCloseBracket('('))
}
