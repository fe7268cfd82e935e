// Package rewrite is the host front end for interpolated literals: it finds
// them in source text, validates the syntactic context each one appears in,
// and splices the lowered part sequence back into the enclosing argument
// list. The lowering itself lives in the interp package.
package rewrite

import (
	"strings"

	"github.com/John-Colvin/YAIDIP/interp"
	"github.com/John-Colvin/YAIDIP/scanner"
)

// Control-flow keywords whose parenthesized head is not an argument list.
var headKeywords = map[string]bool{
	"if": true, "while": true, "for": true, "foreach": true,
	"switch": true, "return": true, "version": true, "scope": true,
	"catch": true, "with": true, "synchronized": true,
}

// ClassifyContext determines the usage context of a literal from the syntax
// that encloses it. A literal lowers to a sequence of arguments, so the
// nearest enclosing bracket must be the parenthesis of an argument list:
// an ordinary call, a constructor, mixin(...), a template instantiation
// T!(...), pragma(msg, ...), or assert(...) from the second argument on.
// Everything else is IllegalUsage.
func ClassifyContext(src string, lit scanner.Literal) interp.UsageContext {
	openPos := enclosingParen(src, lit.Offset)
	if openPos < 0 {
		return interp.IllegalUsage
	}

	// The token immediately before the opening parenthesis decides the form.
	k := openPos - 1
	for k >= 0 && (src[k] == ' ' || src[k] == '\t') {
		k--
	}
	if k < 0 {
		return interp.IllegalUsage
	}
	if src[k] == '!' {
		return interp.TemplateArgument
	}

	end := k + 1
	for k >= 0 && isIdentByte(src[k]) {
		k--
	}
	word := src[k+1 : end]
	if word == "" {
		// Grouping parenthesis or an operator: not an argument list.
		return interp.IllegalUsage
	}

	switch word {
	case "mixin":
		return interp.MixinArgument
	case "assert":
		if argPosition(src, openPos, lit.Offset) >= 2 {
			return interp.AssertMessageArgument
		}
		return interp.IllegalUsage
	case "pragma":
		if firstArg(src, openPos, lit.Offset) == "msg" && argPosition(src, openPos, lit.Offset) >= 2 {
			return interp.PragmaMsgArgument
		}
		return interp.IllegalUsage
	}
	if headKeywords[word] {
		return interp.IllegalUsage
	}
	if precedingWord(src, k) == "new" {
		return interp.ConstructorArgument
	}
	return interp.CallArgument
}

// enclosingParen returns the offset of the innermost unclosed ( before
// litStart, or -1 when the literal is not directly inside parentheses.
func enclosingParen(src string, litStart int) int {
	var stack []int // offsets of unclosed brackets of any kind
	sc := scanner.New(src)
	for ch, ok := sc.Next(); ok && sc.Pos() < litStart; ch, ok = sc.Next() {
		if !sc.InCode() {
			continue
		}
		if scanner.IsOpenBracket(ch) {
			stack = append(stack, sc.Pos())
		} else if scanner.IsCloseBracket(ch) && len(stack) > 0 {
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) == 0 {
		return -1
	}
	top := stack[len(stack)-1]
	if src[top] != '(' {
		return -1
	}
	return top
}

// argPosition returns the 1-based argument index of the literal inside the
// argument list opened at openPos, counting top-level commas before it.
func argPosition(src string, openPos, litStart int) int {
	span := src[openPos+1 : litStart]
	commas := scanner.FindAllTopLevel(span, func(ch byte, pos int, src string) bool {
		return ch == ','
	})
	return len(commas) + 1
}

// firstArg returns the trimmed text of the first argument of the list opened
// at openPos, stopping at the literal if no comma precedes it.
func firstArg(src string, openPos, litStart int) string {
	span := src[openPos+1 : litStart]
	if c := scanner.FindTopLevel(span, func(ch byte, pos int, src string) bool {
		return ch == ','
	}); c >= 0 {
		span = span[:c]
	}
	return strings.TrimSpace(span)
}

// precedingWord returns the identifier that ends at position k (inclusive),
// skipping trailing spaces first.
func precedingWord(src string, k int) string {
	for k >= 0 && (src[k] == ' ' || src[k] == '\t') {
		k--
	}
	end := k + 1
	for k >= 0 && isIdentByte(src[k]) {
		k--
	}
	return src[k+1 : end]
}

func isIdentByte(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' ||
		ch >= '0' && ch <= '9' || ch == '_'
}
