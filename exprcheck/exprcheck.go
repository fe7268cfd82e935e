// Package exprcheck validates the embedded source captured from an
// interpolated literal. The expression grammar is deliberately external to
// the lowering: the Lowerer copies embedded source verbatim and a sub-parser
// decides whether it is a well-formed identifier or expression. Failures
// here are ordinary diagnostics, not lowering errors.
package exprcheck

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr/parser"
)

// Checker is the expression/type sub-parser collaborator. Implementations
// re-parse embedded source fragments; the Lowerer never does.
type Checker interface {
	// CheckExpr validates a grouped capture, e.g. the expr of $(expr).
	CheckExpr(src string) error
	// CheckIdent validates an identifier-shorthand capture, e.g. $name.
	CheckIdent(src string) error
}

// ExprLang checks embedded sources with the expr-lang parser. The zero value
// is ready to use.
type ExprLang struct{}

// CheckExpr parses src as an expression. The expression is only parsed, not
// compiled against an environment: name resolution and typing belong to the
// downstream pipeline.
func (ExprLang) CheckExpr(src string) error {
	if strings.TrimSpace(src) == "" {
		return fmt.Errorf("empty interpolated expression")
	}
	if _, err := parser.Parse(src); err != nil {
		return fmt.Errorf("invalid interpolated expression %q: %w", src, err)
	}
	return nil
}

// CheckIdent validates src as a bare identifier. Shorthand captures end at
// the first non-identifier character by construction, so this only rejects
// degenerate captures such as an empty name.
func (ExprLang) CheckIdent(src string) error {
	if src == "" {
		return fmt.Errorf("empty interpolated identifier")
	}
	for i := 0; i < len(src); i++ {
		ch := src[i]
		ok := ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch == '_' ||
			i > 0 && ch >= '0' && ch <= '9'
		if !ok {
			return fmt.Errorf("invalid interpolated identifier %q", src)
		}
	}
	return nil
}
