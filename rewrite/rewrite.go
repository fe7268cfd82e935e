package rewrite

import (
	"fmt"
	"os"
	"strings"

	"github.com/John-Colvin/YAIDIP/exprcheck"
	"github.com/John-Colvin/YAIDIP/interp"
	"github.com/John-Colvin/YAIDIP/scanner"
	mscanner "modernc.org/scanner"
)

// DefaultHeaderCall is the name of the template invoked for the synthesized
// header argument.
const DefaultHeaderCall = "interp"

// Rewriter splices interpolated literals into their enclosing argument
// lists. Each literal argument is replaced by the flattened part sequence:
// an optional synthesized header argument recording the original structure,
// then alternating string-constant fragments and verbatim embedded
// expressions. The zero value uses the dollar convention, emits headers, and
// checks embedded sources with the expr-lang sub-parser.
type Rewriter struct {
	Convention interp.Convention
	HeaderCall string // header template name; DefaultHeaderCall if empty
	NoHeader   bool   // drop the synthesized header argument
	Checker    exprcheck.Checker
}

func (r *Rewriter) checker() exprcheck.Checker {
	if r.Checker != nil {
		return r.Checker
	}
	return exprcheck.ExprLang{}
}

func (r *Rewriter) headerCall() string {
	if r.HeaderCall != "" {
		return r.HeaderCall
	}
	return DefaultHeaderCall
}

// RewriteFile reads a host source file and returns it with every
// interpolated literal lowered and spliced.
func (r *Rewriter) RewriteFile(filename string) (string, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", filename, err)
	}
	return r.Rewrite(string(src), filename)
}

// Rewrite lowers and splices every interpolated literal in src. The name
// parameter is used for error messages. Diagnostics for all literals are
// collected before failing, so one bad literal does not hide the others.
func (r *Rewriter) Rewrite(src, name string) (string, error) {
	lits, err := scanner.FindLiterals(src)
	if err != nil {
		return "", fmt.Errorf("%s:%w", name, err)
	}

	var errs mscanner.ErrList
	var sb strings.Builder
	last := 0
	for _, lit := range lits {
		ctx := ClassifyContext(src, lit)
		if !ctx.Allowed() {
			errs = append(errs, mscanner.ErrWithPosition{Err: illegalContext(name, lit)})
			continue
		}
		seq, err := interp.Lower(lit.Raw, r.Convention)
		if err != nil {
			errs = append(errs, mscanner.ErrWithPosition{Err: fmt.Errorf("%s:%d: %w", name, lit.Line, err)})
			continue
		}
		sb.WriteString(src[last:lit.Offset])
		sb.WriteString(r.splice(seq))
		last = lit.End
	}
	if len(errs) > 0 {
		return "", errs
	}
	sb.WriteString(src[last:])
	return sb.String(), nil
}

// splice renders the argument-list text a literal lowers to.
func (r *Rewriter) splice(seq interp.PartSequence) string {
	var args []string
	if !r.NoHeader {
		frags := seq.Fragments()
		quoted := make([]string, len(frags))
		for i, f := range frags {
			quoted[i] = quoteFragment(f)
		}
		args = append(args, r.headerCall()+"!("+strings.Join(quoted, ", ")+")")
	}
	for _, p := range seq {
		if p.Kind == interp.Fragment {
			args = append(args, quoteFragment(p.Text))
		} else {
			args = append(args, p.Text)
		}
	}
	return strings.Join(args, ", ")
}

// CheckFile reads a host source file and validates every interpolated
// literal in it. Returns the number of literals inspected.
func (r *Rewriter) CheckFile(filename string) (int, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", filename, err)
	}
	return r.Check(string(src), filename)
}

// Check validates every interpolated literal in src without rewriting:
// usage context, lowering, and each embedded source against the expression
// sub-parser. All diagnostics for the file are aggregated into a single
// error list.
func (r *Rewriter) Check(src, name string) (int, error) {
	lits, err := scanner.FindLiterals(src)
	if err != nil {
		return 0, fmt.Errorf("%s:%w", name, err)
	}

	chk := r.checker()
	var errs mscanner.ErrList
	for _, lit := range lits {
		if ctx := ClassifyContext(src, lit); !ctx.Allowed() {
			errs = append(errs, mscanner.ErrWithPosition{Err: illegalContext(name, lit)})
		}
		seq, err := interp.Lower(lit.Raw, r.Convention)
		if err != nil {
			errs = append(errs, mscanner.ErrWithPosition{Err: fmt.Errorf("%s:%d: %w", name, lit.Line, err)})
			continue
		}
		for _, p := range seq {
			if p.Kind != interp.Embedded {
				continue
			}
			if p.Ident {
				err = chk.CheckIdent(p.Text)
			} else {
				err = chk.CheckExpr(p.Text)
			}
			if err != nil {
				errs = append(errs, mscanner.ErrWithPosition{Err: fmt.Errorf("%s:%d: %v", name, lit.Line, err)})
			}
		}
	}
	if len(errs) > 0 {
		return len(lits), errs
	}
	return len(lits), nil
}

func illegalContext(name string, lit scanner.Literal) error {
	lexErr := &interp.LexError{
		Kind:   interp.IllegalContext,
		Offset: lit.Offset,
		Msg:    "interpolated literal outside an argument list",
	}
	return fmt.Errorf("%s:%d: %w", name, lit.Line, lexErr)
}

// quoteFragment wraps fragment text in double quotes. Fragment text keeps
// the host escape sequences of the original literal verbatim (only the
// introducer escapes were resolved), so it is re-emitted as-is.
func quoteFragment(s string) string {
	return `"` + s + `"`
}
