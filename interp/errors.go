package interp

import "fmt"

// ErrorKind classifies lowering errors.
type ErrorKind byte

const (
	// UnbalancedDelimiter means a grouping construct inside an embedded
	// capture was not closed before the literal ended, or a stray close
	// appeared in literal text.
	UnbalancedDelimiter ErrorKind = iota
	// IllegalContext means the literal appeared outside the permitted
	// syntactic positions. It is raised by the host front end, not by Lower,
	// since context is determined by surrounding syntax.
	IllegalContext
)

// LexError is an error produced while lowering a literal or validating its
// usage context. Offset is a byte offset within the raw literal text for
// UnbalancedDelimiter, and within the host source for IllegalContext.
type LexError struct {
	Kind   ErrorKind
	Offset int
	Msg    string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Msg, e.Offset)
}

func unbalanced(offset int, what string) *LexError {
	return &LexError{Kind: UnbalancedDelimiter, Offset: offset, Msg: "unbalanced delimiter: " + what}
}
