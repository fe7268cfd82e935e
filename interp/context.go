package interp

// UsageContext is the syntactic position in which an interpolated literal
// appears. Only argument-list positions are legal: the literal lowers to a
// sequence of arguments, so it cannot stand anywhere a single expression is
// required (it cannot be bound to a variable, for instance). The host front
// end attaches a context to each literal occurrence; the Lowerer itself
// never inspects it.
type UsageContext byte

const (
	// IllegalUsage is any position outside the permitted set.
	IllegalUsage UsageContext = iota
	// CallArgument is an argument list of an ordinary function call.
	CallArgument
	// ConstructorArgument is an argument list of a new T(...) expression.
	ConstructorArgument
	// MixinArgument is an argument list of a mixin(...) construct.
	MixinArgument
	// TemplateArgument is an argument list of a template instantiation T!(...).
	TemplateArgument
	// PragmaMsgArgument is pragma(msg, ...) from the second argument on.
	PragmaMsgArgument
	// AssertMessageArgument is assert(...) from the second argument on.
	AssertMessageArgument
)

// Allowed reports whether the context permits an interpolated literal.
func (c UsageContext) Allowed() bool { return c != IllegalUsage }

func (c UsageContext) String() string {
	switch c {
	case CallArgument:
		return "call argument"
	case ConstructorArgument:
		return "constructor argument"
	case MixinArgument:
		return "mixin argument"
	case TemplateArgument:
		return "template instantiation argument"
	case PragmaMsgArgument:
		return "pragma(msg) argument"
	case AssertMessageArgument:
		return "assert message argument"
	}
	return "illegal context"
}
