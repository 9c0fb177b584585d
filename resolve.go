package conform

// Resolve normalizes a validator specification into a Validator. It is
// total: every input resolves to something runnable. Dispatch order is the
// grammar of the specification language and must not change:
//
//  1. a string is a type name -> Type
//  2. a Validator (or a func of the Validator shape) is returned as-is
//  3. a map[string]any is a shape -> Shape
//  4. anything else is a literal -> Equal
//
// The function case sits ahead of the shape and literal cases so callers
// can mix custom validators into declarative shapes. Because a bare string
// always resolves to a type name, string equality is reachable only through
// Equal directly; this asymmetry is part of the grammar.
func Resolve(spec any) Validator {
	switch s := spec.(type) {
	case string:
		return Type(s)
	case Validator:
		return s
	case func(any, Path) *Failure:
		return s
	case map[string]any:
		return Shape(s)
	default:
		return Equal(spec)
	}
}
