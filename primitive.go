package conform

import "reflect"

// Type returns a validator that succeeds only when the value's primitive
// kind is exactly the expected tag: "string", "number", "boolean",
// "function", or "object". The failure message reports the fine-grained
// KindOf of the actual value, so nil reports as "null" and a slice as
// "array" rather than "object".
func Type(expected string) Validator {
	return func(value any, at Path) *Failure {
		if primitiveKind(value) != expected {
			return Failf(at, "expected value of type %s, received %s", expected, KindOf(value))
		}
		return nil
	}
}

// Equal returns a validator that succeeds only when the value is strictly
// identical to expected: same dynamic type, equal under ==. No structural
// deep equality and no coercion, so int(1) does not match float64(1), and
// NaN never matches itself.
func Equal(expected any) Validator {
	return func(value any, at Path) *Failure {
		if !identical(value, expected) {
			return Failf(at, "expected value to be %s, received %s", Render(expected), Render(value))
		}
		return nil
	}
}

// InstanceOf returns a validator that succeeds only when the value's
// dynamic type satisfies T. T may be a concrete type or an interface. The
// failure message names T when it has a name, otherwise its stringified
// form.
func InstanceOf[T any]() Validator {
	want := reflect.TypeOf((*T)(nil)).Elem()
	name := want.Name()
	if name == "" {
		name = want.String()
	}
	return func(value any, at Path) *Failure {
		if _, ok := value.(T); !ok {
			return Failf(at, "expected value to be an instance of %s, received %s", name, Render(value))
		}
		return nil
	}
}
