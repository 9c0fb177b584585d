package conform

import (
	"reflect"
	"sort"
	"strings"
)

// Shape returns a validator that checks an object field by field. The value
// must be a non-null object; each declared field spec is resolved and run
// against the property read off the value, with the path extended by the
// field name. The first failing field wins and later fields are not
// evaluated. Keys present on the value but absent from the spec are
// ignored, so shapes are open, not closed.
//
// Go maps carry no declaration order, so fields validate in sorted key
// order; that keeps the first reported failure deterministic across runs.
func Shape(fields map[string]any) Validator {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	resolved := make([]Validator, len(names))
	for i, name := range names {
		resolved[i] = Resolve(fields[name])
	}

	return func(value any, at Path) *Failure {
		if KindOf(value) == "null" || primitiveKind(value) != "object" {
			return Failf(at, "expected value of type object, received %s", KindOf(value))
		}
		for i, name := range names {
			if f := resolved[i](Get(value, name), at.Child(name)); f != nil {
				return f
			}
		}
		return nil
	}
}

// ArrayOf returns a validator that checks every element of a slice or array
// against a single element spec, in index order, with the path extended by
// the numeric index. The first failing index wins.
func ArrayOf(elem any) Validator {
	item := Resolve(elem)
	return func(value any, at Path) *Failure {
		if KindOf(value) != "array" {
			return Failf(at, "expected value of type array, received %s", KindOf(value))
		}
		rv := reflect.ValueOf(value)
		for i := 0; i < rv.Len(); i++ {
			if f := item(rv.Index(i).Interface(), at.Index(i)); f != nil {
				return f
			}
		}
		return nil
	}
}

// OneOf returns a validator that succeeds when the value is strictly
// identical to one of the allowed values. The failure message says "one of"
// only when more than one value is allowed, and lists every allowed value.
func OneOf(allowed ...any) Validator {
	return func(value any, at Path) *Failure {
		for _, want := range allowed {
			if identical(value, want) {
				return nil
			}
		}
		rendered := make([]string, len(allowed))
		for i, want := range allowed {
			rendered[i] = Render(want)
		}
		if len(allowed) == 1 {
			return Failf(at, "expected value to be %s, received %s", rendered[0], Render(value))
		}
		return Failf(at, "expected value to be one of %s, received %s",
			strings.Join(rendered, ", "), Render(value))
	}
}

// UnionOf returns a validator that tries each alternative spec in order and
// succeeds on the first that reports no failure; remaining alternatives are
// not evaluated. When every alternative fails, the failures aggregate into
// one combined message, one "path |> message" line per alternative, and the
// combined failure is reported at the union's own position rather than at
// whichever alternative failed deepest.
func UnionOf(specs ...any) Validator {
	alts := make([]Validator, len(specs))
	for i, spec := range specs {
		alts[i] = Resolve(spec)
	}
	return func(value any, at Path) *Failure {
		if len(alts) == 0 {
			return Failf(at, "expected value to match at least one alternative, but none were given")
		}
		lines := make([]string, 0, len(alts))
		for _, alt := range alts {
			f := alt(value, at)
			if f == nil {
				return nil
			}
			lines = append(lines, f.Error())
		}
		return &Failure{Message: strings.Join(lines, "\n"), Path: at}
	}
}
