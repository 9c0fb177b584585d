package conform

import "strconv"

// Path is an immutable location within a value under validation. It
// accumulates a dotted breadcrumb trail ("user.addresses.2.street") as
// validation descends into nested objects and arrays.
//
// A Path is a value type and never mutates: Child and Index return fresh
// paths, so sibling validators (each field of a shape, each element of an
// array, each alternative of a union) can branch off the same point without
// interfering with one another.
type Path struct {
	loc string
}

// RootPath returns the empty path at the root of a validation.
func RootPath() Path {
	return Path{}
}

// PathAt returns a path rooted at the given base location.
func PathAt(base string) Path {
	return Path{loc: base}
}

// String returns the accumulated location. It is empty at the root, so a
// failure at the top of a value carries no leading dot.
func (p Path) String() string {
	return p.loc
}

// Child returns a new path extended by the given segment. The segment is
// joined with "." unless the receiver is the root, in which case the
// segment stands alone.
func (p Path) Child(segment string) Path {
	if p.loc == "" {
		return Path{loc: segment}
	}
	return Path{loc: p.loc + "." + segment}
}

// Index returns a new path extended by a numeric array index.
func (p Path) Index(i int) Path {
	return p.Child(strconv.Itoa(i))
}
