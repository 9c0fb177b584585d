// Package conform is a runtime structural type-checking engine: given an
// arbitrary value and a declarative validator specification, it determines
// whether the value conforms, and if not, produces a failure describing
// what was expected, what was found, and exactly where in a nested
// structure the mismatch occurred.
//
// # Validators
//
// A Validator is a pure function over (value, path). Seven constructors
// cover the primitive and composite checks:
//
//	conform.Type("string")              // primitive kind check
//	conform.Equal(42)                   // strict identity
//	conform.InstanceOf[error]()         // dynamic type check
//	conform.Shape(map[string]any{...})  // object structure
//	conform.ArrayOf("number")           // homogeneous elements
//	conform.OneOf("on", "off")          // enumerated membership
//	conform.UnionOf("string", "number") // first matching alternative
//
// # Specifications
//
// Composites accept validator specifications, not just validators. Resolve
// normalizes a spec into a Validator: a string is a type name, a func of
// the Validator shape passes through, a map[string]any is a shape, and any
// other value is an equality literal. Specs therefore nest declaratively:
//
//	spec := map[string]any{
//		"name": "string",
//		"port": "number",
//		"tags": conform.ArrayOf("string"),
//	}
//	err := conform.Check(value, spec)
//
// # Failures
//
// A failed check is data, never a panic. Each Failure carries a message and
// the dotted path from the validation root to the failing leaf ("tags.2",
// "server.port"). Composites return the first failure they encounter and
// propagate child failures unchanged apart from path extension; a union
// aggregates all of its alternatives' failures at its own position.
//
// # Concurrency
//
// Validation is synchronous, allocation-light, and free of shared state.
// Paths are immutable values, so a single validator may be exercised from
// any number of goroutines without coordination.
package conform
