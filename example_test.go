package conform_test

import (
	"fmt"

	"github.com/conformd/conform"
)

// Example demonstrates checking a nested value against a declarative spec.
func Example() {
	spec := map[string]any{
		"name": "string",
		"port": "number",
	}

	err := conform.Check(map[string]any{"name": "api", "port": 8080}, spec)
	fmt.Println(err)

	err = conform.Check(map[string]any{"name": "api", "port": "8080"}, spec)
	fmt.Println(err)

	// Output:
	// <nil>
	// port |> expected value of type number, received string
}

// ExampleArrayOf demonstrates element validation with index paths.
func ExampleArrayOf() {
	err := conform.Check([]any{1, 2, "x"}, conform.ArrayOf("number"))
	fmt.Println(err)

	// Output: 2 |> expected value of type number, received string
}

// ExampleCheck_nested demonstrates how paths compose through nested
// structures.
func ExampleCheck_nested() {
	spec := map[string]any{
		"a": map[string]any{
			"b": conform.ArrayOf("number"),
		},
	}

	value := map[string]any{
		"a": map[string]any{
			"b": []any{1, "x"},
		},
	}

	fmt.Println(conform.Check(value, spec))

	// Output: a.b.1 |> expected value of type number, received string
}

// ExampleOneOf demonstrates enumerated membership.
func ExampleOneOf() {
	mode := conform.OneOf("fast", "safe")

	fmt.Println(conform.Check("safe", mode))
	fmt.Println(conform.Check("turbo", mode))

	// Output:
	// <nil>
	// expected value to be one of "fast", "safe", received "turbo"
}

// ExampleUnionOf demonstrates alternatives with aggregated failures.
func ExampleUnionOf() {
	spec := map[string]any{
		"id": conform.UnionOf("string", "number"),
	}

	fmt.Println(conform.Check(map[string]any{"id": true}, spec))

	// Output:
	// id |> expected value of type string, received boolean
	// id |> expected value of type number, received boolean
}

// ExampleEqual demonstrates strict identity, the only way to match a
// string literal: a bare string spec always reads as a type name.
func ExampleEqual() {
	spec := map[string]any{
		"version": conform.Equal("v1"),
	}

	fmt.Println(conform.Check(map[string]any{"version": "v2"}, spec))

	// Output: version |> expected value to be "v1", received "v2"
}
