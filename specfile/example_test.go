package specfile_test

import (
	"fmt"

	"github.com/conformd/conform"
	"github.com/conformd/conform/specfile"
)

// Example demonstrates compiling a YAML validator document and running it.
func Example() {
	doc := []byte(`
name: string
port: number
tags:
  $array: string
`)

	v, err := specfile.Compile(doc)
	if err != nil {
		fmt.Println("compile:", err)
		return
	}

	value := map[string]any{
		"name": "api",
		"port": 8080,
		"tags": []any{"prod", 7},
	}

	fmt.Println(v(value, conform.RootPath()))

	// Output: tags.1 |> expected value of type string, received number
}

// Example_directives demonstrates the $-directive grammar.
func Example_directives() {
	doc := []byte(`
mode:
  $oneOf: [fast, safe]
id:
  $union:
    - string
    - number
version:
  $equals: v1
`)

	v, err := specfile.Compile(doc)
	if err != nil {
		fmt.Println("compile:", err)
		return
	}

	value := map[string]any{
		"mode":    "turbo",
		"id":      "abc",
		"version": "v1",
	}

	fmt.Println(v(value, conform.RootPath()))

	// Output: mode |> expected value to be one of "fast", "safe", received "turbo"
}
