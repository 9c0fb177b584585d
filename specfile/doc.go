// Package specfile loads declarative validator documents and compiles them
// into conform Validators. It is caller-side glue over the engine: the
// engine itself knows nothing about file formats.
//
// # Document Grammar
//
// A document mirrors the in-memory specification grammar. A string scalar
// is a type name, any other scalar is an equality literal, and a mapping is
// a shape whose values are themselves documents:
//
//	name: string
//	port: number
//	meta:
//	  version: string
//
// A single-key mapping whose key starts with "$" is a directive rather
// than a shape:
//
//	tags:
//	  $array: string
//	mode:
//	  $oneOf: [fast, safe]
//	id:
//	  $union:
//	    - string
//	    - number
//	magic:
//	  $equals: 42
//
// $equals is the only way a document can express string equality, since a
// bare string always reads as a type name.
//
// # Formats
//
// Compile accepts YAML (and therefore JSON); CompileJSON decodes JSON
// directly; Load reads a file and picks the decoder by extension.
package specfile
