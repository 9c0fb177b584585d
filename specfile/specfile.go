package specfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/conformd/conform"
)

// Sentinel errors returned while compiling validator documents.
var (
	// ErrEmptyDocument is returned when a document decodes to nothing.
	ErrEmptyDocument = errors.New("empty validator document")

	// ErrUnknownDirective is returned for an unrecognized $-directive.
	ErrUnknownDirective = errors.New("unknown directive")
)

// Compile parses a YAML validator document and compiles it into a
// Validator. JSON documents also compile, since JSON is valid YAML.
func Compile(data []byte) (conform.Validator, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse validator document: %w", err)
	}
	return build(doc)
}

// CompileJSON parses a JSON validator document and compiles it into a
// Validator.
func CompileJSON(data []byte) (conform.Validator, error) {
	var doc any
	if err := gojson.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse validator document: %w", err)
	}
	return build(doc)
}

// Load reads a validator document from a file and compiles it. The format
// is detected by extension (.json, .yaml, .yml).
func Load(path string) (conform.Validator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read validator document: %w", err)
	}

	switch ext := filepath.Ext(path); ext {
	case ".json":
		return CompileJSON(data)
	case ".yaml", ".yml":
		return Compile(data)
	default:
		return nil, fmt.Errorf("unsupported validator document extension %q (use .json, .yaml, or .yml)", ext)
	}
}

func build(doc any) (conform.Validator, error) {
	if doc == nil {
		return nil, ErrEmptyDocument
	}
	spec, err := toSpec(doc)
	if err != nil {
		return nil, err
	}
	return conform.Resolve(spec), nil
}

// toSpec translates a decoded document node into a validator specification
// for conform.Resolve. Scalars pass through untouched (a string is a type
// name, any other scalar an equality literal, exactly as in the in-memory
// grammar). A mapping is a shape, unless it is a single-key mapping whose
// key starts with "$", which is a directive.
func toSpec(node any) (any, error) {
	m, ok := node.(map[string]any)
	if !ok {
		return node, nil
	}

	if len(m) == 1 {
		for key, arg := range m {
			if strings.HasPrefix(key, "$") {
				return directive(key, arg)
			}
		}
	}

	fields := make(map[string]any, len(m))
	for name, sub := range m {
		spec, err := toSpec(sub)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", name, err)
		}
		fields[name] = spec
	}
	return fields, nil
}

func directive(key string, arg any) (any, error) {
	switch key {
	case "$type":
		name, ok := arg.(string)
		if !ok {
			return nil, fmt.Errorf("$type wants a type name string, got %s", conform.KindOf(arg))
		}
		return conform.Type(name), nil

	case "$equals":
		// The only way a document can express string equality: a bare
		// string is always a type name.
		return conform.Equal(arg), nil

	case "$array":
		elem, err := toSpec(arg)
		if err != nil {
			return nil, fmt.Errorf("$array: %w", err)
		}
		return conform.ArrayOf(elem), nil

	case "$oneOf":
		vals, ok := arg.([]any)
		if !ok {
			return nil, fmt.Errorf("$oneOf wants a sequence of allowed values, got %s", conform.KindOf(arg))
		}
		return conform.OneOf(vals...), nil

	case "$union":
		raw, ok := arg.([]any)
		if !ok {
			return nil, fmt.Errorf("$union wants a sequence of alternatives, got %s", conform.KindOf(arg))
		}
		specs := make([]any, len(raw))
		for i, alt := range raw {
			spec, err := toSpec(alt)
			if err != nil {
				return nil, fmt.Errorf("$union alternative %d: %w", i, err)
			}
			specs[i] = spec
		}
		return conform.UnionOf(specs...), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDirective, key)
	}
}
