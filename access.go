package conform

import (
	"reflect"
	"strings"
)

// Get reads the named property off a value. It is the one external
// collaborator the engine depends on: the shape validator uses it to pull
// each declared field off the candidate object.
//
// Maps are read by key (string-keyed directly, any-keyed through
// reflection); structs are read by exported field name or json tag, through
// any number of pointer indirections. Anything absent or unreadable
// yields nil rather than an error, so a missing field simply validates as
// null.
func Get(value any, key string) any {
	if value == nil {
		return nil
	}
	if m, ok := value.(map[string]any); ok {
		return m[key]
	}

	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		kv := reflect.ValueOf(key)
		if !kv.Type().AssignableTo(rv.Type().Key()) {
			return nil
		}
		out := rv.MapIndex(kv)
		if !out.IsValid() {
			return nil
		}
		return out.Interface()
	case reflect.Struct:
		return structField(rv, key)
	default:
		return nil
	}
}

func structField(rv reflect.Value, key string) any {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("json"); ok {
			tagName, _, _ := strings.Cut(tag, ",")
			if tagName == "-" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
		}
		if name == key || f.Name == key {
			return rv.Field(i).Interface()
		}
	}
	return nil
}
