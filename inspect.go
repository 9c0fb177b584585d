package conform

import (
	"fmt"
	"reflect"
	"runtime"
	"sort"
	"strconv"
	"strings"
)

// maxRenderDepth caps Render's recursion so self-referential values
// terminate instead of looping.
const maxRenderDepth = 6

// primitiveKind returns the coarse runtime tag the type validator compares
// against: "string", "number", "boolean", "function", or "object". Every
// numeric width is "number". nil (and anything that is not one of the other
// four) tags as "object"; the shape validator's separate non-null assertion
// depends on exactly this split, so the tag deliberately stays coarse while
// KindOf stays fine-grained.
func primitiveKind(v any) string {
	if v == nil {
		return "object"
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Func:
		return "function"
	default:
		return "object"
	}
}

// KindOf returns a display-oriented kind name for v: "null" for nil values
// and nil pointers/maps, "array" for slices and arrays, "function" for
// funcs, otherwise the primitive tag. It is finer-grained than
// primitiveKind so failure messages can say "array" or "null" rather than
// the reductive "object".
func KindOf(v any) string {
	if v == nil {
		return "null"
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Pointer, reflect.Map:
		if rv.IsNil() {
			return "null"
		}
		return "object"
	default:
		return primitiveKind(v)
	}
}

// Render produces a display string for any value, for inclusion in failure
// messages. Strings are quoted, funcs render by name when the runtime knows
// one, slices render element-wise in brackets, and maps render as sorted
// {key: value} pairs so output is deterministic. Render never panics;
// recursion is depth-capped so cyclic values terminate.
func Render(v any) string {
	return render(v, 0)
}

func render(v any, depth int) string {
	if v == nil {
		return "null"
	}
	if depth > maxRenderDepth {
		return "..."
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return strconv.Quote(rv.String())
	case reflect.Func:
		if rv.IsNil() {
			return "null"
		}
		if fn := runtime.FuncForPC(rv.Pointer()); fn != nil {
			name := fn.Name()
			if i := strings.LastIndex(name, "."); i >= 0 {
				name = name[i+1:]
			}
			if name != "" {
				return name
			}
		}
		return "function"
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = render(rv.Index(i).Interface(), depth+1)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case reflect.Map:
		if rv.IsNil() {
			return "null"
		}
		pairs := make([]string, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			key := fmt.Sprintf("%v", iter.Key().Interface())
			pairs = append(pairs, key+": "+render(iter.Value().Interface(), depth+1))
		}
		sort.Strings(pairs)
		return "{" + strings.Join(pairs, ", ") + "}"
	case reflect.Pointer:
		if rv.IsNil() {
			return "null"
		}
		return render(rv.Elem().Interface(), depth+1)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// identical reports strict identity between two values: same dynamic type
// and equal under Go's == operator. There is no coercion and no structural
// deep equality; uncomparable operands never match, and NaN never equals
// itself (standard float comparison semantics).
func identical(a, b any) (eq bool) {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	// Comparable() can still admit structs whose interface-typed fields
	// hold uncomparable values at run time; a failed comparison is a
	// mismatch, not a panic.
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}
