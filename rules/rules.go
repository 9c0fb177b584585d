package rules

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/conformd/conform"
)

// NonEmpty returns a validator requiring a string with at least one
// non-whitespace character.
func NonEmpty() conform.Validator {
	return func(value any, at conform.Path) *conform.Failure {
		s, ok := value.(string)
		if !ok {
			return conform.Failf(at, "expected value of type string, received %s", conform.KindOf(value))
		}
		if strings.TrimSpace(s) == "" {
			return conform.Failf(at, "expected value to be a non-empty string, received %s", conform.Render(s))
		}
		return nil
	}
}

// Match returns a validator requiring a string that matches the given
// regular expression. An invalid pattern yields a validator that fails
// every value with the compile error, keeping failures data rather than
// panics.
func Match(pattern string) conform.Validator {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return func(_ any, at conform.Path) *conform.Failure {
			return conform.Failf(at, "invalid pattern %q: %v", pattern, err)
		}
	}
	return func(value any, at conform.Path) *conform.Failure {
		s, ok := value.(string)
		if !ok {
			return conform.Failf(at, "expected value of type string, received %s", conform.KindOf(value))
		}
		if !re.MatchString(s) {
			return conform.Failf(at, "expected value to match %s, received %s", pattern, conform.Render(s))
		}
		return nil
	}
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Email returns a validator requiring a plausibly formed email address.
func Email() conform.Validator {
	return func(value any, at conform.Path) *conform.Failure {
		s, ok := value.(string)
		if !ok {
			return conform.Failf(at, "expected value of type string, received %s", conform.KindOf(value))
		}
		if !emailPattern.MatchString(s) {
			return conform.Failf(at, "expected value to be an email address, received %s", conform.Render(s))
		}
		return nil
	}
}

// UUID returns a validator requiring a string that parses as a UUID in any
// of the formats accepted by github.com/google/uuid.
func UUID() conform.Validator {
	return func(value any, at conform.Path) *conform.Failure {
		s, ok := value.(string)
		if !ok {
			return conform.Failf(at, "expected value of type string, received %s", conform.KindOf(value))
		}
		if _, err := uuid.Parse(s); err != nil {
			return conform.Failf(at, "expected value to be a UUID, received %s", conform.Render(s))
		}
		return nil
	}
}

// Positive returns a validator requiring a number greater than zero.
func Positive() conform.Validator {
	return func(value any, at conform.Path) *conform.Failure {
		n, ok := asNumber(value)
		if !ok {
			return conform.Failf(at, "expected value of type number, received %s", conform.KindOf(value))
		}
		if n <= 0 {
			return conform.Failf(at, "expected value to be positive, received %s", conform.Render(value))
		}
		return nil
	}
}

func asNumber(value any) (float64, bool) {
	if value == nil {
		return 0, false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}
