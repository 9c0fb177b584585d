package conform

import (
	"fmt"
	"strings"
)

// Validator checks a candidate value at a location within the value under
// validation. A nil result means the value conforms; a non-nil *Failure
// describes the first mismatch. Validators signal failure purely through
// their return value and never panic for a failed check.
//
// Validators are stateless and side-effect-free: the same validator applied
// to the same value yields the same result on every call, and a single
// validator may be used from any number of goroutines concurrently.
type Validator func(value any, at Path) *Failure

// Failure describes a single validation mismatch: a human-readable message
// and the path to the exact location that failed. It is created by the
// validator that first detects the mismatch and propagated upward
// unmodified; composites only extend the path handed to their children.
type Failure struct {
	Message string
	Path    Path
}

// Error renders the failure as "path |> message", or the message alone when
// the failure sits at the root of the validated value. Aggregated failures
// (a union whose alternatives all failed) already carry a location per line
// and render as-is.
func (f *Failure) Error() string {
	if f.Path.String() == "" || strings.Contains(f.Message, "\n") {
		return f.Message
	}
	return f.Path.String() + " |> " + f.Message
}

// Failf builds a Failure at the given location. Custom validators outside
// this package should use it to report mismatches in the engine's format.
func Failf(at Path, format string, args ...any) *Failure {
	return &Failure{Message: fmt.Sprintf(format, args...), Path: at}
}

// Check validates value against spec from the root path and reports the
// outcome as an error. It is the convenience entry point for callers that
// do not need to manage paths themselves.
func Check(value, spec any) error {
	if f := Resolve(spec)(value, RootPath()); f != nil {
		return f
	}
	return nil
}
