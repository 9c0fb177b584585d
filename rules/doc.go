// Package rules provides prebuilt leaf validators for common value checks:
// non-empty strings, regular expression matches, email addresses, UUIDs,
// and positive numbers.
//
// Each rule returns a conform.Validator, so rules drop directly into
// declarative shapes alongside type names and nested specs:
//
//	spec := map[string]any{
//		"id":    rules.UUID(),
//		"email": rules.Email(),
//		"count": rules.Positive(),
//	}
//	err := conform.Check(value, spec)
//
// Rules report mismatches through the engine's failure protocol; none of
// them panic, including Match with an invalid pattern.
package rules
