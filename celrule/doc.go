// Package celrule adapts CEL (Common Expression Language) predicates into
// conform Validators, for checks that are awkward to express structurally:
//
//	port, err := celrule.New(`value >= 1 && value <= 65535`)
//	if err != nil {
//		// the expression itself was invalid
//	}
//	spec := map[string]any{"port": port}
//	err = conform.Check(value, spec)
//
// The candidate value is bound to the variable "value" as a dynamic type.
// The expression must produce a bool; anything else is rejected at compile
// time. At validation time, both a false result and an evaluation error
// (for example, calling size() on a number) report as ordinary failures at
// the validator's path.
package celrule
