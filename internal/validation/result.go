package validation

// Result is either an accepted value or the violations that rejected it.
type Result[T any] struct {
	value      T
	violations []Violation
}

// Accept wraps a value that passed every rule.
func Accept[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Reject wraps the violations found for a value.
func Reject[T any](violations []Violation) Result[T] {
	return Result[T]{violations: violations}
}

// OK reports whether the value was accepted.
func (r Result[T]) OK() bool {
	return len(r.violations) == 0
}

// Value returns the accepted (normalized) value. It is the zero value when
// the result was rejected.
func (r Result[T]) Value() T {
	return r.value
}

// Violations returns the rule failures, or nil when accepted.
func (r Result[T]) Violations() []Violation {
	return r.violations
}

// Err returns a *Error for rejected results and nil otherwise.
func (r Result[T]) Err() error {
	if r.OK() {
		return nil
	}
	return &Error{Violations: r.violations}
}
