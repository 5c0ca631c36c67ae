package domain

import (
	"fmt"

	"go.uber.org/multierr"
)

// ValidationError reports that a request failed input validation (spec.md
// §7's "Input invalid" kind): fails fast at the call boundary, distinct
// from domain infeasibility, which is never an error value.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ValidationErrors aggregates every invalid field in a single request so a
// caller sees all problems at once, instead of one-at-a-time round trips.
// Built with multierr the way a multi-field config rejection would be,
// following ferex_cli's validator+multierr pairing.
type ValidationErrors struct {
	err error
}

// Add records one field-level validation failure.
func (v *ValidationErrors) Add(field, reason string) {
	v.err = multierr.Append(v.err, &ValidationError{Field: field, Reason: reason})
}

// Err returns nil if no failures were recorded, else an error whose
// Error() lists every failure and whose Unwrap()/multierr.Errors() exposes
// each ValidationError individually.
func (v *ValidationErrors) Err() error {
	if v.err == nil {
		return nil
	}
	return fmt.Errorf("invalid request: %w", v.err)
}
