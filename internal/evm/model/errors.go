package model

import "fmt"

// ValidationError reports a malformed value met while building a model value.
type ValidationError struct {
	Kind   string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Kind, e.Value, e.Reason)
}
