package tufte

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyInput is returned when a range or a summary is requested for a
// series without any (non-NaN) value.
var ErrEmptyInput = errors.New("tufte: empty input")

// InvalidArgumentError reports an option value outside its allowed set
// or range.
type InvalidArgumentError struct {
	Option  string
	Value   interface{}
	Allowed []string // allowed values for enumerated options, else nil
	Reason  string   // used when Allowed is empty
}

func (e *InvalidArgumentError) Error() string {
	if len(e.Allowed) > 0 {
		quoted := make([]string, len(e.Allowed))
		for i, a := range e.Allowed {
			quoted[i] = fmt.Sprintf("%q", a)
		}
		return fmt.Sprintf("tufte: invalid %s %#v: expected one of {%s}",
			e.Option, e.Value, strings.Join(quoted, ","))
	}
	if e.Reason != "" {
		return fmt.Sprintf("tufte: invalid %s %v: %s", e.Option, e.Value, e.Reason)
	}
	return fmt.Sprintf("tufte: invalid %s %v", e.Option, e.Value)
}

// MissingColumnError is returned when a column is referenced by name
// which the supplied table does not have.
type MissingColumnError struct {
	Column    string
	Available []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("tufte: no column %q in table (have %s)",
		e.Column, strings.Join(e.Available, ", "))
}

func invalid(option string, value interface{}, reason string) error {
	return &InvalidArgumentError{Option: option, Value: value, Reason: reason}
}

// NotOneOf returns an InvalidArgumentError for an enumerated option.
func NotOneOf(option string, value interface{}, allowed ...string) error {
	return &InvalidArgumentError{Option: option, Value: value, Allowed: allowed}
}
