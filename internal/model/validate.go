package model

import (
	"fmt"
	"strings"
)

// FieldError describes a single invalid field on a submitted transaction.
type FieldError struct {
	Field  string
	Value  string
	Reason string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Field, e.Value, e.Reason)
}

// ValidationError reports every invalid field of a rejected transaction.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, fe := range e.Fields {
		msgs[i] = fe.Error()
	}
	return "invalid transaction: " + strings.Join(msgs, "; ")
}
