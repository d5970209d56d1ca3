package render

import (
	"fmt"

	"github.com/vango-dev/hashui/internal/errors"
)

// TypeError reports renderer input that is not a well-formed element.
type TypeError struct {
	// Code is the registered error code.
	Code string

	// Reason describes the input.
	Reason string
}

// Error implements the error interface.
func (e *TypeError) Error() string {
	return fmt.Sprintf("render: %s", e.Reason)
}

// Unwrap exposes the coded error so callers can match on the code.
func (e *TypeError) Unwrap() error {
	return errors.New(e.Code)
}

func typeError(code, format string, args ...any) *TypeError {
	return &TypeError{Code: code, Reason: fmt.Sprintf(format, args...)}
}
