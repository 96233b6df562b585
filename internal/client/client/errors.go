package client

import (
	"errors"
	"fmt"
)

var ErrUpstream = errors.New("card service error")

// Error describes a failed upstream call. Status is 0 for transport and
// decode failures; Details carries the upstream's own message when present.
type Error struct {
	Op      string
	Status  int
	Details string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Op
	if e.Status != 0 {
		msg += fmt.Sprintf(": status %d", e.Status)
	}
	if e.Details != "" {
		msg += ": " + e.Details
	}
	if e.Err != nil && !errors.Is(e.Err, ErrUpstream) {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both ErrUpstream and the underlying cause.
func (e *Error) Unwrap() []error {
	if e.Err == nil || errors.Is(e.Err, ErrUpstream) {
		return []error{ErrUpstream}
	}
	return []error{ErrUpstream, e.Err}
}
