package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionDone is returned for any input after the session ended.
	ErrSessionDone = errors.New("session is done")

	// ErrUnexpectedInput is returned for an input the current state does
	// not accept, e.g. Confirm while asking.
	ErrUnexpectedInput = errors.New("unexpected input")
)

// InputError rejects learn input that would build an invalid node. The
// session stays in StateLearning.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
