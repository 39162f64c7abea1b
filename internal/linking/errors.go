package linking

import "errors"

var (
	// ErrParse is returned when an inbound frame is not valid JSON, has
	// the wrong type tag, or is missing a required field. Fatal to the
	// pending operation; never retried.
	ErrParse = errors.New("malformed frame")

	// ErrInvalidCode is returned when a session code fails validation.
	ErrInvalidCode = errors.New("invalid session code")
)
