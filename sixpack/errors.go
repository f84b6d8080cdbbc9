package sixpack

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidName is returned when an experiment name, alternative name or KPI would be
	// rejected by the server.
	ErrInvalidName = errors.New("invalid name")

	// ErrUnknownAlternative is returned when the server answers with an alternative that the
	// experiment does not declare.
	ErrUnknownAlternative = errors.New("server returned an unknown alternative")
)

// ServerError is returned when the sixpack server answers with a failure.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("sixpack server returned status %d", e.StatusCode)
	}

	return fmt.Sprintf("sixpack server returned status %d: %s", e.StatusCode, e.Message)
}
