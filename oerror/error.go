package oerror

import "fmt"

// FootingError is an error produced by footing itself rather than by one of the host's collaborators.
type FootingError struct {
	Err string
}

// New returns a FootingError with a message formatted from the format and arguments passed.
func New(format string, args ...any) *FootingError {
	if len(args) == 0 {
		return &FootingError{Err: format}
	}
	return &FootingError{Err: fmt.Sprintf(format, args...)}
}

func (e *FootingError) Error() string {
	return e.Err
}
