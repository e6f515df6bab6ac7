package conversation

import "fmt"

// DocumentLoadError is returned by LoadDocument when a file cannot be read or is
// not valid UTF-8 text.
type DocumentLoadError struct {
	Path  string
	Cause error
}

func (e *DocumentLoadError) Error() string {
	return fmt.Sprintf("could not load document %s: %v", e.Path, e.Cause)
}

func (e *DocumentLoadError) Unwrap() error {
	return e.Cause
}
