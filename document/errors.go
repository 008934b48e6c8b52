package document

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the facade. Callers classify failures with
// errors.Is and decide how to render them; the facade never formats
// user-facing text itself.
var (
	ErrNotFound        = errors.New("document does not exist")
	ErrAlreadyExists   = errors.New("target already exists")
	ErrInvalidArgument = errors.New("invalid argument")
)

// ConversionError carries the diagnostic output of a failed external
// conversion so callers can surface it verbatim.
type ConversionError struct {
	Output string
}

func (e *ConversionError) Error() string {
	if e.Output == "" {
		return "conversion failed"
	}
	return fmt.Sprintf("conversion failed: %s", e.Output)
}
