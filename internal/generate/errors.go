package generate

import (
	"fmt"

	"github.com/okra-platform/crudkit/internal/descriptor"
)

// ErrDescriptorNotFound is returned when the description file does not exist.
// Nothing has been written when it is returned.
var ErrDescriptorNotFound = descriptor.ErrNotFound

// WriteError reports an artifact that could not be written. Artifacts written
// before it stay on disk.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
