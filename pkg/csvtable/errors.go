// Error types for table IO.
//
// Only filesystem boundaries and invalid configuration produce errors.
// Parsing never does - malformed
// numeric content, ragged rows, and out-of-range reads all resolve to
// zero-value defaults or auto-expansion instead.
package csvtable

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrNoPath indicates a load or save with no target path: none was
	// given and the table has no current path from an earlier operation.
	ErrNoPath = errors.New("no file path set")

	// ErrInvalidSeparator indicates a separator containing a quote or
	// newline character, or an empty separator where one is required.
	ErrInvalidSeparator = errors.New("invalid field separator")

	// ErrInvalidCommentPrefix indicates a comment prefix that collides
	// with the field separator.
	ErrInvalidCommentPrefix = errors.New("invalid comment prefix")
)

// FileError wraps a filesystem failure from Load, Save, or CreateFile with
// the operation and path involved. The table's in-memory state is unchanged
// when one of these is returned.
type FileError struct {
	// Op is the failing operation: "load", "save", or "create".
	Op string
	// Path is the file path involved.
	Path string
	// Err is the underlying error.
	Err error
}

// Error returns a formatted message with operation and path.
func (e *FileError) Error() string {
	return fmt.Sprintf("csvtable: %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *FileError) Unwrap() error {
	return e.Err
}
