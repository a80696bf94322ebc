package store

import "fmt"

// ErrCorruptRecord is returned when a stored record cannot be parsed.
// The store format is self-produced, so a bad record means the file was
// edited or damaged; loading aborts rather than skipping lines.
type ErrCorruptRecord struct {
	Path string
	Line int
	Err  error
}

func (e ErrCorruptRecord) Error() string {
	return fmt.Sprintf("corrupt annotation store %s:%d: %v", e.Path, e.Line, e.Err)
}

func (e ErrCorruptRecord) Unwrap() error {
	return e.Err
}
