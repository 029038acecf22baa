package progstore

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that a program has no entry under its canonical key.
// Test with errors.Is.
var ErrNotFound = errors.New("program not found")

// BackendError reports a failure of the underlying flat store. It always
// carries the backend's own diagnostic, reachable through Unwrap.
type BackendError struct {
	Op  string // backend operation: "get", "set", "delete", "len", "key"
	Key string // backend key or index involved, "" when not applicable
	Err error
}

func (e *BackendError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("backend %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("backend %s %q failed: %v", e.Op, e.Key, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }

// DecodeError reports that a stored value did not parse into a valid entry,
// or that its schema version is unrecognized. Either way the stored data is
// corrupt from the store's point of view and the error is never swallowed.
type DecodeError struct {
	Key     string // backend key holding the bad value
	Version uint16 // unrecognized schema version; 0 when the payload did not parse
	Err     error  // codec diagnostic; nil for version mismatches
}

func (e *DecodeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("entry %q has unsupported schema version %d", e.Key, e.Version)
	}
	return fmt.Sprintf("corrupt entry %q: %v", e.Key, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
