package ledger

import "fmt"

// CorruptDataError reports a backing file that exists but cannot be
// parsed as a transaction array. The store leaves the file alone so the
// user can inspect or repair it.
type CorruptDataError struct {
	Path string
	Err  error
}

func (e *CorruptDataError) Error() string {
	return fmt.Sprintf("corrupt ledger file %s: %v", e.Path, e.Err)
}

func (e *CorruptDataError) Unwrap() error { return e.Err }

// PersistenceError reports an I/O failure reading or writing the
// backing file. The in-memory sequence stays valid for the session.
type PersistenceError struct {
	Op   string // "load" or "save"
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("ledger %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
