package ramfs

import "github.com/cockroachdb/errors"

// The user-visible error taxonomy from spec.md §7. Every failure path
// through the engine returns one of these, optionally wrapped with
// errors.Wrapf to attach path/handle context; callers distinguish them
// with errors.Is.
var (
	// ErrBadHandle covers an invalid handle, or a handle whose kind
	// (file/directory) does not match the operation attempted on it.
	ErrBadHandle = errors.New("[ramfs] bad handle")
	// ErrNotFound covers an unresolved path or a terminal kind mismatch
	// during resolution.
	ErrNotFound = errors.New("[ramfs] not found")
	// ErrInvalid covers malformed arguments: a directory open requesting
	// a writable mode, a seek landing before byte zero, an unsupported
	// fcntl command.
	ErrInvalid = errors.New("[ramfs] invalid argument")
	// ErrBusy is returned by open when the exclusion protocol (spec.md
	// §3 invariants 1–2) would be violated.
	ErrBusy = errors.New("[ramfs] busy")
	// ErrTooManyOpenFiles is returned by open when the handle table is
	// exhausted.
	ErrTooManyOpenFiles = errors.New("[ramfs] too many open files")
	// ErrNoMemory covers an allocation failure during create or write.
	// Go's allocator does not return recoverable errors the way the
	// original C allocator does, so nothing in this engine currently
	// produces it; it is kept in the taxonomy so callers written against
	// spec.md's error set compile against a complete enum.
	ErrNoMemory = errors.New("[ramfs] no memory")
)
