// Package fsid mints the per-instance identity attached to every log
// line an engine emits, adapted from cesium's pk package (a uuid.UUID
// newtype used as cesium's record primary key). Here it identifies a
// *process-local engine instance* rather than a stored record — useful
// for telling concurrently-mounted /ram instances apart in logs — so
// only New and String survive the port; there is nothing to persist or
// parse back out of bytes.
package fsid

import "github.com/google/uuid"

// ID identifies one engine instance for the lifetime of the process.
type ID uuid.UUID

// New mints a fresh instance identifier.
func New() ID {
	return ID(uuid.New())
}

// String implements fmt.Stringer and zapcore.ObjectMarshaler-friendly
// formatting for use as a zap.Stringer log field.
func (id ID) String() string {
	return uuid.UUID(id).String()
}
