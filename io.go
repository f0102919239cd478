package ramfs

import (
	"github.com/cockroachdb/errors"

	"ramfs/node"
)

// fileSlot resolves h to a file (non-directory) handle slot, or
// ErrBadHandle if h is invalid or names a directory handle.
func (fs *FS) fileSlot(h int) (*node.Node, error) {
	slot, ok := fs.handles.Get(h)
	if !ok || slot.IsDirectory {
		return nil, errors.Wrapf(ErrBadHandle, "handle %d", h)
	}
	return slot.Node, nil
}

// Read implements spec.md §4.3's read(handle, buf, n): clamps to the
// bytes remaining before logical_size, copies them, and advances the
// cursor. Valid only on file handles.
func (fs *FS) Read(h int, buf []byte) (int, error) {
	sw := fs.metrics.Read.Stopwatch()
	sw.Start()
	defer sw.Stop()

	fs.mu.Lock()
	defer fs.mu.Unlock()

	slot, ok := fs.handles.Get(h)
	if !ok || slot.IsDirectory {
		return 0, errors.Wrapf(ErrBadHandle, "read handle %d", h)
	}
	n := slot.Node
	remaining := n.LogicalSize - slot.FileCursor
	if remaining < 0 {
		remaining = 0
	}
	want := len(buf)
	if want > remaining {
		want = remaining
	}
	copy(buf[:want], n.Buffer[slot.FileCursor:slot.FileCursor+want])
	slot.FileCursor += want
	return want, nil
}

// Write implements spec.md §4.3's write(handle, buf, n): grows the
// buffer with slack if necessary, copies, advances the cursor, and
// raises logical_size if the cursor now exceeds it. Valid only on
// file handles whose node is currently in writing mode.
func (fs *FS) Write(h int, buf []byte) (int, error) {
	sw := fs.metrics.Write.Stopwatch()
	sw.Start()
	defer sw.Stop()

	fs.mu.Lock()
	defer fs.mu.Unlock()

	slot, ok := fs.handles.Get(h)
	if !ok || slot.IsDirectory {
		return 0, errors.Wrapf(ErrBadHandle, "write handle %d", h)
	}
	n := slot.Node
	if n.OpenMode != node.ModeWriting {
		return 0, errors.Wrapf(ErrBadHandle, "write handle %d: node not open for writing", h)
	}

	needed := slot.FileCursor + len(buf)
	node.Grow(n, needed, fs.reallocSlack)

	copy(n.Buffer[slot.FileCursor:needed], buf)
	slot.FileCursor = needed
	if slot.FileCursor > n.LogicalSize {
		n.LogicalSize = slot.FileCursor
	}
	return len(buf), nil
}

// Seek implements spec.md §4.3's seek(handle, offset, whence).
func (fs *FS) Seek(h int, offset int64, whence Whence) (int64, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	slot, ok := fs.handles.Get(h)
	if !ok || slot.IsDirectory {
		return 0, errors.Wrapf(ErrBadHandle, "seek handle %d", h)
	}
	n := slot.Node

	var base int64
	switch whence {
	case SeekSet:
		base = 0
	case SeekCurrent:
		base = int64(slot.FileCursor)
	case SeekEnd:
		base = int64(n.LogicalSize)
	default:
		return 0, errors.Wrapf(ErrInvalid, "seek handle %d: bad whence", h)
	}

	next := base + offset
	if next < 0 {
		return 0, errors.Wrapf(ErrInvalid, "seek handle %d: negative result", h)
	}
	// Growing via seek is not supported: the cursor is clamped to
	// logical_size rather than allowed past it.
	if next > int64(n.LogicalSize) {
		next = int64(n.LogicalSize)
	}
	slot.FileCursor = int(next)
	return next, nil
}

// Tell implements spec.md §4.3's tell(handle).
func (fs *FS) Tell(h int) (int64, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	_, err := fs.fileSlot(h)
	if err != nil {
		return -1, err
	}
	slot, _ := fs.handles.Get(h)
	return int64(slot.FileCursor), nil
}

// Total implements spec.md §4.3's total(handle): the node's
// logical_size.
func (fs *FS) Total(h int) (int64, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	n, err := fs.fileSlot(h)
	if err != nil {
		return -1, err
	}
	return int64(n.LogicalSize), nil
}

// Truncate resizes a writing handle's node to exactly size bytes,
// zero-filling any newly exposed region when growing and clamping the
// cursor when shrinking past it. Not part of spec.md's operation set
// (the spec only ever truncates to zero, at open time); added so the
// afero.File facade in ramfsafero can satisfy afero.File's Truncate
// method without reaching into node internals.
func (fs *FS) Truncate(h int, size int64) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	slot, ok := fs.handles.Get(h)
	if !ok || slot.IsDirectory {
		return errors.Wrapf(ErrBadHandle, "truncate handle %d", h)
	}
	n := slot.Node
	if n.OpenMode != node.ModeWriting {
		return errors.Wrapf(ErrBadHandle, "truncate handle %d: node not open for writing", h)
	}
	if size < 0 {
		return errors.Wrapf(ErrInvalid, "truncate handle %d: negative size", h)
	}

	if int(size) > n.Capacity {
		node.Grow(n, int(size), fs.reallocSlack)
	}
	if int(size) > n.LogicalSize {
		for i := n.LogicalSize; i < int(size); i++ {
			n.Buffer[i] = 0
		}
	}
	n.LogicalSize = int(size)
	if slot.FileCursor > n.LogicalSize {
		slot.FileCursor = n.LogicalSize
	}
	return nil
}
