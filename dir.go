package ramfs

import (
	"github.com/cockroachdb/errors"

	"ramfs/node"
)

// DirEntry is the per-handle scratch directory entry spec.md §4.3's
// readdir fills and returns a borrowed view of. Size is -1 for a
// directory child, matching Stat's "-1 for directories" convention,
// or the child's logical_size for a file child.
type DirEntry struct {
	Name  string
	IsDir bool
	Size  int64
}

// ReadDir implements spec.md §4.3's readdir(handle): yields the child
// the cursor currently points to and advances it to the next sibling.
// Valid only on directory handles with a non-exhausted cursor; once
// the cursor is exhausted (or the handle is not a directory at all)
// it returns (nil, ErrBadHandle), matching spec.md's "returns null
// (with bad-handle error) when cursor is null."
func (fs *FS) ReadDir(h int) (*DirEntry, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	slot, ok := fs.handles.Get(h)
	if !ok || !slot.IsDirectory {
		return nil, errors.Wrapf(ErrBadHandle, "readdir handle %d", h)
	}
	dir := slot.Node
	if slot.DirCursor < 0 || slot.DirCursor >= len(dir.Children) {
		return nil, errors.Wrapf(ErrBadHandle, "readdir handle %d: cursor exhausted", h)
	}

	child := dir.Children[slot.DirCursor]
	slot.DirCursor++
	if slot.DirCursor >= len(dir.Children) {
		slot.DirCursor = -1
	}

	entry := &DirEntry{Name: child.Name, IsDir: child.Kind == node.Dir}
	if entry.IsDir {
		entry.Size = -1
	} else {
		entry.Size = int64(child.LogicalSize)
	}
	return entry, nil
}

// RewindDir implements spec.md §4.3's rewinddir(handle): resets the
// cursor to the first child of the handle's directory.
func (fs *FS) RewindDir(h int) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	slot, ok := fs.handles.Get(h)
	if !ok || !slot.IsDirectory {
		return errors.Wrapf(ErrBadHandle, "rewinddir handle %d", h)
	}
	if len(slot.Node.Children) == 0 {
		slot.DirCursor = -1
	} else {
		slot.DirCursor = 0
	}
	return nil
}
