package ramfs

import (
	"github.com/cockroachdb/errors"

	"ramfs/node"
	"ramfs/pathresolve"
)

// Unlink implements spec.md §4.3's unlink(path): resolves path as a
// file and, only if it has no open handles, removes it from its
// parent's child list. Non-existent, in-use, or directory-typed paths
// fail; the root is protected automatically, since it is a directory
// and therefore never matches the required WantFile resolution.
func (fs *FS) Unlink(path string) error {
	sw := fs.metrics.Unlink.Stopwatch()
	sw.Start()
	defer sw.Stop()

	fs.mu.Lock()
	defer fs.mu.Unlock()

	target, err := pathresolve.Resolve(fs.root, path, pathresolve.WantFile)
	if err != nil {
		return errors.Wrapf(ErrNotFound, "unlink %q", path)
	}
	if target.UseCount != 0 {
		return errors.Wrapf(ErrBusy, "unlink %q: in use", path)
	}
	node.RemoveChild(target.Parent, target)
	return nil
}
