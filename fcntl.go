package ramfs

import "github.com/cockroachdb/errors"

// Fcntl implements spec.md §4.3's fcntl(handle, cmd, ...). Only
// FcntlGetFlags is meaningful, returning the flags supplied at open;
// FcntlSetFlags, FcntlGetFDFlags, and FcntlSetFDFlags are accepted and
// return 0 without effect, matching existing behavior; any other
// command is rejected as invalid.
func (fs *FS) Fcntl(h int, cmd FcntlCmd, arg uint32) (uint32, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	slot, ok := fs.handles.Get(h)
	if !ok {
		return 0, errors.Wrapf(ErrBadHandle, "fcntl handle %d", h)
	}

	switch cmd {
	case FcntlGetFlags:
		return slot.OpenFlags, nil
	case FcntlSetFlags, FcntlGetFDFlags, FcntlSetFDFlags:
		return 0, nil
	default:
		return 0, errors.Wrapf(ErrInvalid, "fcntl handle %d: unsupported command", h)
	}
}
