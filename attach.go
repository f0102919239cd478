package ramfs

// Attach implements spec.md §4.4's attach(path, buffer, size): opens
// path write-only|truncate (creating it if absent and establishing
// exclusion the normal way), discards the freshly-allocated buffer
// Open's truncate just installed, splices in the caller's buf with
// capacity and logical_size both set to len(buf), and closes the
// handle. Ownership of buf transfers to the filesystem; the caller
// must not retain or mutate it afterward.
func (fs *FS) Attach(path string, buf []byte) error {
	sw := fs.metrics.Attach.Stopwatch()
	sw.Start()
	defer sw.Stop()

	h, err := fs.Open(path, WriteOnly|Truncate)
	if err != nil {
		return err
	}

	fs.mu.Lock()
	slot, _ := fs.handles.Get(h)
	n := slot.Node
	n.Buffer = buf
	n.Capacity = len(buf)
	n.LogicalSize = len(buf)
	fs.mu.Unlock()

	return fs.Close(h)
}

// Detach implements spec.md §4.4's detach(path, &buffer_out, &size_out):
// opens path read-only, transfers the node's content buffer and
// logical_size to the caller, installs a fresh placeholder buffer so
// the node stays well-formed for the brief window before it is
// unlinked, closes the handle, and unlinks the node. The caller gains
// exclusive ownership of the returned buffer. The placeholder's
// logical_size is set equal to its capacity, matching fs_ramdisk.c's
// fs_ramdisk_detach ("f->data = malloc(64); f->datasize = 64; f->size
// = 64;") rather than leaving it at zero.
func (fs *FS) Detach(path string) (buf []byte, size int, err error) {
	sw := fs.metrics.Detach.Stopwatch()
	sw.Start()
	defer sw.Stop()

	h, err := fs.Open(path, ReadOnly)
	if err != nil {
		return nil, 0, err
	}

	fs.mu.Lock()
	slot, _ := fs.handles.Get(h)
	n := slot.Node
	buf = n.Buffer
	size = n.LogicalSize
	n.Buffer = make([]byte, fs.detachPlaceholderCapacity)
	n.Capacity = fs.detachPlaceholderCapacity
	n.LogicalSize = fs.detachPlaceholderCapacity
	fs.mu.Unlock()

	if err = fs.Close(h); err != nil {
		return nil, 0, err
	}
	if err = fs.Unlink(path); err != nil {
		return nil, 0, err
	}
	return buf, size, nil
}
