package ramfs

// Mmap implements spec.md §4.3's mmap(handle): a borrowed view of the
// file handle's full content buffer, valid only until an operation
// that may reallocate it (notably Write) runs on the same node.
// Callers that need a stable snapshot must copy it before calling
// Write again on the same path.
func (fs *FS) Mmap(h int) ([]byte, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	n, err := fs.fileSlot(h)
	if err != nil {
		return nil, err
	}
	return n.Buffer, nil
}
