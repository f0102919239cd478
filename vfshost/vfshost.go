// Package vfshost stands in for the host VFS registry spec.md §1 and
// §6 describe as "an external collaborator" outside this engine's
// scope: the kernel-side table of mount names to operation tables.
// Nothing in the retrieved examples exposes a real third-party
// interface for this with a signature stable enough to bind against
// without running the Go toolchain to verify it (a real kernel VFS
// registry is not a Go package at all), so this package is a minimal,
// self-contained model of the one contract spec.md actually specifies:
// registering and deregistering a named table of operation function
// pointers, with the unsupported slots always nil.
package vfshost

import (
	"sync"

	"github.com/cockroachdb/errors"
)

// ErrAlreadyMounted is returned by Register when name is already taken.
var ErrAlreadyMounted = errors.New("[ramfs.vfshost] mount name already registered")

// ErrNotMounted is returned by Unregister when name is not registered.
var ErrNotMounted = errors.New("[ramfs.vfshost] mount name not registered")

// OpTable conforms to the host VFS's expected signature, per spec.md
// §6: one function-valued field per supported operation, and one
// explicitly nil-typed field per unsupported slot the spec calls out
// by name. The unsupported fields exist only so a caller inspecting
// the table can see the full contract; this package never sets them.
type OpTable struct {
	Open      func(path string, flags uint32) (int, error)
	Close     func(handle int) error
	Read      func(handle int, buf []byte) (int, error)
	Write     func(handle int, buf []byte) (int, error)
	Seek      func(handle int, offset int64, whence int) (int64, error)
	Tell      func(handle int) (int64, error)
	Total     func(handle int) (int64, error)
	ReadDir   func(handle int) (name string, isDir bool, size int64, ok bool, err error)
	RewindDir func(handle int) error
	Unlink    func(path string) error
	Mmap      func(handle int) ([]byte, error)
	Stat      func(path string) (any, error)
	Fstat     func(handle int) (any, error)
	Fcntl     func(handle int, cmd int, arg uint32) (uint32, error)

	// Unsupported slots, always nil: Non-goals per spec.md §1.
	Ioctl    func(handle int, cmd int, arg uint32) (uint32, error)
	Rename   func(oldPath, newPath string) error
	Complete func(handle int) error
	Mkdir    func(path string) error
	Rmdir    func(path string) error
	Poll     func(handle int, events uint32) (uint32, error)
	Link     func(oldPath, newPath string) error
	Symlink  func(target, linkPath string) error
	Seek64   func(handle int, offset int64, whence int) (int64, error)
	Tell64   func(handle int) (int64, error)
	Total64  func(handle int) (int64, error)
	Readlink func(path string) (string, error)
}

// Registry maps mount names to registered operation tables, standing
// in for the kernel's VFS mount table.
type Registry struct {
	mu     sync.Mutex
	mounts map[string]OpTable
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{mounts: make(map[string]OpTable)}
}

// Default is the process-wide registry used by Init/Shutdown, playing
// the role of the one host VFS a kernel process has.
var Default = NewRegistry()

// Register installs table under name. It returns an Unregister
// function the caller should call exactly once during teardown.
func (r *Registry) Register(name string, table OpTable) (unregister func(), err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.mounts[name]; taken {
		return nil, errors.Wrapf(ErrAlreadyMounted, "mount %q", name)
	}
	r.mounts[name] = table
	return func() { _ = r.Unregister(name) }, nil
}

// Unregister removes name's mount, if present.
func (r *Registry) Unregister(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.mounts[name]; !ok {
		return errors.Wrapf(ErrNotMounted, "mount %q", name)
	}
	delete(r.mounts, name)
	return nil
}

// Lookup returns the table registered under name, if any.
func (r *Registry) Lookup(name string) (OpTable, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.mounts[name]
	return t, ok
}
