// Package ramfs implements the in-memory hierarchical filesystem
// engine: a tree of named nodes, a fixed-capacity handle table with a
// per-node read/write exclusion protocol, reallocating file content
// buffers, and the zero-copy attach/detach bridge, all serialized
// behind a single engine mutex.
//
// The design is ported from a C kernel component onto the idioms of
// cesium's kfs package: an acquire/release entry table with its own
// metrics and error-aggregation helpers, generalized here from
// "on-disk file keyed by primary key" to "in-memory node keyed by
// path, with a use-count and open-mode exclusion protocol instead of a
// single acquire lock per file."
package ramfs

import (
	"sync"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"ramfs/handle"
	"ramfs/internal/errutil"
	"ramfs/internal/fsid"
	"ramfs/internal/metrics"
	"ramfs/node"
	"ramfs/vfshost"
)

// MountName is the name spec.md §6 registers the engine's operation
// table under.
const MountName = "/ram"

// FS is one instance of the filesystem engine: a root directory, a
// handle table, and the single mutex that serializes every operation
// spec.md §5 describes. The zero value is not usable; construct with
// New.
type FS struct {
	options
	id      fsid.ID
	mu      sync.Mutex
	root    *node.Node
	handles *handle.Table
	metrics metrics.Engine
}

// New constructs a standalone engine instance. It does not register
// with any vfshost.Registry; callers that want the spec.md §6 mount
// behavior should use Init instead, or call Mount explicitly.
func New(opts ...Option) *FS {
	o := newOptions(opts...)
	fs := &FS{
		options: *o,
		id:      fsid.New(),
		root:    node.NewRoot(),
		handles: handle.New(o.maxHandles),
	}
	fs.logger.Info("engine constructed",
		zap.Stringer("instance", fs.id),
		zap.Int("max_handles", o.maxHandles),
	)
	return fs
}

// OperationTable builds the vfshost.OpTable spec.md §6 says the engine
// exports: every supported slot bound to this instance's methods,
// every unsupported slot left nil.
func (fs *FS) OperationTable() vfshost.OpTable {
	return vfshost.OpTable{
		Open:  func(path string, flags uint32) (int, error) { return fs.Open(path, OpenFlags(flags)) },
		Close: fs.Close,
		Read:  fs.Read,
		Write: fs.Write,
		Seek: func(h int, offset int64, whence int) (int64, error) {
			return fs.Seek(h, offset, Whence(whence))
		},
		Tell:      fs.Tell,
		Total:     fs.Total,
		RewindDir: fs.RewindDir,
		ReadDir: func(h int) (string, bool, int64, bool, error) {
			e, err := fs.ReadDir(h)
			if err != nil {
				return "", false, 0, false, err
			}
			if e == nil {
				return "", false, 0, false, nil
			}
			return e.Name, e.IsDir, e.Size, true, nil
		},
		Unlink: fs.Unlink,
		Mmap:   fs.Mmap,
		Stat: func(path string) (any, error) {
			si, err := fs.Stat(path)
			return si, err
		},
		Fstat: func(h int) (any, error) {
			si, err := fs.Fstat(h)
			return si, err
		},
		Fcntl: func(h int, cmd int, arg uint32) (uint32, error) {
			return fs.Fcntl(h, FcntlCmd(cmd), arg)
		},
	}
}

// Mount registers fs's operation table with registry under name,
// returning an unregister function. Most callers should use the
// package-level Init, which mounts under MountName on a process-wide
// singleton; Mount exists for tests and for hosting more than one
// engine instance in the same process.
func (fs *FS) Mount(registry *vfshost.Registry, name string) (unregister func(), err error) {
	return registry.Register(name, fs.OperationTable())
}

var (
	singletonMu sync.Mutex
	singleton   *FS
	singletonUn func()
)

// Init is the idempotent module-level initializer spec.md §6
// describes: if the process-wide engine is already constructed, it
// returns the existing instance. Otherwise it constructs one,
// allocates the root, and registers its operation table with
// vfshost.Default under MountName.
func Init(opts ...Option) (*FS, error) {
	singletonMu.Lock()
	defer singletonMu.Unlock()
	if singleton != nil {
		return singleton, nil
	}
	fs := New(opts...)
	unregister, err := fs.Mount(vfshost.Default, MountName)
	if err != nil {
		return nil, err
	}
	singleton, singletonUn = fs, unregister
	return singleton, nil
}

// Shutdown tears down the process-wide engine initialized by Init, per
// spec.md §6: every child directly under the root is freed (mkdir is
// unimplemented, so none can be nested deeper), the handle table is
// reset, and the operation table is deregistered. Shutdown is
// idempotent: calling it when no engine is initialized is a no-op.
//
// A child still open at shutdown time (use_count != 0) is left in
// place rather than forcibly removed out from under its handles; its
// removal failure is recorded and the remaining children are still
// attempted, the same catch-and-continue shape cesium's kfs.Sync uses
// when flushing a set of entries where one failure shouldn't abort the
// rest.
func Shutdown() error {
	singletonMu.Lock()
	defer singletonMu.Unlock()
	if singleton == nil {
		return nil
	}
	fs := singleton
	fs.mu.Lock()
	catch := errutil.New(errutil.WithAggregation())
	for _, child := range append([]*node.Node(nil), fs.root.Children...) {
		child := child
		catch.Exec(func() error {
			if child.UseCount != 0 {
				return errors.Wrapf(ErrBusy, "shutdown: %q still open", child.Name)
			}
			node.RemoveChild(fs.root, child)
			return nil
		})
	}
	fs.handles = handle.New(fs.handles.Cap())
	fs.mu.Unlock()

	fs.logger.Info("engine shut down", zap.Stringer("instance", fs.id))
	if singletonUn != nil {
		singletonUn()
	}
	singleton, singletonUn = nil, nil
	return catch.Error()
}
