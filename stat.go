package ramfs

import (
	"github.com/cockroachdb/errors"

	"ramfs/node"
	"ramfs/pathresolve"
)

// StatInfo is the stat structure spec.md §4.3's stat/fstat fill.
type StatInfo struct {
	Dev     uint32
	Mode    uint32
	Size    int64
	Nlink   int
	Blksize int
	Blocks  int64
}

const statDev uint32 = uint32('r') | uint32('a')<<8 | uint32('m')<<16

const (
	modeTypeDir uint32 = 1 << 14
	modeRead    uint32 = 1 << 0
	modeWrite   uint32 = 1 << 1
	modeExec    uint32 = 1 << 2
)

const statBlksize = 1024

func fillStat(n *node.Node) StatInfo {
	isDir := n.Kind == node.Dir
	mode := modeRead | modeWrite
	si := StatInfo{Dev: statDev, Blksize: statBlksize}
	if isDir {
		mode |= modeTypeDir | modeExec
		si.Size = -1
		si.Nlink = 2
	} else {
		si.Size = int64(n.Capacity)
		si.Nlink = 1
	}
	si.Mode = mode
	si.Blocks = (int64(n.Capacity) + statBlksize - 1) / statBlksize
	return si
}

// Stat implements spec.md §4.3's stat(path). The root path ("" or
// "/") is handled without traversal and without acquiring the engine
// mutex, per spec.md §4.3, since the root node's identity and kind
// never change for the lifetime of the engine.
func (fs *FS) Stat(path string) (StatInfo, error) {
	if path == "" || path == "/" {
		return fillStat(fs.root), nil
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	n, err := pathresolve.Resolve(fs.root, path, pathresolve.WantEither)
	if err != nil {
		return StatInfo{}, errors.Wrapf(ErrNotFound, "stat %q", path)
	}
	return fillStat(n), nil
}

// Fstat implements spec.md §4.3's fstat(handle).
func (fs *FS) Fstat(h int) (StatInfo, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	slot, ok := fs.handles.Get(h)
	if !ok {
		return StatInfo{}, errors.Wrapf(ErrBadHandle, "fstat handle %d", h)
	}
	return fillStat(slot.Node), nil
}
