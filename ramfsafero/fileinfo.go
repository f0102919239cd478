package ramfsafero

import (
	"os"
	"time"

	"ramfs"
)

// fileInfo adapts ramfs.StatInfo to os.FileInfo. ramfs nodes carry no
// modification time or Unix permission bits, so ModTime returns the
// zero time and Mode reports a fixed 0644/0755 split by kind.
type fileInfo struct {
	name  string
	isDir bool
	size  int64
}

func newFileInfo(name string, si ramfs.StatInfo) os.FileInfo {
	return &fileInfo{name: name, isDir: si.Size < 0, size: si.Size}
}

func entryFileInfo(e *ramfs.DirEntry) os.FileInfo {
	return &fileInfo{name: e.Name, isDir: e.IsDir, size: e.Size}
}

func (fi *fileInfo) Name() string { return fi.name }

func (fi *fileInfo) Size() int64 {
	if fi.isDir {
		return 0
	}
	return fi.size
}

func (fi *fileInfo) Mode() os.FileMode {
	if fi.isDir {
		return os.ModeDir | 0755
	}
	return 0644
}

func (fi *fileInfo) ModTime() time.Time { return time.Time{} }

func (fi *fileInfo) IsDir() bool { return fi.isDir }

func (fi *fileInfo) Sys() any { return nil }
