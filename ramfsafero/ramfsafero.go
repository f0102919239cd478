// Package ramfsafero exposes a *ramfs.FS as an afero.Fs, grounded on
// kfs/mem.go and kfs/base.go's afero.NewMemMapFs()-backed BaseFS: the
// same idea as kfs wrapping an afero in-memory filesystem to satisfy
// its own BaseFS contract, run in reverse — this engine satisfies
// afero's contract instead of consuming it. This is the concrete
// binding for spec.md §6's "VFS operation table" external interface:
// existing Go code written against afero.Fs can address a mounted
// engine without caring that it isn't a real disk or afero's own
// MemMapFs.
//
// mkdir and rename are Non-goals (spec.md §1); MkdirAll is accepted
// as a no-op for any path so callers that unconditionally MkdirAll
// before Create still work for flat (root-level) paths. Mkdir is a
// no-op only for the root and fails for any other path, and Rename
// always fails.
package ramfsafero

import (
	"io"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"

	"ramfs"
)

// New wraps fs as an afero.Fs.
func New(fs *ramfs.FS) afero.Fs {
	return &aferoFS{fs: fs}
}

type aferoFS struct {
	fs *ramfs.FS
}

func (a *aferoFS) Name() string { return "ramfs" }

func (a *aferoFS) Create(name string) (afero.File, error) {
	return a.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0)
}

func (a *aferoFS) Open(name string) (afero.File, error) {
	return a.OpenFile(name, os.O_RDONLY, 0)
}

func (a *aferoFS) OpenFile(name string, flag int, _ os.FileMode) (afero.File, error) {
	var flags ramfs.OpenFlags
	if isRootPath(name) {
		// The root is only ever opened to list it — mirroring
		// fs_ramdisk.c's ramdisk_open, which resolves fn[0]==0 straight
		// to the root file_t and then rejects it unless O_DIR was
		// requested, since a directory can't be read/written as a file.
		flags = ramfs.Directory | ramfs.ReadOnly
	} else {
		flags = translateFlags(flag)
	}
	h, err := a.fs.Open(name, flags)
	if err != nil {
		return nil, err
	}
	return &file{fs: a.fs, handle: h, name: name}, nil
}

func isRootPath(name string) bool {
	return name == "" || name == "/" || name == "."
}

func translateFlags(flag int) ramfs.OpenFlags {
	var f ramfs.OpenFlags
	switch {
	case flag&os.O_RDWR != 0:
		f = ramfs.ReadWrite
	case flag&os.O_WRONLY != 0:
		f = ramfs.WriteOnly
	default:
		f = ramfs.ReadOnly
	}
	if flag&os.O_APPEND != 0 {
		f |= ramfs.Append
	}
	if flag&os.O_TRUNC != 0 {
		f |= ramfs.Truncate
	}
	return f
}

func (a *aferoFS) Remove(name string) error { return a.fs.Unlink(name) }

func (a *aferoFS) RemoveAll(path string) error {
	if path != "" && path != "/" {
		return a.fs.Unlink(path)
	}
	dh, err := a.fs.Open("", ramfs.Directory|ramfs.ReadOnly)
	if err != nil {
		return err
	}
	defer a.fs.Close(dh)

	var names []string
	for {
		entry, err := a.fs.ReadDir(dh)
		if err != nil {
			break
		}
		names = append(names, entry.Name)
	}
	for _, n := range names {
		if err := a.fs.Unlink(n); err != nil {
			return err
		}
	}
	return nil
}

func (a *aferoFS) Rename(string, string) error {
	return errors.Wrap(ramfs.ErrInvalid, "rename is not supported")
}

func (a *aferoFS) Stat(name string) (os.FileInfo, error) {
	si, err := a.fs.Stat(name)
	if err != nil {
		return nil, err
	}
	return newFileInfo(baseName(name), si), nil
}

func (a *aferoFS) Mkdir(name string, _ os.FileMode) error {
	if name == "" || name == "/" {
		return nil
	}
	return errors.Wrap(ramfs.ErrInvalid, "mkdir is not supported below the root")
}

func (a *aferoFS) MkdirAll(string, os.FileMode) error { return nil }

func (a *aferoFS) Chmod(string, os.FileMode) error { return nil }

func (a *aferoFS) Chtimes(string, time.Time, time.Time) error { return nil }

func (a *aferoFS) Chown(string, int, int) error { return nil }

// file adapts one open ramfs handle to afero.File.
type file struct {
	fs     *ramfs.FS
	handle int
	name   string
}

func (f *file) Name() string { return f.name }

func (f *file) Read(p []byte) (int, error) {
	n, err := f.fs.Read(f.handle, p)
	if err == nil && n == 0 && len(p) > 0 {
		return 0, io.EOF
	}
	return n, err
}

func (f *file) ReadAt(p []byte, off int64) (int, error) {
	cur, err := f.fs.Tell(f.handle)
	if err != nil {
		return 0, err
	}
	if _, err := f.fs.Seek(f.handle, off, ramfs.SeekSet); err != nil {
		return 0, err
	}
	n, err := f.Read(p)
	if _, serr := f.fs.Seek(f.handle, cur, ramfs.SeekSet); serr != nil && err == nil {
		err = serr
	}
	return n, err
}

func (f *file) Write(p []byte) (int, error) { return f.fs.Write(f.handle, p) }

func (f *file) WriteAt(p []byte, off int64) (int, error) {
	cur, err := f.fs.Tell(f.handle)
	if err != nil {
		return 0, err
	}
	if _, err := f.fs.Seek(f.handle, off, ramfs.SeekSet); err != nil {
		return 0, err
	}
	n, err := f.fs.Write(f.handle, p)
	if _, serr := f.fs.Seek(f.handle, cur, ramfs.SeekSet); serr != nil && err == nil {
		err = serr
	}
	return n, err
}

func (f *file) WriteString(s string) (int, error) { return f.Write([]byte(s)) }

func (f *file) Seek(offset int64, whence int) (int64, error) {
	return f.fs.Seek(f.handle, offset, ramfs.Whence(whence))
}

func (f *file) Close() error { return f.fs.Close(f.handle) }

func (f *file) Sync() error { return nil }

func (f *file) Truncate(size int64) error { return f.fs.Truncate(f.handle, size) }

func (f *file) Stat() (os.FileInfo, error) {
	si, err := f.fs.Fstat(f.handle)
	if err != nil {
		return nil, err
	}
	return newFileInfo(baseName(f.name), si), nil
}

func (f *file) Readdir(count int) ([]os.FileInfo, error) {
	var infos []os.FileInfo
	for count <= 0 || len(infos) < count {
		entry, err := f.fs.ReadDir(f.handle)
		if err != nil {
			break
		}
		infos = append(infos, entryFileInfo(entry))
	}
	return infos, nil
}

func (f *file) Readdirnames(n int) ([]string, error) {
	infos, err := f.Readdir(n)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(infos))
	for i, fi := range infos {
		names[i] = fi.Name()
	}
	return names, nil
}

func baseName(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[i+1:]
		}
	}
	return path
}
