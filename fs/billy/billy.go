package billy

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
)

// LocalFS wraps billy's osfs for local filesystem access.
// Absolute paths are resolved against the root of their volume, so
// `C:\Program Files (x86)\...` and `/usr/local/...` both work.
type LocalFS struct {
	mu      sync.Mutex
	volumes map[string]billy.Filesystem
}

// MemoryFS wraps billy's memfs for in-memory filesystem access.
type MemoryFS struct {
	bfs billy.Filesystem
}

// NewLocal creates a go-billy-backed local filesystem.
func NewLocal() *LocalFS {
	return &LocalFS{volumes: make(map[string]billy.Filesystem)}
}

// NewMemory creates an empty go-billy-backed in-memory filesystem.
func NewMemory() *MemoryFS {
	return &MemoryFS{bfs: memfs.New()}
}

// Unwrap returns the billy.Filesystem rooted at the volume of path.
func (lfs *LocalFS) Unwrap(path string) billy.Filesystem {
	bfs, _ := lfs.resolve(path)
	return bfs
}

// Unwrap returns the underlying billy.Filesystem.
func (mfs *MemoryFS) Unwrap() billy.Filesystem {
	return mfs.bfs
}

// resolve maps a host path to the osfs rooted at its volume and the path
// relative to that root. Relative paths resolve against the working directory.
func (lfs *LocalFS) resolve(path string) (billy.Filesystem, string) {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	path = filepath.Clean(path)
	vol := filepath.VolumeName(path)
	root := vol + string(filepath.Separator)

	lfs.mu.Lock()
	defer lfs.mu.Unlock()

	bfs, ok := lfs.volumes[root]
	if !ok {
		bfs = osfs.New(root)
		lfs.volumes[root] = bfs
	}
	return bfs, strings.TrimPrefix(path, vol)
}

// normalize converts memory paths to forward slashes.
func normalize(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}

// exists reports whether name exists on bfs. A not-exist error is not an error.
func exists(bfs billy.Basic, name string) (bool, error) {
	_, err := bfs.Stat(name)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// fileExists reports whether name exists on bfs and is not a directory.
func fileExists(bfs billy.Basic, name string) (bool, error) {
	info, err := bfs.Stat(name)
	if err == nil {
		return !info.IsDir(), nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func readFile(bfs billy.Basic, name string) ([]byte, error) {
	f, err := bfs.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return io.ReadAll(f)
}

func writeFile(bfs billy.Basic, name string, data []byte, perm fs.FileMode) error {
	f, err := bfs.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Exists reports whether the named file or directory exists.
func (lfs *LocalFS) Exists(name string) (bool, error) {
	bfs, rel := lfs.resolve(name)
	return exists(bfs, rel)
}

// FileExists reports whether name exists and is a regular file rather
// than a directory.
func (lfs *LocalFS) FileExists(name string) (bool, error) {
	bfs, rel := lfs.resolve(name)
	return fileExists(bfs, rel)
}

// Stat returns file metadata for the named file.
func (lfs *LocalFS) Stat(name string) (fs.FileInfo, error) {
	bfs, rel := lfs.resolve(name)
	return bfs.Stat(rel)
}

// ReadFile reads the named file and returns its contents.
func (lfs *LocalFS) ReadFile(name string) ([]byte, error) {
	bfs, rel := lfs.resolve(name)
	return readFile(bfs, rel)
}

// WriteFile writes data to the named file, creating or truncating it.
func (lfs *LocalFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	bfs, rel := lfs.resolve(name)
	return writeFile(bfs, rel, data, perm)
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (lfs *LocalFS) MkdirAll(path string, perm fs.FileMode) error {
	bfs, rel := lfs.resolve(path)
	return bfs.MkdirAll(rel, perm)
}

// Remove removes the named file or empty directory.
func (lfs *LocalFS) Remove(name string) error {
	bfs, rel := lfs.resolve(name)
	return bfs.Remove(rel)
}

// Exists reports whether the named file or directory exists.
func (mfs *MemoryFS) Exists(name string) (bool, error) {
	return exists(mfs.bfs, normalize(name))
}

// FileExists reports whether name exists and is not a directory.
func (mfs *MemoryFS) FileExists(name string) (bool, error) {
	return fileExists(mfs.bfs, normalize(name))
}

// Stat returns file metadata for the named file.
func (mfs *MemoryFS) Stat(name string) (fs.FileInfo, error) {
	return mfs.bfs.Stat(normalize(name))
}

// ReadFile reads the named file and returns its contents.
func (mfs *MemoryFS) ReadFile(name string) ([]byte, error) {
	return readFile(mfs.bfs, normalize(name))
}

// WriteFile writes data to the named file, creating parents as needed.
func (mfs *MemoryFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return writeFile(mfs.bfs, normalize(name), data, perm)
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (mfs *MemoryFS) MkdirAll(path string, perm fs.FileMode) error {
	return mfs.bfs.MkdirAll(normalize(path), perm)
}

// Remove removes the named file or empty directory.
func (mfs *MemoryFS) Remove(name string) error {
	return mfs.bfs.Remove(normalize(name))
}
