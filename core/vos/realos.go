package vos

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
)

var (
	realPathExtOnce sync.Once
	realPathExt     []string
)

// RealOS is the VOS of the running process.
type RealOS struct {
	fs afero.Fs
}

var _ VOS = (*RealOS)(nil)

// NewRealOS creates a VOS backed by the host operating system.
func NewRealOS() *RealOS {
	return &RealOS{fs: afero.NewOsFs()}
}

// IsWindows implements VOS.IsWindows.
func (*RealOS) IsWindows() bool {
	return runtime.GOOS == "windows"
}

// PathExt implements VOS.PathExt. PATHEXT is read once per process.
func (r *RealOS) PathExt() []string {
	if !r.IsWindows() {
		return nil
	}
	realPathExtOnce.Do(func() {
		realPathExt = ParsePathExt(os.Getenv(PathExtEnv))
	})
	return realPathExt
}

// Getwd implements VEnv.Getwd.
func (*RealOS) Getwd() (string, error) {
	return os.Getwd()
}

// UserHomeDir implements VEnv.UserHomeDir.
func (*RealOS) UserHomeDir() (string, bool) {
	return xdg.Home, xdg.Home != ""
}

// LookupEnv implements VEnv.LookupEnv.
func (*RealOS) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// SplitPathList implements VEnv.SplitPathList.
func (*RealOS) SplitPathList(list string) []string {
	return filepath.SplitList(list)
}

// Stat implements VFS.Stat.
func (r *RealOS) Stat(name string) (fs.FileInfo, error) {
	return r.fs.Stat(name)
}

// Lstat implements VFS.Lstat.
func (r *RealOS) Lstat(name string) (fs.FileInfo, error) {
	if lstater, ok := r.fs.(afero.Lstater); ok {
		fi, _, err := lstater.LstatIfPossible(name)
		return fi, err
	}
	return r.fs.Stat(name)
}

// ReadDir implements VFS.ReadDir.
func (r *RealOS) ReadDir(name string) ([]fs.DirEntry, error) {
	infos, err := afero.ReadDir(r.fs, name)
	if err != nil {
		return nil, err
	}

	entries := make([]fs.DirEntry, 0, len(infos))
	for _, fi := range infos {
		entries = append(entries, fs.FileInfoToDirEntry(fi))
	}
	return entries, nil
}

// IsExecutable implements VFS.IsExecutable.
func (*RealOS) IsExecutable(name string) (bool, error) {
	return isExecutable(name)
}

// Canonicalize implements VFS.Canonicalize.
func (*RealOS) Canonicalize(name string) (string, error) {
	abs, err := filepath.Abs(name)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
