package vos

import (
	"errors"
	"io"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/josephlewis42/which/third_party/realpath"
	"github.com/spf13/afero"
)

// binaryHeader marks a file as a runnable image for the Windows style probe.
const binaryHeader = "MZ"

// MemOS is an in-memory VOS backed by afero.MemMapFs.
//
// Executables on a permission based MemOS carry the owner execute bit;
// on a Windows style MemOS they start with an "MZ" header. A Windows style
// MemOS also matches names against existing entries without regard to case.
type MemOS struct {
	fs  *LinkingFs
	env *MapEnv

	windows bool
	cwd     string
	cwdErr  error
	home    string
	hasHome bool

	mu       sync.RWMutex
	failures map[string]error

	pathExtOnce sync.Once
	pathExt     []string
}

var _ VOS = (*MemOS)(nil)
var _ realpath.OS = (*MemOS)(nil)

// NewMemOS creates an empty permission based MemOS whose working directory
// is /project.
func NewMemOS() *MemOS {
	return &MemOS{
		fs:       NewLinkingFs(afero.NewMemMapFs()),
		env:      NewMapEnv(),
		cwd:      "/project",
		failures: make(map[string]error),
	}
}

// SetWindows switches between PATHEXT and permission bit executables.
func (m *MemOS) SetWindows(windows bool) {
	m.windows = windows
}

// SetCwd sets the working directory.
func (m *MemOS) SetCwd(dir string) {
	m.cwd = cleanPath(dir)
	m.cwdErr = nil
}

// SetCwdError makes Getwd fail with err.
func (m *MemOS) SetCwdError(err error) {
	m.cwdErr = err
}

// SetHomeDir sets the user's home directory.
func (m *MemOS) SetHomeDir(dir string) {
	m.home = dir
	m.hasHome = true
}

// Setenv sets an environment variable.
func (m *MemOS) Setenv(key, value string) {
	m.env.Setenv(key, value)
}

// Unsetenv removes an environment variable.
func (m *MemOS) Unsetenv(key string) {
	m.env.Unsetenv(key)
}

// SetEnviron replaces the environment with environ, a list of "key=value"
// pairs.
func (m *MemOS) SetEnviron(environ []string) {
	m.env = NewMapEnvFromEnvList(environ)
}

// Fs returns the backing filesystem.
func (m *MemOS) Fs() *LinkingFs {
	return m.fs
}

// FailOn makes every query of name fail with err.
func (m *MemOS) FailOn(name string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[m.abs(name)] = err
}

func (m *MemOS) failure(op, name string) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err, ok := m.failures[name]; ok {
		return &fs.PathError{Op: op, Path: name, Err: err}
	}
	return nil
}

func (m *MemOS) abs(name string) string {
	name = filepath.ToSlash(name)
	if !path.IsAbs(name) {
		name = path.Join(m.cwd, name)
	}
	name = path.Clean(name)
	if m.windows {
		name = m.foldCase(name)
	}
	return name
}

// foldCase replaces each component of name with the directory entry that
// matches it case-insensitively, preferring exact matches.
func (m *MemOS) foldCase(name string) string {
	if name == "/" {
		return name
	}

	parts := strings.Split(strings.TrimPrefix(name, "/"), "/")
	out := "/"
	for i, part := range parts {
		entries, err := m.fs.ReadDir(out)
		if err != nil {
			return path.Join(append([]string{out}, parts[i:]...)...)
		}
		out = path.Join(out, matchEntry(entries, part))
	}
	return out
}

func matchEntry(entries []fs.DirEntry, name string) string {
	folded := name
	for _, e := range entries {
		switch {
		case e.Name() == name:
			return name
		case folded == name && strings.EqualFold(e.Name(), name):
			folded = e.Name()
		}
	}
	return folded
}

// Mkdir creates a directory and all of its parents.
func (m *MemOS) Mkdir(dir string) error {
	return m.fs.MkdirAll(m.abs(dir), 0755)
}

// WriteExecutable creates a file that passes the executable check.
func (m *MemOS) WriteExecutable(name string) error {
	if m.windows {
		return m.writeFile(name, []byte(binaryHeader+"\x90\x00"), 0644)
	}
	return m.writeFile(name, []byte("#!/bin/sh\n"), 0755)
}

// WriteNonExecutable creates a file that fails the executable check.
func (m *MemOS) WriteNonExecutable(name string) error {
	return m.writeFile(name, []byte("plain text\n"), 0644)
}

func (m *MemOS) writeFile(name string, data []byte, perm fs.FileMode) error {
	name = m.abs(name)
	if err := m.fs.MkdirAll(path.Dir(name), 0755); err != nil {
		return err
	}
	if err := afero.WriteFile(m.fs.Fs, name, data, perm); err != nil {
		return err
	}
	return m.fs.Chmod(name, perm)
}

// Symlink creates newname as a symbolic link to oldname.
func (m *MemOS) Symlink(oldname, newname string) error {
	return m.fs.SymlinkIfPossible(oldname, m.abs(newname))
}

// IsWindows implements VOS.IsWindows.
func (m *MemOS) IsWindows() bool {
	return m.windows
}

// PathExt implements VOS.PathExt. The value is parsed on first use.
func (m *MemOS) PathExt() []string {
	if !m.windows {
		return nil
	}
	m.pathExtOnce.Do(func() {
		m.pathExt = ParsePathExt(m.env.Getenv(PathExtEnv))
	})
	return m.pathExt
}

// Getwd implements VEnv.Getwd.
func (m *MemOS) Getwd() (string, error) {
	if m.cwdErr != nil {
		return "", m.cwdErr
	}
	return m.cwd, nil
}

// UserHomeDir implements VEnv.UserHomeDir.
func (m *MemOS) UserHomeDir() (string, bool) {
	return m.home, m.hasHome
}

// LookupEnv implements VEnv.LookupEnv.
func (m *MemOS) LookupEnv(key string) (string, bool) {
	return m.env.LookupEnv(key)
}

// SplitPathList implements VEnv.SplitPathList.
func (m *MemOS) SplitPathList(list string) []string {
	if m.windows {
		return splitList(list, ';')
	}
	return splitList(list, ':')
}

// Stat implements VFS.Stat.
func (m *MemOS) Stat(name string) (fs.FileInfo, error) {
	name = m.abs(name)
	if err := m.failure("stat", name); err != nil {
		return nil, err
	}
	return m.fs.Stat(name)
}

// Lstat implements VFS.Lstat.
func (m *MemOS) Lstat(name string) (fs.FileInfo, error) {
	name = m.abs(name)
	if err := m.failure("lstat", name); err != nil {
		return nil, err
	}
	fi, _, err := m.fs.LstatIfPossible(name)
	return fi, err
}

// Readlink returns the destination of the named symbolic link.
func (m *MemOS) Readlink(name string) (string, error) {
	name = m.abs(name)
	if err := m.failure("readlink", name); err != nil {
		return "", err
	}
	return m.fs.ReadlinkIfPossible(name)
}

// ReadDir implements VFS.ReadDir.
func (m *MemOS) ReadDir(name string) ([]fs.DirEntry, error) {
	name = m.abs(name)
	if err := m.failure("readdir", name); err != nil {
		return nil, err
	}
	return m.fs.ReadDir(name)
}

// IsExecutable implements VFS.IsExecutable.
func (m *MemOS) IsExecutable(name string) (bool, error) {
	name = m.abs(name)
	if err := m.failure("access", name); err != nil {
		return false, err
	}

	fi, err := m.fs.Stat(name)
	if err != nil {
		return false, err
	}
	if !fi.Mode().IsRegular() {
		return false, nil
	}
	if !m.windows {
		return fi.Mode().Perm()&0100 != 0, nil
	}
	return m.hasBinaryHeader(name)
}

func (m *MemOS) hasBinaryHeader(name string) (bool, error) {
	fd, err := m.fs.Open(name)
	if err != nil {
		return false, err
	}
	defer fd.Close()

	header := make([]byte, len(binaryHeader))
	if _, err := io.ReadFull(fd, header); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return false, nil
		}
		return false, err
	}
	return string(header) == binaryHeader, nil
}

// Canonicalize implements VFS.Canonicalize.
func (m *MemOS) Canonicalize(name string) (string, error) {
	return realpath.Realpath(m, m.abs(name))
}
