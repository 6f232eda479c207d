package vos

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/afero"
)

// LinkingFs backfills POSIX style symlink functionality onto afero
// filesystems that lack it, like afero.MemMapFs.
//
// Links are tracked beside the wrapped filesystem and a placeholder file is
// written in their place so they appear in directory listings. Stat, Open and
// ReadDir follow links; a link cycle reports fs.ErrNotExist.
type LinkingFs struct {
	afero.Fs

	mu    sync.RWMutex
	links map[string]string
}

var _ afero.Symlinker = (*LinkingFs)(nil)

// NewLinkingFs wraps base with symlink support.
func NewLinkingFs(base afero.Fs) *LinkingFs {
	return &LinkingFs{
		Fs:    base,
		links: make(map[string]string),
	}
}

func cleanPath(name string) string {
	name = filepath.ToSlash(name)
	if !path.IsAbs(name) {
		name = "/" + name
	}
	return path.Clean(name)
}

// Resolve follows every symlink in name and returns the resulting path.
func (lfs *LinkingFs) Resolve(name string) (string, error) {
	current := cleanPath(name)
	seen := make(map[string]bool)

	lfs.mu.RLock()
	defer lfs.mu.RUnlock()

	for {
		resolved, link, ok := lfs.firstLink(current)
		if !ok {
			return current, nil
		}
		if seen[link] {
			return "", &fs.PathError{Op: "resolve", Path: name, Err: fs.ErrNotExist}
		}
		seen[link] = true
		current = resolved
	}
}

// firstLink replaces the shortest prefix of name that is a link with the
// link's target. Callers must hold mu.
func (lfs *LinkingFs) firstLink(name string) (resolved, link string, ok bool) {
	if len(lfs.links) == 0 {
		return "", "", false
	}

	parts := strings.Split(strings.TrimPrefix(name, "/"), "/")
	prefix := "/"
	for i, part := range parts {
		prefix = path.Join(prefix, part)
		target, ok := lfs.links[prefix]
		if !ok {
			continue
		}
		if !path.IsAbs(target) {
			target = path.Join(path.Dir(prefix), target)
		}
		return path.Join(append([]string{target}, parts[i+1:]...)...), prefix, true
	}

	return "", "", false
}

// lookupLink resolves the parent of name and returns the final path along with
// the link target if the final component is a link.
func (lfs *LinkingFs) lookupLink(name string) (p, target string, isLink bool, err error) {
	dir, base := path.Split(cleanPath(name))
	resolvedDir, err := lfs.Resolve(dir)
	if err != nil {
		return "", "", false, err
	}

	p = path.Join(resolvedDir, base)
	lfs.mu.RLock()
	target, isLink = lfs.links[p]
	lfs.mu.RUnlock()

	return p, target, isLink, nil
}

// Stat returns the FileInfo of the file name points to.
func (lfs *LinkingFs) Stat(name string) (os.FileInfo, error) {
	resolved, err := lfs.Resolve(name)
	if err != nil {
		return nil, err
	}
	return lfs.Fs.Stat(resolved)
}

// Open opens the file name points to.
func (lfs *LinkingFs) Open(name string) (afero.File, error) {
	resolved, err := lfs.Resolve(name)
	if err != nil {
		return nil, err
	}
	return lfs.Fs.Open(resolved)
}

// LstatIfPossible implements afero.Lstater.
func (lfs *LinkingFs) LstatIfPossible(name string) (os.FileInfo, bool, error) {
	p, target, isLink, err := lfs.lookupLink(name)
	if err != nil {
		return nil, true, err
	}
	if isLink {
		return &symlinkInfo{name: path.Base(p), target: target}, true, nil
	}

	fi, err := lfs.Fs.Stat(p)
	return fi, true, err
}

// ReadlinkIfPossible implements afero.LinkReader.
func (lfs *LinkingFs) ReadlinkIfPossible(name string) (string, error) {
	_, target, isLink, err := lfs.lookupLink(name)
	if err != nil {
		return "", err
	}
	if !isLink {
		return "", &fs.PathError{Op: "readlink", Path: name, Err: fs.ErrInvalid}
	}
	return target, nil
}

// SymlinkIfPossible implements afero.Linker, creating the parent directory
// of newname if needed.
func (lfs *LinkingFs) SymlinkIfPossible(oldname, newname string) error {
	p, _, _, err := lfs.lookupLink(newname)
	if err != nil {
		return &os.LinkError{Op: "symlink", Old: oldname, New: newname, Err: err}
	}

	if _, err := lfs.Fs.Stat(p); err == nil {
		return &os.LinkError{Op: "symlink", Old: oldname, New: newname, Err: fs.ErrExist}
	}
	if err := lfs.Fs.MkdirAll(path.Dir(p), 0755); err != nil {
		return err
	}
	if err := afero.WriteFile(lfs.Fs, p, []byte(oldname), 0777); err != nil {
		return err
	}

	lfs.mu.Lock()
	defer lfs.mu.Unlock()
	lfs.links[p] = filepath.ToSlash(oldname)
	return nil
}

// ReadDir lists the directory name points to, sorted by filename. Links in
// the directory are reported as links.
func (lfs *LinkingFs) ReadDir(name string) ([]fs.DirEntry, error) {
	resolved, err := lfs.Resolve(name)
	if err != nil {
		return nil, err
	}

	infos, err := afero.ReadDir(lfs.Fs, resolved)
	if err != nil {
		return nil, err
	}

	lfs.mu.RLock()
	defer lfs.mu.RUnlock()

	entries := make([]fs.DirEntry, 0, len(infos))
	for _, fi := range infos {
		if target, ok := lfs.links[path.Join(resolved, fi.Name())]; ok {
			fi = &symlinkInfo{name: fi.Name(), target: target}
		}
		entries = append(entries, fs.FileInfoToDirEntry(fi))
	}
	return entries, nil
}

type symlinkInfo struct {
	name   string
	target string
}

var _ fs.FileInfo = (*symlinkInfo)(nil)

func (s *symlinkInfo) Name() string       { return s.name }
func (s *symlinkInfo) Size() int64        { return int64(len(s.target)) }
func (s *symlinkInfo) Mode() fs.FileMode  { return fs.ModeSymlink | 0777 }
func (s *symlinkInfo) ModTime() time.Time { return time.Time{} }
func (s *symlinkInfo) IsDir() bool        { return false }
func (s *symlinkInfo) Sys() any           { return nil }
