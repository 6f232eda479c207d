package vostest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/josephlewis42/which/core/vos"
)

// NewDeterministicOS creates an in-memory OS with a fixed working directory
// of /project and a home directory of /home/user. Its environment holds the
// "key=value" pairs in environ.
//
// If windows is set, executables are identified by PATHEXT, which defaults to
// ".EXE;.CMD".
func NewDeterministicOS(windows bool, environ ...string) *vos.MemOS {
	memOS := vos.NewMemOS()
	memOS.SetWindows(windows)
	memOS.SetCwd("/project")
	memOS.SetHomeDir("/home/user")
	memOS.SetEnviron(environ)
	if _, ok := memOS.LookupEnv(vos.PathExtEnv); windows && !ok {
		memOS.Setenv(vos.PathExtEnv, ".EXE;.CMD")
	}
	return memOS
}

// TempFS creates files on the real filesystem under Root. Names passed to its
// methods are slash separated and relative to Root, even if they start with
// a slash.
type TempFS struct {
	Root string
}

// NewTempFS creates a TempFS in a directory removed at the end of the test.
func NewTempFS(t *testing.T) *TempFS {
	t.Helper()

	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return &TempFS{Root: root}
}

// Path returns the host path of name.
func (tfs *TempFS) Path(name string) string {
	return filepath.Join(tfs.Root, filepath.FromSlash(strings.TrimPrefix(name, "/")))
}

// Mkdir creates a directory and all of its parents.
func (tfs *TempFS) Mkdir(dir string) error {
	return os.MkdirAll(tfs.Path(dir), 0755)
}

// WriteExecutable creates a file with the execute bits set.
func (tfs *TempFS) WriteExecutable(name string) error {
	return tfs.write(name, 0755)
}

// WriteNonExecutable creates a file without the execute bits set.
func (tfs *TempFS) WriteNonExecutable(name string) error {
	return tfs.write(name, 0644)
}

func (tfs *TempFS) write(name string, perm os.FileMode) error {
	p := tfs.Path(name)
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(p, []byte("#!/bin/sh\n"), perm); err != nil {
		return err
	}
	// WriteFile doesn't change the mode of existing files and is subject to umask.
	return os.Chmod(p, perm)
}

// Symlink creates newname as a link to oldname. Absolute targets are
// interpreted relative to Root.
func (tfs *TempFS) Symlink(oldname, newname string) error {
	if strings.HasPrefix(oldname, "/") {
		oldname = tfs.Path(oldname)
	}
	p := tfs.Path(newname)
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}
	return os.Symlink(oldname, p)
}

// Subdirs are the PATH directories created by NewBinFixture.
var Subdirs = []string{"a", "b", "c"}

// BinName is the executable created in each of the Subdirs.
const BinName = "bin"

// BinFixture is a set of PATH directories on the real filesystem:
//
//	tmp/a/bin
//	tmp/a/bin.exe
//	tmp/a/bin.cmd
//	tmp/b/bin
//	tmp/b/bin.exe
//	tmp/b/bin.cmd
//	tmp/c/bin
//	tmp/c/bin.exe
//	tmp/c/bin.cmd
//	tmp/win-bin/win-bin.exe
type BinFixture struct {
	*TempFS

	// Paths is a PATH style list of the fixture directories.
	Paths string
	// Bins contains the host path of every created executable in order.
	Bins []string
}

// NewBinFixture creates a BinFixture removed at the end of the test.
func NewBinFixture(t *testing.T) *BinFixture {
	t.Helper()

	fixture := &BinFixture{TempFS: NewTempFS(t)}

	var dirs []string
	for _, dir := range Subdirs {
		for _, ext := range []string{"", ".exe", ".cmd"} {
			fixture.mustBin(t, dir+"/"+BinName+ext)
		}
		dirs = append(dirs, fixture.Path(dir))
	}
	fixture.mustBin(t, "win-bin/win-bin.exe")
	dirs = append(dirs, fixture.Path("win-bin"))

	fixture.Paths = strings.Join(dirs, string(os.PathListSeparator))
	return fixture
}

func (f *BinFixture) mustBin(t *testing.T, name string) {
	t.Helper()

	if err := f.WriteExecutable(name); err != nil {
		t.Fatal(err)
	}
	f.Bins = append(f.Bins, f.Path(name))
}
