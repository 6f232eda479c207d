package vos_test

import (
	"io/fs"
	"testing"

	"github.com/josephlewis42/which/core/vos"
	"github.com/stretchr/testify/assert"
)

// Fixture populates the filesystem behind a VOS.
type Fixture interface {
	Mkdir(dir string) error
	WriteExecutable(name string) error
	WriteNonExecutable(name string) error
	Symlink(oldname, newname string) error
}

type FSTestSuite struct {
	// MakeOS creates the OS under test and a fixture that writes to it.
	MakeOS func(t *testing.T) (vos.VOS, Fixture)

	// Prefixer maps a slash delimited absolute test path to the path the OS
	// sees.
	Prefixer func(name string) (outname string)
}

type FSTestCaseSetup struct {
	check *FSTestCaseCheck

	t        *testing.T
	fixture  Fixture
	testPath string
	prefixer func(string) string
}

type FSTestCaseCheck struct {
	t    *testing.T
	os   vos.VOS
	name string
	err  error
}

func FSTestCase(t *testing.T, suite FSTestSuite, testPath string) *FSTestCaseSetup {
	testOS, fixture := suite.MakeOS(t)

	prefixer := func(in string) string {
		return in
	}
	if suite.Prefixer != nil {
		prefixer = suite.Prefixer
	}

	return &FSTestCaseSetup{
		check: &FSTestCaseCheck{
			t:    t,
			os:   testOS,
			name: prefixer(testPath),
		},

		t:        t,
		fixture:  fixture,
		testPath: testPath,
		prefixer: prefixer,
	}
}

func (tc *FSTestCaseSetup) must(err error) *FSTestCaseSetup {
	tc.t.Helper()
	if err != nil {
		tc.t.Fatal(err)
	}
	return tc
}

func (tc *FSTestCaseSetup) Mkdir(dir string) *FSTestCaseSetup {
	return tc.must(tc.fixture.Mkdir(dir))
}

func (tc *FSTestCaseSetup) ExecutableTestPath() *FSTestCaseSetup {
	return tc.Executable(tc.testPath)
}

func (tc *FSTestCaseSetup) Executable(name string) *FSTestCaseSetup {
	return tc.must(tc.fixture.WriteExecutable(name))
}

func (tc *FSTestCaseSetup) NonExecutableTestPath() *FSTestCaseSetup {
	return tc.must(tc.fixture.WriteNonExecutable(tc.testPath))
}

func (tc *FSTestCaseSetup) LinkTestPathTo(target string) *FSTestCaseSetup {
	return tc.must(tc.fixture.Symlink(target, tc.testPath))
}

func (tc *FSTestCaseSetup) Check() *FSTestCaseCheck {
	return tc.check
}

func (tc *FSTestCaseCheck) IsRegular() *FSTestCaseCheck {
	info, err := tc.os.Stat(tc.name)
	if assert.NoError(tc.t, err, "stat %q", tc.name) {
		assert.True(tc.t, info.Mode().IsRegular(), "IsRegular()")
	}
	return tc
}

func (tc *FSTestCaseCheck) IsDir() *FSTestCaseCheck {
	info, err := tc.os.Stat(tc.name)
	if assert.NoError(tc.t, err, "stat %q", tc.name) {
		assert.True(tc.t, info.IsDir(), "IsDir()")
	}
	return tc
}

func (tc *FSTestCaseCheck) IsSymlink() *FSTestCaseCheck {
	info, err := tc.os.Lstat(tc.name)
	if assert.NoError(tc.t, err, "lstat %q", tc.name) {
		assert.NotZero(tc.t, info.Mode()&fs.ModeSymlink, "ModeSymlink")
	}
	return tc
}

func (tc *FSTestCaseCheck) NotSymlink() *FSTestCaseCheck {
	info, err := tc.os.Lstat(tc.name)
	if assert.NoError(tc.t, err, "lstat %q", tc.name) {
		assert.Zero(tc.t, info.Mode()&fs.ModeSymlink, "ModeSymlink")
	}
	return tc
}

func (tc *FSTestCaseCheck) Executable(want bool) *FSTestCaseCheck {
	got, err := tc.os.IsExecutable(tc.name)
	assert.NoError(tc.t, err)
	assert.Equal(tc.t, want, got, "IsExecutable(%q)", tc.name)
	return tc
}

func (tc *FSTestCaseCheck) StatErrorIs(desired error) *FSTestCaseCheck {
	_, err := tc.os.Stat(tc.name)
	assert.ErrorIs(tc.t, err, desired)
	return tc
}

func (tc *FSTestCaseCheck) Lists(names ...string) *FSTestCaseCheck {
	entries, err := tc.os.ReadDir(tc.name)
	if assert.NoError(tc.t, err) {
		var actual []string
		for _, e := range entries {
			actual = append(actual, e.Name())
		}
		assert.Equal(tc.t, names, actual)
	}
	return tc
}

func RunOSTest(t *testing.T, suite FSTestSuite) {
	t.Run("Stat", func(t *testing.T) {
		t.Run("executable", func(t *testing.T) {
			FSTestCase(t, suite, "/bin/tool").
				ExecutableTestPath().
				Check().
				IsRegular().
				NotSymlink().
				Executable(true)
		})
		t.Run("non-executable", func(t *testing.T) {
			FSTestCase(t, suite, "/bin/notes").
				NonExecutableTestPath().
				Check().
				IsRegular().
				Executable(false)
		})
		t.Run("missing", func(t *testing.T) {
			FSTestCase(t, suite, "/bin/missing").
				Mkdir("/bin").
				Check().
				StatErrorIs(fs.ErrNotExist)
		})
		t.Run("dir", func(t *testing.T) {
			FSTestCase(t, suite, "/bin").
				Mkdir("/bin").
				Check().
				IsDir()
		})
	})

	t.Run("Symlink", func(t *testing.T) {
		t.Run("to executable", func(t *testing.T) {
			FSTestCase(t, suite, "/sub/dir1/exec").
				Executable("/sub/dir2/exec").
				LinkTestPathTo("/sub/dir2/exec").
				Check().
				IsSymlink().
				IsRegular().
				Executable(true)
		})
		t.Run("dangling", func(t *testing.T) {
			FSTestCase(t, suite, "/sub/dir1/exec").
				LinkTestPathTo("/sub/dir2/missing").
				Check().
				IsSymlink().
				StatErrorIs(fs.ErrNotExist)
		})
	})

	t.Run("ReadDir", func(t *testing.T) {
		t.Run("sorted", func(t *testing.T) {
			FSTestCase(t, suite, "/bin").
				Executable("/bin/zz").
				Executable("/bin/aa").
				Executable("/bin/mm").
				Check().
				Lists("aa", "mm", "zz")
		})
		t.Run("only direct children", func(t *testing.T) {
			FSTestCase(t, suite, "/bin").
				Executable("/bin/tool").
				Executable("/opt/other").
				Mkdir("/bin").
				Check().
				Lists("tool")
		})
	})
}

func TestMemOS(t *testing.T) {
	suite := FSTestSuite{
		MakeOS: func(t *testing.T) (vos.VOS, Fixture) {
			memOS := vos.NewMemOS()
			return memOS, memOS
		},
	}

	RunOSTest(t, suite)
}

func TestMemOS_windows(t *testing.T) {
	suite := FSTestSuite{
		MakeOS: func(t *testing.T) (vos.VOS, Fixture) {
			memOS := vos.NewMemOS()
			memOS.SetWindows(true)
			return memOS, memOS
		},
	}

	RunOSTest(t, suite)
}
