//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package which_test

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/josephlewis42/which/core/vos/vostest"
	"github.com/josephlewis42/which/core/which"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookPathIn(t *testing.T) {
	fixture := vostest.NewBinFixture(t)

	actual, err := which.LookPathIn(vostest.BinName, fixture.Paths, fixture.Root)
	require.NoError(t, err)
	assert.Equal(t, fixture.Path("a/bin"), actual)
}

func TestLookPathAllIn(t *testing.T) {
	fixture := vostest.NewBinFixture(t)

	results, err := which.LookPathAllIn(vostest.BinName, fixture.Paths, fixture.Root)
	require.NoError(t, err)

	actual, err := results.Collect()
	assert.NoError(t, err)
	assert.Equal(t, []string{
		fixture.Path("a/bin"),
		fixture.Path("b/bin"),
		fixture.Path("c/bin"),
	}, actual)
}

func TestLookPathIn_relative(t *testing.T) {
	fixture := vostest.NewBinFixture(t)

	actual, err := which.LookPathIn("./b/bin.exe", fixture.Paths, fixture.Root)
	require.NoError(t, err)
	assert.Equal(t, fixture.Path("b/bin.exe"), actual)

	_, err = which.LookPathIn("./b/missing", fixture.Paths, fixture.Root)
	assert.ErrorIs(t, err, which.ErrBadRelativePath)
}

func TestLookPathInGlobal(t *testing.T) {
	fixture := vostest.NewBinFixture(t)

	actual, err := which.LookPathInGlobal("win-bin.exe", fixture.Paths)
	require.NoError(t, err)
	assert.Equal(t, fixture.Path("win-bin/win-bin.exe"), actual)

	_, err = which.LookPathInGlobal("./b/bin", fixture.Paths)
	assert.ErrorIs(t, err, which.ErrCannotGetCurrentDir)

	results, err := which.LookPathAllInGlobal(vostest.BinName, fixture.Paths)
	require.NoError(t, err)
	all, err := results.Collect()
	assert.NoError(t, err)
	assert.Len(t, all, len(vostest.Subdirs))
}

func TestLookPath_absolute(t *testing.T) {
	fixture := vostest.NewBinFixture(t)

	actual, err := which.LookPath(fixture.Bins[0])
	require.NoError(t, err)
	assert.Equal(t, fixture.Bins[0], actual)

	actual, err = which.LookPathGlobal(fixture.Bins[0])
	require.NoError(t, err)
	assert.Equal(t, fixture.Bins[0], actual)

	_, err = which.LookPath(fixture.Path("a/missing"))
	assert.ErrorIs(t, err, which.ErrBadAbsolutePath)
}

func TestLookPath_env(t *testing.T) {
	fixture := vostest.NewBinFixture(t)
	t.Setenv("PATH", fixture.Paths)

	actual, err := which.LookPath(vostest.BinName)
	require.NoError(t, err)
	assert.Equal(t, fixture.Path("a/bin"), actual)

	results, err := which.LookPathAll(vostest.BinName)
	require.NoError(t, err)
	all, err := results.Collect()
	assert.NoError(t, err)
	assert.Len(t, all, 3)

	results, err = which.LookPathAllGlobal(vostest.BinName)
	require.NoError(t, err)
	all, err = results.Collect()
	assert.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = which.LookPath("missing-binary")
	assert.ErrorIs(t, err, which.ErrCannotFindBinaryPath)
}

func TestLookPath_emptyEnv(t *testing.T) {
	t.Setenv("PATH", "")

	_, err := which.LookPath("sh")
	assert.ErrorIs(t, err, which.ErrPathListEmpty)
}

func TestLookPath_nonExecutable(t *testing.T) {
	fixture := vostest.NewBinFixture(t)
	require.NoError(t, fixture.WriteNonExecutable("d/bin"))
	require.NoError(t, os.Chmod(fixture.Path("a/bin"), 0644))

	paths := fixture.Path("d") + string(os.PathListSeparator) + fixture.Paths
	actual, err := which.LookPathIn(vostest.BinName, paths, fixture.Root)
	require.NoError(t, err)
	assert.Equal(t, fixture.Path("b/bin"), actual)
}

func TestCanonicalIn(t *testing.T) {
	fixture := vostest.NewBinFixture(t)
	require.NoError(t, fixture.Symlink("/a/bin", "links/bin"))
	require.NoError(t, fixture.Symlink("../b/bin", "rel/bin"))

	actual, err := which.LookPathIn(vostest.BinName, fixture.Path("links"), fixture.Root)
	require.NoError(t, err)
	assert.Equal(t, fixture.Path("links/bin"), actual)

	actual, err = which.CanonicalIn(vostest.BinName, fixture.Path("links"), fixture.Root)
	require.NoError(t, err)
	assert.Equal(t, fixture.Path("a/bin"), actual)

	results, err := which.CanonicalAllIn(vostest.BinName, fixture.Path("rel")+string(os.PathListSeparator)+fixture.Path("links"), fixture.Root)
	require.NoError(t, err)
	all, err := results.Collect()
	assert.NoError(t, err)
	assert.Equal(t, []string{fixture.Path("b/bin"), fixture.Path("a/bin")}, all)
}

func TestCanonical_env(t *testing.T) {
	fixture := vostest.NewBinFixture(t)
	require.NoError(t, fixture.Symlink("/c/bin", "links/bin"))
	t.Setenv("PATH", fixture.Path("links"))

	actual, err := which.Canonical(vostest.BinName)
	require.NoError(t, err)
	assert.Equal(t, fixture.Path("c/bin"), actual)

	results, err := which.CanonicalAll(vostest.BinName)
	require.NoError(t, err)
	all, err := results.Collect()
	assert.NoError(t, err)
	assert.Equal(t, []string{fixture.Path("c/bin")}, all)
}

func TestMatchIn(t *testing.T) {
	fixture := vostest.NewBinFixture(t)

	results, err := which.MatchIn(regexp.MustCompile(`^bin\.`), fixture.Paths)
	require.NoError(t, err)

	actual, err := results.Collect()
	assert.NoError(t, err)

	var expected []string
	for _, dir := range vostest.Subdirs {
		expected = append(expected,
			filepath.Join(fixture.Path(dir), "bin.cmd"),
			filepath.Join(fixture.Path(dir), "bin.exe"),
		)
	}
	assert.Equal(t, expected, actual)
}

func TestMatch_env(t *testing.T) {
	fixture := vostest.NewBinFixture(t)
	t.Setenv("PATH", fixture.Paths)

	results, err := which.Match(which.Glob("win-*"))
	require.NoError(t, err)

	actual, err := results.Collect()
	assert.NoError(t, err)
	assert.Equal(t, []string{fixture.Path("win-bin/win-bin.exe")}, actual)
}
