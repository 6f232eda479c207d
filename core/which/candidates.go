package which

import (
	"path/filepath"
	"strings"

	"github.com/josephlewis42/which/core/vos"
)

// candidates lazily produces the paths to check for a query.
//
// Each source is turned into a base path by join. On Windows a base path
// without a recognized extension is followed by one path per PATHEXT entry,
// each built only when asked for.
type candidates struct {
	sources []string
	join    func(source string) string
	exts    []string

	base      string
	extIndex  int
	expanding bool
}

// newCwdCandidates produces name, made absolute against cwd.
func newCwdCandidates(virtOS vos.VOS, name, cwd string) *candidates {
	return &candidates{
		sources: []string{name},
		join: func(name string) string {
			if filepath.IsAbs(name) {
				return name
			}
			return filepath.Join(cwd, name)
		},
		exts: virtOS.PathExt(),
	}
}

// newPathCandidates produces name joined to each of dirs in order.
func newPathCandidates(virtOS vos.VOS, name string, dirs []string) *candidates {
	return &candidates{
		sources: dirs,
		join: func(dir string) string {
			return filepath.Join(expandTilde(virtOS, dir), name)
		},
		exts: virtOS.PathExt(),
	}
}

// Next returns the next candidate, or false once they're exhausted.
func (c *candidates) Next() (string, bool) {
	if c.expanding {
		if c.extIndex < len(c.exts) {
			next := c.base + c.exts[c.extIndex]
			c.extIndex++
			return next, true
		}
		c.expanding = false
	}

	if len(c.sources) == 0 {
		return "", false
	}
	base := c.join(c.sources[0])
	c.sources = c.sources[1:]

	if len(c.exts) > 0 && !vos.HasExecutableExtension(base, c.exts) {
		c.base = base
		c.extIndex = 0
		c.expanding = true
	}
	return base, true
}

// expandTilde replaces a leading "~" component in dir with the home
// directory. dir is returned unchanged if there's no home directory.
func expandTilde(virtOS vos.VOS, dir string) string {
	rest, ok := strings.CutPrefix(dir, "~")
	if !ok || (rest != "" && !isSeparator(virtOS, rest[0])) {
		return dir
	}

	home, ok := virtOS.UserHomeDir()
	if !ok {
		return dir
	}
	return filepath.Join(home, rest)
}

func isSeparator(virtOS vos.VOS, c byte) bool {
	return c == '/' || (c == '\\' && virtOS.IsWindows())
}

// hasSeparator reports whether name is a path rather than a bare file name.
func hasSeparator(virtOS vos.VOS, name string) bool {
	for i := 0; i < len(name); i++ {
		if isSeparator(virtOS, name[i]) {
			return true
		}
	}
	return false
}
