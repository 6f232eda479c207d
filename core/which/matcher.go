package which

import (
	"path"
	"regexp"
)

// Matcher selects directory entries by name in pattern searches.
type Matcher interface {
	MatchString(name string) bool
	String() string
}

var _ Matcher = (*regexp.Regexp)(nil)
var _ Matcher = Glob("")

// Glob is a shell file name pattern as understood by path.Match.
type Glob string

// NewGlob checks that pattern is well formed.
func NewGlob(pattern string) (Glob, error) {
	if _, err := path.Match(pattern, ""); err != nil {
		return "", err
	}
	return Glob(pattern), nil
}

// MatchString implements Matcher. Malformed patterns match nothing.
func (g Glob) MatchString(name string) bool {
	ok, err := path.Match(string(g), name)
	return err == nil && ok
}

func (g Glob) String() string {
	return string(g)
}
