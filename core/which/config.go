package which

import (
	"fmt"
	"path/filepath"

	"github.com/josephlewis42/which/core/vos"
	"github.com/rs/zerolog"
)

type targetKind int

const (
	targetUnset targetKind = iota
	targetName
	targetPattern
)

type cwdPolicy int

const (
	cwdSystem cwdPolicy = iota
	cwdCustom
	cwdNone
)

// Config builds a lookup. Methods return a modified copy so a Config can be
// shared and extended. Options that exclude each other are reported by
// FirstResult and AllResults as ErrInvalidConfig.
//
//	path, err := which.New().
//		BinaryName("git").
//		CustomPathList("/usr/local/bin:/usr/bin").
//		FirstResult()
type Config struct {
	os vos.VOS

	kind    targetKind
	name    string
	matcher Matcher

	paths *string

	cwd         cwdPolicy
	cwdExplicit bool
	customCwd   string

	canonical bool
	handler   NonFatalErrorHandler
	logger    zerolog.Logger

	err error
}

// New creates a Config for the running process.
func New() Config {
	return NewWithOS(vos.NewRealOS())
}

// NewWithOS creates a Config that looks up executables in virtOS.
func NewWithOS(virtOS vos.VOS) Config {
	return Config{
		os:      virtOS,
		handler: noopHandler{},
		logger:  zerolog.Nop(),
	}
}

func (c Config) invalid(format string, args ...any) Config {
	if c.err == nil {
		c.err = fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...)
	}
	return c
}

// BinaryName looks for the executable called name. It can't be combined with
// Pattern.
func (c Config) BinaryName(name string) Config {
	if c.kind == targetPattern {
		return c.invalid("binary name set after pattern")
	}
	c.kind = targetName
	c.name = name
	return c
}

// Pattern looks for every executable in the search list whose name matches
// m. It can't be combined with BinaryName, CustomCwd or SystemCwd(true).
func (c Config) Pattern(m Matcher) Config {
	switch {
	case c.kind == targetName:
		return c.invalid("pattern set after binary name")
	case c.cwdExplicit && c.cwd != cwdNone:
		return c.invalid("pattern searches don't use the working directory")
	}
	c.kind = targetPattern
	c.matcher = m
	return c
}

// CustomPathList searches the directories in list, a PATH style string,
// instead of PATH.
func (c Config) CustomPathList(list string) Config {
	c.paths = &list
	return c
}

// SystemPathList searches the directories in PATH. This is the default.
func (c Config) SystemPathList() Config {
	c.paths = nil
	return c
}

// CustomCwd resolves names containing a separator against dir.
func (c Config) CustomCwd(dir string) Config {
	if c.kind == targetPattern {
		return c.invalid("pattern searches don't use the working directory")
	}
	c.cwd = cwdCustom
	c.cwdExplicit = true
	c.customCwd = dir
	return c
}

// SystemCwd resolves names containing a separator against the process
// working directory. If enable is false relative names can't be resolved.
func (c Config) SystemCwd(enable bool) Config {
	if !enable {
		c.cwd = cwdNone
		c.cwdExplicit = true
		return c
	}
	if c.kind == targetPattern {
		return c.invalid("pattern searches don't use the working directory")
	}
	c.cwd = cwdSystem
	c.cwdExplicit = true
	return c
}

// NonFatalErrorHandler sets the handler for I/O errors that only remove a
// candidate from the search. They're dropped by default.
func (c Config) NonFatalErrorHandler(h NonFatalErrorHandler) Config {
	if h == nil {
		h = noopHandler{}
	}
	c.handler = h
	return c
}

// Logger sets the logger search decisions are traced to.
func (c Config) Logger(logger zerolog.Logger) Config {
	c.logger = logger
	return c
}

// Canonical resolves every found path to its absolute form with all
// symlinks followed.
func (c Config) Canonical(enable bool) Config {
	c.canonical = enable
	return c
}

// AllResults returns every match in search order. The sequence is empty,
// not an error, if nothing matches.
func (c Config) AllResults() (*Results, error) {
	if c.err != nil {
		return nil, c.err
	}

	finder := NewFinder(c.os, c.logger)

	var results *Results
	var err error
	switch c.kind {
	case targetName:
		results, err = finder.Find(c.name, c.searchList(), c.cwdFunc(), c.handler)
	case targetPattern:
		results, err = finder.FindPattern(c.matcher, c.searchList(), c.handler)
	default:
		return nil, fmt.Errorf("%w: no binary name or pattern set", ErrInvalidConfig)
	}
	if err != nil {
		return nil, err
	}

	if c.canonical {
		results = mapResults(results, c.canonicalize)
	}
	return results, nil
}

// FirstResult returns the first match.
func (c Config) FirstResult() (string, error) {
	results, err := c.AllResults()
	if err != nil {
		return "", err
	}
	if results.Next() {
		return results.Path(), nil
	}
	if err := results.Err(); err != nil {
		return "", err
	}
	return "", c.NotFound()
}

// NotFound returns the error FirstResult reports when nothing matches.
func (c Config) NotFound() error {
	if c.kind == targetPattern {
		return &Error{Name: c.matcher.String(), Err: ErrCannotFindBinaryPath}
	}

	switch {
	case hasSeparator(c.os, c.name) && filepath.IsAbs(c.name):
		return &Error{Name: c.name, Err: ErrBadAbsolutePath}
	case hasSeparator(c.os, c.name):
		return &Error{Name: c.name, Err: ErrBadRelativePath}
	default:
		return &Error{Name: c.name, Err: ErrCannotFindBinaryPath}
	}
}

func (c Config) searchList() []string {
	if c.paths != nil {
		return c.os.SplitPathList(*c.paths)
	}
	if list, ok := c.os.LookupEnv(vos.PathEnv); ok {
		return c.os.SplitPathList(list)
	}
	return nil
}

func (c Config) cwdFunc() CwdFunc {
	switch c.cwd {
	case cwdCustom:
		dir := c.customCwd
		return func() (string, error) { return dir, nil }
	case cwdNone:
		return nil
	default:
		return c.os.Getwd
	}
}

func (c Config) canonicalize(p string) (string, error) {
	out, err := c.os.Canonicalize(p)
	if err != nil {
		return "", &Error{Name: p, Err: fmt.Errorf("%w: %w", ErrCannotCanonicalize, err)}
	}
	return out, nil
}
