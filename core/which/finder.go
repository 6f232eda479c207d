package which

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/josephlewis42/which/core/vos"
	"github.com/rs/zerolog"
)

// CwdFunc returns the working directory relative names are resolved against.
type CwdFunc func() (string, error)

// Finder searches a VOS for executables.
type Finder struct {
	os      vos.VOS
	checker Checker
	log     zerolog.Logger
}

// NewFinder creates a Finder that checks candidates with NewChecker.
func NewFinder(virtOS vos.VOS, logger zerolog.Logger) *Finder {
	return &Finder{
		os:      virtOS,
		checker: NewChecker(virtOS),
		log:     logger,
	}
}

// Find looks for name.
//
// A name containing a separator is only checked against cwd, or as is if
// it's absolute; a nil cwd means relative names can't be resolved. Any other
// name is only looked for in dirs.
func (f *Finder) Find(name string, dirs []string, cwd CwdFunc, h NonFatalErrorHandler) (*Results, error) {
	f.log.Debug().
		Str("name", name).
		Strs("dirs", dirs).
		Bool("cwd", cwd != nil).
		Msg("query")

	var cands *candidates
	switch {
	case hasSeparator(f.os, name) && filepath.IsAbs(name):
		cands = newCwdCandidates(f.os, name, "")

	case hasSeparator(f.os, name):
		if cwd == nil {
			return nil, &Error{Name: name, Err: ErrCannotGetCurrentDir}
		}
		dir, err := cwd()
		if err != nil {
			return nil, &Error{Name: name, Err: fmt.Errorf("%w: %w", ErrCannotGetCurrentDir, err)}
		}
		f.log.Trace().Str("name", name).Str("cwd", dir).Msg("name has a separator, only searching cwd")
		cands = newCwdCandidates(f.os, name, dir)

	default:
		dirs = searchDirs(dirs)
		if len(dirs) == 0 {
			return nil, &Error{Name: name, Err: ErrPathListEmpty}
		}
		cands = newPathCandidates(f.os, name, dirs)
	}

	return newResults(func() (string, bool, error) {
		for {
			candidate, ok := cands.Next()
			if !ok {
				return "", false, nil
			}
			if !f.checker.IsValid(candidate, h) {
				f.log.Trace().Str("candidate", candidate).Msg("rejected")
				continue
			}

			found := f.correctCasing(candidate, h)
			f.log.Debug().Str("path", found).Msg("found")
			return found, true, nil
		}
	}), nil
}

// searchDirs drops empty entries from dirs. An empty entry would otherwise
// name the working directory.
func searchDirs(dirs []string) []string {
	out := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		if dir != "" {
			out = append(out, dir)
		}
	}
	return out
}

// correctCasing replaces the last element of p with the matching directory
// entry so the result has the same case as the file on disk. It only has an
// effect on Windows.
func (f *Finder) correctCasing(p string, h NonFatalErrorHandler) string {
	if !f.os.IsWindows() {
		return p
	}

	dir, file := filepath.Split(p)
	entries, err := f.os.ReadDir(dir)
	if err != nil {
		h.Handle(err)
		return p
	}

	for _, e := range entries {
		if e.Name() == file {
			return p
		}
	}
	for _, e := range entries {
		if strings.EqualFold(e.Name(), file) {
			return dir + e.Name()
		}
	}
	return p
}

// FindPattern lists each of dirs in order and returns the entries matching m
// that are executables. Entry names are used as listed.
func (f *Finder) FindPattern(m Matcher, dirs []string, h NonFatalErrorHandler) (*Results, error) {
	f.log.Debug().
		Stringer("pattern", m).
		Strs("dirs", dirs).
		Msg("pattern query")

	dirs = searchDirs(dirs)
	if len(dirs) == 0 {
		return nil, &Error{Name: m.String(), Err: ErrPathListEmpty}
	}

	search := &patternSearch{finder: f, matcher: m, dirs: dirs, handler: h}
	return newResults(search.next), nil
}

// patternSearch holds the listing of one directory at a time.
type patternSearch struct {
	finder  *Finder
	matcher Matcher
	handler NonFatalErrorHandler

	dirs    []string
	dir     string
	entries []fs.DirEntry
}

func (s *patternSearch) next() (string, bool, error) {
	for {
		for len(s.entries) > 0 {
			entry := s.entries[0]
			s.entries = s.entries[1:]

			if !s.matcher.MatchString(entry.Name()) {
				continue
			}
			candidate := filepath.Join(s.dir, entry.Name())
			if s.finder.checker.IsValid(candidate, s.handler) {
				s.finder.log.Debug().Str("path", candidate).Msg("found")
				return candidate, true, nil
			}
		}

		if len(s.dirs) == 0 {
			return "", false, nil
		}
		s.dir = s.dirs[0]
		s.dirs = s.dirs[1:]

		entries, err := s.finder.os.ReadDir(s.dir)
		if err != nil {
			s.handler.Handle(err)
			continue
		}
		s.entries = entries
	}
}
