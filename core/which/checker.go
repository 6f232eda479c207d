package which

import (
	"io/fs"

	"github.com/josephlewis42/which/core/vos"
)

// Checker decides whether a candidate path is a runnable file. I/O errors are
// passed to h and count as invalid.
type Checker interface {
	IsValid(name string, h NonFatalErrorHandler) bool
}

// NewChecker returns the default Checker for virtOS: the path must exist and
// be executable.
func NewChecker(virtOS vos.VOS) Checker {
	return compositeChecker{
		existenceChecker{virtOS},
		executableChecker{virtOS},
	}
}

// existenceChecker requires a regular file. On Windows the final component
// isn't followed and a symlink is also accepted.
type existenceChecker struct {
	os vos.VOS
}

func (c existenceChecker) IsValid(name string, h NonFatalErrorHandler) bool {
	if c.os.IsWindows() {
		fi, err := c.os.Lstat(name)
		if err != nil {
			h.Handle(err)
			return false
		}
		return fi.Mode().IsRegular() || fi.Mode()&fs.ModeSymlink != 0
	}

	fi, err := c.os.Stat(name)
	if err != nil {
		h.Handle(err)
		return false
	}
	return fi.Mode().IsRegular()
}

type executableChecker struct {
	os vos.VOS
}

func (c executableChecker) IsValid(name string, h NonFatalErrorHandler) bool {
	if c.os.IsWindows() && vos.HasExecutableExtension(name, c.os.PathExt()) {
		return true
	}

	ok, err := c.os.IsExecutable(name)
	if err != nil {
		h.Handle(err)
		return false
	}
	return ok
}

// compositeChecker passes if every checker passes, stopping at the first
// failure.
type compositeChecker []Checker

func (cc compositeChecker) IsValid(name string, h NonFatalErrorHandler) bool {
	for _, c := range cc {
		if !c.IsValid(name, h) {
			return false
		}
	}
	return true
}
