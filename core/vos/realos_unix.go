//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package vos

import (
	"errors"
	"io/fs"

	"golang.org/x/sys/unix"
)

func isExecutable(name string) (bool, error) {
	err := unix.Access(name, unix.X_OK)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, unix.EACCES):
		return false, nil
	default:
		return false, &fs.PathError{Op: "access", Path: name, Err: err}
	}
}
