//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || windows)

package vos

import "os"

// isExecutable falls back to the permission bits on platforms without
// access(2).
func isExecutable(name string) (bool, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return false, err
	}
	return fi.Mode().IsRegular() && fi.Mode().Perm()&0111 != 0, nil
}
