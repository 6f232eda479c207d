//go:build windows

package vos

import (
	"errors"
	"io/fs"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modkernel32        = windows.NewLazySystemDLL("kernel32.dll")
	procGetBinaryTypeW = modkernel32.NewProc("GetBinaryTypeW")
)

// isExecutable asks Windows whether name is a runnable image.
func isExecutable(name string) (bool, error) {
	p, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return false, &fs.PathError{Op: "GetBinaryType", Path: name, Err: err}
	}

	var binaryType uint32
	r1, _, e1 := procGetBinaryTypeW.Call(uintptr(unsafe.Pointer(p)), uintptr(unsafe.Pointer(&binaryType)))
	if r1 != 0 {
		return true, nil
	}
	if errors.Is(e1, windows.ERROR_BAD_EXE_FORMAT) {
		return false, nil
	}
	return false, &fs.PathError{Op: "GetBinaryType", Path: name, Err: e1}
}
