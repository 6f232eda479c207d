package vos

import "io/fs"

// VEnv is the environment half of the virtual OS.
type VEnv interface {
	// LookupEnv retrieves the value of the environment variable named by the key.
	// If the variable is present in the environment the value (which may be
	// empty) is returned and the boolean is true.
	LookupEnv(key string) (string, bool)

	// Getwd returns the current working directory.
	Getwd() (string, error)

	// UserHomeDir returns the current user's home directory, if one is known.
	UserHomeDir() (string, bool)

	// SplitPathList splits a PATH style list using the platform's list
	// separator. An empty list yields no entries.
	SplitPathList(list string) []string
}

// VFS is the read-only filesystem half of the virtual OS.
type VFS interface {
	// Stat returns a FileInfo describing the named file, following symlinks.
	Stat(name string) (fs.FileInfo, error)

	// Lstat returns a FileInfo describing the named file without following
	// a symlink in the final component.
	Lstat(name string) (fs.FileInfo, error)

	// ReadDir returns the entries of the named directory sorted by name.
	ReadDir(name string) ([]fs.DirEntry, error)

	// IsExecutable reports whether the current user may run the named file.
	IsExecutable(name string) (bool, error)

	// Canonicalize returns the absolute path of name with all symlinks resolved.
	Canonicalize(name string) (string, error)
}

// VOS provides a virtual OS interface for executable lookup.
type VOS interface {
	VEnv
	VFS

	// IsWindows reports whether executables are identified by their file
	// extension (PATHEXT) rather than by permission bits.
	IsWindows() bool

	// PathExt returns the parsed PATHEXT list. It is empty unless IsWindows
	// reports true.
	PathExt() []string
}

const (
	// PathEnv is the environment variable holding the search list.
	PathEnv = "PATH"
	// PathExtEnv is the environment variable holding executable suffixes.
	PathExtEnv = "PATHEXT"
)
