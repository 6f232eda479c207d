package vos

import (
	"path/filepath"
	"strings"
)

// ParsePathExt parses a PATHEXT value like ".COM;.EXE;.BAT" into its
// suffixes. Entries that don't start with a dot are dropped.
func ParsePathExt(pathext string) []string {
	var out []string
	for _, ext := range strings.Split(pathext, ";") {
		if !strings.HasPrefix(ext, ".") {
			continue
		}
		out = append(out, ext)
	}
	return out
}

// HasExecutableExtension reports whether name's extension is one of exts,
// ignoring case.
func HasExecutableExtension(name string, exts []string) bool {
	ext := filepath.Ext(name)
	if ext == "" {
		return false
	}

	for _, e := range exts {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}

func splitList(list string, sep byte) []string {
	if list == "" {
		return nil
	}
	return strings.Split(list, string(sep))
}
