package which

// Canonical is like LookPath, but the result has every symlink resolved.
func Canonical(name string) (string, error) {
	return New().BinaryName(name).Canonical(true).FirstResult()
}

// CanonicalAll is like LookPathAll, but every result has its symlinks
// resolved. The sequence stops with an error wrapping ErrCannotCanonicalize
// if a result can't be resolved.
func CanonicalAll(name string) (*Results, error) {
	return New().BinaryName(name).Canonical(true).AllResults()
}

// CanonicalIn is like LookPathIn, but the result has every symlink resolved.
func CanonicalIn(name, paths, cwd string) (string, error) {
	return New().BinaryName(name).CustomPathList(paths).CustomCwd(cwd).Canonical(true).FirstResult()
}

// CanonicalAllIn is like LookPathAllIn, but every result has its symlinks
// resolved.
func CanonicalAllIn(name, paths, cwd string) (*Results, error) {
	return New().BinaryName(name).CustomPathList(paths).CustomCwd(cwd).Canonical(true).AllResults()
}
