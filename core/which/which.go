// Package which locates executables the way a shell does, without needing
// a shell.
//
// A name without a separator is looked for in each directory of the search
// list (PATH by default) in order. A name with a separator is only checked
// relative to the working directory. On Windows, names without a PATHEXT
// extension are tried as is and then with each PATHEXT extension appended.
package which

// LookPath returns the first executable called name in PATH.
func LookPath(name string) (string, error) {
	return New().BinaryName(name).FirstResult()
}

// LookPathAll returns every executable called name in PATH.
func LookPathAll(name string) (*Results, error) {
	return New().BinaryName(name).AllResults()
}

// LookPathGlobal is like LookPath, but names containing a separator are
// only accepted if they're absolute.
func LookPathGlobal(name string) (string, error) {
	return New().BinaryName(name).SystemCwd(false).FirstResult()
}

// LookPathAllGlobal is like LookPathAll, but names containing a separator are
// only accepted if they're absolute.
func LookPathAllGlobal(name string) (*Results, error) {
	return New().BinaryName(name).SystemCwd(false).AllResults()
}

// LookPathIn returns the first executable called name in the PATH style list
// paths, resolving relative names against cwd.
func LookPathIn(name, paths, cwd string) (string, error) {
	return New().BinaryName(name).CustomPathList(paths).CustomCwd(cwd).FirstResult()
}

// LookPathAllIn returns every executable called name in the PATH style list
// paths, resolving relative names against cwd.
func LookPathAllIn(name, paths, cwd string) (*Results, error) {
	return New().BinaryName(name).CustomPathList(paths).CustomCwd(cwd).AllResults()
}

// LookPathInGlobal returns the first executable called name in the PATH
// style list paths without using a working directory.
func LookPathInGlobal(name, paths string) (string, error) {
	return New().BinaryName(name).CustomPathList(paths).SystemCwd(false).FirstResult()
}

// LookPathAllInGlobal returns every executable called name in the PATH style
// list paths without using a working directory.
func LookPathAllInGlobal(name, paths string) (*Results, error) {
	return New().BinaryName(name).CustomPathList(paths).SystemCwd(false).AllResults()
}

// Match returns every executable in PATH whose name matches m.
func Match(m Matcher) (*Results, error) {
	return New().Pattern(m).AllResults()
}

// MatchIn returns every executable in the PATH style list paths whose name
// matches m.
func MatchIn(m Matcher, paths string) (*Results, error) {
	return New().Pattern(m).CustomPathList(paths).AllResults()
}
