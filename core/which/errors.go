package which

import (
	"errors"
	"strconv"
)

var (
	// ErrBadAbsolutePath is returned when an absolute name isn't a valid
	// executable.
	ErrBadAbsolutePath = errors.New("bad absolute path")

	// ErrBadRelativePath is returned when a name with a separator isn't a
	// valid executable relative to the working directory.
	ErrBadRelativePath = errors.New("bad relative path")

	// ErrCannotFindBinaryPath is returned when no directory in the search
	// list holds a matching executable.
	ErrCannotFindBinaryPath = errors.New("cannot find binary path")

	// ErrCannotGetCurrentDir is returned when a relative name needs the
	// working directory and it isn't available.
	ErrCannotGetCurrentDir = errors.New("cannot get current directory")

	// ErrPathListEmpty is returned when the search list is needed but is
	// unset or empty.
	ErrPathListEmpty = errors.New("search path list is empty")

	// ErrCannotCanonicalize is returned when a found path can't be resolved
	// to its canonical form.
	ErrCannotCanonicalize = errors.New("cannot canonicalize path")

	// ErrInvalidConfig is returned when a Config combines options that
	// exclude each other.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Error is returned by lookups that fail. Err is one of the package's
// sentinel errors, possibly wrapping the underlying cause.
type Error struct {
	// Name is the binary name, pattern or path the lookup was for.
	Name string
	// Err is the reason the lookup failed.
	Err error
}

func (e *Error) Error() string {
	return "which: " + strconv.Quote(e.Name) + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NonFatalErrorHandler receives I/O errors that remove a single candidate or
// directory from a search without stopping it.
type NonFatalErrorHandler interface {
	Handle(err error)
}

// NonFatalErrorHandlerFunc adapts a function to a NonFatalErrorHandler.
type NonFatalErrorHandlerFunc func(err error)

// Handle calls f(err).
func (f NonFatalErrorHandlerFunc) Handle(err error) {
	f(err)
}

type noopHandler struct{}

func (noopHandler) Handle(error) {}

// ErrorCollector is a NonFatalErrorHandler that keeps every error it is given.
type ErrorCollector struct {
	Errors []error
}

var _ NonFatalErrorHandler = (*ErrorCollector)(nil)

// Handle implements NonFatalErrorHandler.
func (c *ErrorCollector) Handle(err error) {
	c.Errors = append(c.Errors, err)
}

// Err joins the collected errors, it's nil if there were none.
func (c *ErrorCollector) Err() error {
	return errors.Join(c.Errors...)
}
