package which

import "iter"

// Results is a lazy, single-pass sequence of found paths. Paths are only
// looked for as Next is called.
//
//	for results.Next() {
//		fmt.Println(results.Path())
//	}
//	if err := results.Err(); err != nil {
//		...
//	}
type Results struct {
	pull func() (path string, ok bool, err error)

	path string
	err  error
	done bool
}

func newResults(pull func() (string, bool, error)) *Results {
	return &Results{pull: pull}
}

// Next advances to the next path. It returns false when the sequence is
// exhausted or an error stopped it.
func (r *Results) Next() bool {
	if r.done {
		return false
	}

	path, ok, err := r.pull()
	switch {
	case err != nil:
		r.err = err
		r.done = true
		return false
	case !ok:
		r.done = true
		return false
	}

	r.path = path
	return true
}

// Path returns the path found by the last call to Next.
func (r *Results) Path() string {
	return r.path
}

// Err returns the error that stopped the sequence, if any.
func (r *Results) Err() error {
	return r.err
}

// All returns an iterator over the remaining paths. Check Err after the loop.
func (r *Results) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for r.Next() {
			if !yield(r.Path()) {
				return
			}
		}
	}
}

// Collect reads the remaining paths.
func (r *Results) Collect() ([]string, error) {
	var out []string
	for r.Next() {
		out = append(out, r.Path())
	}
	return out, r.Err()
}

// mapResults applies fn to every path of r, stopping at the first error.
func mapResults(r *Results, fn func(string) (string, error)) *Results {
	return newResults(func() (string, bool, error) {
		if !r.Next() {
			return "", false, r.Err()
		}
		out, err := fn(r.Path())
		if err != nil {
			return "", false, err
		}
		return out, true, nil
	})
}
