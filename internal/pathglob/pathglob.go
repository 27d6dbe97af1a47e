// Package pathglob matches path values against doublestar glob patterns.
package pathglob

import (
	"github.com/bmatcuk/doublestar"
	"github.com/pathkit/segpath/internal/segment"
	"github.com/pathkit/segpath/internal/segpath"
	"github.com/pkg/errors"
)

// Match reports whether p matches pattern. Both sides have their `.` and
// `..` segments resolved first, so `a/./b` matches `a/b`. A backslash in
// pattern escapes the next character, as doublestar defines it.
func Match(pattern string, p segpath.Unixer) (bool, error) {
	if p == nil {
		return false, nil
	}
	matches, err := doublestar.Match(segment.ResolveDots(pattern), segment.ResolveDots(p.ToUnixString()))
	if err != nil {
		return false, errors.Wrapf(err, "matching pattern %q", pattern)
	}
	return matches, nil
}

// Filter returns the indices of the paths that match pattern, in order.
func Filter(pattern string, paths []segpath.Unixer) ([]int, error) {
	if err := ValidatePattern(pattern); err != nil {
		return nil, err
	}
	var matched []int
	for index, p := range paths {
		matches, err := Match(pattern, p)
		if err != nil {
			return nil, err
		}
		if matches {
			matched = append(matched, index)
		}
	}
	return matched, nil
}

// ValidatePattern returns an error wrapping doublestar.ErrBadPattern when
// pattern is malformed. It is a best-effort check; Match still reports
// errors found later.
func ValidatePattern(pattern string) error {
	// doublestar parses lazily and only reports syntax it actually reaches.
	// Matching the pattern against its own text walks most of it.
	_, err := doublestar.Match(pattern, pattern)
	if err != nil {
		return errors.Wrapf(err, "invalid pattern %q", pattern)
	}
	return nil
}
