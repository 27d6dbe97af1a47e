// Package segment rewrites forward-slash path strings one segment at a time.
//
// A segment is whatever sits between two `/` characters, so empty segments are
// meaningful: a leading `/` produces a leading empty segment and a trailing `/`
// produces a trailing one. Nothing in here touches a filesystem.
//
// There are two rewriting passes with different rules:
//   - BlockBreakout keeps `.` and `..` segments verbatim but drops any `..` that
//     would climb above the start of the string.
//   - ResolveDots collapses `.` and `..` entirely, producing the shortest textual
//     equivalent of the path.
package segment

import "strings"

// Separator is the only delimiter understood by this package.
const Separator = "/"

const (
	currentDir = "."
	parentDir  = ".."
)

// Split breaks a path into its segments. Empty segments are preserved, and
// the empty string yields a single empty segment.
func Split(path string) []string {
	return strings.Split(path, Separator)
}

// Join is the inverse of Split.
func Join(segments []string) string {
	return strings.Join(segments, Separator)
}

// FromBackslashes treats every `\` as a separator.
func FromBackslashes(path string) string {
	return strings.ReplaceAll(path, `\`, Separator)
}

// IsDotSegment reports whether seg is `.` or `..`.
func IsDotSegment(seg string) bool {
	return seg == currentDir || seg == parentDir
}

// BlockBreakout removes the `..` segments that would reference something above
// the root of path. Every other segment is kept as-is, so `a/../b` survives
// untouched while `../b` becomes `b`.
//
// depth counts the segments that a later `..` may climb back out of. The empty
// segment produced by a leading `/` does not count.
func BlockBreakout(path string) string {
	parts := Split(path)
	kept := make([]string, 0, len(parts))
	depth := 0
	for i, part := range parts {
		isLast := i == len(parts)-1

		switch part {
		case currentDir:
			kept = append(kept, part)
		case parentDir:
			if depth > 0 {
				kept = append(kept, part)
				depth--
			} else if isLast {
				// keep the trailing separator the dropped segment implied
				kept = append(kept, "")
			}
		default:
			kept = append(kept, part)
			if !(len(kept) == 1 && kept[0] == "") {
				depth++
			}
		}
	}
	return Join(kept)
}

// ResolveDots collapses every `.` and `..` segment in path. A `..` with nothing
// left to pop is discarded rather than kept, and runs of separators are
// squashed into one.
func ResolveDots(path string) string {
	resolved := make([]string, 0, 8)
	poppedLast := false
	for _, part := range Split(path) {
		poppedLast = false

		switch part {
		case currentDir:
			if len(resolved) > 0 {
				resolved = append(resolved, "")
			}
		case parentDir:
			if len(resolved) > 0 {
				resolved = resolved[:len(resolved)-1]
			}
			poppedLast = true
		default:
			resolved = append(resolved, part)
		}
	}

	if poppedLast {
		resolved = append(resolved, "")
	}

	return squashSeparators(Join(resolved))
}

// squashSeparators replaces each run of two or more separators with one.
func squashSeparators(path string) string {
	if !strings.Contains(path, "//") {
		return path
	}
	var b strings.Builder
	b.Grow(len(path))
	prevSlash := false
	for i := 0; i < len(path); i++ {
		c := path[i]
		if c == '/' {
			if prevSlash {
				continue
			}
			prevSlash = true
		} else {
			prevSlash = false
		}
		b.WriteByte(c)
	}
	return b.String()
}

// Depth walks path the way BlockBreakout does and returns the lowest depth
// reached. A `..` that BlockBreakout would drop still lowers the depth here, so
// a negative result means the path climbs above its own root, and ok is false.
// As in BlockBreakout, an empty segment seen before anything has been kept is
// the root and does not count.
func Depth(path string) (lowest int, ok bool) {
	depth := 0
	keptAny := false
	for _, part := range Split(path) {
		switch {
		case part == currentDir:
			keptAny = true
		case part == parentDir:
			if depth > 0 {
				keptAny = true
			}
			depth--
			if depth < lowest {
				lowest = depth
			}
		case part == "" && !keptAny:
			keptAny = true
		default:
			depth++
			keptAny = true
		}
	}
	return lowest, lowest >= 0
}
