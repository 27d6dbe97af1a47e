package segpath

import (
	"strings"

	"github.com/pathkit/segpath/internal/segment"
)

const extensionSeparator = "."

// Dir returns the directory portion of the path as a new value.
//
// A path ending in a separator is already a directory and is returned as-is.
// Otherwise the final segment is dropped, unless it is `.` or `..`: those name
// a directory, not a file, so there is nothing to strip.
func (p *Path[M]) Dir() *Path[M] {
	dir := p.path
	if !strings.HasSuffix(dir, segment.Separator) {
		parts := segment.Split(dir)
		last := parts[len(parts)-1]
		if !segment.IsDotSegment(last) {
			parts[len(parts)-1] = ""
			dir = segment.Join(parts)
		}
	}

	return New[M](dir, p.blockBreakout).copySettingsFrom(p)
}

// Filename returns the final segment of the path. ok is false when the path
// is empty, ends in a separator, or ends in `.` or `..`.
//
// Without includeExtension the text after the last `.` is removed as well,
// provided the filename contains a `.` at all.
func (p *Path[M]) Filename(includeExtension bool) (filename string, ok bool) {
	if p.path == "" || strings.HasSuffix(p.path, segment.Separator) {
		return "", false
	}

	parts := segment.Split(p.path)
	filename = parts[len(parts)-1]
	if segment.IsDotSegment(filename) {
		return "", false
	}

	if !includeExtension {
		tokens := strings.Split(filename, extensionSeparator)
		if len(tokens) > 1 {
			tokens = tokens[:len(tokens)-1]
		}
		filename = strings.Join(tokens, extensionSeparator)
		// "..." loses its last token and would read as ".."
		if segment.IsDotSegment(filename) {
			return "", false
		}
	}

	return filename, true
}

// Extension returns the text after the last `.` of the filename, with the
// dot itself when includeDot is set. ok is false when there is no filename or
// the filename has no `.`.
func (p *Path[M]) Extension(includeDot bool) (extension string, ok bool) {
	filename, ok := p.Filename(true)
	if !ok {
		return "", false
	}

	idx := strings.LastIndex(filename, extensionSeparator)
	if idx == -1 {
		return "", false
	}

	extension = filename[idx+1:]
	if includeDot {
		extension = extensionSeparator + extension
	}
	return extension, true
}
