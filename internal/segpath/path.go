// Package segpath models a filesystem path as a plain value.
//
// A Path is built from any string, using `/` or `\` as separators, and is
// stored internally with forward slashes only. It can be extended with child
// paths, split into directory, filename and extension, and rendered with any
// separator. By default `..` segments are not allowed to climb above the root
// the path was seeded from.
//
// Nothing here consults a filesystem. "Absolute" simply means the internal
// form starts with `/`.
package segpath

import (
	"path/filepath"
	"strings"

	"github.com/pathkit/segpath/internal/segment"
)

// Breakout policies accepted by the constructors and by Add.
const (
	// BlockBreakout drops `..` segments that would reference above the root.
	BlockBreakout = true
	// AllowBreakout keeps the path exactly as given.
	AllowBreakout = false
)

// DefaultSeparator is used by String when no separator has been set.
var DefaultSeparator = string(filepath.Separator)

// Path is a path to a directory or file.
//
// The zero value is not useful; build paths with New, NewDir or NewFile so the
// input always passes through normalization.
type Path[M Mode] struct {
	path          string
	blockBreakout bool
	separator     string
	hasSeparator  bool
}

// Unixer is satisfied by anything that can report a forward-slash path.
// Every Path implements it.
type Unixer interface {
	ToUnixString() string
}

// Source is what a Path can be built from: a raw string or another Path.
type Source interface {
	string | *Path[Mutable] | *Path[Immutable]
}

func sourceString[S Source](source S) string {
	switch s := any(source).(type) {
	case string:
		return s
	case *Path[Mutable]:
		if s != nil {
			return s.path
		}
	case *Path[Immutable]:
		if s != nil {
			return s.path
		}
	}
	return ""
}

func unixString(u Unixer) string {
	if u == nil {
		return ""
	}
	return u.ToUnixString()
}

// New builds a Path from source. With blockBreakout, leading `..` segments
// that would escape the root are removed straight away.
func New[M Mode, S Source](source S, blockBreakout bool) *Path[M] {
	p := &Path[M]{}
	p.store(sourceString(source), blockBreakout)
	return p
}

// NewDir builds a Path that refers to a directory: a trailing separator is
// added unless the result is empty or already has one.
func NewDir[M Mode, S Source](source S, blockBreakout bool) *Path[M] {
	p := New[M](source, blockBreakout)
	if p.path != "" && !strings.HasSuffix(p.path, segment.Separator) {
		p.path += segment.Separator
	}
	return p
}

// NewFile builds a Path that refers to a file: trailing separators are
// removed. An absolute path that is stripped down to nothing becomes `/`.
func NewFile[M Mode, S Source](source S, blockBreakout bool) *Path[M] {
	p := New[M](source, blockBreakout)
	isAbsolute := p.IsAbsolute()
	p.path = strings.TrimRight(p.path, segment.Separator)
	if p.path == "" && isAbsolute {
		p.path = segment.Separator
	}
	return p
}

// store normalizes raw and records the breakout policy used to do so.
func (p *Path[M]) store(raw string, blockBreakout bool) {
	raw = segment.FromBackslashes(raw)
	if blockBreakout {
		raw = segment.BlockBreakout(raw)
	}
	p.path = raw
	p.blockBreakout = blockBreakout
}

// target returns the value a modification should be applied to.
func (p *Path[M]) target() *Path[M] {
	if isImmutable[M]() {
		return p.Copy()
	}
	return p
}

// copySettingsFrom takes over the presentation and policy fields of other.
func (p *Path[M]) copySettingsFrom(other *Path[M]) *Path[M] {
	p.blockBreakout = other.blockBreakout
	p.separator = other.separator
	p.hasSeparator = other.hasSeparator
	return p
}

// Copy returns an independent duplicate, whatever the mode.
func (p *Path[M]) Copy() *Path[M] {
	duplicate := *p
	return &duplicate
}

// Add appends child to the directory portion of this path. When this path
// names a file, the file is replaced by child.
//
// blockBreakout applies to child on its own; the combined result is then
// checked against this path's own policy. A child of `/` adds nothing.
func (p *Path[M]) Add(child string, blockBreakout bool) *Path[M] {
	return p.add(child, blockBreakout)
}

// AddPath is Add for a child that is already a path.
func (p *Path[M]) AddPath(child Unixer, blockBreakout bool) *Path[M] {
	return p.add(unixString(child), blockBreakout)
}

func (p *Path[M]) add(child string, blockBreakout bool) *Path[M] {
	if segment.FromBackslashes(child) == segment.Separator {
		child = ""
	}

	base := p.Dir()
	childPath := New[M](child, blockBreakout).copySettingsFrom(p)

	result := p.target()
	result.store(base.path+childPath.path, p.blockBreakout)
	return result
}

// Resolve collapses `.` and `..` segments and squashes repeated separators.
func (p *Path[M]) Resolve() *Path[M] {
	resolved := segment.ResolveDots(p.path)

	result := p.target()
	result.store(resolved, p.blockBreakout)
	return result
}

// SetSeparator picks the separator used by String. An empty sep is the same
// as ClearSeparator.
func (p *Path[M]) SetSeparator(sep string) *Path[M] {
	result := p.target()
	result.separator = sep
	result.hasSeparator = sep != ""
	return result
}

// ClearSeparator reverts String to DefaultSeparator.
func (p *Path[M]) ClearSeparator() *Path[M] {
	result := p.target()
	result.separator = ""
	result.hasSeparator = false
	return result
}

// Separator returns the separator String will use.
func (p *Path[M]) Separator() string {
	if p.hasSeparator {
		return p.separator
	}
	return DefaultSeparator
}

// String renders the path using its separator.
func (p *Path[M]) String() string {
	return strings.ReplaceAll(p.path, segment.Separator, p.Separator())
}

// ToUnixString returns the internal, forward-slash form of the path.
func (p *Path[M]) ToUnixString() string {
	if p == nil {
		return ""
	}
	return p.path
}

// BlocksBreakout reports the policy this path was built with.
func (p *Path[M]) BlocksBreakout() bool {
	return p.blockBreakout
}

// IsImmutable reports whether modifications produce new values.
func (p *Path[M]) IsImmutable() bool {
	return isImmutable[M]()
}

// Equal compares internal forms. Separators and policies are ignored.
func (p *Path[M]) Equal(other Unixer) bool {
	return p.path == unixString(other)
}

// IsAbsolute reports whether the path starts at the root.
func (p *Path[M]) IsAbsolute() bool {
	return strings.HasPrefix(p.path, segment.Separator)
}

// IsRelative is the opposite of IsAbsolute.
func (p *Path[M]) IsRelative() bool {
	return !p.IsAbsolute()
}
