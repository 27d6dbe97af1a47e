package segpath

import "strings"

// Kind names one of the three constructors.
type Kind int

const (
	// KindPath builds with New.
	KindPath Kind = iota
	// KindDir builds with NewDir.
	KindDir
	// KindFile builds with NewFile.
	KindFile
)

var kindNames = map[Kind]string{
	KindPath: "path",
	KindDir:  "dir",
	KindFile: "file",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind accepts "path", "dir" or "file", case-insensitively. The empty
// string is KindPath.
func ParseKind(name string) (Kind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return KindPath, true
	}
	for kind, kindName := range kindNames {
		if kindName == name {
			return kind, true
		}
	}
	return KindPath, false
}

// Build dispatches to the constructor matching kind.
func Build[M Mode, S Source](kind Kind, source S, blockBreakout bool) *Path[M] {
	switch kind {
	case KindDir:
		return NewDir[M](source, blockBreakout)
	case KindFile:
		return NewFile[M](source, blockBreakout)
	default:
		return New[M](source, blockBreakout)
	}
}
