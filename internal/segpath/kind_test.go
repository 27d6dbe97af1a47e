package segpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKind(t *testing.T) {
	cases := []struct {
		name string
		kind Kind
		ok   bool
	}{
		{"", KindPath, true},
		{"path", KindPath, true},
		{"Dir", KindDir, true},
		{" file ", KindFile, true},
		{"folder", KindPath, false},
	}
	for _, tc := range cases {
		kind, ok := ParseKind(tc.name)
		assert.Equal(t, tc.ok, ok, tc.name)
		assert.Equal(t, tc.kind, kind, tc.name)
	}
	assert.Equal(t, "dir", KindDir.String())
	assert.Equal(t, "unknown", Kind(42).String())
}

func TestBuild(t *testing.T) {
	assert.Equal(t, "a/b", Build[Mutable](KindPath, "a/b", BlockBreakout).ToUnixString())
	assert.Equal(t, "a/b/", Build[Mutable](KindDir, "a/b", BlockBreakout).ToUnixString())
	assert.Equal(t, "a/b", Build[Immutable](KindFile, "a/b//", BlockBreakout).ToUnixString())
	assert.Equal(t, "../", Build[Immutable](KindDir, "..", AllowBreakout).ToUnixString())
}

func TestPaths(t *testing.T) {
	paths := Paths[Immutable]{
		New[Immutable]("/a/b", BlockBreakout).SetSeparator(`\`),
		New[Immutable]("c", BlockBreakout).SetSeparator("/"),
	}
	assert.Equal(t, []string{`\a\b`, "c"}, paths.Strings())
	assert.Equal(t, []string{"/a/b", "c"}, paths.UnixStrings())

	unixers := paths.Unixers()
	assert.Len(t, unixers, 2)
	assert.True(t, New[Mutable]("/a/b", BlockBreakout).Equal(unixers[0]))
}
