package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitJoin(t *testing.T) {
	cases := []struct {
		input    string
		segments []string
	}{
		{"", []string{""}},
		{"/", []string{"", ""}},
		{"a", []string{"a"}},
		{"/a/", []string{"", "a", ""}},
		{"a//b", []string{"a", "", "b"}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.segments, Split(tc.input), "Split(%q)", tc.input)
		assert.Equal(t, tc.input, Join(tc.segments), "Join(%q)", tc.segments)
	}
}

func TestFromBackslashes(t *testing.T) {
	assert.Equal(t, "/a/b/c/", FromBackslashes(`\a\b\c\`))
	assert.Equal(t, "/a/b/c", FromBackslashes(`/a\b/c`))
	assert.Equal(t, "", FromBackslashes(""))
}

func TestIsDotSegment(t *testing.T) {
	assert.True(t, IsDotSegment("."))
	assert.True(t, IsDotSegment(".."))
	assert.False(t, IsDotSegment("..."))
	assert.False(t, IsDotSegment(".a"))
	assert.False(t, IsDotSegment(""))
}

func TestBlockBreakout(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"/", "/"},
		{"//z//", "//z//"},
		{"z", "z"},
		{"..", ""},
		{"../", ""},
		{"/..", "/"},
		{"/../", "/"},
		{"a/../", "a/../"},
		{"/a/../", "/a/../"},
		{"../b", "b"},
		{"/../b", "/b"},
		{"a/../b", "a/../b"},
		{"/a/../b", "/a/../b"},
		{"./a/", "./a/"},
		{"/a/.", "/a/."},
		{"/a/./b", "/a/./b"},
		{"./..", "./"},
		{"../.", "."},
		{"../../a", "a"},
		{"a/../../b", "a/../b"},
		{"/A/../../a", "/A/../a"},
		{"/A/B/../../a", "/A/B/../../a"},
		{"a//..", "a//.."},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, BlockBreakout(tc.input))
		})
	}
}

func TestBlockBreakoutIsIdempotent(t *testing.T) {
	inputs := []string{"", "/", "..", "../a/../..", "/../a/./..", "a/b/../../..", "..//a", "./../x/"}
	for _, input := range inputs {
		once := BlockBreakout(input)
		assert.Equal(t, once, BlockBreakout(once), "input %q", input)
	}
}

func TestResolveDots(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"/", "/"},
		{"z", "z"},
		{"a/..", ""},
		{"a/../", ""},
		{"a/b/..", "a/"},
		{"a/b/../", "a/"},
		{"a/.", "a/"},
		{"a/./b", "a/b"},
		{"./a/", "a/"},
		{"a/../b", "b"},
		{"../a", "a"},
		{"../a/", "a/"},
		{"/a/b/..", "/a/"},
		{"/a/./b", "/a/b"},
		{"/a/../b", "/b"},
		{"/./a/", "/a/"},
		{"//a//b", "/a/b"},
		// popping the root segment itself leaves nothing behind
		{"/..", ""},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, ResolveDots(tc.input))
		})
	}
}

func TestResolveDotsLeavesNoDotSegments(t *testing.T) {
	inputs := []string{"./.././a/./b/../../c/.", "/x/./y/..", "..", "a/....", "/../../"}
	for _, input := range inputs {
		resolved := ResolveDots(input)
		for _, seg := range Split(resolved) {
			assert.False(t, IsDotSegment(seg), "ResolveDots(%q) = %q", input, resolved)
		}
		assert.NotContains(t, resolved, "//")
		assert.Equal(t, resolved, ResolveDots(resolved))
	}
}

func TestDepth(t *testing.T) {
	cases := []struct {
		input  string
		lowest int
		ok     bool
	}{
		{"", 0, true},
		{"/", 0, true},
		{"a/../b", 0, true},
		{"/a/../b", 0, true},
		{"../a", -1, false},
		{"/..", -1, false},
		{"a/../..", -1, false},
		{"./../..", -2, false},
		// the `..` is dropped, so the empty segment after it is the root
		{"..//..", -2, false},
		{"../", -1, false},
	}
	for _, tc := range cases {
		lowest, ok := Depth(tc.input)
		assert.Equal(t, tc.lowest, lowest, "Depth(%q)", tc.input)
		assert.Equal(t, tc.ok, ok, "Depth(%q)", tc.input)
	}
}

func TestDepthOfBlockedPathNeverEscapes(t *testing.T) {
	inputs := []string{"..", "../../a/..", "/../..", "a/../../..", "x/y/../../../z", ".././../."}
	for _, input := range inputs {
		_, ok := Depth(BlockBreakout(input))
		assert.True(t, ok, "BlockBreakout(%q) = %q", input, BlockBreakout(input))
	}
}
