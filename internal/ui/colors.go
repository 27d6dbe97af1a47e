package ui

import (
	"os"

	"github.com/fatih/color"
)

// ColorMode says whether output should be colored
type ColorMode int

const (
	ColorModeUndefined ColorMode = iota + 1
	ColorModeSuppressed
	ColorModeForced
)

var forceColorModes = map[string]ColorMode{
	"0":     ColorModeSuppressed,
	"false": ColorModeSuppressed,
	"1":     ColorModeForced,
	"2":     ColorModeForced,
	"3":     ColorModeForced,
	"true":  ColorModeForced,
}

// GetColorModeFromEnv maps FORCE_COLOR onto a ColorMode. Unknown values leave
// the decision to the terminal.
func GetColorModeFromEnv() ColorMode {
	if mode, ok := forceColorModes[os.Getenv("FORCE_COLOR")]; ok {
		return mode
	}
	return ColorModeUndefined
}

// ResolveColorMode picks the color mode for a command. --no-color wins over
// FORCE_COLOR.
func ResolveColorMode(noColor bool) ColorMode {
	if noColor {
		return ColorModeSuppressed
	}
	return GetColorModeFromEnv()
}

// applyColorMode sets fatih/color's global switch and reports the mode that
// ended up in effect.
func applyColorMode(colorMode ColorMode) ColorMode {
	if colorMode != ColorModeUndefined {
		color.NoColor = colorMode == ColorModeSuppressed
	}
	// otherwise color.NoColor keeps the default fatih/color derived from the
	// terminal and NO_COLOR
	if color.NoColor {
		return ColorModeSuppressed
	}
	return ColorModeForced
}
