// Package ui builds the terminal UI used by the segpath commands.
package ui

import (
	"io"
	"os"
	"regexp"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/mitchellh/cli"
)

const ansiEscapeStr = "[\u001B\u009B][[\\]()#;?]*(?:(?:(?:[a-zA-Z\\d]*(?:;[a-zA-Z\\d]*)*)?\u0007)|(?:(?:\\d{1,4}(?:;\\d{0,4})*)?[\\dA-PRZcf-ntqry=><~]))"

var gray = color.New(color.Faint)
var bold = color.New(color.Bold)

// ErrorPrefix is a colored string for error messages
var ErrorPrefix = color.New(color.Bold, color.FgRed, color.ReverseVideo).Sprint(" ERROR ")

// WarningPrefix is a colored string for warnings
var WarningPrefix = color.New(color.Bold, color.FgYellow, color.ReverseVideo).Sprint(" WARNING ")

var ansiRegex = regexp.MustCompile(ansiEscapeStr)

// Dim prints out dimmed text
func Dim(str string) string {
	return gray.Sprint(str)
}

// Bold prints out bold text
func Bold(str string) string {
	return bold.Sprint(str)
}

// IsTerminal reports whether r is a file attached to a terminal
func IsTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// StripAnsi removes color and cursor escape codes from str
func StripAnsi(str string) string {
	return ansiRegex.ReplaceAllString(str, "")
}

type stripAnsiWriter struct {
	wrappedWriter io.Writer
}

func (into *stripAnsiWriter) Write(p []byte) (int, error) {
	n, err := into.wrappedWriter.Write(ansiRegex.ReplaceAll(p, []byte{}))
	if err != nil {
		// n counts stripped bytes, so it can't be mapped back onto p
		return n, err
	}

	// Write must return a non-nil error if it returns n < len(p). Consequently, if the
	// wrappedWrite.Write call succeeded we will return len(p) as the number of bytes
	// written.
	return len(p), nil
}

// BuildColoredUi builds a cli.ColoredUi from input, output and error IOs. In
// suppressed mode every escape code is stripped from both outputs.
func BuildColoredUi(colorMode ColorMode, in io.Reader, out io.Writer, errOut io.Writer) *cli.ColoredUi {
	colorMode = applyColorMode(colorMode)

	var outWriter, errWriter io.Writer
	if colorMode == ColorModeSuppressed {
		outWriter = &stripAnsiWriter{wrappedWriter: out}
		errWriter = &stripAnsiWriter{wrappedWriter: errOut}
	} else {
		outWriter = out
		errWriter = errOut
	}

	return &cli.ColoredUi{
		Ui: &cli.BasicUi{
			Reader:      in,
			Writer:      outWriter,
			ErrorWriter: errWriter,
		},
		OutputColor: cli.UiColorNone,
		InfoColor:   cli.UiColorNone,
		WarnColor:   cli.UiColor{Code: int(color.FgYellow), Bold: false},
		ErrorColor:  cli.UiColorRed,
	}
}
