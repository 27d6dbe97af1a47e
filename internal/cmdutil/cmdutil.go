// Package cmdutil holds functionality to run segpath via cobra. That includes
// flag parsing and configuration of components common to all subcommands.
package cmdutil

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/pathkit/segpath/internal/config"
	"github.com/pathkit/segpath/internal/ui"
	"github.com/spf13/pflag"
)

// Helper is a struct used to hold configuration values passed via flag, env
// vars, config files, etc. It is not intended for direct use by segpath
// commands, it drives the creation of CmdBase, which is then used by the
// commands themselves.
type Helper struct {
	// Version is the version of segpath that is currently executing
	Version string

	in     io.Reader
	out    io.Writer
	errOut io.Writer
	ui     cli.Ui
}

// NewHelper returns a new helper instance that reads from in and writes to
// out and errOut
func NewHelper(version string, in io.Reader, out io.Writer, errOut io.Writer) *Helper {
	return &Helper{
		Version: version,
		in:      in,
		out:     out,
		errOut:  errOut,
	}
}

// Out is where commands write their output
func (h *Helper) Out() io.Writer { return h.out }

// ErrOut is where usage and errors are written
func (h *Helper) ErrOut() io.Writer { return h.errOut }

// GetCmdBase returns a CmdBase instance configured with values from this helper.
// Configuration errors come back wrapped to exit with ExitUsage.
func (h *Helper) GetCmdBase(flags *pflag.FlagSet) (*CmdBase, error) {
	noColor, _ := flags.GetBool("no-color")
	terminal := ui.BuildColoredUi(ui.ResolveColorMode(noColor), h.in, h.out, h.errOut)
	h.ui = terminal

	cfg, err := config.New(h.Version, flags)
	if err != nil {
		return nil, Usage(err)
	}
	return &CmdBase{
		UI:     terminal,
		Logger: cfg.Logger,
		Config: cfg,
		In:     h.in,
		Out:    h.out,
	}, nil
}

// LogError prints err on the error output. Commands that failed before a
// CmdBase was built fall back to colors picked from the environment.
func (h *Helper) LogError(err error) {
	if h.ui == nil {
		h.ui = ui.BuildColoredUi(ui.GetColorModeFromEnv(), h.in, h.out, h.errOut)
	}
	h.ui.Error(fmt.Sprintf("%s%s", ui.ErrorPrefix, color.RedString(" %v", err)))
}

// CmdBase encompasses configured components common to all segpath commands.
type CmdBase struct {
	UI     cli.Ui
	Logger hclog.Logger
	Config *config.Config
	In     io.Reader
	Out    io.Writer
}

// LogError logs an error and returns it so that the command fails with
// ExitFailure
func (b *CmdBase) LogError(format string, args ...interface{}) error {
	err := fmt.Errorf(format, args...)
	b.Logger.Error("error", "err", err)
	return Failure(err)
}

// LogWarning logs a warning and prints it on the error output
func (b *CmdBase) LogWarning(format string, args ...interface{}) {
	err := fmt.Errorf(format, args...)
	b.Logger.Warn("warning", "err", err)
	b.UI.Warn(fmt.Sprintf("%s%s", ui.WarningPrefix, color.YellowString(" %v", err)))
}
