// Package cmd holds the root cobra command for segpath
package cmd

import (
	"context"

	"github.com/pathkit/segpath/internal/cmdutil"
	"github.com/pathkit/segpath/internal/config"
	"github.com/pathkit/segpath/internal/segpath"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// New builds the segpath command tree
func New(helper *cmdutil.Helper) *cobra.Command {
	root := &cobra.Command{
		Use:           "segpath",
		Short:         "Normalize, compose and inspect filesystem paths as plain strings",
		Version:       helper.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(helper.Out())
	root.SetErr(helper.ErrOut())
	config.AddFlags(root.PersistentFlags())

	addNormalizeCmd(root, helper)
	addResolveCmd(root, helper)
	addJoinCmd(root, helper)
	addInspectCmd(root, helper)
	addMatchCmd(root, helper)
	addBatchCmd(root, helper)
	addConfigCmd(root, helper)
	addVersionCmd(root, helper)
	return root
}

// Execute runs segpath with args and returns the process exit code
func Execute(ctx context.Context, helper *cmdutil.Helper, args []string) int {
	root := New(helper)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if err == nil {
		return cmdutil.ExitOK
	}

	var cmdErr *cmdutil.Error
	if errors.As(err, &cmdErr) {
		if cmdErr.Err != nil {
			helper.LogError(cmdErr.Err)
		}
		return cmdErr.ExitCode
	}
	// anything else comes from cobra itself: unknown commands, bad flags or
	// the wrong number of arguments
	helper.LogError(err)
	return cmdutil.ExitUsage
}

func withSeparator[M segpath.Mode](p *segpath.Path[M], cfg *config.Config) *segpath.Path[M] {
	if cfg.HasSeparator {
		return p.SetSeparator(cfg.Separator)
	}
	return p
}

// build constructs input the way the configuration asks for
func build[M segpath.Mode](input string, cfg *config.Config) *segpath.Path[M] {
	return segpath.Build[M](cfg.Kind, input, cfg.BlockBreakout)
}
