package cmd

import (
	"github.com/pathkit/segpath/internal/cmdutil"
	"github.com/pathkit/segpath/internal/config"
	"github.com/pathkit/segpath/internal/segpath"
	"github.com/spf13/cobra"
)

func addJoinCmd(root *cobra.Command, helper *cmdutil.Helper) {
	var resolve bool
	cmd := &cobra.Command{
		Use:   "join BASE CHILD...",
		Short: "Adds each child to the base path in turn",
		Long: `Adds each child to the base path in turn.

A base that does not end in a separator names a file, and the file is
replaced by the child. A child of '/' adds nothing.`,
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := helper.GetCmdBase(cmd.Flags())
			if err != nil {
				return err
			}
			var joined string
			if base.Config.Immutable {
				joined = joinPaths[segpath.Immutable](base.Config, args[0], args[1:], resolve)
			} else {
				joined = joinPaths[segpath.Mutable](base.Config, args[0], args[1:], resolve)
			}
			base.Logger.Debug("joined paths", "base", args[0], "children", args[1:], "result", joined)
			base.UI.Output(joined)
			return nil
		},
	}
	cmd.Flags().BoolVar(&resolve, "resolve", false, "Collapse '.' and '..' segments of the result")
	root.AddCommand(cmd)
}

func joinPaths[M segpath.Mode](cfg *config.Config, basePath string, children []string, resolve bool) string {
	p := build[M](basePath, cfg)
	for _, child := range children {
		p = p.Add(child, cfg.BlockBreakout)
	}
	if resolve {
		p = p.Resolve()
	}
	return withSeparator(p, cfg).String()
}
