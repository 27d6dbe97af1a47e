package cmd

import (
	"github.com/pathkit/segpath/internal/cmdutil"
	"github.com/pathkit/segpath/internal/config"
	"github.com/pathkit/segpath/internal/segpath"
	"github.com/spf13/cobra"
)

func addNormalizeCmd(root *cobra.Command, helper *cmdutil.Helper) {
	var resolve bool
	cmd := &cobra.Command{
		Use:   "normalize PATH...",
		Short: "Prints each path in its normalized form",
		Long: `Prints each path in its normalized form.

Backslashes are read as separators and, unless --allow-breakout is given,
'..' segments that would climb above the start of the path are dropped.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := helper.GetCmdBase(cmd.Flags())
			if err != nil {
				return err
			}
			for _, rendered := range normalizeAll(base.Config, args, resolve) {
				base.UI.Output(rendered)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&resolve, "resolve", false, "Collapse '.' and '..' segments")
	root.AddCommand(cmd)
}

func addResolveCmd(root *cobra.Command, helper *cmdutil.Helper) {
	cmd := &cobra.Command{
		Use:           "resolve PATH...",
		Short:         "Prints each path with its '.' and '..' segments collapsed",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := helper.GetCmdBase(cmd.Flags())
			if err != nil {
				return err
			}
			for _, rendered := range normalizeAll(base.Config, args, true) {
				base.UI.Output(rendered)
			}
			return nil
		},
	}
	root.AddCommand(cmd)
}

func normalizeAll(cfg *config.Config, inputs []string, resolve bool) []string {
	if cfg.Immutable {
		return normalizePaths[segpath.Immutable](cfg, inputs, resolve)
	}
	return normalizePaths[segpath.Mutable](cfg, inputs, resolve)
}

func normalizePaths[M segpath.Mode](cfg *config.Config, inputs []string, resolve bool) []string {
	paths := make(segpath.Paths[M], len(inputs))
	for index, input := range inputs {
		p := build[M](input, cfg)
		if resolve {
			p = p.Resolve()
		}
		paths[index] = withSeparator(p, cfg)
	}
	return paths.Strings()
}
