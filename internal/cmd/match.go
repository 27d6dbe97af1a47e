package cmd

import (
	"github.com/pathkit/segpath/internal/cmdutil"
	"github.com/pathkit/segpath/internal/config"
	"github.com/pathkit/segpath/internal/pathglob"
	"github.com/pathkit/segpath/internal/segpath"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func addMatchCmd(root *cobra.Command, helper *cmdutil.Helper) {
	cmd := &cobra.Command{
		Use:   "match PATTERN PATH...",
		Short: "Prints the paths that match a glob pattern",
		Long: `Prints the paths that match a glob pattern.

Patterns support '**' to match any number of directories. '.' and '..'
segments are collapsed on both sides before matching. Exits with 1 when
nothing matched.`,
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := helper.GetCmdBase(cmd.Flags())
			if err != nil {
				return err
			}
			pattern := args[0]
			if err := pathglob.ValidatePattern(pattern); err != nil {
				return cmdutil.Usage(err)
			}

			matched, err := matchPaths(base.Config, pattern, args[1:])
			if err != nil {
				return cmdutil.Usage(err)
			}
			base.Logger.Debug("matched paths", "pattern", pattern, "paths", len(args)-1, "matched", len(matched))
			if len(matched) == 0 {
				return &cmdutil.Error{ExitCode: cmdutil.ExitFailure}
			}
			for _, rendered := range matched {
				base.UI.Output(rendered)
			}
			return nil
		},
	}
	root.AddCommand(cmd)
}

func matchPaths(cfg *config.Config, pattern string, inputs []string) ([]string, error) {
	paths := make(segpath.Paths[segpath.Immutable], len(inputs))
	for index, input := range inputs {
		paths[index] = withSeparator(build[segpath.Immutable](input, cfg), cfg)
	}

	indices, err := pathglob.Filter(pattern, paths.Unixers())
	if err != nil {
		return nil, errors.Wrap(err, "matching paths")
	}
	rendered := paths.Strings()
	matched := make([]string, len(indices))
	for i, index := range indices {
		matched[i] = rendered[index]
	}
	return matched, nil
}
