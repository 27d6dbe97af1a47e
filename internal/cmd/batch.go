package cmd

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/pathkit/segpath/internal/batch"
	"github.com/pathkit/segpath/internal/cmdutil"
	"github.com/pathkit/segpath/internal/pathglob"
	"github.com/pathkit/segpath/internal/ui"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func addBatchCmd(root *cobra.Command, helper *cmdutil.Helper) {
	var opts struct {
		pattern string
		resolve bool
		unique  bool
	}
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Normalizes paths read from stdin, one per line",
		Long: `Normalizes paths read from stdin, one per line, and writes them to stdout
in the same order. Blank lines are dropped. CRLF input produces CRLF output.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := helper.GetCmdBase(cmd.Flags())
			if err != nil {
				return err
			}
			if opts.pattern != "" {
				if err := pathglob.ValidatePattern(opts.pattern); err != nil {
					return cmdutil.Usage(err)
				}
			}

			if ui.IsTerminal(base.In) {
				base.UI.Warn("Reading paths from stdin, one per line. Press Ctrl-D to finish.")
			}

			summary, err := batch.Process(cmd.Context(), base.In, base.Out, batch.Options{
				Kind:          base.Config.Kind,
				BlockBreakout: base.Config.BlockBreakout,
				Resolve:       opts.resolve,
				Separator:     base.Config.Separator,
				HasSeparator:  base.Config.HasSeparator,
				Pattern:       opts.pattern,
				Unique:        opts.unique,
				Workers:       base.Config.Workers,
				Logger:        base.Logger.Named("batch"),
			})
			var merr *multierror.Error
			if errors.As(err, &merr) {
				for _, lineErr := range merr.Errors {
					base.LogWarning("%v", lineErr)
				}
				return &cmdutil.Error{ExitCode: cmdutil.ExitFailure, Err: fmt.Errorf("%v paths could not be processed", len(merr.Errors))}
			} else if err != nil {
				return base.LogError("%v", err)
			}
			base.Logger.Info("batch complete", "read", summary.Read, "written", summary.Written, "skipped", summary.Skipped)
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.pattern, "pattern", "", "Only write paths matching this glob pattern")
	cmd.Flags().BoolVar(&opts.resolve, "resolve", false, "Collapse '.' and '..' segments")
	cmd.Flags().BoolVar(&opts.unique, "unique", false, "Write each distinct path only once")
	root.AddCommand(cmd)
}
