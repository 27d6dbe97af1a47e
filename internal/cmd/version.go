package cmd

import (
	"github.com/pathkit/segpath/internal/cmdutil"
	"github.com/spf13/cobra"
)

func addVersionCmd(root *cobra.Command, helper *cmdutil.Helper) {
	cmd := &cobra.Command{
		Use:           "version",
		Short:         "Prints the segpath version",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write([]byte(helper.Version + "\n"))
			return err
		},
	}
	root.AddCommand(cmd)
}
