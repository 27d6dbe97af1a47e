package cmd

import (
	"encoding/json"

	"github.com/pathkit/segpath/internal/cmdutil"
	"github.com/pathkit/segpath/internal/config"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func addConfigCmd(root *cobra.Command, helper *cmdutil.Helper) {
	var write bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Prints the effective configuration",
		Long: `Prints the effective configuration as JSON, after combining the config
file, SEGPATH_* environment variables and flags. With --write the result is
saved to the config file.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := helper.GetCmdBase(cmd.Flags())
			if err != nil {
				return err
			}
			fileConfig := base.Config.ToFileConfig()
			if write {
				if err := config.WriteConfigFile(base.Config.ConfigFile, fileConfig); err != nil {
					return base.LogError("%v", err)
				}
				base.UI.Info("Wrote " + base.Config.ConfigFile)
				return nil
			}

			rendered, err := json.MarshalIndent(map[string]interface{}{
				"file":   base.Config.ConfigFile,
				"config": fileConfig,
			}, "", "  ")
			if err != nil {
				return cmdutil.Failure(errors.Wrap(err, "encoding config"))
			}
			base.UI.Output(string(rendered))
			return nil
		},
	}
	cmd.Flags().BoolVar(&write, "write", false, "Save the effective configuration to the config file")
	root.AddCommand(cmd)
}
