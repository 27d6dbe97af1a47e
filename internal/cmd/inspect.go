package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/pathkit/segpath/internal/cmdutil"
	"github.com/pathkit/segpath/internal/config"
	"github.com/pathkit/segpath/internal/segment"
	"github.com/pathkit/segpath/internal/segpath"
	"github.com/pathkit/segpath/internal/ui"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// inspection describes a single path. Absent parts are null in JSON.
type inspection struct {
	Input         string  `json:"input"`
	Path          string  `json:"path"`
	Unix          string  `json:"unix"`
	Dir           string  `json:"dir"`
	Filename      *string `json:"filename"`
	Stem          *string `json:"stem"`
	Extension     *string `json:"extension"`
	Absolute      bool    `json:"absolute"`
	BlockBreakout bool    `json:"blockBreakout"`
	Immutable     bool    `json:"immutable"`
	// Escapes is set when the path climbs above its own start
	Escapes bool `json:"escapes"`
}

func addInspectCmd(root *cobra.Command, helper *cmdutil.Helper) {
	var outputJSON bool
	cmd := &cobra.Command{
		Use:           "inspect PATH",
		Short:         "Reports the directory, filename and extension of a path",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := helper.GetCmdBase(cmd.Flags())
			if err != nil {
				return err
			}
			var result *inspection
			if base.Config.Immutable {
				result = inspect[segpath.Immutable](args[0], base.Config)
			} else {
				result = inspect[segpath.Mutable](args[0], base.Config)
			}

			if outputJSON {
				rendered, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return cmdutil.Failure(errors.Wrap(err, "encoding inspection"))
				}
				base.UI.Output(string(rendered))
				return nil
			}
			for _, line := range result.lines() {
				base.UI.Output(line)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&outputJSON, "json", false, "Pass --json to report in JSON format")
	root.AddCommand(cmd)
}

func inspect[M segpath.Mode](input string, cfg *config.Config) *inspection {
	p := withSeparator(build[M](input, cfg), cfg)
	_, contained := segment.Depth(p.ToUnixString())

	result := &inspection{
		Input:         input,
		Path:          p.String(),
		Unix:          p.ToUnixString(),
		Dir:           p.Dir().String(),
		Absolute:      p.IsAbsolute(),
		BlockBreakout: p.BlocksBreakout(),
		Immutable:     p.IsImmutable(),
		Escapes:       !contained,
	}
	if filename, ok := p.Filename(true); ok {
		result.Filename = &filename
	}
	if stem, ok := p.Filename(false); ok {
		result.Stem = &stem
	}
	if extension, ok := p.Extension(true); ok {
		result.Extension = &extension
	}
	return result
}

func (i *inspection) lines() []string {
	optional := func(value *string) string {
		if value == nil {
			return ui.Dim("(none)")
		}
		return *value
	}
	return []string{
		fmt.Sprintf("%s %v", ui.Bold("path:     "), i.Path),
		fmt.Sprintf("%s %v", ui.Bold("dir:      "), i.Dir),
		fmt.Sprintf("%s %v", ui.Bold("filename: "), optional(i.Filename)),
		fmt.Sprintf("%s %v", ui.Bold("stem:     "), optional(i.Stem)),
		fmt.Sprintf("%s %v", ui.Bold("extension:"), optional(i.Extension)),
		fmt.Sprintf("%s %v", ui.Bold("absolute: "), i.Absolute),
		fmt.Sprintf("%s %v", ui.Bold("escapes:  "), i.Escapes),
	}
}
