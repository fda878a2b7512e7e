package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/varia-dev/varia/pkg/style"
)

func newListCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "list",
		Short: MsgListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := loadLibrary(configPath)
			if err != nil {
				return err
			}

			var summaries []style.ComponentSummary
			for _, name := range lib.Components() {
				spec, err := lib.Spec(name)
				if err != nil {
					return err
				}
				summaries = append(summaries, style.ComponentSummary{
					Name:     name,
					Axes:     spec.AxisNames(),
					HasReset: spec.Reset != "",
					Compound: len(spec.Compound),
				})
			}

			renderer := style.NewRenderer(style.DetectFormat(os.Stdout))
			cmd.Println(renderer.RenderComponentList(summaries))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", MsgFlagConfig)

	return cmd
}
