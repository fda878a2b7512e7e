package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/varia-dev/varia/pkg/logging"
	"github.com/varia-dev/varia/pkg/report"
	"github.com/varia-dev/varia/pkg/style"
	"github.com/varia-dev/varia/pkg/variants"
)

func newLintCmd() *cobra.Command {
	var (
		configPath string
		formatName string
	)

	cmd := &cobra.Command{
		Use:     "lint",
		Short:   MsgLintShort,
		Long:    MsgLintLong,
		Example: MsgLintExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer logging.LogDuration(time.Now(), "lint")

			logger := logging.GetLogger("lint")

			lib, err := loadLibrary(configPath)
			if err != nil {
				return err
			}

			if formatName == "" {
				formatName = lib.Settings().Format
			}
			format, err := style.ParseFormat(formatName)
			if err != nil {
				return err
			}

			rep := report.Report{Path: lib.Path()}
			for _, name := range lib.Components() {
				decl, err := lib.Declaration(name)
				if err != nil {
					return err
				}
				rep.Entries = append(rep.Entries, report.Entry{
					Component: name,
					Issues:    variants.Validate(decl),
				})
			}

			errs, warnings, infos := rep.Counts()
			logger.Debug().
				Int("components", len(rep.Entries)).
				Int("errors", errs).
				Int("warnings", warnings).
				Int("infos", infos).
				Msg("Lint completed")

			if format == style.FormatCheckstyle {
				if err := report.WriteCheckstyle(cmd.OutOrStdout(), rep); err != nil {
					return err
				}
			} else {
				renderer := style.NewRenderer(format.Resolve(os.Stdout))
				for _, entry := range rep.Entries {
					cmd.Println(renderer.RenderIssues(entry.Component, entry.Issues))
				}
			}

			if rep.HasErrors() {
				return fmt.Errorf("lint found %d errors", errs)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", MsgFlagConfig)
	cmd.Flags().StringVarP(&formatName, "format", "f", "", MsgFlagFormat)

	return cmd
}
