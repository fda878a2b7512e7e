package main

import (
	_ "embed"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/varia-dev/varia/pkg/style"
)

//go:embed docs/variants.md
var variantsGuide string

func newDocsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "docs",
		Short: MsgDocsShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if style.DetectFormat(os.Stdout) != style.FormatTerminal {
				cmd.Print(variantsGuide)
				return nil
			}

			renderer, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(100),
			)
			if err != nil {
				// Fall back to the plain source
				cmd.Print(variantsGuide)
				return nil
			}
			rendered, err := renderer.Render(variantsGuide)
			if err != nil {
				cmd.Print(variantsGuide)
				return nil
			}
			cmd.Print(rendered)
			return nil
		},
	}
}
