package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/varia-dev/varia/pkg/logging"
	"github.com/varia-dev/varia/pkg/style"
	"github.com/varia-dev/varia/pkg/tokens"
	"github.com/varia-dev/varia/pkg/variants"
)

func newResolveCmd() *cobra.Command {
	var (
		configPath string
		sets       []string
		on         []string
		off        []string
		reset      bool
		merge      bool
		preserve   []string
	)

	cmd := &cobra.Command{
		Use:     "resolve <component>",
		Short:   MsgResolveShort,
		Long:    MsgResolveLong,
		Example: MsgResolveExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer logging.LogDuration(time.Now(), "resolve")

			logger := logging.GetLogger("resolve")
			component := args[0]

			lib, err := loadLibrary(configPath)
			if err != nil {
				return err
			}

			spec, err := lib.Spec(component)
			if err != nil {
				return err
			}

			sel, err := buildSelection(sets, on, off, reset)
			if err != nil {
				return err
			}

			// Surface what the resolver will silently tolerate
			for _, issue := range variants.ValidateSelection(spec, sel) {
				logger.Warn().Str("component", component).Msg(issue.String())
			}

			res := spec.Resolve(sel)

			settings := lib.Settings()
			if merge || settings.Merge {
				preserved := append(settings.Preserve, preserve...)
				res.Classes = tokens.MergeWithPreserved(preserved, res.Classes)
			}

			format := style.DetectFormat(os.Stdout)
			renderer := style.NewRenderer(format)
			cmd.Println(renderer.RenderResolution(component, res))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", MsgFlagConfig)
	cmd.Flags().StringArrayVar(&sets, "set", nil, MsgFlagSet)
	cmd.Flags().StringArrayVar(&on, "on", nil, MsgFlagOn)
	cmd.Flags().StringArrayVar(&off, "off", nil, MsgFlagOff)
	cmd.Flags().BoolVar(&reset, "reset", false, MsgFlagReset)
	cmd.Flags().BoolVar(&merge, "merge", false, MsgFlagMerge)
	cmd.Flags().StringArrayVar(&preserve, "preserve", nil, MsgFlagPreserve)

	return cmd
}

// buildSelection assembles the runtime selection from the flag values.
// --set values are YAML scalars, so "--set elevated=true" selects a bool
// and "--set size=lg" a string.
func buildSelection(sets, on, off []string, reset bool) (variants.Selection, error) {
	sel := variants.Selection{}

	for _, kv := range sets {
		key, raw, found := strings.Cut(kv, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid --set %q: want axis=value", kv)
		}
		var value interface{}
		if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
			// Not a YAML scalar: take it verbatim
			value = raw
		}
		sel[key] = value
	}
	for _, axis := range on {
		sel[axis] = true
	}
	for _, axis := range off {
		sel[axis] = false
	}
	if reset {
		sel[variants.ResetSelectionKey] = true
	}
	return sel, nil
}
