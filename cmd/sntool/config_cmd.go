package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jmgilman/go/strongname/errors"
)

func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect sntool configuration",
		Long: `Inspect sntool configuration.

Configuration is read from, in order of precedence:
  - SNTOOL_* environment variables (e.g. SNTOOL_CONTAINER)
  - the file given with --config, or <user config dir>/sntool/config.cue,
    or ./config.cue
  - built-in defaults`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			source := SubtitleStyle.Render("(using defaults)")
			if app.cfgPath != "" {
				source = app.cfgPath
			}
			if _, err := fmt.Fprintf(out, "# %s: %s\n", KeyStyle.Render("Config file"), source); err != nil {
				return err
			}

			data, err := yaml.Marshal(app.cfg)
			if err != nil {
				return errors.Wrap(err, errors.CodeInternal, "failed to render configuration")
			}
			_, err = out.Write(data)
			return err
		},
	})

	return cfgCmd
}
