package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmgilman/go/strongname/sn"
)

func newLocateCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "locate",
		Short: "Print the path to sn.exe",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := locate(app)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}
}

// locate returns the path verify and resign would run: the configured
// tool path when set, otherwise the search result.
func locate(app *App) (string, error) {
	inv, err := app.invoker()
	if err != nil {
		return "", err
	}
	return inv.ToolPath(app.cfg.Settings())
}

func newVerifyCommand(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "verify FILE...",
		Short: "Verify the strong-name signature of assemblies",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := app.invoker()
			if err != nil {
				return err
			}
			settings := app.cfg.Settings()
			if cmd.Flags().Changed("force") {
				settings.ForceVerification = force
			}
			return classify(sn.Verify(cmd.Context(), inv, args, settings))
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "verify even if verification is disabled for the assembly (-vf)")
	return cmd
}

func newResignCommand(app *App) *cobra.Command {
	var container string

	cmd := &cobra.Command{
		Use:   "resign FILE...",
		Short: "Re-sign assemblies with a key from a CSP container",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := app.invoker()
			if err != nil {
				return err
			}
			settings := app.cfg.Settings()
			if cmd.Flags().Changed("container") {
				settings.Container = container
			}
			return classify(sn.Resign(cmd.Context(), inv, args, settings))
		},
	}
	cmd.Flags().StringVarP(&container, "container", "c", "", "key container name (default from config)")
	return cmd
}

func newCreateKeyCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "create-key FILE...",
		Short: "Generate a new key pair into each file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := app.invoker()
			if err != nil {
				return err
			}
			return classify(sn.CreateKey(cmd.Context(), inv, args, app.cfg.Settings()))
		},
	}
}
