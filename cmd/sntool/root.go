package main

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// Version is set via -ldflags.
var Version = "dev"

func newRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "sntool",
		Short: "Locate and run the .NET strong-name tool",
		Long: TitleStyle.Render("sntool") + SubtitleStyle.Render(" - locate and run sn.exe") + `

sntool finds sn.exe in the installed Windows SDKs, first on disk and then
through the SDK registry entries, and runs it to verify, re-sign or create
strong-name keys.

` + SubtitleStyle.Render("Examples:") + `
  sntool locate                            Print the path to sn.exe
  sntool verify bin/Core.dll               Verify a signature
  sntool resign --container Keys *.dll     Re-sign with a key container
  sntool create-key release.snk            Generate a key pair
  sntool config show                       Show the effective configuration`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.load()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetOut(app.stdout)
	root.SetErr(app.stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&app.flags.configPath, "config", "", "config file (default is <user config dir>/sntool/config.cue)")
	flags.BoolVarP(&app.flags.verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVar(&app.flags.json, "json", false, "print errors as JSON")

	root.AddCommand(
		newLocateCommand(app),
		newVerifyCommand(app),
		newResignCommand(app),
		newCreateKeyCommand(app),
		newConfigCommand(app),
	)
	return root
}

// Execute runs the CLI and returns the process exit code.
func Execute(app *App) int {
	ctx := context.Background()
	err := fang.Execute(
		ctx,
		newRootCommand(app),
		fang.WithVersion(Version),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(func(w io.Writer, _ fang.Styles, err error) {
			renderError(w, err, app.flags.json)
		}),
	)
	if err != nil {
		return 1
	}
	return 0
}
