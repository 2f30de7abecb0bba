// Package cmd provides Cobra CLI commands for melovue-shell.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/melovue/shell/internal/cli"
	"github.com/melovue/shell/internal/domain/build"
)

var (
	app          *cli.App
	buildInfo    build.Info
	clientSecret string

	rootCmd = &cobra.Command{
		Use:   "melovue-shell",
		Short: "Desktop shell for the Melovue web app",
		Long: `Melovue Shell - a native desktop window around the hosted Melovue app.

Built with GTK4 and WebKitGTK. The shell keeps Melovue pages embedded,
hands everything else (Spotify links, mail, phone numbers, foreign
sites) to the operating system, and blocks startup behind the backend's
required-version gate.

Use 'melovue-shell shell' to launch the graphical shell, or explore the
subcommands for CLI operations like the update gate check.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			app.ClientSecret = clientSecret
			return nil
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// shellCmd is a placeholder for help - actual execution is in main.go
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Launch the graphical shell",
	Long: `Launch the GTK4 shell window.

The shell resolves the update gate against the backend, then loads the
hosted Melovue app.`,
	Run: func(_ *cobra.Command, _ []string) {
		// This is handled by main.go before cobra runs
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

// SetClientSecret sets the compiled-in client secret (called from main.go).
func SetClientSecret(secret string) {
	clientSecret = secret
}
