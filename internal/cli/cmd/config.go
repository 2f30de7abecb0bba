package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/melovue/shell/internal/cli/styles"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the active configuration",
	Long:  `Display the configuration file path and the effective settings.`,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	cfg := app.Config
	keyStyle := app.Theme.Subtle
	valStyle := app.Theme.Highlight
	iconStyle := lipgloss.NewStyle().Foreground(app.Theme.Accent)

	lines := []string{
		"",
		fmt.Sprintf("  %s %s %s", iconStyle.Render(styles.IconConfig), keyStyle.Render("File"), valStyle.Render(app.ConfigManager.GetConfigFile())),
		"",
		fmt.Sprintf("  %s %s", keyStyle.Render("shell.base_url"), valStyle.Render(cfg.Shell.BaseURL)),
		fmt.Sprintf("  %s %s", keyStyle.Render("shell.trusted_hosts"), valStyle.Render(strings.Join(cfg.Shell.TrustedHosts, ", "))),
		fmt.Sprintf("  %s %s", keyStyle.Render("shell.partner_host"), valStyle.Render(cfg.Shell.PartnerHost)),
		fmt.Sprintf("  %s %s", keyStyle.Render("shell.partner_embed_prefix"), valStyle.Render(cfg.Shell.PartnerEmbedPrefix)),
		fmt.Sprintf("  %s %s", keyStyle.Render("update.sideload"), valStyle.Render(fmt.Sprintf("%t", cfg.Update.Sideload))),
		fmt.Sprintf("  %s %s", keyStyle.Render("logging.level"), valStyle.Render(cfg.Logging.Level)),
		fmt.Sprintf("  %s %s", keyStyle.Render("logging.format"), valStyle.Render(cfg.Logging.Format)),
		"",
	}

	fmt.Println(strings.Join(lines, "\n"))
	return nil
}
