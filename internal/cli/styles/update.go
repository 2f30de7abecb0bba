package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// UpdateRenderer renders update gate status messages with styled output.
type UpdateRenderer struct {
	theme *Theme
}

// NewUpdateRenderer creates a new update renderer with the given theme.
func NewUpdateRenderer(theme *Theme) *UpdateRenderer {
	return &UpdateRenderer{theme: theme}
}

// RenderChecking renders the "checking" message.
func (*UpdateRenderer) RenderChecking(spinner string) string {
	return fmt.Sprintf("\n  %s Checking required version...\n", spinner)
}

// RenderCurrent renders the "build is current" message.
func (r *UpdateRenderer) RenderCurrent(version string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	versionStyle := r.theme.Highlight

	return fmt.Sprintf(
		"\n  %s Build is current (%s)\n",
		iconStyle.Render(IconCheck),
		versionStyle.Render(version),
	)
}

// RenderNotEnforced renders the "backend enforces no version" message.
func (r *UpdateRenderer) RenderNotEnforced(version string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	versionStyle := r.theme.Highlight

	return fmt.Sprintf(
		"\n  %s No version enforced by backend (running %s)\n",
		iconStyle.Render(IconCheck),
		versionStyle.Render(version),
	)
}

// RenderDevBuild renders the "dev build" skip message.
func (r *UpdateRenderer) RenderDevBuild() string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Warning)
	return fmt.Sprintf(
		"\n  %s Development build - version gate not enforced\n",
		iconStyle.Render(IconInfo),
	)
}

// RenderRequired renders the "update required" message.
func (r *UpdateRenderer) RenderRequired(current, required string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Warning)
	versionStyle := r.theme.Highlight

	return fmt.Sprintf(
		"\n  %s Update required: %s %s %s\n",
		iconStyle.Render(IconWarning),
		versionStyle.Render(current),
		iconStyle.Render(IconArrow),
		versionStyle.Render(required),
	)
}

// RenderCannotInstall renders the message for managed install channels
// where side-loading is disabled.
func (r *UpdateRenderer) RenderCannotInstall(current, required, installerURL string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Warning)
	versionStyle := r.theme.Highlight
	urlStyle := r.theme.Subtle

	return fmt.Sprintf(
		"\n  %s Update required: %s %s %s\n"+
			"  %s Side-loading is disabled on this install channel\n"+
			"     Update through your package manager, or download: %s\n",
		iconStyle.Render(IconWarning),
		versionStyle.Render(current),
		iconStyle.Render(IconArrow),
		versionStyle.Render(required),
		iconStyle.Render(IconInfo),
		urlStyle.Render(installerURL),
	)
}

// RenderDownloading renders the "downloading" message with spinner.
func (r *UpdateRenderer) RenderDownloading(spinner, version string) string {
	versionStyle := r.theme.Highlight

	return fmt.Sprintf(
		"\n  %s Downloading %s...\n",
		spinner,
		versionStyle.Render(version),
	)
}

// RenderHandoff renders the installer handoff success message.
func (r *UpdateRenderer) RenderHandoff(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	pathStyle := r.theme.Subtle

	return fmt.Sprintf(
		"\n  %s Installer downloaded and handed to the OS\n     %s\n",
		iconStyle.Render(IconPackage),
		pathStyle.Render(path),
	)
}

// RenderError renders an error message.
func (r *UpdateRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Update failed: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}
