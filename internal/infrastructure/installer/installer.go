// Package installer launches the desktop's package-install flow for a
// downloaded installer artifact.
package installer

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/melovue/shell/internal/logging"
)

// Handoff implements port.PackageInstaller by handing the artifact to
// the desktop's default handler for package archives. The shell only
// launches the installer UI; it never waits for install completion.
type Handoff struct {
	sideload    bool
	xdgOpenPath string
}

// NewHandoff creates an installer handoff. sideload comes from the
// shell config: install channels that manage updates themselves
// (distro packages, flatpak) set it to false, which removes the
// download action from the update gate entirely.
func NewHandoff(sideload bool) *Handoff {
	openPath, err := exec.LookPath("xdg-open")
	if err != nil {
		// Without xdg-open there is nothing to hand off to.
		return &Handoff{sideload: false}
	}
	return &Handoff{sideload: sideload, xdgOpenPath: openPath}
}

// Supported reports whether side-loaded installs are available.
func (h *Handoff) Supported() bool {
	return h.sideload && h.xdgOpenPath != ""
}

// Install launches the OS installer UI for the artifact at path.
func (h *Handoff) Install(ctx context.Context, path string) error {
	if !h.Supported() {
		return fmt.Errorf("side-loaded installs not supported on this install channel")
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("installer artifact missing: %w", err)
	}

	logging.FromContext(ctx).Info().Str("path", path).Msg("launching package installer")

	if err := exec.CommandContext(ctx, h.xdgOpenPath, path).Run(); err != nil {
		return fmt.Errorf("launch installer for %q: %w", path, err)
	}
	return nil
}
