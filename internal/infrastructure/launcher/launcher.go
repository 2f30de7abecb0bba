// Package launcher hands URLs to the desktop environment's default
// handlers via the xdg utilities.
package launcher

import (
	"context"
	"fmt"
	"net/url"
	"os/exec"
	"strings"

	"github.com/melovue/shell/internal/logging"
)

// Adapter implements port.URLLauncher using xdg-open and xdg-mime.
type Adapter struct {
	xdgOpenPath string
	xdgMimePath string
}

// NewAdapter creates a launcher adapter. xdg-open must be installed;
// xdg-mime is optional and only used for handler queries.
func NewAdapter() (*Adapter, error) {
	openPath, err := exec.LookPath("xdg-open")
	if err != nil {
		return nil, fmt.Errorf("xdg-open not found in PATH: %w", err)
	}

	// Handler queries degrade gracefully without xdg-mime.
	mimePath, _ := exec.LookPath("xdg-mime")

	return &Adapter{
		xdgOpenPath: openPath,
		xdgMimePath: mimePath,
	}, nil
}

// CanOpen reports whether the desktop has a default handler registered
// for the URL's scheme. When the query tool is unavailable the answer
// is optimistic: dispatch stays best-effort either way.
func (a *Adapter) CanOpen(ctx context.Context, rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" {
		return false
	}

	if a.xdgMimePath == "" {
		return true
	}

	out, err := exec.CommandContext(ctx, a.xdgMimePath, "query", "default", "x-scheme-handler/"+parsed.Scheme).Output()
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Str("scheme", parsed.Scheme).Msg("handler query failed, assuming handler exists")
		return true
	}
	return strings.TrimSpace(string(out)) != ""
}

// Open asks the desktop to open the URL with its default handler.
func (a *Adapter) Open(ctx context.Context, rawURL string) error {
	if err := exec.CommandContext(ctx, a.xdgOpenPath, rawURL).Run(); err != nil {
		return fmt.Errorf("xdg-open %q: %w", rawURL, err)
	}
	return nil
}
