package usecase

import (
	"context"

	"github.com/melovue/shell/internal/application/port"
	"github.com/melovue/shell/internal/logging"
)

// DispatchExternalInput holds the input for an external dispatch.
type DispatchExternalInput struct {
	// URL is the vetoed navigation target to hand to the OS.
	URL string
}

// DispatchExternalUseCase hands vetoed URLs to the operating system's
// default handler. Dispatch is best-effort: a missing handler or a
// rejected launch is logged and swallowed, never surfaced to the
// navigation decision that triggered it.
type DispatchExternalUseCase struct {
	launcher port.URLLauncher
}

// NewDispatchExternalUseCase creates a new external dispatch use case.
func NewDispatchExternalUseCase(launcher port.URLLauncher) *DispatchExternalUseCase {
	return &DispatchExternalUseCase{launcher: launcher}
}

// Execute performs one dispatch attempt. It returns nothing: the policy
// decision that vetoed the URL is already final, so failures here are
// diagnostics only. Callers on the UI thread run it via `go`.
func (uc *DispatchExternalUseCase) Execute(ctx context.Context, input DispatchExternalInput) {
	if input.URL == "" {
		return
	}

	ctx = logging.WithURL(ctx, input.URL)
	log := logging.FromContext(ctx)

	if !uc.launcher.CanOpen(ctx, input.URL) {
		log.Debug().Msg("no OS handler for URL, dropping dispatch")
		return
	}

	if err := uc.launcher.Open(ctx, input.URL); err != nil {
		log.Debug().Err(err).Msg("external dispatch failed")
		return
	}

	log.Debug().Msg("dispatched URL to OS handler")
}
