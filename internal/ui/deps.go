// Package ui implements the GTK shell surface for the Melovue web app.
package ui

import (
	"errors"

	"github.com/melovue/shell/internal/application/usecase"
	"github.com/melovue/shell/internal/config"
	"github.com/melovue/shell/internal/domain/build"
)

// Dependencies holds everything the shell App needs, constructed by the
// CLI entrypoint before GTK starts.
type Dependencies struct {
	Config        *config.Config
	ConfigManager *config.Manager
	BuildInfo     build.Info

	// ClientSecret is attached as the x-mv-client header on the initial
	// page load. Empty builds send no header.
	ClientSecret string

	ResolveGateUC *usecase.ResolveGateUseCase
	DownloadUC    *usecase.DownloadInstallerUseCase
	DispatchUC    *usecase.DispatchExternalUseCase
}

// Validate checks that all required dependencies are present.
func (d *Dependencies) Validate() error {
	if d == nil {
		return errors.New("dependencies are nil")
	}
	if d.Config == nil {
		return errors.New("config is required")
	}
	if d.ResolveGateUC == nil {
		return errors.New("gate resolution use case is required")
	}
	if d.DownloadUC == nil {
		return errors.New("installer download use case is required")
	}
	if d.DispatchUC == nil {
		return errors.New("external dispatch use case is required")
	}
	return nil
}
