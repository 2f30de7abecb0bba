// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/melovue/shell/internal/cli/styles"
	"github.com/melovue/shell/internal/config"
	"github.com/melovue/shell/internal/domain/build"
	"github.com/melovue/shell/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info

	// ClientSecret identifies official builds to the backend. Set from
	// the build-time variable in main.
	ClientSecret string

	ctx context.Context
}

// NewApp creates a new CLI application with all dependencies.
func NewApp() (*App, error) {
	manager, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := manager.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := manager.Get()

	logLevel := cfg.Logging.Level
	if envLevel := os.Getenv("MELOVUE_LOG_LEVEL"); envLevel != "" {
		logLevel = envLevel
	}
	logger := logging.NewFromConfigValues(logLevel, cfg.Logging.Format)
	ctx := logging.WithComponent(logging.WithContext(context.Background(), logger), "cli")

	return &App{
		Config:        cfg,
		ConfigManager: manager,
		Theme:         styles.NewTheme(),
		ctx:           ctx,
	}, nil
}

// Ctx returns the application context carrying the logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
