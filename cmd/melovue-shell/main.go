package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/melovue/shell/internal/application/usecase"
	"github.com/melovue/shell/internal/bootstrap"
	"github.com/melovue/shell/internal/cli/cmd"
	"github.com/melovue/shell/internal/config"
	"github.com/melovue/shell/internal/domain/build"
	"github.com/melovue/shell/internal/infrastructure/installer"
	"github.com/melovue/shell/internal/infrastructure/updatefeed"
	"github.com/melovue/shell/internal/logging"
	"github.com/melovue/shell/internal/ui"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"

	// clientSecret identifies official builds to the backend. Builds
	// without it omit the client header entirely.
	clientSecret = ""
)

func main() {
	info := build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	}

	// Run GUI mode for the shell command
	if len(os.Args) > 1 && os.Args[1] == "shell" {
		os.Args = os.Args[:1]
		os.Exit(runGUI(info))
		return
	}

	cmd.SetBuildInfo(info)
	cmd.SetClientSecret(clientSecret)

	// Default: run CLI (shows help if no subcommand)
	cmd.Execute()
}

func runGUI(info build.Info) int {
	runtime.LockOSThread()
	timer := bootstrap.NewStartupTimer()

	manager, cfg := initConfig()
	timer.Mark("config")

	ctx := initStartupContext(cfg)
	timer.Mark("logger")
	log := logging.FromContext(ctx)

	initResult, err := bootstrap.RunParallelInit(bootstrap.ParallelInitInput{
		Ctx:    ctx,
		Config: cfg,
	})
	if err != nil {
		log.Error().Err(err).Msg("initialization failed")
		return 1
	}
	timer.MarkDuration("parallel_phase", initResult.Duration)

	authority := updatefeed.NewClient(cfg.Shell.BaseURL, clientSecret)
	packageInstaller := installer.NewHandoff(cfg.Update.Sideload)

	deps := &ui.Dependencies{
		Config:        cfg,
		ConfigManager: manager,
		BuildInfo:     info,
		ClientSecret:  clientSecret,
		ResolveGateUC: usecase.NewResolveGateUseCase(authority, info),
		DownloadUC: usecase.NewDownloadInstallerUseCase(
			updatefeed.NewDownloader(),
			packageInstaller,
			initResult.StagingDir,
		),
		DispatchUC: usecase.NewDispatchExternalUseCase(initResult.Launcher),
	}
	timer.Mark("use_cases")

	app, err := ui.New(deps)
	if err != nil {
		log.Error().Err(err).Msg("failed to create application")
		return 1
	}
	timer.Log(ctx)

	setupSignalHandler(ctx, app)

	return app.Run(ctx, os.Args)
}

func initConfig() (*config.Manager, *config.Config) {
	manager, err := config.NewManager()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize configuration: %v\n", err)
		os.Exit(1)
	}
	if err := manager.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	return manager, manager.Get()
}

func initStartupContext(cfg *config.Config) context.Context {
	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	logger.Info().
		Str("version", version).
		Str("commit", commit).
		Str("build_date", buildDate).
		Msg("starting melovue-shell")
	return logging.WithContext(context.Background(), logger)
}

func setupSignalHandler(ctx context.Context, app *ui.App) {
	log := logging.FromContext(ctx)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		signal.Stop(sigCh)
		log.Info().Str("signal", sig.String()).Msg("received interrupt, quitting")
		app.Quit()
	}()
}
