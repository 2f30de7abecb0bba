package ui

import (
	"context"
	"sync"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/melovue/shell/internal/application/usecase"
	"github.com/melovue/shell/internal/config"
	"github.com/melovue/shell/internal/domain/entity"
	"github.com/melovue/shell/internal/domain/navigation"
	"github.com/melovue/shell/internal/logging"
	"github.com/melovue/shell/pkg/webkit"
)

const (
	// AppID is the application identifier for GTK.
	AppID = "com.melovue.shell"

	windowTitle   = "Melovue"
	defaultWidth  = 1280
	defaultHeight = 800

	clientHeaderName = "x-mv-client"

	pageGate  = "gate"
	pageError = "error"
	pageWeb   = "web"
)

// App wraps the GTK Application and manages the shell lifecycle: the
// update gate, the policed web surface and the load failure page.
type App struct {
	deps   *Dependencies
	gtkApp *gtk.Application

	window *gtk.ApplicationWindow
	stack  *gtk.Stack

	gatePage  *GatePage
	errorPage *ErrorPage
	webView   *webkit.WebView

	// engine is swapped atomically on config live reload; navigation
	// callbacks read it through currentEngine.
	engine *navigation.Engine
	mu     sync.RWMutex

	// gate holds the last resolved gate output, for the install action.
	gate *usecase.ResolveGateOutput

	// gateState tracks the gate state machine. The web surface is only
	// ever mounted from GateNotRequired.
	gateState entity.GateState

	cancel context.CancelCauseFunc
}

// New creates a new App with the given dependencies.
func New(deps *Dependencies) (*App, error) {
	if err := deps.Validate(); err != nil {
		return nil, err
	}
	return &App{
		deps:   deps,
		engine: engineFromConfig(deps.Config),
	}, nil
}

// Run starts the GTK application and blocks until it exits.
// Returns the exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	ctx = logging.WithComponent(ctx, "ui")
	log := logging.FromContext(ctx)

	ctx, cancel := context.WithCancelCause(ctx)
	a.cancel = cancel

	webkit.InitMainThread()

	log.Debug().Msg("creating GTK application")
	a.gtkApp = gtk.NewApplication(AppID, gio.ApplicationFlagsNone)

	a.gtkApp.ConnectActivate(func() {
		a.onActivate(ctx)
	})
	a.gtkApp.ConnectShutdown(func() {
		a.onShutdown(ctx)
	})

	log.Info().Msg("starting GTK main loop")
	return a.gtkApp.Run(args)
}

// onActivate is called when the GTK application is activated.
func (a *App) onActivate(ctx context.Context) {
	log := logging.FromContext(ctx)
	log.Debug().Msg("GTK application activated")

	a.createMainWindow(ctx)
	a.initConfigWatcher(ctx)

	a.window.Present()

	// The gate check hits the network; keep the main loop responsive.
	a.startGateCheck(ctx)
}

// onShutdown is called when the GTK application is shutting down.
func (a *App) onShutdown(ctx context.Context) {
	log := logging.FromContext(ctx)
	log.Debug().Msg("GTK application shutting down")

	if a.cancel != nil {
		a.cancel(context.Canceled)
	}
	if a.webView != nil {
		_ = a.webView.Destroy()
	}

	log.Info().Msg("shutdown complete")
}

func (a *App) createMainWindow(ctx context.Context) {
	a.window = gtk.NewApplicationWindow(a.gtkApp)
	a.window.SetTitle(windowTitle)
	a.window.SetDefaultSize(defaultWidth, defaultHeight)

	a.stack = gtk.NewStack()
	a.stack.SetTransitionType(gtk.StackTransitionTypeCrossfade)

	a.gatePage = NewGatePage()
	a.gatePage.SetOnCancel(a.Quit)
	a.stack.AddNamed(a.gatePage.Widget(), pageGate)

	a.errorPage = NewErrorPage()
	a.errorPage.SetOnRetry(func() {
		a.retryLoad(ctx)
	})
	a.stack.AddNamed(a.errorPage.Widget(), pageError)

	a.stack.SetVisibleChildName(pageGate)
	a.window.SetChild(a.stack)
}

// startGateCheck resolves the update gate off the main thread and
// applies the result back on it.
func (a *App) startGateCheck(ctx context.Context) {
	a.setGateState(ctx, entity.GateChecking)
	a.gatePage.ShowChecking()

	go func() {
		out := a.deps.ResolveGateUC.Execute(ctx, usecase.ResolveGateInput{})
		webkit.RunOnMainThread(func() {
			a.applyGateState(ctx, out)
		})
	}()
}

// applyGateState reacts to a resolved gate. Must run on the main thread.
func (a *App) applyGateState(ctx context.Context, out *usecase.ResolveGateOutput) {
	log := logging.FromContext(ctx)
	a.gate = out
	a.setGateState(ctx, out.State)

	switch out.State {
	case entity.GateNotRequired:
		log.Info().Str("local", out.LocalVersion).Msg("update gate cleared")
		a.mountWebSurface(ctx)

	case entity.GateRequired:
		log.Info().
			Str("local", out.LocalVersion).
			Str("required", out.RequiredVersion).
			Str("diagnostic", out.Diagnostic).
			Msg("update gate blocked")

		canInstall := a.deps.Config.Update.Sideload && out.InstallerURL != ""
		a.gatePage.SetOnInstall(func() {
			a.startDownload(ctx)
		})
		a.gatePage.ShowRequired(out.RequiredVersion, out.Diagnostic, canInstall)
		a.stack.SetVisibleChildName(pageGate)

	default:
		log.Error().Str("state", out.State.String()).Msg("unexpected gate state")
	}
}

// startDownload runs the installer download off the main thread with
// progress marshalled back to the gate page.
func (a *App) startDownload(ctx context.Context) {
	if a.gate == nil {
		return
	}
	installerURL := a.gate.InstallerURL

	a.setGateState(ctx, entity.GateDownloading)
	a.gatePage.ShowDownloading()

	go func() {
		out := a.deps.DownloadUC.Execute(ctx, usecase.DownloadInstallerInput{
			InstallerURL: installerURL,
			OnProgress: func(fraction float64) {
				webkit.RunOnMainThread(func() {
					a.gatePage.SetProgress(fraction)
				})
			},
		})

		webkit.RunOnMainThread(func() {
			a.setGateState(ctx, out.State)
			switch out.State {
			case entity.GateInstallHandoff:
				a.gatePage.ShowHandoff()
			default:
				canInstall := a.deps.Config.Update.Sideload && installerURL != ""
				a.gatePage.ShowRequired(a.gate.RequiredVersion, out.Diagnostic, canInstall)
			}
		})
	}()
}

// mountWebSurface creates the WebView, wires the navigation policy and
// loads the hosted app. Only ever called once the gate is clear.
func (a *App) mountWebSurface(ctx context.Context) {
	log := logging.FromContext(ctx)

	if a.gateState != entity.GateNotRequired {
		log.Warn().Str("gate_state", a.gateState.String()).Msg("refusing to mount web surface")
		return
	}

	if a.webView != nil {
		a.stack.SetVisibleChildName(pageWeb)
		return
	}

	wkCfg := webkit.GetDefaultConfig()
	if a.deps.Config.Shell.UserAgent != "" {
		wkCfg.UserAgent = a.deps.Config.Shell.UserAgent
	}

	view, err := webkit.NewWebView(wkCfg)
	if err != nil {
		log.Error().Err(err).Msg("failed to create webview")
		a.errorPage.ShowLoadFailure("The embedded browser could not be initialized.")
		a.stack.SetVisibleChildName(pageError)
		return
	}
	a.webView = view

	view.RegisterNavigationPolicyHandler(func(url string, topLevel bool) bool {
		return a.decideNavigation(ctx, url, topLevel)
	})

	// Safety net for contact links committed by script rather than
	// intercepted as navigation actions.
	view.RegisterURIChangedHandler(func(uri string) {
		if navigation.NeedsDispatch(uri) {
			go a.deps.DispatchUC.Execute(ctx, usecase.DispatchExternalInput{URL: uri})
		}
	})

	view.RegisterLoadChangedHandler(func(event webkit.LoadEvent) {
		switch event {
		case webkit.LoadStarted:
			a.window.SetTitle(windowTitle + " (loading)")
		case webkit.LoadFinished:
			a.window.SetTitle(windowTitle)
		}
	})

	view.RegisterLoadFailedHandler(func(failingURI string, err error) {
		log.Warn().Err(err).Str("uri", failingURI).Msg("page load failed")
		a.errorPage.ShowLoadFailure(err.Error())
		a.stack.SetVisibleChildName(pageError)
	})

	view.RegisterHTTPErrorHandler(func(status int, uri string) {
		log.Warn().Int("status", status).Str("uri", uri).Msg("main document returned error status")
		a.errorPage.ShowHTTPFailure(status)
		a.stack.SetVisibleChildName(pageError)
	})

	a.stack.AddNamed(view.AsWidget(), pageWeb)
	a.stack.SetVisibleChildName(pageWeb)

	a.loadHome(ctx)
}

// loadHome loads the configured base URL, attaching the client header
// when a secret was compiled in.
func (a *App) loadHome(ctx context.Context) {
	log := logging.FromContext(ctx)
	baseURL := a.deps.Config.Shell.BaseURL

	var err error
	if a.deps.ClientSecret != "" {
		err = a.webView.LoadURLWithHeaders(baseURL, map[string]string{
			clientHeaderName: a.deps.ClientSecret,
		})
	} else {
		err = a.webView.LoadURL(baseURL)
	}
	if err != nil {
		log.Error().Err(err).Str("url", baseURL).Msg("failed to start page load")
	}
}

// retryLoad handles the error page's retry action. When WebView
// creation itself failed there is no view to reload, so mounting is
// attempted again from scratch.
func (a *App) retryLoad(ctx context.Context) {
	if a.webView == nil {
		a.mountWebSurface(ctx)
		return
	}
	a.stack.SetVisibleChildName(pageWeb)
	a.loadHome(ctx)
}

// decideNavigation runs the policy engine for one navigation attempt
// and fires the external dispatcher on veto. Returns whether the
// WebView may proceed in place.
func (a *App) decideNavigation(ctx context.Context, url string, topLevel bool) bool {
	decision := a.currentEngine().Decide(navigation.Request{
		URL:           url,
		TopLevelFrame: topLevel,
	})

	logging.FromContext(ctx).Debug().
		Str("url", url).
		Bool("top_level", topLevel).
		Bool("allow", decision.AllowInPlace).
		Str("reason", string(decision.Reason)).
		Msg("navigation decided")

	if !decision.AllowInPlace {
		// Fire-and-forget: the veto is final regardless of dispatch outcome.
		go a.deps.DispatchUC.Execute(ctx, usecase.DispatchExternalInput{URL: url})
	}
	return decision.AllowInPlace
}

// setGateState records a gate transition. Must run on the main thread.
func (a *App) setGateState(ctx context.Context, state entity.GateState) {
	a.gateState = state
	logging.FromContext(ctx).Debug().
		Str("gate_state", state.String()).
		Msg("gate state changed")
}

func (a *App) currentEngine() *navigation.Engine {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.engine
}

// initConfigWatcher hot-reloads the navigation policy when the config
// file changes on disk.
func (a *App) initConfigWatcher(ctx context.Context) {
	log := logging.FromContext(ctx)

	if a.deps.ConfigManager == nil {
		log.Debug().Msg("no config manager available, skipping watcher")
		return
	}

	a.deps.ConfigManager.OnConfigChange(func(newCfg *config.Config) {
		webkit.RunOnMainThread(func() {
			a.applyConfig(ctx, newCfg)
		})
	})
	a.deps.ConfigManager.Watch()

	log.Debug().Msg("config watcher initialized")
}

// applyConfig applies a live-reloaded configuration. Only the
// navigation policy is hot-swapped; the base URL and update channel
// take effect on next launch.
func (a *App) applyConfig(ctx context.Context, cfg *config.Config) {
	if cfg == nil {
		return
	}

	*a.deps.Config = *cfg

	a.mu.Lock()
	a.engine = engineFromConfig(cfg)
	a.mu.Unlock()

	logging.FromContext(ctx).Info().Msg("navigation policy reloaded")
}

// Quit requests the application to quit.
func (a *App) Quit() {
	if a.gtkApp != nil {
		a.gtkApp.Quit()
	}
}

// engineFromConfig builds a policy engine from the shell configuration.
func engineFromConfig(cfg *config.Config) *navigation.Engine {
	return navigation.NewEngine(navigation.Policy{
		BaseHost:           cfg.Shell.BaseHost(),
		TrustedHosts:       cfg.Shell.TrustedHosts,
		PartnerHost:        cfg.Shell.PartnerHost,
		PartnerEmbedPrefix: cfg.Shell.PartnerEmbedPrefix,
	})
}
