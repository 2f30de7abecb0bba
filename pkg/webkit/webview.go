// Package webkit wraps WebKitGTK 6 for embedding a policed web surface.
package webkit

import (
	"sync"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// WebView wraps a WebKitGTK WebView
type WebView struct {
	view *webkit.WebView

	// State
	config    *Config
	destroyed bool
	mu        sync.RWMutex

	// Event handlers
	onTitleChanged     func(string)
	onURIChanged       func(string)
	onLoadChanged      func(LoadEvent)
	onLoadFailed       func(failingURI string, err error)
	onHTTPError        func(status int, uri string)
	onClose            func()
	onNavigationPolicy func(url string, topLevelFrame bool) bool
}

// NewWebView creates a new WebView with the given configuration
func NewWebView(cfg *Config) (*WebView, error) {
	if cfg == nil {
		cfg = GetDefaultConfig()
	}

	InitMainThread()

	// Create WebKitGTK WebView
	wkView := webkit.NewWebView()
	if wkView == nil {
		return nil, ErrWebViewNotInitialized
	}

	wv := &WebView{
		view:   wkView,
		config: cfg,
	}

	// Apply configuration
	wv.applyConfig()

	// Setup event handlers
	wv.setupEventHandlers()

	return wv, nil
}

// applyConfig applies the configuration to the underlying WebView
func (w *WebView) applyConfig() {
	settings := w.view.Settings()
	if settings == nil {
		return
	}

	settings.SetEnableJavascript(w.config.EnableJavaScript)
	settings.SetEnableMediaStream(w.config.EnableMediaStream)
	settings.SetDefaultFontSize(uint32(w.config.DefaultFontSize))
	settings.SetMinimumFontSize(uint32(w.config.MinimumFontSize))

	if w.config.UserAgent != "" {
		settings.SetUserAgent(w.config.UserAgent)
	}

	if w.config.HardwareAcceleration {
		settings.SetHardwareAccelerationPolicy(webkit.HardwareAccelerationPolicyAlways)
	} else {
		settings.SetHardwareAccelerationPolicy(webkit.HardwareAccelerationPolicyNever)
	}
}

// setupEventHandlers connects GTK signals to internal handlers
func (w *WebView) setupEventHandlers() {
	// Title changed - connect to notify::title signal
	w.view.Connect("notify::title", func() {
		if w.onTitleChanged != nil {
			w.onTitleChanged(w.view.Title())
		}
	})

	// URI changed - connect to notify::uri signal
	w.view.Connect("notify::uri", func() {
		if w.onURIChanged != nil {
			w.onURIChanged(w.view.URI())
		}
	})

	// Load lifecycle
	w.view.ConnectLoadChanged(func(event webkit.LoadEvent) {
		if w.onLoadChanged == nil {
			return
		}
		switch event {
		case webkit.LoadStarted:
			w.onLoadChanged(LoadStarted)
		case webkit.LoadRedirected:
			w.onLoadChanged(LoadRedirected)
		case webkit.LoadCommitted:
			w.onLoadChanged(LoadCommitted)
		case webkit.LoadFinished:
			w.onLoadChanged(LoadFinished)
		}
	})

	w.view.ConnectLoadFailed(func(_ webkit.LoadEvent, failingURI string, err error) bool {
		if w.onLoadFailed != nil {
			w.onLoadFailed(failingURI, err)
		}
		return false // keep WebKit's default error handling
	})

	// Navigation policy and HTTP status interception
	w.view.ConnectDecidePolicy(func(decision webkit.PolicyDecisioner, decisionType webkit.PolicyDecisionType) bool {
		switch decisionType {
		case webkit.PolicyDecisionTypeNavigationAction, webkit.PolicyDecisionTypeNewWindowAction:
			nav, ok := decision.(*webkit.NavigationPolicyDecision)
			if !ok || w.onNavigationPolicy == nil {
				return false
			}

			var uri, frameName string
			if action := nav.NavigationAction(); action != nil {
				frameName = action.FrameName()
				if req := action.Request(); req != nil {
					uri = req.URI()
				}
			}

			// Sub-frame and named-target navigations carry a frame name;
			// the main document does not. New-window actions are treated
			// as top-level since they would replace the surface.
			topLevel := frameName == "" || decisionType == webkit.PolicyDecisionTypeNewWindowAction

			if !w.onNavigationPolicy(uri, topLevel) {
				nav.Ignore()
				return true
			}
			return false

		case webkit.PolicyDecisionTypeResponse:
			resp, ok := decision.(*webkit.ResponsePolicyDecision)
			if !ok || w.onHTTPError == nil {
				return false
			}
			response := resp.Response()
			if response == nil || !resp.IsMainFrameMainResource() {
				return false
			}
			if status := int(response.StatusCode()); status >= 400 {
				w.onHTTPError(status, response.URI())
			}
			return false
		}
		return false
	})

	// Close
	w.view.ConnectClose(func() {
		if w.onClose != nil {
			w.onClose()
		}
	})
}

// LoadURL loads the given URL in the WebView
func (w *WebView) LoadURL(url string) error {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.destroyed {
		return ErrWebViewDestroyed
	}

	if url == "" {
		return ErrInvalidURL
	}

	w.view.LoadURI(url)
	return nil
}

// LoadURLWithHeaders loads the given URL with additional request
// headers attached. Only this initial request carries them; subsequent
// navigations issued by the page do not.
func (w *WebView) LoadURLWithHeaders(url string, headers map[string]string) error {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.destroyed {
		return ErrWebViewDestroyed
	}

	if url == "" {
		return ErrInvalidURL
	}

	req := webkit.NewURIRequest(url)
	if hdrs := req.HTTPHeaders(); hdrs != nil {
		for name, value := range headers {
			hdrs.Append(name, value)
		}
	}

	w.view.LoadRequest(req)
	return nil
}

// GetCurrentURL returns the current URL
func (w *WebView) GetCurrentURL() string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.destroyed {
		return ""
	}

	return w.view.URI()
}

// GetTitle returns the current page title
func (w *WebView) GetTitle() string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.destroyed {
		return ""
	}

	return w.view.Title()
}

// EstimatedProgress returns the estimated load progress (0.0 to 1.0)
func (w *WebView) EstimatedProgress() float64 {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.destroyed {
		return 0
	}

	return w.view.EstimatedLoadProgress()
}

// Reload reloads the current page
func (w *WebView) Reload() error {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.destroyed {
		return ErrWebViewDestroyed
	}

	w.view.Reload()
	return nil
}

// StopLoading stops the current load operation
func (w *WebView) StopLoading() error {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.destroyed {
		return ErrWebViewDestroyed
	}

	w.view.StopLoading()
	return nil
}

// Destroy destroys the WebView and releases resources
func (w *WebView) Destroy() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.destroyed {
		return nil
	}

	w.destroyed = true

	// The GTK widget will be cleaned up by Go GC
	return nil
}

// IsDestroyed returns true if the WebView has been destroyed
func (w *WebView) IsDestroyed() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.destroyed
}

// AsWidget returns the WebView as a gtk.Widgetter
func (w *WebView) AsWidget() gtk.Widgetter {
	if w == nil || w.view == nil {
		return nil
	}
	return w.view
}

// Event handler registration methods

// RegisterTitleChangedHandler registers a handler for title changes
func (w *WebView) RegisterTitleChangedHandler(handler func(string)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onTitleChanged = handler
}

// RegisterURIChangedHandler registers a handler for URI changes. Fires
// after each committed navigation, including script-initiated ones.
func (w *WebView) RegisterURIChangedHandler(handler func(string)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onURIChanged = handler
}

// RegisterLoadChangedHandler registers a handler for load lifecycle events
func (w *WebView) RegisterLoadChangedHandler(handler func(LoadEvent)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onLoadChanged = handler
}

// RegisterLoadFailedHandler registers a handler for failed loads
func (w *WebView) RegisterLoadFailedHandler(handler func(failingURI string, err error)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onLoadFailed = handler
}

// RegisterHTTPErrorHandler registers a handler for main-resource HTTP
// error statuses (>= 400)
func (w *WebView) RegisterHTTPErrorHandler(handler func(status int, uri string)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onHTTPError = handler
}

// RegisterCloseHandler registers a handler for close requests
func (w *WebView) RegisterCloseHandler(handler func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onClose = handler
}

// RegisterNavigationPolicyHandler registers a handler for navigation
// policy decisions. The handler runs synchronously per attempted
// navigation and returns true to allow the load in place.
func (w *WebView) RegisterNavigationPolicyHandler(handler func(url string, topLevelFrame bool) bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onNavigationPolicy = handler
}
