// Package navigation implements the shell's navigation routing policy:
// deciding, for every attempted navigation in the embedded WebView,
// whether it loads in place or is handed to the operating system.
package navigation

// Request describes a single attempted navigation raised by the WebView.
// Requests are ephemeral; they are produced once per attempt and consumed
// synchronously by the policy engine.
type Request struct {
	// URL is the raw target of the navigation. May be empty or malformed.
	URL string
	// TopLevelFrame is true when the navigation targets the main document
	// rather than a nested frame/iframe.
	TopLevelFrame bool
}
