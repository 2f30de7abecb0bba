package webkit

// LoadEvent mirrors the WebKit load lifecycle for shell consumers.
type LoadEvent int

const (
	// LoadStarted means a new load began.
	LoadStarted LoadEvent = iota
	// LoadRedirected means the load was redirected server-side.
	LoadRedirected
	// LoadCommitted means content started arriving for the new page.
	LoadCommitted
	// LoadFinished means the load completed (successfully or not).
	LoadFinished
)

// Config holds WebView configuration
type Config struct {
	// UserAgent string for the WebView
	UserAgent string

	// EnableJavaScript controls JavaScript execution
	EnableJavaScript bool

	// EnableMediaStream controls media stream support
	EnableMediaStream bool

	// HardwareAcceleration controls GPU acceleration
	HardwareAcceleration bool

	// DefaultFontSize in pixels
	DefaultFontSize int

	// MinimumFontSize in pixels
	MinimumFontSize int
}

// GetDefaultConfig returns a Config with sensible defaults
func GetDefaultConfig() *Config {
	return &Config{
		UserAgent:            "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36",
		EnableJavaScript:     true,
		EnableMediaStream:    true,
		HardwareAcceleration: true,
		DefaultFontSize:      16,
		MinimumFontSize:      8,
	}
}
