package config

// DefaultConfig returns the built-in configuration for the hosted
// Melovue application.
func DefaultConfig() *Config {
	return &Config{
		Shell: ShellConfig{
			BaseURL: "https://app.melovue.com",
			TrustedHosts: []string{
				// The embedded Spotify player's login host.
				"accounts.spotify.com",
			},
			PartnerHost:        "open.spotify.com",
			PartnerEmbedPrefix: "/embed/",
			UserAgent:          "",
		},
		Update: UpdateConfig{
			Sideload: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
