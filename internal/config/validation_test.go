package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Defaults(t *testing.T) {
	require.NoError(t, Validate(DefaultConfig()))
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{
			name:   "empty base URL",
			mutate: func(c *Config) { c.Shell.BaseURL = "" },
		},
		{
			name:   "non-web scheme",
			mutate: func(c *Config) { c.Shell.BaseURL = "ftp://app.melovue.com" },
		},
		{
			name:   "missing host",
			mutate: func(c *Config) { c.Shell.BaseURL = "https://" },
		},
		{
			name:   "empty trusted host entry",
			mutate: func(c *Config) { c.Shell.TrustedHosts = []string{""} },
		},
		{
			name:   "trusted host is a URL",
			mutate: func(c *Config) { c.Shell.TrustedHosts = []string{"https://accounts.spotify.com"} },
		},
		{
			name:   "embed prefix without slash",
			mutate: func(c *Config) { c.Shell.PartnerEmbedPrefix = "embed/" },
		},
		{
			name:   "unknown log level",
			mutate: func(c *Config) { c.Logging.Level = "verbose" },
		},
		{
			name:   "unknown log format",
			mutate: func(c *Config) { c.Logging.Format = "xml" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, Validate(cfg))
		})
	}
}

func TestShellConfigBaseHost(t *testing.T) {
	cfg := ShellConfig{BaseURL: "https://app.melovue.com/welcome"}
	assert.Equal(t, "app.melovue.com", cfg.BaseHost())

	cfg = ShellConfig{BaseURL: "http://%zz/"}
	assert.Empty(t, cfg.BaseHost())
}
