package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate checks a loaded configuration for values the shell cannot
// start with.
func Validate(cfg *Config) error {
	if cfg.Shell.BaseURL == "" {
		return fmt.Errorf("shell.base_url must be set")
	}

	parsed, err := url.Parse(cfg.Shell.BaseURL)
	if err != nil {
		return fmt.Errorf("shell.base_url %q: %w", cfg.Shell.BaseURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("shell.base_url %q: scheme must be http or https", cfg.Shell.BaseURL)
	}
	if parsed.Host == "" {
		return fmt.Errorf("shell.base_url %q: missing host", cfg.Shell.BaseURL)
	}

	for _, host := range cfg.Shell.TrustedHosts {
		if strings.TrimSpace(host) == "" {
			return fmt.Errorf("shell.trusted_hosts contains an empty entry")
		}
		if strings.ContainsAny(host, "/ ") {
			return fmt.Errorf("shell.trusted_hosts entry %q: must be a bare host, not a URL", host)
		}
	}

	if cfg.Shell.PartnerEmbedPrefix != "" && !strings.HasPrefix(cfg.Shell.PartnerEmbedPrefix, "/") {
		return fmt.Errorf("shell.partner_embed_prefix %q: must start with /", cfg.Shell.PartnerEmbedPrefix)
	}

	switch cfg.Logging.Level {
	case "", "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q: unknown level", cfg.Logging.Level)
	}

	switch cfg.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format %q: must be console or json", cfg.Logging.Format)
	}

	return nil
}
