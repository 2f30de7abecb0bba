// Package config provides configuration management for melovue-shell
// with Viper integration.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// File permission constants
const (
	dirPerm  = 0o755 // Standard directory permissions (rwxr-xr-x)
	filePerm = 0o644 // Standard file permissions (rw-r--r--)
)

// Config represents the complete configuration for melovue-shell.
type Config struct {
	Shell   ShellConfig   `mapstructure:"shell" yaml:"shell"`
	Update  UpdateConfig  `mapstructure:"update" yaml:"update"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// ShellConfig holds the hosted application and navigation policy
// settings. TrustedHosts and the partner fields drive the navigation
// policy engine; they are matched exactly, no subdomain wildcarding.
type ShellConfig struct {
	// BaseURL is the shell's home address; its host is derived once at
	// startup and trusted implicitly.
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`
	// TrustedHosts are additional hosts allowed to load top-level (for
	// example the embedded player's account-login host).
	TrustedHosts []string `mapstructure:"trusted_hosts" yaml:"trusted_hosts"`
	// PartnerHost is the music-service host forced into its native app
	// when visited top-level.
	PartnerHost string `mapstructure:"partner_host" yaml:"partner_host"`
	// PartnerEmbedPrefix is the path prefix under PartnerHost that stays
	// embeddable for widget playback.
	PartnerEmbedPrefix string `mapstructure:"partner_embed_prefix" yaml:"partner_embed_prefix"`
	// UserAgent overrides the WebView user agent when non-empty.
	UserAgent string `mapstructure:"user_agent" yaml:"user_agent"`
}

// UpdateConfig holds update gate settings.
type UpdateConfig struct {
	// Sideload enables the download-and-install action in the update
	// gate. Install channels that manage updates themselves set this to
	// false.
	Sideload bool `mapstructure:"sideload" yaml:"sideload"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// BaseHost returns the host of the configured base URL, or an empty
// string when the URL does not parse. Validation rejects the latter.
func (c *ShellConfig) BaseHost() string {
	parsed, err := url.Parse(c.BaseURL)
	if err != nil {
		return ""
	}
	return parsed.Host
}

// Manager owns a viper instance and the loaded configuration.
type Manager struct {
	viper      *viper.Viper
	config     *Config
	configFile string
	callbacks  []func(*Config)
	mu         sync.RWMutex
}

// NewManager creates a configuration manager rooted at the XDG config
// directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)
	v.SetEnvPrefix("MELOVUE")
	v.AutomaticEnv()

	m := &Manager{
		viper:      v,
		configFile: filepath.Join(configDir, "config.yaml"),
	}
	m.setDefaults()
	return m, nil
}

// Load reads the configuration file, creating a default one on first
// run, and validates the result.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
		if err := m.createDefaultConfig(); err != nil {
			return fmt.Errorf("create default config: %w", err)
		}
		if err := m.viper.ReadInConfig(); err != nil {
			return fmt.Errorf("read created config: %w", err)
		}
	}

	cfg := &Config{}
	if err := m.viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return err
	}

	m.config = cfg
	return nil
}

// Get returns the currently loaded configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// Watch reloads the configuration when the file changes on disk and
// notifies registered callbacks. Invalid edits are ignored; the last
// valid configuration stays active.
func (m *Manager) Watch() {
	m.viper.WatchConfig()
	m.viper.OnConfigChange(func(_ fsnotify.Event) {
		if err := m.reload(); err != nil {
			return
		}
		m.mu.RLock()
		cfg := m.config
		callbacks := m.callbacks
		m.mu.RUnlock()
		for _, cb := range callbacks {
			cb(cfg)
		}
	})
}

// OnConfigChange registers a callback invoked after each successful
// live reload.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, callback)
}

// GetConfigFile returns the path of the active configuration file.
func (m *Manager) GetConfigFile() string {
	return m.configFile
}

func (m *Manager) reload() error {
	cfg := &Config{}
	if err := m.viper.Unmarshal(cfg); err != nil {
		return err
	}
	if err := Validate(cfg); err != nil {
		return err
	}

	m.mu.Lock()
	m.config = cfg
	m.mu.Unlock()
	return nil
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("shell.base_url", defaults.Shell.BaseURL)
	m.viper.SetDefault("shell.trusted_hosts", defaults.Shell.TrustedHosts)
	m.viper.SetDefault("shell.partner_host", defaults.Shell.PartnerHost)
	m.viper.SetDefault("shell.partner_embed_prefix", defaults.Shell.PartnerEmbedPrefix)
	m.viper.SetDefault("shell.user_agent", defaults.Shell.UserAgent)
	m.viper.SetDefault("update.sideload", defaults.Update.Sideload)
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
}

func (m *Manager) createDefaultConfig() error {
	if err := os.MkdirAll(filepath.Dir(m.configFile), dirPerm); err != nil {
		return err
	}
	return m.viper.SafeWriteConfigAs(m.configFile)
}
