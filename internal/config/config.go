// Package config loads winshot configuration from YAML.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ServerConfig configures the HTTP/SSE server.
type ServerConfig struct {
	// Host to bind to (default: 0.0.0.0)
	Host string `yaml:"host,omitempty"`
	// Port to bind to (default: 8000)
	Port int `yaml:"port,omitempty"`
}

// ScreenshotsConfig configures where captured images are stored.
type ScreenshotsConfig struct {
	// Dir is the directory screenshots are written to
	// (default: data/screenshots)
	Dir string `yaml:"dir,omitempty"`
	// URLPrefix is the URL path the directory is served under
	// (default: /screenshots)
	URLPrefix string `yaml:"url_prefix,omitempty"`
}

// SearchConfig configures window identifier resolution.
type SearchConfig struct {
	// InOwner extends substring search to owning-application names.
	// Default: true
	InOwner *bool `yaml:"in_owner,omitempty"`
}

// TypingConfig configures key synthesis timing.
type TypingConfig struct {
	// KeyDelayMS is the pause between key-down and key-up of one
	// keystroke, in milliseconds (default: 10)
	KeyDelayMS int `yaml:"key_delay_ms,omitempty"`
	// CharDelayMS is the default pause between characters when typing
	// text, in milliseconds (default: 100)
	CharDelayMS int `yaml:"char_delay_ms,omitempty"`
}

// LoggingConfig configures tool action logging.
type LoggingConfig struct {
	// Enabled turns tool action logging on/off
	Enabled bool `yaml:"enabled,omitempty"`
	// Level controls logging verbosity: debug, info, warn, error
	Level string `yaml:"level,omitempty"`
	// File is the log file path
	// (default: ~/.local/share/winshot/actions.log)
	File string `yaml:"file,omitempty"`
	// MaxSizeMB is the rotation threshold (default: 10)
	MaxSizeMB int `yaml:"max_size_mb,omitempty"`
	// MaxFiles is how many rotated files to keep (default: 3)
	MaxFiles int `yaml:"max_files,omitempty"`
}

// Config is the effective winshot configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server,omitempty"`
	Screenshots ScreenshotsConfig `yaml:"screenshots,omitempty"`
	Search      SearchConfig      `yaml:"search,omitempty"`
	Typing      TypingConfig      `yaml:"typing,omitempty"`
	Logging     LoggingConfig     `yaml:"logging,omitempty"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8000,
		},
		Screenshots: ScreenshotsConfig{
			Dir:       filepath.Join("data", "screenshots"),
			URLPrefix: "/screenshots",
		},
		Typing: TypingConfig{
			KeyDelayMS:  10,
			CharDelayMS: 100,
		},
		Logging: LoggingConfig{
			Level:     "info",
			File:      defaultLogPath(),
			MaxSizeMB: 10,
			MaxFiles:  3,
		},
	}
}

func defaultLogPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("data", "actions.log")
	}
	return filepath.Join(homeDir, ".local", "share", "winshot", "actions.log")
}

// DefaultConfigPath returns ~/.config/winshot/config.yaml.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "winshot", "config.yaml"), nil
}

// Load reads the configuration from the standard location. A missing
// file yields the defaults.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads and validates configuration from path. A missing
// file yields the defaults.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("%s: failed to read: %w", path, err)
	}

	if err := decodeStrictYAML(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration to path, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port: %d is out of range 1-65535", c.Server.Port)
	}
	if c.Screenshots.Dir == "" {
		return fmt.Errorf("screenshots.dir: must not be empty")
	}
	if c.Typing.KeyDelayMS < 0 {
		return fmt.Errorf("typing.key_delay_ms: must not be negative")
	}
	if c.Typing.CharDelayMS < 0 {
		return fmt.Errorf("typing.char_delay_ms: must not be negative")
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level: unknown level %q", c.Logging.Level)
	}
	return nil
}

// SearchInOwner reports whether substring search extends to owner
// names (default true).
func (c *Config) SearchInOwner() bool {
	if c.Search.InOwner == nil {
		return true
	}
	return *c.Search.InOwner
}

// KeyDelay returns the key-down to key-up pause.
func (c *Config) KeyDelay() time.Duration {
	return time.Duration(c.Typing.KeyDelayMS) * time.Millisecond
}

// CharDelay returns the default pause between typed characters.
func (c *Config) CharDelay() time.Duration {
	return time.Duration(c.Typing.CharDelayMS) * time.Millisecond
}

func decodeStrictYAML(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if err == io.EOF {
			return nil
		}
		return err
	}
	return nil
}
