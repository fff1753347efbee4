// filepath: internal/config/config.go
package config

import (
	"fmt"
	"greeter/internal/shared"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Default values applied when neither file, env nor flags provide one.
const (
	DefaultHost              = "0.0.0.0"
	DefaultPort              = 8080
	DefaultShutdownTimeout   = "30s"
	DefaultReadHeaderTimeout = "10s"
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "json"
	DefaultGreeting          = "Hello, World!"
)

// Config holds the application's configuration.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logging  LoggingConfig  `toml:"logging"`
	Greeting GreetingConfig `toml:"greeting"`

	ShutdownTimeout   time.Duration `toml:"-"` // Runtime computed value
	ReadHeaderTimeout time.Duration `toml:"-"` // Runtime computed value
}

// ServerConfig holds the server configuration.
type ServerConfig struct {
	Host              string `toml:"host"`
	Port              int    `toml:"port"`
	ShutdownTimeout   string `toml:"shutdown_timeout"`    // e.g. "30s"
	ReadHeaderTimeout string `toml:"read_header_timeout"` // e.g. "10s"
}

// LoggingConfig holds the logging configuration.
type LoggingConfig struct {
	Level     string `toml:"level"`
	Format    string `toml:"format"` // json or text
	AccessLog *bool  `toml:"access_log,omitempty"`
}

// GreetingConfig holds the text served on the root route.
type GreetingConfig struct {
	Message string `toml:"message"`
}

// Address returns the host:port pair the listener binds to.
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// AccessLogEnabled reports whether request logging is on. Unset means on.
func (l LoggingConfig) AccessLogEnabled() bool {
	return l.AccessLog == nil || *l.AccessLog
}

// Defaults returns a configuration with every default filled in.
func Defaults() *Config {
	c := &Config{}
	c.ApplyDefaults()
	return c
}

// ApplyDefaults fills every empty field with its default value.
func (c *Config) ApplyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.ShutdownTimeout == "" {
		c.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if c.Server.ReadHeaderTimeout == "" {
		c.Server.ReadHeaderTimeout = DefaultReadHeaderTimeout
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
	if c.Logging.AccessLog == nil {
		enabled := true
		c.Logging.AccessLog = &enabled
	}
	if c.Greeting.Message == "" {
		c.Greeting.Message = DefaultGreeting
	}
}

// LoadConfig loads the configuration from a TOML file.
func LoadConfig(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// SaveConfig writes the configuration to a TOML file.
func SaveConfig(path string, cfg *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("trying to save the config to %s: %w", path, shared.ErrorCreateFile)
	}
	defer f.Close()
	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("trying to save the config to %s: %w", path, shared.ErrorEncodeFile)
	}
	return nil
}

// ParseAndValidate processes configuration strings into runtime values
// and rejects settings the server cannot start with.
func (c *Config) ParseAndValidate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port %d: %w", c.Server.Port, shared.ErrInvalidPort)
	}

	if c.Greeting.Message == "" {
		return shared.ErrEmptyGreeting
	}

	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q: %w", c.Logging.Level, shared.ErrInvalidLogLevel)
	}

	switch strings.ToLower(c.Logging.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log format %q: %w", c.Logging.Format, shared.ErrInvalidLogFormat)
	}

	var err error
	if c.ShutdownTimeout, err = parseDuration(c.Server.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	if c.ShutdownTimeout == 0 {
		return fmt.Errorf("invalid shutdown_timeout %q must be greater than zero: %w", c.Server.ShutdownTimeout, shared.ErrInvalidDuration)
	}
	if c.ReadHeaderTimeout, err = parseDuration(c.Server.ReadHeaderTimeout); err != nil {
		return fmt.Errorf("invalid read_header_timeout: %w", err)
	}

	return nil
}

// parseDuration accepts Go duration strings ("30s", "1m30s") and rejects negatives.
func parseDuration(s string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, shared.ErrInvalidDuration)
	}
	if d < 0 {
		return 0, fmt.Errorf("%q is negative: %w", s, shared.ErrInvalidDuration)
	}
	return d, nil
}
