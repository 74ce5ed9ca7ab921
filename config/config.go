// Package config loads the gitlabctl configuration file.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	AppName        = "gitlabctl"
	ConfigFileName = "config.yaml"
)

// ErrNotFound is returned when the configuration file does not exist.
var ErrNotFound = errors.New("configuration file not found")

// EnvProvider abstracts environment variable access for testing
type EnvProvider interface {
	Getenv(key string) string
	UserHomeDir() (string, error)
}

// DefaultEnvProvider implements EnvProvider using real OS functions
type DefaultEnvProvider struct{}

func (p *DefaultEnvProvider) Getenv(key string) string {
	return os.Getenv(key)
}

func (p *DefaultEnvProvider) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

// Config holds the connection settings and CLI defaults.
type Config struct {
	// GitLab connection
	Server      string        `yaml:"server"`
	AccessToken string        `yaml:"access_token"`
	Timeout     time.Duration `yaml:"timeout"`

	// Request shaping
	Concurrency       int     `yaml:"concurrency"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`

	// Logging
	LogLevel     string `yaml:"log_level"`
	ColorEnabled bool   `yaml:"color"`

	// Path the configuration was read from
	Path string `yaml:"-"`

	env EnvProvider
}

// DefaultPath returns the per-user configuration path following the XDG Base Directory specification
func DefaultPath() string {
	return defaultPathWithEnv(&DefaultEnvProvider{})
}

func defaultPathWithEnv(env EnvProvider) string {
	if xdg := env.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName, ConfigFileName)
	}

	homeDir, _ := env.UserHomeDir()
	return filepath.Join(homeDir, ".config", AppName, ConfigFileName)
}

// Load reads the configuration from path, or from DefaultPath when path is empty
func Load(path string) (*Config, error) {
	return LoadWithEnv(&DefaultEnvProvider{}, path)
}

// LoadWithEnv reads the configuration with a custom environment provider (for testing)
func LoadWithEnv(env EnvProvider, path string) (*Config, error) {
	c := &Config{env: env}

	c.setDefaults()

	if path == "" {
		path = defaultPathWithEnv(env)
	}
	c.Path = path

	if err := c.loadFromFile(); err != nil {
		return nil, err
	}

	c.loadFromEnv()

	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", c.Path, err)
	}

	return c, nil
}

func (c *Config) setDefaults() {
	c.Timeout = 30 * time.Second
	c.Concurrency = 8
	c.RequestsPerSecond = 0
	c.LogLevel = "silent"
	c.ColorEnabled = true
}

func (c *Config) loadFromFile() error {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, c.Path)
		}
		return fmt.Errorf("reading configuration file %s: %w", c.Path, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing configuration file %s: %w", c.Path, err)
	}
	return nil
}

func (c *Config) loadFromEnv() {
	if v := c.env.Getenv("GITLABCTL_SERVER"); v != "" {
		c.Server = v
	}
	if v := c.env.Getenv("GITLABCTL_ACCESS_TOKEN"); v != "" {
		c.AccessToken = v
	}
	if v := c.env.Getenv("GITLABCTL_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := c.env.Getenv("GITLABCTL_COLOR"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			c.ColorEnabled = enabled
		}
	}
	if v := c.env.Getenv("GITLABCTL_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Concurrency = n
		}
	}
}

func (c *Config) validate() error {
	if c.Server == "" {
		return fmt.Errorf("server is required")
	}
	u, err := url.Parse(c.Server)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid server URL: %q (must be an absolute http or https URL)", c.Server)
	}

	if c.AccessToken == "" {
		return fmt.Errorf("access_token is required")
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warning": true, "error": true, "silent": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warning, error or silent)", c.LogLevel)
	}

	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be positive, got: %d", c.Concurrency)
	}

	if c.RequestsPerSecond < 0 {
		return fmt.Errorf("requests_per_second cannot be negative, got: %v", c.RequestsPerSecond)
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got: %v", c.Timeout)
	}

	return nil
}
