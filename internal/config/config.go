// Package config loads and validates draftml.json, the project
// configuration consumed by the CLI and the site tooling.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/draftml-dev/draftml/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "draftml.json"

	// DefaultPort is the default preview server port.
	DefaultPort = 3000

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultOutput is the default build output directory.
	DefaultOutput = "dist"
)

// Config represents the complete draftml.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Title is the default document title when a page has none.
	Title string `json:"title,omitempty"`

	// Output is the build output directory.
	Output string `json:"output,omitempty"`

	// Server contains preview server configuration.
	Server ServerConfig `json:"server,omitempty"`

	// Build contains build configuration.
	Build BuildConfig `json:"build,omitempty"`

	// Publish contains S3 publishing configuration.
	Publish PublishConfig `json:"publish,omitempty"`
}

// ServerConfig configures the preview server.
type ServerConfig struct {
	Host string `json:"host,omitempty"`
	Port int    `json:"port,omitempty"`
}

// BuildConfig configures the build pipeline.
type BuildConfig struct {
	// Minify enables HTML minification of built documents.
	Minify bool `json:"minify,omitempty"`
}

// PublishConfig configures publishing to S3.
type PublishConfig struct {
	Bucket string `json:"bucket,omitempty"`
	Region string `json:"region,omitempty"`
	Prefix string `json:"prefix,omitempty"`
}

// Default returns a configuration with all defaults applied.
func Default() *Config {
	return &Config{
		Output: DefaultOutput,
		Server: ServerConfig{
			Host: DefaultHost,
			Port: DefaultPort,
		},
	}
}

// Load reads draftml.json from dir. A missing file yields the default
// configuration; a malformed or invalid file is an error.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, ConfigFileName)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "C001", errors.CategoryConfig,
			"cannot read "+ConfigFileName)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "C002", errors.CategoryConfig,
			ConfigFileName+" is not valid JSON").
			WithSuggestion("check for trailing commas and unquoted keys")
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromWorkingDir loads draftml.json from the current directory.
func LoadFromWorkingDir() (*Config, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "C003", errors.CategoryConfig,
			"cannot determine working directory")
	}
	return Load(dir)
}

// applyDefaults fills zero-valued fields after unmarshaling.
func (c *Config) applyDefaults() {
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
}

// Validate checks the configuration for values that can never work.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return errors.Newf("C004", errors.CategoryConfig,
			"server port %d is out of range", c.Server.Port).
			WithSuggestion("use a port between 1 and 65535")
	}
	if c.Publish.Bucket != "" && c.Publish.Region == "" {
		return errors.New("C005", errors.CategoryConfig,
			"publish.bucket is set but publish.region is empty").
			WithSuggestion(`set publish.region, e.g. "us-east-1"`)
	}
	return nil
}

// Addr returns the host:port address for the preview server.
func (c *Config) Addr() string {
	return c.Server.Host + ":" + strconv.Itoa(c.Server.Port)
}
