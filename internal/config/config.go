// Package config loads image-editor-mcp settings from an optional YAML file
// and the environment, and builds the process logger from them.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvConfigPath = "IMAGE_EDITOR_CONFIG"
	EnvLogLevel   = "IMAGE_EDITOR_LOG_LEVEL"
	EnvLogFormat  = "IMAGE_EDITOR_LOG_FORMAT"
)

// Config is the top-level configuration.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Preview PreviewConfig `yaml:"preview"`
}

// LogConfig controls the logger built by NewLogger.
type LogConfig struct {
	Level  string `yaml:"level"`  // panic | fatal | error | warn | info | debug | trace
	Format string `yaml:"format"` // text | json
}

// PreviewConfig holds the defaults used when a preview request leaves a
// field unset.
type PreviewConfig struct {
	MaxWidth  int    `yaml:"max_width"`
	MaxHeight int    `yaml:"max_height"`
	GridColor string `yaml:"grid_color"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadFile reads a YAML configuration file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Load reads the file named by IMAGE_EDITOR_CONFIG, if set, and applies the
// logging overrides from the environment on top of it.
func Load() (*Config, error) {
	cfg := Default()
	if path := os.Getenv(EnvConfigPath); path != "" {
		var err error
		if cfg, err = LoadFile(path); err != nil {
			return nil, err
		}
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Log.Format = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Preview.MaxWidth <= 0 {
		c.Preview.MaxWidth = 1024
	}
	if c.Preview.MaxHeight <= 0 {
		c.Preview.MaxHeight = 768
	}
	if c.Preview.GridColor == "" {
		c.Preview.GridColor = "#FF000080"
	}
}

// Validate checks the logging settings.
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format: unknown format %q (want text or json)", c.Log.Format)
	}
	return nil
}

// NewLogger builds a logger writing to w. Debug and trace levels get full
// timestamps on the text formatter; the JSON formatter is used when asked for.
func (c *Config) NewLogger(w io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("log.level: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(level)

	switch strings.ToLower(c.Log.Format) {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	case "text":
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:    level >= logrus.DebugLevel,
			DisableTimestamp: level < logrus.DebugLevel,
		})
	default:
		return nil, fmt.Errorf("log.format: unknown format %q (want text or json)", c.Log.Format)
	}

	return logger, nil
}
