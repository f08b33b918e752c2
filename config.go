package inspectable

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the file form of the resolver settings.
//
//	namespace: values
//	suffix: Value
//	diagnostics: true
type Config struct {
	Namespace string `json:"namespace" yaml:"namespace"`
	Suffix    string `json:"suffix" yaml:"suffix"`
	// Diagnostics logs absorbed failures through slog.Default at debug level.
	Diagnostics bool `json:"diagnostics" yaml:"diagnostics"`
}

// LoadConfig reads a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML config data and fills in defaults.
// Unknown fields are rejected.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg.Normalized(), nil
}

// Normalized returns c with defaults filled in for empty fields.
func (c Config) Normalized() Config {
	if c.Namespace == "" {
		c.Namespace = DefaultNamespace
	}
	if c.Suffix == "" {
		c.Suffix = DefaultSuffix
	}
	return c
}

// Naming returns the naming convention the config describes.
func (c Config) Naming() Naming {
	c = c.Normalized()
	return Naming{Namespace: c.Namespace, Suffix: c.Suffix}
}

// Options converts the config into resolver options.
func (c Config) Options() []Option {
	opts := []Option{WithNaming(c.Naming())}
	if c.Diagnostics {
		opts = append(opts, WithLogger(slog.Default()))
	}
	return opts
}
