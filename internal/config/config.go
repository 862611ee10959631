// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles malt project configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/gatsbylabs/malt/internal/resolve"
	"github.com/gatsbylabs/malt/internal/translate"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// FileName is the project configuration file looked up in the working
// directory.
const FileName = ".malt.yaml"

// Environment variables that override the file.
const (
	EnvFormat      = "MALT_FORMAT"
	EnvOutDir      = "MALT_OUT_DIR"
	EnvNamespace   = "MALT_NAMESPACE"
	EnvConcurrency = "MALT_CONCURRENCY"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config represents the .malt.yaml project configuration file.
type Config struct {
	Version          int    `yaml:"version"`
	Format           string `yaml:"format,omitempty"`
	OutDir           string `yaml:"outDir,omitempty"`
	Namespace        string `yaml:"namespace,omitempty"`
	InterfaceStyle   string `yaml:"interfaceStyle,omitempty"`
	EnumStyle        string `yaml:"enumStyle,omitempty"`
	TypeKey          string `yaml:"typeKey,omitempty"`
	OmitID           bool   `yaml:"omitId,omitempty"`
	Timestamps       bool   `yaml:"timestamps,omitempty"`
	StrictReferences bool   `yaml:"strictReferences,omitempty"`
	MaxDepth         int    `yaml:"maxDepth,omitempty"`
	Concurrency      int    `yaml:"concurrency,omitempty"`
	Package          string `yaml:"package,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Version:        CurrentConfigVersion,
		Format:         translate.DefaultFormat,
		InterfaceStyle: string(translate.StylePascalCase),
		EnumStyle:      string(translate.StylePascalCase),
	}
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault reads path, falling back to Default when it does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	if _, err := translate.ParseTextStyle(c.InterfaceStyle); err != nil {
		return fmt.Errorf("%w: interfaceStyle: %v", ErrInvalidConfig, err)
	}
	if _, err := translate.ParseTextStyle(c.EnumStyle); err != nil {
		return fmt.Errorf("%w: enumStyle: %v", ErrInvalidConfig, err)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: maxDepth must not be negative", ErrInvalidConfig)
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("%w: concurrency must not be negative", ErrInvalidConfig)
	}
	return nil
}

// ApplyEnv overrides fields from MALT_* variables. Unset or empty
// variables leave the field alone.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvFormat); v != "" {
		c.Format = v
	}
	if v := getenv(EnvOutDir); v != "" {
		c.OutDir = v
	}
	if v := getenv(EnvNamespace); v != "" {
		c.Namespace = v
	}
	if v := getenv(EnvConcurrency); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvConcurrency, err)
		}
		c.Concurrency = n
	}
	return nil
}

// WithDotEnv returns a getenv that falls back to the variables of the .env
// file at path. A missing file leaves getenv unchanged.
func WithDotEnv(getenv func(string) string, path string) (func(string) string, error) {
	vars, err := godotenv.Read(path)
	if errors.Is(err, os.ErrNotExist) {
		return getenv, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return func(key string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return vars[key]
	}, nil
}

// ResolveOptions converts the configuration to resolution options.
func (c *Config) ResolveOptions() resolve.Options {
	opts := resolve.DefaultOptions()
	if c.TypeKey != "" {
		opts.TypeKey = c.TypeKey
	}
	if c.Namespace != "" {
		opts.Namespace = c.Namespace
	}
	if c.MaxDepth > 0 {
		opts.MaxDepth = c.MaxDepth
	}
	opts.OmitIdentifier = c.OmitID
	opts.StrictReferences = c.StrictReferences
	if c.Timestamps {
		opts.Timestamps = resolve.DefaultTimestamps
	}
	return opts
}

// Target converts the configuration to translator settings. Call Validate
// first; unknown styles fall back to the default style.
func (c *Config) Target() translate.Target {
	iface, _ := translate.ParseTextStyle(c.InterfaceStyle)
	enum, _ := translate.ParseTextStyle(c.EnumStyle)
	return translate.Target{Package: c.Package, InterfaceStyle: iface, EnumStyle: enum}
}
