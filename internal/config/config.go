// Package config loads dupscan settings from YAML, .env files, the
// environment and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/asynkron/dupscan/internal/exactdup"
	"github.com/asynkron/dupscan/internal/model"
	"github.com/asynkron/dupscan/internal/neardup"
	"github.com/asynkron/dupscan/internal/scan"
)

// FileName is the config file looked up in the scan root.
const FileName = ".dupscan.yaml"

// DotEnvFileName holds DUPSCAN_* defaults next to FileName in the scan root.
const DotEnvFileName = ".env"

// Output formats.
const (
	FormatConsole  = "console"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds every setting of a dupscan run.
type Config struct {
	// Root is the directory to scan. Usually set from the command line.
	Root string `yaml:"root,omitempty"`

	// MaxFileBytes skips larger files in both pipelines. 0 disables the limit.
	MaxFileBytes uint64 `yaml:"max_file_bytes"`

	// ModuleRoots are directories whose children are modules, e.g. crates/foo.
	ModuleRoots []string `yaml:"module_roots"`
	ModuleDepth int      `yaml:"module_depth"`

	// Exclude globs drop files from the walk entirely.
	Exclude []string `yaml:"exclude,omitempty"`

	Workers int    `yaml:"workers"`
	Format  string `yaml:"format"`
	Output  string `yaml:"output,omitempty"` // empty writes to stdout

	Exact ExactConfig `yaml:"exact"`
	Near  NearConfig  `yaml:"near"`
}

// ExactConfig configures exact-duplicate grouping.
type ExactConfig struct {
	Enabled bool `yaml:"enabled"`
}

// NearConfig configures near-duplicate detection.
type NearConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Scope     string  `yaml:"scope"`
	Threshold float64 `yaml:"threshold"`
	MaxFiles  int     `yaml:"max_files"`
	MaxPairs  int     `yaml:"max_pairs"` // 0 means unlimited

	// Exclude globs only hide files from near-duplicate pairing.
	Exclude []string `yaml:"exclude,omitempty"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	near := neardup.DefaultOptions()
	return &Config{
		Root:         ".",
		MaxFileBytes: near.MaxFileBytes,
		ModuleRoots:  []string{"crates", "packages"},
		ModuleDepth:  2,
		Workers:      1,
		Format:       FormatConsole,
		Exact:        ExactConfig{Enabled: true},
		Near: NearConfig{
			Enabled:   true,
			Scope:     string(near.Scope),
			Threshold: near.Threshold,
			MaxFiles:  near.MaxFiles,
			MaxPairs:  near.MaxPairs,
		},
	}
}

// LoadFile overlays the YAML file at path onto the defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	return cfg, nil
}

// Load builds the configuration for a run rooted at root.
//
// An explicit path must exist. Otherwise FileName in root is used when
// present. Values from dotenvPath and DUPSCAN_* variables are applied on top.
func Load(root, explicitPath, dotenvPath string) (*Config, error) {
	cfg := DefaultConfig()

	path := explicitPath
	if path == "" {
		candidate := filepath.Join(root, FileName)
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
		}
	}
	if path != "" {
		loaded, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.Root = root

	if err := LoadEnv(cfg, dotenvPath, os.Environ()); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	header := []byte("# dupscan configuration\n# Environment variables (DUPSCAN_*) and flags override these values.\n\n")
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, append(header, data...), 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Validate checks every setting and returns the first problem found.
func (c *Config) Validate() error {
	if c.ModuleDepth < 1 {
		return fmt.Errorf("%w: module_depth must be at least 1 (got %d)", ErrInvalidConfig, c.ModuleDepth)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1 (got %d)", ErrInvalidConfig, c.Workers)
	}
	switch c.Format {
	case FormatConsole, FormatJSON, FormatMarkdown:
	default:
		return fmt.Errorf("%w: format must be console, json or markdown (got %q)", ErrInvalidConfig, c.Format)
	}
	if _, err := model.ParseScope(c.Near.Scope); err != nil {
		return fmt.Errorf("%w: near.scope: %v", ErrInvalidConfig, err)
	}
	for _, p := range c.Exclude {
		if p == "" || !doublestar.ValidatePattern(p) {
			return fmt.Errorf("%w: exclude pattern %q is not a valid glob", ErrInvalidConfig, p)
		}
	}
	if _, err := c.NearOptions(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// ScanOptions returns the walker settings.
func (c *Config) ScanOptions() scan.Options {
	return scan.Options{
		MaxFileBytes: c.MaxFileBytes,
		Exclude:      c.Exclude,
		ModuleRoots:  c.ModuleRoots,
		ModuleDepth:  c.ModuleDepth,
	}
}

// ExactOptions returns the exact-duplicate settings.
func (c *Config) ExactOptions() exactdup.Options {
	return exactdup.Options{MaxFileBytes: c.MaxFileBytes, Workers: c.Workers}
}

// NearOptions returns validated near-duplicate settings.
func (c *Config) NearOptions() (neardup.Options, error) {
	scope, err := model.ParseScope(c.Near.Scope)
	if err != nil {
		return neardup.Options{}, err
	}
	opts := neardup.Options{
		Scope:        scope,
		Threshold:    c.Near.Threshold,
		MaxFiles:     c.Near.MaxFiles,
		MaxPairs:     c.Near.MaxPairs,
		MaxFileBytes: c.MaxFileBytes,
		Exclude:      c.Near.Exclude,
		Workers:      c.Workers,
	}
	if err := opts.Validate(); err != nil {
		return neardup.Options{}, err
	}
	return opts, nil
}
