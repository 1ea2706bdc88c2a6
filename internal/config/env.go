package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	env "github.com/netflix/go-env"
)

// envOverlay mirrors the settings that can come from the environment.
// Fields stay strings so an unset variable is distinguishable from a zero.
type envOverlay struct {
	MaxFileBytes  string `env:"DUPSCAN_MAX_FILE_BYTES"`
	ModuleRoots   string `env:"DUPSCAN_MODULE_ROOTS"`
	ModuleDepth   string `env:"DUPSCAN_MODULE_DEPTH"`
	Exclude       string `env:"DUPSCAN_EXCLUDE"`
	Workers       string `env:"DUPSCAN_WORKERS"`
	Format        string `env:"DUPSCAN_FORMAT"`
	Output        string `env:"DUPSCAN_OUTPUT"`
	ExactEnabled  string `env:"DUPSCAN_EXACT_ENABLED"`
	NearEnabled   string `env:"DUPSCAN_NEAR_ENABLED"`
	NearScope     string `env:"DUPSCAN_NEAR_SCOPE"`
	NearThreshold string `env:"DUPSCAN_NEAR_THRESHOLD"`
	NearMaxFiles  string `env:"DUPSCAN_NEAR_MAX_FILES"`
	NearMaxPairs  string `env:"DUPSCAN_NEAR_MAX_PAIRS"`
	NearExclude   string `env:"DUPSCAN_NEAR_EXCLUDE"`
}

// LoadEnv applies DUPSCAN_* variables from environ and the optional .env
// file at dotenvPath to cfg. Variables already in environ win over the file.
// A missing .env file is not an error.
func LoadEnv(cfg *Config, dotenvPath string, environ []string) error {
	es, err := env.EnvironToEnvSet(environ)
	if err != nil {
		return fmt.Errorf("failed to parse environment variables: %w", err)
	}
	if es == nil {
		es = env.EnvSet{}
	}

	if dotenvPath != "" {
		fileVars, err := godotenv.Read(dotenvPath)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("reading %s: %w", dotenvPath, err)
		}
		for k, v := range fileVars {
			if _, ok := es[k]; !ok {
				es[k] = v
			}
		}
	}

	var o envOverlay
	if err := env.Unmarshal(es, &o); err != nil {
		return fmt.Errorf("failed to parse environment variables: %w", err)
	}
	return o.apply(cfg)
}

func (o envOverlay) apply(cfg *Config) error {
	if o.MaxFileBytes != "" {
		n, err := strconv.ParseUint(o.MaxFileBytes, 10, 64)
		if err != nil {
			return fmt.Errorf("DUPSCAN_MAX_FILE_BYTES: %w", err)
		}
		cfg.MaxFileBytes = n
	}
	if o.ModuleRoots != "" {
		cfg.ModuleRoots = splitList(o.ModuleRoots)
	}
	if err := setInt(&cfg.ModuleDepth, "DUPSCAN_MODULE_DEPTH", o.ModuleDepth); err != nil {
		return err
	}
	if o.Exclude != "" {
		cfg.Exclude = splitList(o.Exclude)
	}
	if err := setInt(&cfg.Workers, "DUPSCAN_WORKERS", o.Workers); err != nil {
		return err
	}
	if o.Format != "" {
		cfg.Format = strings.ToLower(o.Format)
	}
	if o.Output != "" {
		cfg.Output = o.Output
	}
	if err := setBool(&cfg.Exact.Enabled, "DUPSCAN_EXACT_ENABLED", o.ExactEnabled); err != nil {
		return err
	}
	if err := setBool(&cfg.Near.Enabled, "DUPSCAN_NEAR_ENABLED", o.NearEnabled); err != nil {
		return err
	}
	if o.NearScope != "" {
		cfg.Near.Scope = o.NearScope
	}
	if o.NearThreshold != "" {
		f, err := strconv.ParseFloat(o.NearThreshold, 64)
		if err != nil {
			return fmt.Errorf("DUPSCAN_NEAR_THRESHOLD: %w", err)
		}
		cfg.Near.Threshold = f
	}
	if err := setInt(&cfg.Near.MaxFiles, "DUPSCAN_NEAR_MAX_FILES", o.NearMaxFiles); err != nil {
		return err
	}
	if err := setInt(&cfg.Near.MaxPairs, "DUPSCAN_NEAR_MAX_PAIRS", o.NearMaxPairs); err != nil {
		return err
	}
	if o.NearExclude != "" {
		cfg.Near.Exclude = splitList(o.NearExclude)
	}
	return nil
}

func setInt(dst *int, name, raw string) error {
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = n
	return nil
}

func setBool(dst *bool, name, raw string) error {
	if raw == "" {
		return nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = b
	return nil
}

// splitList parses a comma-separated list, dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
