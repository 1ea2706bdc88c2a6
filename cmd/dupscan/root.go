package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/asynkron/dupscan/internal/config"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dupscan",
		Short: "Find exact and near-duplicate files in a source tree",
		Long: `dupscan reports byte-identical files and the bytes they waste per module,
and lexically similar files found with Winnowing fingerprints.

Settings come from .dupscan.yaml in the scanned directory, a .env file,
DUPSCAN_* environment variables and flags, in increasing priority.`,
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default <path>/"+config.FileName+")")
	pf.StringP("format", "f", config.FormatConsole, "output format: console, json or markdown")
	pf.StringP("output", "o", "", "write the report to this file instead of stdout")
	pf.Uint64("max-file-bytes", 0, "skip files larger than this many bytes (0 = no limit)")
	pf.StringSlice("exclude", nil, "glob patterns to leave out of the scan")
	pf.StringSlice("module-roots", nil, "directories whose children are modules")
	pf.Int("module-depth", 0, "directory segments kept in module keys under a module root")
	pf.IntP("workers", "j", 1, "files hashed or fingerprinted in parallel")
	pf.IntP("top", "n", 20, "rows per section in console output (0 = all)")
	pf.Bool("render", false, "render markdown output for the terminal")
	pf.BoolP("verbose", "v", false, "log every skipped file")

	rootCmd.AddCommand(newExactCmd())
	rootCmd.AddCommand(newNearCmd())
	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newConfigCmd())
	return rootCmd
}

// addNearFlags registers the near-duplicate flags on cmd.
func addNearFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("scope", "module", "compare files within: global, module or lang")
	f.Float64("threshold", 0.80, "minimum Jaccard similarity for a pair (0.0-1.0)")
	f.Int("max-files", 2000, "analyze at most this many files, largest first")
	f.Int("max-pairs", 0, "report at most this many pairs (0 = all)")
	f.StringSlice("near-exclude", nil, "glob patterns to leave out of near-duplicate pairing")
}

// loadConfig resolves the configuration for the path in args. Flags only
// override file and environment values when they were set explicitly.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}
	if info, err := os.Stat(root); err != nil {
		return nil, err
	} else if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(root, configPath, filepath.Join(root, config.DotEnvFileName))
	if err != nil {
		return nil, err
	}
	applyFlags(cmd, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("format") {
		cfg.Format, _ = f.GetString("format")
	}
	if f.Changed("output") {
		cfg.Output, _ = f.GetString("output")
	}
	if f.Changed("max-file-bytes") {
		cfg.MaxFileBytes, _ = f.GetUint64("max-file-bytes")
	}
	if f.Changed("exclude") {
		cfg.Exclude, _ = f.GetStringSlice("exclude")
	}
	if f.Changed("module-roots") {
		cfg.ModuleRoots, _ = f.GetStringSlice("module-roots")
	}
	if f.Changed("module-depth") {
		cfg.ModuleDepth, _ = f.GetInt("module-depth")
	}
	if f.Changed("workers") {
		cfg.Workers, _ = f.GetInt("workers")
	}
	if f.Changed("scope") {
		cfg.Near.Scope, _ = f.GetString("scope")
	}
	if f.Changed("threshold") {
		cfg.Near.Threshold, _ = f.GetFloat64("threshold")
	}
	if f.Changed("max-files") {
		cfg.Near.MaxFiles, _ = f.GetInt("max-files")
	}
	if f.Changed("max-pairs") {
		cfg.Near.MaxPairs, _ = f.GetInt("max-pairs")
	}
	if f.Changed("near-exclude") {
		cfg.Near.Exclude, _ = f.GetStringSlice("near-exclude")
	}
}

// newLogger returns the status logger. Status lines go to stderr so report
// output on stdout stays machine readable.
func newLogger(w io.Writer) *log.Logger {
	return log.New(w, "", 0)
}

var (
	cyan   = color.New(color.FgCyan).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
)
