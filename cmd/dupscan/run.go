package main

import (
	"bytes"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/asynkron/dupscan/internal/config"
	"github.com/asynkron/dupscan/internal/content"
	"github.com/asynkron/dupscan/internal/exactdup"
	"github.com/asynkron/dupscan/internal/neardup"
	"github.com/asynkron/dupscan/internal/output"
	"github.com/asynkron/dupscan/internal/scan"
)

// pipelines selects which analyses a command runs.
type pipelines struct {
	exact bool
	near  bool
}

func runPipelines(cmd *cobra.Command, cfg *config.Config, want pipelines) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := newLogger(cmd.ErrOrStderr())

	src := content.NewSource(cfg.Root)
	start := time.Now()
	logger.Printf("%s Scanning %s", cyan("▶"), cfg.Root)
	res, err := scan.Walk(src, cfg.ScanOptions())
	if err != nil {
		return err
	}
	logger.Printf("Found %d files in %s", len(res.Files), time.Since(start).Round(time.Millisecond))

	var dup *exactdup.Report
	if want.exact {
		start = time.Now()
		dup = exactdup.Build(src, res.Files, cfg.ExactOptions())
		logger.Printf("%s %d exact duplicate groups in %s", green("✓"), len(dup.Groups), time.Since(start).Round(time.Millisecond))
	}

	var near *neardup.Report
	if want.near {
		opts, err := cfg.NearOptions()
		if err != nil {
			return err
		}
		start = time.Now()
		near, err = neardup.Build(src, res.SourceFiles(), opts)
		if err != nil {
			return err
		}
		logger.Printf("%s %d near-duplicate pairs in %s", green("✓"), len(near.Pairs), time.Since(start).Round(time.Millisecond))
	}

	summary := output.ScanSummary{
		Files:     len(res.Files),
		Bytes:     res.TotalBytes,
		Excluded:  res.Excluded,
		Oversized: res.Oversized,
	}
	report := output.NewReport(summary, res.Warnings, dup, near)
	if len(report.Warnings) > 0 {
		if verbose {
			for _, w := range report.Warnings {
				logger.Printf("%s %s", yellow("!"), w)
			}
		} else {
			logger.Printf("%s %d files skipped (use --verbose for details)", yellow("!"), len(report.Warnings))
		}
	}

	return writeReport(cmd, cfg, report)
}

func writeReport(cmd *cobra.Command, cfg *config.Config, report *output.Report) error {
	var buf bytes.Buffer
	switch cfg.Format {
	case config.FormatJSON:
		if err := output.EncodeJSON(&buf, report); err != nil {
			return err
		}
	case config.FormatMarkdown:
		md := output.Markdown(report)
		if render, _ := cmd.Flags().GetBool("render"); render && cfg.Output == "" {
			rendered, err := output.RenderMarkdown(md, "")
			if err != nil {
				return err
			}
			md = rendered
		}
		buf.WriteString(md)
	default:
		top, _ := cmd.Flags().GetInt("top")
		console := output.NewConsole(&buf, top)
		if cfg.Output != "" {
			console.Theme = output.PlainTheme
		}
		console.Print(report)
	}

	if cfg.Output == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}
	if err := output.WriteFile(cfg.Output, buf.Bytes()); err != nil {
		return err
	}
	newLogger(cmd.ErrOrStderr()).Printf("Results written to: %s", output.DefaultTheme.Location.Render(cfg.Output))
	return nil
}

func newExactCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exact [path]",
		Short: "Report byte-identical files and wasted bytes per module",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, args)
			if err != nil {
				return err
			}
			return runPipelines(cmd, cfg, pipelines{exact: true})
		},
	}
}

func newNearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "near [path]",
		Short: "Report lexically similar files",
		Long: `Fingerprint source files with Winnowing (25-token shingles, window of 4)
and report pairs whose Jaccard similarity reaches the threshold, grouped
into clusters of connected files.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, args)
			if err != nil {
				return err
			}
			return runPipelines(cmd, cfg, pipelines{near: true})
		},
	}
	addNearFlags(cmd)
	return cmd
}

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [path]",
		Short: "Run every enabled duplication analysis",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, args)
			if err != nil {
				return err
			}
			if !cfg.Exact.Enabled && !cfg.Near.Enabled {
				return fmt.Errorf("both exact and near analyses are disabled")
			}
			return runPipelines(cmd, cfg, pipelines{exact: cfg.Exact.Enabled, near: cfg.Near.Enabled})
		},
	}
	addNearFlags(cmd)
	return cmd
}
