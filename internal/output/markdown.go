package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/dustin/go-humanize"

	"github.com/asynkron/dupscan/internal/exactdup"
	"github.com/asynkron/dupscan/internal/neardup"
)

// Markdown renders r as GitHub-flavored Markdown.
func Markdown(r *Report) string {
	var sb strings.Builder
	sb.WriteString("# Duplication report\n\n")
	sb.WriteString(fmt.Sprintf("Scanned **%d** files (%s).\n\n", r.Scan.Files, humanize.IBytes(r.Scan.Bytes)))

	if r.Dup != nil {
		writeExactMarkdown(&sb, r.Dup)
	}
	if r.Near != nil {
		writeNearMarkdown(&sb, r.Near)
	}
	if len(r.Warnings) > 0 {
		sb.WriteString("## Warnings\n\n")
		for _, w := range r.Warnings {
			sb.WriteString(fmt.Sprintf("- %s\n", w))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func writeExactMarkdown(sb *strings.Builder, r *exactdup.Report) {
	sb.WriteString("## Exact duplicates\n\n")
	sb.WriteString(fmt.Sprintf("**Groups:** %d  **Wasted:** %s  **Share of codebase:** %.2f%%  **Strategy:** `%s`\n\n",
		len(r.Groups), humanize.IBytes(r.WastedBytes), r.Density.WastedPctOfCodebase*100, r.Strategy))
	if len(r.Groups) == 0 {
		return
	}

	sb.WriteString("| Size | Copies | Hash | Files |\n|---:|---:|---|---|\n")
	for _, g := range r.Groups {
		sb.WriteString(fmt.Sprintf("| %s | %d | `%s` | %s |\n",
			humanize.IBytes(g.Bytes), len(g.Files), shortHash(g.Hash), codeList(g.Files)))
	}
	sb.WriteString("\n")

	if len(r.Density.ByModule) > 0 {
		sb.WriteString("### By module\n\n")
		sb.WriteString("| Module | Duplicate files | Wasted files | Wasted bytes | Module bytes | Density |\n|---|---:|---:|---:|---:|---:|\n")
		for _, row := range r.Density.ByModule {
			sb.WriteString(fmt.Sprintf("| `%s` | %d | %d | %d | %d | %.4f |\n",
				row.Module, row.DuplicateFiles, row.WastedFiles, row.WastedBytes, row.ModuleBytes, row.Density))
		}
		sb.WriteString("\n")
	}
}

func writeNearMarkdown(sb *strings.Builder, r *neardup.Report) {
	sb.WriteString("## Near duplicates\n\n")
	sb.WriteString(fmt.Sprintf("**Scope:** %s  **Threshold:** %.2f  **Analyzed:** %d  **Skipped:** %d  **Excluded:** %d\n\n",
		r.Params.Scope, r.Params.Threshold, r.FilesAnalyzed, r.FilesSkipped, r.ExcludedByPattern))
	if len(r.Pairs) == 0 {
		return
	}

	sb.WriteString("| Similarity | Left | Right | Shared |\n|---:|---|---|---:|\n")
	for _, p := range r.Pairs {
		sb.WriteString(fmt.Sprintf("| %.1f%% | `%s` | `%s` | %d/%d |\n",
			p.Similarity*100, p.Left, p.Right, p.SharedFingerprints, max(p.LeftFingerprints, p.RightFingerprints)))
	}
	if r.Truncated {
		sb.WriteString(fmt.Sprintf("\n_Pairs truncated to %d._\n", r.Params.MaxPairs))
	}
	sb.WriteString("\n")

	if len(r.Clusters) > 0 {
		sb.WriteString("### Clusters\n\n")
		for i, c := range r.Clusters {
			sb.WriteString(fmt.Sprintf("%d. `%s` (%d files, %d pairs, max %.1f%%): %s\n",
				i+1, c.Representative, len(c.Files), c.PairCount, c.MaxSimilarity*100, codeList(c.Files)))
		}
		sb.WriteString("\n")
	}
}

func codeList(paths []string) string {
	quoted := make([]string, len(paths))
	for i, p := range paths {
		quoted[i] = "`" + p + "`"
	}
	return strings.Join(quoted, "<br>")
}

// RenderMarkdown renders markdown for a terminal. An empty style picks one
// from the terminal background.
func RenderMarkdown(markdown, style string) (string, error) {
	opt := glamour.WithAutoStyle()
	if style != "" {
		opt = glamour.WithStandardStyle(style)
	}
	r, err := glamour.NewTermRenderer(opt, glamour.WithWordWrap(120))
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}
